package indicator

import (
	"math"

	"StockPulse/internal/model"
)

// HighLow scans the most recent window bars and returns their high and low.
// Shorter series use whatever history exists; ok is false only for an empty
// input.
func HighLow(bars []model.Bar, window int) (high, low float64, ok bool) {
	if len(bars) == 0 {
		return 0, 0, false
	}
	start := len(bars) - window
	if start < 0 {
		start = 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := start; i < len(bars); i++ {
		if bars[i].High > high {
			high = bars[i].High
		}
		if bars[i].Low < low {
			low = bars[i].Low
		}
	}
	return high, low, true
}

// RangePosition returns where price sits within [low, high], clamped to
// 0.0~1.0. A degenerate range reads as the midpoint.
func RangePosition(price, high, low float64) float64 {
	if high <= low {
		return 0.5
	}
	pos := (price - low) / (high - low)
	if pos < 0 {
		return 0
	}
	if pos > 1 {
		return 1
	}
	return pos
}
