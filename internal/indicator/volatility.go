package indicator

import (
	"math"

	"StockPulse/internal/model"
)

// Volatility computes the rolling sample standard deviation of percent
// returns over the given window. A window of n returns needs n+1 prices, so
// the first window positions are undefined.
func Volatility(closes []float64, window int) model.Series {
	out := make(model.Series, len(closes))
	if window <= 1 || len(closes) < window+1 {
		return out
	}

	returns := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		returns[i] = (closes[i] - closes[i-1]) / closes[i-1] * 100
	}

	for i := window; i < len(closes); i++ {
		var sum float64
		for j := i - window + 1; j <= i; j++ {
			sum += returns[j]
		}
		mean := sum / float64(window)
		var ss float64
		for j := i - window + 1; j <= i; j++ {
			d := returns[j] - mean
			ss += d * d
		}
		out[i] = model.Defined(math.Sqrt(ss / float64(window-1)))
	}
	return out
}
