package indicator

import "StockPulse/internal/model"

// Momentum computes the percent change over the given period. The sign
// indicates direction and the magnitude strength. Positions earlier than
// period bars are undefined.
func Momentum(closes []float64, period int) model.Series {
	out := make(model.Series, len(closes))
	if period <= 0 {
		return out
	}
	for i := period; i < len(closes); i++ {
		base := closes[i-period]
		out[i] = model.Defined((closes[i] - base) / base * 100)
	}
	return out
}
