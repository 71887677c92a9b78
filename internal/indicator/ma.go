package indicator

import "StockPulse/internal/model"

// SMA computes the simple moving average over the given period, aligned with
// the input. Positions with fewer than period closes are undefined.
func SMA(closes []float64, period int) model.Series {
	out := make(model.Series, len(closes))
	if period <= 0 {
		return out
	}
	var sum float64
	for i, c := range closes {
		sum += c
		if i >= period {
			sum -= closes[i-period]
		}
		if i >= period-1 {
			out[i] = model.Defined(sum / float64(period))
		}
	}
	return out
}

// EMA computes the exponential moving average with smoothing factor
// 2/(period+1). The first defined value seeds from the SMA over the first
// period closes; earlier positions are undefined.
func EMA(closes []float64, period int) model.Series {
	out := make(model.Series, len(closes))
	if period <= 0 || len(closes) < period {
		return out
	}
	alpha := 2.0 / float64(period+1)
	var sum float64
	for i := 0; i < period; i++ {
		sum += closes[i]
	}
	prev := sum / float64(period)
	out[period-1] = model.Defined(prev)
	for i := period; i < len(closes); i++ {
		prev = closes[i]*alpha + prev*(1-alpha)
		out[i] = model.Defined(prev)
	}
	return out
}
