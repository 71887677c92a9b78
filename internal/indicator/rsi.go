package indicator

import "StockPulse/internal/model"

// RSI computes the Wilder-smoothed Relative Strength Index over the given
// period. The first period positions are undefined; from then on the average
// gain and loss are smoothed recursively, not recomputed as simple means.
func RSI(closes []float64, period int) model.Series {
	out := make(model.Series, len(closes))
	if period <= 0 || len(closes) < period+1 {
		return out
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = model.Defined(rsiValue(avgGain, avgLoss))

	p := float64(period)
	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*(p-1) + gain) / p
		avgLoss = (avgLoss*(p-1) + loss) / p
		out[i] = model.Defined(rsiValue(avgGain, avgLoss))
	}
	return out
}

// rsiValue maps smoothed averages to the bounded [0,100] oscillator.
// A flat window (both averages zero) is neutral, not overbought.
func rsiValue(avgGain, avgLoss float64) float64 {
	switch {
	case avgGain == 0 && avgLoss == 0:
		return 50
	case avgLoss == 0:
		return 100
	}
	rsi := 100 - 100/(1+avgGain/avgLoss)
	if rsi < 0 {
		return 0
	}
	if rsi > 100 {
		return 100
	}
	return rsi
}
