package indicator

import "StockPulse/internal/model"

// DefaultMomentumPeriods covers the multi-period trend description:
// 1 day, 1 week, 2 weeks, and roughly 1/3/6/12 months in trading days.
var DefaultMomentumPeriods = []int{1, 5, 14, 21, 63, 126, 252}

// Config controls which momentum horizons are computed. The fixed-period
// indicators (SMA, EMA, RSI, volatility) are always produced.
type Config struct {
	MomentumPeriods []int
}

func (c Config) momentumPeriods() []int {
	if len(c.MomentumPeriods) == 0 {
		return DefaultMomentumPeriods
	}
	return c.MomentumPeriods
}

// Compute derives the full indicator set from a validated price series.
// Pure and deterministic; short history never fails, it just leaves the
// under-supplied positions undefined.
func Compute(series *model.PriceSeries, cfg Config) *model.IndicatorSet {
	closes := series.Closes()
	set := &model.IndicatorSet{
		SMA20:        SMA(closes, 20),
		SMA50:        SMA(closes, 50),
		SMA200:       SMA(closes, 200),
		EMA12:        EMA(closes, 12),
		EMA26:        EMA(closes, 26),
		RSI14:        RSI(closes, 14),
		Volatility20: Volatility(closes, 20),
		Momentum:     make(map[int]model.Series),
	}
	for _, p := range cfg.momentumPeriods() {
		set.Momentum[p] = Momentum(closes, p)
	}
	return set
}
