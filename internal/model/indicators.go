package model

// IndicatorSet holds all derived series, each aligned with the source bars.
// Momentum is keyed by lookback period in bars.
type IndicatorSet struct {
	SMA20        Series
	SMA50        Series
	SMA200       Series
	EMA12        Series
	EMA26        Series
	RSI14        Series
	Volatility20 Series
	Momentum     map[int]Series
}

// MomentumAt returns the momentum series for the given period, or nil when
// that period was not computed.
func (s *IndicatorSet) MomentumAt(period int) Series {
	if s.Momentum == nil {
		return nil
	}
	return s.Momentum[period]
}
