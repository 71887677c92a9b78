package signal

import "StockPulse/internal/model"

// Config holds the rule thresholds for both horizons.
type Config struct {
	RSIOversold       float64 // default 30
	RSIOverbought     float64 // default 70
	MomentumBars      int     // short-horizon momentum period, default 14
	MomentumThreshold float64 // percent, default 2
	SMASlopeBars      int     // SMA20 slope window, default 5
	CrossLookback     int     // bars to scan for a fresh cross, default 5
}

// DefaultConfig returns the thresholds the rule sets were tuned with.
func DefaultConfig() Config {
	return Config{
		RSIOversold:       30,
		RSIOverbought:     70,
		MomentumBars:      14,
		MomentumThreshold: 2,
		SMASlopeBars:      5,
		CrossLookback:     5,
	}
}

// Maximum reachable |vote sum| per horizon, used to normalize confidence.
const (
	maxShortVotes = 3
	maxLongVotes  = 4
)

// Evaluate runs both rule sets against the latest bar. Each condition is an
// independent predicate that contributes a signed vote plus a reason when it
// fires; the votes are summed and ties resolve to HOLD. When every input a
// rule set depends on is undefined, the result is INSUFFICIENT_DATA rather
// than a default direction.
func Evaluate(series *model.PriceSeries, ind *model.IndicatorSet, ratings []model.AnalystRating, cfg Config) (short, long model.Signal) {
	latestClose := series.Last().Close

	rsi := ind.RSI14.Last()
	sma20 := ind.SMA20.Last()
	mom := ind.MomentumAt(cfg.MomentumBars).Last()

	shortVotes := collect(
		checkRSI(rsi, cfg),
		checkSMA20Trend(latestClose, ind.SMA20, cfg),
		checkShortMomentum(mom, cfg),
	)
	shortInsufficient := !rsi.Defined && !sma20.Defined && !mom.Defined
	short = reduce(model.HorizonShortTerm, shortVotes, shortInsufficient, maxShortVotes)

	sma50 := ind.SMA50.Last()
	sma200 := ind.SMA200.Last()

	longVotes := collect(
		checkSMA200(latestClose, sma200),
		checkCross(ind.SMA50, ind.SMA200, cfg),
		checkAnalysts(ratings),
	)
	longInsufficient := !sma50.Defined && !sma200.Defined && len(ratings) == 0
	long = reduce(model.HorizonLongTerm, longVotes, longInsufficient, maxLongVotes)
	return short, long
}

func collect(votes ...*vote) []vote {
	out := make([]vote, 0, len(votes))
	for _, v := range votes {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// reduce folds the fired votes into one categorical signal.
func reduce(horizon model.Horizon, votes []vote, insufficient bool, maxVotes int) model.Signal {
	sig := model.Signal{Horizon: horizon}
	if insufficient {
		sig.Category = model.SignalInsufficientData
		sig.Reasons = []string{"not enough history to evaluate any condition"}
		return sig
	}

	sum := 0
	for _, v := range votes {
		sum += v.score
		sig.Reasons = append(sig.Reasons, v.reason)
	}
	sig.VoteSum = sum

	switch {
	case sum > 0:
		sig.Category = model.SignalBuy
	case sum < 0:
		sig.Category = model.SignalSell
	default:
		sig.Category = model.SignalHold
	}

	abs := sum
	if abs < 0 {
		abs = -abs
	}
	sig.Confidence = float64(abs) / float64(maxVotes)
	return sig
}

const (
	crossNone = iota
	crossGolden
	crossDeath
)

// detectCross scans the last lookback bars for a sign flip of SMA50-SMA200
// between consecutive defined bars. Comparing consecutive signs is what
// separates a fresh cross from a long-standing ordering of the averages.
// The most recent flip wins; at is its bar index.
func detectCross(fast, slow model.Series, lookback int) (dir, at int) {
	n := len(fast)
	if len(slow) < n {
		n = len(slow)
	}
	start := n - lookback
	if start < 1 {
		start = 1
	}
	for i := n - 1; i >= start; i-- {
		f0, s0 := fast.At(i-1), slow.At(i-1)
		f1, s1 := fast.At(i), slow.At(i)
		if !f0.Defined || !s0.Defined || !f1.Defined || !s1.Defined {
			continue
		}
		prev := f0.Val - s0.Val
		cur := f1.Val - s1.Val
		if prev < 0 && cur >= 0 {
			return crossGolden, i
		}
		if prev > 0 && cur <= 0 {
			return crossDeath, i
		}
	}
	return crossNone, -1
}
