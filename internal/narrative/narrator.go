package narrative

import (
	"fmt"
	"sort"
	"strings"

	"StockPulse/internal/indicator"
	"StockPulse/internal/model"
)

// Config controls the reference windows of the narrative.
type Config struct {
	RangeBars   int // 52-week range window, default 252
	VolLookback int // trailing distribution for the volatility read, default 252
}

// DefaultConfig returns the standard 52-week windows.
func DefaultConfig() Config {
	return Config{RangeBars: 252, VolLookback: 252}
}

// Summarize maps the long-term vote sum to a sentiment label and composes a
// short templated narrative from the computed values. No inference is
// involved: the same inputs always produce the same summary.
func Summarize(series *model.PriceSeries, ind *model.IndicatorSet, short, long model.Signal, cfg Config) model.TrendSummary {
	if cfg.RangeBars <= 0 {
		cfg.RangeBars = 252
	}
	if cfg.VolLookback <= 0 {
		cfg.VolLookback = 252
	}

	sentiment := model.SentimentNeutral
	if long.Category != model.SignalInsufficientData {
		switch {
		case long.VoteSum >= 2:
			sentiment = model.SentimentBullish
		case long.VoteSum <= -2:
			sentiment = model.SentimentBearish
		}
	}

	var parts []string
	parts = append(parts, rangeSentence(series, cfg.RangeBars))
	parts = append(parts, signalSentence(short, long))
	if s := momentumSentence(ind); s != "" {
		parts = append(parts, s)
	}
	if s := volatilitySentence(ind.Volatility20, cfg.VolLookback); s != "" {
		parts = append(parts, s)
	}

	return model.TrendSummary{Sentiment: sentiment, Narrative: strings.Join(parts, " ")}
}

func rangeSentence(series *model.PriceSeries, window int) string {
	price := series.Last().Close
	high, low, ok := indicator.HighLow(series.Bars, window)
	if !ok {
		return fmt.Sprintf("%s closed at %.2f.", series.Symbol, price)
	}
	pos := indicator.RangePosition(price, high, low)
	var where string
	switch {
	case pos >= 0.8:
		where = "near the top of"
	case pos <= 0.2:
		where = "near the bottom of"
	default:
		where = "in the middle of"
	}
	return fmt.Sprintf("%s closed at %.2f, %s its 52-week range (%.2f - %.2f).",
		series.Symbol, price, where, low, high)
}

func signalSentence(short, long model.Signal) string {
	return fmt.Sprintf("The technical rules read %s short term and %s long term.",
		describeSignal(short), describeSignal(long))
}

func describeSignal(sig model.Signal) string {
	if sig.Category == model.SignalInsufficientData {
		return "inconclusive (insufficient history)"
	}
	return string(sig.Category)
}

// periodLabels names the standard momentum horizons; anything else falls
// back to a bar count.
var periodLabels = map[int]string{
	1:   "1-day",
	5:   "5-day",
	14:  "14-day",
	21:  "1-month",
	63:  "3-month",
	126: "6-month",
	252: "12-month",
}

func periodLabel(p int) string {
	if l, ok := periodLabels[p]; ok {
		return l
	}
	return fmt.Sprintf("%d-bar", p)
}

// momentumSentence reports the largest absolute reading among the computed
// momentum horizons. Empty when none is defined yet.
func momentumSentence(ind *model.IndicatorSet) string {
	periods := make([]int, 0, len(ind.Momentum))
	for p := range ind.Momentum {
		periods = append(periods, p)
	}
	sort.Ints(periods)

	bestPeriod := 0
	var bestVal float64
	found := false
	for _, p := range periods {
		v := ind.Momentum[p].Last()
		if !v.Defined {
			continue
		}
		abs := v.Val
		if abs < 0 {
			abs = -abs
		}
		bestAbs := bestVal
		if bestAbs < 0 {
			bestAbs = -bestAbs
		}
		if !found || abs > bestAbs {
			bestPeriod, bestVal, found = p, v.Val, true
		}
	}
	if !found {
		return ""
	}
	direction := "gain"
	if bestVal < 0 {
		direction = "decline"
	}
	return fmt.Sprintf("The strongest move is the %s %s of %+.1f%%.",
		periodLabel(bestPeriod), direction, bestVal)
}

// volatilitySentence compares current volatility against its own trailing
// distribution; "elevated" means the top quartile of the lookback window.
func volatilitySentence(vol model.Series, lookback int) string {
	cur := vol.Last()
	if !cur.Defined {
		return ""
	}
	start := len(vol) - lookback
	if start < 0 {
		start = 0
	}
	var below, total int
	for i := start; i < len(vol); i++ {
		if !vol[i].Defined {
			continue
		}
		total++
		if vol[i].Val < cur.Val {
			below++
		}
	}
	if total == 0 {
		return ""
	}
	rank := float64(below) / float64(total)
	var level string
	switch {
	case rank >= 0.75:
		level = "elevated"
	case rank <= 0.25:
		level = "subdued"
	default:
		level = "in line with"
	}
	if level == "in line with" {
		return fmt.Sprintf("Volatility (%.2f) is in line with its own 1-year history.", cur.Val)
	}
	return fmt.Sprintf("Volatility (%.2f) is %s relative to its own 1-year history.", cur.Val, level)
}
