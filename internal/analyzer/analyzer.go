package analyzer

import (
	"time"

	"StockPulse/internal/indicator"
	"StockPulse/internal/model"
	"StockPulse/internal/narrative"
	"StockPulse/internal/signal"
)

// Config bundles the per-stage configuration of one analysis request.
type Config struct {
	Indicator indicator.Config
	Signal    signal.Config
	Narrative narrative.Config
}

// DefaultConfig returns the stage defaults.
func DefaultConfig() Config {
	return Config{
		Signal:    signal.DefaultConfig(),
		Narrative: narrative.DefaultConfig(),
	}
}

// Run executes the full pipeline on an already-validated series:
// indicators, then signals, then the trend summary. Once the series passed
// construction, the request always completes with a best-effort report;
// missing history degrades to undefined markers and INSUFFICIENT_DATA.
func Run(series *model.PriceSeries, ratings []model.AnalystRating, news []model.NewsItem, cfg Config) *model.Report {
	// The short-horizon momentum rule needs its period in the computed set.
	cfg.Indicator.MomentumPeriods = ensurePeriod(cfg.Indicator.MomentumPeriods, cfg.Signal.MomentumBars)

	ind := indicator.Compute(series, cfg.Indicator)
	short, long := signal.Evaluate(series, ind, ratings, cfg.Signal)
	trend := narrative.Summarize(series, ind, short, long, cfg.Narrative)

	var analyst *model.AnalystSummary
	if ratings != nil {
		s := model.SummarizeRatings(ratings)
		analyst = &s
	}

	return &model.Report{
		Symbol:      series.Symbol,
		GeneratedAt: time.Now(),
		Series:      series,
		Indicators:  ind,
		ShortTerm:   short,
		LongTerm:    long,
		Trend:       trend,
		Analyst:     analyst,
		News:        news,
	}
}

func ensurePeriod(periods []int, p int) []int {
	if p <= 0 {
		return periods
	}
	if len(periods) == 0 {
		periods = append(periods, indicator.DefaultMomentumPeriods...)
	}
	for _, have := range periods {
		if have == p {
			return periods
		}
	}
	return append(periods, p)
}
