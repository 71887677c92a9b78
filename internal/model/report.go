package model

import (
	"strings"
	"time"
)

// AnalystRating is one normalized analyst rating category.
type AnalystRating string

const (
	RatingStrongBuy  AnalystRating = "STRONG_BUY"
	RatingBuy        AnalystRating = "BUY"
	RatingHold       AnalystRating = "HOLD"
	RatingSell       AnalystRating = "SELL"
	RatingStrongSell AnalystRating = "STRONG_SELL"
)

// IsBuy reports whether the rating counts toward the bullish majority.
func (r AnalystRating) IsBuy() bool { return r == RatingBuy || r == RatingStrongBuy }

// IsSell reports whether the rating counts toward the bearish majority.
func (r AnalystRating) IsSell() bool { return r == RatingSell || r == RatingStrongSell }

// NormalizeRating maps a provider grade string onto a rating category.
// Unknown grades map to HOLD.
func NormalizeRating(grade string) AnalystRating {
	switch strings.ToUpper(strings.TrimSpace(grade)) {
	case "STRONG BUY", "STRONG_BUY", "STRONGBUY", "OUTPERFORM":
		return RatingStrongBuy
	case "BUY", "OVERWEIGHT", "ACCUMULATE":
		return RatingBuy
	case "SELL", "UNDERWEIGHT", "REDUCE":
		return RatingSell
	case "STRONG SELL", "STRONG_SELL", "STRONGSELL", "UNDERPERFORM":
		return RatingStrongSell
	default:
		return RatingHold
	}
}

// AnalystSummary counts ratings per direction. A nil *AnalystSummary in the
// report means the side data was unavailable, which is distinct from data
// that was fetched but came out neutral.
type AnalystSummary struct {
	Buy  int
	Hold int
	Sell int
}

// SummarizeRatings buckets a rating list into buy/hold/sell counts.
func SummarizeRatings(ratings []AnalystRating) AnalystSummary {
	var s AnalystSummary
	for _, r := range ratings {
		switch {
		case r.IsBuy():
			s.Buy++
		case r.IsSell():
			s.Sell++
		default:
			s.Hold++
		}
	}
	return s
}

// Total returns the number of summarized ratings.
func (s AnalystSummary) Total() int { return s.Buy + s.Hold + s.Sell }

// NewsItem is passed through to the report unmodified; the engine does not
// analyze its text.
type NewsItem struct {
	Title       string
	Publisher   string
	Link        string
	PublishedAt time.Time
}

// Report is the final output of one analysis request. Its shape is stable
// regardless of data completeness: missing values show up as undefined
// markers or INSUFFICIENT_DATA, never as omitted fields.
type Report struct {
	Symbol      string
	GeneratedAt time.Time
	Series      *PriceSeries
	Indicators  *IndicatorSet
	ShortTerm   Signal
	LongTerm    Signal
	Trend       TrendSummary
	Analyst     *AnalystSummary // nil when analyst data was unavailable
	News        []NewsItem
}
