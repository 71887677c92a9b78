package model

// SignalCategory is the categorical recommendation for one horizon.
type SignalCategory string

const (
	SignalBuy              SignalCategory = "BUY"
	SignalSell             SignalCategory = "SELL"
	SignalHold             SignalCategory = "HOLD"
	SignalInsufficientData SignalCategory = "INSUFFICIENT_DATA"
)

// Horizon is the classification scope of a signal.
type Horizon string

const (
	HorizonShortTerm Horizon = "SHORT_TERM"
	HorizonLongTerm  Horizon = "LONG_TERM"
)

// Signal is the outcome of one rule set: a category plus the ordered reasons
// that produced it. VoteSum is the raw sum of signed condition votes;
// Confidence is |VoteSum| normalized by the maximum reachable sum, zero when
// the category is INSUFFICIENT_DATA.
type Signal struct {
	Horizon    Horizon
	Category   SignalCategory
	Reasons    []string
	VoteSum    int
	Confidence float64
}

// Sentiment is the coarse label attached to the trend summary.
type Sentiment string

const (
	SentimentBullish Sentiment = "BULLISH"
	SentimentNeutral Sentiment = "NEUTRAL"
	SentimentBearish Sentiment = "BEARISH"
)

// TrendSummary is fully derived from the indicator and signal values; it
// holds no state of its own.
type TrendSummary struct {
	Sentiment Sentiment
	Narrative string
}
