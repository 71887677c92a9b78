package signal

import (
	"strings"
	"testing"
	"time"

	"StockPulse/internal/indicator"
	"StockPulse/internal/model"
)

func seriesFromCloses(t *testing.T, closes []float64) *model.PriceSeries {
	t.Helper()
	base := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, len(closes))
	for i, c := range closes {
		bars[i] = model.Bar{Time: base.AddDate(0, 0, i), Open: c, High: c, Low: c, Close: c, Volume: 1000}
	}
	s, err := model.NewPriceSeries("TEST", bars)
	if err != nil {
		t.Fatalf("build series: %v", err)
	}
	return s
}

func evaluate(t *testing.T, closes []float64, ratings []model.AnalystRating) (short, long model.Signal) {
	t.Helper()
	series := seriesFromCloses(t, closes)
	ind := indicator.Compute(series, indicator.Config{})
	return Evaluate(series, ind, ratings, DefaultConfig())
}

func hasReason(sig model.Signal, substr string) bool {
	for _, r := range sig.Reasons {
		if strings.Contains(r, substr) {
			return true
		}
	}
	return false
}

// declineThenRally produces a series whose SMA50 crosses SMA200 from below
// at exactly one bar: 220 bars falling by 1, then 80 bars rising by 4.
func declineThenRally() []float64 {
	closes := make([]float64, 300)
	for i := 0; i < 220; i++ {
		closes[i] = 400 - float64(i)
	}
	for i := 220; i < 300; i++ {
		closes[i] = closes[219] + 4*float64(i-219)
	}
	return closes
}

// riseThenFall is the bearish mirror: 220 bars rising by 1, then 80 bars
// falling by 2.
func riseThenFall() []float64 {
	closes := make([]float64, 300)
	for i := 0; i < 220; i++ {
		closes[i] = 100 + float64(i)
	}
	for i := 220; i < 300; i++ {
		closes[i] = closes[219] - 2*float64(i-219)
	}
	return closes
}

// findFlip scans for the single bar where sign(SMA50-SMA200) changes,
// independently of the engine's own detection.
func findFlip(t *testing.T, closes []float64, bullish bool) int {
	t.Helper()
	sma50 := indicator.SMA(closes, 50)
	sma200 := indicator.SMA(closes, 200)
	for i := 1; i < len(closes); i++ {
		if !sma50[i-1].Defined || !sma200[i-1].Defined || !sma50[i].Defined || !sma200[i].Defined {
			continue
		}
		prev := sma50[i-1].Val - sma200[i-1].Val
		cur := sma50[i].Val - sma200[i].Val
		if bullish && prev < 0 && cur >= 0 {
			return i
		}
		if !bullish && prev > 0 && cur <= 0 {
			return i
		}
	}
	t.Fatal("fixture has no crossover, test setup is broken")
	return -1
}

func TestEvaluate_FlatSeriesHolds(t *testing.T) {
	closes := make([]float64, 300)
	for i := range closes {
		closes[i] = 100
	}
	short, long := evaluate(t, closes, nil)

	if short.Category != model.SignalHold {
		t.Errorf("short: expected HOLD, got %s (reasons %v)", short.Category, short.Reasons)
	}
	if long.Category != model.SignalHold {
		t.Errorf("long: expected HOLD, got %s (reasons %v)", long.Category, long.Reasons)
	}
	if short.VoteSum != 0 || long.VoteSum != 0 {
		t.Errorf("expected zero vote sums, got %d/%d", short.VoteSum, long.VoteSum)
	}
	if len(short.Reasons) != 0 || len(long.Reasons) != 0 {
		t.Errorf("flat series should fire no conditions: %v / %v", short.Reasons, long.Reasons)
	}
	if short.Confidence != 0 || long.Confidence != 0 {
		t.Errorf("expected zero confidence, got %.2f/%.2f", short.Confidence, long.Confidence)
	}
}

func TestEvaluate_GoldenCross(t *testing.T) {
	closes := declineThenRally()
	k := findFlip(t, closes, true)

	// Evaluated right at the crossover bar, the cross is fresh.
	short, long := evaluate(t, closes[:k+1], nil)
	if !hasReason(long, "golden cross") {
		t.Fatalf("expected golden cross reason at bar %d, got %v", k, long.Reasons)
	}
	if long.Category != model.SignalBuy {
		t.Errorf("expected long-term BUY, got %s (votes %d)", long.Category, long.VoteSum)
	}
	if long.Horizon != model.HorizonLongTerm {
		t.Errorf("expected LONG_TERM horizon, got %s", long.Horizon)
	}
	_ = short

	// Well past the lookback window the ordering is long-standing, not a
	// fresh cross.
	_, longFull := evaluate(t, closes, nil)
	if hasReason(longFull, "golden cross") {
		t.Errorf("stale cross should not be reported: %v", longFull.Reasons)
	}
	if longFull.Category != model.SignalBuy {
		t.Errorf("uptrend should still read BUY via SMA200, got %s", longFull.Category)
	}
}

func TestEvaluate_DeathCross(t *testing.T) {
	closes := riseThenFall()
	k := findFlip(t, closes, false)

	_, long := evaluate(t, closes[:k+1], nil)
	if !hasReason(long, "death cross") {
		t.Fatalf("expected death cross reason at bar %d, got %v", k, long.Reasons)
	}
	if long.Category != model.SignalSell {
		t.Errorf("expected long-term SELL, got %s (votes %d)", long.Category, long.VoteSum)
	}
}

func TestDetectCross_ExactBar(t *testing.T) {
	closes := declineThenRally()
	k := findFlip(t, closes, true)

	sma50 := indicator.SMA(closes, 50)
	sma200 := indicator.SMA(closes, 200)

	dir, at := detectCross(sma50, sma200, len(closes))
	if dir != crossGolden {
		t.Fatalf("expected golden cross, got dir=%d", dir)
	}
	if at != k {
		t.Errorf("expected cross at bar %d, got %d", k, at)
	}

	// Outside the lookback window nothing is detected.
	if dir, _ := detectCross(sma50, sma200, len(closes)-1-k); dir != crossNone {
		t.Errorf("expected no cross within %d bars, got dir=%d", len(closes)-1-k, dir)
	}
}

func TestEvaluate_ShortHistoryIsInsufficient(t *testing.T) {
	closes := []float64{100, 101, 102, 103, 104, 105, 106, 107, 108, 109}
	short, long := evaluate(t, closes, nil)

	if short.Category != model.SignalInsufficientData {
		t.Errorf("short: expected INSUFFICIENT_DATA, got %s", short.Category)
	}
	if long.Category != model.SignalInsufficientData {
		t.Errorf("long: expected INSUFFICIENT_DATA, got %s", long.Category)
	}
	if short.Confidence != 0 {
		t.Errorf("expected zero confidence, got %.2f", short.Confidence)
	}
}

func TestEvaluate_ShortHistoryWithRatingsStillVotes(t *testing.T) {
	closes := []float64{100, 101, 102, 103, 104, 105, 106, 107, 108, 109}
	ratings := []model.AnalystRating{model.RatingBuy, model.RatingStrongBuy, model.RatingHold}
	_, long := evaluate(t, closes, ratings)

	if long.Category != model.SignalBuy {
		t.Errorf("analyst majority should carry the long signal, got %s", long.Category)
	}
	if !hasReason(long, "analyst sentiment") {
		t.Errorf("expected analyst reason, got %v", long.Reasons)
	}
}

func TestEvaluate_OversoldButDowntrendSells(t *testing.T) {
	// Long slide keeps RSI pinned low while leaving SMA20 falling, so the
	// RSI vote (+1) and the trend vote (-1) cancel out.
	closes := make([]float64, 60)
	closes[0] = 500
	for i := 1; i < 60; i++ {
		closes[i] = closes[i-1] - 3
	}
	short, _ := evaluate(t, closes, nil)
	if !hasReason(short, "oversold") {
		t.Fatalf("expected oversold reason, got %v", short.Reasons)
	}
	if !hasReason(short, "below falling SMA20") {
		t.Errorf("expected falling SMA20 reason, got %v", short.Reasons)
	}
	if short.Category != model.SignalSell {
		// RSI +1, SMA20 trend -1, momentum -1
		t.Errorf("expected SELL from net votes, got %s (votes %d)", short.Category, short.VoteSum)
	}
}

func TestEvaluate_StrongRallyShortTermVotes(t *testing.T) {
	closes := declineThenRally()
	short, _ := evaluate(t, closes, nil)

	// Close above a rising SMA20 and strong momentum, against an
	// overbought RSI: net +1.
	if short.Category != model.SignalBuy {
		t.Errorf("expected short-term BUY, got %s (reasons %v)", short.Category, short.Reasons)
	}
	if !hasReason(short, "above rising SMA20") {
		t.Errorf("expected rising SMA20 reason, got %v", short.Reasons)
	}
	if !hasReason(short, "overbought") {
		t.Errorf("expected overbought reason, got %v", short.Reasons)
	}
	if !hasReason(short, "momentum") {
		t.Errorf("expected momentum reason, got %v", short.Reasons)
	}
}

func TestCheckAnalysts_MajorityRules(t *testing.T) {
	tests := []struct {
		name    string
		ratings []model.AnalystRating
		score   int
	}{
		{"buy majority", []model.AnalystRating{model.RatingBuy, model.RatingBuy, model.RatingHold}, +1},
		{"sell majority", []model.AnalystRating{model.RatingSell, model.RatingStrongSell, model.RatingBuy}, -1},
		{"no majority", []model.AnalystRating{model.RatingBuy, model.RatingSell, model.RatingHold, model.RatingHold}, 0},
		{"absent", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := checkAnalysts(tt.ratings)
			switch {
			case tt.score == 0 && v != nil:
				t.Errorf("expected no vote, got %+v", v)
			case tt.score != 0 && (v == nil || v.score != tt.score):
				t.Errorf("expected score %d, got %+v", tt.score, v)
			}
		})
	}
}

func TestReduce_TiesResolveToHold(t *testing.T) {
	sig := reduce(model.HorizonShortTerm, []vote{{+1, "up"}, {-1, "down"}}, false, maxShortVotes)
	if sig.Category != model.SignalHold {
		t.Errorf("tie should be HOLD, got %s", sig.Category)
	}
	if len(sig.Reasons) != 2 {
		t.Errorf("reasons should survive a tie, got %v", sig.Reasons)
	}
}
