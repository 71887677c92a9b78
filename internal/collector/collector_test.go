package collector

import (
	"errors"
	"testing"

	"StockPulse/internal/model"
)

// flakyFetcher serves bars but fails all side-data calls.
type flakyFetcher struct {
	MockFetcher
}

func (f *flakyFetcher) FetchAnalystRatings(string) ([]model.AnalystRating, error) {
	return nil, errors.New("quote summary unavailable")
}

func (f *flakyFetcher) FetchNews(string, int) ([]model.NewsItem, error) {
	return nil, errors.New("search unavailable")
}

func TestCollect_HappyPath(t *testing.T) {
	fetcher := &MockFetcher{
		Price:   150,
		Ratings: []model.AnalystRating{model.RatingBuy, model.RatingHold},
		News:    []model.NewsItem{{Title: "a"}, {Title: "b"}, {Title: "c"}},
	}
	c := NewCollector(fetcher, 300, 2)

	series, ratings, news, err := c.Collect("AAPL")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if series.Len() != 300 {
		t.Errorf("expected 300 bars, got %d", series.Len())
	}
	if series.Symbol != "AAPL" {
		t.Errorf("expected symbol AAPL, got %s", series.Symbol)
	}
	if len(ratings) != 2 {
		t.Errorf("expected 2 ratings, got %d", len(ratings))
	}
	if len(news) != 2 {
		t.Errorf("news should honor the limit, got %d", len(news))
	}
}

func TestCollect_SideDataFailuresDegrade(t *testing.T) {
	c := NewCollector(&flakyFetcher{MockFetcher{Price: 100}}, 100, 10)

	series, ratings, news, err := c.Collect("AAPL")
	if err != nil {
		t.Fatalf("side data failures must not fail the collect: %v", err)
	}
	if series == nil || series.Len() != 100 {
		t.Fatal("series should still be returned")
	}
	if ratings != nil || news != nil {
		t.Errorf("failed side data should degrade to nil, got %v / %v", ratings, news)
	}
}

func TestCollect_BadSeriesIsFatal(t *testing.T) {
	fetcher := &MockFetcher{
		Bars: []model.Bar{{Open: -1, High: 1, Low: 1, Close: 1}},
	}
	c := NewCollector(fetcher, 100, 10)
	if _, _, _, err := c.Collect("AAPL"); err == nil {
		t.Error("invalid bars should fail the collect")
	}
}

func TestGenerateMockBars(t *testing.T) {
	bars := GenerateMockBars(0, 50)
	if len(bars) != 50 {
		t.Fatalf("expected 50 bars, got %d", len(bars))
	}
	if _, err := model.NewPriceSeries("MOCK", bars); err != nil {
		t.Errorf("mock bars should always validate: %v", err)
	}
}
