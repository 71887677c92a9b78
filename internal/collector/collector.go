package collector

import (
	"fmt"
	"log"
	"time"

	"StockPulse/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars    []model.Bar
	Ratings []model.AnalystRating
	News    []model.NewsItem
	Price   float64
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, days int) ([]model.Bar, error) {
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateMockBars(m.Price, days), nil
}

func (m *MockFetcher) FetchAnalystRatings(_ string) ([]model.AnalystRating, error) {
	return m.Ratings, nil
}

func (m *MockFetcher) FetchNews(_ string, limit int) ([]model.NewsItem, error) {
	if len(m.News) > limit {
		return m.News[:limit], nil
	}
	return m.News, nil
}

// GenerateMockBars builds a gently drifting series around basePrice.
func GenerateMockBars(basePrice float64, count int) []model.Bar {
	if basePrice <= 0 {
		basePrice = 100
	}
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector turns provider data into the validated inputs of one analysis
// request. A bad series is fatal; missing analyst ratings or news degrade to
// nil side data and a warning.
type Collector struct {
	Fetcher     Fetcher
	HistoryDays int
	NewsLimit   int
}

// NewCollector creates a Collector with the given history depth.
func NewCollector(fetcher Fetcher, historyDays, newsLimit int) *Collector {
	if historyDays <= 0 {
		historyDays = 400
	}
	if newsLimit <= 0 {
		newsLimit = 10
	}
	return &Collector{Fetcher: fetcher, HistoryDays: historyDays, NewsLimit: newsLimit}
}

// Collect fetches and validates everything the analyzer needs for symbol.
func (c *Collector) Collect(symbol string) (*model.PriceSeries, []model.AnalystRating, []model.NewsItem, error) {
	bars, err := c.Fetcher.FetchDailyBars(symbol, c.HistoryDays)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("fetch daily bars: %w", err)
	}
	series, err := model.NewPriceSeries(symbol, bars)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("validate series: %w", err)
	}

	ratings, err := c.Fetcher.FetchAnalystRatings(symbol)
	if err != nil {
		log.Printf("[WARN] fetch analyst ratings for %s failed: %v", symbol, err)
		ratings = nil
	}
	news, err := c.Fetcher.FetchNews(symbol, c.NewsLimit)
	if err != nil {
		log.Printf("[WARN] fetch news for %s failed: %v", symbol, err)
		news = nil
	}
	return series, ratings, news, nil
}
