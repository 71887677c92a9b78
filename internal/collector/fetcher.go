package collector

import "StockPulse/internal/model"

// Fetcher defines the interface for the external market-data provider.
type Fetcher interface {
	FetchDailyBars(symbol string, days int) ([]model.Bar, error)
	FetchAnalystRatings(symbol string) ([]model.AnalystRating, error)
	FetchNews(symbol string, limit int) ([]model.NewsItem, error)
	Name() string
}
