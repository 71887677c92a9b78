package model

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors for raw input data. These are fatal: a request with a
// malformed series produces no report at all.
var (
	ErrEmptySeries        = errors.New("price series is empty")
	ErrNonPositivePrice   = errors.New("price must be positive")
	ErrNegativeVolume     = errors.New("volume must be non-negative")
	ErrBadPriceRange      = errors.New("high/low inconsistent with open/close")
	ErrNonMonotonicSeries = errors.New("bar timestamps must be strictly increasing")
)

// Bar is one OHLCV trading period. Immutable once constructed.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

func (b Bar) validate() error {
	if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
		return ErrNonPositivePrice
	}
	if b.Volume < 0 {
		return ErrNegativeVolume
	}
	if b.High < b.Open || b.High < b.Close || b.High < b.Low {
		return ErrBadPriceRange
	}
	if b.Low > b.Open || b.Low > b.Close {
		return ErrBadPriceRange
	}
	return nil
}

// PriceSeries holds the validated, chronologically ordered bars for one
// instrument. It is constructed once per analysis request and read-only
// for the rest of the pipeline.
type PriceSeries struct {
	Symbol    string
	Bars      []Bar
	FetchedAt time.Time
}

// NewPriceSeries validates the raw bars and wraps them into a PriceSeries.
func NewPriceSeries(symbol string, bars []Bar) (*PriceSeries, error) {
	if len(bars) == 0 {
		return nil, ErrEmptySeries
	}
	for i, b := range bars {
		if err := b.validate(); err != nil {
			return nil, fmt.Errorf("bar %d (%s): %w", i, b.Time.Format("2006-01-02"), err)
		}
		if i > 0 && !bars[i-1].Time.Before(b.Time) {
			return nil, fmt.Errorf("bar %d (%s): %w", i, b.Time.Format("2006-01-02"), ErrNonMonotonicSeries)
		}
	}
	return &PriceSeries{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}, nil
}

// Len returns the number of bars.
func (s *PriceSeries) Len() int { return len(s.Bars) }

// Last returns the most recent bar.
func (s *PriceSeries) Last() Bar { return s.Bars[len(s.Bars)-1] }

// Closes returns the close prices in chronological order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}
