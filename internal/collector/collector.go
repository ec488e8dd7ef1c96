package collector

import (
	"fmt"
	"time"

	"StockScope/internal/model"
	"StockScope/internal/series"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Table *series.RawTable
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchQuotes(ticker, _, _ string) (*series.RawTable, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Table != nil {
		return m.Table, nil
	}
	return GenerateMockTable(ticker, 100.0, 120), nil
}

// GenerateMockTable builds a deterministic raw table around a base price.
func GenerateMockTable(ticker string, basePrice float64, count int) *series.RawTable {
	timestamps := make([]time.Time, count)
	closes := make([]float64, count)
	opens := make([]float64, count)
	highs := make([]float64, count)
	lows := make([]float64, count)
	volumes := make([]float64, count)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		timestamps[i] = start.AddDate(0, 0, i)
		opens[i] = p * 0.999
		highs[i] = p * 1.005
		lows[i] = p * 0.995
		closes[i] = p
		volumes[i] = 1000000
	}

	return &series.RawTable{
		Ticker:     ticker,
		Timestamps: timestamps,
		Columns: map[series.Column][]float64{
			{Field: "Open", Ticker: ticker}:   opens,
			{Field: "High", Ticker: ticker}:   highs,
			{Field: "Low", Ticker: ticker}:    lows,
			{Field: "Close", Ticker: ticker}:  closes,
			{Field: "Volume", Ticker: ticker}: volumes,
		},
	}
}

// Collector fetches raw quotes and hands them to the series normalizer.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect retrieves and normalizes the price series for one ticker.
// A provider NoDataError is folded into the empty-series failure path so
// callers deal with a single fatal condition.
func (c *Collector) Collect(ticker, period, interval string) (*model.PriceSeries, error) {
	raw, err := c.Fetcher.FetchQuotes(ticker, period, interval)
	if err != nil {
		if IsNoData(err) {
			return nil, &series.EmptySeriesError{Ticker: ticker}
		}
		return nil, fmt.Errorf("fetch quotes: %w", err)
	}

	s, err := series.Normalize(raw)
	if err != nil {
		return nil, err
	}
	if !strictlyIncreasing(s) {
		// Normalize sorts and dedupes; this is a guard against a
		// misbehaving Fetcher implementation handing bars out directly.
		return nil, fmt.Errorf("%s: series timestamps not strictly increasing", ticker)
	}
	return s, nil
}

func strictlyIncreasing(s *model.PriceSeries) bool {
	for i := 1; i < len(s.Bars); i++ {
		if !s.Bars[i-1].Time.Before(s.Bars[i].Time) {
			return false
		}
	}
	return true
}
