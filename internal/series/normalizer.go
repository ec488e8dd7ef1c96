// Package series harmonizes provider-shaped price tables into the
// canonical close-bearing PriceSeries used by the indicator engine.
package series

import (
	"math"
	"sort"
	"strings"
	"time"

	"StockScope/internal/model"
)

// Canonical field names after normalization.
const (
	FieldOpen     = "open"
	FieldHigh     = "high"
	FieldLow      = "low"
	FieldClose    = "close"
	FieldAdjClose = "adjclose"
	FieldVolume   = "volume"
)

// Column identifies one column of a raw quote table. Ticker is empty for
// single-level tables; a provider that batches multiple symbols returns
// field × ticker columns and sets it.
type Column struct {
	Field  string
	Ticker string
}

// RawTable is the provider-shaped price table before normalization.
type RawTable struct {
	Ticker     string
	Timestamps []time.Time
	Columns    map[Column][]float64
}

// Normalize collapses a raw quote table to a canonical PriceSeries:
// the ticker column level is dropped, field names are lower-cased, and
// the adjusted close is preferred over the raw close when both exist.
// The empty check runs before field resolution.
func Normalize(raw *RawTable) (*model.PriceSeries, error) {
	if raw == nil || len(raw.Timestamps) == 0 {
		ticker := ""
		if raw != nil {
			ticker = raw.Ticker
		}
		return nil, &EmptySeriesError{Ticker: ticker}
	}

	// Collapse to the field level: the table carries a single ticker at
	// this stage, so the ticker level is dropped entirely.
	fields := make(map[string][]float64, len(raw.Columns))
	for col, values := range raw.Columns {
		name := normalizeField(col.Field)
		fields[name] = values
	}

	// Resolve the canonical close: adjusted close wins and replaces any
	// raw close field.
	if adj, ok := fields[FieldAdjClose]; ok {
		fields[FieldClose] = adj
		delete(fields, FieldAdjClose)
	}
	closes, ok := fields[FieldClose]
	if !ok {
		available := make([]string, 0, len(fields))
		for name := range fields {
			available = append(available, name)
		}
		return nil, &MissingPriceFieldError{Ticker: raw.Ticker, Available: available}
	}

	opens := fields[FieldOpen]
	highs := fields[FieldHigh]
	lows := fields[FieldLow]
	volumes := fields[FieldVolume]

	bars := make([]model.PriceBar, 0, len(raw.Timestamps))
	for i, ts := range raw.Timestamps {
		if i >= len(closes) || math.IsNaN(closes[i]) {
			continue // provider gap (holiday etc.)
		}
		bar := model.PriceBar{Time: ts, Close: closes[i]}
		if i < len(opens) {
			bar.Open = opens[i]
		}
		if i < len(highs) {
			bar.High = highs[i]
		}
		if i < len(lows) {
			bar.Low = lows[i]
		}
		if i < len(volumes) && !math.IsNaN(volumes[i]) {
			bar.Volume = int64(volumes[i])
		}
		bars = append(bars, bar)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	bars = dedupe(bars)

	if len(bars) == 0 {
		return nil, &EmptySeriesError{Ticker: raw.Ticker}
	}

	return &model.PriceSeries{
		Ticker:    raw.Ticker,
		Bars:      bars,
		FetchedAt: time.Now(),
	}, nil
}

// normalizeField maps a provider field name to its canonical form.
func normalizeField(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, " ", "")
	n = strings.ReplaceAll(n, "_", "")
	if n == "adjustedclose" {
		n = FieldAdjClose
	}
	return n
}

// dedupe keeps the last bar for each timestamp; input must be sorted.
func dedupe(bars []model.PriceBar) []model.PriceBar {
	out := bars[:0]
	for _, b := range bars {
		if len(out) > 0 && out[len(out)-1].Time.Equal(b.Time) {
			out[len(out)-1] = b
			continue
		}
		out = append(out, b)
	}
	return out
}
