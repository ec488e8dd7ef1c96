package model

import (
	"math"
	"time"
)

// Undefined returns the marker for an indicator value that cannot be
// computed yet (rolling window not full, or the family failed).
func Undefined() float64 { return math.NaN() }

// Defined reports whether an indicator value is usable.
func Defined(v float64) bool { return !math.IsNaN(v) }

// IndicatorRow holds the derived values at one timestamp.
// Any field may be Undefined until its rolling window has filled.
type IndicatorRow struct {
	Time       time.Time
	Close      float64
	RSI        float64
	SMAShort   float64
	SMALong    float64
	MACDLine   float64
	MACDSignal float64
}

// Complete reports whether every value required for an aggregate
// verdict is defined in this row.
func (r IndicatorRow) Complete() bool {
	return Defined(r.RSI) && Defined(r.SMAShort) && Defined(r.SMALong) &&
		Defined(r.MACDLine) && Defined(r.MACDSignal)
}

// IndicatorFrame is the full per-bar indicator table for one ticker.
// It is derived once from a PriceSeries and never mutated afterwards.
type IndicatorFrame struct {
	Ticker string
	Rows   []IndicatorRow
}

// Latest returns the most recent row. ok is false for an empty frame.
func (f *IndicatorFrame) Latest() (row IndicatorRow, ok bool) {
	if f == nil || len(f.Rows) == 0 {
		return IndicatorRow{}, false
	}
	return f.Rows[len(f.Rows)-1], true
}
