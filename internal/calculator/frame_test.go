package calculator

import (
	"math"
	"testing"
	"time"

	"StockScope/internal/model"
)

func testSeries(n int) *model.PriceSeries {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.PriceBar, n)
	for i := range bars {
		p := 100 + math.Sin(float64(i)/3)*10 + float64(i)*0.2
		bars[i] = model.PriceBar{
			Time:   start.AddDate(0, 0, i),
			Open:   p * 0.99,
			High:   p * 1.01,
			Low:    p * 0.98,
			Close:  p,
			Volume: 1000,
		}
	}
	return &model.PriceSeries{Ticker: "TEST", Bars: bars}
}

// sameValue treats two undefined values as equal.
func sameValue(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return a == b
}

func TestCompute_EmptySeries(t *testing.T) {
	_, err := Compute(&model.PriceSeries{Ticker: "EMPTY"}, DefaultParams())
	if err != ErrEmptySeries {
		t.Fatalf("expected ErrEmptySeries, got %v", err)
	}
}

func TestCompute_RecomputeIdentical(t *testing.T) {
	s := testSeries(120)
	p := DefaultParams()

	f1, err := Compute(s, p)
	if err != nil {
		t.Fatalf("first compute: %v", err)
	}
	f2, err := Compute(s, p)
	if err != nil {
		t.Fatalf("second compute: %v", err)
	}
	if len(f1.Rows) != len(f2.Rows) {
		t.Fatalf("row count mismatch: %d vs %d", len(f1.Rows), len(f2.Rows))
	}
	for i := range f1.Rows {
		a, b := f1.Rows[i], f2.Rows[i]
		if !sameValue(a.RSI, b.RSI) || !sameValue(a.SMAShort, b.SMAShort) ||
			!sameValue(a.SMALong, b.SMALong) || !sameValue(a.MACDLine, b.MACDLine) ||
			!sameValue(a.MACDSignal, b.MACDSignal) {
			t.Fatalf("row %d differs between recomputations: %+v vs %+v", i, a, b)
		}
	}
}

func TestCompute_WarmupBoundaries(t *testing.T) {
	s := testSeries(60)
	f, err := Compute(s, DefaultParams())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	for i, row := range f.Rows {
		if got := model.Defined(row.RSI); got != (i >= 14) {
			t.Errorf("row %d: RSI defined=%v", i, got)
		}
		if got := model.Defined(row.SMAShort); got != (i >= 19) {
			t.Errorf("row %d: SMA20 defined=%v", i, got)
		}
		if got := model.Defined(row.SMALong); got != (i >= 49) {
			t.Errorf("row %d: SMA50 defined=%v", i, got)
		}
		// MACD carries a value from the very first bar.
		if !model.Defined(row.MACDLine) || !model.Defined(row.MACDSignal) {
			t.Errorf("row %d: MACD must be defined from bar one", i)
		}
	}
}

func TestCompute_FamilyFailureIsIsolated(t *testing.T) {
	s := testSeries(60)
	p := DefaultParams()
	p.RSIPeriod = -1 // breaks only the RSI family

	f, err := Compute(s, p)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	last := f.Rows[len(f.Rows)-1]
	if model.Defined(last.RSI) {
		t.Error("broken RSI family should stay undefined")
	}
	if !model.Defined(last.SMAShort) || !model.Defined(last.SMALong) {
		t.Error("SMA families must survive an RSI failure")
	}
	if !model.Defined(last.MACDLine) || !model.Defined(last.MACDSignal) {
		t.Error("MACD family must survive an RSI failure")
	}
}

func TestFrame_Latest(t *testing.T) {
	s := testSeries(55)
	f, err := Compute(s, DefaultParams())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	row, ok := f.Latest()
	if !ok {
		t.Fatal("expected latest row")
	}
	if !row.Time.Equal(s.Bars[len(s.Bars)-1].Time) {
		t.Errorf("latest row time %v != last bar time", row.Time)
	}
	if !row.Complete() {
		t.Error("55-bar series should produce a complete latest row")
	}

	var empty *model.IndicatorFrame
	if _, ok := empty.Latest(); ok {
		t.Error("nil frame must report no latest row")
	}
}
