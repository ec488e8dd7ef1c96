package calculator

import (
	"math"
	"testing"

	"StockScope/internal/model"
)

func TestRSISeries_ShortHistoryUndefined(t *testing.T) {
	closes := make([]float64, 13)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	rsi, err := RSISeries(closes, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range rsi {
		if model.Defined(v) {
			t.Errorf("row %d: expected undefined RSI for short history, got %.2f", i, v)
		}
	}
}

func TestRSISeries_DefinedAfterWarmup(t *testing.T) {
	closes := []float64{
		100, 101, 99, 102, 104, 103, 105, 104, 106, 108,
		107, 109, 110, 108, 111, 112, 110, 113, 115, 114,
	}
	rsi, err := RSISeries(closes, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 14; i++ {
		if model.Defined(rsi[i]) {
			t.Errorf("row %d: expected undefined RSI during warmup, got %.2f", i, rsi[i])
		}
	}
	for i := 14; i < len(rsi); i++ {
		if !model.Defined(rsi[i]) {
			t.Fatalf("row %d: expected defined RSI after warmup", i)
		}
		if rsi[i] < 0 || rsi[i] > 100 {
			t.Errorf("row %d: RSI %.4f out of [0,100]", i, rsi[i])
		}
	}
}

func TestRSISeries_NoLossWindowIs100(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	rsi, err := RSISeries(closes, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := rsi[len(rsi)-1]
	if last != 100.0 {
		t.Errorf("expected RSI=100 for a window with no down-days, got %.4f", last)
	}
}

func TestRSISeries_AllLossesNearZero(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 - float64(i)
	}
	rsi, err := RSISeries(closes, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := rsi[len(rsi)-1]
	if math.Abs(last) > 1e-9 {
		t.Errorf("expected RSI≈0 for a window with no up-days, got %.6f", last)
	}
}

func TestRSISeries_SimpleAverageWindow(t *testing.T) {
	// One early loss must leave the window after `period` more bars;
	// a plain mean forgets it completely, unlike Wilder smoothing.
	closes := []float64{100, 90} // big early loss
	for i := 0; i < 20; i++ {
		closes = append(closes, 90+float64(i+1))
	}
	rsi, err := RSISeries(closes, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := rsi[len(rsi)-1]
	if last != 100.0 {
		t.Errorf("expected RSI=100 once the early loss left the window, got %.4f", last)
	}
}

func TestRSISeries_BadPeriod(t *testing.T) {
	if _, err := RSISeries([]float64{1, 2, 3}, 0); err == nil {
		t.Error("expected error for non-positive period")
	}
}
