package fundamental

import (
	"errors"
	"math"
	"testing"
	"time"

	"StockScope/internal/model"
)

type stubIntl struct {
	ratios *InternationalRatios
	err    error
	called bool
}

func (s *stubIntl) FetchRatios(string) (*InternationalRatios, error) {
	s.called = true
	return s.ratios, s.err
}
func (s *stubIntl) Name() string { return "stub-intl" }

type stubRegional struct {
	row     *RegionalRow
	err     error
	gotDate string
	gotCode string
}

func (s *stubRegional) FetchRow(date, code string) (*RegionalRow, error) {
	s.gotDate, s.gotCode = date, code
	return s.row, s.err
}
func (s *stubRegional) Name() string { return "stub-regional" }

var refDate = time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

func newTestNormalizer(intl InternationalProvider, regional RegionalProvider) *Normalizer {
	return NewNormalizer(intl, regional, []string{".KS", ".KQ"})
}

func TestSnapshot_RegionalDispatchAndROE(t *testing.T) {
	regional := &stubRegional{row: &RegionalRow{
		Code: "005930",
		PER:  model.Ratio(12.5),
		PBR:  model.Ratio(1.3),
		EPS:  model.Ratio(1000),
		BPS:  model.Ratio(10000),
	}}
	intl := &stubIntl{}
	n := newTestNormalizer(intl, regional)

	snap := n.Snapshot("005930.KS", refDate)
	if intl.called {
		t.Error("regional ticker must not touch the international provider")
	}
	if regional.gotDate != "20240531" {
		t.Errorf("reference date sent as %q, want 20240531", regional.gotDate)
	}
	if regional.gotCode != "005930" {
		t.Errorf("local code sent as %q, want 005930", regional.gotCode)
	}
	if snap.ROE == nil {
		t.Fatal("expected derived ROE")
	}
	if math.Abs(*snap.ROE-0.10) > 1e-12 {
		t.Errorf("ROE=%.12f, want 0.10 (EPS/BPS)", *snap.ROE)
	}
	if snap.PER == nil || *snap.PER != 12.5 {
		t.Errorf("PER not passed through: %v", snap.PER)
	}
}

func TestSnapshot_ROEGuards(t *testing.T) {
	tests := []struct {
		name string
		eps  *float64
		bps  *float64
	}{
		{"zero bps", model.Ratio(1000), model.Ratio(0)},
		{"absent bps", model.Ratio(1000), nil},
		{"nan bps", model.Ratio(1000), model.Ratio(math.NaN())},
		{"absent eps", nil, model.Ratio(10000)},
		{"nan eps", model.Ratio(math.NaN()), model.Ratio(10000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regional := &stubRegional{row: &RegionalRow{Code: "005930", EPS: tt.eps, BPS: tt.bps}}
			n := newTestNormalizer(&stubIntl{}, regional)
			snap := n.Snapshot("005930.KQ", refDate)
			if snap.ROE != nil {
				t.Errorf("ROE must be absent, got %v", *snap.ROE)
			}
		})
	}
}

func TestSnapshot_InternationalPassThrough(t *testing.T) {
	intl := &stubIntl{ratios: &InternationalRatios{
		TrailingPER:    model.Ratio(28.4),
		ForwardPER:     model.Ratio(24.1), // unused downstream
		PriceToBook:    model.Ratio(11.2),
		ReturnOnEquity: model.Ratio(0.31),
	}}
	n := newTestNormalizer(intl, &stubRegional{})

	snap := n.Snapshot("AAPL", refDate)
	if snap.PER == nil || *snap.PER != 28.4 {
		t.Errorf("PER=%v, want trailing 28.4", snap.PER)
	}
	if snap.PBR == nil || *snap.PBR != 11.2 {
		t.Errorf("PBR=%v, want 11.2", snap.PBR)
	}
	if snap.ROE == nil || *snap.ROE != 0.31 {
		t.Errorf("ROE=%v, want fraction 0.31 unchanged", snap.ROE)
	}
}

func TestSnapshot_MissingFieldsAreNotErrors(t *testing.T) {
	intl := &stubIntl{ratios: &InternationalRatios{PriceToBook: model.Ratio(2.0)}}
	n := newTestNormalizer(intl, &stubRegional{})

	snap := n.Snapshot("NVDA", refDate)
	if snap.PER != nil || snap.ROE != nil {
		t.Errorf("absent provider fields must stay nil: %+v", snap)
	}
	if snap.PBR == nil {
		t.Error("present field dropped")
	}
	if snap.Empty() {
		t.Error("snapshot with one ratio is not empty")
	}
}

func TestSnapshot_ProviderFaultDegradesToEmpty(t *testing.T) {
	boom := errors.New("connection refused")

	n := newTestNormalizer(&stubIntl{err: boom}, &stubRegional{err: boom})
	if snap := n.Snapshot("AAPL", refDate); !snap.Empty() {
		t.Errorf("international fault must yield empty snapshot: %+v", snap)
	}
	if snap := n.Snapshot("005930.KS", refDate); !snap.Empty() {
		t.Errorf("regional fault must yield empty snapshot: %+v", snap)
	}

	// Unconfigured providers degrade the same way.
	n = newTestNormalizer(nil, nil)
	if snap := n.Snapshot("AAPL", refDate); !snap.Empty() {
		t.Error("missing international provider must yield empty snapshot")
	}
	if snap := n.Snapshot("005930.KS", refDate); !snap.Empty() {
		t.Error("missing regional provider must yield empty snapshot")
	}
}

func TestSnapshot_NaNRatiosCleaned(t *testing.T) {
	intl := &stubIntl{ratios: &InternationalRatios{TrailingPER: model.Ratio(math.NaN())}}
	n := newTestNormalizer(intl, &stubRegional{})
	if snap := n.Snapshot("AAPL", refDate); snap.PER != nil {
		t.Error("NaN ratio must normalize to absent")
	}
}
