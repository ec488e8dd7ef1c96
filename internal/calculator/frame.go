package calculator

import (
	"errors"
	"log"

	"StockScope/internal/model"
)

// ErrEmptySeries is returned when an IndicatorFrame is requested for a
// series with no bars. Upstream normalization should make this unreachable.
var ErrEmptySeries = errors.New("empty price series")

// Params holds the rolling-window lengths for every indicator family.
// They live here rather than as package globals so callers can thread
// configured values through explicitly.
type Params struct {
	RSIPeriod  int
	SMAShort   int
	SMALong    int
	MACDFast   int
	MACDSlow   int
	MACDSignal int
}

// DefaultParams returns the classic RSI(14), SMA(20/50), MACD(12,26,9) setup.
func DefaultParams() Params {
	return Params{
		RSIPeriod:  14,
		SMAShort:   20,
		SMALong:    50,
		MACDFast:   12,
		MACDSlow:   26,
		MACDSignal: 9,
	}
}

// Compute derives the full IndicatorFrame for a price series. It is a
// pure function of its inputs: same series and params, same frame.
//
// The four families are independent. A failure in one (e.g. a bad
// configured period) leaves that family's column Undefined and is
// logged; it never aborts the frame. Only an invalid series itself is a
// hard failure.
func Compute(s *model.PriceSeries, p Params) (*model.IndicatorFrame, error) {
	if s.Len() == 0 {
		return nil, ErrEmptySeries
	}
	closes := s.Closes()
	n := len(closes)

	undefined := func() []float64 {
		col := make([]float64, n)
		for i := range col {
			col[i] = model.Undefined()
		}
		return col
	}

	rsi, err := RSISeries(closes, p.RSIPeriod)
	if err != nil {
		log.Printf("[WARN] %s: RSI(%d) not computed: %v", s.Ticker, p.RSIPeriod, err)
		rsi = undefined()
	}
	smaShort, err := SMASeries(closes, p.SMAShort)
	if err != nil {
		log.Printf("[WARN] %s: SMA(%d) not computed: %v", s.Ticker, p.SMAShort, err)
		smaShort = undefined()
	}
	smaLong, err := SMASeries(closes, p.SMALong)
	if err != nil {
		log.Printf("[WARN] %s: SMA(%d) not computed: %v", s.Ticker, p.SMALong, err)
		smaLong = undefined()
	}
	macd, macdSig, err := MACDSeries(closes, p.MACDFast, p.MACDSlow, p.MACDSignal)
	if err != nil {
		log.Printf("[WARN] %s: MACD(%d,%d,%d) not computed: %v",
			s.Ticker, p.MACDFast, p.MACDSlow, p.MACDSignal, err)
		macd, macdSig = undefined(), undefined()
	}

	frame := &model.IndicatorFrame{
		Ticker: s.Ticker,
		Rows:   make([]model.IndicatorRow, n),
	}
	for i, bar := range s.Bars {
		frame.Rows[i] = model.IndicatorRow{
			Time:       bar.Time,
			Close:      bar.Close,
			RSI:        rsi[i],
			SMAShort:   smaShort[i],
			SMALong:    smaLong[i],
			MACDLine:   macd[i],
			MACDSignal: macdSig[i],
		}
	}
	return frame, nil
}
