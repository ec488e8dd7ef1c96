package strategy

import "StockScope/internal/model"

// Thresholds holds the RSI bands used for overbought/oversold states.
type Thresholds struct {
	Overbought float64
	Oversold   float64
}

// DefaultThresholds returns the classic 70/30 RSI bands.
func DefaultThresholds() Thresholds {
	return Thresholds{Overbought: 70, Oversold: 30}
}

// Evaluate classifies the latest indicator row into per-indicator states
// and an aggregate verdict.
//
// The verdict is defined only when RSI, both SMAs, and both MACD values
// are all defined; otherwise it is Indeterminate. Ties favor caution:
// equality of the SMAs or of the MACD lines counts as the non-bullish
// branch.
func Evaluate(row model.IndicatorRow, th Thresholds) *model.TradeSignal {
	sig := &model.TradeSignal{
		RSIState:  classifyRSI(row, th),
		SMAState:  classifySMACross(row),
		MACDState: classifyMACDCross(row),
	}

	if !row.Complete() {
		sig.Verdict = model.VerdictIndeterminate
		return sig
	}

	sig.TrendUp = row.SMAShort > row.SMALong
	sig.MomentumUp = row.MACDLine > row.MACDSignal
	sig.NotOverbought = row.RSI < th.Overbought
	sig.NotOversold = row.RSI > th.Oversold

	switch {
	case sig.TrendUp && sig.MomentumUp && sig.NotOverbought:
		sig.Verdict = model.VerdictBullish
	case !sig.TrendUp && !sig.MomentumUp && sig.NotOversold:
		sig.Verdict = model.VerdictBearish
	default:
		sig.Verdict = model.VerdictNeutral
	}
	return sig
}

func classifyRSI(row model.IndicatorRow, th Thresholds) model.IndicatorState {
	if !model.Defined(row.RSI) {
		return model.StateUnknown
	}
	switch {
	case row.RSI > th.Overbought:
		return model.StateOverbought
	case row.RSI < th.Oversold:
		return model.StateOversold
	default:
		return model.StateNeutral
	}
}

func classifySMACross(row model.IndicatorRow) model.IndicatorState {
	if !model.Defined(row.SMAShort) || !model.Defined(row.SMALong) {
		return model.StateUnknown
	}
	if row.SMAShort > row.SMALong {
		return model.StateBullish
	}
	return model.StateBearish
}

func classifyMACDCross(row model.IndicatorRow) model.IndicatorState {
	if !model.Defined(row.MACDLine) || !model.Defined(row.MACDSignal) {
		return model.StateUnknown
	}
	if row.MACDLine > row.MACDSignal {
		return model.StateBullish
	}
	return model.StateBearish
}
