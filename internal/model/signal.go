package model

// Verdict is the aggregate three-way classification of the latest bar.
type Verdict string

const (
	VerdictBullish       Verdict = "BULLISH"
	VerdictBearish       Verdict = "BEARISH"
	VerdictNeutral       Verdict = "NEUTRAL"
	VerdictIndeterminate Verdict = "INDETERMINATE"
)

// IndicatorState classifies a single indicator at the latest bar.
type IndicatorState string

const (
	StateOverbought IndicatorState = "OVERBOUGHT"
	StateOversold   IndicatorState = "OVERSOLD"
	StateNeutral    IndicatorState = "NEUTRAL"
	StateBullish    IndicatorState = "BULLISH"
	StateBearish    IndicatorState = "BEARISH"
	StateUnknown    IndicatorState = "UNKNOWN"
)

// TradeSignal is the final output of the strategy engine: the aggregate
// verdict plus the per-indicator states and boolean flags that justify it.
type TradeSignal struct {
	Verdict   Verdict
	RSIState  IndicatorState
	SMAState  IndicatorState
	MACDState IndicatorState

	TrendUp       bool
	MomentumUp    bool
	NotOverbought bool
	NotOversold   bool
}
