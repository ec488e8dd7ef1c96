package recorder

import "time"

// RunRecord holds the outcome of one per-ticker analysis run: the latest
// bar's indicator values, the verdict, and the fundamental ratios.
type RunRecord struct {
	Ticker     string
	BarTime    time.Time
	Close      float64
	RSI        float64
	SMAShort   float64
	SMALong    float64
	MACDLine   float64
	MACDSignal float64
	Verdict    string
	PER        *float64
	PBR        *float64
	ROE        *float64
}

// Recorder persists run history for later inspection. Recording is an
// audit trail only; it never feeds back into analysis.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
