// Package analyzer orchestrates one per-ticker run: collect, compute,
// synthesize, report, record. Stages are pure transformations; runs for
// different tickers share no mutable state and may execute concurrently.
package analyzer

import (
	"fmt"
	"io"
	"log"

	"StockScope/internal/calculator"
	"StockScope/internal/collector"
	"StockScope/internal/fundamental"
	"StockScope/internal/recorder"
	"StockScope/internal/report"
	"StockScope/internal/strategy"
)

// Runner wires the pipeline stages for per-ticker analysis.
type Runner struct {
	Collector    *collector.Collector
	Fundamentals *fundamental.Normalizer
	Recorder     recorder.Recorder
	Params       calculator.Params
	Thresholds   strategy.Thresholds
	Out          io.Writer
}

// Request names one analysis run.
type Request struct {
	Ticker     string
	Period     string
	Interval   string
	ExportPath string
}

// Analyze runs the full pipeline for one ticker. Price-series and
// indicator failures are fatal to this run only; fundamentals and
// export/record failures degrade with a diagnostic.
func (r *Runner) Analyze(req Request) error {
	s, err := r.Collector.Collect(req.Ticker, req.Period, req.Interval)
	if err != nil {
		return err
	}

	frame, err := calculator.Compute(s, r.Params)
	if err != nil {
		return fmt.Errorf("compute indicators: %w", err)
	}
	row, ok := frame.Latest()
	if !ok {
		return calculator.ErrEmptySeries
	}

	sig := strategy.Evaluate(row, r.Thresholds)
	snap := r.Fundamentals.Snapshot(req.Ticker, row.Time)

	fmt.Fprint(r.Out, report.FormatReport(req.Ticker, row, sig, snap, r.Params))

	if req.ExportPath != "" {
		if err := report.ExportCSV(s, frame, r.Params, req.ExportPath); err != nil {
			log.Printf("[WARN] %s: csv export: %v", req.Ticker, err)
			fmt.Fprintf(r.Out, "\nCSV 저장 중 오류 발생: %v\n", err)
		} else {
			fmt.Fprintf(r.Out, "\n데이터가 '%s' 파일로 저장되었습니다.\n", req.ExportPath)
		}
	}

	if err := r.Recorder.RecordRun(&recorder.RunRecord{
		Ticker:     req.Ticker,
		BarTime:    row.Time,
		Close:      row.Close,
		RSI:        row.RSI,
		SMAShort:   row.SMAShort,
		SMALong:    row.SMALong,
		MACDLine:   row.MACDLine,
		MACDSignal: row.MACDSignal,
		Verdict:    string(sig.Verdict),
		PER:        snap.PER,
		PBR:        snap.PBR,
		ROE:        snap.ROE,
	}); err != nil {
		log.Printf("[ERROR] %s: record run: %v", req.Ticker, err)
	}

	return nil
}
