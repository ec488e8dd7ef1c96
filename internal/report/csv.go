package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"StockScope/internal/calculator"
	"StockScope/internal/model"
)

// ExportCSV serializes the OHLCV series and its full indicator frame to
// a tabular file. Column names carry the configured window lengths, the
// same naming the console report uses. Undefined values become empty
// cells.
func ExportCSV(s *model.PriceSeries, f *model.IndicatorFrame, p calculator.Params, path string) error {
	if s.Len() != len(f.Rows) {
		return fmt.Errorf("series and frame length mismatch: %d vs %d", s.Len(), len(f.Rows))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	header := []string{
		"Date", "Open", "High", "Low", "Close", "Volume",
		fmt.Sprintf("RSI_%d", p.RSIPeriod),
		fmt.Sprintf("SMA_%d", p.SMAShort),
		fmt.Sprintf("SMA_%d", p.SMALong),
		fmt.Sprintf("MACD_%d_%d_%d", p.MACDFast, p.MACDSlow, p.MACDSignal),
		fmt.Sprintf("MACDs_%d_%d_%d", p.MACDFast, p.MACDSlow, p.MACDSignal),
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i, bar := range s.Bars {
		row := f.Rows[i]
		record := []string{
			bar.Time.Format("2006-01-02"),
			cell(bar.Open),
			cell(bar.High),
			cell(bar.Low),
			cell(bar.Close),
			strconv.FormatInt(bar.Volume, 10),
			cell(row.RSI),
			cell(row.SMAShort),
			cell(row.SMALong),
			cell(row.MACDLine),
			cell(row.MACDSignal),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

func cell(v float64) string {
	if !model.Defined(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
