package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"StockScope/internal/calculator"
	"StockScope/internal/model"
)

func exportFixture(n int) (*model.PriceSeries, *model.IndicatorFrame) {
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.PriceBar, n)
	for i := range bars {
		p := 100 + float64(i)
		bars[i] = model.PriceBar{
			Time: start.AddDate(0, 0, i), Open: p, High: p + 1, Low: p - 1,
			Close: p, Volume: int64(1000 + i),
		}
	}
	s := &model.PriceSeries{Ticker: "TEST", Bars: bars}
	f, err := calculator.Compute(s, calculator.DefaultParams())
	if err != nil {
		panic(err)
	}
	return s, f
}

func TestExportCSV(t *testing.T) {
	s, f := exportFixture(60)
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := ExportCSV(s, f, calculator.DefaultParams(), path); err != nil {
		t.Fatalf("export: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(records) != 61 {
		t.Fatalf("rows=%d, want header plus 60", len(records))
	}

	header := records[0]
	want := []string{
		"Date", "Open", "High", "Low", "Close", "Volume",
		"RSI_14", "SMA_20", "SMA_50", "MACD_12_26_9", "MACDs_12_26_9",
	}
	for i, col := range want {
		if header[i] != col {
			t.Errorf("header[%d]=%q, want %q", i, header[i], col)
		}
	}

	// Warmup rows export undefined values as empty cells.
	if got := records[1][6]; got != "" {
		t.Errorf("first row RSI cell=%q, want empty", got)
	}
	if got := records[1][9]; got == "" {
		t.Error("MACD column must be populated from the first row")
	}
	// Past all warmups every indicator cell carries a value.
	last := records[len(records)-1]
	for i := 6; i < len(last); i++ {
		if last[i] == "" {
			t.Errorf("last row column %d empty", i)
		}
	}
	if last[0] != s.Bars[59].Time.Format("2006-01-02") {
		t.Errorf("last date cell=%q", last[0])
	}
}

func TestExportCSV_LengthMismatch(t *testing.T) {
	s, f := exportFixture(10)
	f.Rows = f.Rows[:5]
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := ExportCSV(s, f, calculator.DefaultParams(), path); err == nil {
		t.Fatal("length mismatch must fail")
	}
}

func TestExportCSV_BadPath(t *testing.T) {
	s, f := exportFixture(5)
	path := filepath.Join(t.TempDir(), "missing", "out.csv")
	if err := ExportCSV(s, f, calculator.DefaultParams(), path); err == nil {
		t.Fatal("unwritable path must fail")
	}
}
