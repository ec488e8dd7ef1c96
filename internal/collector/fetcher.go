package collector

import (
	"fmt"

	"StockScope/internal/series"
)

// Fetcher defines the interface for retrieving raw price history.
type Fetcher interface {
	FetchQuotes(ticker, period, interval string) (*series.RawTable, error)
	Name() string
}

// NoDataError signals that the ticker/period/interval combination
// yielded nothing. Downstream it is treated exactly like an empty series.
type NoDataError struct {
	Ticker   string
	Period   string
	Interval string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no data for %s (period=%s interval=%s)", e.Ticker, e.Period, e.Interval)
}
