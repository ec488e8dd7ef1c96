package collector

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"StockScope/internal/series"
)

// YahooFetcher implements Fetcher using the Yahoo Finance chart API.
type YahooFetcher struct {
	Client *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
// Quote arrays carry nulls for holiday gaps, hence the pointer elements.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
				AdjClose []struct {
					AdjClose []*float64 `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchQuotes downloads history and returns it in the provider's raw
// shape: field × ticker columns with the provider's own field casing,
// including a separate adjusted close when Yahoo serves one. The series
// normalizer owns collapsing and canonicalizing that table.
func (f *YahooFetcher) FetchQuotes(ticker, period, interval string) (*series.RawTable, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?range=%s&interval=%s&events=div%%2Csplit",
		url.PathEscape(ticker), url.QueryEscape(period), url.QueryEscape(interval))

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, &NoDataError{Ticker: ticker, Period: period, Interval: interval}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, &NoDataError{Ticker: ticker, Period: period, Interval: interval}
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, &NoDataError{Ticker: ticker, Period: period, Interval: interval}
	}
	quote := result.Indicators.Quote[0]

	timestamps := make([]time.Time, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		timestamps[i] = time.Unix(ts, 0).UTC()
	}

	columns := map[series.Column][]float64{
		{Field: "Open", Ticker: ticker}:   toColumn(quote.Open, len(timestamps)),
		{Field: "High", Ticker: ticker}:   toColumn(quote.High, len(timestamps)),
		{Field: "Low", Ticker: ticker}:    toColumn(quote.Low, len(timestamps)),
		{Field: "Close", Ticker: ticker}:  toColumn(quote.Close, len(timestamps)),
		{Field: "Volume", Ticker: ticker}: toColumn(quote.Volume, len(timestamps)),
	}
	if len(result.Indicators.AdjClose) > 0 {
		columns[series.Column{Field: "Adj Close", Ticker: ticker}] =
			toColumn(result.Indicators.AdjClose[0].AdjClose, len(timestamps))
	}

	return &series.RawTable{
		Ticker:     ticker,
		Timestamps: timestamps,
		Columns:    columns,
	}, nil
}

// toColumn converts a nullable quote array to a fixed-length column,
// with NaN marking the provider's null gaps.
func toColumn(values []*float64, n int) []float64 {
	col := make([]float64, n)
	for i := range col {
		if i < len(values) && values[i] != nil {
			col[i] = *values[i]
		} else {
			col[i] = math.NaN()
		}
	}
	return col
}

// IsNoData reports whether err (anywhere in its chain) is a NoDataError.
func IsNoData(err error) bool {
	var nde *NoDataError
	return errors.As(err, &nde)
}
