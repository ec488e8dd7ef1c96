package fundamental

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// YahooProvider implements InternationalProvider using the Yahoo Finance
// quoteSummary API.
type YahooProvider struct {
	Client *http.Client
}

// NewYahooProvider creates a provider with optional proxy support.
func NewYahooProvider(proxyURL string) *YahooProvider {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooProvider{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (p *YahooProvider) Name() string { return "yahoo" }

// rawValue is Yahoo's {raw, fmt} number wrapper; only raw matters here.
type rawValue struct {
	Raw *float64 `json:"raw"`
}

// quoteSummary is the response structure from the quoteSummary API,
// trimmed to the modules this provider requests.
type quoteSummary struct {
	QuoteSummary struct {
		Result []struct {
			SummaryDetail struct {
				TrailingPE rawValue `json:"trailingPE"`
				ForwardPE  rawValue `json:"forwardPE"`
			} `json:"summaryDetail"`
			DefaultKeyStatistics struct {
				PriceToBook rawValue `json:"priceToBook"`
			} `json:"defaultKeyStatistics"`
			FinancialData struct {
				ReturnOnEquity rawValue `json:"returnOnEquity"`
			} `json:"financialData"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// FetchRatios retrieves trailing/forward PER, price-to-book, and ROE
// (already a fraction) for the ticker. Missing fields come back nil.
func (p *YahooProvider) FetchRatios(ticker string) (*InternationalRatios, error) {
	u := fmt.Sprintf(
		"https://query1.finance.yahoo.com/v10/finance/quoteSummary/%s?modules=summaryDetail,defaultKeyStatistics,financialData",
		url.PathEscape(ticker))

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fundamentals fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo fundamentals read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo fundamentals: status %d, body: %s", resp.StatusCode, string(body))
	}

	var summary quoteSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("yahoo fundamentals decode: %w", err)
	}
	if summary.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo fundamentals api error: %s", summary.QuoteSummary.Error.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo fundamentals: no result for %s", ticker)
	}

	r := summary.QuoteSummary.Result[0]
	return &InternationalRatios{
		TrailingPER:    r.SummaryDetail.TrailingPE.Raw,
		ForwardPER:     r.SummaryDetail.ForwardPE.Raw,
		PriceToBook:    r.DefaultKeyStatistics.PriceToBook.Raw,
		ReturnOnEquity: r.FinancialData.ReturnOnEquity.Raw,
	}, nil
}
