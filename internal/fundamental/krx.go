package fundamental

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// KRXProvider implements RegionalProvider against a KRX-style REST
// gateway that serves the daily cross-sectional valuation table
// (PER/PBR/EPS/BPS for every listed ticker on a trading date).
type KRXProvider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewKRXProvider creates a provider with optional proxy support.
func NewKRXProvider(baseURL, apiKey, proxyURL string) *KRXProvider {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &KRXProvider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (p *KRXProvider) Name() string { return "krx" }

// krxRow is the expected JSON shape of one cross-sectional table row.
// Null fields decode to nil.
type krxRow struct {
	Code string   `json:"code"`
	PER  *float64 `json:"per"`
	PBR  *float64 `json:"pbr"`
	EPS  *float64 `json:"eps"`
	BPS  *float64 `json:"bps"`
}

// FetchRow downloads the valuation table for the date and returns the
// row for the given local numeric code. A code missing from that date's
// universe is an error, handled upstream as a degraded snapshot.
func (p *KRXProvider) FetchRow(date, code string) (*RegionalRow, error) {
	endpoint := fmt.Sprintf("%s/api/v1/fundamentals?date=%s", p.BaseURL, url.QueryEscape(date))
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if p.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.APIKey)
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("krx fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("krx: status %d, body: %s", resp.StatusCode, string(body))
	}

	var rows []krxRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("krx decode: %w", err)
	}
	for _, row := range rows {
		if row.Code == code {
			return &RegionalRow{
				Code: row.Code,
				PER:  row.PER,
				PBR:  row.PBR,
				EPS:  row.EPS,
				BPS:  row.BPS,
			}, nil
		}
	}
	return nil, fmt.Errorf("krx: code %s not in universe for %s", code, date)
}
