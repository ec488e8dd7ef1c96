package fundamental

// InternationalRatios is the raw shape of the international provider:
// ratios already expressed as-is, ROE as a fraction. Nil means the
// provider had no value for that field.
type InternationalRatios struct {
	TrailingPER    *float64
	ForwardPER     *float64 // fetched but unused downstream
	PriceToBook    *float64
	ReturnOnEquity *float64
}

// RegionalRow is the raw shape of the regional provider: one row of the
// cross-sectional PER/PBR/EPS/BPS table for a reference trading date.
// ROE is not provided and must be derived from the per-share figures.
type RegionalRow struct {
	Code string
	PER  *float64
	PBR  *float64
	EPS  *float64
	BPS  *float64
}

// InternationalProvider retrieves ratios for a globally listed ticker.
type InternationalProvider interface {
	FetchRatios(ticker string) (*InternationalRatios, error)
	Name() string
}

// RegionalProvider retrieves one ticker's row from the cross-sectional
// fundamentals table for a trading date (8-digit YYYYMMDD).
type RegionalProvider interface {
	FetchRow(date, code string) (*RegionalRow, error)
	Name() string
}
