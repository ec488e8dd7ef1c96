package model

// FundamentalSnapshot holds the unified valuation ratios for one ticker.
// A nil field means the provider had no value — a reportable state, not
// an error. ROE is always a fraction (0.12 == 12%), never a percentage.
type FundamentalSnapshot struct {
	Ticker string
	PER    *float64
	PBR    *float64
	ROE    *float64
}

// Empty reports whether no ratio at all is available.
func (s *FundamentalSnapshot) Empty() bool {
	return s == nil || (s.PER == nil && s.PBR == nil && s.ROE == nil)
}

// Ratio wraps a literal value as an optional ratio field.
func Ratio(v float64) *float64 { return &v }
