// Package fundamental unifies the two fundamental-data provider shapes
// into one PER/PBR/ROE snapshot. Fundamentals are supplementary: every
// retrieval fault degrades to an empty snapshot with a warning, never an
// error, so technical analysis always proceeds.
package fundamental

import (
	"log"
	"math"
	"strings"
	"time"

	"StockScope/internal/model"
)

// Normalizer resolves the provider shape once, by ticker suffix, and
// produces the unified snapshot.
type Normalizer struct {
	International    InternationalProvider
	Regional         RegionalProvider
	RegionalSuffixes []string
}

// NewNormalizer wires both providers. suffixes name the regional
// provider's markets (e.g. ".KS", ".KQ").
func NewNormalizer(intl InternationalProvider, regional RegionalProvider, suffixes []string) *Normalizer {
	return &Normalizer{International: intl, Regional: regional, RegionalSuffixes: suffixes}
}

// Snapshot fetches and normalizes fundamentals for the ticker as of the
// reference trading date. It never fails: any fault yields an empty
// snapshot.
func (n *Normalizer) Snapshot(ticker string, refDate time.Time) *model.FundamentalSnapshot {
	snap := &model.FundamentalSnapshot{Ticker: ticker}

	if code, ok := n.regionalCode(ticker); ok {
		if n.Regional == nil {
			log.Printf("[WARN] %s: no regional fundamentals provider configured", ticker)
			return snap
		}
		row, err := n.Regional.FetchRow(refDate.Format("20060102"), code)
		if err != nil {
			log.Printf("[WARN] %s: regional fundamentals unavailable: %v", ticker, err)
			return snap
		}
		snap.PER = cleanRatio(row.PER)
		snap.PBR = cleanRatio(row.PBR)
		snap.ROE = deriveROE(row.EPS, row.BPS)
		return snap
	}

	if n.International == nil {
		log.Printf("[WARN] %s: no international fundamentals provider configured", ticker)
		return snap
	}
	ratios, err := n.International.FetchRatios(ticker)
	if err != nil {
		log.Printf("[WARN] %s: international fundamentals unavailable: %v", ticker, err)
		return snap
	}
	snap.PER = cleanRatio(ratios.TrailingPER)
	snap.PBR = cleanRatio(ratios.PriceToBook)
	snap.ROE = cleanRatio(ratios.ReturnOnEquity)
	return snap
}

// regionalCode reports whether the ticker belongs to the regional
// provider's markets and returns its local numeric code.
func (n *Normalizer) regionalCode(ticker string) (string, bool) {
	for _, suffix := range n.RegionalSuffixes {
		if strings.HasSuffix(ticker, suffix) {
			return strings.TrimSuffix(ticker, suffix), true
		}
	}
	return "", false
}

// deriveROE computes EPS/BPS as a fraction. A zero, absent, or NaN BPS
// (or an absent EPS) yields nil rather than a zero, infinity, or fault.
func deriveROE(eps, bps *float64) *float64 {
	if eps == nil || bps == nil {
		return nil
	}
	if *bps == 0 || math.IsNaN(*bps) || math.IsNaN(*eps) {
		return nil
	}
	return model.Ratio(*eps / *bps)
}

// cleanRatio drops NaN values so downstream code only sees nil or a
// usable number.
func cleanRatio(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) {
		return nil
	}
	return v
}
