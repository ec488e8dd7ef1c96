package series

import (
	"fmt"
	"sort"
	"strings"
)

// EmptySeriesError indicates the provider returned zero rows for the
// requested ticker/period/interval combination. Fatal to the ticker run.
type EmptySeriesError struct {
	Ticker string
}

func (e *EmptySeriesError) Error() string {
	return fmt.Sprintf("'%s'에 대한 데이터를 찾을 수 없습니다. 티커와 기간/간격을 확인해 주세요.", e.Ticker)
}

// MissingPriceFieldError indicates that neither an adjusted nor a raw
// close field was present after normalization. Fatal to the ticker run.
type MissingPriceFieldError struct {
	Ticker    string
	Available []string
}

func (e *MissingPriceFieldError) Error() string {
	fields := append([]string(nil), e.Available...)
	sort.Strings(fields)
	return fmt.Sprintf("'%s': no close price field found (available: %s)",
		e.Ticker, strings.Join(fields, ", "))
}
