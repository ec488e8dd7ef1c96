package calculator

import (
	"errors"

	"StockScope/internal/model"
)

// SMASeries computes the simple moving average of values over the given
// period, per row. Rows before the window fills are Undefined — there is
// no partial-window averaging.
func SMASeries(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	out := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		} else {
			out[i] = model.Undefined()
		}
	}
	return out, nil
}

// EMASeries computes the exponential moving average with smoothing
// factor 2/(span+1), seeded by the first observed value. No
// bias-adjustment pass: every row from the first bar onward is defined.
func EMASeries(values []float64, span int) ([]float64, error) {
	if span <= 0 {
		return nil, errors.New("span must be positive")
	}
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out, nil
	}
	alpha := 2.0 / float64(span+1)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out, nil
}
