package calculator

// MACDSeries computes the MACD line (fast EMA minus slow EMA of the
// close) and its signal line (EMA of the MACD line), per row. Unlike the
// rolling-window indicators, MACD is defined from the first bar onward;
// early rows simply carry less statistical weight and are kept as-is.
func MACDSeries(closes []float64, fast, slow, signal int) (macd, sig []float64, err error) {
	fastEMA, err := EMASeries(closes, fast)
	if err != nil {
		return nil, nil, err
	}
	slowEMA, err := EMASeries(closes, slow)
	if err != nil {
		return nil, nil, err
	}
	macd = make([]float64, len(closes))
	for i := range closes {
		macd[i] = fastEMA[i] - slowEMA[i]
	}
	sig, err = EMASeries(macd, signal)
	if err != nil {
		return nil, nil, err
	}
	return macd, sig, nil
}
