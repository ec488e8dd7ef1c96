package fundamental

// Classification labels for the report. Descriptive only: they never
// feed into the aggregate technical verdict.
const labelNA = "N/A"

// ClassifyPER labels a price-to-earnings ratio.
func ClassifyPER(per *float64) string {
	if per == nil {
		return labelNA
	}
	switch {
	case *per <= 0:
		return "손실 기업"
	case *per < 15:
		return "역사적 저평가"
	case *per < 30:
		return "적정 수준"
	default:
		return "고평가/성장주"
	}
}

// ClassifyPBR labels a price-to-book ratio.
func ClassifyPBR(pbr *float64) string {
	if pbr == nil {
		return labelNA
	}
	switch {
	case *pbr < 1:
		return "저평가"
	case *pbr < 2:
		return "적정 수준"
	default:
		return "고평가"
	}
}

// ClassifyROE labels a return-on-equity fraction.
func ClassifyROE(roe *float64) string {
	if roe == nil {
		return labelNA
	}
	switch {
	case *roe > 0.15:
		return "우수"
	case *roe > 0.05:
		return "양호"
	default:
		return "저조/손실"
	}
}
