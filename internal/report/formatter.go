// Package report renders analysis results to console text and CSV.
package report

import (
	"fmt"
	"strings"

	"StockScope/internal/calculator"
	"StockScope/internal/fundamental"
	"StockScope/internal/model"
)

const notComputed = "계산되지 않았습니다."

// formatFloat formats a value consistently for CLI output.
func formatFloat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatReport renders the latest indicator row, the aggregate signal,
// and the fundamental snapshot into the console report.
func FormatReport(ticker string, row model.IndicatorRow, sig *model.TradeSignal,
	snap *model.FundamentalSnapshot, p calculator.Params) string {

	var b strings.Builder
	rule := strings.Repeat("---", 15)

	b.WriteString(rule + "\n")
	b.WriteString(fmt.Sprintf("📊 %s 기술적 분석 결과 (최근 거래일: %s)\n",
		ticker, row.Time.Format("2006-01-02")))
	b.WriteString(rule + "\n")

	b.WriteString(fmt.Sprintf("종가: $%s\n", formatFloat(row.Close)))
	b.WriteString("\n--- 주요 지표 ---\n")

	writeRSI(&b, row, sig, p)
	writeSMA(&b, row, sig, p)
	writeMACD(&b, row, sig, p)
	writeVerdict(&b, sig)
	writeFundamentals(&b, snap)

	return b.String()
}

func writeRSI(b *strings.Builder, row model.IndicatorRow, sig *model.TradeSignal, p calculator.Params) {
	if !model.Defined(row.RSI) {
		b.WriteString(fmt.Sprintf("RSI (%d일): %s\n", p.RSIPeriod, notComputed))
		return
	}
	b.WriteString(fmt.Sprintf("RSI (%d일): %s\n", p.RSIPeriod, formatFloat(row.RSI)))
	switch sig.RSIState {
	case model.StateOverbought:
		b.WriteString("  -> 📈 상태: 과매수 구간 (과열)\n")
	case model.StateOversold:
		b.WriteString("  -> 📉 상태: 과매도 구간 (침체)\n")
	default:
		b.WriteString("  -> 📊 상태: 중립 구간\n")
	}
}

func writeSMA(b *strings.Builder, row model.IndicatorRow, sig *model.TradeSignal, p calculator.Params) {
	b.WriteString("\n이동평균선 (SMA):\n")
	if model.Defined(row.SMAShort) {
		b.WriteString(fmt.Sprintf("  - %d일선: $%s\n", p.SMAShort, formatFloat(row.SMAShort)))
	} else {
		b.WriteString(fmt.Sprintf("  - %d일선: %s\n", p.SMAShort, notComputed))
	}
	if model.Defined(row.SMALong) {
		b.WriteString(fmt.Sprintf("  - %d일선: $%s\n", p.SMALong, formatFloat(row.SMALong)))
	} else {
		b.WriteString(fmt.Sprintf("  - %d일선: %s\n", p.SMALong, notComputed))
	}
	switch sig.SMAState {
	case model.StateBullish:
		b.WriteString("  -> 📈 상태: 단기 골든 크로스 (상승 추세)\n")
	case model.StateBearish:
		b.WriteString("  -> 📉 상태: 단기 데드 크로스 (하락 추세)\n")
	}
}

func writeMACD(b *strings.Builder, row model.IndicatorRow, sig *model.TradeSignal, p calculator.Params) {
	b.WriteString(fmt.Sprintf("\nMACD (%d, %d, %d):\n", p.MACDFast, p.MACDSlow, p.MACDSignal))
	if model.Defined(row.MACDLine) {
		b.WriteString(fmt.Sprintf("  - MACD 선: %s\n", formatFloat(row.MACDLine)))
	} else {
		b.WriteString(fmt.Sprintf("  - MACD 선: %s\n", notComputed))
	}
	if model.Defined(row.MACDSignal) {
		b.WriteString(fmt.Sprintf("  - 시그널 선: %s\n", formatFloat(row.MACDSignal)))
	} else {
		b.WriteString(fmt.Sprintf("  - 시그널 선: %s\n", notComputed))
	}
	switch sig.MACDState {
	case model.StateBullish:
		b.WriteString("  -> 📈 상태: 매수 신호 (상승 모멘텀)\n")
	case model.StateBearish:
		b.WriteString("  -> 📉 상태: 매도 신호 (하락 모멘텀)\n")
	}
}

func writeVerdict(b *strings.Builder, sig *model.TradeSignal) {
	b.WriteString("\n--- 종합 판단 ---\n")
	switch sig.Verdict {
	case model.VerdictBullish:
		b.WriteString("📈 매수 우위: 추세·모멘텀 상승, 과열 아님\n")
	case model.VerdictBearish:
		b.WriteString("📉 매도 우위: 추세·모멘텀 하락, 침체 아님\n")
	case model.VerdictNeutral:
		b.WriteString("📊 중립: 신호 혼재\n")
	default:
		b.WriteString("❓ 판단 불가: 지표 이력 부족\n")
	}
}

func writeFundamentals(b *strings.Builder, snap *model.FundamentalSnapshot) {
	b.WriteString("\n--- 기업 가치 지표 ---\n")
	if snap.Empty() {
		b.WriteString("가치 지표를 가져오지 못했습니다.\n")
		return
	}
	b.WriteString(fmt.Sprintf("PER: %s (%s)\n", ratioText(snap.PER), fundamental.ClassifyPER(snap.PER)))
	b.WriteString(fmt.Sprintf("PBR: %s (%s)\n", ratioText(snap.PBR), fundamental.ClassifyPBR(snap.PBR)))
	if snap.ROE != nil {
		b.WriteString(fmt.Sprintf("ROE: %.1f%% (%s)\n", *snap.ROE*100, fundamental.ClassifyROE(snap.ROE)))
	} else {
		b.WriteString(fmt.Sprintf("ROE: %s (%s)\n", labelMissing, fundamental.ClassifyROE(nil)))
	}
}

const labelMissing = "정보 없음"

func ratioText(v *float64) string {
	if v == nil {
		return labelMissing
	}
	return formatFloat(*v)
}
