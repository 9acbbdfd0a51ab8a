package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/WouterdeVisser/LangeTermijnBeleggen/internal/domain"
	pkgdecimal "github.com/WouterdeVisser/LangeTermijnBeleggen/pkg/decimal"
)

// PDFFormatter produces a one-page A4 summary: the run assumptions, the
// percentile capital at a handful of key years and the zero-crossing table.
type PDFFormatter struct{}

func (PDFFormatter) Name() string { return "pdf" }
func (PDFFormatter) Ext() string  { return "pdf" }

const (
	pdfMarginLeft = 15.0
	pdfMarginTop  = 15.0
	pdfPageWidth  = 210.0
	pdfContent    = pdfPageWidth - 2*pdfMarginLeft
)

// pdfText converts UTF-8 text to the cp1252 bytes the PDF core fonts
// expect; the euro sign is the only character that needs help.
func pdfText(s string) string {
	return strings.ReplaceAll(s, "€", "\x80")
}

func (pf PDFFormatter) Format(res *domain.SimulationResult, params *domain.Parameters) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginLeft)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(pdfContent, 10, "Monte Carlo vermogenssimulatie", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(pdfContent, 6,
		fmt.Sprintf("%d scenarios over %d years, seed %d", res.NumScenarios, res.TotalYears, res.Seed),
		"", 1, "C", false, 0, "")
	pdf.Ln(4)

	if params != nil {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(pdfContent, 8, "Assumptions", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		lines := []string{
			fmt.Sprintf("Starting capital: %s", pkgdecimal.NewMoneyFromDecimal(params.InitialCapital).Format()),
			fmt.Sprintf("Monthly contribution: %s to %s over %d years (real terms)",
				pkgdecimal.NewMoneyFromDecimal(params.Contribution.MonthlyStart).Format(),
				pkgdecimal.NewMoneyFromDecimal(params.Contribution.MonthlyEnd).Format(),
				params.Contribution.Years),
			fmt.Sprintf("Annual return: %.1f%% mean, %.1f%% volatility", params.Returns.Mean*100, params.Returns.StdDev*100),
			fmt.Sprintf("Inflation: %.1f%% per year", params.InflationRate*100),
		}
		for i, phase := range params.ActivePhases() {
			lines = append(lines, fmt.Sprintf("Withdrawal phase %d: %s to %s per month for %d years (real terms)",
				i+1,
				pkgdecimal.NewMoneyFromDecimal(phase.Start).Format(),
				pkgdecimal.NewMoneyFromDecimal(phase.End).Format(),
				phase.Years))
		}
		for _, line := range lines {
			pdf.CellFormat(pdfContent, 5.5, pdfText(line), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(pdfContent, 8, "Capital at key years", "", 1, "L", false, 0, "")
	keys := keyYears(res, params)
	colWidth := pdfContent / float64(len(keys)+1)

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(colWidth, 6, "Percentile", "1", 0, "L", false, 0, "")
	for _, y := range keys {
		pdf.CellFormat(colWidth, 6, fmt.Sprintf("Year %d", y), "1", 0, "R", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, curve := range res.Curves {
		pdf.CellFormat(colWidth, 6, fmt.Sprintf("P%d", curve.Percentile), "1", 0, "L", false, 0, "")
		for _, y := range keys {
			pdf.CellFormat(colWidth, 6, pdfText(pkgdecimal.FormatFloat(curve.Values[y])), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(pdfContent, 8, "Zero crossings", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, curve := range res.Curves {
		text := fmt.Sprintf("P%d: capital never reaches zero within the horizon", curve.Percentile)
		if z := res.ZeroCrossings[curve.Percentile]; z != nil {
			text = fmt.Sprintf("P%d: capital first reaches zero in year %d", curve.Percentile, *z)
		}
		pdf.CellFormat(pdfContent, 5.5, text, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// keyYears selects the year columns shown in the PDF table: start, end of
// accumulation, the milestone when set, and the final year, deduplicated
// and in order.
func keyYears(res *domain.SimulationResult, params *domain.Parameters) []int {
	last := res.TotalYears - 1
	candidates := []int{0, res.Flows.YearsBuild, last}
	if milestone, ok := milestoneYear(res, params); ok {
		candidates = append(candidates, milestone)
	}

	var years []int
	for _, y := range candidates {
		if y > last {
			y = last
		}
		duplicate := false
		for _, existing := range years {
			if existing == y {
				duplicate = true
				break
			}
		}
		if !duplicate {
			years = append(years, y)
		}
	}
	for i := 1; i < len(years); i++ {
		for j := i; j > 0 && years[j] < years[j-1]; j-- {
			years[j], years[j-1] = years[j-1], years[j]
		}
	}
	return years
}
