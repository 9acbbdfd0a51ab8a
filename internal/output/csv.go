package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/WouterdeVisser/LangeTermijnBeleggen/internal/domain"
)

// CSVFormatter exports the percentile curves as one row per year, followed
// by the cash-flow schedule and a zero-crossing section. Amounts are plain
// numbers so the file loads directly into a spreadsheet.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }
func (CSVFormatter) Ext() string  { return "csv" }

func (cf CSVFormatter) Format(res *domain.SimulationResult, params *domain.Parameters) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"year", "contribution", "withdrawal"}
	for _, curve := range res.Curves {
		header = append(header, fmt.Sprintf("p%d", curve.Percentile))
	}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for t := 0; t < res.TotalYears; t++ {
		row := []string{
			strconv.Itoa(t),
			formatAmount(res.Flows.ContributionAt(t)),
			formatAmount(res.Flows.WithdrawalAt(t)),
		}
		for _, curve := range res.Curves {
			row = append(row, formatAmount(curve.Values[t]))
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write year row: %w", err)
		}
	}

	if err := writer.Write([]string{"percentile", "zero_crossing_year"}); err != nil {
		return nil, fmt.Errorf("failed to write zero-crossing header: %w", err)
	}
	for _, curve := range res.Curves {
		year := ""
		if z := res.ZeroCrossings[curve.Percentile]; z != nil {
			year = strconv.Itoa(*z)
		}
		if err := writer.Write([]string{strconv.Itoa(curve.Percentile), year}); err != nil {
			return nil, fmt.Errorf("failed to write zero-crossing row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
