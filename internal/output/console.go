package output

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/WouterdeVisser/LangeTermijnBeleggen/internal/domain"
	pkgdecimal "github.com/WouterdeVisser/LangeTermijnBeleggen/pkg/decimal"
)

// ConsoleFormatter renders a plain-text report: run header, the percentile
// table per year, capital at the accumulation and milestone markers, and the
// zero-crossing summary.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }
func (ConsoleFormatter) Ext() string  { return "txt" }

func (cf ConsoleFormatter) Format(res *domain.SimulationResult, params *domain.Parameters) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Monte Carlo vermogenssimulatie: %d scenarios over %d years (seed %d)\n",
		res.NumScenarios, res.TotalYears, res.Seed)
	fmt.Fprintf(&b, "Accumulation ends after year %d", res.Flows.YearsBuild)
	if milestone, ok := milestoneYear(res, params); ok {
		fmt.Fprintf(&b, "; milestone at year %d", milestone)
	}
	b.WriteString("\n\n")

	w := tabwriter.NewWriter(&b, 2, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(w, "Year")
	for _, curve := range res.Curves {
		fmt.Fprintf(w, "\tP%d", curve.Percentile)
	}
	fmt.Fprintln(w, "\t")
	for t := 0; t < res.TotalYears; t++ {
		fmt.Fprintf(w, "%d", t)
		for _, curve := range res.Curves {
			fmt.Fprintf(w, "\t%s", pkgdecimal.FormatFloat(curve.Values[t]))
		}
		fmt.Fprintln(w, "\t")
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("failed to render percentile table: %w", err)
	}

	b.WriteString("\nCapital at end of accumulation")
	if milestone, ok := milestoneYear(res, params); ok {
		fmt.Fprintf(&b, " (year %d) and at milestone (year %d):\n", res.Flows.YearsBuild, milestone)
		for _, curve := range res.Curves {
			fmt.Fprintf(&b, "  P%d: %s / %s\n", curve.Percentile,
				markerValue(res, curve.Percentile, res.Flows.YearsBuild),
				markerValue(res, curve.Percentile, milestone))
		}
	} else {
		fmt.Fprintf(&b, " (year %d):\n", res.Flows.YearsBuild)
		for _, curve := range res.Curves {
			fmt.Fprintf(&b, "  P%d: %s\n", curve.Percentile,
				markerValue(res, curve.Percentile, res.Flows.YearsBuild))
		}
	}

	b.WriteString("\nZero crossings (first year capital reaches zero):\n")
	for _, curve := range res.Curves {
		if year := res.ZeroCrossings[curve.Percentile]; year != nil {
			fmt.Fprintf(&b, "  P%d: year %d\n", curve.Percentile, *year)
		} else {
			fmt.Fprintf(&b, "  P%d: not within horizon\n", curve.Percentile)
		}
	}

	return []byte(b.String()), nil
}

// markerValue formats the capital of one percentile curve at a marker year.
// The marker sits at the boundary between accumulation and decumulation, so
// the last accumulation-year value is shown when the marker equals the
// horizon end.
func markerValue(res *domain.SimulationResult, percentile, year int) string {
	if year >= res.TotalYears {
		year = res.TotalYears - 1
	}
	v, ok := res.CurveValueAt(percentile, year)
	if !ok {
		return "n/a"
	}
	return pkgdecimal.FormatFloat(v)
}
