// Package output renders simulation results for human and machine
// consumption. Formatters are pure: same result in, same bytes out.
package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/WouterdeVisser/LangeTermijnBeleggen/internal/domain"
)

// Formatter renders a simulation result to a byte slice.
type Formatter interface {
	Format(res *domain.SimulationResult, params *domain.Parameters) ([]byte, error)
	// Name returns the identifier used for selection and logging.
	Name() string
	// Ext returns the file extension for written output.
	Ext() string
}

// builtInFormatters stores the available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
	HTMLFormatter{},
	PDFFormatter{},
}

// FormatNames lists the selectable formatter names.
func FormatNames() []string {
	names := make([]string, len(builtInFormatters))
	for i, f := range builtInFormatters {
		names[i] = f.Name()
	}
	return names
}

// GetFormatterByName fetches a registered formatter by (case-insensitive)
// name.
func GetFormatterByName(name string) (Formatter, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, f := range builtInFormatters {
		if f.Name() == normalized {
			return f, nil
		}
	}
	return nil, fmt.Errorf("unknown output format %q (available: %s)", name, strings.Join(FormatNames(), ", "))
}

// WriteFormatted runs a formatter and writes its output to path. An empty
// path produces a timestamped file name with the formatter's extension. The
// written file name is returned.
func WriteFormatted(f Formatter, res *domain.SimulationResult, params *domain.Parameters, path string) (string, error) {
	data, err := f.Format(res, params)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = fmt.Sprintf("vermogenssimulatie_%s.%s", time.Now().Format("20060102_150405"), f.Ext())
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s output: %w", f.Name(), err)
	}
	return path, nil
}

// milestoneYear reports the configured milestone year index when it falls
// inside the simulated horizon.
func milestoneYear(res *domain.SimulationResult, params *domain.Parameters) (int, bool) {
	if params == nil {
		return 0, false
	}
	y := params.MilestoneYear
	if y <= 0 || y >= res.TotalYears {
		return 0, false
	}
	return y, true
}
