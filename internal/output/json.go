package output

import (
	"encoding/json"
	"fmt"

	"github.com/WouterdeVisser/LangeTermijnBeleggen/internal/domain"
)

// JSONFormatter emits the result and the parameters that produced it as one
// indented JSON document. The raw trajectory matrix is excluded by the
// result's own encoding rules.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }
func (JSONFormatter) Ext() string  { return "json" }

func (jf JSONFormatter) Format(res *domain.SimulationResult, params *domain.Parameters) ([]byte, error) {
	envelope := struct {
		Parameters *domain.Parameters       `json:"parameters"`
		Result     *domain.SimulationResult `json:"result"`
	}{
		Parameters: params,
		Result:     res,
	}
	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return data, nil
}
