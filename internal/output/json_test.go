package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormat(t *testing.T) {
	res, params := fixtureResult()

	data, err := JSONFormatter{}.Format(res, params)
	require.NoError(t, err)

	var envelope struct {
		Parameters struct {
			NumScenarios int `json:"numScenarios"`
		} `json:"parameters"`
		Result struct {
			TotalYears    int              `json:"totalYears"`
			Seed          int64            `json:"seed"`
			ZeroCrossings map[string]*int  `json:"zeroCrossings"`
			Curves        []map[string]any `json:"curves"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(data, &envelope))

	assert.Equal(t, 100, envelope.Parameters.NumScenarios)
	assert.Equal(t, 12, envelope.Result.TotalYears)
	assert.Equal(t, int64(42), envelope.Result.Seed)
	require.Len(t, envelope.Result.Curves, 2)

	require.NotNil(t, envelope.Result.ZeroCrossings["10"])
	assert.Equal(t, 10, *envelope.Result.ZeroCrossings["10"])
	assert.Nil(t, envelope.Result.ZeroCrossings["90"])

	// The raw trajectory matrix never travels in JSON.
	assert.NotContains(t, string(data), "Trajectories")
}
