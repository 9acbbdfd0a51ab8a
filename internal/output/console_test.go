package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleFormat(t *testing.T) {
	res, params := fixtureResult()

	data, err := ConsoleFormatter{}.Format(res, params)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "100 scenarios over 12 years (seed 42)")
	assert.Contains(t, out, "Accumulation ends after year 6")
	assert.Contains(t, out, "milestone at year 8")
	assert.Contains(t, out, "P10")
	assert.Contains(t, out, "P90")
	assert.Contains(t, out, "€10.200")
	assert.Contains(t, out, "P10: year 10")
	assert.Contains(t, out, "P90: not within horizon")
}

func TestConsoleFormatWithoutMilestone(t *testing.T) {
	res, params := fixtureResult()
	params.MilestoneYear = 0

	data, err := ConsoleFormatter{}.Format(res, params)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "milestone")
}
