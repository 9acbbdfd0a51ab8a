package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLFormat(t *testing.T) {
	res, params := fixtureResult()

	data, err := HTMLFormatter{}.Format(res, params)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "<svg")
	assert.Equal(t, 2, strings.Count(out, "<polyline"), "one polyline per curve")
	assert.Contains(t, out, `stroke="darkred"`)
	assert.Contains(t, out, "100 scenarios, 12 years, seed 42")
	assert.Equal(t, 1, strings.Count(out, "op 0 in jaar"), "only P10 crosses zero")
	assert.Contains(t, out, "op 0 in jaar 10")
}

func TestHTMLFormatMarkers(t *testing.T) {
	res, params := fixtureResult()

	t.Run("with milestone", func(t *testing.T) {
		view := buildHTMLView(res, params)
		require.True(t, view.HasMilestone)
		assert.Greater(t, view.MilestoneX, view.BuildX)
		for _, curve := range view.Curves {
			require.NotNil(t, curve.Milestone)
		}
	})

	t.Run("without milestone", func(t *testing.T) {
		params.MilestoneYear = 0
		view := buildHTMLView(res, params)
		assert.False(t, view.HasMilestone)
		for _, curve := range view.Curves {
			assert.Nil(t, curve.Milestone)
		}
	})

	t.Run("zero markers", func(t *testing.T) {
		view := buildHTMLView(res, params)
		require.Len(t, view.Curves, 2)
		require.NotNil(t, view.Curves[0].Zero)
		assert.Equal(t, 10, view.Curves[0].ZeroYear)
		assert.Nil(t, view.Curves[1].Zero)
	})
}
