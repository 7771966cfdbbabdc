package viz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeries() []DataSeries {
	return []DataSeries{
		{
			Name: "Erlang B Formula",
			Points: []DataPoint{
				{X: 0.5, Y: 0.01}, {X: 1.0, Y: 0.2}, {X: 1.5, Y: 0.33}, {X: 2.0, Y: 0.4},
			},
		},
		{
			Name: "Simulation",
			Points: []DataPoint{
				{X: 0.5, Y: 0.012}, {X: 1.0, Y: 0.19}, {X: 1.5, Y: 0.34}, {X: 2.0, Y: 0.41},
			},
		},
	}
}

func TestSVGPlotter_Generate(t *testing.T) {
	plotter := NewSVGPlotter(DefaultPlotConfig())
	svg, err := plotter.Generate(testSeries(),
		"M/M/S/S Queue Blocking Probability", "Offered Load (A)", "Blocking Probability")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "M/M/S/S Queue Blocking Probability")
	assert.Contains(t, svg, "Offered Load (A)")
	assert.Contains(t, svg, "Erlang B Formula")
	assert.Contains(t, svg, "Simulation")
	// One path per series plus the two axis paths.
	assert.Equal(t, 4, strings.Count(svg, "<path"))
}

func TestSVGPlotter_EmptySeries(t *testing.T) {
	plotter := NewSVGPlotter(DefaultPlotConfig())
	svg, err := plotter.Generate(nil, "Empty", "", "")
	require.NoError(t, err)
	assert.Contains(t, svg, "<svg")
	assert.NotContains(t, svg, "stroke-width=\"2px\"")
}

func TestLinearScale(t *testing.T) {
	ls := linearScale{domain: [2]float64{0, 10}, rangePx: [2]int{0, 100}}
	assert.Equal(t, 0, ls.scale(0))
	assert.Equal(t, 50, ls.scale(5))
	assert.Equal(t, 100, ls.scale(10))

	// Degenerate domain collapses to the range start rather than dividing
	// by zero.
	flat := linearScale{domain: [2]float64{3, 3}, rangePx: [2]int{0, 100}}
	assert.Equal(t, 0, flat.scale(3))
}

func TestGenerateValueTicks(t *testing.T) {
	ticks := generateValueTicks(0, 1, 6)
	require.NotEmpty(t, ticks)
	for i := 1; i < len(ticks); i++ {
		assert.Greater(t, ticks[i], ticks[i-1])
	}
	assert.LessOrEqual(t, ticks[0], 0.0)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "0.5", formatValue(0.5, 2))
	assert.Equal(t, "1", formatValue(1.00, 2))
	assert.Equal(t, "0", formatValue(0.0, 1))
}
