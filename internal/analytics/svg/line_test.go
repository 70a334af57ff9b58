// internal/analytics/svg/line_test.go
package svg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineRendersSeries(t *testing.T) {
	series := []float64{100, 250, 175}
	labels := []string{"2025-01", "2025-02", "2025-03"}

	chart, err := Line(DefaultWidth, DefaultHeight, series, labels, "Projection")
	require.NoError(t, err)

	out := string(chart)
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.True(t, strings.HasSuffix(out, "</svg>"))
	assert.Contains(t, out, "<title>Projection</title>")
	assert.Equal(t, 3, strings.Count(out, "<circle"))
	assert.Equal(t, 2, strings.Count(out, "<path"))
	for _, label := range labels {
		assert.Contains(t, out, label)
	}
}

func TestLineSinglePointCentered(t *testing.T) {
	chart, err := Line(0, 0, []float64{42}, []string{"2025-01"}, "One")
	require.NoError(t, err)

	out := string(chart)
	assert.Contains(t, out, "viewBox=\"0 0 560 220\"")
	assert.Equal(t, 1, strings.Count(out, "<circle"))
}

func TestLineEscapesTitle(t *testing.T) {
	chart, err := Line(DefaultWidth, DefaultHeight, []float64{1}, []string{"x"}, "a<b>&c")
	require.NoError(t, err)

	out := string(chart)
	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "a&lt;b&gt;&amp;c")
}

func TestLineRejectsBadInput(t *testing.T) {
	_, err := Line(DefaultWidth, DefaultHeight, nil, nil, "empty")
	assert.Error(t, err)

	_, err = Line(DefaultWidth, DefaultHeight, []float64{1, 2}, []string{"only-one"}, "mismatch")
	assert.Error(t, err)
}

func TestLineAllZeroSeries(t *testing.T) {
	chart, err := Line(DefaultWidth, DefaultHeight, []float64{0, 0}, []string{"a", "b"}, "Flat")
	require.NoError(t, err)
	assert.NotContains(t, string(chart), "NaN")
}

func TestFormatTick(t *testing.T) {
	assert.Equal(t, "950", FormatTick(950))
	assert.Equal(t, "1.5k", FormatTick(1500))
	assert.Equal(t, "2.4M", FormatTick(2_400_000))
}
