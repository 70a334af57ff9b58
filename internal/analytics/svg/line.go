// internal/analytics/svg/line.go
package svg

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

// Chart viewport defaults, sized for the exported report page.
const (
	DefaultWidth   = 560
	DefaultHeight  = 220
	defaultPadding = 24.0
)

// Line renders the projection series as an SVG line chart with a shaded
// area under the curve, matching the dashboard rendering. Labels must be
// one per data point.
func Line(width, height int, series []float64, labels []string, title string) (template.HTML, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("svg: series required")
	}
	if len(series) != len(labels) {
		return "", fmt.Errorf("svg: labels length must match series")
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	chartWidth := float64(width) - 2*defaultPadding
	chartHeight := float64(height) - 2*defaultPadding
	if chartWidth <= 0 || chartHeight <= 0 {
		return "", fmt.Errorf("svg: viewport too small")
	}

	maxVal := series[0]
	for _, v := range series[1:] {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal <= 0 {
		maxVal = 1
	}

	step := 0.0
	if len(series) > 1 {
		step = chartWidth / float64(len(series)-1)
	}

	pointAt := func(i int) (float64, float64) {
		x := defaultPadding
		if len(series) > 1 {
			x += float64(i) * step
		} else {
			x += chartWidth / 2
		}
		y := defaultPadding + chartHeight - (series[i]/maxVal)*chartHeight
		return x, y
	}

	var path strings.Builder
	firstX, _ := pointAt(0)
	lastX := firstX
	for i := range series {
		x, y := pointAt(i)
		if i == 0 {
			path.WriteString(fmt.Sprintf("M%.2f %.2f", x, y))
		} else {
			path.WriteString(fmt.Sprintf(" L%.2f %.2f", x, y))
		}
		lastX = x
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %d %d\" role=\"img\">", width, height))
	b.WriteString(fmt.Sprintf("<title>%s</title>", template.HTMLEscapeString(title)))
	b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\" fill=\"#475569\" font-size=\"10\">%s</text>", defaultPadding, defaultPadding-8, FormatTick(maxVal)))

	base := defaultPadding + chartHeight
	area := fmt.Sprintf("%s L%.2f %.2f L%.2f %.2f Z", path.String(), lastX, base, firstX, base)
	b.WriteString(fmt.Sprintf("<path d=\"%s\" fill=\"rgba(79,70,229,0.18)\" stroke=\"none\"></path>", area))
	b.WriteString(fmt.Sprintf("<path d=\"%s\" fill=\"none\" stroke=\"#4f46e5\" stroke-width=\"2.5\" stroke-linecap=\"round\"></path>", path.String()))

	for i := range series {
		x, y := pointAt(i)
		b.WriteString(fmt.Sprintf("<circle cx=\"%.2f\" cy=\"%.2f\" r=\"4\" fill=\"#fff\" stroke=\"#4f46e5\" stroke-width=\"1.5\"></circle>", x, y))
		b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\" fill=\"#475569\" font-size=\"10\" text-anchor=\"middle\">%s</text>", x, base+14, template.HTMLEscapeString(labels[i])))
	}

	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}

// FormatTick abbreviates an axis value for display.
func FormatTick(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fk", v/1_000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
