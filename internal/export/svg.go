package export

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/san-kum/sortvis/internal/viz"
)

// FrameSVG draws a projected frame at its pixel size.
func FrameSVG(f viz.Frame, t viz.Theme) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, f.Width, f.Height, f.Width, f.Height, t.Background.Hex()))

	// title and legend, centered like the window painter
	sb.WriteString(fmt.Sprintf(`<g font-family="monospace" text-anchor="middle" dominant-baseline="hanging">
<text x="%d" y="5" font-size="30" fill="%s">%s</text>
`, f.Width/2, t.Title.Hex(), html.EscapeString(f.Title)))
	for i, line := range f.Legend {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-size="20" fill="%s">%s</text>
`, f.Width/2, 45+30*i, t.Text.Hex(), html.EscapeString(line)))
	}
	sb.WriteString("</g>\n<g>\n")

	for _, b := range f.Bars {
		if b.H <= 0 || b.W <= 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, b.X, b.Y, b.W, b.H, t.BarColor(b).Hex()))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// CurveSVG plots samples in [0, 1] left to right as a polyline.
func CurveSVG(samples []float64, width, height int, t viz.Theme) string {
	if len(samples) < 2 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, t.Background.Hex(), t.Title.Hex()))

	last := float64(len(samples) - 1)
	for i, v := range samples {
		v = min(max(v, 0), 1)
		x := float64(i) / last * float64(width)
		y := float64(height) - v*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

func WriteFile(path, svg string) error {
	return os.WriteFile(path, []byte(svg), 0644)
}
