package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func titleStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Title.Color()).
		Background(t.Background.Color())
}

func legendStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Text.Color()).
		Background(t.Background.Color())
}

func statusStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Background.Color()).
		Background(t.Text.Color()).
		Padding(0, 1)
}

// paintHeader renders the title and legend centered across cols.
func paintHeader(f Frame, t Theme, cols int) string {
	center := func(s lipgloss.Style, text string) string {
		return s.Width(cols).Align(lipgloss.Center).Render(text)
	}
	blank := lipgloss.NewStyle().Background(t.Background.Color()).Width(cols).Render("")
	return strings.Join([]string{
		center(titleStyle(t), f.Title),
		center(legendStyle(t), f.Legend[0]),
		center(legendStyle(t), f.Legend[1]),
		blank,
	}, "\n")
}

// paintField renders only the bars of f.
func paintField(f Frame, t Theme, cols, rows int) string {
	c := NewCanvas(cols, rows)
	c.DrawBars(f, t)
	return c.Render(t.Background)
}
