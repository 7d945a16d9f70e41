package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Lower eighth blocks, index = filled eighths of a cell.
var eighths = [9]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Canvas is a grid of terminal cells with a color per cell. Columns are
// filled bottom-up at 1/8 cell vertical resolution.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]RGB
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]RGB, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]RGB, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = ' '
			c.Colors[i][j] = RGB{}
		}
	}
}

// FillColumn fills column x from the bottom with level eighths of a cell.
func (c *Canvas) FillColumn(x, level int, color RGB) {
	if x < 0 || x >= c.Width || level <= 0 {
		return
	}
	for row := c.Height - 1; row >= 0 && level > 0; row-- {
		n := min(level, 8)
		c.Grid[row][x] = eighths[n]
		c.Colors[row][x] = color
		level -= n
	}
}

// DrawBars scales the frame's bar field onto the canvas.
func (c *Canvas) DrawBars(f Frame, t Theme) {
	c.Clear()
	if f.Field.W <= 0 || f.Field.H <= 0 {
		return
	}
	for _, b := range f.Bars {
		x0 := (b.X - f.Field.X) * c.Width / f.Field.W
		x1 := (b.X + b.W - f.Field.X) * c.Width / f.Field.W
		if x1 <= x0 {
			x1 = x0 + 1
		}
		level := b.H * c.Height * 8 / f.Field.H
		color := t.BarColor(b)
		for x := x0; x < x1; x++ {
			c.FillColumn(x, level, color)
		}
	}
}

// Render styles runs of equal color on a background, one line per row.
func (c *Canvas) Render(bg RGB) string {
	var b strings.Builder
	base := lipgloss.NewStyle().Background(bg.Color())
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Colors[i][j] == c.Colors[i][start] {
				continue
			}
			b.WriteString(base.Foreground(c.Colors[i][start].Color()).Render(string(row[start:j])))
			start = j
		}
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}
