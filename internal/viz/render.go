package viz

import (
	"math"

	"github.com/san-kum/sortvis/internal/sorting"
)

const (
	SidePad = 100
	TopPad  = 150
)

const (
	LegendControls   = "R - Reset | SPACE - Start Sorting | A - Ascending | D - Descending"
	LegendAlgorithms = "I - Insertion Sort | B - Bubble Sort | Q - Quick Sort | M - Merge Sort"
)

// Layout is the pixel geometry of one dataset in a viewport.
type Layout struct {
	Width, Height int
	Min, Max      int
	StartX        int
	BarWidth      int
	Unit          int
}

func NewLayout(width, height int, data *sorting.Dataset) Layout {
	n := max(data.Len(), 1)
	span := data.Max() - data.Min()
	if span == 0 {
		span = 1
	}
	return Layout{
		Width:    width,
		Height:   height,
		Min:      data.Min(),
		Max:      data.Max(),
		StartX:   SidePad / 2,
		BarWidth: int(math.Round(float64(width-SidePad) / float64(n))),
		Unit:     (height - TopPad) / span,
	}
}

type Rect struct {
	X, Y, W, H int
}

type Bar struct {
	X, Y, W, H int
	Value      int
	// Shade is the default grey index, i mod 3.
	Shade  int
	Role   sorting.Role
	Marked bool
}

// Frame is everything a painter needs to draw one tick.
type Frame struct {
	Width, Height int
	Title         string
	Legend        [2]string
	// Field is the region holding the bars; it can be repainted alone when
	// only the bars changed.
	Field Rect
	Bars  []Bar
}

func Title(name string, dir sorting.Direction) string {
	return name + " - " + dir.String()
}

// Project lays values out as bars. roles overrides the default shade of the
// positions it names.
func Project(l Layout, values []int, roles map[int]sorting.Role, name string, dir sorting.Direction) Frame {
	f := Frame{
		Width:  l.Width,
		Height: l.Height,
		Title:  Title(name, dir),
		Legend: [2]string{LegendControls, LegendAlgorithms},
		Field:  Rect{X: SidePad / 2, Y: TopPad, W: l.Width - SidePad, H: l.Height - TopPad},
		Bars:   make([]Bar, len(values)),
	}

	for i, v := range values {
		h := (v - l.Min) * l.Unit
		b := Bar{
			X:     l.StartX + i*l.BarWidth,
			Y:     l.Height - h,
			W:     l.BarWidth,
			H:     h,
			Value: v,
			Shade: i % 3,
		}
		if role, ok := roles[i]; ok {
			b.Role = role
			b.Marked = true
		}
		f.Bars[i] = b
	}
	return f
}
