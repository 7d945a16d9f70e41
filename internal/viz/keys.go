package viz

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/sortvis/internal/engine"
	"github.com/san-kum/sortvis/internal/sorting"
)

type keyMap struct {
	Reset      key.Binding
	Start      key.Binding
	Ascending  key.Binding
	Descending key.Binding
	Insertion  key.Binding
	Bubble     key.Binding
	Quick      key.Binding
	Merge      key.Binding
	Theme      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Reset, k.Theme, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reset, k.Start, k.Ascending, k.Descending},
		{k.Insertion, k.Bubble, k.Quick, k.Merge},
		{k.Theme, k.Help, k.Quit},
	}
}

var keys = keyMap{
	Reset: key.NewBinding(
		key.WithKeys("r", "R"),
		key.WithHelp("r", "reset"),
	),
	Start: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "start sorting"),
	),
	Ascending: key.NewBinding(
		key.WithKeys("a", "A"),
		key.WithHelp("a", "ascending"),
	),
	Descending: key.NewBinding(
		key.WithKeys("d", "D"),
		key.WithHelp("d", "descending"),
	),
	Insertion: key.NewBinding(
		key.WithKeys("i", "I"),
		key.WithHelp("i", "insertion sort"),
	),
	Bubble: key.NewBinding(
		key.WithKeys("b", "B"),
		key.WithHelp("b", "bubble sort"),
	),
	Quick: key.NewBinding(
		key.WithKeys("q", "Q"),
		key.WithHelp("q", "quick sort"),
	),
	Merge: key.NewBinding(
		key.WithKeys("m", "M"),
		key.WithHelp("m", "merge sort"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t", "T"),
		key.WithHelp("t", "theme"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// intentFor maps a key press to a controller intent.
func (k keyMap) intentFor(msg tea.KeyMsg) (engine.Intent, bool) {
	switch {
	case key.Matches(msg, k.Reset):
		return engine.ResetIntent(), true
	case key.Matches(msg, k.Start):
		return engine.StartIntent(), true
	case key.Matches(msg, k.Ascending):
		return engine.DirectionIntent(sorting.Ascending), true
	case key.Matches(msg, k.Descending):
		return engine.DirectionIntent(sorting.Descending), true
	case key.Matches(msg, k.Insertion):
		return engine.AlgorithmIntent("insertion"), true
	case key.Matches(msg, k.Bubble):
		return engine.AlgorithmIntent("bubble"), true
	case key.Matches(msg, k.Quick):
		return engine.AlgorithmIntent("quick"), true
	case key.Matches(msg, k.Merge):
		return engine.AlgorithmIntent("merge"), true
	}
	return engine.Intent{}, false
}
