// Package engine drives step producers, either interactively through a
// Controller or to completion through a Runner.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/sortvis/internal/sorting"
)

type Mode int

const (
	Idle Mode = iota
	Running
)

func (m Mode) String() string {
	if m == Running {
		return "running"
	}
	return "idle"
}

// Run identifies one execution of a producer over one dataset.
type Run struct {
	ID        uuid.UUID
	Algorithm string
	Direction sorting.Direction
	Size      int
	Started   time.Time
}

type Stats struct {
	Steps       int
	Mutations   int
	Interrupted bool
}

type Observer interface {
	OnStart(run Run)
	OnStep(run Run, step sorting.Step, data *sorting.Dataset)
	OnFinish(run Run, stats Stats)
}

type Metric interface {
	Name() string
	Observe(step sorting.Step, data *sorting.Dataset)
	Value() float64
	Reset()
}

type IntentKind int

const (
	IntentReset IntentKind = iota
	IntentStart
	IntentDirection
	IntentAlgorithm
)

// Intent is a user request routed to the controller by a front end.
type Intent struct {
	Kind      IntentKind
	Direction sorting.Direction
	Algorithm string
}

func ResetIntent() Intent                          { return Intent{Kind: IntentReset} }
func StartIntent() Intent                          { return Intent{Kind: IntentStart} }
func DirectionIntent(dir sorting.Direction) Intent { return Intent{Kind: IntentDirection, Direction: dir} }
func AlgorithmIntent(key string) Intent            { return Intent{Kind: IntentAlgorithm, Algorithm: key} }

func (i Intent) String() string {
	switch i.Kind {
	case IntentReset:
		return "reset"
	case IntentStart:
		return "start"
	case IntentDirection:
		return "direction:" + i.Direction.String()
	case IntentAlgorithm:
		return "algorithm:" + i.Algorithm
	default:
		return fmt.Sprintf("intent(%d)", int(i.Kind))
	}
}
