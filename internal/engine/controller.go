package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/sortvis/internal/registry"
	"github.com/san-kum/sortvis/internal/sorting"
)

// Controller owns the dataset and at most one active producer. It is driven
// from a single loop: front ends call Apply for user intents and Tick once
// per frame.
type Controller struct {
	reg *registry.Registry
	gen *sorting.Generator

	data *sorting.Dataset
	algo registry.Entry
	dir  sorting.Direction

	mode       Mode
	producer   sorting.Producer
	run        Run
	stats      Stats
	highlights map[int]sorting.Role

	observers []Observer
	log       *slog.Logger
}

type Option func(*Controller)

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observers = append(c.observers, o) }
}

// NewController generates the first dataset from gen and selects algo.
func NewController(reg *registry.Registry, gen *sorting.Generator, algo string, dir sorting.Direction, opts ...Option) (*Controller, error) {
	entry, err := reg.Get(algo)
	if err != nil {
		return nil, err
	}
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: %d", sorting.ErrInvalidDirection, int(dir))
	}

	c := &Controller{
		reg:  reg,
		gen:  gen,
		algo: entry,
		dir:  dir,
		log:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.data = gen.Generate()
	return c, nil
}

func (c *Controller) AddObserver(o Observer) { c.observers = append(c.observers, o) }

func (c *Controller) Mode() Mode                   { return c.mode }
func (c *Controller) Dataset() *sorting.Dataset    { return c.data }
func (c *Controller) Algorithm() registry.Entry    { return c.algo }
func (c *Controller) Direction() sorting.Direction { return c.dir }
func (c *Controller) Registry() *registry.Registry { return c.reg }
func (c *Controller) Run() Run                     { return c.run }
func (c *Controller) Stats() Stats                 { return c.stats }

// Highlights returns the roles marked by the most recent step. It is nil
// while idle.
func (c *Controller) Highlights() map[int]sorting.Role { return c.highlights }

func (c *Controller) Start() error {
	if c.mode == Running {
		return sorting.ErrRunActive
	}
	if c.data == nil || c.data.Len() == 0 {
		return sorting.ErrNoDataset
	}

	c.producer = c.algo.New(c.data, c.dir)
	c.mode = Running
	c.stats = Stats{}
	c.run = Run{
		ID:        uuid.New(),
		Algorithm: c.algo.Key,
		Direction: c.dir,
		Size:      c.data.Len(),
		Started:   time.Now(),
	}

	c.log.Info("run started",
		"run", c.run.ID,
		"algorithm", c.run.Algorithm,
		"direction", c.dir,
		"size", c.run.Size)

	for _, obs := range c.observers {
		obs.OnStart(c.run)
	}
	return nil
}

// Tick advances the active producer by one step. ok is false when there was
// nothing to advance, including the tick on which the producer finished.
func (c *Controller) Tick() (step sorting.Step, ok bool) {
	if c.mode != Running {
		return sorting.Step{}, false
	}

	step, ok = c.producer.Advance()
	if !ok {
		c.finish(false)
		return sorting.Step{}, false
	}

	c.stats.Steps++
	if step.Mutated {
		c.stats.Mutations++
	}
	c.highlights = step.Roles(c.data.Len())

	for _, obs := range c.observers {
		obs.OnStep(c.run, step, c.data)
	}
	return step, true
}

func (c *Controller) finish(interrupted bool) {
	c.stats.Interrupted = interrupted
	c.producer = nil
	c.mode = Idle
	c.highlights = nil

	c.log.Info("run finished",
		"run", c.run.ID,
		"steps", c.stats.Steps,
		"mutations", c.stats.Mutations,
		"interrupted", interrupted,
		"elapsed", time.Since(c.run.Started))

	for _, obs := range c.observers {
		obs.OnFinish(c.run, c.stats)
	}
}

// Reset stops any active run and installs a freshly generated dataset.
func (c *Controller) Reset() {
	if c.mode == Running {
		c.finish(true)
	}
	c.data = c.gen.Generate()
	c.log.Debug("dataset regenerated", "size", c.data.Len())
}

func (c *Controller) SetDirection(dir sorting.Direction) error {
	if c.mode == Running {
		return sorting.ErrRunActive
	}
	if !dir.Valid() {
		return fmt.Errorf("%w: %d", sorting.ErrInvalidDirection, int(dir))
	}
	c.dir = dir
	return nil
}

func (c *Controller) SelectAlgorithm(key string) error {
	if c.mode == Running {
		return sorting.ErrRunActive
	}
	entry, err := c.reg.Get(key)
	if err != nil {
		return err
	}
	c.algo = entry
	return nil
}

// Reshape changes the shape of the datasets produced by later resets.
func (c *Controller) Reshape(n, min, max int) error {
	if c.mode == Running {
		return sorting.ErrRunActive
	}
	return c.gen.Reshape(n, min, max)
}

// Apply routes a user intent. Intents that are illegal in the current mode
// are dropped and Apply reports false.
func (c *Controller) Apply(in Intent) bool {
	var err error
	switch in.Kind {
	case IntentReset:
		c.Reset()
	case IntentStart:
		err = c.Start()
	case IntentDirection:
		err = c.SetDirection(in.Direction)
	case IntentAlgorithm:
		err = c.SelectAlgorithm(in.Algorithm)
	default:
		err = fmt.Errorf("unknown intent %d", int(in.Kind))
	}

	if err != nil {
		c.log.Debug("intent ignored", "intent", in, "mode", c.mode, "err", err)
		return false
	}
	return true
}
