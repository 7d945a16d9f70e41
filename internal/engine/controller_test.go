package engine

import (
	"bytes"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortvis/internal/registry"
	"github.com/san-kum/sortvis/internal/sorting"
)

// recorder counts observer callbacks.
type recorder struct {
	starts   []Run
	steps    int
	finishes []Stats
}

func (r *recorder) OnStart(run Run)                                       { r.starts = append(r.starts, run) }
func (r *recorder) OnStep(run Run, step sorting.Step, d *sorting.Dataset) { r.steps++ }
func (r *recorder) OnFinish(run Run, stats Stats)                         { r.finishes = append(r.finishes, stats) }

func drainController(c *Controller) int {
	ticks := 0
	for c.Mode() == Running {
		c.Tick()
		ticks++
		Expect(ticks).To(BeNumerically("<", 100000), "controller did not go idle")
	}
	return ticks
}

var _ = Describe("Controller", func() {
	var (
		c    *Controller
		obs  *recorder
		logs *bytes.Buffer
	)

	BeforeEach(func() {
		obs = &recorder{}
		logs = &bytes.Buffer{}
		logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

		var err error
		c, err = NewController(
			registry.NewRegistry(),
			sorting.NewGenerator(7, 20, 0, 100),
			"bubble",
			sorting.Ascending,
			WithLogger(logger),
			WithObserver(obs),
		)
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts idle with a generated dataset", func() {
		Expect(c.Mode()).To(Equal(Idle))
		Expect(c.Dataset().Len()).To(Equal(20))
		Expect(c.Highlights()).To(BeNil())
		Expect(c.Algorithm().Name).To(Equal("Bubble Sort"))
	})

	It("rejects unknown algorithms at construction", func() {
		_, err := NewController(registry.NewRegistry(), sorting.NewGenerator(1, 5, 0, 5), "bogo", sorting.Ascending)
		Expect(err).To(MatchError(sorting.ErrUnknownAlgorithm))
	})

	Context("when a run completes", func() {
		It("sorts the dataset and returns to idle", func() {
			Expect(c.Apply(StartIntent())).To(BeTrue())
			Expect(c.Mode()).To(Equal(Running))

			drainController(c)

			Expect(c.Mode()).To(Equal(Idle))
			Expect(sorting.IsSorted(c.Dataset().Values(), sorting.Ascending)).To(BeTrue())
			Expect(c.Highlights()).To(BeNil())
			Expect(obs.starts).To(HaveLen(1))
			Expect(obs.finishes).To(HaveLen(1))
			Expect(obs.finishes[0].Interrupted).To(BeFalse())
			Expect(obs.finishes[0].Steps).To(Equal(obs.steps))
			Expect(obs.finishes[0].Steps).To(Equal(20 * 19 / 2))
		})

		It("records the highlights of the latest step", func() {
			Expect(c.Start()).To(Succeed())
			step, ok := c.Tick()
			Expect(ok).To(BeTrue())
			Expect(c.Highlights()).To(Equal(step.Roles(c.Dataset().Len())))
			Expect(c.Highlights()).To(HaveKeyWithValue(0, sorting.RolePrimary))
		})

		It("uses the selected direction", func() {
			Expect(c.Apply(DirectionIntent(sorting.Descending))).To(BeTrue())
			Expect(c.Apply(AlgorithmIntent("merge"))).To(BeTrue())
			Expect(c.Apply(StartIntent())).To(BeTrue())
			drainController(c)

			Expect(sorting.IsSorted(c.Dataset().Values(), sorting.Descending)).To(BeTrue())
			Expect(obs.starts[0].Algorithm).To(Equal("merge"))
			Expect(obs.starts[0].Direction).To(Equal(sorting.Descending))
		})

		It("assigns a fresh run id to every run", func() {
			Expect(c.Start()).To(Succeed())
			drainController(c)
			Expect(c.Start()).To(Succeed())
			drainController(c)

			Expect(obs.starts).To(HaveLen(2))
			Expect(obs.starts[0].ID).NotTo(Equal(obs.starts[1].ID))
		})
	})

	Context("while running", func() {
		BeforeEach(func() {
			Expect(c.Start()).To(Succeed())
			_, ok := c.Tick()
			Expect(ok).To(BeTrue())
		})

		It("rejects a second start", func() {
			Expect(c.Start()).To(MatchError(sorting.ErrRunActive))
			Expect(c.Apply(StartIntent())).To(BeFalse())
			Expect(obs.starts).To(HaveLen(1))
			Expect(logs.String()).To(ContainSubstring("intent ignored"))
		})

		It("rejects direction changes", func() {
			Expect(c.Apply(DirectionIntent(sorting.Descending))).To(BeFalse())
			Expect(c.Direction()).To(Equal(sorting.Ascending))
		})

		It("rejects algorithm changes", func() {
			Expect(c.SelectAlgorithm("quick")).To(MatchError(sorting.ErrRunActive))
			Expect(c.Algorithm().Key).To(Equal("bubble"))
		})

		It("rejects reshaping", func() {
			Expect(c.Reshape(5, 0, 10)).To(MatchError(sorting.ErrRunActive))
		})

		It("stops the run before installing a new dataset on reset", func() {
			old := c.Dataset()
			before := old.Values()

			Expect(c.Apply(ResetIntent())).To(BeTrue())

			Expect(c.Mode()).To(Equal(Idle))
			Expect(c.Dataset()).NotTo(BeIdenticalTo(old))
			Expect(c.Highlights()).To(BeNil())
			Expect(obs.finishes).To(HaveLen(1))
			Expect(obs.finishes[0].Interrupted).To(BeTrue())

			steps := obs.steps
			_, ok := c.Tick()
			Expect(ok).To(BeFalse())
			Expect(obs.steps).To(Equal(steps))
			Expect(old.Values()).To(Equal(before))
		})
	})

	Context("while idle", func() {
		It("ignores ticks", func() {
			_, ok := c.Tick()
			Expect(ok).To(BeFalse())
			Expect(obs.steps).To(BeZero())
		})

		It("regenerates the dataset on reset", func() {
			old := c.Dataset()
			c.Reset()
			Expect(c.Dataset()).NotTo(BeIdenticalTo(old))
			Expect(obs.finishes).To(BeEmpty())
		})

		It("applies a new shape on the next reset", func() {
			Expect(c.Reshape(8, 10, 20)).To(Succeed())
			Expect(c.Dataset().Len()).To(Equal(20))

			c.Reset()
			Expect(c.Dataset().Len()).To(Equal(8))
			Expect(c.Dataset().Min()).To(Equal(10))
			Expect(c.Dataset().Max()).To(Equal(20))
		})

		It("rejects invalid selections", func() {
			Expect(c.Apply(AlgorithmIntent("bogo"))).To(BeFalse())
			Expect(c.SetDirection(sorting.Direction(9))).To(MatchError(sorting.ErrInvalidDirection))
			Expect(c.Reshape(0, 0, 10)).To(MatchError(sorting.ErrEmptyDataset))
		})
	})
})
