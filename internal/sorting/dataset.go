package sorting

import (
	"fmt"
	"math/rand"
)

// Dataset is the sequence being visualized together with its declared
// inclusive value range. The range only drives layout scaling.
type Dataset struct {
	values   []int
	min, max int
}

// NewDataset takes ownership of values.
func NewDataset(values []int, min, max int) *Dataset {
	if max < min {
		panic(fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max))
	}
	return &Dataset{values: values, min: min, max: max}
}

// Generate draws n values uniformly from [min, max].
func Generate(rng *rand.Rand, n, min, max int) *Dataset {
	if max < min {
		panic(fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max))
	}
	values := make([]int, n)
	for i := range values {
		values[i] = min + rng.Intn(max-min+1)
	}
	return &Dataset{values: values, min: min, max: max}
}

func (d *Dataset) Len() int      { return len(d.values) }
func (d *Dataset) At(i int) int  { return d.values[i] }
func (d *Dataset) Set(i, v int)  { d.values[i] = v }
func (d *Dataset) Swap(i, j int) { d.values[i], d.values[j] = d.values[j], d.values[i] }
func (d *Dataset) Min() int      { return d.min }
func (d *Dataset) Max() int      { return d.max }

// Values returns a copy of the current sequence.
func (d *Dataset) Values() []int {
	c := make([]int, len(d.values))
	copy(c, d.values)
	return c
}

// Replace swaps in a new backing sequence and takes ownership of it.
func (d *Dataset) Replace(values []int) {
	d.values = values
}

func (d *Dataset) Clone() *Dataset {
	return &Dataset{values: d.Values(), min: d.min, max: d.max}
}

// Generator produces fresh datasets of a fixed shape from a seeded source.
type Generator struct {
	rng      *rand.Rand
	n        int
	min, max int
}

func NewGenerator(seed int64, n, min, max int) *Generator {
	if max < min {
		panic(fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max))
	}
	return &Generator{rng: rand.New(rand.NewSource(seed)), n: n, min: min, max: max}
}

func (g *Generator) Generate() *Dataset {
	return Generate(g.rng, g.n, g.min, g.max)
}

func (g *Generator) Shape() (n, min, max int) {
	return g.n, g.min, g.max
}

// Reshape changes the shape of subsequently generated datasets.
func (g *Generator) Reshape(n, min, max int) error {
	if max < min {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max)
	}
	if n < 1 {
		return fmt.Errorf("%w: length %d", ErrEmptyDataset, n)
	}
	g.n, g.min, g.max = n, min, max
	return nil
}

func IsSorted(values []int, dir Direction) bool {
	for i := 1; i < len(values); i++ {
		if dir.OutOfOrder(values[i-1], values[i]) {
			return false
		}
	}
	return true
}

// Inversions counts the pairs i < j that are out of order for dir.
func Inversions(values []int, dir Direction) int {
	buf := make([]int, len(values))
	copy(buf, values)
	return countInversions(buf, make([]int, len(values)), dir)
}

func countInversions(a, tmp []int, dir Direction) int {
	if len(a) < 2 {
		return 0
	}
	mid := len(a) / 2
	n := countInversions(a[:mid], tmp[:mid], dir) + countInversions(a[mid:], tmp[mid:], dir)
	i, j, k := 0, mid, 0
	for i < mid && j < len(a) {
		if dir.InOrder(a[i], a[j]) {
			tmp[k] = a[i]
			i++
		} else {
			tmp[k] = a[j]
			j++
			n += mid - i
		}
		k++
	}
	k += copy(tmp[k:], a[i:mid])
	copy(tmp[k:], a[j:])
	copy(a, tmp[:len(a)])
	return n
}

// Sortedness is 1 for a sorted sequence and 0 for a fully reversed one.
func Sortedness(values []int, dir Direction) float64 {
	n := len(values)
	if n < 2 {
		return 1
	}
	pairs := n * (n - 1) / 2
	return 1 - float64(Inversions(values, dir))/float64(pairs)
}
