// Package audio sonifies a run: every step plays a short tone whose pitch
// follows the value under the primary mark.
package audio

import (
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/san-kum/sortvis/internal/engine"
	"github.com/san-kum/sortvis/internal/sorting"
)

const (
	SampleRate = 44100
	BufferSize = 512

	MinFreq = 220.0
	MaxFreq = 880.0

	// envelope decay per sample, about 80 ms to -60 dB
	decay  = 0.99805
	cutoff = 2400.0
	volume = 0.2
)

// Player is an engine.Observer that plays a tone per step on the default
// output device.
type Player struct {
	stream *portaudio.Stream
	log    *slog.Logger

	mu      sync.Mutex
	target  float64
	pan     float64
	trigger bool

	// owned by the audio callback
	freq   float64
	phase  float64
	env    float64
	filter [2]float64

	active bool
}

func NewPlayer(log *slog.Logger) *Player {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Player{log: log, pan: 0.5}
}

func (p *Player) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, p.Process)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("audio open: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("audio start: %w", err)
	}
	p.stream = stream
	p.active = true
	p.log.Info("audio started", "sample_rate", SampleRate, "buffer", BufferSize)
	return nil
}

func (p *Player) Stop() {
	if !p.active {
		return
	}
	p.stream.Stop()
	p.stream.Close()
	portaudio.Terminate()
	p.active = false
}

// Frequency maps v in [min, max] onto [MinFreq, MaxFreq] exponentially, so
// equal value steps sound like equal intervals.
func Frequency(v, min, max int) float64 {
	if max <= min {
		return MinFreq
	}
	t := float64(v-min) / float64(max-min)
	t = math.Max(0, math.Min(1, t))
	return MinFreq * math.Pow(MaxFreq/MinFreq, t)
}

// Pan places position i of n between the left (0) and right (1) channel.
func Pan(i, n int) float64 {
	if n < 2 {
		return 0.5
	}
	return float64(i) / float64(n-1)
}

// Play retriggers the envelope at freq.
func (p *Player) Play(freq, pan float64) {
	p.mu.Lock()
	p.target = freq
	p.pan = pan
	p.trigger = true
	p.mu.Unlock()
}

func (p *Player) OnStart(run engine.Run) {}

func (p *Player) OnStep(run engine.Run, step sorting.Step, data *sorting.Dataset) {
	for _, m := range step.Marks {
		if m.Role != sorting.RolePrimary || m.Index < 0 || m.Index >= data.Len() {
			continue
		}
		p.Play(Frequency(data.At(m.Index), data.Min(), data.Max()), Pan(m.Index, data.Len()))
		return
	}
}

func (p *Player) OnFinish(run engine.Run, stats engine.Stats) {}

func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// One pole low pass.
func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

// Process fills a stereo output buffer. It is the portaudio callback.
func (p *Player) Process(out [][]float32) {
	p.mu.Lock()
	if p.trigger {
		p.freq = p.target
		p.env = 1
		p.trigger = false
	}
	pan := p.pan
	p.mu.Unlock()

	dt := 1.0 / float64(SampleRate)
	left := math.Cos(pan * math.Pi / 2)
	right := math.Sin(pan * math.Pi / 2)

	for i := range out[0] {
		s := 0.0
		if p.env > 1e-4 {
			s = triangle(p.phase) * p.env * volume
			p.phase += p.freq * dt
			p.env *= decay
		} else {
			p.env = 0
		}

		var l, r float64
		l, p.filter[0] = lpf(s*left, cutoff, dt, p.filter[0])
		r, p.filter[1] = lpf(s*right, cutoff, dt, p.filter[1])
		out[0][i] = float32(l)
		out[1][i] = float32(r)
	}
}
