package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SweepGenerator glides linearly from one frequency to another while fading
// out, then ends.
type SweepGenerator struct {
	sr        beep.SampleRate
	startFreq float64
	endFreq   float64
	total     int
	pos       int
	phase     float64
}

// NewSweepGenerator creates a sweep lasting d
func NewSweepGenerator(sr beep.SampleRate, startFreq, endFreq float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:        sr,
		startFreq: startFreq,
		endFreq:   endFreq,
		total:     sr.N(d),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}

	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}

		progress := float64(g.pos) / float64(g.total)
		freq := g.startFreq + (g.endFreq-g.startFreq)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := 0.3 * math.Sin(g.phase) * (1 - progress)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
