package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"pong/game"
)

const (
	sampleRate = beep.SampleRate(44100)

	wallFreq        = 440.0
	humanPaddleFreq = 660.0
	aiPaddleFreq    = 880.0
	blipDuration    = 40 * time.Millisecond

	scoreStartFreq = 520.0
	scoreEndFreq   = 130.0
	scoreDuration  = 300 * time.Millisecond
)

// SoundManager plays short cues for wall bounces, paddle hits and points.
// It implements game.Listener and stays silent until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts streaming the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// WallBounce plays a low blip
func (sm *SoundManager) WallBounce() {
	sm.playTone(wallFreq, blipDuration)
}

// PaddleHit plays a blip pitched by which paddle was hit
func (sm *SoundManager) PaddleHit(side game.Side) {
	freq := humanPaddleFreq
	if side == game.SideRight {
		freq = aiPaddleFreq
	}
	sm.playTone(freq, blipDuration)
}

// PointScored plays a falling sweep
func (sm *SoundManager) PointScored(side game.Side, score game.Score) {
	sm.play(NewSweepGenerator(sampleRate, scoreStartFreq, scoreEndFreq, scoreDuration))
}

func (sm *SoundManager) playTone(freq float64, d time.Duration) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	sm.play(beep.Take(sampleRate.N(d), sine))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
