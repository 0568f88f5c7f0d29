package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pellet-run/engine"
	"github.com/lixenwraith/pellet-run/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager owns the speaker and a shared mixer. Effect playback is
// fire-and-forget; finished streamers drain out of the mixer on their
// own. A muted or uninitialized manager swallows playback silently so
// the game runs fine on machines without audio.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates an inert manager; call Initialize to open the
// speaker
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and attaches the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything. beep has no speaker Close; clearing the
// mixer is enough to avoid artifacts on exit.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
}

// ToggleMute flips effect playback
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// play adds a one-shot streamer to the mixer
func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// HandleEvents plays the effect for each drained simulation event
func (sm *SoundManager) HandleEvents(events []engine.Event) {
	for _, ev := range events {
		switch ev {
		case engine.EventDotEaten:
			sm.play(CreateChompSound(sampleRate))
		case engine.EventPelletEaten:
			sm.play(CreatePelletSound(sampleRate))
		case engine.EventBonusEaten, engine.EventBoost, engine.EventTeleport:
			sm.play(CreateBonusSound(sampleRate))
		case engine.EventCapture, engine.EventLevelComplete:
			sm.play(CreateCaptureSound(sampleRate))
		case engine.EventPlayerDeath, engine.EventGameOver:
			sm.play(CreateDeathSound(sampleRate))
		}
	}
}
