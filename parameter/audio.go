package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Effect Shaping
const (
	ChompDuration = 60 * time.Millisecond
	ChompAttack   = 5 * time.Millisecond
	ChompRelease  = 30 * time.Millisecond

	PelletDuration = 250 * time.Millisecond
	PelletAttack   = 10 * time.Millisecond
	PelletRelease  = 120 * time.Millisecond

	CaptureNoteDuration = 90 * time.Millisecond
	CaptureAttack       = 5 * time.Millisecond
	CaptureRelease      = 50 * time.Millisecond

	DeathDuration = 400 * time.Millisecond
	DeathAttack   = 10 * time.Millisecond
	DeathRelease  = 300 * time.Millisecond

	BonusDuration = 200 * time.Millisecond
	BonusAttack   = 5 * time.Millisecond
	BonusRelease  = 150 * time.Millisecond
)

// Mixer
const (
	MasterVolume = 0.6
)
