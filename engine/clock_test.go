package engine

import (
	"testing"
	"time"
)

var testEpoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// TestClockTracksProvider verifies game time follows real time while
// running
func TestClockTracksProvider(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	clock := NewPausableClock(mock)

	mock.Advance(3 * time.Second)
	if got := clock.Now().Sub(testEpoch); got != 3*time.Second {
		t.Errorf("elapsed %v, want 3s", got)
	}
}

// TestClockFreezesWhilePaused verifies pause stops game time and resume
// discounts the paused span
func TestClockFreezesWhilePaused(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	clock := NewPausableClock(mock)

	mock.Advance(time.Second)
	clock.Pause()
	frozen := clock.Now()

	mock.Advance(10 * time.Second)
	if got := clock.Now(); !got.Equal(frozen) {
		t.Errorf("paused clock moved from %v to %v", frozen, got)
	}

	clock.Resume()
	mock.Advance(2 * time.Second)
	if got := clock.Now().Sub(testEpoch); got != 3*time.Second {
		t.Errorf("elapsed %v after resume, want 3s", got)
	}
	if got := clock.TotalPauseDuration(); got != 10*time.Second {
		t.Errorf("total pause %v, want 10s", got)
	}
}

// TestClockPauseIdempotent verifies repeated pause and resume calls are
// harmless
func TestClockPauseIdempotent(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	clock := NewPausableClock(mock)

	clock.Resume()
	clock.Pause()
	clock.Pause()
	mock.Advance(time.Second)
	clock.Resume()
	clock.Resume()

	if got := clock.TotalPauseDuration(); got != time.Second {
		t.Errorf("total pause %v, want 1s", got)
	}
	if clock.IsPaused() {
		t.Error("clock still paused after resume")
	}
}
