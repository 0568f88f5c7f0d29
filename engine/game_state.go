package engine

import (
	"time"

	"github.com/lixenwraith/pellet-run/parameter"
)

// Phase is the top-level game mode
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseUpgrading
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseUpgrading:
		return "upgrading"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// GameState is the scalar run state: score, progression and the timers
// that are not owned by any single entity.
type GameState struct {
	Phase Phase

	Score      int
	Multiplier int
	Level      int
	Lives      int

	DotsCollected int
	TotalDots     int

	// Combo counts consecutive collections inside the combo window;
	// lastCollectAt is game time so pauses do not break a combo
	Combo         int
	lastCollectAt time.Time

	// PowerTicks is the shared scared countdown. All adversaries drop
	// scared together when it reaches zero.
	PowerTicks int

	// BaseSpeed is the player's tick threshold after upgrades; Boosted
	// subtracts the safe zone bonus until the scheduled revert fires.
	// boostSeq stamps each boost so a revert left over from an earlier
	// boost cannot cut a later one short.
	BaseSpeed int
	Boosted   bool
	boostSeq  uint64
}

func newGameState() GameState {
	return GameState{
		Phase:      PhasePlaying,
		Multiplier: 1,
		Level:      1,
		Lives:      parameter.StartingLives,
		BaseSpeed:  parameter.PlayerBaseSpeed,
	}
}

// PlayerSpeed returns the effective tick threshold, floored so upgrades
// and boosts can never stack below one tick per step
func (s *GameState) PlayerSpeed() int {
	speed := s.BaseSpeed
	if s.Boosted {
		speed -= parameter.SafeZoneBoost
	}
	if speed < parameter.PlayerMinSpeed {
		speed = parameter.PlayerMinSpeed
	}
	return speed
}

// registerCollection updates the combo chain and returns the bonus score
// for this collection. The first collection of a chain carries no bonus.
func (s *GameState) registerCollection(now time.Time) int {
	if !s.lastCollectAt.IsZero() && now.Sub(s.lastCollectAt) <= parameter.ComboWindow {
		s.Combo++
	} else {
		s.Combo = 1
	}
	s.lastCollectAt = now
	return parameter.DotComboBonus * (s.Combo - 1)
}

// breakCombo zeroes the chain, used on death
func (s *GameState) breakCombo() {
	s.Combo = 0
	s.lastCollectAt = time.Time{}
}
