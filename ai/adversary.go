package ai

import (
	"math/rand"

	"github.com/lixenwraith/pellet-run/core"
	"github.com/lixenwraith/pellet-run/parameter"
)

// BehaviorKind is the closed set of adversary policies
type BehaviorKind uint8

const (
	Aggressive BehaviorKind = iota
	Patrol
	Ambush
	Random
	Coordinator
	Trapper

	behaviorKinds
)

func (k BehaviorKind) String() string {
	switch k {
	case Aggressive:
		return "aggressive"
	case Patrol:
		return "patrol"
	case Ambush:
		return "ambush"
	case Random:
		return "random"
	case Coordinator:
		return "coordinator"
	case Trapper:
		return "trapper"
	default:
		return "unknown"
	}
}

// Adversary is one AI-controlled chaser. Created wholesale at level
// generation and discarded on transition. The integer ID is stable for
// the level and anchors coordinator ring-slot assignment.
type Adversary struct {
	ID    int
	Pos   core.Point
	Spawn core.Point

	// MoveTimer accumulates ticks; the engine steps the adversary when it
	// reaches the speed threshold
	MoveTimer int

	Kind   BehaviorKind
	Scared bool
	Smart  bool

	// Level-derived coefficients
	Cooperation float64
	Prediction  int

	// PatrolTarget is the current waypoint, nil until first rolled
	PatrolTarget *core.Point

	// decisions counts DecideMove calls for the patrol duty cycle
	decisions int
}

// NewRoster builds the level's adversaries at the spawn corner: count
// scales with level (capped), behaviors cycle through the six kinds, and
// coefficients scale linearly with level (capped).
func NewRoster(level int, spawn core.Point, rng *rand.Rand) []*Adversary {
	count := parameter.AdversaryBase + level/parameter.AdversaryPerLevel
	if count > parameter.AdversaryCap {
		count = parameter.AdversaryCap
	}

	cooperation := parameter.CooperationBase + parameter.CooperationPerLevel*float64(level)
	if cooperation > parameter.CooperationCap {
		cooperation = parameter.CooperationCap
	}
	prediction := parameter.PredictionBase + level/parameter.PredictionDivisor
	if prediction > parameter.PredictionCap {
		prediction = parameter.PredictionCap
	}

	roster := make([]*Adversary, 0, count)
	for i := 0; i < count; i++ {
		adv := &Adversary{
			ID:          i,
			Pos:         spawn,
			Spawn:       spawn,
			Kind:        BehaviorKind(i % int(behaviorKinds)),
			Cooperation: cooperation,
			Prediction:  prediction,
		}
		if level >= parameter.SmartModeMinLevel {
			adv.Smart = rng.Float64() < parameter.SmartModeChance
		}
		roster = append(roster, adv)
	}
	return roster
}

// Respawn sends an eaten adversary back to its spawn corner, no longer
// scared
func (a *Adversary) Respawn() {
	a.Pos = a.Spawn
	a.Scared = false
	a.MoveTimer = 0
}
