package parameter

import "time"

// Adversary Population
const (
	AdversaryBase     = 2
	AdversaryPerLevel = 2 // one more per this many levels
	AdversaryCap      = 6

	// AdversaryBaseSpeed is ticks per step; scared adversaries move slower
	AdversaryBaseSpeed   = 4
	AdversaryScaredDelay = 2
)

// Behavior Coefficients
const (
	// CooperationBase + CooperationPerLevel*level, capped
	CooperationBase     = 0.3
	CooperationPerLevel = 0.05
	CooperationCap      = 0.9

	// PredictionBase + level/PredictionDivisor cells of lookahead, capped
	PredictionBase     = 2
	PredictionDivisor  = 3
	PredictionCap      = 8

	// SmartModeMinLevel gates smart mode; above it each adversary rolls
	// SmartModeChance once at creation
	SmartModeMinLevel = 3
	SmartModeChance   = 0.4

	// Smart mode range bands (Manhattan cells)
	SmartCloseRange  = 3
	SmartMediumRange = 8

	// PatrolDutyCycle alternates pursue/patrol every this many decisions
	PatrolDutyCycle = 12

	// CoordinatorRingRadius is the encircling distance around the player
	CoordinatorRingRadius = 3
)

// Pathfinding
const (
	// PathCacheTTL bounds reuse of a cached route
	PathCacheTTL = 5 * time.Second

	// PathCacheCapacity bounds entries before oldest-inserted eviction
	PathCacheCapacity = 256
)
