package parameter

import "time"

// Simulation Timing
const (
	// TickInterval is the fixed logical step of the simulation
	TickInterval = 50 * time.Millisecond

	// FrameInterval is the render cadence, decoupled from the tick
	FrameInterval = 33 * time.Millisecond
)

// Player Movement
const (
	// PlayerBaseSpeed is ticks accumulated before the player steps.
	// Lower is faster.
	PlayerBaseSpeed = 3

	// PlayerMinSpeed is the hard floor for speed upgrades and boosts
	PlayerMinSpeed = 1

	// SafeZoneBoost is subtracted from the base threshold while boosted
	SafeZoneBoost = 2

	// SafeZoneBoostDuration is game time before the boost reverts
	SafeZoneBoostDuration = 8 * time.Second
)

// Scoring
const (
	DotScore    = 10
	PelletScore = 50
	BonusScore  = 100

	// DotComboBonus is added per combo step above 1
	DotComboBonus = 5

	// ComboWindow is the max gap between collections that extends a combo
	ComboWindow = time.Second

	// CaptureBaseScore and CapturePerLevel price a scared adversary:
	// 200 + 50*level, before the multiplier
	CaptureBaseScore = 200
	CapturePerLevel  = 50
)

// Lives and Levels
const (
	StartingLives = 3

	// ScaredBaseTicks plus ScaredPerLevelTicks*level is the power pellet
	// countdown, capped at ScaredMaxTicks
	ScaredBaseTicks     = 120
	ScaredPerLevelTicks = 10
	ScaredMaxTicks      = 240
)

// Upgrade Catalogue
const (
	UpgradeSpeedCost      = 300
	UpgradeLifeCost       = 500
	UpgradeMultiplierCost = 1000
)
