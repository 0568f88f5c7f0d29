package parameter

// Maze Dimensions
const (
	MazeWidth  = 31
	MazeHeight = 21
)

// Theme Rotation
const (
	// ThemeSpan is levels per theme before rotating to the next
	ThemeSpan = 3
	// ThemeCount is the number of layout strategies
	ThemeCount = 5
)

// Generation Tuning
const (
	// MinChamberSpan stops recursive division below this width/height
	MinChamberSpan = 4

	// ExtraWallBase and ExtraWallPerLevel control scattered interior walls
	ExtraWallBase     = 2
	ExtraWallPerLevel = 1
	ExtraWallCap      = 14

	// CornerPelletInset offsets anchored power pellets from the border
	CornerPelletInset = 2

	// RandomPelletPerLevels adds one random pellet per this many levels
	RandomPelletPerLevels = 4
	RandomPelletCap       = 3

	// SpawnClearRadius is the Chebyshev radius force-opened around spawns
	SpawnClearRadius = 1
)

// Special Features
const (
	TeleporterEveryLevels = 5
	BonusRoomEveryLevels  = 3
	SafeZoneEveryLevels   = 7

	BonusRoomSize  = 3
	SafeZoneCount  = 4
	SafeZoneMinGap = 5
)
