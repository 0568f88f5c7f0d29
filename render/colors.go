package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pellet-run/ai"
	"github.com/lixenwraith/pellet-run/maze"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(10, 10, 16)
	RgbHUD        = tcell.NewRGBColor(200, 200, 210)
	RgbHUDDim     = tcell.NewRGBColor(110, 110, 125)

	RgbDot        = tcell.NewRGBColor(220, 200, 120)
	RgbPellet     = tcell.NewRGBColor(255, 240, 140)
	RgbBonus      = tcell.NewRGBColor(255, 140, 220)
	RgbTeleporter = tcell.NewRGBColor(120, 220, 255)
	RgbSafeZone   = tcell.NewRGBColor(80, 180, 110)

	RgbPlayer  = tcell.NewRGBColor(255, 255, 90)
	RgbBoosted = tcell.NewRGBColor(140, 255, 140)
	RgbScared  = tcell.NewRGBColor(90, 120, 255)

	RgbOverlayFrame = tcell.NewRGBColor(160, 160, 190)
	RgbDisabled     = tcell.NewRGBColor(90, 90, 100)
	RgbAlert        = tcell.NewRGBColor(255, 90, 90)
)

// themeWalls colors the maze per layout theme so level tiers read
// differently at a glance
var themeWalls = map[maze.Theme]tcell.Color{
	maze.ThemeChambers:  tcell.NewRGBColor(70, 100, 200),
	maze.ThemeFortress:  tcell.NewRGBColor(170, 90, 70),
	maze.ThemeLabyrinth: tcell.NewRGBColor(90, 160, 90),
	maze.ThemeCaverns:   tcell.NewRGBColor(140, 110, 80),
	maze.ThemeSpiral:    tcell.NewRGBColor(150, 90, 170),
}

// WallColor returns the wall color for a theme
func WallColor(t maze.Theme) tcell.Color {
	if c, ok := themeWalls[t]; ok {
		return c
	}
	return tcell.NewRGBColor(100, 100, 120)
}

// kindColors distinguishes adversary behaviors
var kindColors = map[ai.BehaviorKind]tcell.Color{
	ai.Aggressive:  tcell.NewRGBColor(255, 70, 70),
	ai.Patrol:      tcell.NewRGBColor(255, 170, 70),
	ai.Ambush:      tcell.NewRGBColor(230, 110, 230),
	ai.Random:      tcell.NewRGBColor(110, 210, 210),
	ai.Coordinator: tcell.NewRGBColor(240, 230, 90),
	ai.Trapper:     tcell.NewRGBColor(160, 255, 120),
}

// KindColor returns the normal-state color for an adversary kind
func KindColor(k ai.BehaviorKind) tcell.Color {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return tcell.ColorWhite
}
