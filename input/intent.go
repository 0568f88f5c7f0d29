package input

import "github.com/lixenwraith/pellet-run/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // Ctrl+Q, Ctrl+C, q
	IntentTogglePause // p, Space, Esc
	IntentToggleMute  // m
	IntentToggleDiag  // F3

	// Movement
	IntentSteer // arrows, hjkl, wasd

	// Overlay (upgrade screen, game over)
	IntentConfirm // Enter
	IntentSelect  // 1..9 direct slot pick
)

// Intent is a parsed semantic action. Pure data, no engine dependencies.
type Intent struct {
	Type IntentType

	// Dir is the requested heading for IntentSteer
	Dir core.Direction

	// Slot is the zero-based pick for IntentSelect
	Slot int
}
