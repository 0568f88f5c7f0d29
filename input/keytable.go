package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pellet-run/core"
)

// KeyTable maps terminal keys to intents
type KeyTable struct {
	SpecialKeys map[tcell.Key]Intent
	Runes       map[rune]Intent
}

// DefaultKeyTable returns the default bindings: arrows plus vi and wasd
// steering, with pause, mute and diagnostics toggles
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlQ:  {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyEscape: {Type: IntentTogglePause},
			tcell.KeyEnter:  {Type: IntentConfirm},
			tcell.KeyUp:     {Type: IntentSteer, Dir: core.DirUp},
			tcell.KeyDown:   {Type: IntentSteer, Dir: core.DirDown},
			tcell.KeyLeft:   {Type: IntentSteer, Dir: core.DirLeft},
			tcell.KeyRight:  {Type: IntentSteer, Dir: core.DirRight},
			tcell.KeyF3:     {Type: IntentToggleDiag},
		},
		Runes: map[rune]Intent{
			'h': {Type: IntentSteer, Dir: core.DirLeft},
			'j': {Type: IntentSteer, Dir: core.DirDown},
			'k': {Type: IntentSteer, Dir: core.DirUp},
			'l': {Type: IntentSteer, Dir: core.DirRight},
			'a': {Type: IntentSteer, Dir: core.DirLeft},
			's': {Type: IntentSteer, Dir: core.DirDown},
			'w': {Type: IntentSteer, Dir: core.DirUp},
			'd': {Type: IntentSteer, Dir: core.DirRight},
			'p': {Type: IntentTogglePause},
			' ': {Type: IntentTogglePause},
			'm': {Type: IntentToggleMute},
			'q': {Type: IntentQuit},
			'1': {Type: IntentSelect, Slot: 0},
			'2': {Type: IntentSelect, Slot: 1},
			'3': {Type: IntentSelect, Slot: 2},
		},
	}
}

// Decode translates a key event through the table. Unbound keys decode
// to IntentNone.
func (t *KeyTable) Decode(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		if in, ok := t.Runes[ev.Rune()]; ok {
			return in
		}
		return Intent{}
	}
	if in, ok := t.SpecialKeys[ev.Key()]; ok {
		return in
	}
	return Intent{}
}
