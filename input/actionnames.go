package input

import "fmt"

// Button is a game-level control, frontends map their physical keys onto these
type Button uint8

const (
	ButtonTurnLeft Button = iota
	ButtonTurnRight
	ButtonThrust
	ButtonFire
	ButtonReset
	// ButtonSplitFirst splits the first asteroid in the store, debug only
	ButtonSplitFirst
	// ButtonToggleProbes shows the collision probe grid
	ButtonToggleProbes
	ButtonToggleFullscreen
	ButtonQuit

	ButtonCount
)

// actionRegistry maps canonical action names to buttons
// Used by the keymap loader to resolve config action strings
var actionRegistry = map[string]Button{
	"turn_left":         ButtonTurnLeft,
	"turn_right":        ButtonTurnRight,
	"thrust":            ButtonThrust,
	"fire":              ButtonFire,
	"reset":             ButtonReset,
	"split_first":       ButtonSplitFirst,
	"toggle_probes":     ButtonToggleProbes,
	"toggle_fullscreen": ButtonToggleFullscreen,
	"quit":              ButtonQuit,
}

// ButtonByName resolves an action name
func ButtonByName(name string) (Button, bool) {
	b, ok := actionRegistry[name]
	return b, ok
}

func (b Button) String() string {
	for name, v := range actionRegistry {
		if v == b {
			return name
		}
	}
	return fmt.Sprintf("Button(%d)", b)
}
