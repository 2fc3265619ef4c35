package input

import (
	"fmt"
	"sort"
	"strings"
)

// Keymap binds each button to frontend-specific key names
type Keymap map[Button][]string

// DefaultKeymap returns the built-in bindings, names follow ebiten's key names
// The terminal frontend accepts the same names
func DefaultKeymap() Keymap {
	return Keymap{
		ButtonTurnLeft:         {"ArrowLeft", "A"},
		ButtonTurnRight:        {"ArrowRight", "D"},
		ButtonThrust:           {"ArrowUp", "W"},
		ButtonFire:             {"Space"},
		ButtonReset:            {"R"},
		ButtonSplitFirst:       {"B"},
		ButtonToggleProbes:     {"P"},
		ButtonToggleFullscreen: {"F11"},
		ButtonQuit:             {"Escape"},
	}
}

// LoadKeymap overlays action → key-name bindings onto the defaults
// An action present in overrides replaces its default binding entirely, an empty list unbinds it
// Returns error on unknown action names
func LoadKeymap(overrides map[string][]string) (Keymap, error) {
	km := DefaultKeymap()
	if len(overrides) == 0 {
		return km, nil
	}

	// Deterministic error reporting
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		b, ok := ButtonByName(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return nil, fmt.Errorf("keymap: unknown action %q", name)
		}
		keys := make([]string, 0, len(overrides[name]))
		for _, k := range overrides[name] {
			k = strings.TrimSpace(k)
			if k == "" {
				return nil, fmt.Errorf("keymap: empty key name for action %q", name)
			}
			keys = append(keys, k)
		}
		km[b] = keys
	}
	return km, nil
}

// Lookup returns a key name → buttons index, a key may drive several buttons
func (km Keymap) Lookup() map[string][]Button {
	idx := make(map[string][]Button)
	for b := Button(0); b < ButtonCount; b++ {
		for _, k := range km[b] {
			idx[k] = append(idx[k], b)
		}
	}
	return idx
}
