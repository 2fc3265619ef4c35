package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/asteroids/input"
)

// bindings maps each button to the ebiten keys that drive it
type bindings [input.ButtonCount][]ebiten.Key

// resolveKeys parses keymap names with ebiten's own key name table
func resolveKeys(km input.Keymap) (bindings, error) {
	var b bindings
	for btn := input.Button(0); btn < input.ButtonCount; btn++ {
		for _, name := range km[btn] {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				return b, fmt.Errorf("key %q for %s: %w", name, btn, err)
			}
			b[btn] = append(b[btn], k)
		}
	}
	return b, nil
}

// poll writes the current key state into st
func (b *bindings) poll(st *input.State) {
	for btn := input.Button(0); btn < input.ButtonCount; btn++ {
		down := false
		for _, k := range b[btn] {
			if ebiten.IsKeyPressed(k) {
				down = true
				break
			}
		}
		st.Set(btn, down)
	}
}
