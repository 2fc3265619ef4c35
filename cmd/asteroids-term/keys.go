package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/asteroids/input"
)

// keyName maps a tcell key event onto the shared keymap vocabulary, empty when unmapped
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyLeft:
		return "ArrowLeft"
	case tcell.KeyRight:
		return "ArrowRight"
	case tcell.KeyUp:
		return "ArrowUp"
	case tcell.KeyDown:
		return "ArrowDown"
	case tcell.KeyEscape:
		return "Escape"
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyTab:
		return "Tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "Backspace"
	case tcell.KeyRune:
		return runeName(ev.Rune())
	}
	if k := ev.Key(); k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return fmt.Sprintf("F%d", int(k-tcell.KeyF1)+1)
	}
	return ""
}

func runeName(r rune) string {
	switch {
	case r == ' ':
		return "Space"
	case r >= '0' && r <= '9':
		return "Digit" + string(r)
	case r < unicode.MaxASCII && unicode.IsLetter(r):
		return string(unicode.ToUpper(r))
	}
	return ""
}

// keyIndex resolves key names to buttons, names compare case-insensitively
type keyIndex map[string][]input.Button

func newKeyIndex(km input.Keymap) keyIndex {
	idx := make(keyIndex)
	for name, buttons := range km.Lookup() {
		k := strings.ToLower(name)
		idx[k] = append(idx[k], buttons...)
	}
	return idx
}

func (idx keyIndex) buttons(ev *tcell.EventKey) []input.Button {
	name := keyName(ev)
	if name == "" {
		return nil
	}
	return idx[strings.ToLower(name)]
}
