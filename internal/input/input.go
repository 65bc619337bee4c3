// Package input connects the clicker to the host desktop: a global hotkey
// listener and a pointer that can be queried and clicked.
package input

import (
	"errors"
	"fmt"
	"strings"
)

// Hotkeys binds key combinations to callbacks. Callbacks run on the
// listener's goroutine, not the caller's.
type Hotkeys interface {
	Bind(combo Combo, fn func())
	Start()
	Stop()
}

// Pointer reads the cursor position and injects synthetic clicks.
type Pointer interface {
	Location() (x, y int)
	Click(x, y int)
}

var ErrEmptyCombo = errors.New("empty key combination")

// Combo is a parsed hotkey such as "ctrl+a". Keys holds the main key first,
// followed by its modifiers, which is the order gohook expects.
type Combo struct {
	Name string
	Keys []string
}

func (c Combo) String() string { return c.Name }

// ParseCombo parses "ctrl+shift+q" style key combinations.
func ParseCombo(s string) (Combo, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return Combo{}, ErrEmptyCombo
	}
	parts := strings.Split(name, "+")
	keys := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return Combo{}, fmt.Errorf("invalid key combination %q", s)
		}
		keys = append(keys, part)
	}

	// Move the main key in front of the modifiers
	main := keys[len(keys)-1]
	ordered := append([]string{main}, keys[:len(keys)-1]...)

	return Combo{Name: strings.Join(keys, "+"), Keys: ordered}, nil
}
