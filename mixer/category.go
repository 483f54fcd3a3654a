// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"strings"
)

// Category selects which group volume applies to an instance.
type Category int

const (
	Effect Category = iota
	Music
)

func (c Category) String() string {
	switch c {
	case Effect:
		return "effect"
	case Music:
		return "music"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory accepts "music", "effect" or "effects". Empty means Effect.
func ParseCategory(name string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "effect", "effects", "sfx":
		return Effect, nil
	case "music":
		return Music, nil
	}
	return Effect, fmt.Errorf("%q: %w", name, ErrUnknownCategory)
}
