package splatter

import (
	"fmt"
	"strings"
)

// Size selects one of the two render scales a splatter ships in.
type Size uint8

const (
	Regular Size = iota
	Large
)

// SizeCount is the number of size variants per effect.
const SizeCount = 2

// HalfExtent is the distance from a frame's center to its top-left corner.
// Unknown sizes are treated as Regular.
func (s Size) HalfExtent() int {
	if s == Large {
		return 200
	}
	return 120
}

// Extent is the nominal edge length of a frame at this size.
func (s Size) Extent() int { return 2 * s.HalfExtent() }

// Valid reports whether s is Regular or Large.
func (s Size) Valid() bool { return s < SizeCount }

// String returns "regular" or "large", the names ParseSize accepts.
func (s Size) String() string {
	switch s {
	case Regular:
		return "regular"
	case Large:
		return "large"
	default:
		return fmt.Sprintf("Size(%d)", uint8(s))
	}
}

// ParseSize accepts "regular"/"large" (case-insensitive) and the short forms
// "r"/"l".
func ParseSize(s string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "regular", "r":
		return Regular, nil
	case "large", "l":
		return Large, nil
	}
	return Regular, fmt.Errorf("splatter: unknown size %q", s)
}

func (s Size) orRegular() Size {
	if !s.Valid() {
		return Regular
	}
	return s
}
