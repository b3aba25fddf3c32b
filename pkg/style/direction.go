package style

import (
	"fmt"
	"strings"
)

// Direction is the text direction of the subtree being rendered.
type Direction int

const (
	// LTR is left-to-right, the default.
	LTR Direction = iota
	// RTL is right-to-left.
	RTL
)

// String returns "ltr" or "rtl".
func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == RTL {
		return LTR
	}
	return RTL
}

// ParseDirection parses "ltr" or "rtl" case-insensitively. An empty string is LTR.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	default:
		return LTR, fmt.Errorf("unknown direction %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
