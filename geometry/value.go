package geometry

import (
	"strconv"

	"github.com/pkg/errors"

	m "cargeo.dev/cargeo/math"
)

type State int

const (
	// Unresolved values depend on an input that was never supplied.
	Unresolved State = iota
	Resolved
	// Degenerate values came out as NaN or an infinity, usually because a
	// wheelbase or wheel diameter is zero.
	Degenerate
)

func (s State) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case Degenerate:
		return "degenerate"
	default:
		return "unresolved"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "resolved":
		*s = Resolved
	case "degenerate":
		*s = Degenerate
	case "unresolved":
		*s = Unresolved
	default:
		return errors.Errorf("unknown state %q", text)
	}
	return nil
}

// Value is the result of one derived formula. The zero Value is unresolved.
type Value struct {
	V     float64
	State State
}

func resolved(v float64) Value {
	if !m.Finite(v) {
		return Value{V: v, State: Degenerate}
	}
	return Value{V: v, State: Resolved}
}

// Float returns the value and whether it is available. Degenerate values are
// available and returned as NaN or ±Inf.
func (v Value) Float() (float64, bool) {
	if v.State == Unresolved {
		return 0, false
	}
	return v.V, true
}

func (v Value) Resolved() bool { return v.State == Resolved }

// Format renders the value the way the alignment sheet shows it: fixed
// decimals, with unresolved values shown as zero unless blank is set.
func (v Value) Format(decimals int, blank bool) string {
	if v.State == Unresolved {
		if blank {
			return "--"
		}
		return strconv.FormatFloat(0, 'f', decimals, 64)
	}
	return strconv.FormatFloat(v.V, 'f', decimals, 64)
}

func (v Value) String() string {
	if v.State == Unresolved {
		return "unresolved"
	}
	return strconv.FormatFloat(v.V, 'g', -1, 64)
}
