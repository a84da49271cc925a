package geometry

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnknownInput   = errors.New("unknown input")
	ErrUnknownDerived = errors.New("unknown derived value")
	errNotFinite      = errors.New("value is not finite")
	errEmpty          = errors.New("value is empty")
)

// ParseError is returned when the text for an input is not a real number.
// The input keeps its previous value.
type ParseError struct {
	Input string
	Text  string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("invalid number %q: %v", e.Text, e.Err)
	}
	return fmt.Sprintf("invalid number %q for %s: %v", e.Text, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
