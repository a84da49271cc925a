// Package geometry computes wheel alignment angles from laser distance
// readings taken at the four wheels of a car.
//
// An Engine owns the raw inputs. Derived values are recomputed lazily in a
// fixed order the first time they are read after an input changes.
package geometry

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	m "cargeo.dev/cargeo/math"
	ms "cargeo.dev/cargeo/settings"
	"cargeo.dev/cargeo/utils"
)

// Snapshot holds every derived value from one evaluation pass.
type Snapshot [derivedCount]Value

func (s *Snapshot) Get(d Derived) Value {
	return s[d]
}

// Engine is not safe for concurrent use; edits must be serialised by the
// caller.
type Engine struct {
	values   [inputCount]float64
	supplied [inputCount]bool
	snapshot utils.Cached[Snapshot]
}

func NewEngine() *Engine {
	e := &Engine{}
	e.Reset()
	return e
}

// Reset puts every input back to its initial value. Vehicle and rig
// dimensions start from the nominal car and count as supplied; readings start
// at zero and do not.
func (e *Engine) Reset() {
	e.values = [inputCount]float64{}
	e.supplied = [inputCount]bool{}

	e.setDefault(Wheelbase, ms.DEFAULT_WHEELBASE)
	e.setDefault(FrontOverhang, ms.DEFAULT_OVERHANG)
	e.setDefault(RearOverhang, ms.DEFAULT_OVERHANG)
	e.setDefault(LaserWidthFront, ms.DEFAULT_LASER_WIDTH)
	e.setDefault(LaserWidthRear, ms.DEFAULT_LASER_WIDTH)
	e.setDefault(WheelDiameter, ms.DEFAULT_WHEEL_DIAMETER)

	e.snapshot.Invalidate()
}

func (e *Engine) setDefault(in Input, val float64) {
	e.values[in] = val
	e.supplied[in] = true
}

// ParseValue parses the text of an input field. Surrounding spaces are
// ignored; empty text, NaN and infinities are rejected.
func ParseValue(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, &ParseError{Text: text, Err: errEmpty}
	}
	val, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &ParseError{Text: text, Err: err}
	}
	if !m.Finite(val) {
		return 0, &ParseError{Text: text, Err: errNotFinite}
	}
	return val, nil
}

// SetInput parses text and stores it as the value of the named input. On a
// *ParseError the previous value is kept.
func (e *Engine) SetInput(name, text string) error {
	in, ok := LookupInput(name)
	if !ok {
		return errors.Wrap(ErrUnknownInput, name)
	}
	val, err := ParseValue(text)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Input = in.String()
		}
		slog.Debug("rejected input", "input", in, "text", text, "error", err)
		return err
	}
	e.Set(in, val)
	return nil
}

func (e *Engine) Set(in Input, val float64) {
	e.values[in] = val
	e.supplied[in] = true
	e.snapshot.Invalidate()
	slog.Debug("input set", "input", in, "value", val)
}

// ClearInput marks the named input as not supplied, so that everything
// depending on it becomes unresolved again.
func (e *Engine) ClearInput(name string) error {
	in, ok := LookupInput(name)
	if !ok {
		return errors.Wrap(ErrUnknownInput, name)
	}
	e.Clear(in)
	return nil
}

func (e *Engine) Clear(in Input) {
	e.values[in] = 0
	e.supplied[in] = false
	e.snapshot.Invalidate()
	slog.Debug("input cleared", "input", in)
}

func (e *Engine) GetInput(name string) (float64, error) {
	in, ok := LookupInput(name)
	if !ok {
		return 0, errors.Wrap(ErrUnknownInput, name)
	}
	return e.Input(in), nil
}

// Input returns the stored value, zero for a reading never supplied.
func (e *Engine) Input(in Input) float64 {
	return e.values[in]
}

func (e *Engine) Supplied(in Input) bool {
	return e.supplied[in]
}

func (e *Engine) GetDerived(name string) (Value, error) {
	d, ok := LookupDerived(name)
	if !ok {
		return Value{}, errors.Wrap(ErrUnknownDerived, name)
	}
	return e.Derived(d), nil
}

func (e *Engine) Derived(d Derived) Value {
	s := e.Snapshot()
	return s[d]
}

// Snapshot returns all derived values, evaluating them if an input changed
// since the last read.
func (e *Engine) Snapshot() Snapshot {
	return e.snapshot.Value(e.evaluate)
}

// RecomputeAll evaluates every formula now instead of on the next read.
func (e *Engine) RecomputeAll() {
	e.snapshot.Set(e.evaluate())
}
