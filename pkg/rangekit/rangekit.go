// Package rangekit implements lazily generated integer ranges.
//
// A Range yields start, start+step, start+2*step, ... as long as the value
// is strictly before stop in the direction of the step.
// The stepping arithmetic saturates at the bounds of the integer type,
// so a range that ends at MaxInt or MinInt still terminates with any step size.
//
//	r, err := rangekit.New[uint8](250, 255, 10)
//	// r yields only 250, since 250+10 saturates to 255, which is the stop value.
package rangekit

import (
	"fmt"
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
	"golang.org/x/exp/constraints"

	"go.llib.dev/iterview"
	"go.llib.dev/iterview/pkg/mathkit"
)

const ErrZeroStep errorkit.Error = "range step must not be zero"

// Range describes a lazy integer sequence.
// It is immutable after construction, thus safe to iterate multiple times.
type Range[T constraints.Integer] struct {
	start, stop, step T
}

var _ iterview.View[int, *Cursor[int]] = (*Range[int])(nil)

// New makes a Range from start to stop, using the optional step, which defaults to 1.
// A zero step is reported as an iterview.ErrInvalidArgument error.
// A range which can't yield any value, like New(5, 0), is not an error.
func New[T constraints.Integer](start, stop T, step ...T) (*Range[T], error) {
	var s T = 1
	switch len(step) {
	case 0:
	case 1:
		s = step[0]
	default:
		return nil, iterview.ErrInvalidArgument.F("expected at most one step value, got %d", len(step))
	}
	if s == 0 {
		return nil, iterview.ErrInvalidArgument.Wrap(ErrZeroStep)
	}
	return &Range[T]{start: start, stop: stop, step: s}, nil
}

// MustNew is the panicking version of New, meant for ranges built from literals.
func MustNew[T constraints.Integer](start, stop T, step ...T) *Range[T] {
	r, err := New(start, stop, step...)
	if err != nil {
		panic(err)
	}
	return r
}

// Until makes a Range from zero to stop with a step of 1.
func Until[T constraints.Integer](stop T) *Range[T] {
	return &Range[T]{start: 0, stop: stop, step: 1}
}

// Int is New with the integer type fixed to int.
func Int(start, stop int, step ...int) (*Range[int], error) {
	return New(start, stop, step...)
}

func (r *Range[T]) Start() T { return r.start }
func (r *Range[T]) Stop() T  { return r.stop }
func (r *Range[T]) Step() T  { return r.step }

func (r *Range[T]) Begin() *Cursor[T] {
	return &Cursor[T]{current: r.start, step: r.step}
}

func (r *Range[T]) End() *Cursor[T] {
	return &Cursor[T]{current: r.stop, step: r.step}
}

func (r *Range[T]) Iter() iter.Seq[T] {
	return iterview.Iter[T, *Cursor[T]](r)
}

// Len tells how many values the range yields, without iterating it.
func (r *Range[T]) Len() uint64 {
	if !r.before(r.start, r.stop) {
		return 0
	}
	var distance uint64
	if 0 < r.step {
		distance = mathkit.Distance(r.start, r.stop)
	} else {
		distance = mathkit.Distance(r.stop, r.start)
	}
	magnitude := mathkit.AbsInt(r.step)
	n := distance / magnitude
	if distance%magnitude != 0 {
		n++
	}
	return n
}

// Contains reports whether v is one of the values the range yields.
func (r *Range[T]) Contains(v T) bool {
	if !r.before(v, r.stop) {
		return false
	}
	var offset uint64
	switch {
	case 0 < r.step && r.start <= v:
		offset = mathkit.Distance(r.start, v)
	case r.step < 0 && v <= r.start:
		offset = mathkit.Distance(v, r.start)
	default:
		return false
	}
	return offset%mathkit.AbsInt(r.step) == 0
}

func (r *Range[T]) String() string {
	return fmt.Sprintf("range(%d, %d, %d)", r.start, r.stop, r.step)
}

func (r *Range[T]) before(v, limit T) bool {
	if 0 < r.step {
		return v < limit
	}
	return limit < v
}

// Cursor is a position in a Range.
// The step is kept alongside the current value, so advancing and comparing need nothing else.
type Cursor[T constraints.Integer] struct {
	current T
	step    T
}

func (c *Cursor[T]) Value() T { return c.current }

// Next moves the cursor by one step.
// A step with a magnitude of one can't overflow, because the cursor is only advanced
// while it is strictly before the stop value, which is itself within the type's bounds.
// Any other step saturates at the type's bounds.
func (c *Cursor[T]) Next() {
	switch {
	case c.step == 1:
		c.current++
	case mathkit.IsSigned[T]() && c.step == ^T(0): // -1
		c.current--
	default:
		c.current = mathkit.SaturatingAdd(c.current, c.step)
	}
}

// NotEqual is direction aware, the cursor is at the end once it is no longer strictly before end.
// Exact equality would not work, since a large step can jump past the stop value.
func (c *Cursor[T]) NotEqual(end *Cursor[T]) bool {
	if 0 < c.step {
		return c.current < end.current
	}
	return end.current < c.current
}
