// Package iterviewcontract holds the behavioural contract that every iterview.View implementation is expected to fulfil.
package iterviewcontract

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/iterview"
)

// Contract is a testing suite that can be run as a test, a benchmark or as part of another testcase.Spec.
type Contract interface {
	testcase.Suite
	Test(*testing.T)
	Benchmark(*testing.B)
}

// View is the contract of the begin/end cursor protocol.
// The make function may return an empty view as well.
func View[T any, C iterview.Cursor[T, C]](mk func(testing.TB) iterview.View[T, C]) Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) iterview.View[T, C] {
		return mk(t)
	})

	s.Then("the end cursor is at the end", func(t *testcase.T) {
		end := subject.Get(t).End()
		assert.False(t, end.NotEqual(end))
	})

	s.Then("Iter yields the same values as walking the cursors by hand", func(t *testcase.T) {
		exp := walk(subject.Get(t))
		got := iterview.Collect(subject.Get(t))
		assert.Equal(t, len(exp), len(got))
		assert.Equal(t, exp, got)
	})

	s.Then("the view can be iterated again, and it yields the same sequence", func(t *testcase.T) {
		first := iterview.Collect(subject.Get(t))
		second := iterview.Collect(subject.Get(t))
		assert.Equal(t, first, second)
	})

	s.Then("a begin cursor reaches the end after as many advances as many values the view has", func(t *testcase.T) {
		v := subject.Get(t)
		n := iterview.Count(v)
		end := v.End()
		c := v.Begin()
		for range n {
			assert.True(t, c.NotEqual(end), "cursor reached the end too early")
			c.Next()
		}
		assert.False(t, c.NotEqual(end), "cursor was expected to be at the end")
	})

	s.Then("two begin cursors are independent from each other", func(t *testcase.T) {
		v := subject.Get(t)
		end := v.End()
		a, b := v.Begin(), v.Begin()
		if !a.NotEqual(end) {
			assert.False(t, b.NotEqual(end))
			return
		}
		exp := a.Value()
		a.Next()
		assert.True(t, b.NotEqual(end))
		assert.Equal(t, exp, b.Value())
	})

	s.Then("stopping the iteration early is safe", func(t *testcase.T) {
		var n int
		for range iterview.Iter(subject.Get(t)) {
			n++
			break
		}
		assert.True(t, n <= 1)
		assert.Equal(t, walk(subject.Get(t)), iterview.Collect(subject.Get(t)))
	})

	return s.AsSuite("iterview.View")
}

func walk[T any, C iterview.Cursor[T, C]](v iterview.View[T, C]) []T {
	var vs []T
	end := v.End()
	for c := v.Begin(); c.NotEqual(end); c.Next() {
		vs = append(vs, c.Value())
	}
	return vs
}
