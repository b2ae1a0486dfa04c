// Package iterview provides the cursor protocol shared by the iteration views of this module.
//
// # Summary
//
// A view describes how to produce a sequence without materializing it.
// It is constructed with its iteration parameters, and it hands out a begin and an end cursor.
// A cursor can be dereferenced with Value, advanced with Next,
// and compared against the end cursor with NotEqual.
//
// Views keep only immutable descriptors or a borrowed reference,
// never iteration progress, so every call to Begin starts a fresh traversal.
//
// Most of the time you don't need the cursors directly,
// as every view also offers an iter.Seq through Iter:
//
//	for v := range rangekit.Until(10).Iter() {
//		fmt.Println(v)
//	}
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package iterview

import "iter"

// Cursor is a position within the sequence of a View.
type Cursor[T, C any] interface {
	// Value dereferences the cursor.
	Value() T
	// Next advances the cursor in place.
	Next()
	// NotEqual reports whether the cursor has not reached the end cursor yet.
	NotEqual(end C) bool
}

// View is the begin/end pair of cursors that describes a lazy sequence.
type View[T any, C Cursor[T, C]] interface {
	Begin() C
	End() C
}

// Iter drives the begin/end protocol of a View as an iter.Seq.
// Stopping the iteration early is always safe, since cursors hold no resources.
func Iter[T any, C Cursor[T, C]](v View[T, C]) iter.Seq[T] {
	return func(yield func(T) bool) {
		end := v.End()
		for c := v.Begin(); c.NotEqual(end); c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// Collect walks the View and returns every value in order.
func Collect[T any, C Cursor[T, C]](v View[T, C]) []T {
	var vs []T
	for val := range Iter(v) {
		vs = append(vs, val)
	}
	return vs
}

// Count walks the View and returns the number of values it produced.
func Count[T any, C Cursor[T, C]](v View[T, C]) int {
	var n int
	end := v.End()
	for c := v.Begin(); c.NotEqual(end); c.Next() {
		n++
	}
	return n
}
