package mapview

import (
	"cmp"
	"iter"

	"github.com/tidwall/btree"

	"go.llib.dev/iterview"
)

// KeyView is a non-owning view over the keys of a Map.
// The Map must not be structurally modified while a cursor of the view is in use.
type KeyView[K cmp.Ordered, V any] struct {
	m *Map[K, V]
}

var _ iterview.View[string, *KeyCursor[string, int]] = (*KeyView[string, int])(nil)

func Keys[K cmp.Ordered, V any](m *Map[K, V]) *KeyView[K, V] {
	return &KeyView[K, V]{m: m}
}

func (v *KeyView[K, V]) Begin() *KeyCursor[K, V] {
	return &KeyCursor[K, V]{position: begin(v.m)}
}

func (v *KeyView[K, V]) End() *KeyCursor[K, V] {
	return &KeyCursor[K, V]{position: position[K, V]{done: true}}
}

func (v *KeyView[K, V]) Iter() iter.Seq[K] {
	return iterview.Iter[K, *KeyCursor[K, V]](v)
}

type KeyCursor[K cmp.Ordered, V any] struct {
	position[K, V]
}

// Value returns a copy of the current key.
func (c *KeyCursor[K, V]) Value() K {
	return c.pos.Key()
}

func (c *KeyCursor[K, V]) NotEqual(end *KeyCursor[K, V]) bool {
	return c.done != end.done
}

// ValueView is a non-owning view over the values of a Map, in the order of their keys.
// The Map must not be structurally modified while a cursor of the view is in use,
// but the values themselves can be written through the yielded references.
type ValueView[K cmp.Ordered, V any] struct {
	m *Map[K, V]
}

var _ iterview.View[*int, *ValueCursor[string, int]] = (*ValueView[string, int])(nil)

func Values[K cmp.Ordered, V any](m *Map[K, V]) *ValueView[K, V] {
	return &ValueView[K, V]{m: m}
}

func (v *ValueView[K, V]) Begin() *ValueCursor[K, V] {
	return &ValueCursor[K, V]{position: begin(v.m)}
}

func (v *ValueView[K, V]) End() *ValueCursor[K, V] {
	return &ValueCursor[K, V]{position: position[K, V]{done: true}}
}

func (v *ValueView[K, V]) Iter() iter.Seq[*V] {
	return iterview.Iter[*V, *ValueCursor[K, V]](v)
}

type ValueCursor[K cmp.Ordered, V any] struct {
	position[K, V]
}

// Value returns a reference to the value stored in the Map.
func (c *ValueCursor[K, V]) Value() *V {
	return c.pos.Value()
}

func (c *ValueCursor[K, V]) NotEqual(end *ValueCursor[K, V]) bool {
	return c.done != end.done
}

// Entries yields the keys with references to their values, in ascending key order.
func Entries[K cmp.Ordered, V any](m *Map[K, V]) iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		if m == nil {
			return
		}
		m.tree.Scan(yield)
	}
}

// position is the shared state of the key and value cursors.
type position[K cmp.Ordered, V any] struct {
	pos  btree.MapIter[K, *V]
	done bool
}

func begin[K cmp.Ordered, V any](m *Map[K, V]) position[K, V] {
	if m == nil {
		return position[K, V]{done: true}
	}
	p := position[K, V]{pos: m.tree.Iter()}
	p.done = !p.pos.First()
	return p
}

func (p *position[K, V]) Next() {
	if p.done {
		return
	}
	p.done = !p.pos.Next()
}
