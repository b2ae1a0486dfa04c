// Package mapview provides an ordered key-value mapping with two cursor views over it.
//
// KeyView yields the keys in ascending order as read-only copies,
// while ValueView yields references to the values in the same order,
// so values can be updated in place during the iteration:
//
//	var m mapview.Map[string, int]
//	m.Set("a", 1)
//	for v := range mapview.Values(&m).Iter() {
//		*v *= 10
//	}
//	m.Get("a") // 10
//
// Keys are never exposed by reference, since changing a key in place would break the ordering.
package mapview

import (
	"cmp"
	"iter"

	"github.com/tidwall/btree"
)

// Map is an ordered mapping, backed by a B-tree.
// Values are stored boxed, so a reference handed out by ValueView stays valid
// until its key is deleted, even if the tree rebalances in the meantime.
//
// The zero value is an empty Map ready to use.
type Map[K cmp.Ordered, V any] struct {
	tree btree.Map[K, *V]
}

func FromMap[K cmp.Ordered, V any](src map[K]V) *Map[K, V] {
	var m Map[K, V]
	for k, v := range src {
		m.Set(k, v)
	}
	return &m
}

// Set stores the value for the key.
// An already present key keeps its storage, so earlier references observe the new value.
func (m *Map[K, V]) Set(key K, val V) {
	if ptr, ok := m.tree.Get(key); ok {
		*ptr = val
		return
	}
	m.tree.Set(key, &val)
}

func (m *Map[K, V]) Lookup(key K) (V, bool) {
	ptr, ok := m.tree.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return *ptr, true
}

func (m *Map[K, V]) Get(key K) V {
	v, _ := m.Lookup(key)
	return v
}

// Ref returns a reference to the stored value of the key.
func (m *Map[K, V]) Ref(key K) (*V, bool) {
	return m.tree.Get(key)
}

func (m *Map[K, V]) Delete(key K) {
	m.tree.Delete(key)
}

func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Keys returns the keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	return m.tree.Keys()
}

func (m *Map[K, V]) ToMap() map[K]V {
	out := make(map[K]V, m.tree.Len())
	m.tree.Scan(func(key K, ptr *V) bool {
		out[key] = *ptr
		return true
	})
	return out
}

// Iter yields the key-value pairs in ascending key order.
func (m *Map[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.Scan(func(key K, ptr *V) bool {
			return yield(key, *ptr)
		})
	}
}
