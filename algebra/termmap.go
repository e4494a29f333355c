// SPDX-License-Identifier: MIT
// Package: algebra
//
// Package algebra provides the insertion-ordered term map backing every
// struqture container, plus the ordered key pair used by Lindblad noise
// containers.
//
// Products carry index slices and therefore cannot serve as Go map keys; the
// map hashes on the canonical string form instead and keeps the original
// typed key alongside the value. Insertion order is preserved so that
// iteration, serialization and printing are deterministic.
package algebra

import "fmt"

// TermMap is an insertion-ordered map from a canonical product key K to a
// coefficient V. K is hashed through its String method, which every product
// type guarantees to be canonical (equal products render equally).
//
// The zero TermMap is not ready for use; call NewTermMap.
type TermMap[K fmt.Stringer, V any] struct {
	order   []string
	entries map[string]termEntry[K, V]
}

type termEntry[K fmt.Stringer, V any] struct {
	key K
	val V
}

// NewTermMap returns an empty term map.
func NewTermMap[K fmt.Stringer, V any]() *TermMap[K, V] {
	return &TermMap[K, V]{entries: make(map[string]termEntry[K, V])}
}

// Len returns the number of stored terms.
func (m *TermMap[K, V]) Len() int { return len(m.order) }

// Lookup returns the value stored under k and whether it was present.
func (m *TermMap[K, V]) Lookup(k K) (V, bool) {
	e, ok := m.entries[k.String()]
	return e.val, ok
}

// Get returns the value stored under k, or the zero V when absent.
func (m *TermMap[K, V]) Get(k K) V {
	return m.entries[k.String()].val
}

// Set stores v under k, returning the previous value and whether one existed.
// A fresh key is appended to the iteration order; overwriting keeps the
// original position.
func (m *TermMap[K, V]) Set(k K, v V) (V, bool) {
	s := k.String()
	prev, ok := m.entries[s]
	if !ok {
		m.order = append(m.order, s)
	}
	m.entries[s] = termEntry[K, V]{key: k, val: v}
	return prev.val, ok
}

// Remove deletes the term under k, returning the removed value and whether
// it was present. The iteration order of the remaining terms is preserved.
func (m *TermMap[K, V]) Remove(k K) (V, bool) {
	s := k.String()
	prev, ok := m.entries[s]
	if !ok {
		var zero V
		return zero, false
	}
	delete(m.entries, s)
	for i, key := range m.order {
		if key == s {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return prev.val, true
}

// Keys returns the stored keys in insertion order.
func (m *TermMap[K, V]) Keys() []K {
	out := make([]K, 0, len(m.order))
	for _, s := range m.order {
		out = append(out, m.entries[s].key)
	}
	return out
}

// Iter calls fn for each term in insertion order, stopping early when fn
// returns false.
func (m *TermMap[K, V]) Iter(fn func(K, V) bool) {
	for _, s := range m.order {
		e := m.entries[s]
		if !fn(e.key, e.val) {
			return
		}
	}
}

// Clone returns an independent shallow copy (keys and values are copied by
// assignment).
func (m *TermMap[K, V]) Clone() *TermMap[K, V] {
	out := &TermMap[K, V]{
		order:   append([]string(nil), m.order...),
		entries: make(map[string]termEntry[K, V], len(m.entries)),
	}
	for s, e := range m.entries {
		out.entries[s] = e
	}
	return out
}
