package hashmap

import "iter"

// loadFactor is the occupancy bound maintained by proactive growth: an
// insert that would push Len() past loadFactor × Cap() doubles the table
// first.
const loadFactor = 0.8

// entry is one structurally-owned link in a bucket chain. The map owns the
// entry wrapper; the key and value it references belong to the caller.
type entry[K, V any] struct {
	key  K
	val  V
	next *entry[K, V]
}

// Map is an open-chaining hash table from K to V.
//
// A fresh map is uninitialized: it holds no bucket array and Cap() is
// zero. The first Set transitions it to a live table of capacity 1; from
// then on every live key is found in the chain at Hash(key) mod Cap().
type Map[K, V any] struct {
	policy  Policy[K]
	buckets []*entry[K, V]
	count   int
}

// New returns an empty, uninitialized map using the given policy.
// Returns ErrNilPolicy when either policy function is missing.
func New[K, V any](policy Policy[K]) (*Map[K, V], error) {
	if policy.Hash == nil || policy.Equal == nil {
		return nil, ErrNilPolicy
	}

	return &Map[K, V]{policy: policy}, nil
}

// NewStringMap returns an empty map with string keys under StringPolicy.
func NewStringMap[V any]() *Map[string, V] {
	m, _ := New[string, V](StringPolicy())

	return m
}

// Len returns the number of live entries. A nil map reads as empty.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}

	return m.count
}

// Cap returns the bucket-array capacity. A nil or uninitialized map reads
// as zero.
func (m *Map[K, V]) Cap() int {
	if m == nil {
		return 0
	}

	return len(m.buckets)
}

// Set inserts or overwrites the value for key.
//
// An uninitialized map is first given capacity 1. Growth (doubling, full
// rehash) runs before the duplicate walk whenever the incoming entry would
// push the load factor past the bound, so the overwrite-vs-insert decision
// is always made against the live bucket layout. Growth is proactive: it
// keys off Len()+1 and may fire even when the write turns out to be an
// overwrite.
//
// Complexity: O(1) average; O(Len()) when growth rehashes.
func (m *Map[K, V]) Set(key K, val V) error {
	if m == nil {
		return ErrNilMap
	}
	if len(m.buckets) == 0 {
		m.rehash(1)
	}
	if float64(m.count+1) > float64(len(m.buckets))*loadFactor {
		m.rehash(len(m.buckets) * 2)
	}

	index := m.policy.Hash(key) % uint64(len(m.buckets))
	for e := m.buckets[index]; e != nil; e = e.next {
		if m.policy.Equal(e.key, key) {
			e.val = val

			return nil
		}
	}

	m.buckets[index] = &entry[K, V]{key: key, val: val, next: m.buckets[index]}
	m.count++

	return nil
}

// Remove deletes the entry for key and returns its value.
// Returns ErrKeyNotFound when the map is uninitialized or the key is
// absent. The entry wrapper is unlinked whether it is the chain head or an
// interior node.
//
// Complexity: O(1) average, O(chain) worst case.
func (m *Map[K, V]) Remove(key K) (V, error) {
	var zero V
	if m == nil {
		return zero, ErrNilMap
	}
	if len(m.buckets) == 0 {
		return zero, ErrKeyNotFound
	}

	index := m.policy.Hash(key) % uint64(len(m.buckets))
	for pp := &m.buckets[index]; *pp != nil; pp = &(*pp).next {
		if e := *pp; m.policy.Equal(e.key, key) {
			*pp = e.next
			m.count--

			return e.val, nil
		}
	}

	return zero, ErrKeyNotFound
}

// Get returns the value stored for key and whether it was present.
// An uninitialized (or nil) map reports absent for every key.
//
// Complexity: O(1) average, O(chain) worst case.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var zero V
	if m == nil || len(m.buckets) == 0 {
		return zero, false
	}

	index := m.policy.Hash(key) % uint64(len(m.buckets))
	for e := m.buckets[index]; e != nil; e = e.next {
		if m.policy.Equal(e.key, key) {
			return e.val, true
		}
	}

	return zero, false
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)

	return ok
}

// Reserve rehashes the table into a bucket array of exactly capacity
// slots: every entry's bucket index is recomputed modulo the new capacity
// and the entry is relinked (moved, not copied). This is the only
// operation that changes chain positions.
//
// Reserving below Len() reports ErrCapacityBelowCount. Reserve(0) on an
// empty map releases the bucket array and returns the map to the
// uninitialized state.
//
// Complexity: O(Len() + capacity).
func (m *Map[K, V]) Reserve(capacity int) error {
	if m == nil {
		return ErrNilMap
	}
	if capacity < m.count {
		return ErrCapacityBelowCount
	}
	if capacity == 0 {
		m.buckets = nil

		return nil
	}
	m.rehash(capacity)

	return nil
}

// All iterates key/value pairs across all buckets in bucket-index order,
// then chain order within a bucket (most recently pushed first). There is
// no global insertion order. The sequence is restartable and performs no
// mutation.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, e := range m.buckets {
			for ; e != nil; e = e.next {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

// Keys iterates the keys in the same order as All.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values iterates the values in the same order as All.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// rehash relinks every entry into a fresh bucket array of the given
// capacity. Entries keep their identity; only their chain position moves.
func (m *Map[K, V]) rehash(capacity int) {
	next := make([]*entry[K, V], capacity)
	for _, e := range m.buckets {
		for e != nil {
			after := e.next
			index := m.policy.Hash(e.key) % uint64(capacity)
			e.next = next[index]
			next[index] = e
			e = after
		}
	}
	m.buckets = next
}
