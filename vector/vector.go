package vector

import (
	"iter"
	"reflect"
)

// Vector is a growable contiguous array of T.
//
// Internally the backing buffer always holds exactly Cap() slots; the first
// Len() of them are live and the rest hold zero values. Capacity changes
// only through the documented policy (doubling growth, halving shrink,
// explicit Reserve/Resize/ShrinkToFit) — never implicitly.
//
// Invariant: 0 ≤ Len() ≤ Cap().
type Vector[T any] struct {
	// Backing buffer; len(data) is the capacity.
	data []T
	// Number of live elements occupying the prefix of data.
	size int
	// Optional comparator for Contains; nil means reflect.DeepEqual.
	eq func(a, b T) bool
}

// New returns an empty vector with zero length and zero capacity,
// configured by the given options.
//
// Complexity: O(1), or O(c) with WithCapacity(c).
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Len returns the number of live elements. A nil vector reads as empty.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}

	return v.size
}

// Cap returns the allocated slot count. A nil vector reads as zero.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// IsEmpty reports whether the vector holds no elements.
// A nil vector reads as empty.
func (v *Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Items returns a read view of the occupied prefix of the backing buffer.
// The view is invalidated by any mutation. Returns nil for a nil vector or
// one that has never allocated.
func (v *Vector[T]) Items() []T {
	if v == nil || v.data == nil {
		return nil
	}

	return v.data[:v.size]
}

// Append stores x after the last element, growing the capacity by the
// doubling policy (0 → 1, else ×2) when the buffer is full.
//
// Complexity: amortized O(1).
func (v *Vector[T]) Append(x T) error {
	if v == nil {
		return ErrNilVector
	}
	if v.size+1 > len(v.data) {
		v.grow()
	}
	v.data[v.size] = x
	v.size++

	return nil
}

// Extend appends every element of other, in order.
// Both vectors must already have a live backing buffer; Extend on a vector
// that never allocated reports ErrUnallocated.
//
// Complexity: O(len(other)), plus a reallocation when growth is needed.
func (v *Vector[T]) Extend(other *Vector[T]) error {
	if v == nil || other == nil {
		return ErrNilVector
	}
	if v.data == nil || other.data == nil {
		return ErrUnallocated
	}
	if v.size+other.size > len(v.data) {
		if err := v.Reserve(v.size + other.size); err != nil {
			return err
		}
	}
	copy(v.data[v.size:], other.data[:other.size])
	v.size += other.size

	return nil
}

// Pop removes and returns the last element.
// Returns ErrEmptyVector when there is nothing to remove.
//
// After removal the halving shrink policy applies: once the length falls
// below half the capacity (and capacity exceeds one slot), capacity drops
// to the current length.
//
// Complexity: O(1), or O(n) when the shrink reallocates.
func (v *Vector[T]) Pop() (T, error) {
	var zero T
	if v == nil {
		return zero, ErrNilVector
	}
	if v.size == 0 {
		return zero, ErrEmptyVector
	}
	removed := v.data[v.size-1]
	v.data[v.size-1] = zero
	v.size--
	v.shrink()

	return removed, nil
}

// Insert places x at index, shifting [index, Len()) one slot right.
// index == Len() appends at the end; larger indices report ErrOutOfRange.
// Grows first when the buffer is full.
//
// Complexity: O(n).
func (v *Vector[T]) Insert(index int, x T) error {
	if v == nil {
		return ErrNilVector
	}
	if index < 0 || index > v.size {
		return ErrOutOfRange
	}
	if v.size == len(v.data) {
		v.grow()
	}
	copy(v.data[index+1:v.size+1], v.data[index:v.size])
	v.data[index] = x
	v.size++

	return nil
}

// Remove deletes and returns the element at index, shifting
// [index+1, Len()) one slot left. The halving shrink policy applies as in
// Pop. Requires index < Len().
//
// Complexity: O(n).
func (v *Vector[T]) Remove(index int) (T, error) {
	var zero T
	if v == nil {
		return zero, ErrNilVector
	}
	if index < 0 || index >= v.size {
		return zero, ErrOutOfRange
	}
	removed := v.data[index]
	copy(v.data[index:], v.data[index+1:v.size])
	v.data[v.size-1] = zero
	v.size--
	v.shrink()

	return removed, nil
}

// Contains reports whether any live element compares equal to x under the
// comparator configured via WithEqual, or reflect.DeepEqual by default.
//
// Complexity: O(n).
func (v *Vector[T]) Contains(x T) bool {
	if v == nil {
		return false
	}
	eq := v.eq
	if eq == nil {
		eq = func(a, b T) bool { return reflect.DeepEqual(a, b) }
	}
	for i := 0; i < v.size; i++ {
		if eq(v.data[i], x) {
			return true
		}
	}

	return false
}

// Get returns the element at index. Requires index < Len().
func (v *Vector[T]) Get(index int) (T, error) {
	var zero T
	if v == nil {
		return zero, ErrNilVector
	}
	if index < 0 || index >= v.size {
		return zero, ErrOutOfRange
	}

	return v.data[index], nil
}

// Set overwrites the element at index. Requires index < Len().
func (v *Vector[T]) Set(index int, x T) error {
	if v == nil {
		return ErrNilVector
	}
	if index < 0 || index >= v.size {
		return ErrOutOfRange
	}
	v.data[index] = x

	return nil
}

// Reserve reallocates the backing buffer to exactly capacity slots,
// preserving live elements. Reserving below the current length reports
// ErrCapacityBelowLen; reserving the current capacity is a no-op success.
//
// Complexity: O(Len()).
func (v *Vector[T]) Reserve(capacity int) error {
	if v == nil {
		return ErrNilVector
	}
	if capacity < v.size {
		return ErrCapacityBelowLen
	}
	if capacity == len(v.data) && v.data != nil {
		return nil
	}
	data := make([]T, capacity)
	copy(data, v.data[:v.size])
	v.data = data

	return nil
}

// ShrinkToFit drops the capacity to exactly the current length.
// Reports ErrEmptyVector on an empty vector (a no-op refused as invalid).
func (v *Vector[T]) ShrinkToFit() error {
	if v == nil {
		return ErrNilVector
	}
	if v.size == 0 {
		return ErrEmptyVector
	}

	return v.Reserve(v.size)
}

// Resize sets the length to n. Growing past the capacity reserves exactly n
// slots first; slots newly exposed by growth hold zero values. Shrinking
// the length never shrinks the capacity, and clears the vacated slots.
func (v *Vector[T]) Resize(n int) error {
	if v == nil {
		return ErrNilVector
	}
	if n < 0 {
		return ErrOutOfRange
	}
	if n > len(v.data) {
		if err := v.Reserve(n); err != nil {
			return err
		}
	}
	if n < v.size {
		clear(v.data[n:v.size])
	}
	v.size = n

	return nil
}

// All iterates index/value pairs over the occupied prefix, front to back.
// The sequence is restartable and performs no mutation.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if v == nil {
			return
		}
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// grow doubles the capacity (0 → 1, else ×2).
func (v *Vector[T]) grow() {
	next := 1
	if len(v.data) > 0 {
		next = len(v.data) * 2
	}
	// Reserve cannot fail here: next is always >= size.
	_ = v.Reserve(next)
}

// shrink applies the halving policy after a removal: once the length falls
// below half the capacity, capacity drops to the current length.
func (v *Vector[T]) shrink() {
	if v.size < len(v.data)/2 && len(v.data) > 1 {
		_ = v.Reserve(v.size)
	}
}
