// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on user-triggered error conditions; panics
// are reserved for programmer errors in option constructors.

package vector

import "errors"

var (
	// ErrNilVector indicates a nil *Vector receiver was used for a
	// mutating or indexed operation.
	ErrNilVector = errors.New("vector: nil receiver")

	// ErrOutOfRange indicates an index outside the valid bounds of the
	// operation (Get/Set/Remove require index < Len; Insert allows
	// index == Len).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrEmptyVector indicates an operation that requires at least one
	// element (Pop, ShrinkToFit) was called on an empty vector.
	ErrEmptyVector = errors.New("vector: vector is empty")

	// ErrCapacityBelowLen is returned by Reserve when the requested
	// capacity would truncate live elements.
	ErrCapacityBelowLen = errors.New("vector: capacity below current length")

	// ErrUnallocated is returned by Extend when either operand has no
	// live backing buffer yet.
	ErrUnallocated = errors.New("vector: backing buffer not allocated")
)
