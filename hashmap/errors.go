// SPDX-License-Identifier: MIT
// Package hashmap: sentinel error set.
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on user-triggered error conditions.

package hashmap

import "errors"

var (
	// ErrNilMap indicates a nil *Map receiver was used for a mutating
	// operation.
	ErrNilMap = errors.New("hashmap: nil receiver")

	// ErrNilPolicy indicates New was given a policy with a missing hash
	// or equality function.
	ErrNilPolicy = errors.New("hashmap: policy requires hash and equality functions")

	// ErrKeyNotFound indicates Remove was asked for a key that is not in
	// the table (including the uninitialized, no-bucket-array state).
	ErrKeyNotFound = errors.New("hashmap: key not found")

	// ErrCapacityBelowCount is returned by Reserve when the requested
	// capacity is below the number of live entries. The original C
	// library reported this refusal as success; here it is an error so
	// callers can tell a refused reservation from a performed one.
	ErrCapacityBelowCount = errors.New("hashmap: capacity below current count")
)
