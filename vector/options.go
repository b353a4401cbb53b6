// SPDX-License-Identifier: MIT

// Package vector: functional configuration for Vector construction.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; the public API consumes ...Option.

package vector

// Option configures a Vector at construction time.
type Option[T any] func(*Vector[T])

// WithCapacity pre-reserves exactly c slots, skipping the early doubling
// steps for vectors whose size is known up front.
// Panics if c is negative (programmer error).
func WithCapacity[T any](c int) Option[T] {
	if c < 0 {
		panic("vector: WithCapacity requires c >= 0")
	}

	return func(v *Vector[T]) {
		v.data = make([]T, c)
	}
}

// WithEqual installs the comparator used by Contains.
// When absent, Contains falls back to reflect.DeepEqual.
// Panics if eq is nil (programmer error).
func WithEqual[T any](eq func(a, b T) bool) Option[T] {
	if eq == nil {
		panic("vector: WithEqual requires a non-nil comparator")
	}

	return func(v *Vector[T]) {
		v.eq = eq
	}
}
