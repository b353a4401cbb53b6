// Package vector implements a growable contiguous array with an explicit
// capacity policy.
//
// 🚀 What is vector?
//
//	A generic, single-owner dynamic array that keeps its capacity math
//	visible and predictable:
//	  • amortized-doubling growth (0 → 1 → 2 → 4 → ...)
//	  • halving shrink after removals (capacity drops to length once
//	    length falls below capacity/2)
//	  • exact-capacity Reserve / ShrinkToFit / Resize primitives
//
// ✨ Why choose vector over a bare slice?
//
//   - Deterministic capacity – append never over-allocates behind your back
//   - Uniform error surface – out-of-range and empty conditions are
//     sentinel errors matched with errors.Is, never panics
//   - Zero hygiene – vacated slots are cleared so the GC can reclaim
//     what they referenced
//
// ⚙️ Usage:
//
//	v := vector.New[int]()
//	_ = v.Append(1)
//	_ = v.Append(2)
//	x, err := v.Get(1) // x == 2
//
// All operations assume single-threaded, exclusively-owned access; callers
// needing concurrency must serialize externally.
//
// Complexity: Append/Pop amortized O(1); Insert/Remove O(n); Get/Set O(1).
package vector
