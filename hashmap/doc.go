// Package hashmap implements an open-chaining hash table over a pluggable
// hash/equality policy.
//
// 🚀 What is hashmap?
//
//	A generic Map[K, V] that keeps its mechanics explicit:
//	  • one bucket array, each bucket a singly linked chain of entries
//	  • chain-push insertion (new entries land at the chain head)
//	  • proactive doubling growth at a 0.8 load factor
//	  • Reserve as the single full-rehash primitive — the only way
//	    chain positions ever change
//
// ✨ Key properties:
//
//   - Policy-driven – any key type works once you supply hash + equality
//     (ready-made policies cover strings and raw byte slices)
//   - Lazy allocation – a fresh map holds no bucket array; the first Set
//     transitions it to a live table of capacity 1
//   - Native iteration – All/Keys/Values are restartable iter sequences
//     visiting buckets in index order, chains most-recently-pushed first
//
// ⚙️ Usage:
//
//	m, err := hashmap.New[string, int](hashmap.StringPolicy())
//	if err != nil { ... }
//	_ = m.Set("foo", 1)
//	x, ok := m.Get("foo") // 1, true
//
// Invariants: a live key is always found in the chain at
// hash(key) mod Cap(); no two entries share a key under the policy's
// equality; Len() ≤ 0.8 × Cap() is restored by growth before any insert
// would break it.
//
// Duplicate detection always runs against the current bucket layout: when
// an insert triggers growth, the table is rehashed first and the chain
// walk happens after, so a resize can never hide or duplicate a key.
//
// Complexity: Get/Set/Remove O(1) average, O(chain) worst case;
// Reserve O(Len()).
package hashmap
