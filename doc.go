// Package hoard is a small generic collections library: a growable array,
// a doubly linked list, and an open-chaining hash map, each with an
// explicit, inspectable memory policy.
//
// 🚀 What is hoard?
//
//	Three independent, single-owner containers with no interdependency:
//		• vector  — contiguous growable array; doubling growth, halving shrink
//		• list    — doubly linked list; O(1) endpoint splices, O(n) indexing
//		• hashmap — chained hash table; pluggable hash/equality policy,
//		            0.8 load-factor growth, full-rehash Reserve
//
// ✨ Why choose hoard?
//
//   - Predictable capacity – every growth and shrink step is documented
//     and observable through Cap()
//   - Uniform error surface – sentinel errors matched with errors.Is,
//     never panics on user input
//   - Native iteration – restartable iter.Seq2 sequences on every container
//   - Pure Go containers – generics end-to-end, no pointer-size tricks
//
// Everything is organized under four packages:
//
//	vector/  — growable contiguous array
//	list/    — doubly linked list
//	hashmap/ — open-chaining hash map + ready-made string/bytes policies
//	shell/   — interactive command loop exercising the hash map
//
// The containers assume single-threaded, exclusively-owned access; callers
// needing concurrency must serialize externally.
//
// Try the interactive shell:
//
//	go run github.com/hoardlib/hoard/cmd/hoardctl --log debug
package hoard
