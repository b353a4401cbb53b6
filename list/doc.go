// Package list implements a doubly linked list of generic elements.
//
// The list owns its nodes; each node carries exactly one element. Head and
// tail operations (Append, Prepend, Pop, Shift) run in O(1); indexed
// operations walk from the head in O(n). Reverse relinks every node in a
// single pass.
//
// Iteration is available in both directions via All and Backward, which
// produce restartable, non-mutating sequences.
//
// The list performs no internal locking; callers needing concurrent access
// must serialize externally.
package list
