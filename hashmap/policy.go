package hashmap

import "bytes"

// Policy supplies the hash and equality pair a Map uses for its keys.
// Both functions must be deterministic, and Equal(a, b) must imply
// Hash(a) == Hash(b).
type Policy[K any] struct {
	// Hash maps a key to a 64-bit hash value.
	Hash func(K) uint64
	// Equal reports whether two keys are the same key.
	Equal func(a, b K) bool
}

// djb2 seed and shift; hash = ((hash << 5) + hash) ^ byte is hash*33 ^ byte.
const djb2Seed = 5381

// StringPolicy returns the ready-made policy for string keys: a DJB2
// xor-variant hash with content equality.
func StringPolicy() Policy[string] {
	return Policy[string]{
		Hash: func(s string) uint64 {
			h := uint64(djb2Seed)
			for i := 0; i < len(s); i++ {
				h = ((h << 5) + h) ^ uint64(s[i])
			}

			return h
		},
		Equal: func(a, b string) bool { return a == b },
	}
}

// BytesPolicy returns the ready-made policy for raw byte-slice keys: the
// same DJB2 xor-variant walk over every byte, with content equality.
func BytesPolicy() Policy[[]byte] {
	return Policy[[]byte]{
		Hash: func(p []byte) uint64 {
			h := uint64(djb2Seed)
			for _, c := range p {
				h = ((h << 5) + h) ^ uint64(c)
			}

			return h
		},
		Equal: bytes.Equal,
	}
}
