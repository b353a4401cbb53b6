package hashmap_test

import (
	"fmt"
	"testing"

	"github.com/hoardlib/hoard/hashmap"
)

// benchmarkKeys pre-renders n distinct string keys so key formatting stays
// out of the measured loop.
func benchmarkKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
	}

	return keys
}

// BenchmarkSet measures insert cost including amortized growth rehashes.
func BenchmarkSet(b *testing.B) {
	keys := benchmarkKeys(b.N)
	m := hashmap.NewStringMap[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.Set(keys[i], i); err != nil {
			b.Fatalf("Set failed: %v", err)
		}
	}
}

// BenchmarkGet measures lookups against a warm 4k-entry table.
func BenchmarkGet(b *testing.B) {
	const n = 1 << 12
	keys := benchmarkKeys(n)
	m := hashmap.NewStringMap[int]()
	for i, k := range keys {
		if err := m.Set(k, i); err != nil {
			b.Fatalf("Set failed: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := m.Get(keys[i%n]); !ok {
			b.Fatal("expected key to be present")
		}
	}
}

// BenchmarkReserve measures a full rehash of a 4k-entry table.
func BenchmarkReserve(b *testing.B) {
	const n = 1 << 12
	keys := benchmarkKeys(n)
	m := hashmap.NewStringMap[int]()
	for i, k := range keys {
		if err := m.Set(k, i); err != nil {
			b.Fatalf("Set failed: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Alternate between two capacities so every iteration rehashes.
		c := 1 << 13
		if i%2 == 1 {
			c = 1 << 14
		}
		if err := m.Reserve(c); err != nil {
			b.Fatalf("Reserve failed: %v", err)
		}
	}
}
