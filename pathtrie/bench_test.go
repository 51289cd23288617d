package pathtrie

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func getPaths(num, maxLen int) [][]int {
	gofakeit.Seed(17)

	paths := make([][]int, num)

	for i := range paths {
		path := make([]int, gofakeit.Number(1, maxLen))
		for j := range path {
			path[j] = gofakeit.Number(0, AlphabetSize-1)
		}
		paths[i] = path
	}

	return paths
}

func pathKey(path []int) string {
	key := make([]byte, len(path))
	for i, id := range path {
		key[i] = byte(id)
	}
	return string(key)
}

func BenchmarkGoMap_Insert(b *testing.B) {
	var (
		paths = getPaths(b.N, 12)
		m     = make(map[string]uint32)
	)

	b.ResetTimer()

	for i, path := range paths {
		m[pathKey(path)] = uint32(i)
	}
}

func BenchmarkTrie_Insert(b *testing.B) {
	var (
		paths = getPaths(b.N, 12)
		tr    = New()
	)

	b.ResetTimer()

	for i, path := range paths {
		_ = tr.Insert(path, uint32(i))
	}
}

func BenchmarkTrie_InsertSharedPrefix(b *testing.B) {
	var (
		prefix = []int{12, 7, 33, 2}
		paths  = getPaths(b.N, 8)
		tr     = New()
	)

	for i, path := range paths {
		paths[i] = append(append([]int{}, prefix...), path...)
	}

	b.ResetTimer()

	for i, path := range paths {
		_ = tr.Insert(path, uint32(i))
	}
}

func BenchmarkTrie_Reinsert(b *testing.B) {
	var (
		tr   = New()
		path = []int{12, 7, 33, 2, 51, 9}
	)

	if err := tr.Insert(path, 0); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = tr.Insert(path, uint32(i))
	}
}
