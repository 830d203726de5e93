package searchkernel

import (
	"testing"

	"github.com/Asylian21/ergo-vanity-gpu/internal/pattern"
)

// BenchmarkSweep benchmarks the full per-work-item pipeline: entropy ->
// BIP39 seed -> BIP32 external chain -> derive/compress/encode/match,
// the Go-host analogue of the teacher's BenchmarkHashPipeline.
func BenchmarkSweep(b *testing.B) {
	set, err := pattern.NewSet([][]byte{[]byte("9exxxxxxxxxxxxxxxxxxxxxxxxxxxxxx")}, false)
	if err != nil {
		b.Fatal(err)
	}
	params := Params{Patterns: set, NumIndices: 1}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = Sweep(params, uint32(i), uint64(i))
	}
}

// BenchmarkEntropy benchmarks only the per-work-item entropy derivation
// (Blake2b-256 over salt || counter || gid), the cheapest and most
// frequently called step in the pipeline.
func BenchmarkEntropy(b *testing.B) {
	var salt [32]byte

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = Entropy(salt, uint64(i), uint32(i))
	}
}
