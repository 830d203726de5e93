package pattern

import "testing"

// BenchmarkFastMatch benchmarks the grouped base-58^4 limb matcher
// (spec.md §4.H), the teacher-style counterpart to BenchmarkBase58Encode
// in the teacher's bench package, but measuring the optimised path this
// repo adds instead of a full encode.
func BenchmarkFastMatch(b *testing.B) {
	payload := make([]byte, 38)
	payload[0] = 0x01
	prefix := []byte("9e")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = FastMatch(payload, prefix, false)
	}
}

// BenchmarkGenericMatch benchmarks the full-encode reference path, so
// FastMatch's saving over a real Base58 encode is directly measurable.
func BenchmarkGenericMatch(b *testing.B) {
	payload := make([]byte, 38)
	payload[0] = 0x01
	prefix := []byte("9e")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = GenericMatch(payload, prefix, false)
	}
}
