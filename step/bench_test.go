package step_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/bishopart/step"
)

// BenchmarkDecode measures decoding of a 4 KiB random buffer without a limit.
func BenchmarkDecode(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	data := make([]byte, 4096)
	r.Read(data)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = step.Decode(data, 0)
	}
}
