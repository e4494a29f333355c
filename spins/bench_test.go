package spins_test

import (
	"testing"

	"github.com/katalvlaran/struqture/coeff"
	"github.com/katalvlaran/struqture/spins"
)

// BenchmarkMulPauliProducts measures the sparse merge with phase tracking
// on two 16-factor products sharing every other qubit.
func BenchmarkMulPauliProducts(b *testing.B) {
	left := spins.NewPauliProduct()
	right := spins.NewPauliProduct()
	for i := 0; i < 16; i++ {
		left = left.X(2 * i)
		right = right.Y(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = spins.MulPauliProducts(left, right)
	}
}

// BenchmarkPauliOperator_Add measures term accumulation through the
// canonical-string hash path.
func BenchmarkPauliOperator_Add(b *testing.B) {
	keys := make([]spins.PauliProduct, 64)
	for i := range keys {
		keys[i] = spins.NewPauliProduct().X(i).Z(i + 1)
	}
	op := spins.NewPauliOperator()
	v := coeff.NewComplex(0.5, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = op.Add(keys[i%len(keys)], v)
	}
}
