package fermions_test

import (
	"fmt"

	"github.com/katalvlaran/struqture/coeff"
	"github.com/katalvlaran/struqture/fermions"
)

// A two-site tight-binding chain: H = eps (n_0 + n_1) - t (f†_0 f_1 + h.c.).
// The hopping key c0a1 stands for both directions at once.
func ExampleNewFermionHamiltonian() {
	h := fermions.NewFermionHamiltonian(fermions.WithNumberModes(2))

	for site := 0; site < 2; site++ {
		number, _ := fermions.NewHermitianFermionProduct([]int{site}, []int{site})
		_, _ = h.Set(number, coeff.FromFloat(coeff.Symbol("eps")))
	}
	hop, _ := fermions.NewHermitianFermionProduct([]int{0}, []int{1})
	_, _ = h.Set(hop, coeff.FromFloat(coeff.Symbol("t").Neg()))

	fmt.Println(h.Get(hop))
	fmt.Println(h.CurrentNumberModes())
	// Output:
	// (-t)
	// 2
}

// Normal ordering f_0 f†_0 yields the contraction minus the reordered term.
func ExampleMulFermionProducts() {
	a, _ := fermions.NewFermionProduct(nil, []int{0})
	b, _ := fermions.NewFermionProduct([]int{0}, nil)

	for _, term := range fermions.MulFermionProducts(a, b) {
		fmt.Println(term.Product, term.Prefactor)
	}
	// Output:
	// I 1
	// c0a0 -1
}
