package fermions

import (
	"strings"

	"github.com/katalvlaran/struqture/algebra"
	"github.com/katalvlaran/struqture/coeff"
)

// FermionHamiltonian is a Hermitian operator on fermionic modes, keyed by
// HermitianFermionProducts. Each key stands for p + p† with one stored
// coefficient; a naturally Hermitian key (p = p†) must therefore carry a
// real coefficient, which Set and Add enforce on numeric values.
type FermionHamiltonian struct {
	terms       *algebra.TermMap[HermitianFermionProduct, coeff.Complex]
	numberModes *int
}

// NewFermionHamiltonian returns an empty Hamiltonian.
func NewFermionHamiltonian(opts ...Option) *FermionHamiltonian {
	o := applyOptions(opts)
	return &FermionHamiltonian{
		terms:       algebra.NewTermMap[HermitianFermionProduct, coeff.Complex](),
		numberModes: o.numberModes,
	}
}

func (h *FermionHamiltonian) checkEntry(p HermitianFermionProduct, v coeff.Complex) error {
	if err := checkModeBound(h.numberModes, p.CurrentNumberModes()); err != nil {
		return err
	}
	if p.IsNaturalHermitian() && !v.IsReal() {
		return ErrNonHermitianValue
	}
	return nil
}

// Len returns the number of stored terms.
func (h *FermionHamiltonian) Len() int { return h.terms.Len() }

// Keys returns the stored products in insertion order.
func (h *FermionHamiltonian) Keys() []HermitianFermionProduct { return h.terms.Keys() }

// Get returns the coefficient of a key, the numeric zero when absent.
func (h *FermionHamiltonian) Get(p HermitianFermionProduct) coeff.Complex { return h.terms.Get(p) }

// Set stores a coefficient, returning the previous one. Fails on a key
// beyond a declared number of modes, or on a numerically non-real value for
// a naturally Hermitian key; the container is then unchanged.
func (h *FermionHamiltonian) Set(p HermitianFermionProduct, v coeff.Complex) (coeff.Complex, error) {
	if err := h.checkEntry(p, v); err != nil {
		return coeff.Complex{}, err
	}
	prev, _ := h.terms.Set(p, v)
	return prev, nil
}

// Add accumulates a coefficient onto a key, re-checking the Hermiticity
// constraint on the accumulated value.
func (h *FermionHamiltonian) Add(p HermitianFermionProduct, v coeff.Complex) error {
	sum := h.terms.Get(p).Add(v)
	if err := h.checkEntry(p, sum); err != nil {
		return err
	}
	h.terms.Set(p, sum)
	return nil
}

// AddProduct accumulates a plain FermionProduct term: the product resolves
// to its Hermitian key with the anticommutation parity on the coefficient,
// conjugating when the conjugate member of the pair was given.
func (h *FermionHamiltonian) AddProduct(p FermionProduct, v coeff.Complex) error {
	key, value, err := HermitianFermionValidPair(p.creators, p.annihilators, v)
	if err != nil {
		return err
	}
	return h.Add(key, value)
}

// Remove deletes a term, returning its coefficient.
func (h *FermionHamiltonian) Remove(p HermitianFermionProduct) (coeff.Complex, bool) {
	return h.terms.Remove(p)
}

// CurrentNumberModes returns the highest mode index any stored key touches
// plus one, at least the declared bound when one is set.
func (h *FermionHamiltonian) CurrentNumberModes() int {
	current := 0
	if h.numberModes != nil {
		current = *h.numberModes
	}
	h.terms.Iter(func(p HermitianFermionProduct, _ coeff.Complex) bool {
		if n := p.CurrentNumberModes(); n > current {
			current = n
		}
		return true
	})
	return current
}

// DeclaredNumberModes returns the declared mode bound, if any.
func (h *FermionHamiltonian) DeclaredNumberModes() (int, bool) {
	if h.numberModes == nil {
		return 0, false
	}
	return *h.numberModes, true
}

// Clone returns an independent copy.
func (h *FermionHamiltonian) Clone() *FermionHamiltonian {
	return &FermionHamiltonian{terms: h.terms.Clone(), numberModes: h.numberModes}
}

// Truncate returns a new Hamiltonian keeping only terms that survive the
// threshold; symbolic coefficients always survive.
func (h *FermionHamiltonian) Truncate(threshold float64) *FermionHamiltonian {
	out := NewFermionHamiltonian()
	out.numberModes = h.numberModes
	h.terms.Iter(func(p HermitianFermionProduct, v coeff.Complex) bool {
		if kept, ok := v.Truncate(threshold); ok {
			out.terms.Set(p, kept)
		}
		return true
	})
	return out
}

// HermitianConjugate returns the adjoint, which for a Hamiltonian is a copy
// of itself.
func (h *FermionHamiltonian) HermitianConjugate() *FermionHamiltonian { return h.Clone() }

// MulF returns the Hamiltonian scaled by a real coefficient; a real scale
// keeps Hermiticity.
func (h *FermionHamiltonian) MulF(f coeff.Float) *FermionHamiltonian {
	out := NewFermionHamiltonian()
	out.numberModes = h.numberModes
	h.terms.Iter(func(p HermitianFermionProduct, v coeff.Complex) bool {
		out.terms.Set(p, v.MulF(f))
		return true
	})
	return out
}

// AddHamiltonian accumulates every term of other into h.
func (h *FermionHamiltonian) AddHamiltonian(other *FermionHamiltonian) error {
	var err error
	other.terms.Iter(func(p HermitianFermionProduct, v coeff.Complex) bool {
		err = h.Add(p, v)
		return err == nil
	})
	return err
}

// SubHamiltonian subtracts every term of other from h.
func (h *FermionHamiltonian) SubHamiltonian(other *FermionHamiltonian) error {
	var err error
	other.terms.Iter(func(p HermitianFermionProduct, v coeff.Complex) bool {
		err = h.Add(p, v.Neg())
		return err == nil
	})
	return err
}

// ToOperator expands every Hermitian key into its explicit pair: the stored
// product with the stored coefficient plus its adjoint with the conjugate
// and the reordering parity, naturally Hermitian keys only once.
func (h *FermionHamiltonian) ToOperator() *FermionOperator {
	out := NewFermionOperator()
	out.numberModes = h.numberModes
	h.terms.Iter(func(p HermitianFermionProduct, v coeff.Complex) bool {
		stored := p.ToFermionProduct()
		out.terms.Set(stored, out.terms.Get(stored).Add(v))
		if !p.IsNaturalHermitian() {
			conj, sign := stored.HermitianConjugate()
			out.terms.Set(conj, out.terms.Get(conj).Add(v.Conj().MulSign(sign)))
		}
		return true
	})
	return out
}

// String renders one "product: coefficient" line per term.
func (h *FermionHamiltonian) String() string {
	var b strings.Builder
	b.WriteString("FermionHamiltonian{\n")
	h.terms.Iter(func(p HermitianFermionProduct, v coeff.Complex) bool {
		b.WriteString("  " + p.String() + ": " + v.String() + ",\n")
		return true
	})
	b.WriteString("}")
	return b.String()
}
