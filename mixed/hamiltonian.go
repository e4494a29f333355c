package mixed

import (
	"strings"

	"github.com/katalvlaran/struqture/algebra"
	"github.com/katalvlaran/struqture/coeff"
)

// MixedHamiltonian is a Hermitian operator on a mixed system of fixed
// subsystem arity, keyed by HermitianMixedProducts. Each key stands for
// p + p† with one stored coefficient; a naturally Hermitian key must
// therefore carry a real coefficient, which Set and Add enforce on numeric
// values.
type MixedHamiltonian struct {
	terms *algebra.TermMap[HermitianMixedProduct, coeff.Complex]
	arity arity
}

// NewMixedHamiltonian returns an empty Hamiltonian on nSpins spin, nBosons
// boson and nFermions fermion subsystems. Negative counts panic.
func NewMixedHamiltonian(nSpins, nBosons, nFermions int) *MixedHamiltonian {
	return &MixedHamiltonian{
		terms: algebra.NewTermMap[HermitianMixedProduct, coeff.Complex](),
		arity: newArity(nSpins, nBosons, nFermions),
	}
}

func (h *MixedHamiltonian) checkEntry(p HermitianMixedProduct, v coeff.Complex) error {
	if err := h.arity.check(p.SubsystemCounts()); err != nil {
		return err
	}
	if p.IsNaturalHermitian() && !v.IsReal() {
		return ErrNonHermitianValue
	}
	return nil
}

// SubsystemCounts returns the fixed numbers of spin, boson and fermion
// subsystems.
func (h *MixedHamiltonian) SubsystemCounts() (nSpins, nBosons, nFermions int) {
	return h.arity.nSpins, h.arity.nBosons, h.arity.nFermions
}

// Len returns the number of stored terms.
func (h *MixedHamiltonian) Len() int { return h.terms.Len() }

// Keys returns the stored products in insertion order.
func (h *MixedHamiltonian) Keys() []HermitianMixedProduct { return h.terms.Keys() }

// Get returns the coefficient of a key, the numeric zero when absent.
func (h *MixedHamiltonian) Get(p HermitianMixedProduct) coeff.Complex { return h.terms.Get(p) }

// Set stores a coefficient, returning the previous one. Fails on an arity
// mismatch, or on a numerically non-real value for a naturally Hermitian
// key; the container is then unchanged.
func (h *MixedHamiltonian) Set(p HermitianMixedProduct, v coeff.Complex) (coeff.Complex, error) {
	if err := h.checkEntry(p, v); err != nil {
		return coeff.Complex{}, err
	}
	prev, _ := h.terms.Set(p, v)
	return prev, nil
}

// Add accumulates a coefficient onto a key, re-checking the Hermiticity
// constraint on the accumulated value.
func (h *MixedHamiltonian) Add(p HermitianMixedProduct, v coeff.Complex) error {
	sum := h.terms.Get(p).Add(v)
	if err := h.checkEntry(p, sum); err != nil {
		return err
	}
	h.terms.Set(p, sum)
	return nil
}

// AddProduct accumulates a plain MixedProduct term: the product resolves to
// its Hermitian key, conjugating the coefficient when the conjugate member
// of the pair was given.
func (h *MixedHamiltonian) AddProduct(p MixedProduct, v coeff.Complex) error {
	key, value, err := HermitianMixedValidPair(p.spins, p.bosons, p.fermions, v)
	if err != nil {
		return err
	}
	return h.Add(key, value)
}

// Remove deletes a term, returning its coefficient.
func (h *MixedHamiltonian) Remove(p HermitianMixedProduct) (coeff.Complex, bool) {
	return h.terms.Remove(p)
}

// CurrentNumberSpins returns, per spin subsystem, the highest qubit index
// any stored key touches plus one.
func (h *MixedHamiltonian) CurrentNumberSpins() []int {
	acc := make([]int, h.arity.nSpins)
	h.terms.Iter(func(p HermitianMixedProduct, _ coeff.Complex) bool {
		acc = maxPerPosition(acc, p.CurrentNumberSpins())
		return true
	})
	return acc
}

// CurrentNumberBosonModes returns, per boson subsystem, the highest mode
// index any stored key touches plus one.
func (h *MixedHamiltonian) CurrentNumberBosonModes() []int {
	acc := make([]int, h.arity.nBosons)
	h.terms.Iter(func(p HermitianMixedProduct, _ coeff.Complex) bool {
		acc = maxPerPosition(acc, p.CurrentNumberBosonModes())
		return true
	})
	return acc
}

// CurrentNumberFermionModes returns, per fermion subsystem, the highest mode
// index any stored key touches plus one.
func (h *MixedHamiltonian) CurrentNumberFermionModes() []int {
	acc := make([]int, h.arity.nFermions)
	h.terms.Iter(func(p HermitianMixedProduct, _ coeff.Complex) bool {
		acc = maxPerPosition(acc, p.CurrentNumberFermionModes())
		return true
	})
	return acc
}

// Clone returns an independent copy.
func (h *MixedHamiltonian) Clone() *MixedHamiltonian {
	return &MixedHamiltonian{terms: h.terms.Clone(), arity: h.arity}
}

// Truncate returns a new Hamiltonian keeping only terms that survive the
// threshold; symbolic coefficients always survive.
func (h *MixedHamiltonian) Truncate(threshold float64) *MixedHamiltonian {
	out := &MixedHamiltonian{terms: algebra.NewTermMap[HermitianMixedProduct, coeff.Complex](), arity: h.arity}
	h.terms.Iter(func(p HermitianMixedProduct, v coeff.Complex) bool {
		if kept, ok := v.Truncate(threshold); ok {
			out.terms.Set(p, kept)
		}
		return true
	})
	return out
}

// HermitianConjugate returns the adjoint, which for a Hamiltonian is a copy
// of itself.
func (h *MixedHamiltonian) HermitianConjugate() *MixedHamiltonian { return h.Clone() }

// MulF returns the Hamiltonian scaled by a real coefficient; a real scale
// keeps Hermiticity.
func (h *MixedHamiltonian) MulF(f coeff.Float) *MixedHamiltonian {
	out := &MixedHamiltonian{terms: algebra.NewTermMap[HermitianMixedProduct, coeff.Complex](), arity: h.arity}
	h.terms.Iter(func(p HermitianMixedProduct, v coeff.Complex) bool {
		out.terms.Set(p, v.MulF(f))
		return true
	})
	return out
}

// AddHamiltonian accumulates every term of other into h.
func (h *MixedHamiltonian) AddHamiltonian(other *MixedHamiltonian) error {
	var err error
	other.terms.Iter(func(p HermitianMixedProduct, v coeff.Complex) bool {
		err = h.Add(p, v)
		return err == nil
	})
	return err
}

// SubHamiltonian subtracts every term of other from h.
func (h *MixedHamiltonian) SubHamiltonian(other *MixedHamiltonian) error {
	var err error
	other.terms.Iter(func(p HermitianMixedProduct, v coeff.Complex) bool {
		err = h.Add(p, v.Neg())
		return err == nil
	})
	return err
}

// ToOperator expands every Hermitian key into its explicit pair: the stored
// product with the stored coefficient plus its adjoint with the conjugate,
// naturally Hermitian keys only once.
func (h *MixedHamiltonian) ToOperator() *MixedOperator {
	out := NewMixedOperator(h.arity.nSpins, h.arity.nBosons, h.arity.nFermions)
	h.terms.Iter(func(p HermitianMixedProduct, v coeff.Complex) bool {
		stored := p.ToMixedProduct()
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
func (h *MixedHamiltonian) String() string {
	var b strings.Builder
	b.WriteString("MixedHamiltonian{\n")
	h.terms.Iter(func(p HermitianMixedProduct, v coeff.Complex) bool {
		b.WriteString("  " + p.String() + ": " + v.String() + ",\n")
		return true
	})
	b.WriteString("}")
	return b.String()
}
