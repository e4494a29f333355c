package bosons

import (
	"strings"

	"github.com/katalvlaran/struqture/algebra"
	"github.com/katalvlaran/struqture/coeff"
)

// BosonHamiltonian is a Hermitian operator on bosonic modes, keyed by
// HermitianBosonProducts. Each key stands for p + p† with one stored
// coefficient; a naturally Hermitian key (p = p†) must therefore carry a
// real coefficient, which Set and Add enforce on numeric values.
type BosonHamiltonian struct {
	terms       *algebra.TermMap[HermitianBosonProduct, coeff.Complex]
	numberModes *int
}

// NewBosonHamiltonian returns an empty Hamiltonian.
func NewBosonHamiltonian(opts ...Option) *BosonHamiltonian {
	o := applyOptions(opts)
	return &BosonHamiltonian{
		terms:       algebra.NewTermMap[HermitianBosonProduct, coeff.Complex](),
		numberModes: o.numberModes,
	}
}

func (h *BosonHamiltonian) checkEntry(p HermitianBosonProduct, v coeff.Complex) error {
	if err := checkModeBound(h.numberModes, p.CurrentNumberModes()); err != nil {
		return err
	}
	if p.IsNaturalHermitian() && !v.IsReal() {
		return ErrNonHermitianValue
	}
	return nil
}

// Len returns the number of stored terms.
func (h *BosonHamiltonian) Len() int { return h.terms.Len() }

// Keys returns the stored products in insertion order.
func (h *BosonHamiltonian) Keys() []HermitianBosonProduct { return h.terms.Keys() }

// Get returns the coefficient of a key, the numeric zero when absent.
func (h *BosonHamiltonian) Get(p HermitianBosonProduct) coeff.Complex { return h.terms.Get(p) }

// Set stores a coefficient, returning the previous one. Fails on a key
// beyond a declared number of modes, or on a numerically non-real value for
// a naturally Hermitian key; the container is then unchanged.
func (h *BosonHamiltonian) Set(p HermitianBosonProduct, v coeff.Complex) (coeff.Complex, error) {
	if err := h.checkEntry(p, v); err != nil {
		return coeff.Complex{}, err
	}
	prev, _ := h.terms.Set(p, v)
	return prev, nil
}

// Add accumulates a coefficient onto a key, re-checking the Hermiticity
// constraint on the accumulated value.
func (h *BosonHamiltonian) Add(p HermitianBosonProduct, v coeff.Complex) error {
	sum := h.terms.Get(p).Add(v)
	if err := h.checkEntry(p, sum); err != nil {
		return err
	}
	h.terms.Set(p, sum)
	return nil
}

// AddProduct accumulates a plain BosonProduct term: the product resolves to
// its Hermitian key, conjugating the coefficient when the conjugate member
// of the pair was given.
func (h *BosonHamiltonian) AddProduct(p BosonProduct, v coeff.Complex) error {
	key, value, err := HermitianBosonValidPair(p.creators, p.annihilators, v)
	if err != nil {
		return err
	}
	return h.Add(key, value)
}

// Remove deletes a term, returning its coefficient.
func (h *BosonHamiltonian) Remove(p HermitianBosonProduct) (coeff.Complex, bool) {
	return h.terms.Remove(p)
}

// CurrentNumberModes returns the highest mode index any stored key touches
// plus one, at least the declared bound when one is set.
func (h *BosonHamiltonian) CurrentNumberModes() int {
	current := 0
	if h.numberModes != nil {
		current = *h.numberModes
	}
	h.terms.Iter(func(p HermitianBosonProduct, _ coeff.Complex) bool {
		if n := p.CurrentNumberModes(); n > current {
			current = n
		}
		return true
	})
	return current
}

// DeclaredNumberModes returns the declared mode bound, if any.
func (h *BosonHamiltonian) DeclaredNumberModes() (int, bool) {
	if h.numberModes == nil {
		return 0, false
	}
	return *h.numberModes, true
}

// Clone returns an independent copy.
func (h *BosonHamiltonian) Clone() *BosonHamiltonian {
	return &BosonHamiltonian{terms: h.terms.Clone(), numberModes: h.numberModes}
}

// Truncate returns a new Hamiltonian keeping only terms that survive the
// threshold; symbolic coefficients always survive.
func (h *BosonHamiltonian) Truncate(threshold float64) *BosonHamiltonian {
	out := NewBosonHamiltonian()
	out.numberModes = h.numberModes
	h.terms.Iter(func(p HermitianBosonProduct, v coeff.Complex) bool {
		if kept, ok := v.Truncate(threshold); ok {
			out.terms.Set(p, kept)
		}
		return true
	})
	return out
}

// HermitianConjugate returns the adjoint, which for a Hamiltonian is a copy
// of itself.
func (h *BosonHamiltonian) HermitianConjugate() *BosonHamiltonian { return h.Clone() }

// MulF returns the Hamiltonian scaled by a real coefficient; a real scale
// keeps Hermiticity.
func (h *BosonHamiltonian) MulF(f coeff.Float) *BosonHamiltonian {
	out := NewBosonHamiltonian()
	out.numberModes = h.numberModes
	h.terms.Iter(func(p HermitianBosonProduct, v coeff.Complex) bool {
		out.terms.Set(p, v.MulF(f))
		return true
	})
	return out
}

// AddHamiltonian accumulates every term of other into h.
func (h *BosonHamiltonian) AddHamiltonian(other *BosonHamiltonian) error {
	var err error
	other.terms.Iter(func(p HermitianBosonProduct, v coeff.Complex) bool {
		err = h.Add(p, v)
		return err == nil
	})
	return err
}

// SubHamiltonian subtracts every term of other from h.
func (h *BosonHamiltonian) SubHamiltonian(other *BosonHamiltonian) error {
	var err error
	other.terms.Iter(func(p HermitianBosonProduct, v coeff.Complex) bool {
		err = h.Add(p, v.Neg())
		return err == nil
	})
	return err
}

// ToOperator expands every Hermitian key into its explicit pair: the stored
// product with the stored coefficient plus its adjoint with the conjugate,
// naturally Hermitian keys only once.
func (h *BosonHamiltonian) ToOperator() *BosonOperator {
	out := NewBosonOperator()
	out.numberModes = h.numberModes
	h.terms.Iter(func(p HermitianBosonProduct, v coeff.Complex) bool {
		stored := p.ToBosonProduct()
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
func (h *BosonHamiltonian) String() string {
	var b strings.Builder
	b.WriteString("BosonHamiltonian{\n")
	h.terms.Iter(func(p HermitianBosonProduct, v coeff.Complex) bool {
		b.WriteString("  " + p.String() + ": " + v.String() + ",\n")
		return true
	})
	b.WriteString("}")
	return b.String()
}
