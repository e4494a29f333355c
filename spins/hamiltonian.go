package spins

import (
	"strings"

	"github.com/katalvlaran/struqture/algebra"
	"github.com/katalvlaran/struqture/coeff"
)

// PauliHamiltonian is a Hermitian operator on spins. Every PauliProduct is
// self-adjoint, so Hermiticity reduces to real coefficients, which the value
// type enforces: coefficients are real coeff.Float values.
type PauliHamiltonian struct {
	terms       *algebra.TermMap[PauliProduct, coeff.Float]
	numberSpins *int
}

// NewPauliHamiltonian returns an empty Hamiltonian.
func NewPauliHamiltonian(opts ...Option) *PauliHamiltonian {
	o := applyOptions(opts)
	return &PauliHamiltonian{
		terms:       algebra.NewTermMap[PauliProduct, coeff.Float](),
		numberSpins: o.numberSpins,
	}
}

// Len returns the number of stored terms.
func (h *PauliHamiltonian) Len() int { return h.terms.Len() }

// Keys returns the stored products in insertion order.
func (h *PauliHamiltonian) Keys() []PauliProduct { return h.terms.Keys() }

// Get returns the coefficient of a product, the numeric zero when absent.
func (h *PauliHamiltonian) Get(p PauliProduct) coeff.Float { return h.terms.Get(p) }

// Set stores a real coefficient, returning the previous one.
func (h *PauliHamiltonian) Set(p PauliProduct, v coeff.Float) (coeff.Float, error) {
	if err := checkSpinBound(h.numberSpins, p.CurrentNumberSpins()); err != nil {
		return coeff.Float{}, err
	}
	prev, _ := h.terms.Set(p, v)
	return prev, nil
}

// Add accumulates a real coefficient onto a product.
func (h *PauliHamiltonian) Add(p PauliProduct, v coeff.Float) error {
	if err := checkSpinBound(h.numberSpins, p.CurrentNumberSpins()); err != nil {
		return err
	}
	h.terms.Set(p, h.terms.Get(p).Add(v))
	return nil
}

// Remove deletes a term, returning its coefficient.
func (h *PauliHamiltonian) Remove(p PauliProduct) (coeff.Float, bool) { return h.terms.Remove(p) }

// CurrentNumberSpins returns the highest qubit index any stored key touches
// plus one, at least the declared bound when one is set.
func (h *PauliHamiltonian) CurrentNumberSpins() int {
	current := 0
	if h.numberSpins != nil {
		current = *h.numberSpins
	}
	h.terms.Iter(func(p PauliProduct, _ coeff.Float) bool {
		if n := p.CurrentNumberSpins(); n > current {
			current = n
		}
		return true
	})
	return current
}

// DeclaredNumberSpins returns the declared qubit bound, if any.
func (h *PauliHamiltonian) DeclaredNumberSpins() (int, bool) {
	if h.numberSpins == nil {
		return 0, false
	}
	return *h.numberSpins, true
}

// Clone returns an independent copy.
func (h *PauliHamiltonian) Clone() *PauliHamiltonian {
	return &PauliHamiltonian{terms: h.terms.Clone(), numberSpins: h.numberSpins}
}

// Truncate returns a new Hamiltonian keeping only terms that survive the
// threshold; symbolic coefficients always survive.
func (h *PauliHamiltonian) Truncate(threshold float64) *PauliHamiltonian {
	out := NewPauliHamiltonian()
	out.numberSpins = h.numberSpins
	h.terms.Iter(func(p PauliProduct, v coeff.Float) bool {
		if v.Keep(threshold) {
			out.terms.Set(p, v)
		}
		return true
	})
	return out
}

// HermitianConjugate returns the adjoint, which for a Hamiltonian is a copy
// of itself.
func (h *PauliHamiltonian) HermitianConjugate() *PauliHamiltonian { return h.Clone() }

// MulF returns the Hamiltonian scaled by a real coefficient.
func (h *PauliHamiltonian) MulF(f coeff.Float) *PauliHamiltonian {
	out := NewPauliHamiltonian()
	out.numberSpins = h.numberSpins
	h.terms.Iter(func(p PauliProduct, v coeff.Float) bool {
		out.terms.Set(p, v.Mul(f))
		return true
	})
	return out
}

// AddHamiltonian accumulates every term of other into h.
func (h *PauliHamiltonian) AddHamiltonian(other *PauliHamiltonian) error {
	var err error
	other.terms.Iter(func(p PauliProduct, v coeff.Float) bool {
		err = h.Add(p, v)
		return err == nil
	})
	return err
}

// SubHamiltonian subtracts every term of other from h.
func (h *PauliHamiltonian) SubHamiltonian(other *PauliHamiltonian) error {
	var err error
	other.terms.Iter(func(p PauliProduct, v coeff.Float) bool {
		err = h.Add(p, v.Neg())
		return err == nil
	})
	return err
}

// ToOperator widens the Hamiltonian into a PauliOperator with real complex
// coefficients.
func (h *PauliHamiltonian) ToOperator() *PauliOperator {
	out := NewPauliOperator()
	out.numberSpins = h.numberSpins
	h.terms.Iter(func(p PauliProduct, v coeff.Float) bool {
		out.terms.Set(p, coeff.FromFloat(v))
		return true
	})
	return out
}

// String renders one "product: coefficient" line per term.
func (h *PauliHamiltonian) String() string {
	var b strings.Builder
	b.WriteString("PauliHamiltonian{\n")
	h.terms.Iter(func(p PauliProduct, v coeff.Float) bool {
		b.WriteString("  " + p.String() + ": " + v.String() + ",\n")
		return true
	})
	b.WriteString("}")
	return b.String()
}
