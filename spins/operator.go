package spins

import (
	"strings"

	"github.com/katalvlaran/struqture/algebra"
	"github.com/katalvlaran/struqture/coeff"
)

// PauliOperator is a complex-weighted sum of PauliProducts:
//
//	A = Σ_k c_k · P_k
//
// Terms keep their insertion order. Coefficients set or accumulated to
// numeric zero persist until Truncate removes them.
type PauliOperator struct {
	terms       *algebra.TermMap[PauliProduct, coeff.Complex]
	numberSpins *int
}

// NewPauliOperator returns an empty operator.
func NewPauliOperator(opts ...Option) *PauliOperator {
	o := applyOptions(opts)
	return &PauliOperator{
		terms:       algebra.NewTermMap[PauliProduct, coeff.Complex](),
		numberSpins: o.numberSpins,
	}
}

// Len returns the number of stored terms.
func (op *PauliOperator) Len() int { return op.terms.Len() }

// Keys returns the stored products in insertion order.
func (op *PauliOperator) Keys() []PauliProduct { return op.terms.Keys() }

// Get returns the coefficient of a product, the numeric zero when absent.
func (op *PauliOperator) Get(p PauliProduct) coeff.Complex { return op.terms.Get(p) }

// Set stores a coefficient, returning the previous one. Fails only when the
// key exceeds a declared number of spins; the container is then unchanged.
func (op *PauliOperator) Set(p PauliProduct, v coeff.Complex) (coeff.Complex, error) {
	if err := checkSpinBound(op.numberSpins, p.CurrentNumberSpins()); err != nil {
		return coeff.Complex{}, err
	}
	prev, _ := op.terms.Set(p, v)
	return prev, nil
}

// Add accumulates a coefficient onto a product.
func (op *PauliOperator) Add(p PauliProduct, v coeff.Complex) error {
	if err := checkSpinBound(op.numberSpins, p.CurrentNumberSpins()); err != nil {
		return err
	}
	op.terms.Set(p, op.terms.Get(p).Add(v))
	return nil
}

// Remove deletes a term, returning its coefficient.
func (op *PauliOperator) Remove(p PauliProduct) (coeff.Complex, bool) { return op.terms.Remove(p) }

// CurrentNumberSpins returns the highest qubit index any stored key touches
// plus one, at least the declared bound when one is set.
func (op *PauliOperator) CurrentNumberSpins() int {
	current := 0
	if op.numberSpins != nil {
		current = *op.numberSpins
	}
	op.terms.Iter(func(p PauliProduct, _ coeff.Complex) bool {
		if n := p.CurrentNumberSpins(); n > current {
			current = n
		}
		return true
	})
	return current
}

// DeclaredNumberSpins returns the declared qubit bound, if any.
func (op *PauliOperator) DeclaredNumberSpins() (int, bool) {
	if op.numberSpins == nil {
		return 0, false
	}
	return *op.numberSpins, true
}

// Clone returns an independent copy.
func (op *PauliOperator) Clone() *PauliOperator {
	return &PauliOperator{terms: op.terms.Clone(), numberSpins: op.numberSpins}
}

// Truncate returns a new operator keeping only terms that survive the
// threshold; symbolic coefficients always survive.
func (op *PauliOperator) Truncate(threshold float64) *PauliOperator {
	out := NewPauliOperator()
	out.numberSpins = op.numberSpins
	op.terms.Iter(func(p PauliProduct, v coeff.Complex) bool {
		if kept, ok := v.Truncate(threshold); ok {
			out.terms.Set(p, kept)
		}
		return true
	})
	return out
}

// HermitianConjugate returns the adjoint operator. PauliProducts are
// self-adjoint, so only the coefficients conjugate.
func (op *PauliOperator) HermitianConjugate() *PauliOperator {
	out := NewPauliOperator()
	out.numberSpins = op.numberSpins
	op.terms.Iter(func(p PauliProduct, v coeff.Complex) bool {
		out.terms.Set(p, v.Conj())
		return true
	})
	return out
}

// MulScalar returns the operator scaled by a complex coefficient.
func (op *PauliOperator) MulScalar(c coeff.Complex) *PauliOperator {
	out := NewPauliOperator()
	out.numberSpins = op.numberSpins
	op.terms.Iter(func(p PauliProduct, v coeff.Complex) bool {
		out.terms.Set(p, v.Mul(c))
		return true
	})
	return out
}

// AddOperator accumulates every term of other into op.
func (op *PauliOperator) AddOperator(other *PauliOperator) error {
	var err error
	other.terms.Iter(func(p PauliProduct, v coeff.Complex) bool {
		err = op.Add(p, v)
		return err == nil
	})
	return err
}

// SubOperator subtracts every term of other from op.
func (op *PauliOperator) SubOperator(other *PauliOperator) error {
	var err error
	other.terms.Iter(func(p PauliProduct, v coeff.Complex) bool {
		err = op.Add(p, v.Neg())
		return err == nil
	})
	return err
}

// MulOperator returns the operator product op·other, multiplying every pair
// of terms and folding the Pauli multiplication phases into the coefficients.
func (op *PauliOperator) MulOperator(other *PauliOperator) *PauliOperator {
	out := NewPauliOperator()
	op.terms.Iter(func(pa PauliProduct, va coeff.Complex) bool {
		other.terms.Iter(func(pb PauliProduct, vb coeff.Complex) bool {
			prod, phase := MulPauliProducts(pa, pb)
			v := va.Mul(vb).Mul(coeff.NewComplex(real(phase), imag(phase)))
			out.terms.Set(prod, out.terms.Get(prod).Add(v))
			return true
		})
		return true
	})
	return out
}

// String renders one "product: coefficient" line per term.
func (op *PauliOperator) String() string {
	var b strings.Builder
	b.WriteString("PauliOperator{\n")
	op.terms.Iter(func(p PauliProduct, v coeff.Complex) bool {
		b.WriteString("  " + p.String() + ": " + v.String() + ",\n")
		return true
	})
	b.WriteString("}")
	return b.String()
}
