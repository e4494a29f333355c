package fermions

import (
	"strings"

	"github.com/katalvlaran/struqture/algebra"
	"github.com/katalvlaran/struqture/coeff"
)

// FermionOperator is a complex-weighted sum of FermionProducts. Terms keep
// their insertion order; coefficients set or accumulated to numeric zero
// persist until Truncate removes them.
type FermionOperator struct {
	terms       *algebra.TermMap[FermionProduct, coeff.Complex]
	numberModes *int
}

// NewFermionOperator returns an empty operator.
func NewFermionOperator(opts ...Option) *FermionOperator {
	o := applyOptions(opts)
	return &FermionOperator{
		terms:       algebra.NewTermMap[FermionProduct, coeff.Complex](),
		numberModes: o.numberModes,
	}
}

// Len returns the number of stored terms.
func (op *FermionOperator) Len() int { return op.terms.Len() }

// Keys returns the stored products in insertion order.
func (op *FermionOperator) Keys() []FermionProduct { return op.terms.Keys() }

// Get returns the coefficient of a product, the numeric zero when absent.
func (op *FermionOperator) Get(p FermionProduct) coeff.Complex { return op.terms.Get(p) }

// Set stores a coefficient, returning the previous one. Fails only when the
// key exceeds a declared number of modes; the container is then unchanged.
func (op *FermionOperator) Set(p FermionProduct, v coeff.Complex) (coeff.Complex, error) {
	if err := checkModeBound(op.numberModes, p.CurrentNumberModes()); err != nil {
		return coeff.Complex{}, err
	}
	prev, _ := op.terms.Set(p, v)
	return prev, nil
}

// Add accumulates a coefficient onto a product.
func (op *FermionOperator) Add(p FermionProduct, v coeff.Complex) error {
	if err := checkModeBound(op.numberModes, p.CurrentNumberModes()); err != nil {
		return err
	}
	op.terms.Set(p, op.terms.Get(p).Add(v))
	return nil
}

// Remove deletes a term, returning its coefficient.
func (op *FermionOperator) Remove(p FermionProduct) (coeff.Complex, bool) { return op.terms.Remove(p) }

// CurrentNumberModes returns the highest mode index any stored key touches
// plus one, at least the declared bound when one is set.
func (op *FermionOperator) CurrentNumberModes() int {
	current := 0
	if op.numberModes != nil {
		current = *op.numberModes
	}
	op.terms.Iter(func(p FermionProduct, _ coeff.Complex) bool {
		if n := p.CurrentNumberModes(); n > current {
			current = n
		}
		return true
	})
	return current
}

// DeclaredNumberModes returns the declared mode bound, if any.
func (op *FermionOperator) DeclaredNumberModes() (int, bool) {
	if op.numberModes == nil {
		return 0, false
	}
	return *op.numberModes, true
}

// Clone returns an independent copy.
func (op *FermionOperator) Clone() *FermionOperator {
	return &FermionOperator{terms: op.terms.Clone(), numberModes: op.numberModes}
}

// Truncate returns a new operator keeping only terms that survive the
// threshold; symbolic coefficients always survive.
func (op *FermionOperator) Truncate(threshold float64) *FermionOperator {
	out := NewFermionOperator()
	out.numberModes = op.numberModes
	op.terms.Iter(func(p FermionProduct, v coeff.Complex) bool {
		if kept, ok := v.Truncate(threshold); ok {
			out.terms.Set(p, kept)
		}
		return true
	})
	return out
}

// HermitianConjugate returns the adjoint operator: every product conjugates
// with its reordering parity and every coefficient conjugates with that sign
// applied.
func (op *FermionOperator) HermitianConjugate() *FermionOperator {
	out := NewFermionOperator()
	out.numberModes = op.numberModes
	op.terms.Iter(func(p FermionProduct, v coeff.Complex) bool {
		conj, sign := p.HermitianConjugate()
		out.terms.Set(conj, out.terms.Get(conj).Add(v.Conj().MulSign(sign)))
		return true
	})
	return out
}

// MulScalar returns the operator scaled by a complex coefficient.
func (op *FermionOperator) MulScalar(c coeff.Complex) *FermionOperator {
	out := NewFermionOperator()
	out.numberModes = op.numberModes
	op.terms.Iter(func(p FermionProduct, v coeff.Complex) bool {
		out.terms.Set(p, v.Mul(c))
		return true
	})
	return out
}

// AddOperator accumulates every term of other into op.
func (op *FermionOperator) AddOperator(other *FermionOperator) error {
	var err error
	other.terms.Iter(func(p FermionProduct, v coeff.Complex) bool {
		err = op.Add(p, v)
		return err == nil
	})
	return err
}

// SubOperator subtracts every term of other from op.
func (op *FermionOperator) SubOperator(other *FermionOperator) error {
	var err error
	other.terms.Iter(func(p FermionProduct, v coeff.Complex) bool {
		err = op.Add(p, v.Neg())
		return err == nil
	})
	return err
}

// MulOperator returns the normal-ordered operator product op·other; each
// pair of terms expands through the anticommutation relation, the branch
// parities multiplying the coefficients. Branches with a squared factor
// vanish.
func (op *FermionOperator) MulOperator(other *FermionOperator) *FermionOperator {
	out := NewFermionOperator()
	op.terms.Iter(func(pa FermionProduct, va coeff.Complex) bool {
		other.terms.Iter(func(pb FermionProduct, vb coeff.Complex) bool {
			v := va.Mul(vb)
			for _, term := range MulFermionProducts(pa, pb) {
				signed := v.MulSign(term.Prefactor)
				out.terms.Set(term.Product, out.terms.Get(term.Product).Add(signed))
			}
			return true
		})
		return true
	})
	return out
}

// String renders one "product: coefficient" line per term.
func (op *FermionOperator) String() string {
	var b strings.Builder
	b.WriteString("FermionOperator{\n")
	op.terms.Iter(func(p FermionProduct, v coeff.Complex) bool {
		b.WriteString("  " + p.String() + ": " + v.String() + ",\n")
		return true
	})
	b.WriteString("}")
	return b.String()
}
