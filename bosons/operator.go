package bosons

import (
	"strings"

	"github.com/katalvlaran/struqture/algebra"
	"github.com/katalvlaran/struqture/coeff"
)

// BosonOperator is a complex-weighted sum of BosonProducts. Terms keep their
// insertion order; coefficients set or accumulated to numeric zero persist
// until Truncate removes them.
type BosonOperator struct {
	terms       *algebra.TermMap[BosonProduct, coeff.Complex]
	numberModes *int
}

// NewBosonOperator returns an empty operator.
func NewBosonOperator(opts ...Option) *BosonOperator {
	o := applyOptions(opts)
	return &BosonOperator{
		terms:       algebra.NewTermMap[BosonProduct, coeff.Complex](),
		numberModes: o.numberModes,
	}
}

// Len returns the number of stored terms.
func (op *BosonOperator) Len() int { return op.terms.Len() }

// Keys returns the stored products in insertion order.
func (op *BosonOperator) Keys() []BosonProduct { return op.terms.Keys() }

// Get returns the coefficient of a product, the numeric zero when absent.
func (op *BosonOperator) Get(p BosonProduct) coeff.Complex { return op.terms.Get(p) }

// Set stores a coefficient, returning the previous one. Fails only when the
// key exceeds a declared number of modes; the container is then unchanged.
func (op *BosonOperator) Set(p BosonProduct, v coeff.Complex) (coeff.Complex, error) {
	if err := checkModeBound(op.numberModes, p.CurrentNumberModes()); err != nil {
		return coeff.Complex{}, err
	}
	prev, _ := op.terms.Set(p, v)
	return prev, nil
}

// Add accumulates a coefficient onto a product.
func (op *BosonOperator) Add(p BosonProduct, v coeff.Complex) error {
	if err := checkModeBound(op.numberModes, p.CurrentNumberModes()); err != nil {
		return err
	}
	op.terms.Set(p, op.terms.Get(p).Add(v))
	return nil
}

// Remove deletes a term, returning its coefficient.
func (op *BosonOperator) Remove(p BosonProduct) (coeff.Complex, bool) { return op.terms.Remove(p) }

// CurrentNumberModes returns the highest mode index any stored key touches
// plus one, at least the declared bound when one is set.
func (op *BosonOperator) CurrentNumberModes() int {
	current := 0
	if op.numberModes != nil {
		current = *op.numberModes
	}
	op.terms.Iter(func(p BosonProduct, _ coeff.Complex) bool {
		if n := p.CurrentNumberModes(); n > current {
			current = n
		}
		return true
	})
	return current
}

// DeclaredNumberModes returns the declared mode bound, if any.
func (op *BosonOperator) DeclaredNumberModes() (int, bool) {
	if op.numberModes == nil {
		return 0, false
	}
	return *op.numberModes, true
}

// Clone returns an independent copy.
func (op *BosonOperator) Clone() *BosonOperator {
	return &BosonOperator{terms: op.terms.Clone(), numberModes: op.numberModes}
}

// Truncate returns a new operator keeping only terms that survive the
// threshold; symbolic coefficients always survive.
func (op *BosonOperator) Truncate(threshold float64) *BosonOperator {
	out := NewBosonOperator()
	out.numberModes = op.numberModes
	op.terms.Iter(func(p BosonProduct, v coeff.Complex) bool {
		if kept, ok := v.Truncate(threshold); ok {
			out.terms.Set(p, kept)
		}
		return true
	})
	return out
}

// HermitianConjugate returns the adjoint operator: every product conjugates
// (creators and annihilators swap) and every coefficient conjugates.
func (op *BosonOperator) HermitianConjugate() *BosonOperator {
	out := NewBosonOperator()
	out.numberModes = op.numberModes
	op.terms.Iter(func(p BosonProduct, v coeff.Complex) bool {
		conj, sign := p.HermitianConjugate()
		out.terms.Set(conj, out.terms.Get(conj).Add(v.Conj().MulSign(sign)))
		return true
	})
	return out
}

// MulScalar returns the operator scaled by a complex coefficient.
func (op *BosonOperator) MulScalar(c coeff.Complex) *BosonOperator {
	out := NewBosonOperator()
	out.numberModes = op.numberModes
	op.terms.Iter(func(p BosonProduct, v coeff.Complex) bool {
		out.terms.Set(p, v.Mul(c))
		return true
	})
	return out
}

// AddOperator accumulates every term of other into op.
func (op *BosonOperator) AddOperator(other *BosonOperator) error {
	var err error
	other.terms.Iter(func(p BosonProduct, v coeff.Complex) bool {
		err = op.Add(p, v)
		return err == nil
	})
	return err
}

// SubOperator subtracts every term of other from op.
func (op *BosonOperator) SubOperator(other *BosonOperator) error {
	var err error
	other.terms.Iter(func(p BosonProduct, v coeff.Complex) bool {
		err = op.Add(p, v.Neg())
		return err == nil
	})
	return err
}

// MulOperator returns the normal-ordered operator product op·other; each
// pair of terms expands through the bosonic commutation relation.
func (op *BosonOperator) MulOperator(other *BosonOperator) *BosonOperator {
	out := NewBosonOperator()
	op.terms.Iter(func(pa BosonProduct, va coeff.Complex) bool {
		other.terms.Iter(func(pb BosonProduct, vb coeff.Complex) bool {
			v := va.Mul(vb)
			for _, prod := range MulBosonProducts(pa, pb) {
				out.terms.Set(prod, out.terms.Get(prod).Add(v))
			}
			return true
		})
		return true
	})
	return out
}

// String renders one "product: coefficient" line per term.
func (op *BosonOperator) String() string {
	var b strings.Builder
	b.WriteString("BosonOperator{\n")
	op.terms.Iter(func(p BosonProduct, v coeff.Complex) bool {
		b.WriteString("  " + p.String() + ": " + v.String() + ",\n")
		return true
	})
	b.WriteString("}")
	return b.String()
}
