package mixed

import (
	"strings"

	"github.com/katalvlaran/struqture/algebra"
	"github.com/katalvlaran/struqture/coeff"
)

// arity is the fixed subsystem layout of a mixed container. Every key must
// match it exactly.
type arity struct {
	nSpins    int
	nBosons   int
	nFermions int
}

func newArity(nSpins, nBosons, nFermions int) arity {
	if nSpins < 0 || nBosons < 0 || nFermions < 0 {
		panic("mixed: negative subsystem count")
	}
	return arity{nSpins: nSpins, nBosons: nBosons, nFermions: nFermions}
}

func (a arity) check(nSpins, nBosons, nFermions int) error {
	if nSpins != a.nSpins || nBosons != a.nBosons || nFermions != a.nFermions {
		return ErrSubsystemCountMismatch
	}
	return nil
}

// maxPerPosition folds per-subsystem counts into the running per-position
// maxima.
func maxPerPosition(acc, counts []int) []int {
	for i, n := range counts {
		if n > acc[i] {
			acc[i] = n
		}
	}
	return acc
}

// MixedOperator is a complex-weighted sum of MixedProducts on a system of
// fixed subsystem arity. Terms keep their insertion order; coefficients set
// or accumulated to numeric zero persist until Truncate removes them.
type MixedOperator struct {
	terms *algebra.TermMap[MixedProduct, coeff.Complex]
	arity arity
}

// NewMixedOperator returns an empty operator on nSpins spin, nBosons boson
// and nFermions fermion subsystems. Negative counts panic.
func NewMixedOperator(nSpins, nBosons, nFermions int) *MixedOperator {
	return &MixedOperator{
		terms: algebra.NewTermMap[MixedProduct, coeff.Complex](),
		arity: newArity(nSpins, nBosons, nFermions),
	}
}

// SubsystemCounts returns the fixed numbers of spin, boson and fermion
// subsystems.
func (op *MixedOperator) SubsystemCounts() (nSpins, nBosons, nFermions int) {
	return op.arity.nSpins, op.arity.nBosons, op.arity.nFermions
}

// Len returns the number of stored terms.
func (op *MixedOperator) Len() int { return op.terms.Len() }

// Keys returns the stored products in insertion order.
func (op *MixedOperator) Keys() []MixedProduct { return op.terms.Keys() }

// Get returns the coefficient of a product, the numeric zero when absent.
func (op *MixedOperator) Get(p MixedProduct) coeff.Complex { return op.terms.Get(p) }

// Set stores a coefficient, returning the previous one. Fails only when the
// key's subsystem counts differ from the container arity; the container is
// then unchanged.
func (op *MixedOperator) Set(p MixedProduct, v coeff.Complex) (coeff.Complex, error) {
	if err := op.arity.check(p.SubsystemCounts()); err != nil {
		return coeff.Complex{}, err
	}
	prev, _ := op.terms.Set(p, v)
	return prev, nil
}

// Add accumulates a coefficient onto a product.
func (op *MixedOperator) Add(p MixedProduct, v coeff.Complex) error {
	if err := op.arity.check(p.SubsystemCounts()); err != nil {
		return err
	}
	op.terms.Set(p, op.terms.Get(p).Add(v))
	return nil
}

// Remove deletes a term, returning its coefficient.
func (op *MixedOperator) Remove(p MixedProduct) (coeff.Complex, bool) { return op.terms.Remove(p) }

// CurrentNumberSpins returns, per spin subsystem, the highest qubit index
// any stored key touches plus one.
func (op *MixedOperator) CurrentNumberSpins() []int {
	acc := make([]int, op.arity.nSpins)
	op.terms.Iter(func(p MixedProduct, _ coeff.Complex) bool {
		acc = maxPerPosition(acc, p.CurrentNumberSpins())
		return true
	})
	return acc
}

// CurrentNumberBosonModes returns, per boson subsystem, the highest mode
// index any stored key touches plus one.
func (op *MixedOperator) CurrentNumberBosonModes() []int {
	acc := make([]int, op.arity.nBosons)
	op.terms.Iter(func(p MixedProduct, _ coeff.Complex) bool {
		acc = maxPerPosition(acc, p.CurrentNumberBosonModes())
		return true
	})
	return acc
}

// CurrentNumberFermionModes returns, per fermion subsystem, the highest mode
// index any stored key touches plus one.
func (op *MixedOperator) CurrentNumberFermionModes() []int {
	acc := make([]int, op.arity.nFermions)
	op.terms.Iter(func(p MixedProduct, _ coeff.Complex) bool {
		acc = maxPerPosition(acc, p.CurrentNumberFermionModes())
		return true
	})
	return acc
}

// Clone returns an independent copy.
func (op *MixedOperator) Clone() *MixedOperator {
	return &MixedOperator{terms: op.terms.Clone(), arity: op.arity}
}

// Truncate returns a new operator keeping only terms that survive the
// threshold; symbolic coefficients always survive.
func (op *MixedOperator) Truncate(threshold float64) *MixedOperator {
	out := &MixedOperator{terms: algebra.NewTermMap[MixedProduct, coeff.Complex](), arity: op.arity}
	op.terms.Iter(func(p MixedProduct, v coeff.Complex) bool {
		if kept, ok := v.Truncate(threshold); ok {
			out.terms.Set(p, kept)
		}
		return true
	})
	return out
}

// HermitianConjugate returns the adjoint operator: every product conjugates
// subsystem by subsystem and every coefficient conjugates.
func (op *MixedOperator) HermitianConjugate() *MixedOperator {
	out := &MixedOperator{terms: algebra.NewTermMap[MixedProduct, coeff.Complex](), arity: op.arity}
	op.terms.Iter(func(p MixedProduct, v coeff.Complex) bool {
		conj, sign := p.HermitianConjugate()
		out.terms.Set(conj, out.terms.Get(conj).Add(v.Conj().MulSign(sign)))
		return true
	})
	return out
}

// MulScalar returns the operator scaled by a complex coefficient.
func (op *MixedOperator) MulScalar(c coeff.Complex) *MixedOperator {
	out := &MixedOperator{terms: algebra.NewTermMap[MixedProduct, coeff.Complex](), arity: op.arity}
	op.terms.Iter(func(p MixedProduct, v coeff.Complex) bool {
		out.terms.Set(p, v.Mul(c))
		return true
	})
	return out
}

// AddOperator accumulates every term of other into op.
func (op *MixedOperator) AddOperator(other *MixedOperator) error {
	var err error
	other.terms.Iter(func(p MixedProduct, v coeff.Complex) bool {
		err = op.Add(p, v)
		return err == nil
	})
	return err
}

// SubOperator subtracts every term of other from op.
func (op *MixedOperator) SubOperator(other *MixedOperator) error {
	var err error
	other.terms.Iter(func(p MixedProduct, v coeff.Complex) bool {
		err = op.Add(p, v.Neg())
		return err == nil
	})
	return err
}

// String renders one "product: coefficient" line per term.
func (op *MixedOperator) String() string {
	var b strings.Builder
	b.WriteString("MixedOperator{\n")
	op.terms.Iter(func(p MixedProduct, v coeff.Complex) bool {
		b.WriteString("  " + p.String() + ": " + v.String() + ",\n")
		return true
	})
	b.WriteString("}")
	return b.String()
}
