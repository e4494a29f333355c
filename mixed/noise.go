package mixed

import (
	"strings"

	"github.com/katalvlaran/struqture/algebra"
	"github.com/katalvlaran/struqture/coeff"
)

// MixedLindbladNoiseOperator is the rate matrix of a Lindblad dissipator on
// a mixed system of fixed subsystem arity, indexed by ordered pairs of
// MixedDecoherenceProducts. Identity products cannot index a rate.
type MixedLindbladNoiseOperator struct {
	terms *algebra.TermMap[algebra.Pair[MixedDecoherenceProduct], coeff.Complex]
	arity arity
}

// NewMixedLindbladNoiseOperator returns an empty noise operator on nSpins
// spin, nBosons boson and nFermions fermion subsystems. Negative counts
// panic.
func NewMixedLindbladNoiseOperator(nSpins, nBosons, nFermions int) *MixedLindbladNoiseOperator {
	return &MixedLindbladNoiseOperator{
		terms: algebra.NewTermMap[algebra.Pair[MixedDecoherenceProduct], coeff.Complex](),
		arity: newArity(nSpins, nBosons, nFermions),
	}
}

func (no *MixedLindbladNoiseOperator) checkKey(left, right MixedDecoherenceProduct) error {
	if left.IsIdentity() || right.IsIdentity() {
		return ErrIdentityNoiseKey
	}
	if err := no.arity.check(left.SubsystemCounts()); err != nil {
		return err
	}
	return no.arity.check(right.SubsystemCounts())
}

// SubsystemCounts returns the fixed numbers of spin, boson and fermion
// subsystems.
func (no *MixedLindbladNoiseOperator) SubsystemCounts() (nSpins, nBosons, nFermions int) {
	return no.arity.nSpins, no.arity.nBosons, no.arity.nFermions
}

// Len returns the number of stored rates.
func (no *MixedLindbladNoiseOperator) Len() int { return no.terms.Len() }

// Keys returns the stored pairs in insertion order.
func (no *MixedLindbladNoiseOperator) Keys() []algebra.Pair[MixedDecoherenceProduct] {
	return no.terms.Keys()
}

// Get returns the rate of a pair, the numeric zero when absent.
func (no *MixedLindbladNoiseOperator) Get(left, right MixedDecoherenceProduct) coeff.Complex {
	return no.terms.Get(algebra.NewPair(left, right))
}

// Set stores a rate, returning the previous one. Identity products and keys
// of the wrong subsystem arity are rejected.
func (no *MixedLindbladNoiseOperator) Set(left, right MixedDecoherenceProduct, v coeff.Complex) (coeff.Complex, error) {
	if err := no.checkKey(left, right); err != nil {
		return coeff.Complex{}, err
	}
	prev, _ := no.terms.Set(algebra.NewPair(left, right), v)
	return prev, nil
}

// Add accumulates a rate onto a pair.
func (no *MixedLindbladNoiseOperator) Add(left, right MixedDecoherenceProduct, v coeff.Complex) error {
	if err := no.checkKey(left, right); err != nil {
		return err
	}
	k := algebra.NewPair(left, right)
	no.terms.Set(k, no.terms.Get(k).Add(v))
	return nil
}

// Remove deletes a rate, returning it.
func (no *MixedLindbladNoiseOperator) Remove(left, right MixedDecoherenceProduct) (coeff.Complex, bool) {
	return no.terms.Remove(algebra.NewPair(left, right))
}

// CurrentNumberSpins returns, per spin subsystem, the highest qubit index
// any stored pair touches plus one.
func (no *MixedLindbladNoiseOperator) CurrentNumberSpins() []int {
	acc := make([]int, no.arity.nSpins)
	no.terms.Iter(func(k algebra.Pair[MixedDecoherenceProduct], _ coeff.Complex) bool {
		acc = maxPerPosition(acc, k.Left.CurrentNumberSpins())
		acc = maxPerPosition(acc, k.Right.CurrentNumberSpins())
		return true
	})
	return acc
}

// CurrentNumberBosonModes returns, per boson subsystem, the highest mode
// index any stored pair touches plus one.
func (no *MixedLindbladNoiseOperator) CurrentNumberBosonModes() []int {
	acc := make([]int, no.arity.nBosons)
	no.terms.Iter(func(k algebra.Pair[MixedDecoherenceProduct], _ coeff.Complex) bool {
		acc = maxPerPosition(acc, k.Left.CurrentNumberBosonModes())
		acc = maxPerPosition(acc, k.Right.CurrentNumberBosonModes())
		return true
	})
	return acc
}

// CurrentNumberFermionModes returns, per fermion subsystem, the highest mode
// index any stored pair touches plus one.
func (no *MixedLindbladNoiseOperator) CurrentNumberFermionModes() []int {
	acc := make([]int, no.arity.nFermions)
	no.terms.Iter(func(k algebra.Pair[MixedDecoherenceProduct], _ coeff.Complex) bool {
		acc = maxPerPosition(acc, k.Left.CurrentNumberFermionModes())
		acc = maxPerPosition(acc, k.Right.CurrentNumberFermionModes())
		return true
	})
	return acc
}

// Clone returns an independent copy.
func (no *MixedLindbladNoiseOperator) Clone() *MixedLindbladNoiseOperator {
	return &MixedLindbladNoiseOperator{terms: no.terms.Clone(), arity: no.arity}
}

// Truncate returns a new noise operator keeping only rates that survive the
// threshold; symbolic rates always survive.
func (no *MixedLindbladNoiseOperator) Truncate(threshold float64) *MixedLindbladNoiseOperator {
	out := &MixedLindbladNoiseOperator{
		terms: algebra.NewTermMap[algebra.Pair[MixedDecoherenceProduct], coeff.Complex](),
		arity: no.arity,
	}
	no.terms.Iter(func(k algebra.Pair[MixedDecoherenceProduct], v coeff.Complex) bool {
		if kept, ok := v.Truncate(threshold); ok {
			out.terms.Set(k, kept)
		}
		return true
	})
	return out
}

// HermitianConjugate returns the conjugate-transposed rate matrix: every
// pair (l, r) maps to (r, l) with a conjugated rate.
func (no *MixedLindbladNoiseOperator) HermitianConjugate() *MixedLindbladNoiseOperator {
	out := &MixedLindbladNoiseOperator{
		terms: algebra.NewTermMap[algebra.Pair[MixedDecoherenceProduct], coeff.Complex](),
		arity: no.arity,
	}
	no.terms.Iter(func(k algebra.Pair[MixedDecoherenceProduct], v coeff.Complex) bool {
		swapped := algebra.NewPair(k.Right, k.Left)
		out.terms.Set(swapped, out.terms.Get(swapped).Add(v.Conj()))
		return true
	})
	return out
}

// MulF returns the noise operator with every rate scaled by a real
// coefficient.
func (no *MixedLindbladNoiseOperator) MulF(f coeff.Float) *MixedLindbladNoiseOperator {
	out := &MixedLindbladNoiseOperator{
		terms: algebra.NewTermMap[algebra.Pair[MixedDecoherenceProduct], coeff.Complex](),
		arity: no.arity,
	}
	no.terms.Iter(func(k algebra.Pair[MixedDecoherenceProduct], v coeff.Complex) bool {
		out.terms.Set(k, v.MulF(f))
		return true
	})
	return out
}

// AddNoiseOperator accumulates every rate of other into no.
func (no *MixedLindbladNoiseOperator) AddNoiseOperator(other *MixedLindbladNoiseOperator) error {
	var err error
	other.terms.Iter(func(k algebra.Pair[MixedDecoherenceProduct], v coeff.Complex) bool {
		err = no.Add(k.Left, k.Right, v)
		return err == nil
	})
	return err
}

// String renders one "(left, right): rate" line per term.
func (no *MixedLindbladNoiseOperator) String() string {
	var b strings.Builder
	b.WriteString("MixedLindbladNoiseOperator{\n")
	no.terms.Iter(func(k algebra.Pair[MixedDecoherenceProduct], v coeff.Complex) bool {
		b.WriteString("  (" + k.Left.String() + ", " + k.Right.String() + "): " + v.String() + ",\n")
		return true
	})
	b.WriteString("}")
	return b.String()
}
