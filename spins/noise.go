package spins

import (
	"strings"

	"github.com/katalvlaran/struqture/algebra"
	"github.com/katalvlaran/struqture/coeff"
)

// PauliLindbladNoiseOperator is the rate matrix M of a Lindblad dissipator:
//
//	L(ρ) = Σ_{l,r} M_{l,r} ( A_l ρ A_r† - ½ {A_r† A_l, ρ} )
//
// indexed by ordered pairs of DecoherenceProducts. The identity product
// cannot appear on either side: it commutes with everything and contributes
// no dissipation.
type PauliLindbladNoiseOperator struct {
	terms       *algebra.TermMap[algebra.Pair[DecoherenceProduct], coeff.Complex]
	numberSpins *int
}

// NewPauliLindbladNoiseOperator returns an empty noise operator.
func NewPauliLindbladNoiseOperator(opts ...Option) *PauliLindbladNoiseOperator {
	o := applyOptions(opts)
	return &PauliLindbladNoiseOperator{
		terms:       algebra.NewTermMap[algebra.Pair[DecoherenceProduct], coeff.Complex](),
		numberSpins: o.numberSpins,
	}
}

func (no *PauliLindbladNoiseOperator) checkKey(left, right DecoherenceProduct) error {
	if left.IsIdentity() || right.IsIdentity() {
		return ErrIdentityNoiseKey
	}
	if err := checkSpinBound(no.numberSpins, left.CurrentNumberSpins()); err != nil {
		return err
	}
	return checkSpinBound(no.numberSpins, right.CurrentNumberSpins())
}

// Len returns the number of stored rates.
func (no *PauliLindbladNoiseOperator) Len() int { return no.terms.Len() }

// Keys returns the stored pairs in insertion order.
func (no *PauliLindbladNoiseOperator) Keys() []algebra.Pair[DecoherenceProduct] {
	return no.terms.Keys()
}

// Get returns the rate of a pair, the numeric zero when absent.
func (no *PauliLindbladNoiseOperator) Get(left, right DecoherenceProduct) coeff.Complex {
	return no.terms.Get(algebra.NewPair(left, right))
}

// Set stores a rate, returning the previous one. Identity products and keys
// beyond a declared number of spins are rejected.
func (no *PauliLindbladNoiseOperator) Set(left, right DecoherenceProduct, v coeff.Complex) (coeff.Complex, error) {
	if err := no.checkKey(left, right); err != nil {
		return coeff.Complex{}, err
	}
	prev, _ := no.terms.Set(algebra.NewPair(left, right), v)
	return prev, nil
}

// Add accumulates a rate onto a pair.
func (no *PauliLindbladNoiseOperator) Add(left, right DecoherenceProduct, v coeff.Complex) error {
	if err := no.checkKey(left, right); err != nil {
		return err
	}
	k := algebra.NewPair(left, right)
	no.terms.Set(k, no.terms.Get(k).Add(v))
	return nil
}

// Remove deletes a rate, returning it.
func (no *PauliLindbladNoiseOperator) Remove(left, right DecoherenceProduct) (coeff.Complex, bool) {
	return no.terms.Remove(algebra.NewPair(left, right))
}

// CurrentNumberSpins returns the highest qubit index any stored pair touches
// plus one, at least the declared bound when one is set.
func (no *PauliLindbladNoiseOperator) CurrentNumberSpins() int {
	current := 0
	if no.numberSpins != nil {
		current = *no.numberSpins
	}
	no.terms.Iter(func(k algebra.Pair[DecoherenceProduct], _ coeff.Complex) bool {
		if n := k.Left.CurrentNumberSpins(); n > current {
			current = n
		}
		if n := k.Right.CurrentNumberSpins(); n > current {
			current = n
		}
		return true
	})
	return current
}

// DeclaredNumberSpins returns the declared qubit bound, if any.
func (no *PauliLindbladNoiseOperator) DeclaredNumberSpins() (int, bool) {
	if no.numberSpins == nil {
		return 0, false
	}
	return *no.numberSpins, true
}

// Clone returns an independent copy.
func (no *PauliLindbladNoiseOperator) Clone() *PauliLindbladNoiseOperator {
	return &PauliLindbladNoiseOperator{terms: no.terms.Clone(), numberSpins: no.numberSpins}
}

// Truncate returns a new noise operator keeping only rates that survive the
// threshold; symbolic rates always survive.
func (no *PauliLindbladNoiseOperator) Truncate(threshold float64) *PauliLindbladNoiseOperator {
	out := NewPauliLindbladNoiseOperator()
	out.numberSpins = no.numberSpins
	no.terms.Iter(func(k algebra.Pair[DecoherenceProduct], v coeff.Complex) bool {
		if kept, ok := v.Truncate(threshold); ok {
			out.terms.Set(k, kept)
		}
		return true
	})
	return out
}

// HermitianConjugate returns the conjugate-transposed rate matrix: every
// pair (l, r) maps to (r, l) with a conjugated rate.
func (no *PauliLindbladNoiseOperator) HermitianConjugate() *PauliLindbladNoiseOperator {
	out := NewPauliLindbladNoiseOperator()
	out.numberSpins = no.numberSpins
	no.terms.Iter(func(k algebra.Pair[DecoherenceProduct], v coeff.Complex) bool {
		swapped := algebra.NewPair(k.Right, k.Left)
		out.terms.Set(swapped, out.terms.Get(swapped).Add(v.Conj()))
		return true
	})
	return out
}

// MulF returns the noise operator with every rate scaled by a real
// coefficient.
func (no *PauliLindbladNoiseOperator) MulF(f coeff.Float) *PauliLindbladNoiseOperator {
	out := NewPauliLindbladNoiseOperator()
	out.numberSpins = no.numberSpins
	no.terms.Iter(func(k algebra.Pair[DecoherenceProduct], v coeff.Complex) bool {
		out.terms.Set(k, v.MulF(f))
		return true
	})
	return out
}

// AddNoiseOperator accumulates every rate of other into no.
func (no *PauliLindbladNoiseOperator) AddNoiseOperator(other *PauliLindbladNoiseOperator) error {
	var err error
	other.terms.Iter(func(k algebra.Pair[DecoherenceProduct], v coeff.Complex) bool {
		err = no.Add(k.Left, k.Right, v)
		return err == nil
	})
	return err
}

// String renders one "(left, right): rate" line per term.
func (no *PauliLindbladNoiseOperator) String() string {
	var b strings.Builder
	b.WriteString("PauliLindbladNoiseOperator{\n")
	no.terms.Iter(func(k algebra.Pair[DecoherenceProduct], v coeff.Complex) bool {
		b.WriteString("  (" + k.Left.String() + ", " + k.Right.String() + "): " + v.String() + ",\n")
		return true
	})
	b.WriteString("}")
	return b.String()
}
