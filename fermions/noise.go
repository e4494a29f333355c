package fermions

import (
	"strings"

	"github.com/katalvlaran/struqture/algebra"
	"github.com/katalvlaran/struqture/coeff"
)

// FermionLindbladNoiseOperator is the rate matrix of a fermionic Lindblad
// dissipator, indexed by ordered pairs of FermionProducts. Identity products
// cannot index a rate.
type FermionLindbladNoiseOperator struct {
	terms       *algebra.TermMap[algebra.Pair[FermionProduct], coeff.Complex]
	numberModes *int
}

// NewFermionLindbladNoiseOperator returns an empty noise operator.
func NewFermionLindbladNoiseOperator(opts ...Option) *FermionLindbladNoiseOperator {
	o := applyOptions(opts)
	return &FermionLindbladNoiseOperator{
		terms:       algebra.NewTermMap[algebra.Pair[FermionProduct], coeff.Complex](),
		numberModes: o.numberModes,
	}
}

func (no *FermionLindbladNoiseOperator) checkKey(left, right FermionProduct) error {
	if left.IsIdentity() || right.IsIdentity() {
		return ErrIdentityNoiseKey
	}
	if err := checkModeBound(no.numberModes, left.CurrentNumberModes()); err != nil {
		return err
	}
	return checkModeBound(no.numberModes, right.CurrentNumberModes())
}

// Len returns the number of stored rates.
func (no *FermionLindbladNoiseOperator) Len() int { return no.terms.Len() }

// Keys returns the stored pairs in insertion order.
func (no *FermionLindbladNoiseOperator) Keys() []algebra.Pair[FermionProduct] {
	return no.terms.Keys()
}

// Get returns the rate of a pair, the numeric zero when absent.
func (no *FermionLindbladNoiseOperator) Get(left, right FermionProduct) coeff.Complex {
	return no.terms.Get(algebra.NewPair(left, right))
}

// Set stores a rate, returning the previous one. Identity products and keys
// beyond a declared number of modes are rejected.
func (no *FermionLindbladNoiseOperator) Set(left, right FermionProduct, v coeff.Complex) (coeff.Complex, error) {
	if err := no.checkKey(left, right); err != nil {
		return coeff.Complex{}, err
	}
	prev, _ := no.terms.Set(algebra.NewPair(left, right), v)
	return prev, nil
}

// Add accumulates a rate onto a pair.
func (no *FermionLindbladNoiseOperator) Add(left, right FermionProduct, v coeff.Complex) error {
	if err := no.checkKey(left, right); err != nil {
		return err
	}
	k := algebra.NewPair(left, right)
	no.terms.Set(k, no.terms.Get(k).Add(v))
	return nil
}

// Remove deletes a rate, returning it.
func (no *FermionLindbladNoiseOperator) Remove(left, right FermionProduct) (coeff.Complex, bool) {
	return no.terms.Remove(algebra.NewPair(left, right))
}

// CurrentNumberModes returns the highest mode index any stored pair touches
// plus one, at least the declared bound when one is set.
func (no *FermionLindbladNoiseOperator) CurrentNumberModes() int {
	current := 0
	if no.numberModes != nil {
		current = *no.numberModes
	}
	no.terms.Iter(func(k algebra.Pair[FermionProduct], _ coeff.Complex) bool {
		if n := k.Left.CurrentNumberModes(); n > current {
			current = n
		}
		if n := k.Right.CurrentNumberModes(); n > current {
			current = n
		}
		return true
	})
	return current
}

// DeclaredNumberModes returns the declared mode bound, if any.
func (no *FermionLindbladNoiseOperator) DeclaredNumberModes() (int, bool) {
	if no.numberModes == nil {
		return 0, false
	}
	return *no.numberModes, true
}

// Clone returns an independent copy.
func (no *FermionLindbladNoiseOperator) Clone() *FermionLindbladNoiseOperator {
	return &FermionLindbladNoiseOperator{terms: no.terms.Clone(), numberModes: no.numberModes}
}

// Truncate returns a new noise operator keeping only rates that survive the
// threshold; symbolic rates always survive.
func (no *FermionLindbladNoiseOperator) Truncate(threshold float64) *FermionLindbladNoiseOperator {
	out := NewFermionLindbladNoiseOperator()
	out.numberModes = no.numberModes
	no.terms.Iter(func(k algebra.Pair[FermionProduct], v coeff.Complex) bool {
		if kept, ok := v.Truncate(threshold); ok {
			out.terms.Set(k, kept)
		}
		return true
	})
	return out
}

// HermitianConjugate returns the conjugate-transposed rate matrix: every
// pair (l, r) maps to (r, l) with a conjugated rate.
func (no *FermionLindbladNoiseOperator) HermitianConjugate() *FermionLindbladNoiseOperator {
	out := NewFermionLindbladNoiseOperator()
	out.numberModes = no.numberModes
	no.terms.Iter(func(k algebra.Pair[FermionProduct], v coeff.Complex) bool {
		swapped := algebra.NewPair(k.Right, k.Left)
		out.terms.Set(swapped, out.terms.Get(swapped).Add(v.Conj()))
		return true
	})
	return out
}

// MulF returns the noise operator with every rate scaled by a real
// coefficient.
func (no *FermionLindbladNoiseOperator) MulF(f coeff.Float) *FermionLindbladNoiseOperator {
	out := NewFermionLindbladNoiseOperator()
	out.numberModes = no.numberModes
	no.terms.Iter(func(k algebra.Pair[FermionProduct], v coeff.Complex) bool {
		out.terms.Set(k, v.MulF(f))
		return true
	})
	return out
}

// AddNoiseOperator accumulates every rate of other into no.
func (no *FermionLindbladNoiseOperator) AddNoiseOperator(other *FermionLindbladNoiseOperator) error {
	var err error
	other.terms.Iter(func(k algebra.Pair[FermionProduct], v coeff.Complex) bool {
		err = no.Add(k.Left, k.Right, v)
		return err == nil
	})
	return err
}

// String renders one "(left, right): rate" line per term.
func (no *FermionLindbladNoiseOperator) String() string {
	var b strings.Builder
	b.WriteString("FermionLindbladNoiseOperator{\n")
	no.terms.Iter(func(k algebra.Pair[FermionProduct], v coeff.Complex) bool {
		b.WriteString("  (" + k.Left.String() + ", " + k.Right.String() + "): " + v.String() + ",\n")
		return true
	})
	b.WriteString("}")
	return b.String()
}
