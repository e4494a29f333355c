package bosons

import (
	"strings"

	"github.com/katalvlaran/struqture/algebra"
	"github.com/katalvlaran/struqture/coeff"
)

// BosonLindbladNoiseOperator is the rate matrix of a bosonic Lindblad
// dissipator, indexed by ordered pairs of BosonProducts. Identity products
// cannot index a rate.
type BosonLindbladNoiseOperator struct {
	terms       *algebra.TermMap[algebra.Pair[BosonProduct], coeff.Complex]
	numberModes *int
}

// NewBosonLindbladNoiseOperator returns an empty noise operator.
func NewBosonLindbladNoiseOperator(opts ...Option) *BosonLindbladNoiseOperator {
	o := applyOptions(opts)
	return &BosonLindbladNoiseOperator{
		terms:       algebra.NewTermMap[algebra.Pair[BosonProduct], coeff.Complex](),
		numberModes: o.numberModes,
	}
}

func (no *BosonLindbladNoiseOperator) checkKey(left, right BosonProduct) error {
	if left.IsIdentity() || right.IsIdentity() {
		return ErrIdentityNoiseKey
	}
	if err := checkModeBound(no.numberModes, left.CurrentNumberModes()); err != nil {
		return err
	}
	return checkModeBound(no.numberModes, right.CurrentNumberModes())
}

// Len returns the number of stored rates.
func (no *BosonLindbladNoiseOperator) Len() int { return no.terms.Len() }

// Keys returns the stored pairs in insertion order.
func (no *BosonLindbladNoiseOperator) Keys() []algebra.Pair[BosonProduct] { return no.terms.Keys() }

// Get returns the rate of a pair, the numeric zero when absent.
func (no *BosonLindbladNoiseOperator) Get(left, right BosonProduct) coeff.Complex {
	return no.terms.Get(algebra.NewPair(left, right))
}

// Set stores a rate, returning the previous one. Identity products and keys
// beyond a declared number of modes are rejected.
func (no *BosonLindbladNoiseOperator) Set(left, right BosonProduct, v coeff.Complex) (coeff.Complex, error) {
	if err := no.checkKey(left, right); err != nil {
		return coeff.Complex{}, err
	}
	prev, _ := no.terms.Set(algebra.NewPair(left, right), v)
	return prev, nil
}

// Add accumulates a rate onto a pair.
func (no *BosonLindbladNoiseOperator) Add(left, right BosonProduct, v coeff.Complex) error {
	if err := no.checkKey(left, right); err != nil {
		return err
	}
	k := algebra.NewPair(left, right)
	no.terms.Set(k, no.terms.Get(k).Add(v))
	return nil
}

// Remove deletes a rate, returning it.
func (no *BosonLindbladNoiseOperator) Remove(left, right BosonProduct) (coeff.Complex, bool) {
	return no.terms.Remove(algebra.NewPair(left, right))
}

// CurrentNumberModes returns the highest mode index any stored pair touches
// plus one, at least the declared bound when one is set.
func (no *BosonLindbladNoiseOperator) CurrentNumberModes() int {
	current := 0
	if no.numberModes != nil {
		current = *no.numberModes
	}
	no.terms.Iter(func(k algebra.Pair[BosonProduct], _ coeff.Complex) bool {
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
func (no *BosonLindbladNoiseOperator) DeclaredNumberModes() (int, bool) {
	if no.numberModes == nil {
		return 0, false
	}
	return *no.numberModes, true
}

// Clone returns an independent copy.
func (no *BosonLindbladNoiseOperator) Clone() *BosonLindbladNoiseOperator {
	return &BosonLindbladNoiseOperator{terms: no.terms.Clone(), numberModes: no.numberModes}
}

// Truncate returns a new noise operator keeping only rates that survive the
// threshold; symbolic rates always survive.
func (no *BosonLindbladNoiseOperator) Truncate(threshold float64) *BosonLindbladNoiseOperator {
	out := NewBosonLindbladNoiseOperator()
	out.numberModes = no.numberModes
	no.terms.Iter(func(k algebra.Pair[BosonProduct], v coeff.Complex) bool {
		if kept, ok := v.Truncate(threshold); ok {
			out.terms.Set(k, kept)
		}
		return true
	})
	return out
}

// HermitianConjugate returns the conjugate-transposed rate matrix: every
// pair (l, r) maps to (r, l) with a conjugated rate.
func (no *BosonLindbladNoiseOperator) HermitianConjugate() *BosonLindbladNoiseOperator {
	out := NewBosonLindbladNoiseOperator()
	out.numberModes = no.numberModes
	no.terms.Iter(func(k algebra.Pair[BosonProduct], v coeff.Complex) bool {
		swapped := algebra.NewPair(k.Right, k.Left)
		out.terms.Set(swapped, out.terms.Get(swapped).Add(v.Conj()))
		return true
	})
	return out
}

// MulF returns the noise operator with every rate scaled by a real
// coefficient.
func (no *BosonLindbladNoiseOperator) MulF(f coeff.Float) *BosonLindbladNoiseOperator {
	out := NewBosonLindbladNoiseOperator()
	out.numberModes = no.numberModes
	no.terms.Iter(func(k algebra.Pair[BosonProduct], v coeff.Complex) bool {
		out.terms.Set(k, v.MulF(f))
		return true
	})
	return out
}

// AddNoiseOperator accumulates every rate of other into no.
func (no *BosonLindbladNoiseOperator) AddNoiseOperator(other *BosonLindbladNoiseOperator) error {
	var err error
	other.terms.Iter(func(k algebra.Pair[BosonProduct], v coeff.Complex) bool {
		err = no.Add(k.Left, k.Right, v)
		return err == nil
	})
	return err
}

// String renders one "(left, right): rate" line per term.
func (no *BosonLindbladNoiseOperator) String() string {
	var b strings.Builder
	b.WriteString("BosonLindbladNoiseOperator{\n")
	no.terms.Iter(func(k algebra.Pair[BosonProduct], v coeff.Complex) bool {
		b.WriteString("  (" + k.Left.String() + ", " + k.Right.String() + "): " + v.String() + ",\n")
		return true
	})
	b.WriteString("}")
	return b.String()
}
