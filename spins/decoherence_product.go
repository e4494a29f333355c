package spins

import (
	"sort"
	"strconv"
	"strings"
)

type decoherenceFactor struct {
	index int
	op    Decoherence
}

// DecoherenceProduct is a sparse tensor product of single-qubit factors in
// the {X, iY, Z} basis, stored in ascending qubit order. It is the key type
// of Lindblad noise containers. The empty product is the identity.
//
// Like PauliProduct it is an immutable value with chaining setters.
type DecoherenceProduct struct {
	factors []decoherenceFactor
}

// NewDecoherenceProduct returns the identity product.
func NewDecoherenceProduct() DecoherenceProduct { return DecoherenceProduct{} }

// SetDecoherence returns a copy with the factor on the given qubit replaced.
// Setting DecoherenceI clears the qubit. Panics on a negative index.
func (p DecoherenceProduct) SetDecoherence(index int, op Decoherence) DecoherenceProduct {
	if index < 0 {
		panic("spins: negative qubit index")
	}
	pos := sort.Search(len(p.factors), func(i int) bool { return p.factors[i].index >= index })
	present := pos < len(p.factors) && p.factors[pos].index == index

	out := make([]decoherenceFactor, 0, len(p.factors)+1)
	out = append(out, p.factors[:pos]...)
	if op != DecoherenceI {
		out = append(out, decoherenceFactor{index: index, op: op})
	}
	if present {
		out = append(out, p.factors[pos+1:]...)
	} else {
		out = append(out, p.factors[pos:]...)
	}
	return DecoherenceProduct{factors: out}
}

// X returns a copy with X on the given qubit.
func (p DecoherenceProduct) X(index int) DecoherenceProduct {
	return p.SetDecoherence(index, DecoherenceX)
}

// IY returns a copy with iY on the given qubit.
func (p DecoherenceProduct) IY(index int) DecoherenceProduct {
	return p.SetDecoherence(index, DecoherenceIY)
}

// Z returns a copy with Z on the given qubit.
func (p DecoherenceProduct) Z(index int) DecoherenceProduct {
	return p.SetDecoherence(index, DecoherenceZ)
}

// Get returns the factor on the given qubit, DecoherenceI when unset.
func (p DecoherenceProduct) Get(index int) Decoherence {
	pos := sort.Search(len(p.factors), func(i int) bool { return p.factors[i].index >= index })
	if pos < len(p.factors) && p.factors[pos].index == index {
		return p.factors[pos].op
	}
	return DecoherenceI
}

// Len returns the number of non-identity factors.
func (p DecoherenceProduct) Len() int { return len(p.factors) }

// IsIdentity reports whether the product carries no factors.
func (p DecoherenceProduct) IsIdentity() bool { return len(p.factors) == 0 }

// CurrentNumberSpins returns the highest touched qubit index plus one.
func (p DecoherenceProduct) CurrentNumberSpins() int {
	if len(p.factors) == 0 {
		return 0
	}
	return p.factors[len(p.factors)-1].index + 1
}

// HermitianConjugate returns the adjoint and the conjugation sign. X and Z
// are self-adjoint while (iY)† = -iY, so the adjoint is the product itself
// with one sign flip per iY factor.
func (p DecoherenceProduct) HermitianConjugate() (DecoherenceProduct, float64) {
	sign := 1.0
	for _, f := range p.factors {
		if f.op == DecoherenceIY {
			sign = -sign
		}
	}
	return p, sign
}

// IsNaturalHermitian reports whether the product equals its adjoint with
// sign +1, which holds exactly when it carries no iY factor.
func (p DecoherenceProduct) IsNaturalHermitian() bool {
	for _, f := range p.factors {
		if f.op == DecoherenceIY {
			return false
		}
	}
	return true
}

// String renders the canonical form, e.g. "0X3iY"; the identity is "I".
func (p DecoherenceProduct) String() string {
	if len(p.factors) == 0 {
		return "I"
	}
	var b strings.Builder
	for _, f := range p.factors {
		b.WriteString(strconv.Itoa(f.index))
		b.WriteString(f.op.String())
	}
	return b.String()
}

// ParseDecoherenceProduct parses the canonical string form.
func ParseDecoherenceProduct(s string) (DecoherenceProduct, error) {
	toks, err := splitFactors(s, true)
	if err != nil {
		return DecoherenceProduct{}, err
	}
	factors := make([]decoherenceFactor, 0, len(toks))
	for _, t := range toks {
		op, err := ParseDecoherence(t.op)
		if err != nil {
			return DecoherenceProduct{}, err
		}
		factors = append(factors, decoherenceFactor{index: t.index, op: op})
	}
	return DecoherenceProduct{factors: factors}, nil
}

// MarshalText encodes the canonical string form.
func (p DecoherenceProduct) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText parses the canonical string form.
func (p *DecoherenceProduct) UnmarshalText(text []byte) error {
	parsed, err := ParseDecoherenceProduct(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MulDecoherenceProducts multiplies two products factor by factor, returning
// the resulting product and the accumulated real sign.
func MulDecoherenceProducts(a, b DecoherenceProduct) (DecoherenceProduct, float64) {
	sign := 1.0
	merged := make([]decoherenceFactor, 0, len(a.factors)+len(b.factors))
	i, j := 0, 0
	for i < len(a.factors) && j < len(b.factors) {
		fa, fb := a.factors[i], b.factors[j]
		switch {
		case fa.index < fb.index:
			merged = append(merged, fa)
			i++
		case fa.index > fb.index:
			merged = append(merged, fb)
			j++
		default:
			op, s := mulDecoherence(fa.op, fb.op)
			sign *= s
			if op != DecoherenceI {
				merged = append(merged, decoherenceFactor{index: fa.index, op: op})
			}
			i, j = i+1, j+1
		}
	}
	merged = append(merged, a.factors[i:]...)
	merged = append(merged, b.factors[j:]...)
	return DecoherenceProduct{factors: merged}, sign
}
