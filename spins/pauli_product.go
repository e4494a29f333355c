package spins

import (
	"sort"
	"strconv"
	"strings"
)

type pauliFactor struct {
	index int
	op    Pauli
}

// PauliProduct is a sparse tensor product of single-qubit Pauli factors,
// stored in ascending qubit order. The empty product is the identity.
//
// PauliProduct is an immutable value: setters return a modified copy, so
// products can be chained, shared and used as container keys safely.
type PauliProduct struct {
	factors []pauliFactor
}

// NewPauliProduct returns the identity product.
func NewPauliProduct() PauliProduct { return PauliProduct{} }

// SetPauli returns a copy with the factor on the given qubit replaced.
// Setting PauliI clears the qubit. Panics on a negative index: qubit
// positions are programmer input, as in the builder methods X, Y, Z.
func (p PauliProduct) SetPauli(index int, op Pauli) PauliProduct {
	if index < 0 {
		panic("spins: negative qubit index")
	}
	pos := sort.Search(len(p.factors), func(i int) bool { return p.factors[i].index >= index })
	present := pos < len(p.factors) && p.factors[pos].index == index

	out := make([]pauliFactor, 0, len(p.factors)+1)
	out = append(out, p.factors[:pos]...)
	if op != PauliI {
		out = append(out, pauliFactor{index: index, op: op})
	}
	if present {
		out = append(out, p.factors[pos+1:]...)
	} else {
		out = append(out, p.factors[pos:]...)
	}
	return PauliProduct{factors: out}
}

// X returns a copy with σx on the given qubit.
func (p PauliProduct) X(index int) PauliProduct { return p.SetPauli(index, PauliX) }

// Y returns a copy with σy on the given qubit.
func (p PauliProduct) Y(index int) PauliProduct { return p.SetPauli(index, PauliY) }

// Z returns a copy with σz on the given qubit.
func (p PauliProduct) Z(index int) PauliProduct { return p.SetPauli(index, PauliZ) }

// Get returns the factor on the given qubit, PauliI when unset.
func (p PauliProduct) Get(index int) Pauli {
	pos := sort.Search(len(p.factors), func(i int) bool { return p.factors[i].index >= index })
	if pos < len(p.factors) && p.factors[pos].index == index {
		return p.factors[pos].op
	}
	return PauliI
}

// Len returns the number of non-identity factors.
func (p PauliProduct) Len() int { return len(p.factors) }

// IsIdentity reports whether the product carries no factors.
func (p PauliProduct) IsIdentity() bool { return len(p.factors) == 0 }

// CurrentNumberSpins returns the highest touched qubit index plus one,
// zero for the identity.
func (p PauliProduct) CurrentNumberSpins() int {
	if len(p.factors) == 0 {
		return 0
	}
	return p.factors[len(p.factors)-1].index + 1
}

// HermitianConjugate returns the adjoint and the conjugation sign. Every
// PauliProduct is self-adjoint, so the result is the product itself with
// sign +1.
func (p PauliProduct) HermitianConjugate() (PauliProduct, float64) { return p, 1 }

// IsNaturalHermitian reports whether the product equals its adjoint;
// always true for PauliProducts.
func (p PauliProduct) IsNaturalHermitian() bool { return true }

// String renders the canonical form, e.g. "0X3Y20Z"; the identity is "I".
func (p PauliProduct) String() string {
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

// ParsePauliProduct parses the canonical string form. Indices must be
// strictly ascending and unique; "I" is the identity.
func ParsePauliProduct(s string) (PauliProduct, error) {
	toks, err := splitFactors(s, false)
	if err != nil {
		return PauliProduct{}, err
	}
	factors := make([]pauliFactor, 0, len(toks))
	for _, t := range toks {
		op, err := ParsePauli(t.op)
		if err != nil {
			return PauliProduct{}, err
		}
		factors = append(factors, pauliFactor{index: t.index, op: op})
	}
	return PauliProduct{factors: factors}, nil
}

// MarshalText encodes the canonical string form.
func (p PauliProduct) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText parses the canonical string form.
func (p *PauliProduct) UnmarshalText(text []byte) error {
	parsed, err := ParsePauliProduct(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MulPauliProducts multiplies two products factor by factor, returning the
// resulting product and the accumulated phase (one of ±1, ±i).
func MulPauliProducts(a, b PauliProduct) (PauliProduct, complex128) {
	phase := complex128(1)
	merged := make([]pauliFactor, 0, len(a.factors)+len(b.factors))
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
			op, ph := mulPauli(fa.op, fb.op)
			phase *= ph
			if op != PauliI {
				merged = append(merged, pauliFactor{index: fa.index, op: op})
			}
			i, j = i+1, j+1
		}
	}
	merged = append(merged, a.factors[i:]...)
	merged = append(merged, b.factors[j:]...)
	return PauliProduct{factors: merged}, phase
}
