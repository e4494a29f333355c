package fermions

import (
	"fmt"

	"github.com/katalvlaran/struqture/algebra"
	"github.com/katalvlaran/struqture/coeff"
)

// HermitianFermionProduct keys one entry per conjugate pair: it stands for
// p + p† and stores the canonical member of the pair, the form whose first
// asymmetric position has the smaller creator index.
//
// A product equal to its own adjoint (equal index lists) is naturally
// Hermitian and stands for itself alone.
type HermitianFermionProduct struct {
	creators     []int
	annihilators []int
}

// NewHermitianFermionProduct builds the canonical Hermitian key. Both index
// lists must be strictly ascending, like NewFermionProduct; input in the
// conjugate form is rejected with ErrNonCanonicalHermitianPair; use
// HermitianFermionValidPair to flip instead.
func NewHermitianFermionProduct(creators, annihilators []int) (HermitianFermionProduct, error) {
	if err := checkModes(creators); err != nil {
		return HermitianFermionProduct{}, err
	}
	if err := checkModes(annihilators); err != nil {
		return HermitianFermionProduct{}, err
	}
	if err := checkAscending(creators, "creators"); err != nil {
		return HermitianFermionProduct{}, err
	}
	if err := checkAscending(annihilators, "annihilators"); err != nil {
		return HermitianFermionProduct{}, err
	}
	if algebra.ClassifyLadderPair(creators, annihilators) == algebra.PairConjugate {
		return HermitianFermionProduct{}, fmt.Errorf("%w: creators %v, annihilators %v",
			ErrNonCanonicalHermitianPair, creators, annihilators)
	}
	return HermitianFermionProduct{
		creators:     append([]int(nil), creators...),
		annihilators: append([]int(nil), annihilators...),
	}, nil
}

// HermitianFermionValidPair canonicalizes arbitrary input into the stored
// member of the conjugate pair. The anticommutation parity of sorting each
// list multiplies the value first; when the sorted input is the conjugate
// form, the lists swap and the signed value conjugates.
func HermitianFermionValidPair(creators, annihilators []int, value coeff.Complex) (HermitianFermionProduct, coeff.Complex, error) {
	if err := checkModes(creators); err != nil {
		return HermitianFermionProduct{}, coeff.Complex{}, err
	}
	if err := checkModes(annihilators); err != nil {
		return HermitianFermionProduct{}, coeff.Complex{}, err
	}
	c, swapsC, err := sortAndSignal(creators, "creator")
	if err != nil {
		return HermitianFermionProduct{}, coeff.Complex{}, err
	}
	a, swapsA, err := sortAndSignal(annihilators, "annihilator")
	if err != nil {
		return HermitianFermionProduct{}, coeff.Complex{}, err
	}
	if (swapsC+swapsA)%2 != 0 {
		value = value.MulSign(-1)
	}
	if algebra.ClassifyLadderPair(c, a) == algebra.PairConjugate {
		return HermitianFermionProduct{creators: a, annihilators: c}, value.Conj(), nil
	}
	return HermitianFermionProduct{creators: c, annihilators: a}, value, nil
}

// Creators returns a copy of the creator index list.
func (p HermitianFermionProduct) Creators() []int { return append([]int(nil), p.creators...) }

// Annihilators returns a copy of the annihilator index list.
func (p HermitianFermionProduct) Annihilators() []int { return append([]int(nil), p.annihilators...) }

// IsIdentity reports whether the product carries no factors.
func (p HermitianFermionProduct) IsIdentity() bool {
	return len(p.creators) == 0 && len(p.annihilators) == 0
}

// CurrentNumberModes returns the highest touched mode index plus one.
func (p HermitianFermionProduct) CurrentNumberModes() int {
	return FermionProduct{creators: p.creators, annihilators: p.annihilators}.CurrentNumberModes()
}

// HermitianConjugate returns the adjoint. A Hermitian key stands for
// p + p†, which is its own adjoint: the key itself with sign +1.
func (p HermitianFermionProduct) HermitianConjugate() (HermitianFermionProduct, float64) {
	return p, 1
}

// IsNaturalHermitian reports whether the stored product alone equals its
// adjoint, i.e. both index lists agree.
func (p HermitianFermionProduct) IsNaturalHermitian() bool {
	return FermionProduct{creators: p.creators, annihilators: p.annihilators}.IsNaturalHermitian()
}

// ToFermionProduct returns the stored member of the conjugate pair as a
// plain product.
func (p HermitianFermionProduct) ToFermionProduct() FermionProduct {
	return FermionProduct{
		creators:     append([]int(nil), p.creators...),
		annihilators: append([]int(nil), p.annihilators...),
	}
}

// String renders the canonical form, e.g. "c0c1a1a2"; the identity is "I".
func (p HermitianFermionProduct) String() string {
	return algebra.FormatLadder(p.creators, p.annihilators)
}

// ParseHermitianFermionProduct parses the canonical string form, enforcing
// the canonical-pair invariant.
func ParseHermitianFermionProduct(s string) (HermitianFermionProduct, error) {
	creators, annihilators, err := algebra.ParseLadder(s)
	if err != nil {
		return HermitianFermionProduct{}, fmt.Errorf("%w: %v", ErrMalformedProduct, err)
	}
	return NewHermitianFermionProduct(creators, annihilators)
}

// MarshalText encodes the canonical string form.
func (p HermitianFermionProduct) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText parses the canonical string form.
func (p *HermitianFermionProduct) UnmarshalText(text []byte) error {
	parsed, err := ParseHermitianFermionProduct(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
