package bosons

import (
	"fmt"

	"github.com/katalvlaran/struqture/algebra"
	"github.com/katalvlaran/struqture/coeff"
)

// HermitianBosonProduct keys one entry per conjugate pair: it stands for
// p + p† and stores the canonical member of the pair, the form whose first
// asymmetric position has the smaller creator index.
//
// A product equal to its own adjoint (equal index lists) is naturally
// Hermitian and stands for itself alone.
type HermitianBosonProduct struct {
	creators     []int
	annihilators []int
}

// NewHermitianBosonProduct builds the canonical Hermitian key after sorting
// both index lists. Input in the conjugate form is rejected with
// ErrNonCanonicalHermitianPair; use HermitianBosonValidPair to flip instead.
func NewHermitianBosonProduct(creators, annihilators []int) (HermitianBosonProduct, error) {
	if err := checkModes(creators); err != nil {
		return HermitianBosonProduct{}, err
	}
	if err := checkModes(annihilators); err != nil {
		return HermitianBosonProduct{}, err
	}
	c, a := sortedCopy(creators), sortedCopy(annihilators)
	if algebra.ClassifyLadderPair(c, a) == algebra.PairConjugate {
		return HermitianBosonProduct{}, fmt.Errorf("%w: creators %v, annihilators %v",
			ErrNonCanonicalHermitianPair, c, a)
	}
	return HermitianBosonProduct{creators: c, annihilators: a}, nil
}

// HermitianBosonValidPair canonicalizes arbitrary input into the stored
// member of the conjugate pair. When the input is the conjugate form the
// lists swap and the coefficient conjugates.
func HermitianBosonValidPair(creators, annihilators []int, value coeff.Complex) (HermitianBosonProduct, coeff.Complex, error) {
	if err := checkModes(creators); err != nil {
		return HermitianBosonProduct{}, coeff.Complex{}, err
	}
	if err := checkModes(annihilators); err != nil {
		return HermitianBosonProduct{}, coeff.Complex{}, err
	}
	c, a := sortedCopy(creators), sortedCopy(annihilators)
	if algebra.ClassifyLadderPair(c, a) == algebra.PairConjugate {
		return HermitianBosonProduct{creators: a, annihilators: c}, value.Conj(), nil
	}
	return HermitianBosonProduct{creators: c, annihilators: a}, value, nil
}

// Creators returns a copy of the creator index list.
func (p HermitianBosonProduct) Creators() []int { return append([]int(nil), p.creators...) }

// Annihilators returns a copy of the annihilator index list.
func (p HermitianBosonProduct) Annihilators() []int { return append([]int(nil), p.annihilators...) }

// IsIdentity reports whether the product carries no factors.
func (p HermitianBosonProduct) IsIdentity() bool {
	return len(p.creators) == 0 && len(p.annihilators) == 0
}

// CurrentNumberModes returns the highest touched mode index plus one.
func (p HermitianBosonProduct) CurrentNumberModes() int {
	return BosonProduct{creators: p.creators, annihilators: p.annihilators}.CurrentNumberModes()
}

// HermitianConjugate returns the adjoint. A Hermitian key stands for
// p + p†, which is its own adjoint: the key itself with sign +1.
func (p HermitianBosonProduct) HermitianConjugate() (HermitianBosonProduct, float64) {
	return p, 1
}

// IsNaturalHermitian reports whether the stored product alone equals its
// adjoint, i.e. both index lists agree.
func (p HermitianBosonProduct) IsNaturalHermitian() bool {
	return BosonProduct{creators: p.creators, annihilators: p.annihilators}.IsNaturalHermitian()
}

// ToBosonProduct returns the stored member of the conjugate pair as a plain
// product.
func (p HermitianBosonProduct) ToBosonProduct() BosonProduct {
	return BosonProduct{
		creators:     append([]int(nil), p.creators...),
		annihilators: append([]int(nil), p.annihilators...),
	}
}

// String renders the canonical form, e.g. "c0a0a2"; the identity is "I".
func (p HermitianBosonProduct) String() string {
	return algebra.FormatLadder(p.creators, p.annihilators)
}

// ParseHermitianBosonProduct parses the canonical string form, enforcing
// the canonical-pair invariant.
func ParseHermitianBosonProduct(s string) (HermitianBosonProduct, error) {
	creators, annihilators, err := algebra.ParseLadder(s)
	if err != nil {
		return HermitianBosonProduct{}, fmt.Errorf("%w: %v", ErrMalformedProduct, err)
	}
	return NewHermitianBosonProduct(creators, annihilators)
}

// MarshalText encodes the canonical string form.
func (p HermitianBosonProduct) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText parses the canonical string form.
func (p *HermitianBosonProduct) UnmarshalText(text []byte) error {
	parsed, err := ParseHermitianBosonProduct(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
