package bosons

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/struqture/algebra"
	"github.com/katalvlaran/struqture/coeff"
)

// BosonProduct is a normal-ordered product of bosonic creation and
// annihilation factors: all creators left of all annihilators, each index
// list ascending. Bosonic factors of one role commute, so any input order
// canonicalizes by sorting with no sign.
//
// The empty product is the identity.
type BosonProduct struct {
	creators     []int
	annihilators []int
}

func checkModes(indices []int) error {
	for _, i := range indices {
		if i < 0 {
			return fmt.Errorf("%w: %d", ErrNegativeIndex, i)
		}
	}
	return nil
}

func sortedCopy(indices []int) []int {
	out := append([]int(nil), indices...)
	sort.Ints(out)
	return out
}

// NewBosonProduct builds the canonical product from creator and annihilator
// mode indices, sorting each list. Only negative indices are rejected.
func NewBosonProduct(creators, annihilators []int) (BosonProduct, error) {
	if err := checkModes(creators); err != nil {
		return BosonProduct{}, err
	}
	if err := checkModes(annihilators); err != nil {
		return BosonProduct{}, err
	}
	return BosonProduct{
		creators:     sortedCopy(creators),
		annihilators: sortedCopy(annihilators),
	}, nil
}

// BosonValidPair canonicalizes arbitrary creator/annihilator input together
// with a coefficient. Bosonic reordering carries no sign, so the coefficient
// passes through unchanged.
func BosonValidPair(creators, annihilators []int, value coeff.Complex) (BosonProduct, coeff.Complex, error) {
	p, err := NewBosonProduct(creators, annihilators)
	if err != nil {
		return BosonProduct{}, coeff.Complex{}, err
	}
	return p, value, nil
}

// Creators returns a copy of the creator index list.
func (p BosonProduct) Creators() []int { return append([]int(nil), p.creators...) }

// Annihilators returns a copy of the annihilator index list.
func (p BosonProduct) Annihilators() []int { return append([]int(nil), p.annihilators...) }

// IsIdentity reports whether the product carries no factors.
func (p BosonProduct) IsIdentity() bool {
	return len(p.creators) == 0 && len(p.annihilators) == 0
}

// CurrentNumberModes returns the highest touched mode index plus one.
func (p BosonProduct) CurrentNumberModes() int {
	n := 0
	if len(p.creators) > 0 {
		n = p.creators[len(p.creators)-1] + 1
	}
	if len(p.annihilators) > 0 {
		if m := p.annihilators[len(p.annihilators)-1] + 1; m > n {
			n = m
		}
	}
	return n
}

// HermitianConjugate returns the adjoint: creator and annihilator lists
// swap, with no sign for bosons.
func (p BosonProduct) HermitianConjugate() (BosonProduct, float64) {
	return BosonProduct{
		creators:     append([]int(nil), p.annihilators...),
		annihilators: append([]int(nil), p.creators...),
	}, 1
}

// IsNaturalHermitian reports whether the product equals its adjoint.
func (p BosonProduct) IsNaturalHermitian() bool {
	if len(p.creators) != len(p.annihilators) {
		return false
	}
	for i := range p.creators {
		if p.creators[i] != p.annihilators[i] {
			return false
		}
	}
	return true
}

// String renders the canonical form, e.g. "c0c1a0a2"; the identity is "I".
func (p BosonProduct) String() string {
	return algebra.FormatLadder(p.creators, p.annihilators)
}

// ParseBosonProduct parses the canonical string form.
func ParseBosonProduct(s string) (BosonProduct, error) {
	creators, annihilators, err := algebra.ParseLadder(s)
	if err != nil {
		return BosonProduct{}, fmt.Errorf("%w: %v", ErrMalformedProduct, err)
	}
	return NewBosonProduct(creators, annihilators)
}

// MarshalText encodes the canonical string form.
func (p BosonProduct) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText parses the canonical string form.
func (p *BosonProduct) UnmarshalText(text []byte) error {
	parsed, err := ParseBosonProduct(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MulBosonProducts normal-orders the product of two BosonProducts. The
// annihilators of a commute right past the creators of b; each matching
// mode contributes a contracted branch next to the reordered one, so the
// result is a list of products, duplicates meaning integer multiplicity.
func MulBosonProducts(a, b BosonProduct) []BosonProduct {
	branches := commuteLadder(a.annihilators, b.creators)
	out := make([]BosonProduct, 0, len(branches))
	for _, br := range branches {
		creators := append(append([]int(nil), a.creators...), br.creators...)
		annihilators := append(append([]int(nil), br.annihilators...), b.annihilators...)
		prod, _, err := BosonValidPair(creators, annihilators, coeff.NewComplex(1, 0))
		if err != nil {
			panic("bosons: internal error in MulBosonProducts: " + err.Error())
		}
		out = append(out, prod)
	}
	return out
}

type ladderBranch struct {
	creators     []int
	annihilators []int
}

// commuteLadder moves a sorted annihilator list right past a sorted creator
// list under [b_i, b†_j] = δ_ij. For the first creator with matching
// annihilators it recurses once per match on the contracted remainder, and
// adds the branch keeping both factors once; no match leaves the lists as
// the single reordered branch.
func commuteLadder(annihilators, creators []int) []ladderBranch {
	var result []ladderBranch
	found := false
	for ci, creator := range creators {
		for ai := range annihilators {
			if annihilators[ai] != creator {
				continue
			}
			restCreators := without(creators, ci)
			restAnnihilators := without(annihilators, ai)
			recursed := commuteLadder(restAnnihilators, restCreators)
			result = append(result, recursed...)
			if !found {
				for _, br := range recursed {
					result = append(result, ladderBranch{
						creators:     append(append([]int(nil), br.creators...), creator),
						annihilators: append(append([]int(nil), br.annihilators...), creator),
					})
				}
			}
			found = true
		}
		if found {
			break
		}
	}
	if !found {
		result = append(result, ladderBranch{
			creators:     append([]int(nil), creators...),
			annihilators: append([]int(nil), annihilators...),
		})
	}
	return result
}

func without(indices []int, drop int) []int {
	out := make([]int, 0, len(indices)-1)
	out = append(out, indices[:drop]...)
	return append(out, indices[drop+1:]...)
}
