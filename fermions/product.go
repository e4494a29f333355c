package fermions

import (
	"fmt"

	"github.com/katalvlaran/struqture/algebra"
	"github.com/katalvlaran/struqture/coeff"
)

// FermionProduct is a normal-ordered product of fermionic creation and
// annihilation factors: all creators left of all annihilators, each index
// list strictly ascending. Fermionic factors anticommute, so reordering a
// list flips the sign once per transposition; constructors therefore refuse
// to reorder, and FermionValidPair applies the parity to the coefficient
// instead.
//
// The empty product is the identity.
type FermionProduct struct {
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

func checkAscending(indices []int, role string) error {
	for i := 1; i < len(indices); i++ {
		if indices[i] <= indices[i-1] {
			return fmt.Errorf("%w: %s %v", ErrIncorrectlyOrderedIndices, role, indices)
		}
	}
	return nil
}

// sortAndSignal insertion-sorts a copy of the index list, counting the
// transpositions it takes. A doubled index is Pauli exclusion and errors.
func sortAndSignal(indices []int, role string) ([]int, int, error) {
	out := append([]int(nil), indices...)
	swaps := 0
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
			swaps++
		}
	}
	for i := 1; i < len(out); i++ {
		if out[i] == out[i-1] {
			return nil, 0, fmt.Errorf("%w: %s index %d", ErrIndicesContainDoubles, role, out[i])
		}
	}
	return out, swaps, nil
}

// NewFermionProduct builds the product from creator and annihilator mode
// indices. Both lists must already be strictly ascending: sorting fermionic
// factors changes the sign, and a constructor has no coefficient to put it
// on.
func NewFermionProduct(creators, annihilators []int) (FermionProduct, error) {
	if err := checkModes(creators); err != nil {
		return FermionProduct{}, err
	}
	if err := checkModes(annihilators); err != nil {
		return FermionProduct{}, err
	}
	if err := checkAscending(creators, "creators"); err != nil {
		return FermionProduct{}, err
	}
	if err := checkAscending(annihilators, "annihilators"); err != nil {
		return FermionProduct{}, err
	}
	return FermionProduct{
		creators:     append([]int(nil), creators...),
		annihilators: append([]int(nil), annihilators...),
	}, nil
}

// FermionValidPair canonicalizes arbitrary creator/annihilator input
// together with a coefficient. Each list is sorted counting transpositions,
// and the combined parity (-1)^(swaps_c+swaps_a) multiplies the value.
// Doubled indices within one list error.
func FermionValidPair(creators, annihilators []int, value coeff.Complex) (FermionProduct, coeff.Complex, error) {
	if err := checkModes(creators); err != nil {
		return FermionProduct{}, coeff.Complex{}, err
	}
	if err := checkModes(annihilators); err != nil {
		return FermionProduct{}, coeff.Complex{}, err
	}
	c, swapsC, err := sortAndSignal(creators, "creator")
	if err != nil {
		return FermionProduct{}, coeff.Complex{}, err
	}
	a, swapsA, err := sortAndSignal(annihilators, "annihilator")
	if err != nil {
		return FermionProduct{}, coeff.Complex{}, err
	}
	sign := 1.0
	if (swapsC+swapsA)%2 != 0 {
		sign = -1.0
	}
	return FermionProduct{creators: c, annihilators: a}, value.MulSign(sign), nil
}

// Creators returns a copy of the creator index list.
func (p FermionProduct) Creators() []int { return append([]int(nil), p.creators...) }

// Annihilators returns a copy of the annihilator index list.
func (p FermionProduct) Annihilators() []int { return append([]int(nil), p.annihilators...) }

// IsIdentity reports whether the product carries no factors.
func (p FermionProduct) IsIdentity() bool {
	return len(p.creators) == 0 && len(p.annihilators) == 0
}

// CurrentNumberModes returns the highest touched mode index plus one.
func (p FermionProduct) CurrentNumberModes() int {
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

// HermitianConjugate returns the adjoint and the parity of putting it back
// into canonical order: the reversed annihilators become the creators and
// vice versa, and re-sorting those reversed lists costs a transposition per
// inverted pair.
func (p FermionProduct) HermitianConjugate() (FermionProduct, float64) {
	creators := reversedCopy(p.annihilators)
	annihilators := reversedCopy(p.creators)
	conj, value, err := FermionValidPair(creators, annihilators, coeff.NewComplex(1, 0))
	if err != nil {
		panic("fermions: internal error in HermitianConjugate: " + err.Error())
	}
	sign, _ := value.Re.Float64()
	return conj, sign
}

func reversedCopy(indices []int) []int {
	out := make([]int, len(indices))
	for i, v := range indices {
		out[len(indices)-1-i] = v
	}
	return out
}

// IsNaturalHermitian reports whether the product equals its adjoint.
func (p FermionProduct) IsNaturalHermitian() bool {
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
func (p FermionProduct) String() string {
	return algebra.FormatLadder(p.creators, p.annihilators)
}

// ParseFermionProduct parses the canonical string form.
func ParseFermionProduct(s string) (FermionProduct, error) {
	creators, annihilators, err := algebra.ParseLadder(s)
	if err != nil {
		return FermionProduct{}, fmt.Errorf("%w: %v", ErrMalformedProduct, err)
	}
	return NewFermionProduct(creators, annihilators)
}

// MarshalText encodes the canonical string form.
func (p FermionProduct) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText parses the canonical string form.
func (p *FermionProduct) UnmarshalText(text []byte) error {
	parsed, err := ParseFermionProduct(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// FermionTerm is one branch of a normal-ordered product: the canonical
// product and the real prefactor the anticommutations accumulated.
type FermionTerm struct {
	Product   FermionProduct
	Prefactor float64
}

// MulFermionProducts normal-orders the product of two FermionProducts under
// {f_i, f†_j} = δ_ij. Each matching mode contributes a contracted branch
// next to the reordered one, every branch carrying its anticommutation
// parity. Branches where a doubled index survives vanish by Pauli exclusion.
func MulFermionProducts(a, b FermionProduct) []FermionTerm {
	branches := commuteFermionLadder(a.annihilators, b.creators)
	out := make([]FermionTerm, 0, len(branches))
	for _, br := range branches {
		creators := append(append([]int(nil), a.creators...), br.creators...)
		annihilators := append(append([]int(nil), br.annihilators...), b.annihilators...)
		prod, value, err := FermionValidPair(creators, annihilators, coeff.NewComplex(br.sign, 0))
		if err != nil {
			// A doubled creator or annihilator squares a fermionic factor
			// to zero.
			continue
		}
		prefac, _ := value.Re.Float64()
		out = append(out, FermionTerm{Product: prod, Prefactor: prefac})
	}
	return out
}

type signedBranch struct {
	creators     []int
	annihilators []int
	sign         float64
}

// commuteFermionLadder moves an annihilator list right past a creator list
// under the anticommutator, tracking parity. The lists are kept in the
// order the swaps leave them; FermionValidPair re-sorts later and absorbs
// that parity too. For the first creator with a matching annihilator it
// recurses on the contracted remainder and adds the branch keeping both
// factors, the kept creator moving to the front of the creators and the end
// of the annihilators; no match leaves the single fully commuted branch
// with the parity of swapping every annihilator past every creator.
func commuteFermionLadder(annihilators, creators []int) []signedBranch {
	var result []signedBranch
	origParity := paritySign(len(creators) * len(annihilators))
	for ci, creator := range creators {
		ai := indexOf(annihilators, creator)
		if ai < 0 {
			continue
		}
		// The contraction swaps past the annihilators before ai and the
		// creators after ci.
		offsetParity := paritySign(len(annihilators) - ai + ci - 1)
		recursed := commuteFermionLadder(without(annihilators, ai), without(creators, ci))
		commutedParity := paritySign(2*len(annihilators) + len(creators) - ai - 2 + ci)
		for _, br := range recursed {
			result = append(result, signedBranch{
				creators:     br.creators,
				annihilators: br.annihilators,
				sign:         br.sign * offsetParity,
			})
			result = append(result, signedBranch{
				creators:     append([]int{creator}, br.creators...),
				annihilators: append(append([]int(nil), br.annihilators...), creator),
				sign:         br.sign * commutedParity,
			})
		}
		return result
	}
	return []signedBranch{{
		creators:     append([]int(nil), creators...),
		annihilators: append([]int(nil), annihilators...),
		sign:         origParity,
	}}
}

func paritySign(n int) float64 {
	if n%2 == 0 {
		return 1
	}
	return -1
}

func indexOf(indices []int, want int) int {
	for i, v := range indices {
		if v == want {
			return i
		}
	}
	return -1
}

func without(indices []int, drop int) []int {
	out := make([]int, 0, len(indices)-1)
	out = append(out, indices[:drop]...)
	return append(out, indices[drop+1:]...)
}
