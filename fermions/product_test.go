package fermions_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/struqture/coeff"
	"github.com/katalvlaran/struqture/fermions"
)

// TestNewFermionProduct demands strictly ascending lists; reordering a
// fermionic product silently would change its sign.
func TestNewFermionProduct(t *testing.T) {
	p, err := fermions.NewFermionProduct([]int{0, 2}, []int{1, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, p.Creators())
	assert.Equal(t, []int{1, 3}, p.Annihilators())
	assert.Equal(t, "c0c2a1a3", p.String())
	assert.Equal(t, 4, p.CurrentNumberModes())

	_, err = fermions.NewFermionProduct([]int{2, 0}, nil)
	assert.ErrorIs(t, err, fermions.ErrIncorrectlyOrderedIndices)

	_, err = fermions.NewFermionProduct(nil, []int{1, 1})
	assert.ErrorIs(t, err, fermions.ErrIncorrectlyOrderedIndices)

	_, err = fermions.NewFermionProduct([]int{-1}, nil)
	assert.ErrorIs(t, err, fermions.ErrNegativeIndex)
}

// TestFermionValidPair sorts each list and puts the transposition parity on
// the coefficient; doubled indices are Pauli exclusion.
func TestFermionValidPair(t *testing.T) {
	p, out, err := fermions.FermionValidPair([]int{1, 0}, []int{2}, coeff.NewComplex(2, 0))
	require.NoError(t, err)
	assert.Equal(t, "c0c1a2", p.String())
	assert.Equal(t, coeff.NewComplex(-2, 0), out)

	// Two swaps cancel.
	p, out, err = fermions.FermionValidPair([]int{1, 0}, []int{3, 2}, coeff.NewComplex(2, 0))
	require.NoError(t, err)
	assert.Equal(t, "c0c1a2a3", p.String())
	assert.Equal(t, coeff.NewComplex(2, 0), out)

	_, _, err = fermions.FermionValidPair([]int{0, 0}, nil, coeff.NewComplex(1, 0))
	assert.ErrorIs(t, err, fermions.ErrIndicesContainDoubles)
}

// TestFermionValidPair_Idempotent: canonical input passes through with the
// coefficient unchanged.
func TestFermionValidPair_Idempotent(t *testing.T) {
	v := coeff.NewComplex(1, 1)
	p, out, err := fermions.FermionValidPair([]int{0, 1}, []int{0, 2}, v)
	require.NoError(t, err)
	assert.Equal(t, v, out)

	again, out2, err := fermions.FermionValidPair(p.Creators(), p.Annihilators(), out)
	require.NoError(t, err)
	assert.Equal(t, p.String(), again.String())
	assert.Equal(t, out, out2)
}

// TestFermionProduct_HermitianConjugate reverses the roles with the
// re-sorting parity; the two signs of a double conjugation multiply to 1.
func TestFermionProduct_HermitianConjugate(t *testing.T) {
	p, err := fermions.NewFermionProduct([]int{0}, []int{1, 2})
	require.NoError(t, err)

	conj, sign := p.HermitianConjugate()
	assert.Equal(t, "c1c2a0", conj.String())
	assert.Equal(t, -1.0, sign)

	back, sign2 := conj.HermitianConjugate()
	assert.Equal(t, p.String(), back.String())
	assert.Equal(t, 1.0, sign*sign2)

	diag, err := fermions.NewFermionProduct([]int{0, 1}, []int{0, 1})
	require.NoError(t, err)
	assert.True(t, diag.IsNaturalHermitian())
	assert.False(t, p.IsNaturalHermitian())
}

// TestParseFermionProduct round-trips and rejects malformed or unordered
// strings.
func TestParseFermionProduct(t *testing.T) {
	p, err := fermions.ParseFermionProduct("c0c1a0a2")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, p.Creators())
	assert.Equal(t, []int{0, 2}, p.Annihilators())

	id, err := fermions.ParseFermionProduct("I")
	require.NoError(t, err)
	assert.True(t, id.IsIdentity())

	for _, s := range []string{"", "f0", "a0c1", "c", "cxa1"} {
		_, err := fermions.ParseFermionProduct(s)
		assert.ErrorIs(t, err, fermions.ErrMalformedProduct, s)
	}

	_, err = fermions.ParseFermionProduct("c1c0")
	assert.ErrorIs(t, err, fermions.ErrIncorrectlyOrderedIndices)
}

type termVector struct {
	product string
	prefac  float64
}

func termVectors(ts []fermions.FermionTerm) []termVector {
	out := make([]termVector, len(ts))
	for i, term := range ts {
		out[i] = termVector{product: term.Product.String(), prefac: term.Prefactor}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].product < out[j].product })
	return out
}

func mustFermion(t *testing.T, creators, annihilators []int) fermions.FermionProduct {
	t.Helper()
	p, err := fermions.NewFermionProduct(creators, annihilators)
	require.NoError(t, err)
	return p
}

// TestMulFermionProducts applies the anticommutator: f_0 f†_0 = 1 - f†_0 f_0.
func TestMulFermionProducts(t *testing.T) {
	a := mustFermion(t, nil, []int{0})
	b := mustFermion(t, []int{0}, nil)

	got := termVectors(fermions.MulFermionProducts(a, b))
	assert.Equal(t, []termVector{{"I", 1}, {"c0a0", -1}}, got)
}

// TestMulFermionProducts_NoOverlap: an odd number of crossings flips the
// sign of the single reordered branch.
func TestMulFermionProducts_NoOverlap(t *testing.T) {
	a := mustFermion(t, nil, []int{0, 2, 4})
	b := mustFermion(t, []int{1, 3, 5}, nil)

	got := termVectors(fermions.MulFermionProducts(a, b))
	assert.Equal(t, []termVector{{"c1c3c5a0a2a4", -1}}, got)
}

// TestMulFermionProducts_PartialOverlap: one shared mode out of two yields
// the contracted branch and the fully reordered one, each with its parity.
func TestMulFermionProducts_PartialOverlap(t *testing.T) {
	a := mustFermion(t, nil, []int{1, 20})
	b := mustFermion(t, []int{1, 30}, nil)

	got := termVectors(fermions.MulFermionProducts(a, b))
	assert.Equal(t, []termVector{{"c1c30a1a20", 1}, {"c30a20", 1}}, got)
}

// TestMulFermionProducts_PauliExclusion: a squared factor vanishes, dropping
// the branch that carries it, or the whole product.
func TestMulFermionProducts_PauliExclusion(t *testing.T) {
	p := mustFermion(t, []int{0}, nil)
	assert.Empty(t, fermions.MulFermionProducts(p, p))

	// The uncontracted branch doubles f_0 and vanishes; the contracted one
	// survives.
	a := mustFermion(t, nil, []int{0, 1})
	b := mustFermion(t, []int{0}, []int{0})
	got := termVectors(fermions.MulFermionProducts(a, b))
	assert.Equal(t, []termVector{{"a0a1", 1}}, got)
}

// TestMulFermionProducts_Contraction: f†_0 f_1 f†_1 = f†_0 - f†_0 f†_1 f_1.
func TestMulFermionProducts_Contraction(t *testing.T) {
	a := mustFermion(t, []int{0}, []int{1})
	b := mustFermion(t, []int{1}, nil)

	got := termVectors(fermions.MulFermionProducts(a, b))
	assert.Equal(t, []termVector{{"c0", 1}, {"c0c1a1", -1}}, got)
}
