package bosons_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/struqture/bosons"
	"github.com/katalvlaran/struqture/coeff"
)

// TestNewBosonProduct sorts each index list; bosonic reordering is free.
func TestNewBosonProduct(t *testing.T) {
	p, err := bosons.NewBosonProduct([]int{2, 0}, []int{3, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, p.Creators())
	assert.Equal(t, []int{1, 1, 3}, p.Annihilators())
	assert.Equal(t, "c0c2a1a1a3", p.String())
	assert.Equal(t, 4, p.CurrentNumberModes())

	_, err = bosons.NewBosonProduct([]int{-1}, nil)
	assert.ErrorIs(t, err, bosons.ErrNegativeIndex)
}

// TestBosonValidPair passes the coefficient through unchanged.
func TestBosonValidPair(t *testing.T) {
	v := coeff.NewComplex(2, 1)
	p, out, err := bosons.BosonValidPair([]int{3, 0}, []int{1}, v)
	require.NoError(t, err)
	assert.Equal(t, "c0c3a1", p.String())
	assert.Equal(t, v, out)
}

// TestBosonProduct_Canonical: equal physical products from scrambled input
// render identically, and canonicalization is idempotent.
func TestBosonProduct_Canonical(t *testing.T) {
	a, err := bosons.NewBosonProduct([]int{1, 0}, []int{2})
	require.NoError(t, err)
	b, err := bosons.NewBosonProduct([]int{0, 1}, []int{2})
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())

	again, err := bosons.NewBosonProduct(a.Creators(), a.Annihilators())
	require.NoError(t, err)
	assert.Equal(t, a.String(), again.String())
}

// TestBosonProduct_HermitianConjugate swaps the lists with sign +1; applying
// it twice restores the product.
func TestBosonProduct_HermitianConjugate(t *testing.T) {
	p, err := bosons.NewBosonProduct([]int{0, 1}, []int{2})
	require.NoError(t, err)

	conj, sign := p.HermitianConjugate()
	assert.Equal(t, 1.0, sign)
	assert.Equal(t, "c2a0a1", conj.String())

	back, sign2 := conj.HermitianConjugate()
	assert.Equal(t, p.String(), back.String())
	assert.Equal(t, 1.0, sign*sign2)

	diag, err := bosons.NewBosonProduct([]int{0}, []int{0})
	require.NoError(t, err)
	assert.True(t, diag.IsNaturalHermitian())
	assert.False(t, p.IsNaturalHermitian())
}

// TestParseBosonProduct round-trips and rejects malformed strings.
func TestParseBosonProduct(t *testing.T) {
	p, err := bosons.ParseBosonProduct("c0c1a0a2")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, p.Creators())
	assert.Equal(t, []int{0, 2}, p.Annihilators())

	id, err := bosons.ParseBosonProduct("I")
	require.NoError(t, err)
	assert.True(t, id.IsIdentity())

	for _, s := range []string{"", "b0", "a0c1", "c", "cxa1"} {
		_, err := bosons.ParseBosonProduct(s)
		assert.ErrorIs(t, err, bosons.ErrMalformedProduct, s)
	}
}

func productStrings(ps []bosons.BosonProduct) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	sort.Strings(out)
	return out
}

// TestMulBosonProducts applies the commutator: b_0 b†_0 = b†_0 b_0 + 1.
func TestMulBosonProducts(t *testing.T) {
	a, err := bosons.NewBosonProduct(nil, []int{0})
	require.NoError(t, err)
	b, err := bosons.NewBosonProduct([]int{0}, nil)
	require.NoError(t, err)

	got := productStrings(bosons.MulBosonProducts(a, b))
	assert.Equal(t, []string{"I", "c0a0"}, got)
}

// TestMulBosonProducts_PartialOverlap: one shared mode out of two yields the
// fully reordered branch and the contracted branch.
func TestMulBosonProducts_PartialOverlap(t *testing.T) {
	a, err := bosons.NewBosonProduct(nil, []int{1, 20})
	require.NoError(t, err)
	b, err := bosons.NewBosonProduct([]int{1, 30}, nil)
	require.NoError(t, err)

	got := productStrings(bosons.MulBosonProducts(a, b))
	assert.Equal(t, []string{"c1c30a1a20", "c30a20"}, got)
}

// TestMulBosonProducts_NoOverlap simply reorders.
func TestMulBosonProducts_NoOverlap(t *testing.T) {
	a, err := bosons.NewBosonProduct([]int{0}, []int{2})
	require.NoError(t, err)
	b, err := bosons.NewBosonProduct([]int{3}, []int{1})
	require.NoError(t, err)

	got := productStrings(bosons.MulBosonProducts(a, b))
	assert.Equal(t, []string{"c0c3a1a2"}, got)
}

// TestMulBosonProducts_DoubleContraction: b_0 b_0 · b†_0 contracts with
// multiplicity two.
func TestMulBosonProducts_DoubleContraction(t *testing.T) {
	a, err := bosons.NewBosonProduct(nil, []int{0, 0})
	require.NoError(t, err)
	b, err := bosons.NewBosonProduct([]int{0}, nil)
	require.NoError(t, err)

	got := productStrings(bosons.MulBosonProducts(a, b))
	assert.Equal(t, []string{"a0", "a0", "c0a0a0"}, got)
}
