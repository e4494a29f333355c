package bosons_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/struqture/bosons"
	"github.com/katalvlaran/struqture/coeff"
)

func mustBoson(t *testing.T, creators, annihilators []int) bosons.BosonProduct {
	t.Helper()
	p, err := bosons.NewBosonProduct(creators, annihilators)
	require.NoError(t, err)
	return p
}

func mustHermitian(t *testing.T, creators, annihilators []int) bosons.HermitianBosonProduct {
	t.Helper()
	p, err := bosons.NewHermitianBosonProduct(creators, annihilators)
	require.NoError(t, err)
	return p
}

// TestBosonOperator_Basics covers the container contract including zero
// persistence and the mode bound.
func TestBosonOperator_Basics(t *testing.T) {
	op := bosons.NewBosonOperator(bosons.WithNumberModes(4))
	key := mustBoson(t, []int{0}, []int{1})

	require.NoError(t, op.Add(key, coeff.NewComplex(1, 0)))
	require.NoError(t, op.Add(key, coeff.NewComplex(-1, 0)))
	assert.Equal(t, 1, op.Len(), "cancelled term persists")
	assert.Equal(t, 0, op.Truncate(1e-12).Len())

	err := op.Add(mustBoson(t, []int{4}, nil), coeff.NewComplex(1, 0))
	assert.ErrorIs(t, err, bosons.ErrNumberModesExceeded)
	assert.Equal(t, 4, op.CurrentNumberModes())
}

// TestBosonOperator_HermitianConjugate conjugates keys and coefficients;
// double conjugation restores the operator.
func TestBosonOperator_HermitianConjugate(t *testing.T) {
	op := bosons.NewBosonOperator()
	key := mustBoson(t, []int{0}, []int{1, 2})
	require.NoError(t, op.Add(key, coeff.NewComplex(1, 1)))

	adj := op.HermitianConjugate()
	conjKey := mustBoson(t, []int{1, 2}, []int{0})
	assert.Equal(t, coeff.NewComplex(1, -1), adj.Get(conjKey))
	assert.True(t, adj.Get(key).IsZero())

	back := adj.HermitianConjugate()
	assert.Equal(t, coeff.NewComplex(1, 1), back.Get(key))
}

// TestBosonOperator_MulOperator: (b_0)(b†_0) = b†_0 b_0 + 1 with the
// coefficients multiplied through.
func TestBosonOperator_MulOperator(t *testing.T) {
	a := bosons.NewBosonOperator()
	require.NoError(t, a.Add(mustBoson(t, nil, []int{0}), coeff.NewComplex(2, 0)))
	b := bosons.NewBosonOperator()
	require.NoError(t, b.Add(mustBoson(t, []int{0}, nil), coeff.NewComplex(3, 0)))

	prod := a.MulOperator(b)
	assert.Equal(t, coeff.NewComplex(6, 0), prod.Get(mustBoson(t, []int{0}, []int{0})))
	assert.Equal(t, coeff.NewComplex(6, 0), prod.Get(mustBoson(t, nil, nil)))
}

// TestBosonHamiltonian_HermitianValueCheck: a naturally Hermitian key
// rejects a numerically non-real coefficient, on Set and on accumulated Add.
func TestBosonHamiltonian_HermitianValueCheck(t *testing.T) {
	h := bosons.NewBosonHamiltonian()
	diag := mustHermitian(t, []int{0}, []int{0})
	off := mustHermitian(t, []int{0}, []int{1})

	_, err := h.Set(diag, coeff.NewComplex(1, 0.5))
	assert.ErrorIs(t, err, bosons.ErrNonHermitianValue)
	assert.Equal(t, 0, h.Len(), "failed set leaves the container unchanged")

	_, err = h.Set(diag, coeff.NewComplex(1, 0))
	require.NoError(t, err)
	err = h.Add(diag, coeff.NewComplex(0, 0.5))
	assert.ErrorIs(t, err, bosons.ErrNonHermitianValue)
	assert.Equal(t, coeff.NewComplex(1, 0), h.Get(diag))

	// Off-diagonal keys may carry complex coefficients.
	_, err = h.Set(off, coeff.NewComplex(1, 2))
	require.NoError(t, err)

	// Symbolic imaginary parts are trusted until bound.
	err = h.Add(diag, coeff.ComplexOf(coeff.NewFloat(0), coeff.Symbol("eta")))
	require.NoError(t, err)
}

// TestBosonHamiltonian_AddProduct resolves plain products onto the
// Hermitian key, conjugating when the conjugate member was given.
func TestBosonHamiltonian_AddProduct(t *testing.T) {
	h := bosons.NewBosonHamiltonian()
	key := mustHermitian(t, []int{0}, []int{1})

	// The conjugate member c1a0 resolves to c0a1 with a conjugated value.
	require.NoError(t, h.AddProduct(mustBoson(t, []int{1}, []int{0}), coeff.NewComplex(1, 2)))
	assert.Equal(t, coeff.NewComplex(1, -2), h.Get(key))

	// The stored member accumulates as-is.
	require.NoError(t, h.AddProduct(mustBoson(t, []int{0}, []int{1}), coeff.NewComplex(1, 2)))
	assert.Equal(t, coeff.NewComplex(2, 0), h.Get(key))
}

// TestBosonHamiltonian_ToOperator expands each key into its explicit
// conjugate pair.
func TestBosonHamiltonian_ToOperator(t *testing.T) {
	h := bosons.NewBosonHamiltonian()
	_, err := h.Set(mustHermitian(t, []int{0}, []int{1}), coeff.NewComplex(0, 1))
	require.NoError(t, err)
	_, err = h.Set(mustHermitian(t, []int{2}, []int{2}), coeff.NewComplex(0.5, 0))
	require.NoError(t, err)

	op := h.ToOperator()
	assert.Equal(t, 3, op.Len())
	assert.Equal(t, coeff.NewComplex(0, 1), op.Get(mustBoson(t, []int{0}, []int{1})))
	assert.Equal(t, coeff.NewComplex(0, -1), op.Get(mustBoson(t, []int{1}, []int{0})))
	assert.Equal(t, coeff.NewComplex(0.5, 0), op.Get(mustBoson(t, []int{2}, []int{2})))
}

// TestBosonLindbladNoiseOperator_Basics: identity rejection and pair keys.
func TestBosonLindbladNoiseOperator_Basics(t *testing.T) {
	no := bosons.NewBosonLindbladNoiseOperator()
	b0 := mustBoson(t, nil, []int{0})
	id := mustBoson(t, nil, nil)

	_, err := no.Set(id, b0, coeff.NewComplex(1, 0))
	assert.ErrorIs(t, err, bosons.ErrIdentityNoiseKey)

	_, err = no.Set(b0, b0, coeff.NewComplex(0.3, 0))
	require.NoError(t, err)
	assert.Equal(t, coeff.NewComplex(0.3, 0), no.Get(b0, b0))

	adj := no.HermitianConjugate()
	assert.Equal(t, coeff.NewComplex(0.3, 0), adj.Get(b0, b0))
}

// TestGroupBosonLindbladOpenSystem reconciles declared bounds.
func TestGroupBosonLindbladOpenSystem(t *testing.T) {
	h := bosons.NewBosonHamiltonian(bosons.WithNumberModes(3))
	n := bosons.NewBosonLindbladNoiseOperator()

	os, err := bosons.GroupBosonLindbladOpenSystem(h, n)
	require.NoError(t, err)
	bound, ok := os.Noise().DeclaredNumberModes()
	require.True(t, ok)
	assert.Equal(t, 3, bound)
	// The adoption lands on the passed half itself, not on a copy.
	bound, ok = n.DeclaredNumberModes()
	require.True(t, ok)
	assert.Equal(t, 3, bound)

	_, err = bosons.GroupBosonLindbladOpenSystem(
		bosons.NewBosonHamiltonian(bosons.WithNumberModes(2)),
		bosons.NewBosonLindbladNoiseOperator(bosons.WithNumberModes(5)),
	)
	assert.ErrorIs(t, err, bosons.ErrNumberModesMismatch)
}

// TestBosonLindbladOpenSystem_AddDelegation: SystemAdd, SystemAddProduct and
// NoiseAdd mutate the respective halves in place.
func TestBosonLindbladOpenSystem_AddDelegation(t *testing.T) {
	os := bosons.NewBosonLindbladOpenSystem()
	hop, err := bosons.NewHermitianBosonProduct([]int{0}, []int{1})
	require.NoError(t, err)
	b0 := mustBoson(t, nil, []int{0})

	require.NoError(t, os.SystemAdd(hop, coeff.NewComplex(1, 0)))
	// The conjugate member resolves back onto the same key with the
	// coefficient conjugated.
	require.NoError(t, os.SystemAddProduct(mustBoson(t, []int{1}, []int{0}), coeff.NewComplex(0, 1)))
	assert.Equal(t, coeff.NewComplex(1, -1), os.System().Get(hop))

	require.NoError(t, os.NoiseAdd(b0, b0, coeff.NewComplex(0.5, 0)))
	assert.Equal(t, coeff.NewComplex(0.5, 0), os.Noise().Get(b0, b0))
}
