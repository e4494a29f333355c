package spins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/struqture/coeff"
	"github.com/katalvlaran/struqture/spins"
)

// TestPauliOperator_SetGetAdd covers the basic container contract.
func TestPauliOperator_SetGetAdd(t *testing.T) {
	op := spins.NewPauliOperator()
	key := spins.NewPauliProduct().X(0).Z(2)

	assert.True(t, op.Get(key).IsZero(), "absent key reads as numeric zero")

	prev, err := op.Set(key, coeff.NewComplex(0.5, 0))
	require.NoError(t, err)
	assert.True(t, prev.IsZero())

	require.NoError(t, op.Add(key, coeff.NewComplex(0.25, 1)))
	assert.Equal(t, coeff.NewComplex(0.75, 1), op.Get(key))
	assert.Equal(t, 1, op.Len())

	removed, ok := op.Remove(key)
	require.True(t, ok)
	assert.Equal(t, coeff.NewComplex(0.75, 1), removed)
	assert.Equal(t, 0, op.Len())
}

// TestPauliOperator_EquivalentKeysCollapse: physically equal products built
// in different orders land on the same term.
func TestPauliOperator_EquivalentKeysCollapse(t *testing.T) {
	op := spins.NewPauliOperator()
	require.NoError(t, op.Add(spins.NewPauliProduct().X(0).Y(3), coeff.NewComplex(1, 0)))
	require.NoError(t, op.Add(spins.NewPauliProduct().Y(3).X(0), coeff.NewComplex(2, 0)))

	assert.Equal(t, 1, op.Len())
	assert.Equal(t, coeff.NewComplex(3, 0), op.Get(spins.NewPauliProduct().X(0).Y(3)))
}

// TestPauliOperator_ZeroPersists: setting or cancelling to numeric zero
// keeps the entry; only Truncate removes it.
func TestPauliOperator_ZeroPersists(t *testing.T) {
	op := spins.NewPauliOperator()
	key := spins.NewPauliProduct().Z(1)

	require.NoError(t, op.Add(key, coeff.NewComplex(1, 0)))
	require.NoError(t, op.Add(key, coeff.NewComplex(-1, 0)))
	assert.Equal(t, 1, op.Len(), "cancelled term persists")
	assert.True(t, op.Get(key).IsZero())

	truncated := op.Truncate(1e-12)
	assert.Equal(t, 0, truncated.Len())
	assert.Equal(t, 1, op.Len(), "Truncate returns a new container")
}

// TestPauliOperator_NumberSpinsBound rejects keys beyond the declared bound
// and leaves the container unchanged on failure.
func TestPauliOperator_NumberSpinsBound(t *testing.T) {
	op := spins.NewPauliOperator(spins.WithNumberSpins(3))

	require.NoError(t, op.Add(spins.NewPauliProduct().Z(2), coeff.NewComplex(1, 0)))

	err := op.Add(spins.NewPauliProduct().Z(3), coeff.NewComplex(1, 0))
	assert.ErrorIs(t, err, spins.ErrNumberSpinsExceeded)
	assert.Equal(t, 1, op.Len())

	n, ok := op.DeclaredNumberSpins()
	require.True(t, ok)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, op.CurrentNumberSpins(), "declared bound floors the current count")
}

// TestPauliOperator_TruncateKeepsSymbolic: a threshold cannot discard an
// unbound parameter.
func TestPauliOperator_TruncateKeepsSymbolic(t *testing.T) {
	op := spins.NewPauliOperator()
	big := spins.NewPauliProduct().X(0)
	tiny := spins.NewPauliProduct().Y(0)
	sym := spins.NewPauliProduct().Z(0)

	_, err := op.Set(big, coeff.NewComplex(1, 0))
	require.NoError(t, err)
	_, err = op.Set(tiny, coeff.NewComplex(1e-9, 0))
	require.NoError(t, err)
	_, err = op.Set(sym, coeff.FromFloat(coeff.Symbol("g")))
	require.NoError(t, err)

	truncated := op.Truncate(1e-6)
	assert.Equal(t, 2, truncated.Len())
	assert.True(t, truncated.Get(tiny).IsZero())
	assert.Equal(t, coeff.Symbol("g"), truncated.Get(sym).Re)
}

// TestPauliOperator_HermitianConjugate conjugates coefficients in place of
// the self-adjoint keys.
func TestPauliOperator_HermitianConjugate(t *testing.T) {
	op := spins.NewPauliOperator()
	key := spins.NewPauliProduct().X(0)
	require.NoError(t, op.Add(key, coeff.NewComplex(1, 2)))

	adj := op.HermitianConjugate()
	assert.Equal(t, coeff.NewComplex(1, -2), adj.Get(key))

	// (A†)† == A.
	back := adj.HermitianConjugate()
	assert.Equal(t, coeff.NewComplex(1, 2), back.Get(key))
}

// TestPauliOperator_MulOperator folds multiplication phases into the
// coefficients: (1·X)(1·Y) = i·Z.
func TestPauliOperator_MulOperator(t *testing.T) {
	a := spins.NewPauliOperator()
	require.NoError(t, a.Add(spins.NewPauliProduct().X(0), coeff.NewComplex(1, 0)))
	b := spins.NewPauliOperator()
	require.NoError(t, b.Add(spins.NewPauliProduct().Y(0), coeff.NewComplex(1, 0)))

	prod := a.MulOperator(b)
	assert.Equal(t, 1, prod.Len())
	assert.Equal(t, coeff.NewComplex(0, 1), prod.Get(spins.NewPauliProduct().Z(0)))
}

// TestPauliOperator_AddSubScalar covers the linear-algebra conveniences.
func TestPauliOperator_AddSubScalar(t *testing.T) {
	key := spins.NewPauliProduct().X(1)
	a := spins.NewPauliOperator()
	require.NoError(t, a.Add(key, coeff.NewComplex(1, 0)))
	b := spins.NewPauliOperator()
	require.NoError(t, b.Add(key, coeff.NewComplex(0, 1)))

	require.NoError(t, a.AddOperator(b))
	assert.Equal(t, coeff.NewComplex(1, 1), a.Get(key))

	require.NoError(t, a.SubOperator(b))
	assert.Equal(t, coeff.NewComplex(1, 0), a.Get(key))

	scaled := a.MulScalar(coeff.NewComplex(0, 2))
	assert.Equal(t, coeff.NewComplex(0, 2), scaled.Get(key))
}
