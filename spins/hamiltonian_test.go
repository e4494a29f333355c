package spins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/struqture/coeff"
	"github.com/katalvlaran/struqture/spins"
)

// TestPauliHamiltonian_RealByConstruction: the value type is real, so a
// Hamiltonian can never hold a complex coefficient.
func TestPauliHamiltonian_RealByConstruction(t *testing.T) {
	h := spins.NewPauliHamiltonian()
	key := spins.NewPauliProduct().Z(0).Z(1)

	_, err := h.Set(key, coeff.NewFloat(-0.5))
	require.NoError(t, err)
	require.NoError(t, h.Add(key, coeff.NewFloat(0.25)))
	assert.Equal(t, coeff.NewFloat(-0.25), h.Get(key))

	// Symbolic couplings are allowed: they bind to reals later.
	_, err = h.Set(spins.NewPauliProduct().X(0), coeff.Symbol("J"))
	require.NoError(t, err)
}

// TestPauliHamiltonian_SelfAdjoint: conjugation is the identity.
func TestPauliHamiltonian_SelfAdjoint(t *testing.T) {
	h := spins.NewPauliHamiltonian()
	key := spins.NewPauliProduct().Y(2)
	_, err := h.Set(key, coeff.NewFloat(1.5))
	require.NoError(t, err)

	adj := h.HermitianConjugate()
	assert.Equal(t, h.Get(key), adj.Get(key))
	assert.Equal(t, h.Len(), adj.Len())
}

// TestPauliHamiltonian_Bound enforces a declared number of spins.
func TestPauliHamiltonian_Bound(t *testing.T) {
	h := spins.NewPauliHamiltonian(spins.WithNumberSpins(2))
	err := h.Add(spins.NewPauliProduct().X(5), coeff.NewFloat(1))
	assert.ErrorIs(t, err, spins.ErrNumberSpinsExceeded)
	assert.Equal(t, 0, h.Len())
}

// TestPauliHamiltonian_ZeroPersists mirrors the operator behavior.
func TestPauliHamiltonian_ZeroPersists(t *testing.T) {
	h := spins.NewPauliHamiltonian()
	key := spins.NewPauliProduct().X(0)
	require.NoError(t, h.Add(key, coeff.NewFloat(2)))
	require.NoError(t, h.Add(key, coeff.NewFloat(-2)))

	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 0, h.Truncate(1e-12).Len())
}

// TestPauliHamiltonian_ToOperator widens into complex coefficients.
func TestPauliHamiltonian_ToOperator(t *testing.T) {
	h := spins.NewPauliHamiltonian()
	key := spins.NewPauliProduct().Z(3)
	_, err := h.Set(key, coeff.NewFloat(0.75))
	require.NoError(t, err)

	op := h.ToOperator()
	assert.Equal(t, coeff.NewComplex(0.75, 0), op.Get(key))
}

// TestPauliHamiltonian_Arithmetic covers Add/Sub/MulF.
func TestPauliHamiltonian_Arithmetic(t *testing.T) {
	key := spins.NewPauliProduct().X(0)
	a := spins.NewPauliHamiltonian()
	require.NoError(t, a.Add(key, coeff.NewFloat(1)))
	b := spins.NewPauliHamiltonian()
	require.NoError(t, b.Add(key, coeff.NewFloat(2)))

	require.NoError(t, a.AddHamiltonian(b))
	assert.Equal(t, coeff.NewFloat(3), a.Get(key))
	require.NoError(t, a.SubHamiltonian(b))
	assert.Equal(t, coeff.NewFloat(1), a.Get(key))
	assert.Equal(t, coeff.NewFloat(-2), a.MulF(coeff.NewFloat(-2)).Get(key))
}
