package spins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/struqture/coeff"
	"github.com/katalvlaran/struqture/spins"
)

// TestGroupPauliLindbladOpenSystem joins compatible halves; a one-sided
// bound is adopted by the other half.
func TestGroupPauliLindbladOpenSystem(t *testing.T) {
	h := spins.NewPauliHamiltonian(spins.WithNumberSpins(4))
	n := spins.NewPauliLindbladNoiseOperator()

	os, err := spins.GroupPauliLindbladOpenSystem(h, n)
	require.NoError(t, err)

	bound, ok := os.Noise().DeclaredNumberSpins()
	require.True(t, ok, "noise half adopts the system bound")
	assert.Equal(t, 4, bound)
}

// TestGroupPauliLindbladOpenSystem_Mismatch rejects conflicting bounds.
func TestGroupPauliLindbladOpenSystem_Mismatch(t *testing.T) {
	h := spins.NewPauliHamiltonian(spins.WithNumberSpins(4))
	n := spins.NewPauliLindbladNoiseOperator(spins.WithNumberSpins(2))

	_, err := spins.GroupPauliLindbladOpenSystem(h, n)
	assert.ErrorIs(t, err, spins.ErrNumberSpinsMismatch)
}

// TestPauliLindbladOpenSystem_AddDelegation: SystemAdd and NoiseAdd mutate
// the respective halves in place.
func TestPauliLindbladOpenSystem_AddDelegation(t *testing.T) {
	os := spins.NewPauliLindbladOpenSystem()
	z := spins.NewPauliProduct().Z(0)
	x := spins.NewDecoherenceProduct().X(1)

	require.NoError(t, os.SystemAdd(z, coeff.NewFloat(2)))
	require.NoError(t, os.SystemAdd(z, coeff.NewFloat(1)))
	require.NoError(t, os.NoiseAdd(x, x, coeff.NewComplex(0.5, 0)))

	assert.Equal(t, coeff.NewFloat(3), os.System().Get(z))
	assert.Equal(t, coeff.NewComplex(0.5, 0), os.Noise().Get(x, x))
}

// TestPauliLindbladOpenSystem_MutateAndUngroup: System/Noise expose the live
// halves and Ungroup hands them back.
func TestPauliLindbladOpenSystem_MutateAndUngroup(t *testing.T) {
	os := spins.NewPauliLindbladOpenSystem()

	_, err := os.System().Set(spins.NewPauliProduct().Z(0), coeff.NewFloat(1))
	require.NoError(t, err)
	_, err = os.Noise().Set(
		spins.NewDecoherenceProduct().X(1),
		spins.NewDecoherenceProduct().X(1),
		coeff.NewComplex(0.5, 0),
	)
	require.NoError(t, err)

	assert.Equal(t, 2, os.CurrentNumberSpins())

	h, n := os.Ungroup()
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 1, n.Len())
}

// TestPauliLindbladOpenSystem_Truncate applies the threshold to both halves.
func TestPauliLindbladOpenSystem_Truncate(t *testing.T) {
	os := spins.NewPauliLindbladOpenSystem()
	_, err := os.System().Set(spins.NewPauliProduct().X(0), coeff.NewFloat(1e-9))
	require.NoError(t, err)
	x := spins.NewDecoherenceProduct().X(0)
	_, err = os.Noise().Set(x, x, coeff.NewComplex(1, 0))
	require.NoError(t, err)

	trunc := os.Truncate(1e-6)
	assert.Equal(t, 0, trunc.System().Len())
	assert.Equal(t, 1, trunc.Noise().Len())
}
