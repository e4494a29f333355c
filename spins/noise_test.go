package spins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/struqture/coeff"
	"github.com/katalvlaran/struqture/spins"
)

// TestPauliLindbladNoiseOperator_PairKeys stores rates under ordered pairs:
// (l, r) and (r, l) are distinct entries.
func TestPauliLindbladNoiseOperator_PairKeys(t *testing.T) {
	no := spins.NewPauliLindbladNoiseOperator()
	l := spins.NewDecoherenceProduct().X(0)
	r := spins.NewDecoherenceProduct().Z(1)

	_, err := no.Set(l, r, coeff.NewComplex(0.1, 0))
	require.NoError(t, err)

	assert.Equal(t, coeff.NewComplex(0.1, 0), no.Get(l, r))
	assert.True(t, no.Get(r, l).IsZero(), "pair order matters")
	assert.Equal(t, 1, no.Len())
}

// TestPauliLindbladNoiseOperator_RejectsIdentity: identity products carry no
// dissipation and cannot index a rate.
func TestPauliLindbladNoiseOperator_RejectsIdentity(t *testing.T) {
	no := spins.NewPauliLindbladNoiseOperator()
	id := spins.NewDecoherenceProduct()
	x := spins.NewDecoherenceProduct().X(0)

	_, err := no.Set(id, x, coeff.NewComplex(1, 0))
	assert.ErrorIs(t, err, spins.ErrIdentityNoiseKey)
	err = no.Add(x, id, coeff.NewComplex(1, 0))
	assert.ErrorIs(t, err, spins.ErrIdentityNoiseKey)
	assert.Equal(t, 0, no.Len())
}

// TestPauliLindbladNoiseOperator_Bound checks both sides of the pair.
func TestPauliLindbladNoiseOperator_Bound(t *testing.T) {
	no := spins.NewPauliLindbladNoiseOperator(spins.WithNumberSpins(2))
	ok := spins.NewDecoherenceProduct().X(0)
	far := spins.NewDecoherenceProduct().Z(4)

	_, err := no.Set(ok, far, coeff.NewComplex(1, 0))
	assert.ErrorIs(t, err, spins.ErrNumberSpinsExceeded)
	_, err = no.Set(far, ok, coeff.NewComplex(1, 0))
	assert.ErrorIs(t, err, spins.ErrNumberSpinsExceeded)
}

// TestPauliLindbladNoiseOperator_HermitianConjugate transposes the rate
// matrix and conjugates the rates.
func TestPauliLindbladNoiseOperator_HermitianConjugate(t *testing.T) {
	no := spins.NewPauliLindbladNoiseOperator()
	l := spins.NewDecoherenceProduct().X(0)
	r := spins.NewDecoherenceProduct().IY(0)
	_, err := no.Set(l, r, coeff.NewComplex(0, 1))
	require.NoError(t, err)

	adj := no.HermitianConjugate()
	assert.Equal(t, coeff.NewComplex(0, -1), adj.Get(r, l))
	assert.True(t, adj.Get(l, r).IsZero())
}

// TestPauliLindbladNoiseOperator_TruncateAndScale: threshold filtering and
// real scaling of the rate matrix.
func TestPauliLindbladNoiseOperator_TruncateAndScale(t *testing.T) {
	no := spins.NewPauliLindbladNoiseOperator()
	x := spins.NewDecoherenceProduct().X(0)
	z := spins.NewDecoherenceProduct().Z(0)
	_, err := no.Set(x, x, coeff.NewComplex(1, 0))
	require.NoError(t, err)
	_, err = no.Set(z, z, coeff.NewComplex(1e-9, 0))
	require.NoError(t, err)

	trunc := no.Truncate(1e-6)
	assert.Equal(t, 1, trunc.Len())

	scaled := no.MulF(coeff.NewFloat(2))
	assert.Equal(t, coeff.NewComplex(2, 0), scaled.Get(x, x))
}
