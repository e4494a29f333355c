package spins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/struqture/spins"
)

// TestPauliProduct_Builder chains setters across widely spaced qubits and
// expects the canonical ascending rendering.
func TestPauliProduct_Builder(t *testing.T) {
	pp := spins.NewPauliProduct().X(0).Y(3).Z(20)

	assert.Equal(t, "0X3Y20Z", pp.String())
	assert.Equal(t, spins.PauliX, pp.Get(0))
	assert.Equal(t, spins.PauliY, pp.Get(3))
	assert.Equal(t, spins.PauliZ, pp.Get(20))
	assert.Equal(t, spins.PauliI, pp.Get(7))
	assert.Equal(t, 21, pp.CurrentNumberSpins())
	assert.Equal(t, 3, pp.Len())
}

// TestPauliProduct_BuilderOrderIndependent: the canonical form does not
// depend on the order the factors were set in.
func TestPauliProduct_BuilderOrderIndependent(t *testing.T) {
	a := spins.NewPauliProduct().X(0).Y(3).Z(20)
	b := spins.NewPauliProduct().Z(20).X(0).Y(3)
	assert.Equal(t, a.String(), b.String())
}

// TestPauliProduct_SetOverwritesAndClears: setting a qubit twice keeps the
// last factor; setting the identity removes the qubit.
func TestPauliProduct_SetOverwritesAndClears(t *testing.T) {
	pp := spins.NewPauliProduct().X(2).Y(2)
	assert.Equal(t, "2Y", pp.String())

	pp = pp.SetPauli(2, spins.PauliI)
	assert.True(t, pp.IsIdentity())
	assert.Equal(t, "I", pp.String())
	assert.Equal(t, 0, pp.CurrentNumberSpins())
}

// TestPauliProduct_Immutable: setters return copies, the receiver is
// untouched.
func TestPauliProduct_Immutable(t *testing.T) {
	base := spins.NewPauliProduct().X(1)
	_ = base.Z(0)
	assert.Equal(t, "1X", base.String())
}

// TestParsePauliProduct round-trips the canonical form and rejects
// malformed input.
func TestParsePauliProduct(t *testing.T) {
	for _, s := range []string{"I", "0X", "0X3Y20Z", "5Z"} {
		pp, err := spins.ParsePauliProduct(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, pp.String())
	}

	for _, s := range []string{"", "X", "0X0Y", "3Y1X", "0Q", "0", "0iY"} {
		_, err := spins.ParsePauliProduct(s)
		assert.Error(t, err, s)
	}

	_, err := spins.ParsePauliProduct("0X0Y")
	assert.ErrorIs(t, err, spins.ErrDuplicateIndex)
	_, err = spins.ParsePauliProduct("3Y1X")
	assert.ErrorIs(t, err, spins.ErrMalformedProduct)
}

// TestMulPauliProducts checks the cyclic phase bookkeeping on single qubits
// and factor merging across qubits.
func TestMulPauliProducts(t *testing.T) {
	x := spins.NewPauliProduct().X(0)
	y := spins.NewPauliProduct().Y(0)
	z := spins.NewPauliProduct().Z(0)

	prod, phase := spins.MulPauliProducts(x, y)
	assert.Equal(t, "0Z", prod.String())
	assert.Equal(t, complex(0, 1), phase)

	prod, phase = spins.MulPauliProducts(y, x)
	assert.Equal(t, "0Z", prod.String())
	assert.Equal(t, complex(0, -1), phase)

	prod, phase = spins.MulPauliProducts(z, z)
	assert.True(t, prod.IsIdentity())
	assert.Equal(t, complex(1, 0), phase)

	// Disjoint qubits merge without phase.
	a := spins.NewPauliProduct().X(0).Z(2)
	b := spins.NewPauliProduct().Y(1)
	prod, phase = spins.MulPauliProducts(a, b)
	assert.Equal(t, "0X1Y2Z", prod.String())
	assert.Equal(t, complex(1, 0), phase)
}

// TestPauliProduct_HermitianConjugate: Pauli products are self-adjoint.
func TestPauliProduct_HermitianConjugate(t *testing.T) {
	pp := spins.NewPauliProduct().X(0).Y(1)
	conj, sign := pp.HermitianConjugate()
	assert.Equal(t, pp.String(), conj.String())
	assert.Equal(t, 1.0, sign)
	assert.True(t, pp.IsNaturalHermitian())
}
