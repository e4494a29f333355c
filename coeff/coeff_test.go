// SPDX-License-Identifier: MIT
// Package: coeff
//
package coeff_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/struqture/coeff"
)

// TestFloat_NumericArithmetic folds concrete operands eagerly.
func TestFloat_NumericArithmetic(t *testing.T) {
	a, b := coeff.NewFloat(1.5), coeff.NewFloat(-2.0)

	sum, err := a.Add(b).Float64()
	require.NoError(t, err)
	assert.Equal(t, -0.5, sum)

	prod, err := a.Mul(b).Float64()
	require.NoError(t, err)
	assert.Equal(t, -3.0, prod)

	assert.True(t, coeff.NewFloat(0).IsZero())
	assert.False(t, a.IsZero())
}

// TestFloat_SymbolicPropagation verifies symbolic-ness is contagious and
// the expression string records the computation.
func TestFloat_SymbolicPropagation(t *testing.T) {
	theta := coeff.Symbol("theta")
	two := coeff.NewFloat(2)

	got := theta.Mul(two)
	assert.True(t, got.IsSymbolic())
	assert.Equal(t, "(theta * 2)", got.String())

	_, err := got.Float64()
	require.ErrorIs(t, err, coeff.ErrSymbolicValue)
}

// TestFloat_SymbolicIdentities covers the 0/1 short-circuits: symbolic
// values survive additive zero and multiplicative one untouched, and
// multiplicative zero collapses to the numeric 0.
func TestFloat_SymbolicIdentities(t *testing.T) {
	theta := coeff.Symbol("theta")

	assert.Equal(t, theta, theta.Add(coeff.NewFloat(0)))
	assert.Equal(t, theta, theta.Mul(coeff.NewFloat(1)))
	assert.Equal(t, coeff.NewFloat(0), theta.Mul(coeff.NewFloat(0)))
	assert.False(t, theta.IsZero(), "a symbolic value is never numerically zero")
}

// TestFloat_Keep checks truncation: numeric magnitude against the threshold,
// symbolic values unconditionally kept.
func TestFloat_Keep(t *testing.T) {
	assert.False(t, coeff.NewFloat(1e-8).Keep(1e-6))
	assert.True(t, coeff.NewFloat(-1e-3).Keep(1e-6))
	assert.True(t, coeff.Symbol("eps").Keep(1e6))
}

// TestComplex_Arithmetic exercises complex multiplication and conjugation.
func TestComplex_Arithmetic(t *testing.T) {
	c := coeff.NewComplex(1, 2)
	d := coeff.NewComplex(3, -1)

	assert.Equal(t, coeff.NewComplex(5, 5), c.Mul(d))
	assert.Equal(t, coeff.NewComplex(1, -2), c.Conj())
	assert.Equal(t, coeff.NewComplex(4, 1), c.Add(d))
	assert.Equal(t, coeff.NewComplex(-1, -2), c.MulSign(-1))
}

// TestComplex_IsReal trusts symbolic imaginary parts: they may still bind
// to zero, so only a nonzero number disqualifies.
func TestComplex_IsReal(t *testing.T) {
	assert.True(t, coeff.NewComplex(1, 0).IsReal())
	assert.False(t, coeff.NewComplex(1, 1e-12).IsReal())
	assert.True(t, coeff.ComplexOf(coeff.NewFloat(1), coeff.Symbol("eta")).IsReal())
}

// TestComplex_Truncate zeroes sub-threshold numeric parts independently and
// drops the value only when nothing survives.
func TestComplex_Truncate(t *testing.T) {
	kept, ok := coeff.NewComplex(0.5, 1e-9).Truncate(1e-6)
	require.True(t, ok)
	assert.Equal(t, coeff.NewComplex(0.5, 0), kept)

	_, ok = coeff.NewComplex(1e-9, 1e-9).Truncate(1e-6)
	assert.False(t, ok)

	sym := coeff.ComplexOf(coeff.Symbol("g"), coeff.NewFloat(1e-9))
	kept, ok = sym.Truncate(1e-6)
	require.True(t, ok, "symbolic part must survive any threshold")
	assert.Equal(t, coeff.Symbol("g"), kept.Re)
	assert.True(t, kept.Im.IsZero())
}

// TestFloat_JSONRoundTrip: numbers stay numbers, symbols stay strings.
func TestFloat_JSONRoundTrip(t *testing.T) {
	for _, f := range []coeff.Float{coeff.NewFloat(0.25), coeff.Symbol("alpha")} {
		data, err := json.Marshal(f)
		require.NoError(t, err)

		var back coeff.Float
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, f, back)
	}

	data, err := json.Marshal(coeff.NewFloat(0.25))
	require.NoError(t, err)
	assert.Equal(t, "0.25", string(data), "numeric values encode as JSON numbers")
}

// TestFloat_MsgpackRoundTrip mirrors the JSON contract on the binary codec.
func TestFloat_MsgpackRoundTrip(t *testing.T) {
	for _, f := range []coeff.Float{coeff.NewFloat(-3.5), coeff.Symbol("beta")} {
		data, err := msgpack.Marshal(f)
		require.NoError(t, err)

		var back coeff.Float
		require.NoError(t, msgpack.Unmarshal(data, &back))
		assert.Equal(t, f, back)
	}
}

// TestComplex_String covers the display forms.
func TestComplex_String(t *testing.T) {
	assert.Equal(t, "1.5", coeff.NewComplex(1.5, 0).String())
	assert.Equal(t, "(0 + 2*i)", coeff.NewComplex(0, 2).String())
	assert.Equal(t, "omega", coeff.FromFloat(coeff.Symbol("omega")).String())
}
