package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProduct(t *testing.T) {
	cases := []struct {
		species   string
		input     string
		canonical string
		conjugate string
		sign      float64
	}{
		{"spin", "0X3Y", "0X3Y", "0X3Y", 1},
		{"decoherence", "0iY", "0iY", "0iY", -1},
		{"boson", "c0a1", "c0a1", "c1a0", 1},
		{"fermion", "c0a1a2", "c0a1a2", "c1c2a0", -1},
		{"mixed", "S0X:Bc0:", "S0X:Bc0:", "S0X:Ba0:", 1},
	}
	for _, tc := range cases {
		canonical, conjugate, sign, err := parseProduct(tc.species, tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.canonical, canonical, tc.input)
		assert.Equal(t, tc.conjugate, conjugate, tc.input)
		assert.Equal(t, tc.sign, sign, tc.input)
	}
}

func TestParseProduct_Errors(t *testing.T) {
	_, _, _, err := parseProduct("spin", "0Q")
	assert.Error(t, err)
	_, _, _, err = parseProduct("qudit", "0X")
	assert.Error(t, err)
}

func TestCodecFor(t *testing.T) {
	_, err := codecFor("spin-hamiltonian")
	require.NoError(t, err)
	_, err = codecFor("anyon-operator")
	assert.ErrorContains(t, err, "unknown type")
}

func TestCodecRoundTrip(t *testing.T) {
	c, err := codecFor("spin-operator")
	require.NoError(t, err)

	v1 := []byte(`{
		"items": [["0X", 1.0, 0.0], ["0Z", 1e-15, 0.0]],
		"_struqture_version": {"major_version": 1, "minor_version": 0}
	}`)
	converted, err := c.convert(v1)
	require.NoError(t, err)
	require.NotNil(t, converted)
}
