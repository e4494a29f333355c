// SPDX-License-Identifier: MIT
// Package: algebra
//
package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/struqture/algebra"
)

// TestFormatLadder renders the canonical c/a form.
func TestFormatLadder(t *testing.T) {
	assert.Equal(t, "I", algebra.FormatLadder(nil, nil))
	assert.Equal(t, "c0c1a0a2", algebra.FormatLadder([]int{0, 1}, []int{0, 2}))
	assert.Equal(t, "a3", algebra.FormatLadder(nil, []int{3}))
}

// TestParseLadder round-trips and rejects malformed strings.
func TestParseLadder(t *testing.T) {
	c, a, err := algebra.ParseLadder("c0c12a3")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 12}, c)
	assert.Equal(t, []int{3}, a)

	c, a, err = algebra.ParseLadder("I")
	require.NoError(t, err)
	assert.Empty(t, c)
	assert.Empty(t, a)

	for _, s := range []string{"", "x0", "c", "a0c1", "c0b1", "ca"} {
		_, _, err := algebra.ParseLadder(s)
		assert.ErrorIs(t, err, algebra.ErrLadderSyntax, s)
	}
}

// TestClassifyLadderPair: the first asymmetric position decides which of
// the conjugate pair is storable.
func TestClassifyLadderPair(t *testing.T) {
	cases := []struct {
		creators, annihilators []int
		form                   algebra.PairForm
	}{
		{[]int{0, 1}, []int{0, 2}, algebra.PairCanonical},
		{[]int{0, 2}, []int{0, 1}, algebra.PairConjugate},
		{[]int{0, 1}, []int{0, 1}, algebra.PairSymmetric},
		{[]int{0}, []int{0, 3}, algebra.PairCanonical},
		{[]int{0, 3}, []int{0}, algebra.PairConjugate},
		{nil, nil, algebra.PairSymmetric},
		{[]int{1}, []int{0}, algebra.PairConjugate},
	}
	for _, tc := range cases {
		got := algebra.ClassifyLadderPair(tc.creators, tc.annihilators)
		assert.Equal(t, tc.form, got, "%v / %v", tc.creators, tc.annihilators)
	}
}
