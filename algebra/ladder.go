// SPDX-License-Identifier: MIT
// Package: algebra
//
package algebra

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Shared machinery for ladder-operator (creation/annihilation) index lists,
// used by the bosonic, fermionic and mixed product types.

// ErrLadderSyntax reports an unparsable ladder-product string.
var ErrLadderSyntax = errors.New("algebra: malformed ladder-product string")

// FormatLadder renders creator and annihilator index lists in the canonical
// "c0c1a0a2" form; both lists empty renders the identity "I".
func FormatLadder(creators, annihilators []int) string {
	if len(creators) == 0 && len(annihilators) == 0 {
		return "I"
	}
	var b strings.Builder
	for _, c := range creators {
		b.WriteByte('c')
		b.WriteString(strconv.Itoa(c))
	}
	for _, a := range annihilators {
		b.WriteByte('a')
		b.WriteString(strconv.Itoa(a))
	}
	return b.String()
}

// ParseLadder splits the canonical string form back into index lists. All
// creators must precede all annihilators; "I" is the identity. The returned
// lists are in written order, not canonicalized.
func ParseLadder(s string) (creators, annihilators []int, err error) {
	if s == "" {
		return nil, nil, fmt.Errorf("%w: empty string", ErrLadderSyntax)
	}
	if s == "I" {
		return nil, nil, nil
	}
	inAnnihilators := false
	i := 0
	for i < len(s) {
		role := s[i]
		if role != 'c' && role != 'a' {
			return nil, nil, fmt.Errorf("%w: expected role c or a at %q", ErrLadderSyntax, s[i:])
		}
		if role == 'c' && inAnnihilators {
			return nil, nil, fmt.Errorf("%w: creator after annihilator at %q", ErrLadderSyntax, s[i:])
		}
		if role == 'a' {
			inAnnihilators = true
		}
		i++
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if start == i {
			return nil, nil, fmt.Errorf("%w: missing mode index at %q", ErrLadderSyntax, s[start:])
		}
		index, convErr := strconv.Atoi(s[start:i])
		if convErr != nil {
			return nil, nil, fmt.Errorf("%w: bad mode index %q", ErrLadderSyntax, s[start:i])
		}
		if role == 'c' {
			creators = append(creators, index)
		} else {
			annihilators = append(annihilators, index)
		}
	}
	return creators, annihilators, nil
}

// PairForm classifies a creator/annihilator pair for Hermitian-pair
// selection: of a product and its adjoint, exactly one form is stored.
type PairForm int

const (
	// PairCanonical marks the storable form of the conjugate pair.
	PairCanonical PairForm = iota

	// PairConjugate marks the form whose adjoint must be stored instead.
	PairConjugate

	// PairSymmetric marks a naturally Hermitian product (equal lists).
	PairSymmetric
)

// ClassifyLadderPair walks the two sorted index lists position by position;
// the first asymmetry decides. A smaller creator index marks the canonical
// form, a smaller annihilator index the conjugate one. With an all-equal
// prefix the shorter creator list is canonical, and equal lists are
// naturally Hermitian.
func ClassifyLadderPair(creators, annihilators []int) PairForm {
	n := len(creators)
	if len(annihilators) < n {
		n = len(annihilators)
	}
	for i := 0; i < n; i++ {
		switch {
		case creators[i] < annihilators[i]:
			return PairCanonical
		case annihilators[i] < creators[i]:
			return PairConjugate
		}
	}
	switch {
	case len(creators) > len(annihilators):
		return PairConjugate
	case len(annihilators) > len(creators):
		return PairCanonical
	}
	return PairSymmetric
}
