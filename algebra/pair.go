// SPDX-License-Identifier: MIT
// Package: algebra
//
package algebra

import "fmt"

// Pair is an ordered pair of product keys, used by Lindblad noise containers
// to index the rate matrix entry (left, right).
type Pair[P fmt.Stringer] struct {
	Left  P
	Right P
}

// NewPair builds the ordered pair (left, right).
func NewPair[P fmt.Stringer](left, right P) Pair[P] {
	return Pair[P]{Left: left, Right: right}
}

// String joins the two canonical forms with '|', a rune no product string
// contains, so distinct pairs never collide.
func (p Pair[P]) String() string {
	return p.Left.String() + "|" + p.Right.String()
}
