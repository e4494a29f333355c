package spins

import (
	"fmt"
	"strconv"
)

type factorToken struct {
	index int
	op    string
}

// splitFactors tokenizes a product string of the form "<digits><op>..." into
// (index, op-name) pairs. The op alphabet is X/Y/Z when iy is false and
// X/iY/Z when iy is true. The bare string "I" is the identity (no factors).
func splitFactors(s string, iy bool) ([]factorToken, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrMalformedProduct)
	}
	if s == "I" {
		return nil, nil
	}
	var out []factorToken
	i := 0
	for i < len(s) {
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if start == i {
			return nil, fmt.Errorf("%w: expected qubit index at %q", ErrMalformedProduct, s[i:])
		}
		index, err := strconv.Atoi(s[start:i])
		if err != nil {
			return nil, fmt.Errorf("%w: bad qubit index %q", ErrMalformedProduct, s[start:i])
		}
		if i >= len(s) {
			return nil, fmt.Errorf("%w: missing operator after index %d", ErrMalformedProduct, index)
		}
		var op string
		switch {
		case iy && s[i] == 'i':
			if i+1 >= len(s) || s[i+1] != 'Y' {
				return nil, fmt.Errorf("%w: expected iY at %q", ErrMalformedProduct, s[i:])
			}
			op = "iY"
			i += 2
		case s[i] == 'X' || s[i] == 'Z' || (!iy && s[i] == 'Y'):
			op = string(s[i])
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected operator at %q", ErrMalformedProduct, s[i:])
		}
		out = append(out, factorToken{index: index, op: op})
	}
	// Canonical strings carry strictly ascending, unique indices.
	for j := 1; j < len(out); j++ {
		if out[j].index == out[j-1].index {
			return nil, fmt.Errorf("%w: index %d", ErrDuplicateIndex, out[j].index)
		}
		if out[j].index < out[j-1].index {
			return nil, fmt.Errorf("%w: indices must be ascending, got %d after %d",
				ErrMalformedProduct, out[j].index, out[j-1].index)
		}
	}
	return out, nil
}
