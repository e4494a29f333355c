package spins

import "fmt"

// Decoherence is a single-qubit factor in the {I, X, iY, Z} basis. Unlike
// the Pauli basis it is closed under multiplication with purely real signs,
// which keeps Lindblad rate matrices real-structured.
type Decoherence uint8

const (
	DecoherenceI Decoherence = iota
	DecoherenceX
	DecoherenceIY
	DecoherenceZ
)

// String returns the name of the factor ("iY" for the scaled σy).
func (d Decoherence) String() string {
	switch d {
	case DecoherenceI:
		return "I"
	case DecoherenceX:
		return "X"
	case DecoherenceIY:
		return "iY"
	case DecoherenceZ:
		return "Z"
	}
	return fmt.Sprintf("Decoherence(%d)", uint8(d))
}

// ParseDecoherence maps a factor name back to the factor.
func ParseDecoherence(s string) (Decoherence, error) {
	switch s {
	case "I":
		return DecoherenceI, nil
	case "X":
		return DecoherenceX, nil
	case "iY":
		return DecoherenceIY, nil
	case "Z":
		return DecoherenceZ, nil
	}
	return DecoherenceI, fmt.Errorf("%w: unknown decoherence factor %q", ErrMalformedProduct, s)
}

// mulDecoherence multiplies two single-qubit factors, returning the
// resulting factor and a real sign.
//
//	X·iY = -Z   iY·X = Z
//	iY·Z = -X   Z·iY = X
//	Z·X  = iY   X·Z  = -iY
//	X·X = Z·Z = I   iY·iY = -I
func mulDecoherence(a, b Decoherence) (Decoherence, float64) {
	if a == DecoherenceI {
		return b, 1
	}
	if b == DecoherenceI {
		return a, 1
	}
	if a == b {
		if a == DecoherenceIY {
			return DecoherenceI, -1
		}
		return DecoherenceI, 1
	}
	switch {
	case a == DecoherenceX && b == DecoherenceIY:
		return DecoherenceZ, -1
	case a == DecoherenceIY && b == DecoherenceX:
		return DecoherenceZ, 1
	case a == DecoherenceIY && b == DecoherenceZ:
		return DecoherenceX, -1
	case a == DecoherenceZ && b == DecoherenceIY:
		return DecoherenceX, 1
	case a == DecoherenceZ && b == DecoherenceX:
		return DecoherenceIY, 1
	default: // a == DecoherenceX && b == DecoherenceZ
		return DecoherenceIY, -1
	}
}
