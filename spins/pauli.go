package spins

import "fmt"

// Pauli is a single-qubit Pauli factor.
type Pauli uint8

const (
	PauliI Pauli = iota
	PauliX
	PauliY
	PauliZ
)

// String returns the one-letter name of the factor.
func (p Pauli) String() string {
	switch p {
	case PauliI:
		return "I"
	case PauliX:
		return "X"
	case PauliY:
		return "Y"
	case PauliZ:
		return "Z"
	}
	return fmt.Sprintf("Pauli(%d)", uint8(p))
}

// ParsePauli maps a one-letter name back to the factor.
func ParsePauli(s string) (Pauli, error) {
	switch s {
	case "I":
		return PauliI, nil
	case "X":
		return PauliX, nil
	case "Y":
		return PauliY, nil
	case "Z":
		return PauliZ, nil
	}
	return PauliI, fmt.Errorf("%w: unknown Pauli %q", ErrMalformedProduct, s)
}

// mulPauli multiplies two single-qubit factors, returning the resulting
// factor and the accumulated phase (±1, ±i).
//
//	X·Y = iZ   Y·X = -iZ
//	Y·Z = iX   Z·Y = -iX
//	Z·X = iY   X·Z = -iY
//	P·P = I
func mulPauli(a, b Pauli) (Pauli, complex128) {
	if a == PauliI {
		return b, 1
	}
	if b == PauliI {
		return a, 1
	}
	if a == b {
		return PauliI, 1
	}
	// The remaining six cases are the cyclic and anticyclic pairs.
	switch {
	case a == PauliX && b == PauliY:
		return PauliZ, 1i
	case a == PauliY && b == PauliZ:
		return PauliX, 1i
	case a == PauliZ && b == PauliX:
		return PauliY, 1i
	case a == PauliY && b == PauliX:
		return PauliZ, -1i
	case a == PauliZ && b == PauliY:
		return PauliX, -1i
	default: // a == PauliX && b == PauliZ
		return PauliY, -1i
	}
}
