package spins

import "errors"

// Sentinel errors of the spins package.
var (
	// ErrMalformedProduct reports an unparsable product string.
	ErrMalformedProduct = errors.New("spins: malformed product string")

	// ErrDuplicateIndex reports a qubit index appearing twice in a product string.
	ErrDuplicateIndex = errors.New("spins: duplicate qubit index in product string")

	// ErrNumberSpinsExceeded reports a key touching a qubit at or past the
	// container's declared number of spins.
	ErrNumberSpinsExceeded = errors.New("spins: qubit index exceeds declared number of spins")

	// ErrIdentityNoiseKey reports an identity product used to index a
	// Lindblad noise term.
	ErrIdentityNoiseKey = errors.New("spins: identity product cannot index a noise term")

	// ErrNumberSpinsMismatch reports grouping of parts that declare
	// different numbers of spins.
	ErrNumberSpinsMismatch = errors.New("spins: grouped parts declare different numbers of spins")
)
