package bosons

import "errors"

// Sentinel errors of the bosons package.
var (
	// ErrNegativeIndex reports a negative mode index.
	ErrNegativeIndex = errors.New("bosons: negative mode index")

	// ErrMalformedProduct reports an unparsable product string.
	ErrMalformedProduct = errors.New("bosons: malformed product string")

	// ErrNonCanonicalHermitianPair reports construction of a Hermitian
	// product in the conjugate form; the stored form keys the smaller
	// creator index.
	ErrNonCanonicalHermitianPair = errors.New("bosons: hermitian product given in conjugate form")

	// ErrNonHermitianValue reports a numerically non-real coefficient on a
	// naturally Hermitian Hamiltonian key.
	ErrNonHermitianValue = errors.New("bosons: non-real coefficient on a naturally hermitian key")

	// ErrIdentityNoiseKey reports an identity product used to index a
	// Lindblad noise term.
	ErrIdentityNoiseKey = errors.New("bosons: identity product cannot index a noise term")

	// ErrNumberModesExceeded reports a key touching a mode at or past the
	// container's declared number of modes.
	ErrNumberModesExceeded = errors.New("bosons: mode index exceeds declared number of modes")

	// ErrNumberModesMismatch reports grouping of parts that declare
	// different numbers of modes.
	ErrNumberModesMismatch = errors.New("bosons: grouped parts declare different numbers of modes")
)
