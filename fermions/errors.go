package fermions

import "errors"

// Sentinel errors of the fermions package.
var (
	// ErrNegativeIndex reports a negative mode index.
	ErrNegativeIndex = errors.New("fermions: negative mode index")

	// ErrMalformedProduct reports an unparsable product string.
	ErrMalformedProduct = errors.New("fermions: malformed product string")

	// ErrIncorrectlyOrderedIndices reports explicit index lists that are not
	// strictly ascending; reordering fermionic factors changes the sign, so
	// constructors refuse to do it silently.
	ErrIncorrectlyOrderedIndices = errors.New("fermions: index lists must be strictly ascending")

	// ErrIndicesContainDoubles reports a doubled index within one role;
	// Pauli exclusion leaves no such product.
	ErrIndicesContainDoubles = errors.New("fermions: doubled index in one role")

	// ErrNonCanonicalHermitianPair reports construction of a Hermitian
	// product in the conjugate form; the stored form keys the smaller
	// creator index.
	ErrNonCanonicalHermitianPair = errors.New("fermions: hermitian product given in conjugate form")

	// ErrNonHermitianValue reports a numerically non-real coefficient on a
	// naturally Hermitian Hamiltonian key.
	ErrNonHermitianValue = errors.New("fermions: non-real coefficient on a naturally hermitian key")

	// ErrIdentityNoiseKey reports an identity product used to index a
	// Lindblad noise term.
	ErrIdentityNoiseKey = errors.New("fermions: identity product cannot index a noise term")

	// ErrNumberModesExceeded reports a key touching a mode at or past the
	// container's declared number of modes.
	ErrNumberModesExceeded = errors.New("fermions: mode index exceeds declared number of modes")

	// ErrNumberModesMismatch reports grouping of parts that declare
	// different numbers of modes.
	ErrNumberModesMismatch = errors.New("fermions: grouped parts declare different numbers of modes")
)
