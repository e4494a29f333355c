package mixed

import "errors"

// Sentinel errors of the mixed package.
var (
	// ErrMalformedProduct reports an unparsable mixed product string.
	ErrMalformedProduct = errors.New("mixed: malformed product string")

	// ErrSubsystemCountMismatch reports a key whose number of spin, boson or
	// fermion subsystems differs from the container's declared arity.
	ErrSubsystemCountMismatch = errors.New("mixed: subsystem counts do not match the container arity")

	// ErrNonCanonicalHermitianPair reports construction of a Hermitian
	// product in the conjugate form.
	ErrNonCanonicalHermitianPair = errors.New("mixed: hermitian product given in conjugate form")

	// ErrNonHermitianValue reports a numerically non-real coefficient on a
	// naturally Hermitian Hamiltonian key.
	ErrNonHermitianValue = errors.New("mixed: non-real coefficient on a naturally hermitian key")

	// ErrIdentityNoiseKey reports an identity product used to index a
	// Lindblad noise term.
	ErrIdentityNoiseKey = errors.New("mixed: identity product cannot index a noise term")
)
