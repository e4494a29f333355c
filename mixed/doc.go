// Package mixed implements symbolic operators on systems combining spin,
// bosonic and fermionic subsystems.
//
// Building blocks:
//
//	MixedProduct            - one Pauli product per spin subsystem, one
//	                          ladder product per boson/fermion subsystem
//	MixedDecoherenceProduct - decoherence products on the spin subsystems
//	HermitianMixedProduct   - one canonical key per conjugate pair
//
// Containers:
//
//	MixedOperator              - complex-weighted sum of MixedProducts
//	MixedHamiltonian           - Hermitian sums keyed by HermitianMixedProducts
//	MixedLindbladNoiseOperator - rate matrix over MixedDecoherenceProduct pairs
//	MixedLindbladOpenSystem    - Hamiltonian grouped with a noise operator
//
// Every container fixes its subsystem arity (number of spin, boson and
// fermion subsystems) at construction; keys with a different arity are
// rejected. The Hermitian-pair decision for a mixed key is made by the
// first boson subsystem whose index lists are asymmetric, falling back to
// the fermion subsystems; spin factors are self-adjoint and never decide.
//
// The string form joins prefixed subsystems with colons: "S0X:Bc0a1:Fc0a0:".
package mixed
