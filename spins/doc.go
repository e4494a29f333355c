// Package spins implements symbolic spin (qubit) operators.
//
// Building blocks:
//
//	Pauli / PauliProduct             - tensor products of σx, σy, σz factors
//	Decoherence / DecoherenceProduct - the {X, iY, Z} basis used for noise
//
// Containers:
//
//	PauliOperator              - complex-weighted sum of PauliProducts
//	PauliHamiltonian           - real-weighted sum (every PauliProduct is
//	                             self-adjoint, so Hermiticity forces real
//	                             coefficients)
//	PauliLindbladNoiseOperator - rate matrix over DecoherenceProduct pairs
//	PauliLindbladOpenSystem    - a Hamiltonian grouped with a noise operator
//
// Products are immutable values built through chained setters:
//
//	pp := spins.NewPauliProduct().X(0).Y(3).Z(20) // "0X3Y20Z"
//
// Factors are stored sparsely in ascending qubit order; setting a qubit
// twice overwrites, setting the identity clears. Equal physical products
// always render the same canonical string, which is also the serialization
// form and the container hash key.
//
// Containers optionally declare a qubit count via WithNumberSpins; a key
// touching a qubit at or past the bound is rejected.
package spins
