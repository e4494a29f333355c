// Package fermions implements symbolic fermionic operators built from mode
// creation and annihilation factors.
//
// Building blocks:
//
//	FermionProduct          - normal-ordered product f†_i... f_j... on modes
//	HermitianFermionProduct - one canonical key per conjugate pair (p + p†)
//
// Containers:
//
//	FermionOperator              - complex-weighted sum of FermionProducts
//	FermionHamiltonian           - Hermitian sums keyed by HermitianFermionProducts
//	FermionLindbladNoiseOperator - rate matrix over FermionProduct pairs
//	FermionLindbladOpenSystem    - Hamiltonian grouped with a noise operator
//
// Fermionic factors anticommute, so ordering carries signs: canonicalization
// insertion-sorts each index list counting transpositions, and the parity
// (-1)^swaps multiplies the coefficient. A doubled index within one role is
// Pauli exclusion and is rejected (or vanishes during multiplication).
//
// Constructors taking explicit lists (NewFermionProduct) demand strictly
// ascending input: silent reordering would silently change the sign. Use
// FermionValidPair to canonicalize arbitrary input with the sign applied to
// the coefficient.
//
// The string form lists creators before annihilators, "c0c1a0a2"; the
// identity is "I".
package fermions
