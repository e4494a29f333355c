// Package bosons implements symbolic bosonic operators built from mode
// creation and annihilation factors.
//
// Building blocks:
//
//	BosonProduct          - normal-ordered product b†_i... b_j... on modes
//	HermitianBosonProduct - one canonical key per conjugate pair (p + p†)
//
// Containers:
//
//	BosonOperator              - complex-weighted sum of BosonProducts
//	BosonHamiltonian           - Hermitian sums keyed by HermitianBosonProducts
//	BosonLindbladNoiseOperator - rate matrix over BosonProduct pairs
//	BosonLindbladOpenSystem    - Hamiltonian grouped with a noise operator
//
// Bosonic factors on different modes commute and equal-mode factors of one
// role commute freely, so canonicalization is a plain ascending sort of each
// index list with no sign. The string form lists creators before
// annihilators, "c0c1a0a2"; the identity is "I".
//
// Product multiplication applies the commutator [b_i, b†_j] = δ_ij through
// a recursive contraction: each matching annihilator/creator mode contributes
// both the contracted and the reordered term.
package bosons
