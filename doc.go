// Package struqture is an in-memory symbolic operator-algebra toolkit for
// building quantum-mechanical operators — spin, bosonic, fermionic and mixed —
// as normal-ordered sums of canonical index products with numeric or symbolic
// complex coefficients.
//
// 🚀 What does struqture give you?
//
//	A value-type library that brings together:
//		• Canonical products: PauliProduct, DecoherenceProduct, Boson/FermionProduct
//		• Normal ordering: deterministic canonical forms with exact sign/phase tracking
//		• Hermitian pairing: one canonical key per conjugate pair, sign included
//		• Containers: Operators, Hamiltonians, Lindblad noise operators, open systems
//		• Coefficients: numeric complex values or late-bound symbolic parameters
//		• Serialization: JSON and compact binary codecs, versioned and migratable
//
// ✨ Why choose struqture?
//
//   - Physically safe – Hermiticity, Pauli exclusion and normal ordering are
//     enforced at construction, not documented away
//   - Deterministic – equal physical terms always hash and compare equal,
//     regardless of the order they were written down in
//   - Explicit failures – every invalid input is an error return naming the
//     offending side; no silent coercion
//
// Everything is organized under species subpackages:
//
//	coeff/    — numeric-or-symbolic real and complex coefficients
//	algebra/  — the shared insertion-ordered term map
//	schema/   — serialization meta information and version checks
//	spins/    — Pauli and decoherence products, operators, Hamiltonians, noise
//	bosons/   — bosonic products and containers (commuting modes)
//	fermions/ — fermionic products and containers (anticommuting modes)
//	mixed/    — products and containers spanning several particle species
//
// Containers are plain value types mutated synchronously by a single caller;
// wrap them in your own lock if you share one instance between goroutines.
package struqture
