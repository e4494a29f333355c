package fermions

import "github.com/katalvlaran/struqture/coeff"

// FermionLindbladOpenSystem pairs a coherent Hamiltonian with a Lindblad
// noise operator, the two halves of a Markovian master equation on fermionic
// modes.
type FermionLindbladOpenSystem struct {
	system *FermionHamiltonian
	noise  *FermionLindbladNoiseOperator
}

// NewFermionLindbladOpenSystem returns an empty open system; both halves
// share any declared number of modes.
func NewFermionLindbladOpenSystem(opts ...Option) *FermionLindbladOpenSystem {
	return &FermionLindbladOpenSystem{
		system: NewFermionHamiltonian(opts...),
		noise:  NewFermionLindbladNoiseOperator(opts...),
	}
}

// GroupFermionLindbladOpenSystem joins an existing Hamiltonian and noise
// operator into one open system; the halves are aliased, not copied.
// Declared mode bounds must agree. When only one half declares a bound the
// other adopts it, and the adoption is written into the passed half.
func GroupFermionLindbladOpenSystem(system *FermionHamiltonian, noise *FermionLindbladNoiseOperator) (*FermionLindbladOpenSystem, error) {
	switch {
	case system.numberModes != nil && noise.numberModes != nil:
		if *system.numberModes != *noise.numberModes {
			return nil, ErrNumberModesMismatch
		}
	case system.numberModes != nil:
		noise.numberModes = system.numberModes
	case noise.numberModes != nil:
		system.numberModes = noise.numberModes
	}
	return &FermionLindbladOpenSystem{system: system, noise: noise}, nil
}

// System returns the coherent half; mutations act on the open system.
func (os *FermionLindbladOpenSystem) System() *FermionHamiltonian { return os.system }

// Noise returns the dissipative half; mutations act on the open system.
func (os *FermionLindbladOpenSystem) Noise() *FermionLindbladNoiseOperator { return os.noise }

// SystemAdd accumulates a coherent term, delegating to the Hamiltonian half.
func (os *FermionLindbladOpenSystem) SystemAdd(p HermitianFermionProduct, v coeff.Complex) error {
	return os.system.Add(p, v)
}

// SystemAddProduct accumulates a plain product onto the Hamiltonian half,
// resolving it to its Hermitian key.
func (os *FermionLindbladOpenSystem) SystemAddProduct(p FermionProduct, v coeff.Complex) error {
	return os.system.AddProduct(p, v)
}

// NoiseAdd accumulates a dissipative rate, delegating to the noise half.
func (os *FermionLindbladOpenSystem) NoiseAdd(left, right FermionProduct, v coeff.Complex) error {
	return os.noise.Add(left, right, v)
}

// Ungroup splits the open system back into its halves.
func (os *FermionLindbladOpenSystem) Ungroup() (*FermionHamiltonian, *FermionLindbladNoiseOperator) {
	return os.system, os.noise
}

// CurrentNumberModes returns the mode reach of the whole open system.
func (os *FermionLindbladOpenSystem) CurrentNumberModes() int {
	n := os.system.CurrentNumberModes()
	if m := os.noise.CurrentNumberModes(); m > n {
		n = m
	}
	return n
}

// Clone returns an independent copy.
func (os *FermionLindbladOpenSystem) Clone() *FermionLindbladOpenSystem {
	return &FermionLindbladOpenSystem{system: os.system.Clone(), noise: os.noise.Clone()}
}

// Truncate applies the threshold to both halves.
func (os *FermionLindbladOpenSystem) Truncate(threshold float64) *FermionLindbladOpenSystem {
	return &FermionLindbladOpenSystem{
		system: os.system.Truncate(threshold),
		noise:  os.noise.Truncate(threshold),
	}
}

// String renders both halves.
func (os *FermionLindbladOpenSystem) String() string {
	return "FermionLindbladOpenSystem{\nsystem: " + os.system.String() +
		"\nnoise: " + os.noise.String() + "\n}"
}
