package bosons

import "github.com/katalvlaran/struqture/coeff"

// BosonLindbladOpenSystem pairs a coherent Hamiltonian with a Lindblad noise
// operator, the two halves of a Markovian master equation on bosonic modes.
type BosonLindbladOpenSystem struct {
	system *BosonHamiltonian
	noise  *BosonLindbladNoiseOperator
}

// NewBosonLindbladOpenSystem returns an empty open system; both halves
// share any declared number of modes.
func NewBosonLindbladOpenSystem(opts ...Option) *BosonLindbladOpenSystem {
	return &BosonLindbladOpenSystem{
		system: NewBosonHamiltonian(opts...),
		noise:  NewBosonLindbladNoiseOperator(opts...),
	}
}

// GroupBosonLindbladOpenSystem joins an existing Hamiltonian and noise
// operator into one open system; the halves are aliased, not copied.
// Declared mode bounds must agree. When only one half declares a bound the
// other adopts it, and the adoption is written into the passed half.
func GroupBosonLindbladOpenSystem(system *BosonHamiltonian, noise *BosonLindbladNoiseOperator) (*BosonLindbladOpenSystem, error) {
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
	return &BosonLindbladOpenSystem{system: system, noise: noise}, nil
}

// System returns the coherent half; mutations act on the open system.
func (os *BosonLindbladOpenSystem) System() *BosonHamiltonian { return os.system }

// Noise returns the dissipative half; mutations act on the open system.
func (os *BosonLindbladOpenSystem) Noise() *BosonLindbladNoiseOperator { return os.noise }

// SystemAdd accumulates a coherent term, delegating to the Hamiltonian half.
func (os *BosonLindbladOpenSystem) SystemAdd(p HermitianBosonProduct, v coeff.Complex) error {
	return os.system.Add(p, v)
}

// SystemAddProduct accumulates a plain product onto the Hamiltonian half,
// resolving it to its Hermitian key.
func (os *BosonLindbladOpenSystem) SystemAddProduct(p BosonProduct, v coeff.Complex) error {
	return os.system.AddProduct(p, v)
}

// NoiseAdd accumulates a dissipative rate, delegating to the noise half.
func (os *BosonLindbladOpenSystem) NoiseAdd(left, right BosonProduct, v coeff.Complex) error {
	return os.noise.Add(left, right, v)
}

// Ungroup splits the open system back into its halves.
func (os *BosonLindbladOpenSystem) Ungroup() (*BosonHamiltonian, *BosonLindbladNoiseOperator) {
	return os.system, os.noise
}

// CurrentNumberModes returns the mode reach of the whole open system.
func (os *BosonLindbladOpenSystem) CurrentNumberModes() int {
	n := os.system.CurrentNumberModes()
	if m := os.noise.CurrentNumberModes(); m > n {
		n = m
	}
	return n
}

// Clone returns an independent copy.
func (os *BosonLindbladOpenSystem) Clone() *BosonLindbladOpenSystem {
	return &BosonLindbladOpenSystem{system: os.system.Clone(), noise: os.noise.Clone()}
}

// Truncate applies the threshold to both halves.
func (os *BosonLindbladOpenSystem) Truncate(threshold float64) *BosonLindbladOpenSystem {
	return &BosonLindbladOpenSystem{
		system: os.system.Truncate(threshold),
		noise:  os.noise.Truncate(threshold),
	}
}

// String renders both halves.
func (os *BosonLindbladOpenSystem) String() string {
	return "BosonLindbladOpenSystem{\nsystem: " + os.system.String() +
		"\nnoise: " + os.noise.String() + "\n}"
}
