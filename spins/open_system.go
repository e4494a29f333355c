package spins

import "github.com/katalvlaran/struqture/coeff"

// PauliLindbladOpenSystem pairs a coherent Hamiltonian with a Lindblad noise
// operator, the two halves of a Markovian master equation on spins.
type PauliLindbladOpenSystem struct {
	system *PauliHamiltonian
	noise  *PauliLindbladNoiseOperator
}

// NewPauliLindbladOpenSystem returns an empty open system; both halves share
// any declared number of spins.
func NewPauliLindbladOpenSystem(opts ...Option) *PauliLindbladOpenSystem {
	return &PauliLindbladOpenSystem{
		system: NewPauliHamiltonian(opts...),
		noise:  NewPauliLindbladNoiseOperator(opts...),
	}
}

// GroupPauliLindbladOpenSystem joins an existing Hamiltonian and noise
// operator into one open system; the halves are aliased, not copied.
// Declared qubit bounds must agree. When only one half declares a bound the
// other adopts it, and the adoption is written into the passed half.
func GroupPauliLindbladOpenSystem(system *PauliHamiltonian, noise *PauliLindbladNoiseOperator) (*PauliLindbladOpenSystem, error) {
	switch {
	case system.numberSpins != nil && noise.numberSpins != nil:
		if *system.numberSpins != *noise.numberSpins {
			return nil, ErrNumberSpinsMismatch
		}
	case system.numberSpins != nil:
		noise.numberSpins = system.numberSpins
	case noise.numberSpins != nil:
		system.numberSpins = noise.numberSpins
	}
	return &PauliLindbladOpenSystem{system: system, noise: noise}, nil
}

// System returns the coherent half; mutations act on the open system.
func (os *PauliLindbladOpenSystem) System() *PauliHamiltonian { return os.system }

// Noise returns the dissipative half; mutations act on the open system.
func (os *PauliLindbladOpenSystem) Noise() *PauliLindbladNoiseOperator { return os.noise }

// SystemAdd accumulates a coherent term, delegating to the Hamiltonian half.
func (os *PauliLindbladOpenSystem) SystemAdd(p PauliProduct, v coeff.Float) error {
	return os.system.Add(p, v)
}

// NoiseAdd accumulates a dissipative rate, delegating to the noise half.
func (os *PauliLindbladOpenSystem) NoiseAdd(left, right DecoherenceProduct, v coeff.Complex) error {
	return os.noise.Add(left, right, v)
}

// Ungroup splits the open system back into its halves.
func (os *PauliLindbladOpenSystem) Ungroup() (*PauliHamiltonian, *PauliLindbladNoiseOperator) {
	return os.system, os.noise
}

// CurrentNumberSpins returns the qubit reach of the whole open system.
func (os *PauliLindbladOpenSystem) CurrentNumberSpins() int {
	n := os.system.CurrentNumberSpins()
	if m := os.noise.CurrentNumberSpins(); m > n {
		n = m
	}
	return n
}

// Clone returns an independent copy.
func (os *PauliLindbladOpenSystem) Clone() *PauliLindbladOpenSystem {
	return &PauliLindbladOpenSystem{system: os.system.Clone(), noise: os.noise.Clone()}
}

// Truncate applies the threshold to both halves.
func (os *PauliLindbladOpenSystem) Truncate(threshold float64) *PauliLindbladOpenSystem {
	return &PauliLindbladOpenSystem{
		system: os.system.Truncate(threshold),
		noise:  os.noise.Truncate(threshold),
	}
}

// String renders both halves.
func (os *PauliLindbladOpenSystem) String() string {
	return "PauliLindbladOpenSystem{\nsystem: " + os.system.String() +
		"\nnoise: " + os.noise.String() + "\n}"
}
