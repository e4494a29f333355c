package mixed

import "github.com/katalvlaran/struqture/coeff"

// MixedLindbladOpenSystem pairs a coherent Hamiltonian with a Lindblad noise
// operator, the two halves of a Markovian master equation on a mixed system.
type MixedLindbladOpenSystem struct {
	system *MixedHamiltonian
	noise  *MixedLindbladNoiseOperator
}

// NewMixedLindbladOpenSystem returns an empty open system; both halves share
// the given subsystem arity.
func NewMixedLindbladOpenSystem(nSpins, nBosons, nFermions int) *MixedLindbladOpenSystem {
	return &MixedLindbladOpenSystem{
		system: NewMixedHamiltonian(nSpins, nBosons, nFermions),
		noise:  NewMixedLindbladNoiseOperator(nSpins, nBosons, nFermions),
	}
}

// GroupMixedLindbladOpenSystem joins an existing Hamiltonian and noise
// operator into one open system; the halves are aliased, not copied. Their
// subsystem arities must be equal.
func GroupMixedLindbladOpenSystem(system *MixedHamiltonian, noise *MixedLindbladNoiseOperator) (*MixedLindbladOpenSystem, error) {
	if system.arity != noise.arity {
		return nil, ErrSubsystemCountMismatch
	}
	return &MixedLindbladOpenSystem{system: system, noise: noise}, nil
}

// SubsystemCounts returns the fixed numbers of spin, boson and fermion
// subsystems.
func (os *MixedLindbladOpenSystem) SubsystemCounts() (nSpins, nBosons, nFermions int) {
	return os.system.SubsystemCounts()
}

// System returns the coherent half; mutations act on the open system.
func (os *MixedLindbladOpenSystem) System() *MixedHamiltonian { return os.system }

// Noise returns the dissipative half; mutations act on the open system.
func (os *MixedLindbladOpenSystem) Noise() *MixedLindbladNoiseOperator { return os.noise }

// SystemAdd accumulates a coherent term, delegating to the Hamiltonian half.
func (os *MixedLindbladOpenSystem) SystemAdd(p HermitianMixedProduct, v coeff.Complex) error {
	return os.system.Add(p, v)
}

// SystemAddProduct accumulates a plain product onto the Hamiltonian half,
// resolving it to its Hermitian key.
func (os *MixedLindbladOpenSystem) SystemAddProduct(p MixedProduct, v coeff.Complex) error {
	return os.system.AddProduct(p, v)
}

// NoiseAdd accumulates a dissipative rate, delegating to the noise half.
func (os *MixedLindbladOpenSystem) NoiseAdd(left, right MixedDecoherenceProduct, v coeff.Complex) error {
	return os.noise.Add(left, right, v)
}

// Ungroup splits the open system back into its halves.
func (os *MixedLindbladOpenSystem) Ungroup() (*MixedHamiltonian, *MixedLindbladNoiseOperator) {
	return os.system, os.noise
}

// CurrentNumberSpins returns, per spin subsystem, the highest qubit index
// either half touches plus one.
func (os *MixedLindbladOpenSystem) CurrentNumberSpins() []int {
	return maxPerPosition(os.system.CurrentNumberSpins(), os.noise.CurrentNumberSpins())
}

// CurrentNumberBosonModes returns, per boson subsystem, the highest mode
// index either half touches plus one.
func (os *MixedLindbladOpenSystem) CurrentNumberBosonModes() []int {
	return maxPerPosition(os.system.CurrentNumberBosonModes(), os.noise.CurrentNumberBosonModes())
}

// CurrentNumberFermionModes returns, per fermion subsystem, the highest mode
// index either half touches plus one.
func (os *MixedLindbladOpenSystem) CurrentNumberFermionModes() []int {
	return maxPerPosition(os.system.CurrentNumberFermionModes(), os.noise.CurrentNumberFermionModes())
}

// Clone returns an independent copy.
func (os *MixedLindbladOpenSystem) Clone() *MixedLindbladOpenSystem {
	return &MixedLindbladOpenSystem{system: os.system.Clone(), noise: os.noise.Clone()}
}

// Truncate applies the threshold to both halves.
func (os *MixedLindbladOpenSystem) Truncate(threshold float64) *MixedLindbladOpenSystem {
	return &MixedLindbladOpenSystem{
		system: os.system.Truncate(threshold),
		noise:  os.noise.Truncate(threshold),
	}
}

// String renders both halves.
func (os *MixedLindbladOpenSystem) String() string {
	return "MixedLindbladOpenSystem{\nsystem: " + os.system.String() +
		"\nnoise: " + os.noise.String() + "\n}"
}
