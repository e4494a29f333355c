package mixed

import (
	"fmt"

	"github.com/katalvlaran/struqture/algebra"
	"github.com/katalvlaran/struqture/bosons"
	"github.com/katalvlaran/struqture/coeff"
	"github.com/katalvlaran/struqture/fermions"
	"github.com/katalvlaran/struqture/spins"
)

// HermitianMixedProduct keys one entry per conjugate pair of mixed products.
// Spin factors are self-adjoint and cannot tell the pair's members apart, so
// the decision falls to the ladder subsystems: the first boson subsystem
// with asymmetric index lists decides which member is stored, then the first
// such fermion subsystem.
type HermitianMixedProduct struct {
	spins    []spins.PauliProduct
	bosons   []bosons.BosonProduct
	fermions []fermions.FermionProduct
}

// classifySubsystems walks the ladder subsystems in storage order and
// returns the first non-symmetric pair form; a fully symmetric product is
// naturally Hermitian.
func classifySubsystems(bo []bosons.BosonProduct, fe []fermions.FermionProduct) algebra.PairForm {
	for _, b := range bo {
		if form := algebra.ClassifyLadderPair(b.Creators(), b.Annihilators()); form != algebra.PairSymmetric {
			return form
		}
	}
	for _, f := range fe {
		if form := algebra.ClassifyLadderPair(f.Creators(), f.Annihilators()); form != algebra.PairSymmetric {
			return form
		}
	}
	return algebra.PairSymmetric
}

// NewHermitianMixedProduct builds the canonical Hermitian key. Input whose
// deciding ladder subsystem is in the conjugate form is rejected with
// ErrNonCanonicalHermitianPair; use HermitianMixedValidPair to flip instead.
func NewHermitianMixedProduct(sp []spins.PauliProduct, bo []bosons.BosonProduct, fe []fermions.FermionProduct) (HermitianMixedProduct, error) {
	if classifySubsystems(bo, fe) == algebra.PairConjugate {
		return HermitianMixedProduct{}, ErrNonCanonicalHermitianPair
	}
	return HermitianMixedProduct{
		spins:    append([]spins.PauliProduct(nil), sp...),
		bosons:   append([]bosons.BosonProduct(nil), bo...),
		fermions: append([]fermions.FermionProduct(nil), fe...),
	}, nil
}

// HermitianMixedValidPair canonicalizes arbitrary input into the stored
// member of the conjugate pair. When the deciding subsystem is in the
// conjugate form, every factor conjugates, the factor signs multiply onto
// the value and the value conjugates.
func HermitianMixedValidPair(sp []spins.PauliProduct, bo []bosons.BosonProduct, fe []fermions.FermionProduct, value coeff.Complex) (HermitianMixedProduct, coeff.Complex, error) {
	if classifySubsystems(bo, fe) != algebra.PairConjugate {
		p, err := NewHermitianMixedProduct(sp, bo, fe)
		if err != nil {
			return HermitianMixedProduct{}, coeff.Complex{}, err
		}
		return p, value, nil
	}
	conj, sign := NewMixedProduct(sp, bo, fe).HermitianConjugate()
	p, err := NewHermitianMixedProduct(conj.spins, conj.bosons, conj.fermions)
	if err != nil {
		return HermitianMixedProduct{}, coeff.Complex{}, err
	}
	return p, value.Conj().MulSign(sign), nil
}

// Spins returns a copy of the spin subsystem factors.
func (p HermitianMixedProduct) Spins() []spins.PauliProduct {
	return append([]spins.PauliProduct(nil), p.spins...)
}

// Bosons returns a copy of the boson subsystem factors.
func (p HermitianMixedProduct) Bosons() []bosons.BosonProduct {
	return append([]bosons.BosonProduct(nil), p.bosons...)
}

// Fermions returns a copy of the fermion subsystem factors.
func (p HermitianMixedProduct) Fermions() []fermions.FermionProduct {
	return append([]fermions.FermionProduct(nil), p.fermions...)
}

// SubsystemCounts returns the numbers of spin, boson and fermion subsystems.
func (p HermitianMixedProduct) SubsystemCounts() (nSpins, nBosons, nFermions int) {
	return len(p.spins), len(p.bosons), len(p.fermions)
}

// IsIdentity reports whether every subsystem factor is the identity.
func (p HermitianMixedProduct) IsIdentity() bool { return p.ToMixedProduct().IsIdentity() }

// CurrentNumberSpins returns, per spin subsystem, the highest touched qubit
// index plus one.
func (p HermitianMixedProduct) CurrentNumberSpins() []int {
	return p.ToMixedProduct().CurrentNumberSpins()
}

// CurrentNumberBosonModes returns, per boson subsystem, the highest touched
// mode index plus one.
func (p HermitianMixedProduct) CurrentNumberBosonModes() []int {
	return p.ToMixedProduct().CurrentNumberBosonModes()
}

// CurrentNumberFermionModes returns, per fermion subsystem, the highest
// touched mode index plus one.
func (p HermitianMixedProduct) CurrentNumberFermionModes() []int {
	return p.ToMixedProduct().CurrentNumberFermionModes()
}

// HermitianConjugate returns the adjoint. A Hermitian key stands for
// p + p†, which is its own adjoint: the key itself with sign +1.
func (p HermitianMixedProduct) HermitianConjugate() (HermitianMixedProduct, float64) {
	return p, 1
}

// IsNaturalHermitian reports whether the stored product alone equals its
// adjoint.
func (p HermitianMixedProduct) IsNaturalHermitian() bool {
	return p.ToMixedProduct().IsNaturalHermitian()
}

// ToMixedProduct returns the stored member of the conjugate pair as a plain
// product.
func (p HermitianMixedProduct) ToMixedProduct() MixedProduct {
	return NewMixedProduct(p.spins, p.bosons, p.fermions)
}

// String renders the prefixed colon-joined form.
func (p HermitianMixedProduct) String() string { return p.ToMixedProduct().String() }

// ParseHermitianMixedProduct parses the prefixed colon-joined form,
// enforcing the canonical-pair invariant.
func ParseHermitianMixedProduct(s string) (HermitianMixedProduct, error) {
	parsed, err := ParseMixedProduct(s)
	if err != nil {
		return HermitianMixedProduct{}, err
	}
	p, err := NewHermitianMixedProduct(parsed.spins, parsed.bosons, parsed.fermions)
	if err != nil {
		return HermitianMixedProduct{}, fmt.Errorf("%w: %q", err, s)
	}
	return p, nil
}

// MarshalText encodes the canonical string form.
func (p HermitianMixedProduct) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText parses the canonical string form.
func (p *HermitianMixedProduct) UnmarshalText(text []byte) error {
	parsed, err := ParseHermitianMixedProduct(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
