package mixed

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/struqture/bosons"
	"github.com/katalvlaran/struqture/fermions"
	"github.com/katalvlaran/struqture/spins"
)

// MixedProduct is an operator product on a mixed system: one PauliProduct
// per spin subsystem, one BosonProduct per bosonic subsystem and one
// FermionProduct per fermionic subsystem. Each factor is canonical within
// its own species; the product itself carries no extra ordering.
type MixedProduct struct {
	spins    []spins.PauliProduct
	bosons   []bosons.BosonProduct
	fermions []fermions.FermionProduct
}

// NewMixedProduct builds a product from per-subsystem factors. The slices
// are copied; their lengths fix the subsystem arity of the product.
func NewMixedProduct(sp []spins.PauliProduct, bo []bosons.BosonProduct, fe []fermions.FermionProduct) MixedProduct {
	return MixedProduct{
		spins:    append([]spins.PauliProduct(nil), sp...),
		bosons:   append([]bosons.BosonProduct(nil), bo...),
		fermions: append([]fermions.FermionProduct(nil), fe...),
	}
}

// Spins returns a copy of the spin subsystem factors.
func (p MixedProduct) Spins() []spins.PauliProduct {
	return append([]spins.PauliProduct(nil), p.spins...)
}

// Bosons returns a copy of the boson subsystem factors.
func (p MixedProduct) Bosons() []bosons.BosonProduct {
	return append([]bosons.BosonProduct(nil), p.bosons...)
}

// Fermions returns a copy of the fermion subsystem factors.
func (p MixedProduct) Fermions() []fermions.FermionProduct {
	return append([]fermions.FermionProduct(nil), p.fermions...)
}

// SubsystemCounts returns the numbers of spin, boson and fermion subsystems.
func (p MixedProduct) SubsystemCounts() (nSpins, nBosons, nFermions int) {
	return len(p.spins), len(p.bosons), len(p.fermions)
}

// IsIdentity reports whether every subsystem factor is the identity.
func (p MixedProduct) IsIdentity() bool {
	for _, s := range p.spins {
		if !s.IsIdentity() {
			return false
		}
	}
	for _, b := range p.bosons {
		if !b.IsIdentity() {
			return false
		}
	}
	for _, f := range p.fermions {
		if !f.IsIdentity() {
			return false
		}
	}
	return true
}

// CurrentNumberSpins returns, per spin subsystem, the highest touched qubit
// index plus one.
func (p MixedProduct) CurrentNumberSpins() []int {
	out := make([]int, len(p.spins))
	for i, s := range p.spins {
		out[i] = s.CurrentNumberSpins()
	}
	return out
}

// CurrentNumberBosonModes returns, per boson subsystem, the highest touched
// mode index plus one.
func (p MixedProduct) CurrentNumberBosonModes() []int {
	out := make([]int, len(p.bosons))
	for i, b := range p.bosons {
		out[i] = b.CurrentNumberModes()
	}
	return out
}

// CurrentNumberFermionModes returns, per fermion subsystem, the highest
// touched mode index plus one.
func (p MixedProduct) CurrentNumberFermionModes() []int {
	out := make([]int, len(p.fermions))
	for i, f := range p.fermions {
		out[i] = f.CurrentNumberModes()
	}
	return out
}

// HermitianConjugate conjugates every subsystem factor and multiplies their
// signs; only fermionic subsystems can contribute a -1.
func (p MixedProduct) HermitianConjugate() (MixedProduct, float64) {
	sign := 1.0
	sp := make([]spins.PauliProduct, len(p.spins))
	for i, s := range p.spins {
		conj, sg := s.HermitianConjugate()
		sp[i] = conj
		sign *= sg
	}
	bo := make([]bosons.BosonProduct, len(p.bosons))
	for i, b := range p.bosons {
		conj, sg := b.HermitianConjugate()
		bo[i] = conj
		sign *= sg
	}
	fe := make([]fermions.FermionProduct, len(p.fermions))
	for i, f := range p.fermions {
		conj, sg := f.HermitianConjugate()
		fe[i] = conj
		sign *= sg
	}
	return MixedProduct{spins: sp, bosons: bo, fermions: fe}, sign
}

// IsNaturalHermitian reports whether the product equals its adjoint: every
// boson and fermion factor must; spin factors always do.
func (p MixedProduct) IsNaturalHermitian() bool {
	for _, b := range p.bosons {
		if !b.IsNaturalHermitian() {
			return false
		}
	}
	for _, f := range p.fermions {
		if !f.IsNaturalHermitian() {
			return false
		}
	}
	return true
}

// String renders the prefixed colon-joined form, e.g. "S0X:Bc0a1:Fc0a0:".
func (p MixedProduct) String() string {
	var b strings.Builder
	for _, s := range p.spins {
		b.WriteString("S" + s.String() + ":")
	}
	for _, bp := range p.bosons {
		b.WriteString("B" + bp.String() + ":")
	}
	for _, f := range p.fermions {
		b.WriteString("F" + f.String() + ":")
	}
	return b.String()
}

// subsystemRank orders the species prefixes as the string form renders
// them. Parsers reject input whose segments regress, so parse and format
// stay a strict round trip.
func subsystemRank(prefix byte) int {
	switch prefix {
	case 'S':
		return 0
	case 'B':
		return 1
	default:
		return 2
	}
}

// ParseMixedProduct parses the prefixed colon-joined form. Subsystem
// segments must appear in S, B, F order.
func ParseMixedProduct(s string) (MixedProduct, error) {
	var sp []spins.PauliProduct
	var bo []bosons.BosonProduct
	var fe []fermions.FermionProduct
	rank := 0
	for _, sub := range strings.Split(s, ":") {
		if sub == "" {
			continue
		}
		switch sub[0] {
		case 'S':
			parsed, err := spins.ParsePauliProduct(sub[1:])
			if err != nil {
				return MixedProduct{}, fmt.Errorf("%w: %v", ErrMalformedProduct, err)
			}
			sp = append(sp, parsed)
		case 'B':
			parsed, err := bosons.ParseBosonProduct(sub[1:])
			if err != nil {
				return MixedProduct{}, fmt.Errorf("%w: %v", ErrMalformedProduct, err)
			}
			bo = append(bo, parsed)
		case 'F':
			parsed, err := fermions.ParseFermionProduct(sub[1:])
			if err != nil {
				return MixedProduct{}, fmt.Errorf("%w: %v", ErrMalformedProduct, err)
			}
			fe = append(fe, parsed)
		default:
			return MixedProduct{}, fmt.Errorf("%w: subsystem %q", ErrMalformedProduct, sub)
		}
		r := subsystemRank(sub[0])
		if r < rank {
			return MixedProduct{}, fmt.Errorf("%w: subsystem %q out of order", ErrMalformedProduct, sub)
		}
		rank = r
	}
	return MixedProduct{spins: sp, bosons: bo, fermions: fe}, nil
}

// MarshalText encodes the canonical string form.
func (p MixedProduct) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText parses the canonical string form.
func (p *MixedProduct) UnmarshalText(text []byte) error {
	parsed, err := ParseMixedProduct(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
