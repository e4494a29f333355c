package mixed

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/struqture/bosons"
	"github.com/katalvlaran/struqture/fermions"
	"github.com/katalvlaran/struqture/spins"
)

// MixedDecoherenceProduct indexes mixed Lindblad noise terms: decoherence
// products on the spin subsystems, ladder products on the rest. The
// decoherence alphabet {I, X, iY, Z} closes under real-signed multiplication,
// which keeps noise rate matrices real-structured.
type MixedDecoherenceProduct struct {
	spins    []spins.DecoherenceProduct
	bosons   []bosons.BosonProduct
	fermions []fermions.FermionProduct
}

// NewMixedDecoherenceProduct builds a product from per-subsystem factors.
func NewMixedDecoherenceProduct(sp []spins.DecoherenceProduct, bo []bosons.BosonProduct, fe []fermions.FermionProduct) MixedDecoherenceProduct {
	return MixedDecoherenceProduct{
		spins:    append([]spins.DecoherenceProduct(nil), sp...),
		bosons:   append([]bosons.BosonProduct(nil), bo...),
		fermions: append([]fermions.FermionProduct(nil), fe...),
	}
}

// Spins returns a copy of the spin subsystem factors.
func (p MixedDecoherenceProduct) Spins() []spins.DecoherenceProduct {
	return append([]spins.DecoherenceProduct(nil), p.spins...)
}

// Bosons returns a copy of the boson subsystem factors.
func (p MixedDecoherenceProduct) Bosons() []bosons.BosonProduct {
	return append([]bosons.BosonProduct(nil), p.bosons...)
}

// Fermions returns a copy of the fermion subsystem factors.
func (p MixedDecoherenceProduct) Fermions() []fermions.FermionProduct {
	return append([]fermions.FermionProduct(nil), p.fermions...)
}

// SubsystemCounts returns the numbers of spin, boson and fermion subsystems.
func (p MixedDecoherenceProduct) SubsystemCounts() (nSpins, nBosons, nFermions int) {
	return len(p.spins), len(p.bosons), len(p.fermions)
}

// CurrentNumberSpins returns, per spin subsystem, the highest touched qubit
// index plus one.
func (p MixedDecoherenceProduct) CurrentNumberSpins() []int {
	out := make([]int, len(p.spins))
	for i, s := range p.spins {
		out[i] = s.CurrentNumberSpins()
	}
	return out
}

// CurrentNumberBosonModes returns, per boson subsystem, the highest touched
// mode index plus one.
func (p MixedDecoherenceProduct) CurrentNumberBosonModes() []int {
	out := make([]int, len(p.bosons))
	for i, b := range p.bosons {
		out[i] = b.CurrentNumberModes()
	}
	return out
}

// CurrentNumberFermionModes returns, per fermion subsystem, the highest
// touched mode index plus one.
func (p MixedDecoherenceProduct) CurrentNumberFermionModes() []int {
	out := make([]int, len(p.fermions))
	for i, f := range p.fermions {
		out[i] = f.CurrentNumberModes()
	}
	return out
}

// IsIdentity reports whether every subsystem factor is the identity.
func (p MixedDecoherenceProduct) IsIdentity() bool {
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

// HermitianConjugate conjugates every subsystem factor and multiplies their
// signs; iY spin factors and fermionic reordering both contribute -1s.
func (p MixedDecoherenceProduct) HermitianConjugate() (MixedDecoherenceProduct, float64) {
	sign := 1.0
	sp := make([]spins.DecoherenceProduct, len(p.spins))
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
	return MixedDecoherenceProduct{spins: sp, bosons: bo, fermions: fe}, sign
}

// String renders the prefixed colon-joined form, e.g. "S0iY:Bc0a0:FI:".
func (p MixedDecoherenceProduct) String() string {
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

// ParseMixedDecoherenceProduct parses the prefixed colon-joined form.
// Subsystem segments must appear in S, B, F order.
func ParseMixedDecoherenceProduct(s string) (MixedDecoherenceProduct, error) {
	var sp []spins.DecoherenceProduct
	var bo []bosons.BosonProduct
	var fe []fermions.FermionProduct
	rank := 0
	for _, sub := range strings.Split(s, ":") {
		if sub == "" {
			continue
		}
		switch sub[0] {
		case 'S':
			parsed, err := spins.ParseDecoherenceProduct(sub[1:])
			if err != nil {
				return MixedDecoherenceProduct{}, fmt.Errorf("%w: %v", ErrMalformedProduct, err)
			}
			sp = append(sp, parsed)
		case 'B':
			parsed, err := bosons.ParseBosonProduct(sub[1:])
			if err != nil {
				return MixedDecoherenceProduct{}, fmt.Errorf("%w: %v", ErrMalformedProduct, err)
			}
			bo = append(bo, parsed)
		case 'F':
			parsed, err := fermions.ParseFermionProduct(sub[1:])
			if err != nil {
				return MixedDecoherenceProduct{}, fmt.Errorf("%w: %v", ErrMalformedProduct, err)
			}
			fe = append(fe, parsed)
		default:
			return MixedDecoherenceProduct{}, fmt.Errorf("%w: subsystem %q", ErrMalformedProduct, sub)
		}
		r := subsystemRank(sub[0])
		if r < rank {
			return MixedDecoherenceProduct{}, fmt.Errorf("%w: subsystem %q out of order", ErrMalformedProduct, sub)
		}
		rank = r
	}
	return MixedDecoherenceProduct{spins: sp, bosons: bo, fermions: fe}, nil
}

// MarshalText encodes the canonical string form.
func (p MixedDecoherenceProduct) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText parses the canonical string form.
func (p *MixedDecoherenceProduct) UnmarshalText(text []byte) error {
	parsed, err := ParseMixedDecoherenceProduct(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
