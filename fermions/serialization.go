package fermions

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/struqture/algebra"
	"github.com/katalvlaran/struqture/coeff"
	"github.com/katalvlaran/struqture/schema"
)

// Serialized type names stamped into payloads.
const (
	typeNameFermionOperator   = "FermionOperator"
	typeNameFermionHamilton   = "FermionHamiltonian"
	typeNameFermionNoise      = "FermionLindbladNoiseOperator"
	typeNameFermionOpenSystem = "FermionLindbladOpenSystem"
)

// ---- FermionOperator --------------------------------------------------------

type fermionOperatorPayload struct {
	Items       []schema.ComplexItem `json:"items" msgpack:"items"`
	NumberModes *int                 `json:"number_modes" msgpack:"number_modes"`
	Meta        schema.Meta          `json:"serialisation_meta" msgpack:"serialisation_meta"`
}

func (op *FermionOperator) payload() fermionOperatorPayload {
	items := make([]schema.ComplexItem, 0, op.terms.Len())
	op.terms.Iter(func(p FermionProduct, v coeff.Complex) bool {
		items = append(items, schema.ComplexItem{Key: p.String(), Re: v.Re, Im: v.Im})
		return true
	})
	return fermionOperatorPayload{
		Items:       items,
		NumberModes: op.numberModes,
		Meta:        schema.NewMeta(typeNameFermionOperator),
	}
}

func fermionOperatorFromPayload(pl fermionOperatorPayload) (*FermionOperator, error) {
	if err := schema.Check(typeNameFermionOperator, pl.Meta); err != nil {
		return nil, err
	}
	out := NewFermionOperator()
	out.numberModes = pl.NumberModes
	for _, it := range pl.Items {
		p, err := ParseFermionProduct(it.Key)
		if err != nil {
			return nil, err
		}
		if err := out.Add(p, coeff.ComplexOf(it.Re, it.Im)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// MarshalJSON encodes the operator as its versioned item-list envelope.
func (op *FermionOperator) MarshalJSON() ([]byte, error) { return json.Marshal(op.payload()) }

// UnmarshalJSON decodes the envelope, verifying type name and version.
func (op *FermionOperator) UnmarshalJSON(data []byte) error {
	var pl fermionOperatorPayload
	if err := json.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := fermionOperatorFromPayload(pl)
	if err != nil {
		return err
	}
	*op = *decoded
	return nil
}

// MarshalBinary encodes the same envelope through msgpack.
func (op *FermionOperator) MarshalBinary() ([]byte, error) { return msgpack.Marshal(op.payload()) }

// UnmarshalBinary decodes the msgpack envelope.
func (op *FermionOperator) UnmarshalBinary(data []byte) error {
	var pl fermionOperatorPayload
	if err := msgpack.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := fermionOperatorFromPayload(pl)
	if err != nil {
		return err
	}
	*op = *decoded
	return nil
}

// FermionOperatorFromJSON1 converts a struqture 1.x FermionOperator or
// FermionSystem JSON payload.
func FermionOperatorFromJSON1(data []byte) (*FermionOperator, error) {
	var env struct {
		Items       []schema.ComplexItem `json:"items"`
		Version     *schema.V1Version    `json:"_struqture_version"`
		NumberModes *int                 `json:"number_modes"`
		Operator    json.RawMessage      `json:"operator"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.Operator != nil {
		inner, err := FermionOperatorFromJSON1(env.Operator)
		if err != nil {
			return nil, err
		}
		inner.numberModes = env.NumberModes
		return inner, nil
	}
	if err := schema.CheckV1(env.Version); err != nil {
		return nil, err
	}
	out := NewFermionOperator()
	for _, it := range env.Items {
		p, err := ParseFermionProduct(it.Key)
		if err != nil {
			return nil, err
		}
		if err := out.Add(p, coeff.ComplexOf(it.Re, it.Im)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ---- FermionHamiltonian -----------------------------------------------------

type fermionHamiltonianPayload struct {
	Items       []schema.ComplexItem `json:"items" msgpack:"items"`
	NumberModes *int                 `json:"number_modes" msgpack:"number_modes"`
	Meta        schema.Meta          `json:"serialisation_meta" msgpack:"serialisation_meta"`
}

func (h *FermionHamiltonian) payload() fermionHamiltonianPayload {
	items := make([]schema.ComplexItem, 0, h.terms.Len())
	h.terms.Iter(func(p HermitianFermionProduct, v coeff.Complex) bool {
		items = append(items, schema.ComplexItem{Key: p.String(), Re: v.Re, Im: v.Im})
		return true
	})
	return fermionHamiltonianPayload{
		Items:       items,
		NumberModes: h.numberModes,
		Meta:        schema.NewMeta(typeNameFermionHamilton),
	}
}

func fermionHamiltonianFromPayload(pl fermionHamiltonianPayload) (*FermionHamiltonian, error) {
	if err := schema.Check(typeNameFermionHamilton, pl.Meta); err != nil {
		return nil, err
	}
	return fermionHamiltonianFromItems(pl.Items, pl.NumberModes)
}

func fermionHamiltonianFromItems(items []schema.ComplexItem, numberModes *int) (*FermionHamiltonian, error) {
	out := NewFermionHamiltonian()
	out.numberModes = numberModes
	for _, it := range items {
		p, err := ParseHermitianFermionProduct(it.Key)
		if err != nil {
			return nil, err
		}
		if err := out.Add(p, coeff.ComplexOf(it.Re, it.Im)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// MarshalJSON encodes the Hamiltonian as its versioned item-list envelope.
func (h *FermionHamiltonian) MarshalJSON() ([]byte, error) { return json.Marshal(h.payload()) }

// UnmarshalJSON decodes the envelope, verifying type name and version.
func (h *FermionHamiltonian) UnmarshalJSON(data []byte) error {
	var pl fermionHamiltonianPayload
	if err := json.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := fermionHamiltonianFromPayload(pl)
	if err != nil {
		return err
	}
	*h = *decoded
	return nil
}

// MarshalBinary encodes the same envelope through msgpack.
func (h *FermionHamiltonian) MarshalBinary() ([]byte, error) { return msgpack.Marshal(h.payload()) }

// UnmarshalBinary decodes the msgpack envelope.
func (h *FermionHamiltonian) UnmarshalBinary(data []byte) error {
	var pl fermionHamiltonianPayload
	if err := msgpack.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := fermionHamiltonianFromPayload(pl)
	if err != nil {
		return err
	}
	*h = *decoded
	return nil
}

// FermionHamiltonianFromJSON1 converts a struqture 1.x FermionHamiltonian or
// FermionHamiltonianSystem JSON payload.
func FermionHamiltonianFromJSON1(data []byte) (*FermionHamiltonian, error) {
	var env struct {
		Items       []schema.ComplexItem `json:"items"`
		Version     *schema.V1Version    `json:"_struqture_version"`
		NumberModes *int                 `json:"number_modes"`
		Hamiltonian json.RawMessage      `json:"hamiltonian"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.Hamiltonian != nil {
		inner, err := FermionHamiltonianFromJSON1(env.Hamiltonian)
		if err != nil {
			return nil, err
		}
		inner.numberModes = env.NumberModes
		return inner, nil
	}
	if err := schema.CheckV1(env.Version); err != nil {
		return nil, err
	}
	return fermionHamiltonianFromItems(env.Items, nil)
}

// ---- FermionLindbladNoiseOperator -------------------------------------------

type fermionNoisePayload struct {
	Items       []schema.PairItem `json:"items" msgpack:"items"`
	NumberModes *int              `json:"number_modes" msgpack:"number_modes"`
	Meta        schema.Meta       `json:"serialisation_meta" msgpack:"serialisation_meta"`
}

func (no *FermionLindbladNoiseOperator) payload() fermionNoisePayload {
	items := make([]schema.PairItem, 0, no.terms.Len())
	no.terms.Iter(func(k algebra.Pair[FermionProduct], v coeff.Complex) bool {
		items = append(items, schema.PairItem{
			Left: k.Left.String(), Right: k.Right.String(), Re: v.Re, Im: v.Im,
		})
		return true
	})
	return fermionNoisePayload{
		Items:       items,
		NumberModes: no.numberModes,
		Meta:        schema.NewMeta(typeNameFermionNoise),
	}
}

func fermionNoiseFromItems(items []schema.PairItem, numberModes *int) (*FermionLindbladNoiseOperator, error) {
	out := NewFermionLindbladNoiseOperator()
	out.numberModes = numberModes
	for _, it := range items {
		left, err := ParseFermionProduct(it.Left)
		if err != nil {
			return nil, err
		}
		right, err := ParseFermionProduct(it.Right)
		if err != nil {
			return nil, err
		}
		if err := out.Add(left, right, coeff.ComplexOf(it.Re, it.Im)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// MarshalJSON encodes the noise operator as its versioned item-list envelope.
func (no *FermionLindbladNoiseOperator) MarshalJSON() ([]byte, error) {
	return json.Marshal(no.payload())
}

// UnmarshalJSON decodes the envelope, verifying type name and version.
func (no *FermionLindbladNoiseOperator) UnmarshalJSON(data []byte) error {
	var pl fermionNoisePayload
	if err := json.Unmarshal(data, &pl); err != nil {
		return err
	}
	if err := schema.Check(typeNameFermionNoise, pl.Meta); err != nil {
		return err
	}
	decoded, err := fermionNoiseFromItems(pl.Items, pl.NumberModes)
	if err != nil {
		return err
	}
	*no = *decoded
	return nil
}

// MarshalBinary encodes the same envelope through msgpack.
func (no *FermionLindbladNoiseOperator) MarshalBinary() ([]byte, error) {
	return msgpack.Marshal(no.payload())
}

// UnmarshalBinary decodes the msgpack envelope.
func (no *FermionLindbladNoiseOperator) UnmarshalBinary(data []byte) error {
	var pl fermionNoisePayload
	if err := msgpack.Unmarshal(data, &pl); err != nil {
		return err
	}
	if err := schema.Check(typeNameFermionNoise, pl.Meta); err != nil {
		return err
	}
	decoded, err := fermionNoiseFromItems(pl.Items, pl.NumberModes)
	if err != nil {
		return err
	}
	*no = *decoded
	return nil
}

// FermionLindbladNoiseOperatorFromJSON1 converts a struqture 1.x
// FermionLindbladNoiseOperator or FermionLindbladNoiseSystem JSON payload.
func FermionLindbladNoiseOperatorFromJSON1(data []byte) (*FermionLindbladNoiseOperator, error) {
	var env struct {
		Items       []schema.PairItem `json:"items"`
		Version     *schema.V1Version `json:"_struqture_version"`
		NumberModes *int              `json:"number_modes"`
		Operator    json.RawMessage   `json:"operator"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.Operator != nil {
		inner, err := FermionLindbladNoiseOperatorFromJSON1(env.Operator)
		if err != nil {
			return nil, err
		}
		inner.numberModes = env.NumberModes
		return inner, nil
	}
	if err := schema.CheckV1(env.Version); err != nil {
		return nil, err
	}
	return fermionNoiseFromItems(env.Items, nil)
}

// ---- FermionLindbladOpenSystem ----------------------------------------------

type fermionOpenSystemPayload struct {
	System fermionHamiltonianPayload `json:"system" msgpack:"system"`
	Noise  fermionNoisePayload       `json:"noise" msgpack:"noise"`
	Meta   schema.Meta               `json:"serialisation_meta" msgpack:"serialisation_meta"`
}

func (os *FermionLindbladOpenSystem) payload() fermionOpenSystemPayload {
	return fermionOpenSystemPayload{
		System: os.system.payload(),
		Noise:  os.noise.payload(),
		Meta:   schema.NewMeta(typeNameFermionOpenSystem),
	}
}

func fermionOpenSystemFromPayload(pl fermionOpenSystemPayload) (*FermionLindbladOpenSystem, error) {
	if err := schema.Check(typeNameFermionOpenSystem, pl.Meta); err != nil {
		return nil, err
	}
	system, err := fermionHamiltonianFromPayload(pl.System)
	if err != nil {
		return nil, err
	}
	if err := schema.Check(typeNameFermionNoise, pl.Noise.Meta); err != nil {
		return nil, err
	}
	noise, err := fermionNoiseFromItems(pl.Noise.Items, pl.Noise.NumberModes)
	if err != nil {
		return nil, err
	}
	return GroupFermionLindbladOpenSystem(system, noise)
}

// MarshalJSON encodes both halves with their own envelopes plus the open
// system's meta block.
func (os *FermionLindbladOpenSystem) MarshalJSON() ([]byte, error) {
	return json.Marshal(os.payload())
}

// UnmarshalJSON decodes the nested envelope.
func (os *FermionLindbladOpenSystem) UnmarshalJSON(data []byte) error {
	var pl fermionOpenSystemPayload
	if err := json.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := fermionOpenSystemFromPayload(pl)
	if err != nil {
		return err
	}
	*os = *decoded
	return nil
}

// MarshalBinary encodes the same nested envelope through msgpack.
func (os *FermionLindbladOpenSystem) MarshalBinary() ([]byte, error) {
	return msgpack.Marshal(os.payload())
}

// UnmarshalBinary decodes the msgpack envelope.
func (os *FermionLindbladOpenSystem) UnmarshalBinary(data []byte) error {
	var pl fermionOpenSystemPayload
	if err := msgpack.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := fermionOpenSystemFromPayload(pl)
	if err != nil {
		return err
	}
	*os = *decoded
	return nil
}

// FermionLindbladOpenSystemFromJSON1 converts a struqture 1.x
// FermionLindbladOpenSystem JSON payload.
func FermionLindbladOpenSystemFromJSON1(data []byte) (*FermionLindbladOpenSystem, error) {
	var env struct {
		System json.RawMessage `json:"system"`
		Noise  json.RawMessage `json:"noise"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.System == nil || env.Noise == nil {
		return nil, fmt.Errorf("%w: open system needs system and noise", schema.ErrNotV1)
	}
	system, err := FermionHamiltonianFromJSON1(env.System)
	if err != nil {
		return nil, err
	}
	noise, err := FermionLindbladNoiseOperatorFromJSON1(env.Noise)
	if err != nil {
		return nil, err
	}
	return GroupFermionLindbladOpenSystem(system, noise)
}
