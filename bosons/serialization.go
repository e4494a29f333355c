package bosons

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
	typeNameBosonOperator   = "BosonOperator"
	typeNameBosonHamilton   = "BosonHamiltonian"
	typeNameBosonNoise      = "BosonLindbladNoiseOperator"
	typeNameBosonOpenSystem = "BosonLindbladOpenSystem"
)

// ---- BosonOperator ----------------------------------------------------------

type bosonOperatorPayload struct {
	Items       []schema.ComplexItem `json:"items" msgpack:"items"`
	NumberModes *int                 `json:"number_modes" msgpack:"number_modes"`
	Meta        schema.Meta          `json:"serialisation_meta" msgpack:"serialisation_meta"`
}

func (op *BosonOperator) payload() bosonOperatorPayload {
	items := make([]schema.ComplexItem, 0, op.terms.Len())
	op.terms.Iter(func(p BosonProduct, v coeff.Complex) bool {
		items = append(items, schema.ComplexItem{Key: p.String(), Re: v.Re, Im: v.Im})
		return true
	})
	return bosonOperatorPayload{
		Items:       items,
		NumberModes: op.numberModes,
		Meta:        schema.NewMeta(typeNameBosonOperator),
	}
}

func bosonOperatorFromPayload(pl bosonOperatorPayload) (*BosonOperator, error) {
	if err := schema.Check(typeNameBosonOperator, pl.Meta); err != nil {
		return nil, err
	}
	out := NewBosonOperator()
	out.numberModes = pl.NumberModes
	for _, it := range pl.Items {
		p, err := ParseBosonProduct(it.Key)
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
func (op *BosonOperator) MarshalJSON() ([]byte, error) { return json.Marshal(op.payload()) }

// UnmarshalJSON decodes the envelope, verifying type name and version.
func (op *BosonOperator) UnmarshalJSON(data []byte) error {
	var pl bosonOperatorPayload
	if err := json.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := bosonOperatorFromPayload(pl)
	if err != nil {
		return err
	}
	*op = *decoded
	return nil
}

// MarshalBinary encodes the same envelope through msgpack.
func (op *BosonOperator) MarshalBinary() ([]byte, error) { return msgpack.Marshal(op.payload()) }

// UnmarshalBinary decodes the msgpack envelope.
func (op *BosonOperator) UnmarshalBinary(data []byte) error {
	var pl bosonOperatorPayload
	if err := msgpack.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := bosonOperatorFromPayload(pl)
	if err != nil {
		return err
	}
	*op = *decoded
	return nil
}

// BosonOperatorFromJSON1 converts a struqture 1.x BosonOperator or
// BosonSystem JSON payload.
func BosonOperatorFromJSON1(data []byte) (*BosonOperator, error) {
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
		inner, err := BosonOperatorFromJSON1(env.Operator)
		if err != nil {
			return nil, err
		}
		inner.numberModes = env.NumberModes
		return inner, nil
	}
	if err := schema.CheckV1(env.Version); err != nil {
		return nil, err
	}
	out := NewBosonOperator()
	for _, it := range env.Items {
		p, err := ParseBosonProduct(it.Key)
		if err != nil {
			return nil, err
		}
		if err := out.Add(p, coeff.ComplexOf(it.Re, it.Im)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ---- BosonHamiltonian -------------------------------------------------------

type bosonHamiltonianPayload struct {
	Items       []schema.ComplexItem `json:"items" msgpack:"items"`
	NumberModes *int                 `json:"number_modes" msgpack:"number_modes"`
	Meta        schema.Meta          `json:"serialisation_meta" msgpack:"serialisation_meta"`
}

func (h *BosonHamiltonian) payload() bosonHamiltonianPayload {
	items := make([]schema.ComplexItem, 0, h.terms.Len())
	h.terms.Iter(func(p HermitianBosonProduct, v coeff.Complex) bool {
		items = append(items, schema.ComplexItem{Key: p.String(), Re: v.Re, Im: v.Im})
		return true
	})
	return bosonHamiltonianPayload{
		Items:       items,
		NumberModes: h.numberModes,
		Meta:        schema.NewMeta(typeNameBosonHamilton),
	}
}

func bosonHamiltonianFromPayload(pl bosonHamiltonianPayload) (*BosonHamiltonian, error) {
	if err := schema.Check(typeNameBosonHamilton, pl.Meta); err != nil {
		return nil, err
	}
	return bosonHamiltonianFromItems(pl.Items, pl.NumberModes)
}

func bosonHamiltonianFromItems(items []schema.ComplexItem, numberModes *int) (*BosonHamiltonian, error) {
	out := NewBosonHamiltonian()
	out.numberModes = numberModes
	for _, it := range items {
		p, err := ParseHermitianBosonProduct(it.Key)
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
func (h *BosonHamiltonian) MarshalJSON() ([]byte, error) { return json.Marshal(h.payload()) }

// UnmarshalJSON decodes the envelope, verifying type name and version.
func (h *BosonHamiltonian) UnmarshalJSON(data []byte) error {
	var pl bosonHamiltonianPayload
	if err := json.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := bosonHamiltonianFromPayload(pl)
	if err != nil {
		return err
	}
	*h = *decoded
	return nil
}

// MarshalBinary encodes the same envelope through msgpack.
func (h *BosonHamiltonian) MarshalBinary() ([]byte, error) { return msgpack.Marshal(h.payload()) }

// UnmarshalBinary decodes the msgpack envelope.
func (h *BosonHamiltonian) UnmarshalBinary(data []byte) error {
	var pl bosonHamiltonianPayload
	if err := msgpack.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := bosonHamiltonianFromPayload(pl)
	if err != nil {
		return err
	}
	*h = *decoded
	return nil
}

// BosonHamiltonianFromJSON1 converts a struqture 1.x BosonHamiltonian or
// BosonHamiltonianSystem JSON payload.
func BosonHamiltonianFromJSON1(data []byte) (*BosonHamiltonian, error) {
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
		inner, err := BosonHamiltonianFromJSON1(env.Hamiltonian)
		if err != nil {
			return nil, err
		}
		inner.numberModes = env.NumberModes
		return inner, nil
	}
	if err := schema.CheckV1(env.Version); err != nil {
		return nil, err
	}
	return bosonHamiltonianFromItems(env.Items, nil)
}

// ---- BosonLindbladNoiseOperator ---------------------------------------------

type bosonNoisePayload struct {
	Items       []schema.PairItem `json:"items" msgpack:"items"`
	NumberModes *int              `json:"number_modes" msgpack:"number_modes"`
	Meta        schema.Meta       `json:"serialisation_meta" msgpack:"serialisation_meta"`
}

func (no *BosonLindbladNoiseOperator) payload() bosonNoisePayload {
	items := make([]schema.PairItem, 0, no.terms.Len())
	no.terms.Iter(func(k algebra.Pair[BosonProduct], v coeff.Complex) bool {
		items = append(items, schema.PairItem{
			Left: k.Left.String(), Right: k.Right.String(), Re: v.Re, Im: v.Im,
		})
		return true
	})
	return bosonNoisePayload{
		Items:       items,
		NumberModes: no.numberModes,
		Meta:        schema.NewMeta(typeNameBosonNoise),
	}
}

func bosonNoiseFromItems(items []schema.PairItem, numberModes *int) (*BosonLindbladNoiseOperator, error) {
	out := NewBosonLindbladNoiseOperator()
	out.numberModes = numberModes
	for _, it := range items {
		left, err := ParseBosonProduct(it.Left)
		if err != nil {
			return nil, err
		}
		right, err := ParseBosonProduct(it.Right)
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
func (no *BosonLindbladNoiseOperator) MarshalJSON() ([]byte, error) {
	return json.Marshal(no.payload())
}

// UnmarshalJSON decodes the envelope, verifying type name and version.
func (no *BosonLindbladNoiseOperator) UnmarshalJSON(data []byte) error {
	var pl bosonNoisePayload
	if err := json.Unmarshal(data, &pl); err != nil {
		return err
	}
	if err := schema.Check(typeNameBosonNoise, pl.Meta); err != nil {
		return err
	}
	decoded, err := bosonNoiseFromItems(pl.Items, pl.NumberModes)
	if err != nil {
		return err
	}
	*no = *decoded
	return nil
}

// MarshalBinary encodes the same envelope through msgpack.
func (no *BosonLindbladNoiseOperator) MarshalBinary() ([]byte, error) {
	return msgpack.Marshal(no.payload())
}

// UnmarshalBinary decodes the msgpack envelope.
func (no *BosonLindbladNoiseOperator) UnmarshalBinary(data []byte) error {
	var pl bosonNoisePayload
	if err := msgpack.Unmarshal(data, &pl); err != nil {
		return err
	}
	if err := schema.Check(typeNameBosonNoise, pl.Meta); err != nil {
		return err
	}
	decoded, err := bosonNoiseFromItems(pl.Items, pl.NumberModes)
	if err != nil {
		return err
	}
	*no = *decoded
	return nil
}

// BosonLindbladNoiseOperatorFromJSON1 converts a struqture 1.x
// BosonLindbladNoiseOperator or BosonLindbladNoiseSystem JSON payload.
func BosonLindbladNoiseOperatorFromJSON1(data []byte) (*BosonLindbladNoiseOperator, error) {
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
		inner, err := BosonLindbladNoiseOperatorFromJSON1(env.Operator)
		if err != nil {
			return nil, err
		}
		inner.numberModes = env.NumberModes
		return inner, nil
	}
	if err := schema.CheckV1(env.Version); err != nil {
		return nil, err
	}
	return bosonNoiseFromItems(env.Items, nil)
}

// ---- BosonLindbladOpenSystem ------------------------------------------------

type bosonOpenSystemPayload struct {
	System bosonHamiltonianPayload `json:"system" msgpack:"system"`
	Noise  bosonNoisePayload       `json:"noise" msgpack:"noise"`
	Meta   schema.Meta             `json:"serialisation_meta" msgpack:"serialisation_meta"`
}

func (os *BosonLindbladOpenSystem) payload() bosonOpenSystemPayload {
	return bosonOpenSystemPayload{
		System: os.system.payload(),
		Noise:  os.noise.payload(),
		Meta:   schema.NewMeta(typeNameBosonOpenSystem),
	}
}

func bosonOpenSystemFromPayload(pl bosonOpenSystemPayload) (*BosonLindbladOpenSystem, error) {
	if err := schema.Check(typeNameBosonOpenSystem, pl.Meta); err != nil {
		return nil, err
	}
	system, err := bosonHamiltonianFromPayload(pl.System)
	if err != nil {
		return nil, err
	}
	if err := schema.Check(typeNameBosonNoise, pl.Noise.Meta); err != nil {
		return nil, err
	}
	noise, err := bosonNoiseFromItems(pl.Noise.Items, pl.Noise.NumberModes)
	if err != nil {
		return nil, err
	}
	return GroupBosonLindbladOpenSystem(system, noise)
}

// MarshalJSON encodes both halves with their own envelopes plus the open
// system's meta block.
func (os *BosonLindbladOpenSystem) MarshalJSON() ([]byte, error) {
	return json.Marshal(os.payload())
}

// UnmarshalJSON decodes the nested envelope.
func (os *BosonLindbladOpenSystem) UnmarshalJSON(data []byte) error {
	var pl bosonOpenSystemPayload
	if err := json.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := bosonOpenSystemFromPayload(pl)
	if err != nil {
		return err
	}
	*os = *decoded
	return nil
}

// MarshalBinary encodes the same nested envelope through msgpack.
func (os *BosonLindbladOpenSystem) MarshalBinary() ([]byte, error) {
	return msgpack.Marshal(os.payload())
}

// UnmarshalBinary decodes the msgpack envelope.
func (os *BosonLindbladOpenSystem) UnmarshalBinary(data []byte) error {
	var pl bosonOpenSystemPayload
	if err := msgpack.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := bosonOpenSystemFromPayload(pl)
	if err != nil {
		return err
	}
	*os = *decoded
	return nil
}

// BosonLindbladOpenSystemFromJSON1 converts a struqture 1.x
// BosonLindbladOpenSystem JSON payload.
func BosonLindbladOpenSystemFromJSON1(data []byte) (*BosonLindbladOpenSystem, error) {
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
	system, err := BosonHamiltonianFromJSON1(env.System)
	if err != nil {
		return nil, err
	}
	noise, err := BosonLindbladNoiseOperatorFromJSON1(env.Noise)
	if err != nil {
		return nil, err
	}
	return GroupBosonLindbladOpenSystem(system, noise)
}
