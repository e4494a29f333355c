package spins

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
	typeNamePauliOperator   = "PauliOperator"
	typeNamePauliHamilton   = "PauliHamiltonian"
	typeNamePauliNoise      = "PauliLindbladNoiseOperator"
	typeNamePauliOpenSystem = "PauliLindbladOpenSystem"
)

// ---- PauliOperator ----------------------------------------------------------

type pauliOperatorPayload struct {
	Items       []schema.ComplexItem `json:"items" msgpack:"items"`
	NumberSpins *int                 `json:"number_spins" msgpack:"number_spins"`
	Meta        schema.Meta          `json:"serialisation_meta" msgpack:"serialisation_meta"`
}

func (op *PauliOperator) payload() pauliOperatorPayload {
	items := make([]schema.ComplexItem, 0, op.terms.Len())
	op.terms.Iter(func(p PauliProduct, v coeff.Complex) bool {
		items = append(items, schema.ComplexItem{Key: p.String(), Re: v.Re, Im: v.Im})
		return true
	})
	return pauliOperatorPayload{
		Items:       items,
		NumberSpins: op.numberSpins,
		Meta:        schema.NewMeta(typeNamePauliOperator),
	}
}

func pauliOperatorFromPayload(pl pauliOperatorPayload) (*PauliOperator, error) {
	if err := schema.Check(typeNamePauliOperator, pl.Meta); err != nil {
		return nil, err
	}
	out := NewPauliOperator()
	out.numberSpins = pl.NumberSpins
	for _, it := range pl.Items {
		p, err := ParsePauliProduct(it.Key)
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
func (op *PauliOperator) MarshalJSON() ([]byte, error) { return json.Marshal(op.payload()) }

// UnmarshalJSON decodes the envelope, verifying type name and version.
func (op *PauliOperator) UnmarshalJSON(data []byte) error {
	var pl pauliOperatorPayload
	if err := json.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := pauliOperatorFromPayload(pl)
	if err != nil {
		return err
	}
	*op = *decoded
	return nil
}

// MarshalBinary encodes the same envelope through msgpack.
func (op *PauliOperator) MarshalBinary() ([]byte, error) { return msgpack.Marshal(op.payload()) }

// UnmarshalBinary decodes the msgpack envelope.
func (op *PauliOperator) UnmarshalBinary(data []byte) error {
	var pl pauliOperatorPayload
	if err := msgpack.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := pauliOperatorFromPayload(pl)
	if err != nil {
		return err
	}
	*op = *decoded
	return nil
}

// PauliOperatorFromJSON1 converts a struqture 1.x SpinOperator or SpinSystem
// JSON payload into a PauliOperator.
func PauliOperatorFromJSON1(data []byte) (*PauliOperator, error) {
	var env struct {
		Items       []schema.ComplexItem `json:"items"`
		Version     *schema.V1Version    `json:"_struqture_version"`
		NumberSpins *int                 `json:"number_spins"`
		Operator    json.RawMessage      `json:"operator"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.Operator != nil {
		// System wrapper: {number_spins, operator}.
		inner, err := PauliOperatorFromJSON1(env.Operator)
		if err != nil {
			return nil, err
		}
		inner.numberSpins = env.NumberSpins
		return inner, nil
	}
	if err := schema.CheckV1(env.Version); err != nil {
		return nil, err
	}
	out := NewPauliOperator()
	for _, it := range env.Items {
		p, err := ParsePauliProduct(it.Key)
		if err != nil {
			return nil, err
		}
		if err := out.Add(p, coeff.ComplexOf(it.Re, it.Im)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ---- PauliHamiltonian -------------------------------------------------------

type pauliHamiltonianPayload struct {
	Items       []schema.RealItem `json:"items" msgpack:"items"`
	NumberSpins *int              `json:"number_spins" msgpack:"number_spins"`
	Meta        schema.Meta       `json:"serialisation_meta" msgpack:"serialisation_meta"`
}

func (h *PauliHamiltonian) payload() pauliHamiltonianPayload {
	items := make([]schema.RealItem, 0, h.terms.Len())
	h.terms.Iter(func(p PauliProduct, v coeff.Float) bool {
		items = append(items, schema.RealItem{Key: p.String(), Val: v})
		return true
	})
	return pauliHamiltonianPayload{
		Items:       items,
		NumberSpins: h.numberSpins,
		Meta:        schema.NewMeta(typeNamePauliHamilton),
	}
}

func pauliHamiltonianFromPayload(pl pauliHamiltonianPayload) (*PauliHamiltonian, error) {
	if err := schema.Check(typeNamePauliHamilton, pl.Meta); err != nil {
		return nil, err
	}
	out := NewPauliHamiltonian()
	out.numberSpins = pl.NumberSpins
	for _, it := range pl.Items {
		p, err := ParsePauliProduct(it.Key)
		if err != nil {
			return nil, err
		}
		if err := out.Add(p, it.Val); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// MarshalJSON encodes the Hamiltonian as its versioned item-list envelope.
func (h *PauliHamiltonian) MarshalJSON() ([]byte, error) { return json.Marshal(h.payload()) }

// UnmarshalJSON decodes the envelope, verifying type name and version.
func (h *PauliHamiltonian) UnmarshalJSON(data []byte) error {
	var pl pauliHamiltonianPayload
	if err := json.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := pauliHamiltonianFromPayload(pl)
	if err != nil {
		return err
	}
	*h = *decoded
	return nil
}

// MarshalBinary encodes the same envelope through msgpack.
func (h *PauliHamiltonian) MarshalBinary() ([]byte, error) { return msgpack.Marshal(h.payload()) }

// UnmarshalBinary decodes the msgpack envelope.
func (h *PauliHamiltonian) UnmarshalBinary(data []byte) error {
	var pl pauliHamiltonianPayload
	if err := msgpack.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := pauliHamiltonianFromPayload(pl)
	if err != nil {
		return err
	}
	*h = *decoded
	return nil
}

// PauliHamiltonianFromJSON1 converts a struqture 1.x SpinHamiltonian or
// SpinHamiltonianSystem JSON payload into a PauliHamiltonian.
func PauliHamiltonianFromJSON1(data []byte) (*PauliHamiltonian, error) {
	var env struct {
		Items       []schema.RealItem `json:"items"`
		Version     *schema.V1Version `json:"_struqture_version"`
		NumberSpins *int              `json:"number_spins"`
		Hamiltonian json.RawMessage   `json:"hamiltonian"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.Hamiltonian != nil {
		inner, err := PauliHamiltonianFromJSON1(env.Hamiltonian)
		if err != nil {
			return nil, err
		}
		inner.numberSpins = env.NumberSpins
		return inner, nil
	}
	if err := schema.CheckV1(env.Version); err != nil {
		return nil, err
	}
	out := NewPauliHamiltonian()
	for _, it := range env.Items {
		p, err := ParsePauliProduct(it.Key)
		if err != nil {
			return nil, err
		}
		if err := out.Add(p, it.Val); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ---- PauliLindbladNoiseOperator ---------------------------------------------

type pauliNoisePayload struct {
	Items       []schema.PairItem `json:"items" msgpack:"items"`
	NumberSpins *int              `json:"number_spins" msgpack:"number_spins"`
	Meta        schema.Meta       `json:"serialisation_meta" msgpack:"serialisation_meta"`
}

func (no *PauliLindbladNoiseOperator) payload() pauliNoisePayload {
	items := make([]schema.PairItem, 0, no.terms.Len())
	no.terms.Iter(func(k algebra.Pair[DecoherenceProduct], v coeff.Complex) bool {
		items = append(items, schema.PairItem{
			Left: k.Left.String(), Right: k.Right.String(), Re: v.Re, Im: v.Im,
		})
		return true
	})
	return pauliNoisePayload{
		Items:       items,
		NumberSpins: no.numberSpins,
		Meta:        schema.NewMeta(typeNamePauliNoise),
	}
}

func pauliNoiseFromItems(items []schema.PairItem, numberSpins *int) (*PauliLindbladNoiseOperator, error) {
	out := NewPauliLindbladNoiseOperator()
	out.numberSpins = numberSpins
	for _, it := range items {
		left, err := ParseDecoherenceProduct(it.Left)
		if err != nil {
			return nil, err
		}
		right, err := ParseDecoherenceProduct(it.Right)
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
func (no *PauliLindbladNoiseOperator) MarshalJSON() ([]byte, error) {
	return json.Marshal(no.payload())
}

// UnmarshalJSON decodes the envelope, verifying type name and version.
func (no *PauliLindbladNoiseOperator) UnmarshalJSON(data []byte) error {
	var pl pauliNoisePayload
	if err := json.Unmarshal(data, &pl); err != nil {
		return err
	}
	if err := schema.Check(typeNamePauliNoise, pl.Meta); err != nil {
		return err
	}
	decoded, err := pauliNoiseFromItems(pl.Items, pl.NumberSpins)
	if err != nil {
		return err
	}
	*no = *decoded
	return nil
}

// MarshalBinary encodes the same envelope through msgpack.
func (no *PauliLindbladNoiseOperator) MarshalBinary() ([]byte, error) {
	return msgpack.Marshal(no.payload())
}

// UnmarshalBinary decodes the msgpack envelope.
func (no *PauliLindbladNoiseOperator) UnmarshalBinary(data []byte) error {
	var pl pauliNoisePayload
	if err := msgpack.Unmarshal(data, &pl); err != nil {
		return err
	}
	if err := schema.Check(typeNamePauliNoise, pl.Meta); err != nil {
		return err
	}
	decoded, err := pauliNoiseFromItems(pl.Items, pl.NumberSpins)
	if err != nil {
		return err
	}
	*no = *decoded
	return nil
}

// PauliLindbladNoiseOperatorFromJSON1 converts a struqture 1.x
// SpinLindbladNoiseOperator or SpinLindbladNoiseSystem JSON payload.
func PauliLindbladNoiseOperatorFromJSON1(data []byte) (*PauliLindbladNoiseOperator, error) {
	var env struct {
		Items       []schema.PairItem `json:"items"`
		Version     *schema.V1Version `json:"_struqture_version"`
		NumberSpins *int              `json:"number_spins"`
		Operator    json.RawMessage   `json:"operator"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.Operator != nil {
		inner, err := PauliLindbladNoiseOperatorFromJSON1(env.Operator)
		if err != nil {
			return nil, err
		}
		inner.numberSpins = env.NumberSpins
		return inner, nil
	}
	if err := schema.CheckV1(env.Version); err != nil {
		return nil, err
	}
	return pauliNoiseFromItems(env.Items, nil)
}

// ---- PauliLindbladOpenSystem ------------------------------------------------

type pauliOpenSystemPayload struct {
	System pauliHamiltonianPayload `json:"system" msgpack:"system"`
	Noise  pauliNoisePayload       `json:"noise" msgpack:"noise"`
	Meta   schema.Meta             `json:"serialisation_meta" msgpack:"serialisation_meta"`
}

func (os *PauliLindbladOpenSystem) payload() pauliOpenSystemPayload {
	return pauliOpenSystemPayload{
		System: os.system.payload(),
		Noise:  os.noise.payload(),
		Meta:   schema.NewMeta(typeNamePauliOpenSystem),
	}
}

func pauliOpenSystemFromPayload(pl pauliOpenSystemPayload) (*PauliLindbladOpenSystem, error) {
	if err := schema.Check(typeNamePauliOpenSystem, pl.Meta); err != nil {
		return nil, err
	}
	system, err := pauliHamiltonianFromPayload(pl.System)
	if err != nil {
		return nil, err
	}
	if err := schema.Check(typeNamePauliNoise, pl.Noise.Meta); err != nil {
		return nil, err
	}
	noise, err := pauliNoiseFromItems(pl.Noise.Items, pl.Noise.NumberSpins)
	if err != nil {
		return nil, err
	}
	return GroupPauliLindbladOpenSystem(system, noise)
}

// MarshalJSON encodes both halves with their own envelopes plus the open
// system's meta block.
func (os *PauliLindbladOpenSystem) MarshalJSON() ([]byte, error) {
	return json.Marshal(os.payload())
}

// UnmarshalJSON decodes the nested envelope.
func (os *PauliLindbladOpenSystem) UnmarshalJSON(data []byte) error {
	var pl pauliOpenSystemPayload
	if err := json.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := pauliOpenSystemFromPayload(pl)
	if err != nil {
		return err
	}
	*os = *decoded
	return nil
}

// MarshalBinary encodes the same nested envelope through msgpack.
func (os *PauliLindbladOpenSystem) MarshalBinary() ([]byte, error) {
	return msgpack.Marshal(os.payload())
}

// UnmarshalBinary decodes the msgpack envelope.
func (os *PauliLindbladOpenSystem) UnmarshalBinary(data []byte) error {
	var pl pauliOpenSystemPayload
	if err := msgpack.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := pauliOpenSystemFromPayload(pl)
	if err != nil {
		return err
	}
	*os = *decoded
	return nil
}

// PauliLindbladOpenSystemFromJSON1 converts a struqture 1.x
// SpinLindbladOpenSystem JSON payload.
func PauliLindbladOpenSystemFromJSON1(data []byte) (*PauliLindbladOpenSystem, error) {
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
	system, err := PauliHamiltonianFromJSON1(env.System)
	if err != nil {
		return nil, err
	}
	noise, err := PauliLindbladNoiseOperatorFromJSON1(env.Noise)
	if err != nil {
		return nil, err
	}
	return GroupPauliLindbladOpenSystem(system, noise)
}
