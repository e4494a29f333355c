package mixed

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
	typeNameMixedOperator   = "MixedOperator"
	typeNameMixedHamilton   = "MixedHamiltonian"
	typeNameMixedNoise      = "MixedLindbladNoiseOperator"
	typeNameMixedOpenSystem = "MixedLindbladOpenSystem"
)

// ---- MixedOperator ----------------------------------------------------------

type mixedOperatorPayload struct {
	Items     []schema.ComplexItem `json:"items" msgpack:"items"`
	NSpins    int                  `json:"n_spins" msgpack:"n_spins"`
	NBosons   int                  `json:"n_bosons" msgpack:"n_bosons"`
	NFermions int                  `json:"n_fermions" msgpack:"n_fermions"`
	Meta      schema.Meta          `json:"serialisation_meta" msgpack:"serialisation_meta"`
}

func (op *MixedOperator) payload() mixedOperatorPayload {
	items := make([]schema.ComplexItem, 0, op.terms.Len())
	op.terms.Iter(func(p MixedProduct, v coeff.Complex) bool {
		items = append(items, schema.ComplexItem{Key: p.String(), Re: v.Re, Im: v.Im})
		return true
	})
	return mixedOperatorPayload{
		Items:     items,
		NSpins:    op.arity.nSpins,
		NBosons:   op.arity.nBosons,
		NFermions: op.arity.nFermions,
		Meta:      schema.NewMeta(typeNameMixedOperator),
	}
}

func mixedOperatorFromPayload(pl mixedOperatorPayload) (*MixedOperator, error) {
	if err := schema.Check(typeNameMixedOperator, pl.Meta); err != nil {
		return nil, err
	}
	out := NewMixedOperator(pl.NSpins, pl.NBosons, pl.NFermions)
	for _, it := range pl.Items {
		p, err := ParseMixedProduct(it.Key)
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
func (op *MixedOperator) MarshalJSON() ([]byte, error) { return json.Marshal(op.payload()) }

// UnmarshalJSON decodes the envelope, verifying type name and version.
func (op *MixedOperator) UnmarshalJSON(data []byte) error {
	var pl mixedOperatorPayload
	if err := json.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := mixedOperatorFromPayload(pl)
	if err != nil {
		return err
	}
	*op = *decoded
	return nil
}

// MarshalBinary encodes the same envelope through msgpack.
func (op *MixedOperator) MarshalBinary() ([]byte, error) { return msgpack.Marshal(op.payload()) }

// UnmarshalBinary decodes the msgpack envelope.
func (op *MixedOperator) UnmarshalBinary(data []byte) error {
	var pl mixedOperatorPayload
	if err := msgpack.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := mixedOperatorFromPayload(pl)
	if err != nil {
		return err
	}
	*op = *decoded
	return nil
}

// MixedOperatorFromJSON1 converts a struqture 1.x MixedOperator or
// MixedSystem JSON payload.
func MixedOperatorFromJSON1(data []byte) (*MixedOperator, error) {
	var env struct {
		Items    []schema.ComplexItem `json:"items"`
		Version  *schema.V1Version    `json:"_struqture_version"`
		Operator json.RawMessage      `json:"operator"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.Operator != nil {
		return MixedOperatorFromJSON1(env.Operator)
	}
	if err := schema.CheckV1(env.Version); err != nil {
		return nil, err
	}
	return mixedOperatorFromItems(env.Items)
}

// mixedOperatorFromItems infers the subsystem arity from the first item; the
// 1.x format never carries explicit counts at this level.
func mixedOperatorFromItems(items []schema.ComplexItem) (*MixedOperator, error) {
	parsed := make([]MixedProduct, len(items))
	nSpins, nBosons, nFermions := 0, 0, 0
	for i, it := range items {
		p, err := ParseMixedProduct(it.Key)
		if err != nil {
			return nil, err
		}
		parsed[i] = p
		if i == 0 {
			nSpins, nBosons, nFermions = p.SubsystemCounts()
		}
	}
	out := NewMixedOperator(nSpins, nBosons, nFermions)
	for i, p := range parsed {
		if err := out.Add(p, coeff.ComplexOf(items[i].Re, items[i].Im)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ---- MixedHamiltonian -------------------------------------------------------

type mixedHamiltonianPayload struct {
	Items     []schema.ComplexItem `json:"items" msgpack:"items"`
	NSpins    int                  `json:"n_spins" msgpack:"n_spins"`
	NBosons   int                  `json:"n_bosons" msgpack:"n_bosons"`
	NFermions int                  `json:"n_fermions" msgpack:"n_fermions"`
	Meta      schema.Meta          `json:"serialisation_meta" msgpack:"serialisation_meta"`
}

func (h *MixedHamiltonian) payload() mixedHamiltonianPayload {
	items := make([]schema.ComplexItem, 0, h.terms.Len())
	h.terms.Iter(func(p HermitianMixedProduct, v coeff.Complex) bool {
		items = append(items, schema.ComplexItem{Key: p.String(), Re: v.Re, Im: v.Im})
		return true
	})
	return mixedHamiltonianPayload{
		Items:     items,
		NSpins:    h.arity.nSpins,
		NBosons:   h.arity.nBosons,
		NFermions: h.arity.nFermions,
		Meta:      schema.NewMeta(typeNameMixedHamilton),
	}
}

func mixedHamiltonianFromPayload(pl mixedHamiltonianPayload) (*MixedHamiltonian, error) {
	if err := schema.Check(typeNameMixedHamilton, pl.Meta); err != nil {
		return nil, err
	}
	out := NewMixedHamiltonian(pl.NSpins, pl.NBosons, pl.NFermions)
	if err := fillMixedHamiltonian(out, pl.Items); err != nil {
		return nil, err
	}
	return out, nil
}

func fillMixedHamiltonian(h *MixedHamiltonian, items []schema.ComplexItem) error {
	for _, it := range items {
		p, err := ParseHermitianMixedProduct(it.Key)
		if err != nil {
			return err
		}
		if err := h.Add(p, coeff.ComplexOf(it.Re, it.Im)); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON encodes the Hamiltonian as its versioned item-list envelope.
func (h *MixedHamiltonian) MarshalJSON() ([]byte, error) { return json.Marshal(h.payload()) }

// UnmarshalJSON decodes the envelope, verifying type name and version.
func (h *MixedHamiltonian) UnmarshalJSON(data []byte) error {
	var pl mixedHamiltonianPayload
	if err := json.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := mixedHamiltonianFromPayload(pl)
	if err != nil {
		return err
	}
	*h = *decoded
	return nil
}

// MarshalBinary encodes the same envelope through msgpack.
func (h *MixedHamiltonian) MarshalBinary() ([]byte, error) { return msgpack.Marshal(h.payload()) }

// UnmarshalBinary decodes the msgpack envelope.
func (h *MixedHamiltonian) UnmarshalBinary(data []byte) error {
	var pl mixedHamiltonianPayload
	if err := msgpack.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := mixedHamiltonianFromPayload(pl)
	if err != nil {
		return err
	}
	*h = *decoded
	return nil
}

// MixedHamiltonianFromJSON1 converts a struqture 1.x MixedHamiltonian or
// MixedHamiltonianSystem JSON payload.
func MixedHamiltonianFromJSON1(data []byte) (*MixedHamiltonian, error) {
	var env struct {
		Items       []schema.ComplexItem `json:"items"`
		Version     *schema.V1Version    `json:"_struqture_version"`
		Hamiltonian json.RawMessage      `json:"hamiltonian"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.Hamiltonian != nil {
		return MixedHamiltonianFromJSON1(env.Hamiltonian)
	}
	if err := schema.CheckV1(env.Version); err != nil {
		return nil, err
	}
	nSpins, nBosons, nFermions := 0, 0, 0
	if len(env.Items) > 0 {
		p, err := ParseHermitianMixedProduct(env.Items[0].Key)
		if err != nil {
			return nil, err
		}
		nSpins, nBosons, nFermions = p.SubsystemCounts()
	}
	out := NewMixedHamiltonian(nSpins, nBosons, nFermions)
	if err := fillMixedHamiltonian(out, env.Items); err != nil {
		return nil, err
	}
	return out, nil
}

// ---- MixedLindbladNoiseOperator ---------------------------------------------

type mixedNoisePayload struct {
	Items     []schema.PairItem `json:"items" msgpack:"items"`
	NSpins    int               `json:"n_spins" msgpack:"n_spins"`
	NBosons   int               `json:"n_bosons" msgpack:"n_bosons"`
	NFermions int               `json:"n_fermions" msgpack:"n_fermions"`
	Meta      schema.Meta       `json:"serialisation_meta" msgpack:"serialisation_meta"`
}

func (no *MixedLindbladNoiseOperator) payload() mixedNoisePayload {
	items := make([]schema.PairItem, 0, no.terms.Len())
	no.terms.Iter(func(k algebra.Pair[MixedDecoherenceProduct], v coeff.Complex) bool {
		items = append(items, schema.PairItem{
			Left: k.Left.String(), Right: k.Right.String(), Re: v.Re, Im: v.Im,
		})
		return true
	})
	return mixedNoisePayload{
		Items:     items,
		NSpins:    no.arity.nSpins,
		NBosons:   no.arity.nBosons,
		NFermions: no.arity.nFermions,
		Meta:      schema.NewMeta(typeNameMixedNoise),
	}
}

func fillMixedNoise(no *MixedLindbladNoiseOperator, items []schema.PairItem) error {
	for _, it := range items {
		left, err := ParseMixedDecoherenceProduct(it.Left)
		if err != nil {
			return err
		}
		right, err := ParseMixedDecoherenceProduct(it.Right)
		if err != nil {
			return err
		}
		if err := no.Add(left, right, coeff.ComplexOf(it.Re, it.Im)); err != nil {
			return err
		}
	}
	return nil
}

func mixedNoiseFromPayload(pl mixedNoisePayload) (*MixedLindbladNoiseOperator, error) {
	if err := schema.Check(typeNameMixedNoise, pl.Meta); err != nil {
		return nil, err
	}
	out := NewMixedLindbladNoiseOperator(pl.NSpins, pl.NBosons, pl.NFermions)
	if err := fillMixedNoise(out, pl.Items); err != nil {
		return nil, err
	}
	return out, nil
}

// MarshalJSON encodes the noise operator as its versioned item-list envelope.
func (no *MixedLindbladNoiseOperator) MarshalJSON() ([]byte, error) {
	return json.Marshal(no.payload())
}

// UnmarshalJSON decodes the envelope, verifying type name and version.
func (no *MixedLindbladNoiseOperator) UnmarshalJSON(data []byte) error {
	var pl mixedNoisePayload
	if err := json.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := mixedNoiseFromPayload(pl)
	if err != nil {
		return err
	}
	*no = *decoded
	return nil
}

// MarshalBinary encodes the same envelope through msgpack.
func (no *MixedLindbladNoiseOperator) MarshalBinary() ([]byte, error) {
	return msgpack.Marshal(no.payload())
}

// UnmarshalBinary decodes the msgpack envelope.
func (no *MixedLindbladNoiseOperator) UnmarshalBinary(data []byte) error {
	var pl mixedNoisePayload
	if err := msgpack.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := mixedNoiseFromPayload(pl)
	if err != nil {
		return err
	}
	*no = *decoded
	return nil
}

// MixedLindbladNoiseOperatorFromJSON1 converts a struqture 1.x
// MixedLindbladNoiseOperator or MixedLindbladNoiseSystem JSON payload.
func MixedLindbladNoiseOperatorFromJSON1(data []byte) (*MixedLindbladNoiseOperator, error) {
	var env struct {
		Items    []schema.PairItem `json:"items"`
		Version  *schema.V1Version `json:"_struqture_version"`
		Operator json.RawMessage   `json:"operator"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.Operator != nil {
		return MixedLindbladNoiseOperatorFromJSON1(env.Operator)
	}
	if err := schema.CheckV1(env.Version); err != nil {
		return nil, err
	}
	nSpins, nBosons, nFermions := 0, 0, 0
	if len(env.Items) > 0 {
		p, err := ParseMixedDecoherenceProduct(env.Items[0].Left)
		if err != nil {
			return nil, err
		}
		nSpins, nBosons, nFermions = p.SubsystemCounts()
	}
	out := NewMixedLindbladNoiseOperator(nSpins, nBosons, nFermions)
	if err := fillMixedNoise(out, env.Items); err != nil {
		return nil, err
	}
	return out, nil
}

// ---- MixedLindbladOpenSystem ------------------------------------------------

type mixedOpenSystemPayload struct {
	System mixedHamiltonianPayload `json:"system" msgpack:"system"`
	Noise  mixedNoisePayload       `json:"noise" msgpack:"noise"`
	Meta   schema.Meta             `json:"serialisation_meta" msgpack:"serialisation_meta"`
}

func (os *MixedLindbladOpenSystem) payload() mixedOpenSystemPayload {
	return mixedOpenSystemPayload{
		System: os.system.payload(),
		Noise:  os.noise.payload(),
		Meta:   schema.NewMeta(typeNameMixedOpenSystem),
	}
}

func mixedOpenSystemFromPayload(pl mixedOpenSystemPayload) (*MixedLindbladOpenSystem, error) {
	if err := schema.Check(typeNameMixedOpenSystem, pl.Meta); err != nil {
		return nil, err
	}
	system, err := mixedHamiltonianFromPayload(pl.System)
	if err != nil {
		return nil, err
	}
	noise, err := mixedNoiseFromPayload(pl.Noise)
	if err != nil {
		return nil, err
	}
	return GroupMixedLindbladOpenSystem(system, noise)
}

// MarshalJSON encodes both halves with their own envelopes plus the open
// system's meta block.
func (os *MixedLindbladOpenSystem) MarshalJSON() ([]byte, error) {
	return json.Marshal(os.payload())
}

// UnmarshalJSON decodes the nested envelope.
func (os *MixedLindbladOpenSystem) UnmarshalJSON(data []byte) error {
	var pl mixedOpenSystemPayload
	if err := json.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := mixedOpenSystemFromPayload(pl)
	if err != nil {
		return err
	}
	*os = *decoded
	return nil
}

// MarshalBinary encodes the same nested envelope through msgpack.
func (os *MixedLindbladOpenSystem) MarshalBinary() ([]byte, error) {
	return msgpack.Marshal(os.payload())
}

// UnmarshalBinary decodes the msgpack envelope.
func (os *MixedLindbladOpenSystem) UnmarshalBinary(data []byte) error {
	var pl mixedOpenSystemPayload
	if err := msgpack.Unmarshal(data, &pl); err != nil {
		return err
	}
	decoded, err := mixedOpenSystemFromPayload(pl)
	if err != nil {
		return err
	}
	*os = *decoded
	return nil
}

// MixedLindbladOpenSystemFromJSON1 converts a struqture 1.x
// MixedLindbladOpenSystem JSON payload.
func MixedLindbladOpenSystemFromJSON1(data []byte) (*MixedLindbladOpenSystem, error) {
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
	system, err := MixedHamiltonianFromJSON1(env.System)
	if err != nil {
		return nil, err
	}
	noise, err := MixedLindbladNoiseOperatorFromJSON1(env.Noise)
	if err != nil {
		return nil, err
	}
	if system.Len() == 0 && noise.Len() > 0 {
		system.arity = noise.arity
	}
	if noise.Len() == 0 && system.Len() > 0 {
		noise.arity = system.arity
	}
	return GroupMixedLindbladOpenSystem(system, noise)
}
