package schema

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/struqture/coeff"
)

// Wire item shapes shared by every container codec. Items render as JSON
// arrays and msgpack arrays so the two codecs stay structurally identical;
// product keys travel in their canonical string form.

// ComplexItem is one operator term on the wire: [key, re, im].
type ComplexItem struct {
	_msgpack struct{} `msgpack:",as_array"`

	Key string
	Re  coeff.Float
	Im  coeff.Float
}

// MarshalJSON renders the item as the array [key, re, im].
func (it ComplexItem) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{it.Key, it.Re, it.Im})
}

// UnmarshalJSON decodes the array form.
func (it *ComplexItem) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 3 {
		return fmt.Errorf("schema: operator item needs 3 elements, got %d", len(parts))
	}
	if err := json.Unmarshal(parts[0], &it.Key); err != nil {
		return err
	}
	if err := json.Unmarshal(parts[1], &it.Re); err != nil {
		return err
	}
	return json.Unmarshal(parts[2], &it.Im)
}

// RealItem is one Hamiltonian term on the wire: [key, value].
type RealItem struct {
	_msgpack struct{} `msgpack:",as_array"`

	Key string
	Val coeff.Float
}

// MarshalJSON renders the item as the array [key, value].
func (it RealItem) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{it.Key, it.Val})
}

// UnmarshalJSON decodes the array form.
func (it *RealItem) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 2 {
		return fmt.Errorf("schema: hamiltonian item needs 2 elements, got %d", len(parts))
	}
	if err := json.Unmarshal(parts[0], &it.Key); err != nil {
		return err
	}
	return json.Unmarshal(parts[1], &it.Val)
}

// PairItem is one Lindblad rate on the wire: [left, right, re, im].
type PairItem struct {
	_msgpack struct{} `msgpack:",as_array"`

	Left  string
	Right string
	Re    coeff.Float
	Im    coeff.Float
}

// MarshalJSON renders the item as the array [left, right, re, im].
func (it PairItem) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{it.Left, it.Right, it.Re, it.Im})
}

// UnmarshalJSON decodes the array form.
func (it *PairItem) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 4 {
		return fmt.Errorf("schema: noise item needs 4 elements, got %d", len(parts))
	}
	if err := json.Unmarshal(parts[0], &it.Left); err != nil {
		return err
	}
	if err := json.Unmarshal(parts[1], &it.Right); err != nil {
		return err
	}
	if err := json.Unmarshal(parts[2], &it.Re); err != nil {
		return err
	}
	return json.Unmarshal(parts[3], &it.Im)
}
