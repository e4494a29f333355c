// SPDX-License-Identifier: MIT
// Package: coeff
//
package coeff

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// ErrSymbolicValue is returned when a concrete float64 is requested from a
// value that still contains an unbound symbolic parameter.
var ErrSymbolicValue = errors.New("coeff: value is symbolic, not numeric")

// Float is a real coefficient: either a concrete float64 or a symbolic
// expression (a parameter name, or an arithmetic combination of parameters).
//
// The zero value is the numeric 0.
type Float struct {
	val      float64
	expr     string
	symbolic bool
}

// NewFloat returns a numeric Float.
func NewFloat(v float64) Float {
	return Float{val: v}
}

// Symbol returns a symbolic Float holding the given parameter name or
// expression string.
func Symbol(name string) Float {
	return Float{expr: name, symbolic: true}
}

// IsSymbolic reports whether the value contains an unbound parameter.
func (f Float) IsSymbolic() bool { return f.symbolic }

// IsZero reports whether the value is the numeric 0. Symbolic values are
// never zero: their magnitude is unknown until the parameter is bound.
func (f Float) IsZero() bool { return !f.symbolic && f.val == 0 }

// Float64 returns the concrete value, or ErrSymbolicValue when the value is
// symbolic.
func (f Float) Float64() (float64, error) {
	if f.symbolic {
		return 0, fmt.Errorf("%w: %q", ErrSymbolicValue, f.expr)
	}
	return f.val, nil
}

// String renders numeric values in shortest-round-trip form and symbolic
// values as their expression.
func (f Float) String() string {
	if f.symbolic {
		return f.expr
	}
	return strconv.FormatFloat(f.val, 'g', -1, 64)
}

// Add returns f + g. Numeric operands fold; a symbolic operand yields a
// symbolic sum, except that adding the numeric 0 is an identity.
func (f Float) Add(g Float) Float {
	if !f.symbolic && !g.symbolic {
		return Float{val: f.val + g.val}
	}
	if f.IsZero() {
		return g
	}
	if g.IsZero() {
		return f
	}
	return Symbol("(" + f.String() + " + " + g.String() + ")")
}

// Sub returns f - g.
func (f Float) Sub(g Float) Float {
	if !f.symbolic && !g.symbolic {
		return Float{val: f.val - g.val}
	}
	if g.IsZero() {
		return f
	}
	return Symbol("(" + f.String() + " - " + g.String() + ")")
}

// Mul returns f * g. Multiplying by the numeric 0 collapses to 0 and by the
// numeric 1 is an identity, even for symbolic operands.
func (f Float) Mul(g Float) Float {
	if !f.symbolic && !g.symbolic {
		return Float{val: f.val * g.val}
	}
	if f.IsZero() || g.IsZero() {
		return Float{}
	}
	if !f.symbolic && f.val == 1 {
		return g
	}
	if !g.symbolic && g.val == 1 {
		return f
	}
	return Symbol("(" + f.String() + " * " + g.String() + ")")
}

// Neg returns -f.
func (f Float) Neg() Float {
	if !f.symbolic {
		return Float{val: -f.val}
	}
	return Symbol("(-" + f.expr + ")")
}

// MulSign multiplies by a plain ±1 prefactor without building a symbolic
// expression for the +1 case.
func (f Float) MulSign(sign float64) Float {
	if sign == 1 {
		return f
	}
	return f.Neg()
}

// Keep reports whether the value survives truncation at the given threshold.
// Symbolic values always survive; numeric values survive when their absolute
// value reaches the threshold.
func (f Float) Keep(threshold float64) bool {
	return f.symbolic || math.Abs(f.val) >= threshold
}

// MarshalJSON encodes numeric values as JSON numbers and symbolic values as
// JSON strings.
func (f Float) MarshalJSON() ([]byte, error) {
	if f.symbolic {
		return json.Marshal(f.expr)
	}
	return json.Marshal(f.val)
}

// UnmarshalJSON decodes a JSON number into a numeric value and a JSON string
// into a symbolic one.
func (f *Float) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = Symbol(s)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("coeff: cannot decode %q as number or symbol: %w", data, err)
	}
	*f = NewFloat(v)
	return nil
}

// EncodeMsgpack writes the value as a msgpack float64 or string.
func (f Float) EncodeMsgpack(enc *msgpack.Encoder) error {
	if f.symbolic {
		return enc.EncodeString(f.expr)
	}
	return enc.EncodeFloat64(f.val)
}

// DecodeMsgpack branches on the wire type: strings decode symbolic, every
// numeric code decodes numeric.
func (f *Float) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.PeekCode()
	if err != nil {
		return err
	}
	if msgpcode.IsString(code) {
		s, err := dec.DecodeString()
		if err != nil {
			return err
		}
		*f = Symbol(s)
		return nil
	}
	v, err := dec.DecodeFloat64()
	if err != nil {
		return err
	}
	*f = NewFloat(v)
	return nil
}

var (
	_ msgpack.CustomEncoder = Float{}
	_ msgpack.CustomDecoder = (*Float)(nil)
)
