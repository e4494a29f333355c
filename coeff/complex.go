// SPDX-License-Identifier: MIT
// Package: coeff
//
package coeff

// Complex is a complex coefficient: a pair of Floats for the real and
// imaginary parts. Each part is independently numeric or symbolic.
//
// The zero value is the numeric 0.
type Complex struct {
	Re Float
	Im Float
}

// NewComplex returns a numeric complex coefficient.
func NewComplex(re, im float64) Complex {
	return Complex{Re: NewFloat(re), Im: NewFloat(im)}
}

// ComplexOf pairs two Floats into a Complex.
func ComplexOf(re, im Float) Complex {
	return Complex{Re: re, Im: im}
}

// FromFloat lifts a real coefficient into a Complex with zero imaginary part.
func FromFloat(re Float) Complex {
	return Complex{Re: re}
}

// IsZero reports whether both parts are the numeric 0.
func (c Complex) IsZero() bool { return c.Re.IsZero() && c.Im.IsZero() }

// IsSymbolic reports whether either part contains an unbound parameter.
func (c Complex) IsSymbolic() bool { return c.Re.IsSymbolic() || c.Im.IsSymbolic() }

// IsReal reports whether the imaginary part is not a nonzero number. A
// symbolic imaginary part counts as real: it may resolve to zero once the
// parameter is bound, so it cannot be rejected up front.
func (c Complex) IsReal() bool {
	return c.Im.IsSymbolic() || c.Im.IsZero()
}

// Add returns c + d.
func (c Complex) Add(d Complex) Complex {
	return Complex{Re: c.Re.Add(d.Re), Im: c.Im.Add(d.Im)}
}

// Sub returns c - d.
func (c Complex) Sub(d Complex) Complex {
	return Complex{Re: c.Re.Sub(d.Re), Im: c.Im.Sub(d.Im)}
}

// Mul returns the complex product c * d.
func (c Complex) Mul(d Complex) Complex {
	return Complex{
		Re: c.Re.Mul(d.Re).Sub(c.Im.Mul(d.Im)),
		Im: c.Re.Mul(d.Im).Add(c.Im.Mul(d.Re)),
	}
}

// MulF scales both parts by a real coefficient.
func (c Complex) MulF(f Float) Complex {
	return Complex{Re: c.Re.Mul(f), Im: c.Im.Mul(f)}
}

// MulSign multiplies by a plain ±1 prefactor.
func (c Complex) MulSign(sign float64) Complex {
	return Complex{Re: c.Re.MulSign(sign), Im: c.Im.MulSign(sign)}
}

// Conj returns the complex conjugate.
func (c Complex) Conj() Complex {
	return Complex{Re: c.Re, Im: c.Im.Neg()}
}

// Neg returns -c.
func (c Complex) Neg() Complex {
	return Complex{Re: c.Re.Neg(), Im: c.Im.Neg()}
}

// Truncate zeroes each numeric part below the threshold and reports whether
// anything survives. Symbolic parts always survive.
func (c Complex) Truncate(threshold float64) (Complex, bool) {
	out := c
	if !out.Re.IsSymbolic() && !out.Re.Keep(threshold) {
		out.Re = Float{}
	}
	if !out.Im.IsSymbolic() && !out.Im.Keep(threshold) {
		out.Im = Float{}
	}
	return out, out.IsSymbolic() || !out.IsZero()
}

// String renders "(re + im*i)"; a purely real value renders as its real part.
func (c Complex) String() string {
	if c.Im.IsZero() {
		return c.Re.String()
	}
	return "(" + c.Re.String() + " + " + c.Im.String() + "*i)"
}
