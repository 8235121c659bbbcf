// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"strconv"
)

// Operation tags for error wrapping.
const (
	opNew         = "New"
	opDiv         = "Div"
	opReciprocal  = "Reciprocal"
	opFromFloat64 = "FromFloat64"
)

// Rational is an exact fraction num/den kept in lowest terms.
//
// Invariants (established by every constructor and arithmetic method):
//   - den > 0,
//   - gcd(|num|, den) == 1,
//   - zero is exactly 0/1.
//
// The denominator is stored as den-1 so that the zero value is 0/1.
type Rational struct {
	num int64 // signed numerator
	dm1 int64 // denominator minus one (>= 0)
}

// Common constants.
var (
	Zero     = Rational{}
	One      = Rational{num: 1}
	MinusOne = Rational{num: -1}
)

// New builds num/den reduced to lowest terms.
// Returns ErrZeroDenominator when den == 0.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, rationalErrorf(opNew, ErrZeroDenominator)
	}

	return reduce(num, den), nil
}

// MustNew is New that panics on a zero denominator. Intended for literals.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// FromInt returns n/1.
func FromInt(n int64) Rational {
	return Rational{num: n}
}

// FromFloat64 converts x with the given approximation strategy.
// A nil approx selects DefaultApproximator.
func FromFloat64(x float64, approx Approximator) (Rational, error) {
	if approx == nil {
		approx = DefaultApproximator
	}
	num, den, err := approx(x)
	if err != nil {
		return Rational{}, rationalErrorf(opFromFloat64, err)
	}

	return New(num, den)
}

// reduce is the single normalization point: divide by the gcd, move the sign
// onto the numerator, and force 0/1 for zero. den must be non-zero.
func reduce(num, den int64) Rational {
	if num == 0 {
		return Rational{}
	}
	g := gcd(num, den)
	if den < 0 {
		g = -g
	}
	num /= g
	den /= g

	return Rational{num: num, dm1: den - 1}
}

// gcd returns the non-negative greatest common divisor of a and b.
func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Num returns the numerator (sign carrier).
func (r Rational) Num() int64 { return r.num }

// Denom returns the strictly positive denominator.
func (r Rational) Denom() int64 { return r.dm1 + 1 }

// Add returns r + s.
func (r Rational) Add(s Rational) Rational {
	return reduce(r.num*s.Denom()+s.num*r.Denom(), r.Denom()*s.Denom())
}

// Sub returns r - s.
func (r Rational) Sub(s Rational) Rational {
	return reduce(r.num*s.Denom()-s.num*r.Denom(), r.Denom()*s.Denom())
}

// Mul returns r * s.
func (r Rational) Mul(s Rational) Rational {
	return reduce(r.num*s.num, r.Denom()*s.Denom())
}

// Div returns r / s. It panics with ErrDivisionByZero when s is zero.
func (r Rational) Div(s Rational) Rational {
	if s.IsZero() {
		panic(rationalErrorf(opDiv, ErrDivisionByZero))
	}

	return reduce(r.num*s.Denom(), r.Denom()*s.num)
}

// Reciprocal returns 1 / r. It panics with ErrDivisionByZero when r is zero.
func (r Rational) Reciprocal() Rational {
	if r.IsZero() {
		panic(rationalErrorf(opReciprocal, ErrDivisionByZero))
	}

	return reduce(r.Denom(), r.num)
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{num: -r.num, dm1: r.dm1}
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	if r.num < 0 {
		return r.Neg()
	}

	return r
}

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports r == 0.
func (r Rational) IsZero() bool { return r.num == 0 }

// IsOne reports r == 1.
func (r Rational) IsOne() bool { return r.num == 1 && r.dm1 == 0 }

// IsNegative reports r < 0.
func (r Rational) IsNegative() bool { return r.num < 0 }

// IsInt reports whether the denominator is 1.
func (r Rational) IsInt() bool { return r.dm1 == 0 }

// Cmp compares r and s and returns -1, 0 or +1.
func (r Rational) Cmp(s Rational) int {
	return r.Sub(s).Sign()
}

// Equal reports r == s. Canonical form makes this a field comparison.
func (r Rational) Equal(s Rational) bool { return r == s }

// Float64 returns the nearest float64. Lossy; meant for display and export.
func (r Rational) Float64() float64 {
	return float64(r.num) / float64(r.Denom())
}

// String renders "n" for integers and "n/d" otherwise.
func (r Rational) String() string {
	if r.IsInt() {
		return strconv.FormatInt(r.num, 10)
	}

	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.Denom(), 10)
}

// LaTeX renders "n" for integers and "\frac{|n|}{d}" with a leading minus
// for negative fractions.
func (r Rational) LaTeX() string {
	if r.IsInt() {
		return strconv.FormatInt(r.num, 10)
	}
	sign := ""
	if r.num < 0 {
		sign = "-"
	}

	return fmt.Sprintf(`%s\frac{%d}{%d}`, sign, r.Abs().num, r.Denom())
}
