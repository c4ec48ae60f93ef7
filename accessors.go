package numeric

import (
	"math"
	"math/big"
)

// Numerator returns the numerator of a real Number (Integer operands are
// their own numerator).
func Numerator(n Number) (Number, error) {
	switch v := n.(type) {
	case SmallInt, *BigInt:
		return n, nil
	case *Ratnum:
		return normalizeInt(v.Num()), nil
	case Flonum:
		num, _ := ratFromFlonum(float64(v))
		f, _ := ToFloat64(normalizeInt(num))
		return Flonum(f), nil
	default:
		return nil, newErr(ErrTypeError, "numerator", "operand is not real")
	}
}

// Denominator returns the denominator of a real Number (Integer operands
// have denominator 1).
func Denominator(n Number) (Number, error) {
	switch v := n.(type) {
	case SmallInt, *BigInt:
		return SmallInt(1), nil
	case *Ratnum:
		return normalizeInt(v.Den()), nil
	case Flonum:
		_, den := ratFromFlonum(float64(v))
		f, _ := ToFloat64(normalizeInt(den))
		return Flonum(f), nil
	default:
		return nil, newErr(ErrTypeError, "denominator", "operand is not real")
	}
}

// ratFromFlonum converts a finite flonum to an exact (num, den) pair via
// decodeFlonum's full-precision mantissa.
func ratFromFlonum(d float64) (*big.Int, *big.Int) {
	mant, exp, sign, special := decodeFlonum(d)
	if special != decodeNormal {
		return big.NewInt(0), big.NewInt(1)
	}
	num := new(big.Int).Set(mant)
	den := big.NewInt(1)
	if exp >= 0 {
		num.Lsh(num, uint(exp))
	} else {
		den.Lsh(den, uint(-exp))
	}
	if sign < 0 {
		num.Neg(num)
	}
	return num, den
}

// RealPart returns the real part of n (n itself, if n is already real).
func RealPart(n Number) Number {
	if c, ok := n.(*Complex); ok {
		return Flonum(c.re)
	}
	return n
}

// ImagPart returns the imaginary part of n (exact 0 for any real n).
func ImagPart(n Number) Number {
	if c, ok := n.(*Complex); ok {
		return Flonum(c.im)
	}
	return SmallInt(0)
}

// Magnitude returns |n| for a Complex, or |n| (as float64) for a real.
func Magnitude(n Number) float64 {
	if c, ok := n.(*Complex); ok {
		return math.Hypot(c.re, c.im)
	}
	f, _ := ToFloat64(n)
	return math.Abs(f)
}

// Angle returns the polar angle of n in radians (0 or Pi for non-negative/
// negative reals).
func Angle(n Number) float64 {
	if c, ok := n.(*Complex); ok {
		return math.Atan2(c.im, c.re)
	}
	f, _ := ToFloat64(n)
	if f < 0 {
		return math.Pi
	}
	return 0
}
