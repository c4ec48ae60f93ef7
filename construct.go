package numeric

import (
	"math"
	"math/big"
)

// MakeInteger canonicalizes i to SmallInt when it fits, else BigInt.
func MakeInteger(i int64) Number {
	if fitsSmall(i) {
		return SmallInt(i)
	}
	return newBigInt(big.NewInt(i))
}

// MakeIntegerBig canonicalizes an already-arbitrary-precision value.
// Takes ownership of v; callers must not mutate v afterwards.
func MakeIntegerBig(v *big.Int) Number {
	return normalizeInt(v)
}

// MakeRational builds the canonical rational n/d.
//
// If d == 0, the result is inexact -- +-Inf by the sign
// of n, or NaN if n is also zero (this is the same primitive division by
// exact zero uses). Otherwise n/d is reduced by
// gcd(|n|, |d|), the sign is moved onto the numerator, and the result
// collapses to an Integer when the reduced denominator is 1.
func MakeRational(n, d *big.Int) Number {
	if d.Sign() == 0 {
		switch n.Sign() {
		case 0:
			return NaN
		case 1:
			return PositiveInfinity
		default:
			return NegativeInfinity
		}
	}
	if n.Sign() == 0 {
		return SmallInt(0)
	}

	num := new(big.Int).Set(n)
	den := new(big.Int).Set(d)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}

	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Cmp(big.NewInt(1)) > 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}

	if den.Cmp(big.NewInt(1)) == 0 {
		return normalizeInt(num)
	}
	return newRatnum(num, den)
}

// MakeComplex builds the canonical complex re+im*i. If im == 0.0 the
// result collapses to Flonum(re).
func MakeComplex(re, im float64) Number {
	if im == 0.0 {
		return Flonum(re)
	}
	return newComplex(re, im)
}

// MakeFlonumToNumber converts d to a Number. If exact is true and d is
// finite with zero fractional part, the result is the corresponding exact
// Integer; otherwise the result is Flonum(d).
func MakeFlonumToNumber(d float64, exact bool) Number {
	if exact && isFiniteInteger(d) {
		return flonumToExactInteger(d)
	}
	return Flonum(d)
}

// ExactFromFlonum converts any finite d to the exact rational (Integer or
// Ratnum) it represents bit-for-bit, using decodeFlonum's full-precision
// mantissa rather than a lossy decimal round-trip. NaN and infinities
// have no exact representation and are rejected.
func ExactFromFlonum(d float64) (Number, error) {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return nil, newErr(ErrUnsupportedExact, "exact", "NaN and infinities have no exact representation")
	}
	num, den := ratFromFlonum(d)
	return MakeRational(num, den), nil
}

// ExactToInexact implements the exported `exact->inexact` operation: any
// exact Number (Integer or Ratnum) becomes the Flonum closest to it;
// already-inexact values (Flonum, Complex) pass through unchanged.
func ExactToInexact(n Number) (Number, error) {
	if IsInexact(n) {
		return n, nil
	}
	f, err := ToFloat64(n)
	if err != nil {
		return nil, err
	}
	return Flonum(f), nil
}

// InexactToExact implements the exported `inexact->exact` operation:
// a Flonum converts to the exact rational it represents bit-for-bit via
// ExactFromFlonum; already-exact values pass through unchanged; Complex
// has no exact representation (spec.md Non-goals: no exact complex).
func InexactToExact(n Number) (Number, error) {
	switch v := n.(type) {
	case Flonum:
		return ExactFromFlonum(float64(v))
	case *Complex:
		return nil, newErr(ErrUnsupportedExact, "inexact->exact", "complex has no exact representation")
	default:
		return n, nil
	}
}

func isFiniteInteger(d float64) bool {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return false
	}
	return d == math.Trunc(d)
}

// flonumToExactInteger converts a finite, integral Flonum to the exact
// Integer of the same value using decodeFlonum's full 53-bit mantissa, so
// large integral doubles convert exactly rather than through int64.
func flonumToExactInteger(d float64) Number {
	mant, exp, sign, special := decodeFlonum(d)
	if special != decodeNormal {
		return SmallInt(0)
	}
	v := new(big.Int).Set(mant)
	if exp >= 0 {
		v.Lsh(v, uint(exp))
	} else {
		v.Rsh(v, uint(-exp))
	}
	if sign < 0 {
		v.Neg(v)
	}
	return normalizeInt(v)
}
