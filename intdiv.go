package numeric

import (
	"math"
	"math/big"
)

// toIntegerOperand accepts an Integer directly, or a Flonum with zero
// fractional part; any other operand, or a Flonum with a nonzero
// fraction, is an error.
func toIntegerOperand(n Number, op string) (*big.Int, error) {
	switch v := n.(type) {
	case SmallInt:
		return big.NewInt(int64(v)), nil
	case *BigInt:
		return v.Big(), nil
	case Flonum:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return nil, newErr(ErrTypeError, op, "flonum operand has a fractional part")
		}
		bi, err := toBigIntTruncated(v)
		if err != nil {
			return nil, err
		}
		return bi, nil
	default:
		return nil, newErr(ErrTypeError, op, "operand is not an integer")
	}
}

// resultKindInexact reports whether either original operand was a Flonum,
// so Quotient/Remainder/Modulo on integral flonums stay inexact.
func resultKindInexact(a, b Number) bool {
	_, af := a.(Flonum)
	_, bf := b.(Flonum)
	return af || bf
}

func wrapDivResult(v *big.Int, inexact bool) Number {
	if inexact {
		f, _ := ToFloat64(normalizeInt(v))
		return Flonum(f)
	}
	return normalizeInt(v)
}

// Quotient returns the truncating-toward-zero integer quotient of x / y.
func Quotient(x, y Number) (Number, error) {
	q, _, err := quotientRemainder(x, y)
	return q, err
}

// QuotientRemainder computes both the quotient and remainder of x / y in
// one call, amortizing the division.
func QuotientRemainder(x, y Number) (quot, rem Number, err error) {
	return quotientRemainder(x, y)
}

func quotientRemainder(x, y Number) (Number, Number, error) {
	xi, err := toIntegerOperand(x, "quotient")
	if err != nil {
		return nil, nil, err
	}
	yi, err := toIntegerOperand(y, "quotient")
	if err != nil {
		return nil, nil, err
	}
	if yi.Sign() == 0 {
		return nil, nil, newErr(ErrDivisionByZero, "quotient", "division by zero")
	}
	q, r := new(big.Int).QuoRem(xi, yi, new(big.Int))
	inexact := resultKindInexact(x, y)
	return wrapDivResult(q, inexact), wrapDivResult(r, inexact), nil
}

// Remainder returns x rem y; the sign of the result equals the sign of x.
func Remainder(x, y Number) (Number, error) {
	_, r, err := quotientRemainder(x, y)
	return r, err
}

// Modulo returns x mod y; the sign of the result equals the sign of y
// (computed via truncating remainder plus adjustment, not a true
// Euclidean mod).
func Modulo(x, y Number) (Number, error) {
	xi, err := toIntegerOperand(x, "modulo")
	if err != nil {
		return nil, err
	}
	yi, err := toIntegerOperand(y, "modulo")
	if err != nil {
		return nil, err
	}
	if yi.Sign() == 0 {
		return nil, newErr(ErrDivisionByZero, "modulo", "division by zero")
	}

	r := new(big.Int).Rem(xi, yi)
	if r.Sign() != 0 && (r.Sign() < 0) != (yi.Sign() < 0) {
		r.Add(r, yi)
	}
	return wrapDivResult(r, resultKindInexact(x, y)), nil
}

// GCD returns the non-negative greatest common divisor of x and y.
// Fits a fast machine-word Euclidean loop when both operands are
// SmallInt, a mixed big/small path otherwise, and full big.Int Euclid for
// two BigInt operands. Flonum operands use a real-valued Euclidean loop
// via math.Mod. gcd(0, y) == |y|.
func GCD(x, y Number) (Number, error) {
	if resultKindInexact(x, y) {
		xf, err := ToFloat64(x)
		if err != nil {
			return nil, err
		}
		yf, err := ToFloat64(y)
		if err != nil {
			return nil, err
		}
		return Flonum(gcdFloat(xf, yf)), nil
	}

	if xs, ok := x.(SmallInt); ok {
		if ys, ok := y.(SmallInt); ok {
			return SmallInt(gcdInt64(int64(xs), int64(ys))), nil
		}
		if yb, ok := y.(*BigInt); ok && xs != 0 {
			r := new(big.Int).Rem(yb.v, big.NewInt(int64(xs)))
			return MakeInteger(gcdInt64(int64(xs), r.Int64())), nil
		}
	}
	if xb, ok := x.(*BigInt); ok {
		if ys, ok := y.(SmallInt); ok && ys != 0 {
			r := new(big.Int).Rem(xb.v, big.NewInt(int64(ys)))
			return MakeInteger(gcdInt64(int64(ys), r.Int64())), nil
		}
	}

	xi, err := toIntegerOperand(x, "gcd")
	if err != nil {
		return nil, err
	}
	yi, err := toIntegerOperand(y, "gcd")
	if err != nil {
		return nil, err
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(xi), new(big.Int).Abs(yi))
	return normalizeInt(g), nil
}

func gcdInt64(a, b int64) int64 {
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

func gcdFloat(a, b float64) float64 {
	a, b = math.Abs(a), math.Abs(b)
	for b != 0 {
		a, b = b, math.Mod(a, b)
	}
	return a
}
