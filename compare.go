package numeric

import (
	"math"
	"math/big"
)

// Compare returns -1, 0 or +1 for x < y, x == y, x > y. Comparing any
// real against a Complex with a non-zero imaginary part returns an error
// (such pairs are incomparable: only equality is defined on them).
func Compare(x, y Number) (int, error) {
	if x.Kind() == KindComplex || y.Kind() == KindComplex {
		return 0, newErr(ErrTypeError, "compare", "complex numbers are not ordered")
	}

	switch {
	case IsInteger(x) && IsInteger(y):
		return bigIntOf(x).Cmp(bigIntOf(y)), nil
	case x.Kind() == KindFlonum || y.Kind() == KindFlonum:
		return compareWithFlonum(x, y)
	default:
		// At least one Ratnum, neither a Flonum.
		return compareRational(asRatParts(x), asRatParts(y)), nil
	}
}

// Equal reports whether x and y denote the same numeric value. Complex
// equality compares real and imaginary parts separately under IEEE
// semantics; equality across Complex/real mixes is false
// unless the Complex's imaginary part is exactly zero.
func Equal(x, y Number) bool {
	xc, xIsComplex := x.(*Complex)
	yc, yIsComplex := y.(*Complex)
	if xIsComplex || yIsComplex {
		xre, xim := complexPartsOf(x, xc)
		yre, yim := complexPartsOf(y, yc)
		return xre == yre && xim == yim
	}
	c, err := Compare(x, y)
	return err == nil && c == 0
}

func complexPartsOf(n Number, c *Complex) (re, im float64) {
	if c != nil {
		return c.re, c.im
	}
	f, _ := ToFloat64(n)
	return f, 0
}

// compareRational compares two exact (Integer-as-n/1 or Ratnum) operands.
// Equal denominators compare numerators directly; otherwise cross-multiply
// via math/big.
func compareRational(x, y ratParts) int {
	if x.den.Cmp(y.den) == 0 {
		return x.num.Cmp(y.num)
	}
	lhs := new(big.Int).Mul(x.num, y.den)
	rhs := new(big.Int).Mul(y.num, x.den)
	return lhs.Cmp(rhs)
}

// compareWithFlonum compares an Integer/Ratnum against a Flonum (or two
// Flonums) without losing precision: a fractional flonum is compared via
// its exact decomposition so the integer-vs-big-integer comparison never
// rounds.
func compareWithFlonum(x, y Number) (int, error) {
	xf, xIsFlo := x.(Flonum)
	yf, yIsFlo := y.(Flonum)
	if xIsFlo && yIsFlo {
		if math.IsNaN(float64(xf)) || math.IsNaN(float64(yf)) {
			return 0, newErr(ErrTypeError, "compare", "NaN is not ordered")
		}
		return compareFloats(float64(xf), float64(yf)), nil
	}

	var flo Flonum
	var exact Number
	var exactIsX bool
	if xIsFlo {
		flo, exact, exactIsX = xf, y, false
	} else {
		flo, exact, exactIsX = yf, x, true
	}

	f := float64(flo)
	if math.IsNaN(f) {
		return 0, newErr(ErrTypeError, "compare", "NaN is not ordered")
	}
	if math.IsInf(f, 1) {
		if exactIsX {
			return -1, nil
		}
		return 1, nil
	}
	if math.IsInf(f, -1) {
		if exactIsX {
			return 1, nil
		}
		return -1, nil
	}

	num, den := ratFromFlonum(f)
	c := compareRational(asRatParts(exact), ratParts{num: num, den: den})
	if exactIsX {
		return c, nil
	}
	return -c, nil
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
