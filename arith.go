package numeric

import "math/big"

func isExactZero(n Number) bool {
	si, ok := n.(SmallInt)
	return ok && si == 0
}

func isExactOne(n Number) bool {
	si, ok := n.(SmallInt)
	return ok && si == 1
}

// toComplexParts lifts any real Number to a (re, im) pair, im == 0 unless
// n is already Complex: any arithmetic against a Complex lifts the other
// operand to a complex pair (re, 0).
func toComplexParts(n Number) (re, im float64, err error) {
	if c, ok := n.(*Complex); ok {
		return c.re, c.im, nil
	}
	re, err = ToFloat64(n)
	return re, 0, err
}

// Add returns a + b, at the join-lattice variant of the operands.
func Add(a, b Number) (Number, error) { return binaryAddSub(a, b, true) }

// Sub returns a - b, at the join-lattice variant of the operands.
func Sub(a, b Number) (Number, error) { return binaryAddSub(a, b, false) }

func binaryAddSub(a, b Number, isAdd bool) (Number, error) {
	if a.Kind() == KindComplex || b.Kind() == KindComplex {
		are, aim, err := toComplexParts(a)
		if err != nil {
			return nil, err
		}
		bre, bim, err := toComplexParts(b)
		if err != nil {
			return nil, err
		}
		if isAdd {
			return MakeComplex(are+bre, aim+bim), nil
		}
		return MakeComplex(are-bre, aim-bim), nil
	}

	if a.Kind() == KindFlonum || b.Kind() == KindFlonum {
		af, err := ToFloat64(a)
		if err != nil {
			return nil, err
		}
		bf, err := ToFloat64(b)
		if err != nil {
			return nil, err
		}
		if isAdd {
			return Flonum(af + bf), nil
		}
		return Flonum(af - bf), nil
	}

	if a.Kind() == KindRatnum || b.Kind() == KindRatnum {
		return ratAddSub(asRatParts(a), asRatParts(b), isAdd), nil
	}

	return intAddSub(a, b, isAdd), nil
}

// ratParts is (num, den) for any exact real, with Integer operands
// treated as n/1, so mixed integer/rational arithmetic can share one
// code path.
type ratParts struct {
	num, den *big.Int
}

func asRatParts(n Number) ratParts {
	switch v := n.(type) {
	case *Ratnum:
		return ratParts{num: v.num, den: v.den}
	default:
		return ratParts{num: bigIntOf(n), den: big.NewInt(1)}
	}
}

// ratAddSub implements the GCD-shortcut cross-multiply
// addition: g = gcd(b, d), b' = b/g, d' = d/g, numerator a*d' +- c*b',
// denominator b*d'. Shortcuts: equal denominators skip the cross
// multiply; one denominator dividing the other factors only one side.
func ratAddSub(x, y ratParts, isAdd bool) Number {
	if x.den.Cmp(y.den) == 0 {
		var num *big.Int
		if isAdd {
			num = new(big.Int).Add(x.num, y.num)
		} else {
			num = new(big.Int).Sub(x.num, y.num)
		}
		return MakeRational(num, x.den)
	}

	g := new(big.Int).GCD(nil, nil, x.den, y.den)
	bPrime := new(big.Int).Quo(x.den, g)
	dPrime := new(big.Int).Quo(y.den, g)

	term1 := new(big.Int).Mul(x.num, dPrime)
	term2 := new(big.Int).Mul(y.num, bPrime)
	var num *big.Int
	if isAdd {
		num = new(big.Int).Add(term1, term2)
	} else {
		num = new(big.Int).Sub(term1, term2)
	}
	den := new(big.Int).Mul(x.den, dPrime)
	return MakeRational(num, den)
}

// intAddSub computes a +- b for two Integer-kind operands. Since SmallInt
// magnitudes are bounded to +-2^61, the int64 sum/difference of two
// SmallInts can never overflow int64 itself (the sign-reconstruction
// check is only needed once a BigInt operand is involved, where we fall
// back to math/big directly).
func intAddSub(a, b Number, isAdd bool) Number {
	as, aIsSmall := a.(SmallInt)
	bs, bIsSmall := b.(SmallInt)
	if aIsSmall && bIsSmall {
		var r int64
		if isAdd {
			r = int64(as) + int64(bs)
		} else {
			r = int64(as) - int64(bs)
		}
		if fitsSmall(r) {
			return SmallInt(r)
		}
		return normalizeInt(big.NewInt(r))
	}

	av, bv := bigIntOf(a), bigIntOf(b)
	var r *big.Int
	if isAdd {
		r = new(big.Int).Add(av, bv)
	} else {
		r = new(big.Int).Sub(av, bv)
	}
	return normalizeInt(r)
}

// Mul returns a * b, at the join-lattice variant of the operands, honoring
// the exact-zero-absorbs and exact-one-identity shortcuts.
func Mul(a, b Number) (Number, error) {
	if a.Kind() == KindComplex || b.Kind() == KindComplex {
		are, aim, err := toComplexParts(a)
		if err != nil {
			return nil, err
		}
		bre, bim, err := toComplexParts(b)
		if err != nil {
			return nil, err
		}
		return MakeComplex(are*bre-aim*bim, are*bim+aim*bre), nil
	}

	// Exact zero absorbs any non-NaN multiplicand; exact one is identity
	// without reboxing (checked before the inexact promotion so "0 * 1.5"
	// still yields exact 0).
	if isExactZero(a) && !isNaNNumber(b) {
		return SmallInt(0), nil
	}
	if isExactZero(b) && !isNaNNumber(a) {
		return SmallInt(0), nil
	}
	if isExactOne(a) {
		return b, nil
	}
	if isExactOne(b) {
		return a, nil
	}

	if a.Kind() == KindFlonum || b.Kind() == KindFlonum {
		af, err := ToFloat64(a)
		if err != nil {
			return nil, err
		}
		bf, err := ToFloat64(b)
		if err != nil {
			return nil, err
		}
		return Flonum(af * bf), nil
	}

	if a.Kind() == KindRatnum || b.Kind() == KindRatnum {
		x, y := asRatParts(a), asRatParts(b)
		num := new(big.Int).Mul(x.num, y.num)
		den := new(big.Int).Mul(x.den, y.den)
		return MakeRational(num, den), nil
	}

	return intMul(a, b), nil
}

func isNaNNumber(n Number) bool {
	f, ok := n.(Flonum)
	return ok && float64(f) != float64(f)
}

// intMul implements the SmallInt x SmallInt overflow predicate from
// the overflow predicate "v1 != 0 && (v0*v1)/v1 != v0", falling back to
// math/big on overflow (Go's signed overflow wraps deterministically, so
// this check -- not UB-sensitive -- is safe to perform directly).
func intMul(a, b Number) Number {
	as, aIsSmall := a.(SmallInt)
	bs, bIsSmall := b.(SmallInt)
	if aIsSmall && bIsSmall {
		v0, v1 := int64(as), int64(bs)
		r := v0 * v1
		if v1 == 0 || r/v1 == v0 {
			if fitsSmall(r) {
				return SmallInt(r)
			}
			return normalizeInt(big.NewInt(r))
		}
	}
	return normalizeInt(new(big.Int).Mul(bigIntOf(a), bigIntOf(b)))
}

// Div returns a / b, preserving exactness: exact/exact with a non-zero
// exact divisor yields an exact Ratnum/Integer; division by exact zero
// yields +-Inf or NaN (the DivisionByZero kind is
// reserved for the integer Quotient/Remainder/Modulo family in
// intdiv.go, not for real division).
func Div(a, b Number) (Number, error) {
	if a.Kind() == KindComplex || b.Kind() == KindComplex {
		are, aim, err := toComplexParts(a)
		if err != nil {
			return nil, err
		}
		bre, bim, err := toComplexParts(b)
		if err != nil {
			return nil, err
		}
		denom := bre*bre + bim*bim
		return MakeComplex((are*bre+aim*bim)/denom, (aim*bre-are*bim)/denom), nil
	}

	if a.Kind() == KindFlonum || b.Kind() == KindFlonum {
		af, err := ToFloat64(a)
		if err != nil {
			return nil, err
		}
		bf, err := ToFloat64(b)
		if err != nil {
			return nil, err
		}
		return Flonum(af / bf), nil
	}

	// Both exact (Integer or Ratnum): a/b ÷ c/d = (a*d)/(b*c).
	x, y := asRatParts(a), asRatParts(b)
	num := new(big.Int).Mul(x.num, y.den)
	den := new(big.Int).Mul(x.den, y.num)
	return MakeRational(num, den), nil
}

// DivInexact behaves like Div but always returns an inexact (Flonum or
// Complex) result, coercing an exact rational quotient to its binary64
// approximation instead of leaving it as a Ratnum.
func DivInexact(a, b Number) (Number, error) {
	r, err := Div(a, b)
	if err != nil {
		return nil, err
	}
	if r.Kind() == KindRatnum || IsInteger(r) {
		f, ferr := ToFloat64(r)
		if ferr != nil {
			return nil, ferr
		}
		return Flonum(f), nil
	}
	return r, nil
}

// Negate returns -n.
func Negate(n Number) Number {
	switch v := n.(type) {
	case SmallInt:
		if v == SmallMin { // -SmallMin overflows SmallMax by one
			return normalizeInt(new(big.Int).Neg(big.NewInt(int64(v))))
		}
		return -v
	case *BigInt:
		return normalizeInt(new(big.Int).Neg(v.v))
	case *Ratnum:
		return newRatnum(new(big.Int).Neg(v.num), new(big.Int).Set(v.den))
	case Flonum:
		return Flonum(-float64(v))
	case *Complex:
		return newComplex(-v.re, -v.im)
	default:
		panic("numeric: Negate on non-Number")
	}
}

// Abs returns |n|.
func Abs(n Number) Number {
	switch v := n.(type) {
	case SmallInt:
		if v < 0 {
			return Negate(v)
		}
		return v
	case *BigInt:
		return normalizeInt(new(big.Int).Abs(v.v))
	case *Ratnum:
		if v.num.Sign() < 0 {
			return newRatnum(new(big.Int).Neg(v.num), new(big.Int).Set(v.den))
		}
		return v
	case Flonum:
		f := float64(v)
		if f < 0 {
			return Flonum(-f)
		}
		return v
	case *Complex:
		mag := Magnitude(v)
		return Flonum(mag)
	default:
		panic("numeric: Abs on non-Number")
	}
}

// Reciprocal returns 1/n, preserving exactness when n is exact and non-zero.
func Reciprocal(n Number) (Number, error) {
	return Div(SmallInt(1), n)
}
