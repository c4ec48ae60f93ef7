package numeric

import (
	"math"
	"math/big"
)

// Expt raises base to the power exp. Integer bases with a non-negative
// Integer exponent stay exact (computed by repeated squaring via
// math/big.Int.Exp); a negative Integer exponent on an exact base
// produces the reciprocal rational; any inexact operand falls back to
// math.Pow via Flonum. Bases -1, 0 and 1 are not special-cased: for every
// exact base, an exponent whose magnitude exceeds 2^32 is a LimitViolation.
func Expt(base, exp Number) (Number, error) {
	if IsExact(base) && IsInteger(exp) {
		e, err := ToInt64(exp, ClampNone)
		if err != nil {
			return nil, newErr(ErrLimitViolation, "expt", "exponent too large to be sane")
		}
		return exptExact(base, e)
	}

	bf, err := ToFloat64(base)
	if err != nil {
		return nil, err
	}
	ef, err := ToFloat64(exp)
	if err != nil {
		return nil, err
	}
	return Flonum(math.Pow(bf, ef)), nil
}

func exptExact(base Number, e int64) (Number, error) {
	if e == 0 {
		return SmallInt(1), nil
	}

	neg := e < 0
	if neg {
		e = -e
	}
	if e > (1 << 32) {
		return nil, newErr(ErrLimitViolation, "expt", "exponent too large to be sane")
	}

	var result Number = SmallInt(1)
	var err error
	switch b := base.(type) {
	case *Ratnum:
		numPow := new(big.Int).Exp(b.num, big.NewInt(e), nil)
		denPow := new(big.Int).Exp(b.den, big.NewInt(e), nil)
		result = MakeRational(numPow, denPow)
	default:
		bi := bigIntOf(base)
		result = normalizeInt(new(big.Int).Exp(bi, big.NewInt(e), nil))
	}

	if neg {
		result, err = Reciprocal(result)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
