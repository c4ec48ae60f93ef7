package numeric

import (
	"math"
	"math/big"
)

// RoundMode selects the rounding policy for Round.
type RoundMode int

const (
	RoundFloor RoundMode = iota
	RoundCeil
	RoundTrunc
	RoundHalfEven
)

// Round rounds n to an Integer under mode. Integers are returned as-is.
func Round(n Number, mode RoundMode) (Number, error) {
	switch v := n.(type) {
	case SmallInt, *BigInt:
		return n, nil
	case *Ratnum:
		return roundRatnum(v, mode), nil
	case Flonum:
		return Flonum(roundFloat(float64(v), mode)), nil
	default:
		return nil, newErr(ErrTypeError, "round", "complex numbers cannot be rounded")
	}
}

// roundRatnum computes (q, r) = divmod(n, d), then an
// offset in {-1, 0, +1} is chosen per mode. Half-even compares 2*|r|
// against d, breaking an exact tie toward the even q.
func roundRatnum(r *Ratnum, mode RoundMode) Number {
	q, rem := new(big.Int).QuoRem(r.num, r.den, new(big.Int))
	if rem.Sign() == 0 {
		return normalizeInt(q)
	}

	switch mode {
	case RoundTrunc:
		return normalizeInt(q)
	case RoundFloor:
		if rem.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		}
		return normalizeInt(q)
	case RoundCeil:
		if rem.Sign() > 0 {
			q.Add(q, big.NewInt(1))
		}
		return normalizeInt(q)
	case RoundHalfEven:
		doubled := new(big.Int).Lsh(new(big.Int).Abs(rem), 1)
		cmp := doubled.Cmp(r.den)
		offset := int64(0)
		switch {
		case cmp > 0:
			offset = 1
		case cmp == 0:
			// Exactly halfway: break toward the even q.
			if q.Bit(0) == 1 {
				offset = 1
			}
		}
		if offset != 0 {
			if rem.Sign() < 0 {
				q.Sub(q, big.NewInt(offset))
			} else {
				q.Add(q, big.NewInt(offset))
			}
		}
		return normalizeInt(q)
	default:
		return normalizeInt(q)
	}
}

// roundFloat rounds a Flonum using the IEEE primitives math provides
// directly, preferring them over a hand-rolled implementation where
// available, since a platform-provided correctly-rounded primitive is
// preferable to a manually reimplemented one.
func roundFloat(f float64, mode RoundMode) float64 {
	switch mode {
	case RoundFloor:
		return math.Floor(f)
	case RoundCeil:
		return math.Ceil(f)
	case RoundTrunc:
		return math.Trunc(f)
	case RoundHalfEven:
		return math.RoundToEven(f)
	default:
		return f
	}
}
