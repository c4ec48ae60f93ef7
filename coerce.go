package numeric

import (
	"math"
	"math/big"
)

// ClampMode selects the out-of-range policy for host-integer extraction
// under the requested clamp mode.
type ClampMode int

const (
	// ClampNone raises ErrRangeError on overflow.
	ClampNone ClampMode = iota
	// ClampHigh saturates to the width's maximum.
	ClampHigh
	// ClampLow saturates to the width's minimum.
	ClampLow
	// ClampBoth saturates to whichever bound was exceeded.
	ClampBoth
)

// ToFloat64 extracts a binary64 approximation of n. Integers truncate
// exactly (BigInt via big.Float, SmallInt exactly); Ratnum divides
// numerator by denominator; Flonum is the identity; Complex errors.
func ToFloat64(n Number) (float64, error) {
	switch v := n.(type) {
	case SmallInt:
		return float64(v), nil
	case *BigInt:
		f := new(big.Float).SetInt(v.v)
		r, _ := f.Float64()
		return r, nil
	case *Ratnum:
		num := new(big.Float).SetInt(v.num)
		den := new(big.Float).SetInt(v.den)
		q := new(big.Float).Quo(num, den)
		r, _ := q.Float64()
		return r, nil
	case Flonum:
		return float64(v), nil
	case *Complex:
		return 0, newErr(ErrTypeError, "to-float64", "complex has no single binary64 representation")
	default:
		return 0, newErr(ErrTypeError, "to-float64", "not a number")
	}
}

// toBigIntTruncated reduces any real Number to an Integer by truncating
// toward zero (Ratnum: big.Int.Quo already truncates toward zero; Flonum:
// via decodeFlonum so huge integral doubles convert exactly).
func toBigIntTruncated(n Number) (*big.Int, error) {
	switch v := n.(type) {
	case SmallInt:
		return big.NewInt(int64(v)), nil
	case *BigInt:
		return v.Big(), nil
	case *Ratnum:
		return new(big.Int).Quo(v.num, v.den), nil
	case Flonum:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, newErr(ErrRangeError, "to-integer", "flonum is not finite")
		}
		trunced := math.Trunc(f)
		mant, exp, sign, special := decodeFlonum(trunced)
		if special != decodeNormal {
			return big.NewInt(0), nil
		}
		r := new(big.Int).Set(mant)
		if exp >= 0 {
			r.Lsh(r, uint(exp))
		} else {
			r.Rsh(r, uint(-exp))
		}
		if sign < 0 {
			r.Neg(r)
		}
		return r, nil
	case *Complex:
		return nil, newErr(ErrTypeError, "to-integer", "complex cannot be coerced to a host integer")
	default:
		return nil, newErr(ErrTypeError, "to-integer", "not a number")
	}
}

func clampSigned(v *big.Int, bitSize int, clamp ClampMode) (int64, error) {
	maxV := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bitSize-1)), big.NewInt(1))
	minV := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(bitSize-1)))

	if v.Cmp(maxV) > 0 {
		switch clamp {
		case ClampHigh, ClampBoth:
			return maxV.Int64(), nil
		default:
			return 0, newErr(ErrRangeError, "to-int", "value exceeds maximum for width")
		}
	}
	if v.Cmp(minV) < 0 {
		switch clamp {
		case ClampLow, ClampBoth:
			return minV.Int64(), nil
		default:
			return 0, newErr(ErrRangeError, "to-int", "value is below minimum for width")
		}
	}
	return v.Int64(), nil
}

func clampUnsigned(v *big.Int, bitSize int, clamp ClampMode) (uint64, error) {
	maxV := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bitSize)), big.NewInt(1))
	zero := big.NewInt(0)

	if v.Cmp(zero) < 0 {
		switch clamp {
		case ClampLow, ClampBoth:
			return 0, nil
		default:
			return 0, newErr(ErrRangeError, "to-uint", "value is negative")
		}
	}
	if v.Cmp(maxV) > 0 {
		switch clamp {
		case ClampHigh, ClampBoth:
			return maxV.Uint64(), nil
		default:
			return 0, newErr(ErrRangeError, "to-uint", "value exceeds maximum for width")
		}
	}
	return v.Uint64(), nil
}

// ToInt64 extracts a signed 64-bit host integer from n, applying clamp on overflow.
func ToInt64(n Number, clamp ClampMode) (int64, error) {
	v, err := toBigIntTruncated(n)
	if err != nil {
		return 0, err
	}
	return clampSigned(v, 64, clamp)
}

// ToInt32 extracts a signed 32-bit host integer from n, applying clamp on overflow.
func ToInt32(n Number, clamp ClampMode) (int32, error) {
	v, err := toBigIntTruncated(n)
	if err != nil {
		return 0, err
	}
	r, err := clampSigned(v, 32, clamp)
	return int32(r), err
}

// ToUint64 extracts an unsigned 64-bit host integer from n, applying clamp on overflow.
func ToUint64(n Number, clamp ClampMode) (uint64, error) {
	v, err := toBigIntTruncated(n)
	if err != nil {
		return 0, err
	}
	return clampUnsigned(v, 64, clamp)
}

// ToUint32 extracts an unsigned 32-bit host integer from n, applying clamp on overflow.
func ToUint32(n Number, clamp ClampMode) (uint32, error) {
	v, err := toBigIntTruncated(n)
	if err != nil {
		return 0, err
	}
	r, err := clampUnsigned(v, 32, clamp)
	return uint32(r), err
}
