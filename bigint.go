package numeric

import "math/big"

// BigInt is an arbitrary-precision integer, used whenever a value exceeds
// SmallInt range. Invariant: a BigInt is never storable where a SmallInt
// would fit -- MakeInteger and every arithmetic result pass through
// normalizeInt to enforce this before a BigInt escapes this package.
type BigInt struct {
	v *big.Int
}

func (*BigInt) numberSealed() {}

// Kind implements Number.
func (*BigInt) Kind() Kind { return KindBigInt }

// String implements Number.
func (b *BigInt) String() string { return b.v.String() }

// Big returns a copy of the underlying *big.Int so callers cannot mutate
// the BigInt's observable value.
func (b *BigInt) Big() *big.Int {
	return new(big.Int).Set(b.v)
}

// newBigInt wraps v (taking ownership -- callers must not mutate v again).
func newBigInt(v *big.Int) *BigInt {
	return &BigInt{v: v}
}

// normalizeInt canonicalizes a *big.Int result to SmallInt when it fits,
// else wraps it as *BigInt. This is the down-normalization step
// §3 requires of every Integer constructor.
func normalizeInt(v *big.Int) Number {
	if v.IsInt64() {
		i := v.Int64()
		if fitsSmall(i) {
			return SmallInt(i)
		}
	}
	return newBigInt(v)
}
