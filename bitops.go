package numeric

import "math/big"

// toExactIntegerOperand accepts only SmallInt/BigInt. Unlike
// toIntegerOperand (intdiv.go), it never accepts a Flonum -- not even one
// with zero fractional part -- matching spec.md's "require exact
// integers" for the bitwise family and original_source/src/number.c's
// Scm_Ash, which rejects any non-SmallInt/non-Bignum argument outright.
func toExactIntegerOperand(n Number, op string) (*big.Int, error) {
	switch v := n.(type) {
	case SmallInt:
		return big.NewInt(int64(v)), nil
	case *BigInt:
		return v.Big(), nil
	default:
		return nil, newErr(ErrTypeError, op, "exact integer required")
	}
}

// Ash performs an arithmetic shift: n > 0 shifts left, promoting to BigInt
// automatically when the result no longer fits SmallInt; n < 0 shifts
// right with arithmetic sign extension. math/big.Int's Lsh/Rsh already
// implement exactly this over arbitrary-precision two's complement, so
// the "ash(x, -k) for k >= word_bits yields -1/0" edge case falls out
// of Rsh without a special case.
func Ash(x Number, n int) (Number, error) {
	xi, err := toExactIntegerOperand(x, "ash")
	if err != nil {
		return nil, err
	}
	if n >= 0 {
		return normalizeInt(new(big.Int).Lsh(xi, uint(n))), nil
	}
	return normalizeInt(new(big.Int).Rsh(xi, uint(-n))), nil
}

// bitwiseOp applies fn to the big.Int representations of x and y (both
// must be exact integers).
func bitwiseOp(op string, x, y Number, fn func(z, a, b *big.Int) *big.Int) (Number, error) {
	xi, err := toExactIntegerOperand(x, op)
	if err != nil {
		return nil, err
	}
	yi, err := toExactIntegerOperand(y, op)
	if err != nil {
		return nil, err
	}
	return normalizeInt(fn(new(big.Int), xi, yi)), nil
}

// Logand returns the bitwise AND of x and y's two's-complement representations.
func Logand(x, y Number) (Number, error) {
	return bitwiseOp("logand", x, y, (*big.Int).And)
}

// Logior returns the bitwise OR of x and y's two's-complement representations.
func Logior(x, y Number) (Number, error) {
	return bitwiseOp("logior", x, y, (*big.Int).Or)
}

// Logxor returns the bitwise XOR of x and y's two's-complement representations.
func Logxor(x, y Number) (Number, error) {
	return bitwiseOp("logxor", x, y, (*big.Int).Xor)
}

// Lognot returns the bitwise complement of x: -(x+1).
func Lognot(x Number) (Number, error) {
	xi, err := toExactIntegerOperand(x, "lognot")
	if err != nil {
		return nil, err
	}
	return normalizeInt(new(big.Int).Not(xi)), nil
}
