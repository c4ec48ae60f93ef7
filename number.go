// Package numeric implements the numeric tower of a dynamically-typed
// language runtime: SmallInt, BigInt, Ratnum, Flonum and Complex values,
// their arithmetic, comparison, rounding, bitwise operations, and
// bidirectional string conversion.
//
// Values are immutable. Every operation returns a fresh Number; none
// mutates its operands. Construction always goes through the smart
// constructors in construct.go so the per-kind invariants in this file's
// doc comments are never violated by a value a caller can observe.
package numeric

import "math/big"

// Kind identifies which of the five numeric variants a Number holds.
// The numeric order of Kind values is the join lattice used by the
// binary arithmetic dispatch: SmallInt < BigInt < Ratnum < Flonum < Complex.
type Kind int

const (
	KindSmallInt Kind = iota
	KindBigInt
	KindRatnum
	KindFlonum
	KindComplex
)

func (k Kind) String() string {
	switch k {
	case KindSmallInt:
		return "small-integer"
	case KindBigInt:
		return "big-integer"
	case KindRatnum:
		return "rational"
	case KindFlonum:
		return "flonum"
	case KindComplex:
		return "complex"
	default:
		return "unknown-kind"
	}
}

// Number is the tagged numeric value. It is implemented only by the five
// types in this package (SmallInt, *BigInt, *Ratnum, Flonum, *Complex);
// the interface is not meant to be implemented by outside packages.
type Number interface {
	// Kind reports which numeric variant this value is.
	Kind() Kind
	// String renders the value in the Burger-Dybvig/grammar format
	// produced by NumberToString(n, 10, false).
	String() string

	numberSealed()
}

// IsInteger reports whether n is a SmallInt or BigInt.
func IsInteger(n Number) bool {
	k := n.Kind()
	return k == KindSmallInt || k == KindBigInt
}

// IsRational reports whether n is exact (SmallInt, BigInt or Ratnum).
func IsRational(n Number) bool {
	return IsExact(n)
}

// IsReal reports whether n is not Complex.
func IsReal(n Number) bool {
	return n.Kind() != KindComplex
}

// IsExact reports whether n carries no rounding error.
func IsExact(n Number) bool {
	switch n.Kind() {
	case KindSmallInt, KindBigInt, KindRatnum:
		return true
	default:
		return false
	}
}

// IsInexact reports whether n is a binary64 approximation (Flonum or Complex).
func IsInexact(n Number) bool {
	return !IsExact(n)
}

// joinKind returns the higher of two kinds in the join lattice
// SmallInt < BigInt < Ratnum < Flonum < Complex.
func joinKind(a, b Kind) Kind {
	if a > b {
		return a
	}
	return b
}

// bigIntOf extracts the *big.Int backing an Integer-kind Number.
// Callers must have already established n is SmallInt or BigInt.
func bigIntOf(n Number) *big.Int {
	switch v := n.(type) {
	case SmallInt:
		return big.NewInt(int64(v))
	case *BigInt:
		return v.v
	default:
		panic("numeric: bigIntOf called on non-integer Number")
	}
}
