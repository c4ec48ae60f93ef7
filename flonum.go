package numeric

import "math"

// Flonum is an IEEE-754 binary64 value, including +-0, +-Inf and NaN.
type Flonum float64

func (Flonum) numberSealed() {}

// Kind implements Number.
func (Flonum) Kind() Kind { return KindFlonum }

// String implements Number via the Burger-Dybvig shortest round-trip
// printer (printer.go).
func (v Flonum) String() string { return printFlonum(float64(v), false) }

// Interned distinguished flonums. Safe to compare by value
// since Flonum is a defined type over float64, not a pointer.
var (
	PositiveInfinity = Flonum(math.Inf(1))
	NegativeInfinity = Flonum(math.Inf(-1))
	NaN              = Flonum(math.NaN())
)
