package numeric

import "math/big"

// Ratnum is an exact rational built directly on *big.Int (not math/big's
// Rat) so that the GCD-shortcut cross-multiply arithmetic in arith.go is
// the code that actually runs.
//
// Invariants, established by MakeRational (construct.go); Negate and Abs
// (arith.go) only flip the sign of an already-valid Ratnum:
//   - den > 0
//   - gcd(|num|, den) == 1
//   - den != 1 (otherwise the value normalizes to an Integer)
//   - num != 0 (otherwise the value normalizes to SmallInt(0))
type Ratnum struct {
	num *big.Int
	den *big.Int
}

func (*Ratnum) numberSealed() {}

// Kind implements Number.
func (*Ratnum) Kind() Kind { return KindRatnum }

// String implements Number.
func (r *Ratnum) String() string {
	return r.num.String() + "/" + r.den.String()
}

// Num returns a copy of the numerator.
func (r *Ratnum) Num() *big.Int { return new(big.Int).Set(r.num) }

// Den returns a copy of the denominator (always positive).
func (r *Ratnum) Den() *big.Int { return new(big.Int).Set(r.den) }

// newRatnum wraps already-reduced (num, den) -- callers must not mutate
// either value again. Used by MakeRational, Negate and Abs.
func newRatnum(num, den *big.Int) *Ratnum {
	return &Ratnum{num: num, den: den}
}
