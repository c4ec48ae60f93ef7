package money

import "github.com/minilang/numeric"

// RoundType selects the rounding policy, mirroring numeric.RoundMode.
type RoundType = numeric.RoundMode

const (
	RoundFloor    = numeric.RoundFloor
	RoundCeil     = numeric.RoundCeil
	RoundTrunc    = numeric.RoundTrunc
	RoundHalfEven = numeric.RoundHalfEven
)

// Rounded returns a new Money rounded to scale decimal places under mode.
// scale = 0 rounds to a whole unit; scale = 2 rounds to cents; negative
// scale rounds to powers of ten (scale = -2 rounds 1234 to 1200).
func (m Money) Rounded(mode RoundType, scale int) Money {
	result, _ := m.RoundedErr(mode, scale)
	return result
}

// RoundedErr is Rounded with error reporting.
func (m Money) RoundedErr(mode RoundType, scale int) (Money, error) {
	if m.IsInvalid() {
		return Money{}, ErrMoneyInvalid
	}

	factor, err := numeric.Expt(numeric.SmallInt(10), numeric.SmallInt(int64(scale)))
	if err != nil {
		return Money{}, err
	}
	scaled, err := numeric.Mul(m.amount, factor)
	if err != nil {
		return Money{}, err
	}
	rounded, err := numeric.Round(scaled, mode)
	if err != nil {
		return Money{}, err
	}
	restored, err := numeric.Div(rounded, factor)
	if err != nil {
		return Money{}, err
	}
	return Money{currency: m.currency, amount: restored}, nil
}

// Ceiled rounds toward positive infinity to scale decimal places.
func (m Money) Ceiled(scale int) Money {
	return m.Rounded(RoundCeil, scale)
}

// Floored rounds toward negative infinity to scale decimal places.
func (m Money) Floored(scale int) Money {
	return m.Rounded(RoundFloor, scale)
}
