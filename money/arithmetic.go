package money

import "github.com/minilang/numeric"

// Added returns the sum of this Money and another Money. Requires same
// currency; returns invalid Money on mismatch or either operand invalid.
func (m Money) Added(other Money) Money {
	result, _ := m.AddedErr(other)
	return result
}

// AddedErr is Added with error reporting.
func (m Money) AddedErr(other Money) (Money, error) {
	if m.IsInvalid() || other.IsInvalid() {
		return Money{}, ErrMoneyInvalid
	}
	if !m.SameCurrency(other) {
		return Money{}, ErrMoneyCurrencyMismatch
	}
	sum, err := numeric.Add(m.amount, other.amount)
	if err != nil {
		return Money{}, err
	}
	return Money{currency: m.currency, amount: sum}, nil
}

// Subtracted returns the difference of this Money and another Money.
func (m Money) Subtracted(other Money) Money {
	result, _ := m.SubtractedErr(other)
	return result
}

// SubtractedErr is Subtracted with error reporting.
func (m Money) SubtractedErr(other Money) (Money, error) {
	if m.IsInvalid() || other.IsInvalid() {
		return Money{}, ErrMoneyInvalid
	}
	if !m.SameCurrency(other) {
		return Money{}, ErrMoneyCurrencyMismatch
	}
	diff, err := numeric.Sub(m.amount, other.amount)
	if err != nil {
		return Money{}, err
	}
	return Money{currency: m.currency, amount: diff}, nil
}

// Profited is an alias for Subtracted, read as "profit/loss against other".
func (m Money) Profited(other Money) Money {
	return m.Subtracted(other)
}

// ProfitedErr is Profited with error reporting.
func (m Money) ProfitedErr(other Money) (Money, error) {
	return m.SubtractedErr(other)
}

// Negated returns the additive inverse of this Money.
func (m Money) Negated() Money {
	if m.IsInvalid() {
		return Money{}
	}
	return Money{currency: m.currency, amount: numeric.Negate(m.amount)}
}

// Scaled returns this Money multiplied by the exact factor.
func (m Money) Scaled(factor numeric.Number) Money {
	result, _ := m.ScaledErr(factor)
	return result
}

// ScaledErr is Scaled with error reporting.
func (m Money) ScaledErr(factor numeric.Number) (Money, error) {
	if m.IsInvalid() {
		return Money{}, ErrMoneyInvalid
	}
	product, err := numeric.Mul(m.amount, factor)
	if err != nil {
		return Money{}, err
	}
	return Money{currency: m.currency, amount: product}, nil
}

// ScaledInt returns this Money multiplied by an integer factor.
func (m Money) ScaledInt(factor int64) Money {
	return m.Scaled(numeric.MakeInteger(factor))
}

// percentDivisor is the denominator Percented divides by (value is a
// percentage, e.g. 15 means 15%).
const percentDivisor = 100

// Percented returns value percent of this Money: m * (value / 100).
func (m Money) Percented(value numeric.Number) Money {
	result, _ := m.PercentedErr(value)
	return result
}

// PercentedErr is Percented with error reporting.
func (m Money) PercentedErr(value numeric.Number) (Money, error) {
	if m.IsInvalid() {
		return Money{}, ErrMoneyInvalid
	}
	fraction, err := numeric.Div(value, numeric.SmallInt(percentDivisor))
	if err != nil {
		return Money{}, err
	}
	return m.ScaledErr(fraction)
}

// PercentedInt is Percented for an integer percentage.
func (m Money) PercentedInt(value int64) Money {
	return m.Percented(numeric.MakeInteger(value))
}

// PercentedOf returns other's amount, read as a percentage, of this
// Money: m * (other / 100). Requires same currency.
func (m Money) PercentedOf(other Money) Money {
	result, _ := m.PercentedOfErr(other)
	return result
}

// PercentedOfErr is PercentedOf with error reporting.
func (m Money) PercentedOfErr(other Money) (Money, error) {
	if m.IsInvalid() || other.IsInvalid() {
		return Money{}, ErrMoneyInvalid
	}
	if !m.SameCurrency(other) {
		return Money{}, ErrMoneyCurrencyMismatch
	}
	return m.PercentedErr(other.amount)
}
