package money

import "github.com/minilang/numeric"

// Compare performs three-way comparison of Money values.
// Returns -1 if m < other, 0 if m == other, 1 if m > other.
// Returns 0 for invalid operands or currency mismatch.
func (m Money) Compare(other Money) int {
	c, err := m.CompareErr(other)
	if err != nil {
		return 0
	}
	return c
}

// CompareErr is Compare with error reporting.
func (m Money) CompareErr(other Money) (int, error) {
	if m.IsInvalid() || other.IsInvalid() {
		return 0, ErrMoneyInvalid
	}
	if !hasSameCurrency(m, other) {
		return 0, ErrMoneyCurrencyMismatch
	}
	return numeric.Compare(m.amount, other.amount)
}

// Equal checks if two Money values are equal: both valid, same currency,
// same amount.
func (m Money) Equal(other Money) bool {
	if m.IsInvalid() || other.IsInvalid() || !hasSameCurrency(m, other) {
		return false
	}
	return numeric.Equal(m.amount, other.amount)
}

// Less checks if this Money is less than another Money.
func (m Money) Less(other Money) bool {
	c, err := m.CompareErr(other)
	return err == nil && c < 0
}

// Greater checks if this Money is greater than another Money.
func (m Money) Greater(other Money) bool {
	c, err := m.CompareErr(other)
	return err == nil && c > 0
}
