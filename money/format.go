package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/minilang/numeric"
)

// invalidMoneyString is the string representation for invalid Money.
const invalidMoneyString = "invalid"

// String returns the string representation of Money: "currency/amount",
// where amount is rendered the same way numeric.NumberToString(amount,
// 10, false) would (so an exact rational prints as "num/den").
// Returns "invalid" for invalid Money.
func (m Money) String() string {
	if m.IsInvalid() {
		return invalidMoneyString
	}
	amountStr, err := numeric.NumberToString(m.amount, 10, false)
	if err != nil {
		return invalidMoneyString
	}
	return fmt.Sprintf("%s/%s", m.currency, amountStr)
}

// ParseMoney parses a string produced by Money.String: "currency/amount"
// where amount is anything numeric.StringToNumber(amount, 10, true) can
// read (an integer, "num/den" rational, or decimal/exponent literal).
func ParseMoney(s string) (Money, error) {
	if s == "" || s == invalidMoneyString {
		return Money{}, errors.New("invalid money string")
	}

	idx := strings.IndexByte(s, '/')
	if idx <= 0 || idx == len(s)-1 {
		return Money{}, errors.New("invalid format: expected currency/amount")
	}
	currency := s[:idx]
	amountStr := s[idx+1:]

	amount, err := numeric.StringToNumber(amountStr, 10, true)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount: %w", err)
	}

	m, err := NewMoneyErr(currency, amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money: %w", err)
	}
	return m, nil
}
