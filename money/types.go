// Package money provides a Money type built on the numeric package's
// exact rational tower, supporting currency-safe arithmetic, comparison
// and rounding without the binary float rounding error a raw float64
// amount would introduce.
package money

import (
	"errors"
	"math/big"

	"github.com/go-playground/validator/v10"
	"github.com/minilang/numeric"
)

// Currency is an alias for string to provide clarity in documentation and function signatures.
type Currency = string

// Money represents a monetary value with a currency and an exact amount.
// Money is invalid if currency fails validation or amount is nil, complex,
// or otherwise unusable as a monetary quantity.
type Money struct {
	currency Currency
	amount   numeric.Number
}

// Error definitions for Money operations.
var (
	// ErrMoneyInvalid indicates that a Money value is in an invalid state.
	ErrMoneyInvalid = errors.New("invalid money")

	// ErrMoneyCurrencyMismatch indicates that an operation was attempted between Money values with different currencies.
	ErrMoneyCurrencyMismatch = errors.New("money currency mismatch")
)

var currencyValidate = validator.New()

// currencyForm is validated with go-playground/validator: a Money
// currency code must be a 3-letter uppercase ISO 4217-shaped code.
type currencyForm struct {
	Code Currency `validate:"required,len=3,uppercase,alpha"`
}

func validCurrency(c Currency) bool {
	return currencyValidate.Struct(currencyForm{Code: c}) == nil
}

// NewInvalid creates a new invalid Money value.
func NewInvalid() Money {
	return Money{}
}

// NewMoney creates a new Money with the given currency and amount.
// The Money is invalid if currency fails validation or amount is a
// Complex number.
func NewMoney(currency Currency, amount numeric.Number) Money {
	m, _ := NewMoneyErr(currency, amount)
	return m
}

// NewMoneyErr creates a new Money with the given currency and amount,
// reporting why construction failed.
func NewMoneyErr(currency Currency, amount numeric.Number) (Money, error) {
	if !validCurrency(currency) {
		return Money{}, ErrMoneyInvalid
	}
	if amount == nil || !numeric.IsReal(amount) {
		return Money{}, ErrMoneyInvalid
	}
	return Money{currency: currency, amount: amount}, nil
}

// NewMoneyInt creates a Money from an integer value.
func NewMoneyInt(currency Currency, value int64) Money {
	return NewMoney(currency, numeric.MakeInteger(value))
}

// NewMoneyFloat creates a Money from a float64 value, converted to its
// exact rational equivalent (never a Flonum amount) so downstream
// arithmetic stays exact.
func NewMoneyFloat(currency Currency, value float64) Money {
	m, _ := NewMoneyFloatErr(currency, value)
	return m
}

// NewMoneyFloatErr is NewMoneyFloat with error reporting.
func NewMoneyFloatErr(currency Currency, value float64) (Money, error) {
	amount, err := numeric.ExactFromFlonum(value)
	if err != nil {
		return Money{}, ErrMoneyInvalid
	}
	return NewMoneyErr(currency, amount)
}

// NewMoneyFromFraction creates a Money from a fraction (numerator/denominator).
func NewMoneyFromFraction(numerator, denominator int64, currency Currency) Money {
	m, _ := NewMoneyFromFractionErr(numerator, denominator, currency)
	return m
}

// NewMoneyFromFractionErr is NewMoneyFromFraction with error reporting.
func NewMoneyFromFractionErr(numerator, denominator int64, currency Currency) (Money, error) {
	if denominator == 0 {
		return Money{}, ErrMoneyInvalid
	}
	amount := numeric.MakeRational(big.NewInt(numerator), big.NewInt(denominator))
	return NewMoneyErr(currency, amount)
}

// ZeroMoney creates a Money representing zero in the given currency.
func ZeroMoney(currency Currency) Money {
	return NewMoney(currency, numeric.SmallInt(0))
}

// IsValid checks if the Money is in a valid state.
func (m Money) IsValid() bool {
	return m.currency != "" && m.amount != nil && validCurrency(m.currency)
}

// IsInvalid checks if the Money is in an invalid state.
func (m Money) IsInvalid() bool {
	return !m.IsValid()
}

// Currency returns the currency code of the Money.
func (m Money) Currency() string {
	return m.currency
}

// Amount returns the underlying exact amount. Returns nil for invalid Money.
func (m Money) Amount() numeric.Number {
	return m.amount
}

// SameCurrency checks if this Money has the same currency as another Money.
func (m Money) SameCurrency(other Money) bool {
	return hasSameCurrency(m, other)
}

// SameCurrency is a convenience function that checks if two Money values have the same currency.
func SameCurrency(a, b Money) bool {
	return hasSameCurrency(a, b)
}

// SameCurrencies reports whether all given Money values share one currency.
func SameCurrencies(moneys ...Money) bool {
	if len(moneys) <= 1 {
		return len(moneys) == 0 || moneys[0].IsValid()
	}
	for i := 1; i < len(moneys); i++ {
		if !hasSameCurrency(moneys[0], moneys[i]) {
			return false
		}
	}
	return true
}

// IsNegative checks if the Money represents a negative value.
func (m Money) IsNegative() bool {
	if m.IsInvalid() {
		return false
	}
	neg, err := numeric.IsNegative(m.amount)
	return err == nil && neg
}

// IsPositive checks if the Money represents a positive value.
func (m Money) IsPositive() bool {
	if m.IsInvalid() {
		return false
	}
	pos, err := numeric.IsPositive(m.amount)
	return err == nil && pos
}

// IsZero checks if the Money represents a zero value.
func (m Money) IsZero() bool {
	return m.IsValid() && numeric.IsZero(m.amount)
}
