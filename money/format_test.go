package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringRoundTrip(t *testing.T) {
	m := NewMoneyFromFraction(3, 2, "USD")
	s := m.String()
	assert.Equal(t, "USD/3/2", s)

	parsed, err := ParseMoney(s)
	assert.NoError(t, err)
	assert.True(t, m.Equal(parsed))
}

func TestStringInteger(t *testing.T) {
	m := NewMoneyInt("JPY", 500)
	assert.Equal(t, "JPY/500", m.String())
}

func TestInvalidString(t *testing.T) {
	assert.Equal(t, invalidMoneyString, NewInvalid().String())
}

func TestParseMoneyErrors(t *testing.T) {
	_, err := ParseMoney("")
	assert.Error(t, err)

	_, err = ParseMoney("invalid")
	assert.Error(t, err)

	_, err = ParseMoney("USD")
	assert.Error(t, err)

	_, err = ParseMoney("usd/5")
	assert.Error(t, err)

	_, err = ParseMoney("USD/not-a-number")
	assert.Error(t, err)
}
