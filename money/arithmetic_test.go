package money

import (
	"testing"

	"github.com/minilang/numeric"
	"github.com/stretchr/testify/assert"
)

func TestAdded(t *testing.T) {
	a := NewMoneyInt("USD", 5)
	b := NewMoneyInt("USD", 3)

	sum, err := a.AddedErr(b)
	assert.NoError(t, err)
	assert.True(t, numeric.Equal(sum.Amount(), numeric.SmallInt(8)))
}

func TestAddedCurrencyMismatch(t *testing.T) {
	a := NewMoneyInt("USD", 5)
	b := NewMoneyInt("EUR", 3)

	_, err := a.AddedErr(b)
	assert.ErrorIs(t, err, ErrMoneyCurrencyMismatch)
}

func TestSubtracted(t *testing.T) {
	a := NewMoneyInt("USD", 5)
	b := NewMoneyInt("USD", 3)

	diff := a.Subtracted(b)
	assert.True(t, numeric.Equal(diff.Amount(), numeric.SmallInt(2)))
}

func TestNegated(t *testing.T) {
	a := NewMoneyInt("USD", 5)
	assert.True(t, numeric.Equal(a.Negated().Amount(), numeric.SmallInt(-5)))
}

func TestScaledInt(t *testing.T) {
	a := NewMoneyInt("USD", 5)
	scaled := a.ScaledInt(3)
	assert.True(t, numeric.Equal(scaled.Amount(), numeric.SmallInt(15)))
}

func TestPercentedInt(t *testing.T) {
	a := NewMoneyInt("USD", 200)
	tenPercent := a.PercentedInt(10)
	assert.True(t, numeric.Equal(tenPercent.Amount(), numeric.SmallInt(20)))
}

func TestPercentedOf(t *testing.T) {
	a := NewMoneyInt("USD", 50)
	b := NewMoneyInt("USD", 200)

	result, err := a.PercentedOfErr(b)
	assert.NoError(t, err)
	// 50 * (200/100) = 100
	assert.True(t, numeric.Equal(result.Amount(), numeric.SmallInt(100)))
}

func TestInvalidOperandsPropagate(t *testing.T) {
	invalid := NewInvalid()
	valid := NewMoneyInt("USD", 1)

	_, err := valid.AddedErr(invalid)
	assert.ErrorIs(t, err, ErrMoneyInvalid)
}
