package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuotientRemainder(t *testing.T) {
	t.Run("positive operands", func(t *testing.T) {
		q, r, err := QuotientRemainder(SmallInt(7), SmallInt(2))
		assert.NoError(t, err)
		assert.Equal(t, SmallInt(3), q)
		assert.Equal(t, SmallInt(1), r)
	})

	t.Run("remainder takes the sign of the dividend", func(t *testing.T) {
		q, r, err := QuotientRemainder(SmallInt(-7), SmallInt(2))
		assert.NoError(t, err)
		assert.Equal(t, SmallInt(-3), q)
		assert.Equal(t, SmallInt(-1), r)
	})

	t.Run("division by zero errors", func(t *testing.T) {
		_, _, err := QuotientRemainder(SmallInt(1), SmallInt(0))
		assert.True(t, IsDivisionByZero(err))
	})

	t.Run("integral flonum operand stays inexact", func(t *testing.T) {
		q, err := Quotient(Flonum(7), SmallInt(2))
		assert.NoError(t, err)
		assert.Equal(t, Flonum(3), q)
	})

	t.Run("flonum with fractional part is rejected", func(t *testing.T) {
		_, err := Quotient(Flonum(7.5), SmallInt(2))
		assert.True(t, IsTypeError(err))
	})
}

func TestModulo(t *testing.T) {
	t.Run("modulo takes the sign of the divisor", func(t *testing.T) {
		m, err := Modulo(SmallInt(-7), SmallInt(2))
		assert.NoError(t, err)
		assert.Equal(t, SmallInt(1), m)
	})

	t.Run("matching signs behave like remainder", func(t *testing.T) {
		m, err := Modulo(SmallInt(7), SmallInt(2))
		assert.NoError(t, err)
		assert.Equal(t, SmallInt(1), m)
	})

	t.Run("division by zero errors", func(t *testing.T) {
		_, err := Modulo(SmallInt(1), SmallInt(0))
		assert.True(t, IsDivisionByZero(err))
	})
}

func TestGCD(t *testing.T) {
	t.Run("SmallInt fast path", func(t *testing.T) {
		g, err := GCD(SmallInt(12), SmallInt(18))
		assert.NoError(t, err)
		assert.Equal(t, SmallInt(6), g)
	})

	t.Run("gcd with zero is the other operand's magnitude", func(t *testing.T) {
		g, err := GCD(SmallInt(0), SmallInt(-9))
		assert.NoError(t, err)
		assert.Equal(t, SmallInt(9), g)
	})

	t.Run("flonum operands use the real-valued loop", func(t *testing.T) {
		g, err := GCD(Flonum(12), Flonum(18))
		assert.NoError(t, err)
		assert.Equal(t, Flonum(6), g)
	})
}
