package numeric

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumeratorDenominator(t *testing.T) {
	t.Run("integer operand", func(t *testing.T) {
		num, err := Numerator(SmallInt(5))
		assert.NoError(t, err)
		assert.Equal(t, SmallInt(5), num)

		den, err := Denominator(SmallInt(5))
		assert.NoError(t, err)
		assert.Equal(t, SmallInt(1), den)
	})

	t.Run("ratnum operand", func(t *testing.T) {
		r := MakeRational(big.NewInt(2), big.NewInt(6))
		num, err := Numerator(r)
		assert.NoError(t, err)
		assert.Equal(t, SmallInt(1), num)

		den, err := Denominator(r)
		assert.NoError(t, err)
		assert.Equal(t, SmallInt(3), den)
	})

	t.Run("complex operand errors", func(t *testing.T) {
		_, err := Numerator(newComplex(1, 1))
		assert.True(t, IsTypeError(err))
	})
}

func TestRealImagPart(t *testing.T) {
	c := newComplex(3, 4)
	assert.Equal(t, Flonum(3), RealPart(c))
	assert.Equal(t, Flonum(4), ImagPart(c))

	assert.Equal(t, SmallInt(5), RealPart(SmallInt(5)))
	assert.Equal(t, SmallInt(0), ImagPart(SmallInt(5)))
}

func TestMagnitudeAngle(t *testing.T) {
	c := newComplex(3, 4)
	assert.Equal(t, 5.0, Magnitude(c))

	assert.Equal(t, 3.0, Magnitude(SmallInt(-3)))
	assert.Equal(t, 0.0, Angle(SmallInt(5)))
	assert.InDelta(t, 3.141592653589793, Angle(SmallInt(-5)), 1e-12)
}
