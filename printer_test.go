package numeric

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberToStringIntegers(t *testing.T) {
	s, err := NumberToString(SmallInt(255), 10, false)
	assert.NoError(t, err)
	assert.Equal(t, "255", s)

	s, err = NumberToString(SmallInt(255), 16, false)
	assert.NoError(t, err)
	assert.Equal(t, "ff", s)

	s, err = NumberToString(SmallInt(255), 16, true)
	assert.NoError(t, err)
	assert.Equal(t, "FF", s)
}

func TestNumberToStringRatnum(t *testing.T) {
	r := MakeRational(big.NewInt(3), big.NewInt(4))
	s, err := NumberToString(r, 10, false)
	assert.NoError(t, err)
	assert.Equal(t, "3/4", s)
}

func TestNumberToStringInvalidRadix(t *testing.T) {
	_, err := NumberToString(SmallInt(1), 37, false)
	assert.True(t, IsRangeError(err))

	_, err = NumberToString(SmallInt(1), 1, false)
	assert.True(t, IsRangeError(err))
}

func TestPrintFlonumRoundTrip(t *testing.T) {
	cases := []float64{0, 1, -1, 0.5, 100, 1e20, 1e-20, 3.14159, 123456789.125}
	for _, v := range cases {
		s := printFlonum(v, false)
		n, err := StringToNumber(s, 10, true)
		assert.NoError(t, err, "round-tripping %v", v)
		f, err := ToFloat64(n)
		assert.NoError(t, err)
		assert.Equal(t, v, f, "shortest representation of %v should read back exactly", v)
	}
}

func TestPrintFlonumSpecialValues(t *testing.T) {
	assert.Equal(t, "+inf.0", printFlonum(float64(PositiveInfinity), false))
	assert.Equal(t, "-inf.0", printFlonum(float64(NegativeInfinity), false))
	assert.Equal(t, "+nan.0", printFlonum(float64(NaN), false))
	assert.Equal(t, "0.0", printFlonum(0, false))
	assert.Equal(t, "-0.0", printFlonum(negZero(), false))
}

func negZero() float64 {
	z := 0.0
	return -z
}

func TestComplexString(t *testing.T) {
	c := newComplex(1, 2)
	assert.Equal(t, "1.0+2.0i", c.String())

	c2 := newComplex(1, -2)
	assert.Equal(t, "1.0-2.0i", c2.String())
}
