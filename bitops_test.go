package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsh(t *testing.T) {
	t.Run("positive shift promotes across SmallInt boundary", func(t *testing.T) {
		r, err := Ash(SmallMax, 1)
		assert.NoError(t, err)
		_, ok := r.(*BigInt)
		assert.True(t, ok)
	})

	t.Run("negative shift is arithmetic right shift", func(t *testing.T) {
		r, err := Ash(SmallInt(-8), -2)
		assert.NoError(t, err)
		assert.Equal(t, SmallInt(-2), r)
	})

	t.Run("zero shift is identity", func(t *testing.T) {
		r, err := Ash(SmallInt(5), 0)
		assert.NoError(t, err)
		assert.Equal(t, SmallInt(5), r)
	})

	t.Run("flonum operand rejected even with zero fractional part", func(t *testing.T) {
		_, err := Ash(Flonum(2.0), 1)
		assert.True(t, IsTypeError(err))
	})
}

func TestBitwiseOps(t *testing.T) {
	r, err := Logand(SmallInt(0b1100), SmallInt(0b1010))
	assert.NoError(t, err)
	assert.Equal(t, SmallInt(0b1000), r)

	r, err = Logior(SmallInt(0b1100), SmallInt(0b1010))
	assert.NoError(t, err)
	assert.Equal(t, SmallInt(0b1110), r)

	r, err = Logxor(SmallInt(0b1100), SmallInt(0b1010))
	assert.NoError(t, err)
	assert.Equal(t, SmallInt(0b0110), r)

	r, err = Lognot(SmallInt(0))
	assert.NoError(t, err)
	assert.Equal(t, SmallInt(-1), r)
}

func TestBitwiseOpsRejectFlonum(t *testing.T) {
	_, err := Logand(Flonum(4.0), SmallInt(3))
	assert.True(t, IsTypeError(err))

	_, err = Lognot(Flonum(2.0))
	assert.True(t, IsTypeError(err))
}
