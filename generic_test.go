package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type coercibleStub struct{ n Number }

func (c coercibleStub) ToNumber() (Number, error) { return c.n, nil }

type uncoercibleStub struct{}

func TestAddAnySubAnyMulAnyDivAny(t *testing.T) {
	t.Run("both plain Numbers", func(t *testing.T) {
		r, err := AddAny(SmallInt(2), SmallInt(3))
		assert.NoError(t, err)
		assert.Equal(t, SmallInt(5), r)
	})

	t.Run("one operand coercible", func(t *testing.T) {
		r, err := MulAny(coercibleStub{SmallInt(4)}, SmallInt(3))
		assert.NoError(t, err)
		assert.Equal(t, SmallInt(12), r)
	})

	t.Run("neither Number nor Coercible fails dispatch", func(t *testing.T) {
		_, err := SubAny(uncoercibleStub{}, SmallInt(1))
		assert.True(t, IsGenericDispatchError(err))
	})

	t.Run("DivAny coerces both sides", func(t *testing.T) {
		r, err := DivAny(coercibleStub{SmallInt(6)}, coercibleStub{SmallInt(2)})
		assert.NoError(t, err)
		assert.Equal(t, SmallInt(3), r)
	})
}
