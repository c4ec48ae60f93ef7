package numeric

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundRatnum(t *testing.T) {
	cases := []struct {
		name     string
		num, den int64
		mode     RoundMode
		want     SmallInt
	}{
		{"floor positive", 7, 2, RoundFloor, 3},
		{"floor negative", -7, 2, RoundFloor, -4},
		{"ceil positive", 7, 2, RoundCeil, 4},
		{"ceil negative", -7, 2, RoundCeil, -3},
		{"trunc positive", 7, 2, RoundTrunc, 3},
		{"trunc negative", -7, 2, RoundTrunc, -3},
		{"half-even tie 5/2 rounds down to even", 5, 2, RoundHalfEven, 2},
		{"half-even tie 3/2 rounds up to even", 3, 2, RoundHalfEven, 2},
		{"half-even no tie", 8, 3, RoundHalfEven, 3},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			r := MakeRational(big.NewInt(tt.num), big.NewInt(tt.den))
			got, err := Round(r, tt.mode)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundInteger(t *testing.T) {
	n, err := Round(SmallInt(5), RoundFloor)
	assert.NoError(t, err)
	assert.Equal(t, SmallInt(5), n)
}

func TestRoundFlonum(t *testing.T) {
	n, err := Round(Flonum(2.5), RoundHalfEven)
	assert.NoError(t, err)
	assert.Equal(t, Flonum(2), n)
}

func TestRoundComplexErrors(t *testing.T) {
	_, err := Round(newComplex(1, 1), RoundFloor)
	assert.True(t, IsTypeError(err))
}
