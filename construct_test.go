package numeric

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeInteger(t *testing.T) {
	assert.Equal(t, SmallInt(42), MakeInteger(42))
	assert.Equal(t, SmallInt(0), MakeInteger(0))

	huge := MakeInteger(int64(SmallMax) + 1)
	_, isBig := huge.(*BigInt)
	assert.True(t, isBig, "value just past SmallMax should promote to BigInt")
}

func TestMakeIntegerBig(t *testing.T) {
	small := MakeIntegerBig(big.NewInt(7))
	assert.Equal(t, SmallInt(7), small, "small magnitudes should normalize down")

	v := new(big.Int).Lsh(big.NewInt(1), 100)
	big100 := MakeIntegerBig(v)
	bi, ok := big100.(*BigInt)
	assert.True(t, ok)
	assert.Equal(t, v.String(), bi.Big().String())
}

func TestMakeRational(t *testing.T) {
	t.Run("reduces to lowest terms", func(t *testing.T) {
		r := MakeRational(big.NewInt(4), big.NewInt(8))
		rat, ok := r.(*Ratnum)
		assert.True(t, ok)
		assert.Equal(t, "1", rat.Num().String())
		assert.Equal(t, "2", rat.Den().String())
	})

	t.Run("proper reduced rational", func(t *testing.T) {
		r := MakeRational(big.NewInt(2), big.NewInt(4))
		rat, ok := r.(*Ratnum)
		assert.True(t, ok)
		assert.Equal(t, "1", rat.Num().String())
		assert.Equal(t, "2", rat.Den().String())
	})

	t.Run("denominator 1 collapses to Integer", func(t *testing.T) {
		r := MakeRational(big.NewInt(6), big.NewInt(3))
		assert.Equal(t, SmallInt(2), r)
	})

	t.Run("sign moves onto numerator", func(t *testing.T) {
		r := MakeRational(big.NewInt(1), big.NewInt(-2))
		rat, ok := r.(*Ratnum)
		assert.True(t, ok)
		assert.Equal(t, "-1", rat.Num().String())
		assert.Equal(t, "2", rat.Den().String())
	})

	t.Run("zero numerator is exact zero", func(t *testing.T) {
		r := MakeRational(big.NewInt(0), big.NewInt(5))
		assert.Equal(t, SmallInt(0), r)
	})

	t.Run("division by zero yields signed infinity or NaN", func(t *testing.T) {
		assert.Equal(t, PositiveInfinity, MakeRational(big.NewInt(1), big.NewInt(0)))
		assert.Equal(t, NegativeInfinity, MakeRational(big.NewInt(-1), big.NewInt(0)))
		assert.Equal(t, NaN, MakeRational(big.NewInt(0), big.NewInt(0)))
	})
}

func TestMakeComplex(t *testing.T) {
	t.Run("zero imaginary collapses to Flonum", func(t *testing.T) {
		n := MakeComplex(3.5, 0.0)
		assert.Equal(t, Flonum(3.5), n)
	})

	t.Run("nonzero imaginary stays Complex", func(t *testing.T) {
		n := MakeComplex(1, 2)
		c, ok := n.(*Complex)
		assert.True(t, ok)
		assert.Equal(t, 1.0, c.Re())
		assert.Equal(t, 2.0, c.Im())
	})
}

func TestMakeFlonumToNumber(t *testing.T) {
	t.Run("exact integral flonum becomes Integer", func(t *testing.T) {
		n := MakeFlonumToNumber(4.0, true)
		assert.Equal(t, SmallInt(4), n)
	})

	t.Run("exact fractional flonum stays Flonum", func(t *testing.T) {
		n := MakeFlonumToNumber(4.5, true)
		assert.Equal(t, Flonum(4.5), n)
	})

	t.Run("inexact request always stays Flonum", func(t *testing.T) {
		n := MakeFlonumToNumber(4.0, false)
		assert.Equal(t, Flonum(4.0), n)
	})
}

func TestExactFromFlonum(t *testing.T) {
	t.Run("exact binary fraction converts without rounding", func(t *testing.T) {
		n, err := ExactFromFlonum(0.5)
		assert.NoError(t, err)
		rat, ok := n.(*Ratnum)
		assert.True(t, ok)
		assert.Equal(t, "1", rat.Num().String())
		assert.Equal(t, "2", rat.Den().String())
	})

	t.Run("integral value converts to Integer", func(t *testing.T) {
		n, err := ExactFromFlonum(3.0)
		assert.NoError(t, err)
		assert.Equal(t, SmallInt(3), n)
	})

	t.Run("NaN and infinities are rejected", func(t *testing.T) {
		_, err := ExactFromFlonum(float64(NaN))
		assert.True(t, IsUnsupportedExact(err))

		_, err = ExactFromFlonum(float64(PositiveInfinity))
		assert.True(t, IsUnsupportedExact(err))
	})
}

func TestExactToInexact(t *testing.T) {
	t.Run("rational becomes flonum", func(t *testing.T) {
		n, err := ExactToInexact(MakeRational(big.NewInt(1), big.NewInt(2)))
		assert.NoError(t, err)
		assert.Equal(t, Flonum(0.5), n)
	})

	t.Run("already-inexact passes through unchanged", func(t *testing.T) {
		n, err := ExactToInexact(Flonum(1.5))
		assert.NoError(t, err)
		assert.Equal(t, Flonum(1.5), n)
	})
}

func TestInexactToExact(t *testing.T) {
	t.Run("flonum becomes exact rational", func(t *testing.T) {
		n, err := InexactToExact(Flonum(0.5))
		assert.NoError(t, err)
		rat, ok := n.(*Ratnum)
		assert.True(t, ok)
		assert.Equal(t, "1", rat.Num().String())
		assert.Equal(t, "2", rat.Den().String())
	})

	t.Run("already-exact passes through unchanged", func(t *testing.T) {
		n, err := InexactToExact(SmallInt(7))
		assert.NoError(t, err)
		assert.Equal(t, SmallInt(7), n)
	})

	t.Run("complex has no exact representation", func(t *testing.T) {
		_, err := InexactToExact(MakeComplex(1, 2))
		assert.True(t, IsUnsupportedExact(err))
	})
}
