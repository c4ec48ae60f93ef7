package numeric

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberErrorClassification(t *testing.T) {
	err := newErr(ErrDivisionByZero, "quotient", "division by zero")
	assert.True(t, IsDivisionByZero(err))
	assert.False(t, IsTypeError(err))
	assert.Contains(t, err.Error(), "quotient")
	assert.Contains(t, err.Error(), "division by zero")
}

func TestNumberErrorWrapping(t *testing.T) {
	err := newErr(ErrRangeError, "to-int", "overflow")
	var target *NumberError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, ErrRangeError, target.Kind)
}

func TestErrorKindStrings(t *testing.T) {
	assert.Equal(t, "type error", ErrTypeError.String())
	assert.Equal(t, "division by zero", ErrDivisionByZero.String())
	assert.Equal(t, "generic dispatch error", ErrGenericDispatchError.String())
}
