package petdex_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/petdex"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := petdex.Errorf(petdex.ENOTFOUND, "place %q not found", "test")

	assert.Equal(t, petdex.ENOTFOUND, petdex.ErrorCode(err))
	assert.Equal(t, "place \"test\" not found", petdex.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, petdex.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, petdex.EINTERNAL, petdex.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, petdex.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "An internal error has occurred.", petdex.ErrorMessage(errors.New("boom")))
}
