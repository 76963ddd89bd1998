package squish_test

import (
	"errors"
	"testing"

	"github.com/dargueta/squish"
	"github.com/stretchr/testify/assert"
)

func TestSquishErrorWithMessage(t *testing.T) {
	newErr := squish.ErrMalformedInput.WithMessage("truncated pair")
	assert.Equal(
		t, "Malformed input: truncated pair", newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, squish.ErrMalformedInput)
	assert.NotErrorIs(t, newErr, squish.ErrEmptyInput)
}

func TestSquishErrorWrap(t *testing.T) {
	originalErr := errors.New("original error")
	newErr := squish.ErrUnknownAlgorithm.Wrap(originalErr)
	expectedMessage := "Unknown algorithm: original error"

	assert.EqualValues(t, expectedMessage, newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, originalErr, "original error not set as parent")
	assert.ErrorIs(t, newErr, squish.ErrUnknownAlgorithm, "squish error not set as parent")
}

func TestSquishErrorChainedMessages(t *testing.T) {
	newErr := squish.ErrMalformedInput.WithMessage("frequency table").WithMessage("entry 3")
	assert.Equal(t, "Malformed input: frequency table: entry 3", newErr.Error())
	assert.ErrorIs(t, newErr, squish.ErrMalformedInput)
}
