package squish

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

type CodecError interface {
	error
	WithMessage(message string) CodecError
	Wrap(err error) CodecError
}

type baseSquishError string

const rootError = baseSquishError("")

// ErrEmptyInput is returned when a codec needs at least one symbol to build its
// model, e.g. Huffman compression of a zero-length buffer.
var ErrEmptyInput = rootError.WithMessage("Empty input")

// ErrMalformedInput is returned by every decode path that can't parse the
// structure it expects: truncated metadata, truncated pairs, short bit streams,
// or a tree walk that falls off a missing child.
var ErrMalformedInput = rootError.WithMessage("Malformed input")

// ErrInputTooLarge is returned when an input can't be described by the
// fixed-width counters of a container format.
var ErrInputTooLarge = rootError.WithMessage("Input too large")

var ErrUnknownAlgorithm = rootError.WithMessage("Unknown algorithm")

func (e baseSquishError) Error() string {
	return string(e)
}

func (e baseSquishError) RootCause() CodecError {
	return e
}

func (e baseSquishError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       message,
		originalError: e,
	}
}

func (e baseSquishError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customCodecError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e customCodecError) Error() string {
	return e.message
}

func (e customCodecError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customCodecError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customCodecError) Unwrap() error {
	return e.originalError
}
