// Package errs defines the sentinel errors returned by labello.
//
// All errors are plain sentinel values so callers can match them with
// errors.Is even when they are wrapped with additional context.
package errs

import "errors"

// Encoder configuration and usage errors.
var (
	// ErrMappingFuncRequired is returned when fitting a CustomMapping encoder
	// without supplying a mapping function.
	ErrMappingFuncRequired = errors.New("custom mapping strategy requires a mapping function")

	// ErrInvalidMaxClasses is returned when the class ceiling is configured
	// with a value of zero.
	ErrInvalidMaxClasses = errors.New("max classes must be at least 1")

	// ErrInvalidStrategy is returned when an encoder is constructed with an
	// unknown strategy value.
	ErrInvalidStrategy = errors.New("invalid encoding strategy")

	// ErrStrategyMismatch is returned when the shape of transformed data does
	// not match the encoder's own strategy.
	ErrStrategyMismatch = errors.New("transformed data not compatible with this encoder")

	// ErrNonBinaryDigit indicates an internal invariant failure while
	// converting an index to a bit vector. It should never be observed given
	// correct conversion logic.
	ErrNonBinaryDigit = errors.New("non-binary digit in bit vector conversion")
)

// Blob format errors.
var (
	// ErrInvalidMagic is returned when blob data does not start with the
	// labello magic bytes.
	ErrInvalidMagic = errors.New("invalid blob magic")

	// ErrUnsupportedVersion is returned when the blob format version is not
	// supported by this build.
	ErrUnsupportedVersion = errors.New("unsupported blob format version")

	// ErrBlobTooShort is returned when blob data is truncated.
	ErrBlobTooShort = errors.New("blob data too short")

	// ErrChecksumMismatch is returned when the payload checksum stored in the
	// blob header does not match the payload.
	ErrChecksumMismatch = errors.New("blob payload checksum mismatch")

	// ErrInvalidCompression is returned when the blob header carries an
	// unknown compression flag.
	ErrInvalidCompression = errors.New("invalid compression type")
)
