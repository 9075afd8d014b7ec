package base64mix

import (
	"errors"
)

// Errors returned by the codec. Each failure mode has its own sentinel so
// callers can tell them apart with errors.Is; in particular an invalid
// symbol (ErrInvalidCharacter) is not the same thing as a symbol that is
// valid but encodes unrepresentable trailing bits (ErrIllegalSequence).
var (
	// ErrInvalidArgument is returned for a nil alphabet, for a negative
	// length given to EncodedLen, and for decode input whose length is
	// 1 modulo 4, which cannot represent any byte sequence.
	ErrInvalidArgument = errors.New("base64mix: invalid argument")

	// ErrInsufficientSpace is returned when the destination buffer is
	// smaller than the required bound plus one terminator byte. Nothing
	// has been written to the destination when this is returned.
	ErrInsufficientSpace = errors.New("base64mix: output buffer too small")

	// ErrInvalidCharacter is returned when decoding encounters a byte
	// outside the active alphabet, including '=' anywhere other than the
	// trailing padding run.
	ErrInvalidCharacter = errors.New("base64mix: invalid character")

	// ErrInvalidPadding is returned for more than two trailing '='
	// characters, or for any padding on input whose total length is not
	// a multiple of four.
	ErrInvalidPadding = errors.New("base64mix: malformed padding")

	// ErrIllegalSequence is returned when the final partial group has
	// non-zero unused bits and so is not the canonical encoding of any
	// byte sequence (RFC 4648 Section 3.5).
	ErrIllegalSequence = errors.New("base64mix: non-canonical trailing bits")

	// ErrOverflow is returned when an input is so large that its encoded
	// length cannot be represented by int.
	ErrOverflow = errors.New("base64mix: encoded length overflows int")
)
