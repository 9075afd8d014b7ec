package base64mix

import (
	"math"
)

// EncodedLen returns the number of symbols needed to encode n input bytes:
// the number of 3-byte groups, a partial group counting as one, times 4.
// The count is the same for every alphabet, since padded standard output
// and the longest unpadded output differ only in '=' versus nothing.
//
// Destination buffers for EncodeToBuffer must hold one extra byte beyond
// this for the terminator.
//
// EncodedLen returns ErrInvalidArgument for negative n, and ErrOverflow
// when the result cannot be represented by int. The overflow check bounds
// the group count by division before multiplying, so a wrapped-around
// small value can never be returned.
func EncodedLen(n int) (int, error) {
	if n < 0 {
		return 0, ErrInvalidArgument
	}

	groups := n / 3
	if n%3 != 0 {
		groups++
	}

	if groups > math.MaxInt/4 {
		return 0, ErrOverflow
	}

	return groups * 4, nil
}

// DecodedLen returns an upper bound on the number of bytes that decoding
// n symbols can produce: (n*3)/4. The actual decoded length is smaller
// when the input carries padding or a partial final group; the bound is
// for buffer sizing only and is deliberately not exact. Destination
// buffers for DecodeToBuffer must hold one extra byte beyond this for the
// terminator.
//
// Non-positive n returns 0.
func DecodedLen(n int) int {
	if n <= 0 {
		return 0
	}

	// Equal to (n*3)/4 for all n, without the intermediate product that
	// would overflow for large n.
	return (n/4)*3 + (n%4)*3/4
}
