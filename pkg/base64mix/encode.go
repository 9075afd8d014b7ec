package base64mix

// padding is appended to standard-alphabet output to reach a
// multiple-of-4 length. URL-safe output omits it.
const padding = '='

// EncodeToBuffer encodes src into dst using the given alphabet and
// returns the number of symbols written. It never allocates.
//
// dst must hold at least EncodedLen(len(src))+1 bytes; if it does not,
// EncodeToBuffer returns ErrInsufficientSpace without writing anything.
// On success a zero byte is written immediately after the last symbol,
// and the returned count excludes it. Empty src is not an error: it
// writes the terminator alone and returns 0.
//
// Padding is emitted only when the alphabet's symbol table is the
// standard one, which makes it a property of the alphabet passed rather
// than a separate option: Standard (and Mixed, whose symbol table aliases
// Standard's) pads, URL does not.
//
// dst and src must not overlap.
func EncodeToBuffer(dst, src []byte, a *Alphabet) (int, error) {
	if a == nil {
		return 0, ErrInvalidArgument
	}

	need, err := EncodedLen(len(src))
	if err != nil {
		return 0, err
	}

	if len(dst) < need+1 {
		return 0, ErrInsufficientSpace
	}

	if len(src) == 0 {
		dst[0] = 0
		return 0, nil
	}

	enc := a.enc
	padded := enc == &stdSymbols

	var i, n int

	// Four groups per iteration: 12 input bytes become 16 symbols.
	for batched := len(src) / 12 * 12; i < batched; i, n = i+12, n+16 {
		putGroup(dst[n:], enc, uint32(src[i])<<16|uint32(src[i+1])<<8|uint32(src[i+2]))
		putGroup(dst[n+4:], enc, uint32(src[i+3])<<16|uint32(src[i+4])<<8|uint32(src[i+5]))
		putGroup(dst[n+8:], enc, uint32(src[i+6])<<16|uint32(src[i+7])<<8|uint32(src[i+8]))
		putGroup(dst[n+12:], enc, uint32(src[i+9])<<16|uint32(src[i+10])<<8|uint32(src[i+11]))
	}

	// Whole groups left over from the batched loop.
	for whole := len(src) / 3 * 3; i < whole; i, n = i+3, n+4 {
		putGroup(dst[n:], enc, uint32(src[i])<<16|uint32(src[i+1])<<8|uint32(src[i+2]))
	}

	// Final 1 or 2 bytes, padded to a full group under Standard.
	switch len(src) - i {
	case 2:
		v := uint32(src[i])<<16 | uint32(src[i+1])<<8
		dst[n] = enc[v>>18&0x3f]
		dst[n+1] = enc[v>>12&0x3f]
		dst[n+2] = enc[v>>6&0x3f]
		n += 3

		if padded {
			dst[n] = padding
			n++
		}
	case 1:
		v := uint32(src[i]) << 16
		dst[n] = enc[v>>18&0x3f]
		dst[n+1] = enc[v>>12&0x3f]
		n += 2

		if padded {
			dst[n] = padding
			dst[n+1] = padding
			n += 2
		}
	}

	dst[n] = 0

	return n, nil
}

// putGroup writes the four symbols of one 24-bit group to the front of
// dst.
func putGroup(dst []byte, enc *[64]byte, v uint32) {
	dst[0] = enc[v>>18&0x3f]
	dst[1] = enc[v>>12&0x3f]
	dst[2] = enc[v>>6&0x3f]
	dst[3] = enc[v&0x3f]
}
