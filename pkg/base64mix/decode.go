package base64mix

// DecodeToBuffer decodes src into dst using the given alphabet's reverse
// table and returns the number of bytes written. It never allocates.
//
// dst must hold at least DecodedLen(len(src))+1 bytes; if it does not,
// DecodeToBuffer returns ErrInsufficientSpace without writing anything.
// On success a zero byte is written immediately after the last decoded
// byte, and the returned count excludes it. Empty src is not an error: it
// writes the terminator alone and returns 0.
//
// Validation is strict and happens in a fixed order, stopping at the
// first failure:
//
//  1. A length of 1 modulo 4 can never represent bytes: ErrInvalidArgument.
//  2. The capacity requirement above: ErrInsufficientSpace.
//  3. Trailing '=' count above 2, or any padding when the length is not a
//     multiple of 4: ErrInvalidPadding.
//  4. Any symbol outside the alphabet, including '=' before the trailing
//     run: ErrInvalidCharacter.
//  5. Non-zero unused bits in a partial final group, which a conforming
//     encoder can never produce: ErrIllegalSequence.
//
// On failures after step 3 the prefix of dst already processed may have
// been overwritten; only the capacity check guarantees an untouched dst.
//
// dst and src must not overlap.
func DecodeToBuffer(dst, src []byte, a *Alphabet) (int, error) {
	if a == nil || len(src)%4 == 1 {
		return 0, ErrInvalidArgument
	}

	if len(dst) < DecodedLen(len(src))+1 {
		return 0, ErrInsufficientSpace
	}

	if len(src) == 0 {
		dst[0] = 0
		return 0, nil
	}

	// Count trailing padding. The symbols before it decode on their own:
	// a padded input is just a full-group input whose final group is
	// short, so after this scan the padding never needs looking at again.
	end := len(src)

	npad := 0
	for end > 0 && src[end-1] == padding {
		end--
		npad++

		if npad > 2 {
			return 0, ErrInvalidPadding
		}
	}

	if npad > 0 && len(src)%4 != 0 {
		return 0, ErrInvalidPadding
	}

	dec := a.dec

	var i, n int

	// Two groups per iteration: 8 symbols become 6 bytes. Invalid symbols
	// are detected for the whole block at once by OR-folding the decoded
	// values; anything outside the alphabet ORs in the 0xff sentinel.
	for blocked := end / 8 * 8; i < blocked; i, n = i+8, n+6 {
		d0 := dec[src[i]]
		d1 := dec[src[i+1]]
		d2 := dec[src[i+2]]
		d3 := dec[src[i+3]]
		d4 := dec[src[i+4]]
		d5 := dec[src[i+5]]
		d6 := dec[src[i+6]]
		d7 := dec[src[i+7]]

		if d0|d1|d2|d3|d4|d5|d6|d7 > 63 {
			return 0, ErrInvalidCharacter
		}

		v := uint64(d0)<<42 | uint64(d1)<<36 | uint64(d2)<<30 | uint64(d3)<<24 |
			uint64(d4)<<18 | uint64(d5)<<12 | uint64(d6)<<6 | uint64(d7)

		dst[n] = byte(v >> 40)
		dst[n+1] = byte(v >> 32)
		dst[n+2] = byte(v >> 24)
		dst[n+3] = byte(v >> 16)
		dst[n+4] = byte(v >> 8)
		dst[n+5] = byte(v)
	}

	// Whole groups left over from the blocked loop.
	for whole := i + (end-i)/4*4; i < whole; i, n = i+4, n+3 {
		d0 := dec[src[i]]
		d1 := dec[src[i+1]]
		d2 := dec[src[i+2]]
		d3 := dec[src[i+3]]

		if d0|d1|d2|d3 > 63 {
			return 0, ErrInvalidCharacter
		}

		v := uint32(d0)<<18 | uint32(d1)<<12 | uint32(d2)<<6 | uint32(d3)

		dst[n] = byte(v >> 16)
		dst[n+1] = byte(v >> 8)
		dst[n+2] = byte(v)
	}

	// Final partial group of 2 or 3 symbols. A single leftover symbol is
	// unreachable: lengths of 1 mod 4 were rejected up front, and padding
	// only ever shortens a multiple-of-4 length by at most 2.
	switch end - i {
	case 3:
		d0 := dec[src[i]]
		d1 := dec[src[i+1]]
		d2 := dec[src[i+2]]

		if d0|d1|d2 > 63 {
			return 0, ErrInvalidCharacter
		}

		// 3 symbols carry 18 bits but decode to 2 bytes; the low 2 bits
		// must be zero (RFC 4648 Section 3.5).
		if d2&0x03 != 0 {
			return 0, ErrIllegalSequence
		}

		v := uint32(d0)<<12 | uint32(d1)<<6 | uint32(d2)

		dst[n] = byte(v >> 10)
		dst[n+1] = byte(v >> 2)
		n += 2
	case 2:
		d0 := dec[src[i]]
		d1 := dec[src[i+1]]

		if d0|d1 > 63 {
			return 0, ErrInvalidCharacter
		}

		// 2 symbols carry 12 bits but decode to 1 byte; the low 4 bits
		// must be zero.
		if d1&0x0f != 0 {
			return 0, ErrIllegalSequence
		}

		dst[n] = d0<<2 | d1>>4
		n++
	}

	dst[n] = 0

	return n, nil
}
