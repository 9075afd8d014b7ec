package base64mix

// Encode returns the encoding of src using the given alphabet.
// Standard output is padded with '=' as defined in RFC 4648 Section 4;
// URL output is unpadded as defined in RFC 4648 Section 5. Encoding
// with Mixed produces the same output as Standard.
//
// The returned slice has one unreported zero byte past its length, so
// its backing array is always safe to hand to C-style consumers that
// expect a terminator. Empty or nil src encodes to an empty slice.
func Encode(src []byte, a *Alphabet) ([]byte, error) {
	size, err := EncodedLen(len(src))
	if err != nil {
		return nil, err
	}

	buf := make([]byte, size+1)

	n, err := EncodeToBuffer(buf, src, a)
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}

// EncodeToString returns the encoding of src as a string, using the
// given alphabet. It is Encode for callers that want a string.
func EncodeToString(src []byte, a *Alphabet) (string, error) {
	buf, err := Encode(src, a)
	if err != nil {
		return "", err
	}

	return string(buf), nil
}

// Decode returns the bytes represented by the encoded input src, using
// the given alphabet's reverse table. Decoding with Mixed accepts
// symbols from both the Standard and URL alphabets, even within a
// single input.
//
// Validation is strict; see DecodeToBuffer for the error conditions.
// The returned slice has one unreported zero byte past its length.
// Empty or nil src decodes to an empty slice.
func Decode(src []byte, a *Alphabet) ([]byte, error) {
	buf := make([]byte, DecodedLen(len(src))+1)

	n, err := DecodeToBuffer(buf, src, a)
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}

// DecodeString returns the bytes represented by the encoded string s,
// using the given alphabet. It is Decode for callers that have a string.
func DecodeString(s string, a *Alphabet) ([]byte, error) {
	return Decode([]byte(s), a)
}
