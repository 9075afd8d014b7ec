package base64mix

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

// encodeVectors are the test vectors from RFC 4648 Section 10. The URL
// expectations are the same symbols without padding; none of the inputs
// reach the alphabets' differing positions 62 and 63.
var encodeVectors = []struct {
	Plain string
	Std   string
	URL   string
}{
	{Plain: "", Std: "", URL: ""},
	{Plain: "f", Std: "Zg==", URL: "Zg"},
	{Plain: "fo", Std: "Zm8=", URL: "Zm8"},
	{Plain: "foo", Std: "Zm9v", URL: "Zm9v"},
	{Plain: "foob", Std: "Zm9vYg==", URL: "Zm9vYg"},
	{Plain: "fooba", Std: "Zm9vYmE=", URL: "Zm9vYmE"},
	{Plain: "foobar", Std: "Zm9vYmFy", URL: "Zm9vYmFy"},
}

func TestEncodeToBufferVectors(t *testing.T) {
	for _, test := range encodeVectors {
		t.Run(test.Plain, func(t *testing.T) {
			src := []byte(test.Plain)

			need, err := EncodedLen(len(src))
			require.NoError(t, err)

			dst := make([]byte, need+1)

			n, err := EncodeToBuffer(dst, src, Standard)
			require.NoError(t, err)
			require.Equal(t, test.Std, string(dst[:n]))
			require.Equal(t, byte(0), dst[n])

			n, err = EncodeToBuffer(dst, src, URL)
			require.NoError(t, err)
			require.Equal(t, test.URL, string(dst[:n]))
			require.Equal(t, byte(0), dst[n])

			// Mixed aliases the standard symbol table, padding included.
			n, err = EncodeToBuffer(dst, src, Mixed)
			require.NoError(t, err)
			require.Equal(t, test.Std, string(dst[:n]))
		})
	}
}

func TestEncodeToBufferPunctuation(t *testing.T) {
	// 0xfb 0xef 0xff hits symbol values 62, 62, 63, 63, where the two
	// alphabets differ.
	src := []byte{0xfb, 0xef, 0xff}
	dst := make([]byte, 5)

	n, err := EncodeToBuffer(dst, src, Standard)
	require.NoError(t, err)
	require.Equal(t, "++//", string(dst[:n]))

	n, err = EncodeToBuffer(dst, src, URL)
	require.NoError(t, err)
	require.Equal(t, "--__", string(dst[:n]))
}

func TestEncodeToBufferNilAlphabet(t *testing.T) {
	dst := make([]byte, 16)

	_, err := EncodeToBuffer(dst, []byte("abc"), nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEncodeToBufferInsufficientSpace(t *testing.T) {
	src := []byte("foo")

	// EncodedLen bytes alone are not enough: the terminator needs one more.
	need, err := EncodedLen(len(src))
	require.NoError(t, err)

	dst := bytes.Repeat([]byte{0xaa}, need)

	_, err = EncodeToBuffer(dst, src, Standard)
	require.ErrorIs(t, err, ErrInsufficientSpace)
	require.Equal(t, bytes.Repeat([]byte{0xaa}, need), dst)

	_, err = EncodeToBuffer(nil, src, Standard)
	require.ErrorIs(t, err, ErrInsufficientSpace)
}

func TestEncodeToBufferEmptyInput(t *testing.T) {
	dst := []byte{0xaa}

	n, err := EncodeToBuffer(dst, nil, Standard)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Equal(t, byte(0), dst[0])

	_, err = EncodeToBuffer(nil, nil, Standard)
	require.ErrorIs(t, err, ErrInsufficientSpace)
}

func TestEncodeToBufferUnpaddedLengths(t *testing.T) {
	// URL output length drops the padding that EncodedLen accounts for.
	dst := make([]byte, 16)

	n, err := EncodeToBuffer(dst, []byte{0xff}, URL)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = EncodeToBuffer(dst, []byte{0xff, 0xff}, URL)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	n, err = EncodeToBuffer(dst, []byte{0xff, 0xff, 0xff}, URL)
	require.NoError(t, err)
	require.Equal(t, 4, n)
}

func TestEncodeMatchesStdlib(t *testing.T) {
	// Sizes cross the 12-byte batch boundary and every tail shape.
	for size := 0; size <= 128; size++ {
		src := make([]byte, size)

		_, err := rand.Read(src)
		require.NoError(t, err)

		got, err := EncodeToString(src, Standard)
		require.NoError(t, err)
		require.Equal(t, base64.StdEncoding.EncodeToString(src), got, "size %d input %x", size, src)

		got, err = EncodeToString(src, URL)
		require.NoError(t, err)
		require.Equal(t, base64.RawURLEncoding.EncodeToString(src), got, "size %d input %x", size, src)
	}
}
