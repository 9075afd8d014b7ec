package base64mix

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestSymbolTables(t *testing.T) {
	tests := []struct {
		Name    string
		Symbols *[64]byte
	}{
		{
			Name:    "standard",
			Symbols: &stdSymbols,
		},
		{
			Name:    "url",
			Symbols: &urlSymbols,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			seen := map[byte]int{}
			for i, c := range test.Symbols {
				_, dup := seen[c]
				require.False(t, dup, "symbol %q at %d and %d", c, seen[c], i)
				seen[c] = i
			}

			require.Len(t, seen, 64)
			require.False(t, slices.Contains(test.Symbols[:], byte(padding)))
		})
	}

	// The two alphabets share everything but the last two symbols.
	require.Equal(t, stdSymbols[:62], urlSymbols[:62])
	require.Equal(t, byte('+'), stdSymbols[62])
	require.Equal(t, byte('/'), stdSymbols[63])
	require.Equal(t, byte('-'), urlSymbols[62])
	require.Equal(t, byte('_'), urlSymbols[63])
}

func TestReverseTables(t *testing.T) {
	tests := []struct {
		Name    string
		Symbols *[64]byte
		Reverse *[256]byte
	}{
		{
			Name:    "standard",
			Symbols: &stdSymbols,
			Reverse: &stdReverse,
		},
		{
			Name:    "url",
			Symbols: &urlSymbols,
			Reverse: &urlReverse,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			for v, c := range test.Symbols {
				require.Equal(t, byte(v), test.Reverse[c], "symbol %q", c)
			}

			for b := 0; b < 256; b++ {
				if slices.Contains(test.Symbols[:], byte(b)) {
					continue
				}

				require.Equal(t, byte(invalid), test.Reverse[b], "byte %#x", b)
			}
		})
	}
}

func TestMixedReverseTable(t *testing.T) {
	// Both punctuation pairs resolve, to the same values.
	require.Equal(t, byte(62), mixReverse['+'])
	require.Equal(t, byte(62), mixReverse['-'])
	require.Equal(t, byte(63), mixReverse['/'])
	require.Equal(t, byte(63), mixReverse['_'])

	// Everywhere else the mixed table is the union of the other two:
	// defined wherever either is defined, invalid where both are.
	for b := 0; b < 256; b++ {
		std, url := stdReverse[b], urlReverse[b]

		switch {
		case std != invalid:
			require.Equal(t, std, mixReverse[b], "byte %#x", b)
		case url != invalid:
			require.Equal(t, url, mixReverse[b], "byte %#x", b)
		default:
			require.Equal(t, byte(invalid), mixReverse[b], "byte %#x", b)
		}
	}

	require.Equal(t, byte(invalid), mixReverse[padding])
}

func TestAlphabetString(t *testing.T) {
	require.Equal(t, "standard", Standard.String())
	require.Equal(t, "url", URL.String())
	require.Equal(t, "mixed", Mixed.String())
}

func TestMixedEncodesAsStandard(t *testing.T) {
	// Mixed is a decoding variant; its symbol table aliases Standard's so
	// encoding through it yields padded standard output.
	require.Same(t, Standard.enc, Mixed.enc)
}
