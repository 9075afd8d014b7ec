package base64mix

// invalid is the reverse-table sentinel for bytes outside an alphabet.
// Valid Base64 values are 0-63, so 0xff is safely distinguishable.
const invalid = 0xff

// stdSymbols is the standard Base64 alphabet: 'A'-'Z', 'a'-'z', '0'-'9',
// '+' and '/', with '=' used for padding.
//
// https://datatracker.ietf.org/doc/html/rfc4648#section-4
var stdSymbols = [64]byte{
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P',
	'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', 'a', 'b', 'c', 'd', 'e', 'f',
	'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v',
	'w', 'x', 'y', 'z', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '+', '/',
}

// urlSymbols is the URL- and filename-safe Base64 alphabet: identical to
// stdSymbols except that positions 62 and 63 are '-' and '_'. Output in
// this alphabet is never padded.
//
// https://datatracker.ietf.org/doc/html/rfc4648#section-5
var urlSymbols = [64]byte{
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P',
	'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', 'a', 'b', 'c', 'd', 'e', 'f',
	'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v',
	'w', 'x', 'y', 'z', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '-', '_',
}

// The reverse tables invert the forward tables by construction; every
// byte that is not one of an alphabet's 64 symbols maps to the invalid
// sentinel. The mixed table is the union of the other two, mapping both
// '+' and '-' to 62 and both '/' and '_' to 63.
var stdReverse, urlReverse, mixReverse = func() (std, url, mix [256]byte) {
	for i := range std {
		std[i] = invalid
		url[i] = invalid
		mix[i] = invalid
	}

	for v, c := range stdSymbols {
		std[c] = byte(v)
		mix[c] = byte(v)
	}

	for v, c := range urlSymbols {
		url[c] = byte(v)
		mix[c] = byte(v)
	}

	return std, url, mix
}()

// Alphabet is an immutable pairing of a 64-entry symbol table with the
// 256-entry reverse table that inverts it. The three package-level
// instances are the only alphabets; they are read-only and safe for
// concurrent use by any number of callers without locking.
type Alphabet struct {
	name string
	enc  *[64]byte
	dec  *[256]byte
}

// Standard is the RFC 4648 Section 4 alphabet. Encoded output is padded
// with '=' to a multiple-of-4 length; decoding accepts such padding.
var Standard = &Alphabet{name: "standard", enc: &stdSymbols, dec: &stdReverse}

// URL is the RFC 4648 Section 5 "base64url" alphabet. Encoded output is
// never padded; decoding still accepts well-formed padding.
var URL = &Alphabet{name: "url", enc: &urlSymbols, dec: &urlReverse}

// Mixed decodes input produced under either alphabet, accepting both
// punctuation pairs within a single call. It is meant for inputs whose
// producer is not known or not trusted to have used one variant
// consistently.
//
// Mixed is for decoding; encoding never mixes alphabets. Its symbol table
// aliases Standard's, so encoding through Mixed produces standard, padded
// output.
var Mixed = &Alphabet{name: "mixed", enc: &stdSymbols, dec: &mixReverse}

// String returns the alphabet's name: "standard", "url" or "mixed".
func (a *Alphabet) String() string {
	return a.name
}
