// Package base64mix implements RFC 4648 Base64 encoding and decoding
// over caller-supplied buffers, in three alphabet variants:
//
//   - Standard: the Section 4 alphabet (+ and /), padded with =
//   - URL: the Section 5 "base64url" alphabet (- and _), never padded
//   - Mixed: a decode-only variant that accepts either alphabet's
//     punctuation within a single input, for callers that cannot know
//     which variant produced the data they were handed
//
// The package is built around two buffer-based engines, EncodeToBuffer
// and DecodeToBuffer, which never allocate: the caller sizes the
// destination with EncodedLen or DecodedLen and keeps ownership of it.
// Encode, Decode, EncodeToString and DecodeString are thin allocating
// conveniences over the same engines.
//
// Every successful call writes a single zero byte immediately after the
// last output byte, so buffers can be handed to NUL-terminated consumers
// (C strings via cgo, for example) without copying. Returned lengths
// never include that terminator, and destination capacities must always
// account for it: the required capacity is the computed length plus one.
//
// Decoding is strict. Inputs whose length is 1 modulo 4, inputs with
// more than two padding characters or with padding at a non multiple-of-4
// length, symbols outside the active alphabet, and non-canonical final
// groups (trailing bits that are not zero, per RFC 4648 Section 3.5) are
// all rejected, each with a distinct error.
//
// http://www.rfc-editor.org/rfc/rfc4648
package base64mix
