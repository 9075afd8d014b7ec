// Command b64mix encodes and decodes Base64 (RFC 4648) in the standard,
// URL-safe and mixed alphabets.
package main

func main() {
	Execute()
}
