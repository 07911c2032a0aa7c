// Package randid generates short random identifiers.
package randid

import "math/rand/v2"

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns a random lowercase alphanumeric string of the given length.
// It is not suitable for secrets.
func Generate(length int) string {
	if length <= 0 {
		return ""
	}

	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}
