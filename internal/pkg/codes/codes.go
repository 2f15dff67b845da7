// Package codes generates short human-readable reference codes.
package codes

import (
	"crypto/rand"
	"fmt"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length of every generated code.
const Length = 8

// maxUnbiasedByte is the largest multiple of len(alphabet) that fits in
// a byte. Bytes at or above it are rejected so every alphabet character
// is equally likely.
const maxUnbiasedByte = 256 / len(alphabet) * len(alphabet)

// Generate returns a random 8-character code drawn uniformly from
// uppercase letters and digits.
func Generate() (string, error) {
	out := make([]byte, 0, Length)
	buf := make([]byte, Length)
	for len(out) < Length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= maxUnbiasedByte {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == Length {
				break
			}
		}
	}
	return string(out), nil
}
