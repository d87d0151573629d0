// Package shared provides utility functions for generating random salts and
// nonces.
package shared

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRandByteArray returns size cryptographically random bytes.
// It returns an error only if the entropy source fails.
func MakeRandByteArray(size int) ([]byte, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// MakeRandHexString generates a random hexadecimal string of the given size.
// The size parameter specifies the number of random bytes to generate before
// encoding, so the final string length is twice the size.
func MakeRandHexString(size int) (string, error) {
	b, err := MakeRandByteArray(size)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
