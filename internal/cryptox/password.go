// Package cryptox implements the password digest capability: a salted,
// memory-hard hash and its constant-time verification.
package cryptox

import (
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	digestSize   = 32
)

// HashPassword derives a fixed-size digest from the password and salt.
// The same password and salt always produce the same digest.
func HashPassword(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, digestSize)
}

// VerifyPassword reports whether the password matches the stored digest.
// The comparison is constant-time.
func VerifyPassword(password string, salt, digest []byte) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(candidate, digest) == 1
}
