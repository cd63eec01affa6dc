// Package cryptox implements password hashing for the credential store.
// Passwords are never stored or compared in plain text: registration keeps
// a random salt and an argon2id-derived verifier, and login re-derives the
// verifier from the supplied password and compares in constant time.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/authgate/internal/common"
	"golang.org/x/crypto/argon2"
)

// argon2id parameters: 1 pass, 64 MiB, 4 lanes, 32-byte key.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	keyLength    = 32
	saltLength   = 32
)

// NewSalt returns a fresh random salt for a new identity.
func NewSalt() []byte {
	return common.GenerateRandByteArray(saltLength)
}

// DeriveVerifier computes the stored verifier for a password and salt.
func DeriveVerifier(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, keyLength)
}

// VerifyPassword re-derives the verifier from the candidate password and
// compares it to the stored one in constant time.
func VerifyPassword(password []byte, salt []byte, verifier []byte) bool {
	candidate := DeriveVerifier(password, salt)
	return subtle.ConstantTimeCompare(verifier, candidate) == 1
}
