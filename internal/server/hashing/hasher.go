// Package hashing turns plaintext passwords into storable digests. The
// scheme is deterministic by input so login can verify by digesting the
// candidate and comparing against the stored value.
package hashing

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

// Hasher is the one-way digest contract shared by registration and login.
type Hasher interface {
	Hash(plaintext string) string
}

// SHA256Hasher produces an unsalted hex SHA-256 digest. This matches the
// historical stored-hash format; new deployments should prefer PBKDF2Hasher.
type SHA256Hasher struct{}

func NewSHA256Hasher() *SHA256Hasher { return &SHA256Hasher{} }

func (h *SHA256Hasher) Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

const (
	pbkdf2Prefix     = "pbkdf2$v1$"
	pbkdf2Iterations = 210_000
	pbkdf2KeyLen     = 32
)

// PBKDF2Hasher is the hardened scheme: PBKDF2-HMAC-SHA256 keyed with a
// process-wide pepper. Digests carry a version prefix so they can never be
// confused with legacy SHA-256 values.
type PBKDF2Hasher struct {
	pepper []byte
}

func NewPBKDF2Hasher(pepper []byte) *PBKDF2Hasher {
	return &PBKDF2Hasher{pepper: pepper}
}

func (h *PBKDF2Hasher) Hash(plaintext string) string {
	key := pbkdf2.Key([]byte(plaintext), h.pepper, pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	return pbkdf2Prefix + hex.EncodeToString(key)
}

// ForScheme returns the Hasher selected by the config value. Unknown schemes
// fall back to SHA-256 so stored hashes stay verifiable.
func ForScheme(scheme string, pepper []byte) Hasher {
	if scheme == "pbkdf2" {
		return NewPBKDF2Hasher(pepper)
	}
	return NewSHA256Hasher()
}

// Equal reports whether two digests match, in constant time.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
