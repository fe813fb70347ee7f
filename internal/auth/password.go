package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the SHA-256 digest of the secret as lowercase hex.
// Deterministic: the store compares stored digests byte for byte, so the
// same input must always produce the same output.
func HashPassword(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// VerifyDigest reports whether the secret hashes to digest, comparing in
// constant time.
func VerifyDigest(digest, secret string) bool {
	return subtle.ConstantTimeCompare([]byte(digest), []byte(HashPassword(secret))) == 1
}
