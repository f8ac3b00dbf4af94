package util

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	sessionTokenBytes = 32
	postIDBytes       = 12
)

// GenerateToken returns a URL-safe session token with 32 bytes of entropy.
func GenerateToken() (string, error) {
	return randomString(sessionTokenBytes)
}

// GeneratePostID returns a URL-safe post identifier with 12 bytes of entropy.
func GeneratePostID() (string, error) {
	return randomString(postIDBytes)
}

func randomString(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// HashPassword returns the hex-encoded SHA-256 digest of a password.
func HashPassword(password string) string {
	digest := sha256.Sum256([]byte(password))
	return hex.EncodeToString(digest[:])
}

// VerifyPassword compares a password against a reference digest. Bcrypt
// digests are recognized by prefix; anything else is treated as a hex
// SHA-256 digest and compared in constant time.
func VerifyPassword(password, referenceDigest string) bool {
	if isBcryptDigest(referenceDigest) {
		return bcrypt.CompareHashAndPassword([]byte(referenceDigest), []byte(password)) == nil
	}
	return ConstantTimeEqual(HashPassword(password), referenceDigest)
}

func isBcryptDigest(digest string) bool {
	return strings.HasPrefix(digest, "$2a$") ||
		strings.HasPrefix(digest, "$2b$") ||
		strings.HasPrefix(digest, "$2y$")
}

func ConstantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
