// Package auth provides authorization checks for admin routes.
package auth

import "crypto/subtle"

// Verifier decides whether a presented credential grants admin access.
// Abstracting the check behind an interface lets a stronger scheme
// (signed tokens) replace the shared secret without touching routes.
type Verifier interface {
	Verify(key string) bool
}

// StaticKeyVerifier compares the presented key against a single shared
// secret in constant time.
type StaticKeyVerifier struct {
	secret []byte
}

// NewStaticKeyVerifier creates a verifier for the given shared secret.
func NewStaticKeyVerifier(secret string) *StaticKeyVerifier {
	return &StaticKeyVerifier{secret: []byte(secret)}
}

// Verify reports whether key matches the shared secret.
// An empty key never matches, even if the secret is empty.
func (v *StaticKeyVerifier) Verify(key string) bool {
	if key == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), v.secret) == 1
}
