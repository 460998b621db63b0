// Package vault provides one-way password hashing and verification. It is the
// only place in the codebase that touches bcrypt; everything else holds an
// injected *CredentialVault.
package vault

import "golang.org/x/crypto/bcrypt"

// workFactor matches the salt rounds the platform has always used. Changing
// it only affects new digests; Verify handles any cost embedded in a digest.
const workFactor = 10

// CredentialVault hashes and verifies passwords.
type CredentialVault struct {
	cost int
}

// New builds a vault with the standard work factor.
func New() *CredentialVault {
	return &CredentialVault{cost: workFactor}
}

// Hash produces a salted bcrypt digest of plaintext. Repeated calls with the
// same input produce distinct digests (distinct salts).
func (v *CredentialVault) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), v.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext produced digest. A mismatch is a normal
// false, never an error.
func (v *CredentialVault) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
