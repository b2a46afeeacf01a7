package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher abstracts the password hashing scheme.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// SHA256Hasher is the default scheme: an unsalted hex digest, kept for
// compatibility with existing snapshot data. It is deliberately weak; see
// BcryptHasher for the opt-in hardened scheme.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return fmt.Sprintf("%x", sum), nil
}

func (SHA256Hasher) Verify(hash, password string) bool {
	sum := sha256.Sum256([]byte(password))
	return subtle.ConstantTimeCompare([]byte(hash), []byte(fmt.Sprintf("%x", sum))) == 1
}

// BcryptHasher is the salted scheme selected with AUTH_HASH_SCHEME=bcrypt.
// Hashes produced by one scheme do not verify under the other.
type BcryptHasher struct{}

func (BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NewPasswordHasher selects a hasher by scheme name, defaulting to sha256.
func NewPasswordHasher(scheme string) PasswordHasher {
	if scheme == "bcrypt" {
		return BcryptHasher{}
	}
	return SHA256Hasher{}
}
