// Package crypto wraps the password hashing primitive used by registration
// and login.
package crypto

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted one-way hash of the plaintext. Hashing the
// same plaintext twice yields different outputs; both verify.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
