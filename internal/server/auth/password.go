package auth

import "golang.org/x/crypto/bcrypt"

const defaultCost = bcrypt.DefaultCost

// HashPassword hashes the plaintext with bcrypt.
func HashPassword(plaintext string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plaintext), defaultCost)
}

// CheckPassword reports whether plaintext matches hash.
func CheckPassword(hash []byte, plaintext string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(plaintext)) == nil
}
