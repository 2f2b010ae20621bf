package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext password for storage. A failure here is
// the one condition allowed to surface as a hard server error.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
