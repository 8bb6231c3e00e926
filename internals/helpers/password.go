// file: internals/helpers/password.go
package helper

import "golang.org/x/crypto/bcrypt"

// Cost 12 mengikuti konfigurasi hashing user lama.
const bcryptCost = 12

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash: nil jika cocok.
func CheckPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
