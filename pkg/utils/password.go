package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost bisa diturunkan di test (bcrypt.MinCost) supaya hashing cepat.
var PasswordCost = bcrypt.DefaultCost

// Batas input bcrypt, byte ke-73 dan seterusnya tidak ikut di-hash.
const MaxPasswordBytes = 72

var ErrPasswordTooLong = errors.New("password longer than 72 bytes")

// HashPassword mengubah password biasa menjadi hash bcrypt (salt sudah termasuk di hash)
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	return string(bytes), err
}

// CheckPassword membandingkan password inputan dengan hash di database
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
