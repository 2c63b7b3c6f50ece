package utils

import (
	"crypto/rand"
	"errors"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ConfirmationCodeLength is the length of booking confirmation codes.
const ConfirmationCodeLength = 9

// GenerateConfirmationCode returns an uppercase base-36 code of the given length.
func GenerateConfirmationCode(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid code length")
	}

	max := big.NewInt(int64(len(base36)))
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = base36[n.Int64()]
	}
	return string(code), nil
}
