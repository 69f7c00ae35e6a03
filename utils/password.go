package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// HashPassword derives an argon2id hash and returns it as
// base64(salt).base64(hash).
func HashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	_, err := rand.Read(salt)
	if err != nil {
		return "", err
	}
	saltBase64 := base64.StdEncoding.EncodeToString(salt)
	hash := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)
	hashBase64 := base64.StdEncoding.EncodeToString(hash)
	return fmt.Sprintf("%s.%s", saltBase64, hashBase64), nil
}

func VerifyPassword(password, encodedHash string) error {
	parts := strings.Split(encodedHash, ".")
	if len(parts) != 2 {
		return errors.New("invalid format")
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return err
	}
	hash, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return err
	}

	hashPassword := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)
	if len(hash) != len(hashPassword) {
		return errors.New("incorrect password")
	}
	if subtle.ConstantTimeCompare(hash, hashPassword) != 1 {
		return errors.New("incorrect password")
	}
	return nil
}
