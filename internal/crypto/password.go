package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch означает, что пароль не совпал с сохраненным хешем
var ErrPasswordMismatch = errors.New("password mismatch")

// HashPassword хеширует пароль через bcrypt с солью
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword проверяет пароль против сохраненного хеша.
// Любое несовпадение возвращает ErrPasswordMismatch, никогда не паникует.
func VerifyPassword(password, passwordHash string) error {
	if password == "" || passwordHash == "" {
		return ErrPasswordMismatch
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}

	return nil
}
