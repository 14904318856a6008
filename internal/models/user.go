package models

import "time"

// User представляет локальный аккаунт пользователя
type User struct {
	ID           string    `json:"id"`         // UUID пользователя
	Username     string    `json:"username"`   // уникальный username, не меняется после создания
	PasswordHash string    `json:"-"`          // bcrypt хеш пароля, наружу не отдается
	Email        string    `json:"email"`      // опциональный email
	CreatedAt    time.Time `json:"created_at"` // время создания
}
