// Package session держит состояние авторизации на удаленном сервисе.
//
// Session — явный объект, передаваемый в вызовы API клиента. Токен живет
// только в памяти процесса и никогда не пишется на диск.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ahjin-guild/dialectmap/pkg/api"
)

// Session хранит bearer токен и снимок информации о пользователе
type Session struct {
	accessToken string
	userInfo    *api.UserInfo
}

// New создает пустую неавторизованную сессию
func New() *Session {
	return &Session{}
}

// SetToken сохраняет access token после успешного логина
func (s *Session) SetToken(token string) {
	s.accessToken = token
}

// Token возвращает текущий access token, пустая строка если не авторизованы
func (s *Session) Token() string {
	return s.accessToken
}

// SetUserInfo сохраняет снимок информации о пользователе
func (s *Session) SetUserInfo(info *api.UserInfo) {
	s.userInfo = info
}

// UserInfo возвращает сохраненный снимок, nil если его нет
func (s *Session) UserInfo() *api.UserInfo {
	return s.userInfo
}

// IsAuthenticated проверяет наличие токена
func (s *Session) IsAuthenticated() bool {
	return s.accessToken != ""
}

// Clear сбрасывает сессию в неавторизованное состояние
func (s *Session) Clear() {
	s.accessToken = ""
	s.userInfo = nil
}

// ExpiresAt возвращает срок действия access token из его exp claim.
// Токен НЕ проверяется криптографически: подпись принадлежит серверу,
// здесь claim нужен только чтобы показать срок пользователю.
// Нулевое время — токена нет, либо он не JWT, либо exp отсутствует.
func (s *Session) ExpiresAt() time.Time {
	if s.accessToken == "" {
		return time.Time{}
	}

	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.accessToken, claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
