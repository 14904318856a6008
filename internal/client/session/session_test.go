package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahjin-guild/dialectmap/pkg/api"
)

func TestSession_Lifecycle(t *testing.T) {
	s := New()

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
	assert.Nil(t, s.UserInfo())

	s.SetToken("some-token")
	s.SetUserInfo(&api.UserInfo{ID: "u-1", PhoneNumber: "+919876543210"})

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "some-token", s.Token())
	require.NotNil(t, s.UserInfo())
	assert.Equal(t, "u-1", s.UserInfo().ID)

	s.Clear()

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
	assert.Nil(t, s.UserInfo())
}

func TestSession_ExpiresAt(t *testing.T) {
	s := New()

	// Без токена — нулевое время
	assert.True(t, s.ExpiresAt().IsZero())

	// Непохожий на JWT токен — тоже нулевое
	s.SetToken("opaque-token")
	assert.True(t, s.ExpiresAt().IsZero())

	// Настоящий JWT с exp
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	s.SetToken(signed)
	assert.Equal(t, exp.Unix(), s.ExpiresAt().Unix())
}

func TestSession_ExpiresAt_NoExpClaim(t *testing.T) {
	s := New()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "u-1",
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	s.SetToken(signed)
	assert.True(t, s.ExpiresAt().IsZero())
}
