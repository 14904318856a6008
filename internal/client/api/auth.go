package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ahjin-guild/dialectmap/internal/client/session"
	pkgapi "github.com/ahjin-guild/dialectmap/pkg/api"
)

// SendLoginOTP запрашивает OTP код для входа.
// status "signup_required" означает, что номер еще не зарегистрирован.
func (c *Client) SendLoginOTP(ctx context.Context, phoneNumber string) (*pkgapi.OTPStatusResponse, error) {
	req := pkgapi.SendOTPRequest{PhoneNumber: phoneNumber}
	var resp pkgapi.OTPStatusResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/login/send-otp", "", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("send login otp failed: %w", err)
	}
	return &resp, nil
}

// VerifyLoginOTP подтверждает OTP код и авторизует сессию
func (c *Client) VerifyLoginOTP(ctx context.Context, sess *session.Session, req pkgapi.VerifyLoginOTPRequest) (*pkgapi.TokenResponse, error) {
	var resp pkgapi.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/login/verify-otp", "", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("verify login otp failed: %w", err)
	}
	c.applyToken(sess, &resp)
	return &resp, nil
}

// ResendLoginOTP повторно отправляет OTP код для входа
func (c *Client) ResendLoginOTP(ctx context.Context, phoneNumber string) (*pkgapi.OTPStatusResponse, error) {
	req := pkgapi.SendOTPRequest{PhoneNumber: phoneNumber}
	var resp pkgapi.OTPStatusResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/login/resend-otp", "", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("resend login otp failed: %w", err)
	}
	return &resp, nil
}

// LoginWithPassword выполняет вход по телефону и паролю
func (c *Client) LoginWithPassword(ctx context.Context, sess *session.Session, phone, password string) (*pkgapi.TokenResponse, error) {
	req := pkgapi.LoginRequest{Phone: phone, Password: password}
	var resp pkgapi.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/login", "", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	c.applyToken(sess, &resp)
	return &resp, nil
}

// SendSignupOTP запрашивает OTP код для регистрации
func (c *Client) SendSignupOTP(ctx context.Context, phoneNumber string) (*pkgapi.OTPStatusResponse, error) {
	req := pkgapi.SendOTPRequest{PhoneNumber: phoneNumber}
	var resp pkgapi.OTPStatusResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/signup/send-otp", "", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("send signup otp failed: %w", err)
	}
	return &resp, nil
}

// VerifySignupOTP подтверждает OTP код, создает аккаунт и авторизует сессию
func (c *Client) VerifySignupOTP(ctx context.Context, sess *session.Session, req pkgapi.VerifySignupOTPRequest) (*pkgapi.TokenResponse, error) {
	var resp pkgapi.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/signup/verify-otp", "", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("verify signup otp failed: %w", err)
	}
	c.applyToken(sess, &resp)
	return &resp, nil
}

// ResendSignupOTP повторно отправляет OTP код для регистрации
func (c *Client) ResendSignupOTP(ctx context.Context, phoneNumber string) (*pkgapi.OTPStatusResponse, error) {
	req := pkgapi.SendOTPRequest{PhoneNumber: phoneNumber}
	var resp pkgapi.OTPStatusResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/signup/resend-otp", "", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("resend signup otp failed: %w", err)
	}
	return &resp, nil
}

// GetCurrentUser возвращает профиль текущего пользователя
// и обновляет снимок на сессии
func (c *Client) GetCurrentUser(ctx context.Context, sess *session.Session) (*pkgapi.UserInfo, error) {
	var resp pkgapi.UserInfo
	if err := c.doRequest(ctx, http.MethodGet, "/auth/me", sess.Token(), nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("get current user failed: %w", err)
	}
	sess.SetUserInfo(&resp)
	return &resp, nil
}

// ChangePassword меняет пароль текущего пользователя
func (c *Client) ChangePassword(ctx context.Context, sess *session.Session, currentPassword, newPassword string) (*pkgapi.MessageResponse, error) {
	req := pkgapi.ChangePasswordRequest{
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	}
	var resp pkgapi.MessageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/change-password", sess.Token(), nil, req, &resp); err != nil {
		return nil, fmt.Errorf("change password failed: %w", err)
	}
	return &resp, nil
}

// RefreshToken обновляет access token на сессии
func (c *Client) RefreshToken(ctx context.Context, sess *session.Session) (*pkgapi.TokenResponse, error) {
	var resp pkgapi.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/refresh", sess.Token(), nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("refresh token failed: %w", err)
	}
	c.applyToken(sess, &resp)
	return &resp, nil
}

// ForgotPasswordInit начинает сброс забытого пароля
func (c *Client) ForgotPasswordInit(ctx context.Context, phoneNumber string) (*pkgapi.MessageResponse, error) {
	req := pkgapi.ForgotPasswordInitRequest{PhoneNumber: phoneNumber}
	var resp pkgapi.MessageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/forgot-password/init", "", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("forgot password init failed: %w", err)
	}
	return &resp, nil
}

// ForgotPasswordConfirm подтверждает сброс пароля по OTP коду
func (c *Client) ForgotPasswordConfirm(ctx context.Context, req pkgapi.ForgotPasswordConfirmRequest) (*pkgapi.MessageResponse, error) {
	var resp pkgapi.MessageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/forgot-password/confirm", "", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("forgot password confirm failed: %w", err)
	}
	return &resp, nil
}

// ResetPassword административно сбрасывает пароль пользователя
func (c *Client) ResetPassword(ctx context.Context, sess *session.Session, phone, newPassword string) (*pkgapi.MessageResponse, error) {
	req := pkgapi.ResetPasswordRequest{Phone: phone, NewPassword: newPassword}
	var resp pkgapi.MessageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/reset-password", sess.Token(), nil, req, &resp); err != nil {
		return nil, fmt.Errorf("reset password failed: %w", err)
	}
	return &resp, nil
}

// Logout сбрасывает сессию. Сервис не хранит состояние по токену,
// поэтому выход — чисто клиентская операция.
func (c *Client) Logout(sess *session.Session) {
	sess.Clear()
}

// applyToken переносит токен и данные пользователя из ответа на сессию
func (c *Client) applyToken(sess *session.Session, resp *pkgapi.TokenResponse) {
	if resp.AccessToken == "" {
		return
	}
	sess.SetToken(resp.AccessToken)
	if resp.UserID != "" {
		sess.SetUserInfo(&pkgapi.UserInfo{
			ID:          resp.UserID,
			PhoneNumber: resp.PhoneNumber,
			Roles:       resp.Roles,
		})
	}
}
