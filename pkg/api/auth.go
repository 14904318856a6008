package api

// SendOTPRequest представляет запрос на отправку OTP кода (login или signup)
type SendOTPRequest struct {
	PhoneNumber string `json:"phone_number"` // телефон в индийском формате
}

// OTPStatusResponse представляет ответ на отправку/переотправку OTP
type OTPStatusResponse struct {
	Status  string `json:"status"`            // "success" или "signup_required"
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

// VerifyLoginOTPRequest представляет запрос на подтверждение OTP при входе
type VerifyLoginOTPRequest struct {
	PhoneNumber     string `json:"phone_number"`
	OTPCode         string `json:"otp_code"`
	HasGivenConsent bool   `json:"has_given_consent"` // согласие на сбор данных
}

// VerifySignupOTPRequest представляет запрос на подтверждение OTP
// и создание нового аккаунта
type VerifySignupOTPRequest struct {
	PhoneNumber     string `json:"phone_number"`
	OTPCode         string `json:"otp_code"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	HasGivenConsent bool   `json:"has_given_consent"`
}

// LoginRequest представляет запрос на вход по паролю
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// TokenResponse представляет ответ с bearer токеном
type TokenResponse struct {
	AccessToken string   `json:"access_token"`           // opaque bearer token
	TokenType   string   `json:"token_type,omitempty"`   // обычно "bearer"
	UserID      string   `json:"user_id,omitempty"`      // UUID пользователя
	PhoneNumber string   `json:"phone_number,omitempty"` // телефон пользователя
	Roles       []string `json:"roles,omitempty"`        // роли пользователя
}

// UserInfo представляет профиль пользователя удаленного сервиса
type UserInfo struct {
	ID              string   `json:"id"`
	PhoneNumber     string   `json:"phone_number"`
	Name            string   `json:"name,omitempty"`
	Email           string   `json:"email,omitempty"`
	Place           string   `json:"place,omitempty"`
	Roles           []string `json:"roles,omitempty"`
	HasGivenConsent bool     `json:"has_given_consent,omitempty"`
}

// ChangePasswordRequest представляет запрос на смену пароля
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ForgotPasswordInitRequest представляет запрос на начало сброса пароля
type ForgotPasswordInitRequest struct {
	PhoneNumber string `json:"phone_number"`
}

// ForgotPasswordConfirmRequest представляет подтверждение сброса пароля
type ForgotPasswordConfirmRequest struct {
	PhoneNumber     string `json:"phone_number"`
	OTPCode         string `json:"otp_code"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ResetPasswordRequest представляет административный сброс пароля
type ResetPasswordRequest struct {
	Phone       string `json:"phone"`
	NewPassword string `json:"new_password"`
}

// MessageResponse представляет ответ с одним информационным сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse представляет тело ошибки удаленного сервиса.
// Сервис отдает либо message, либо detail — берем первое непустое.
type ErrorResponse struct {
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Text возвращает человекочитаемый текст ошибки
func (e *ErrorResponse) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Detail
}
