package validation

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// PhonePattern определяет допустимый формат индийского номера телефона:
// +91XXXXXXXXXX, 91XXXXXXXXXX или XXXXXXXXXX, первая цифра 6-9
var PhonePattern = regexp.MustCompile(`^(\+91|91)?[6-9]\d{9}$`)

// UsernamePattern определяет допустимый формат username
// Только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
// Длина: 3-32 символа
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 3
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 32
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 8
)

// validate один инстанс валидатора на пакет, структуры валидируются по тегам
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Кастомное правило для индийских телефонов
	_ = v.RegisterValidation("indianphone", func(fl validator.FieldLevel) bool {
		return PhonePattern.MatchString(fl.Field().String())
	})
	return v
}

// SignupInput входные данные формы регистрации на удаленном сервисе
type SignupInput struct {
	Phone    string `validate:"required,indianphone"`
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// LoginInput входные данные формы входа по паролю
type LoginInput struct {
	Phone    string `validate:"required,indianphone"`
	Password string `validate:"required"`
}

// ValidateSignup проверяет данные регистрации до любого сетевого вызова
func ValidateSignup(in SignupInput) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("invalid signup data: %w", err)
	}
	return nil
}

// ValidateLogin проверяет данные входа до любого сетевого вызова
func ValidateLogin(in LoginInput) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("invalid login data: %w", err)
	}
	return nil
}

// ValidatePhone проверяет формат индийского номера телефона
func ValidatePhone(phone string) error {
	if phone == "" {
		return fmt.Errorf("phone number cannot be empty")
	}
	if !PhonePattern.MatchString(phone) {
		return fmt.Errorf("invalid Indian phone number format")
	}
	return nil
}

// ValidateEmail проверяет формат email
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if err := validate.Var(email, "email"); err != nil {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidateUsername проверяет, что username соответствует требованиям
// Формат: только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
// Длина: 3-32 символа
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateSubmission проверяет обязательные поля локальной записи
func ValidateSubmission(word, locationText string) error {
	if word == "" {
		return fmt.Errorf("word cannot be empty")
	}
	if locationText == "" {
		return fmt.Errorf("location cannot be empty")
	}
	return nil
}
