package cli

import (
	"context"
	"fmt"

	"github.com/ahjin-guild/dialectmap/internal/models"
	"github.com/ahjin-guild/dialectmap/internal/validation"
)

// authenticate запрашивает локальные учетные данные и проверяет их
func (c *Cli) authenticate(ctx context.Context) (*models.User, error) {
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return nil, fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}

	user, err := c.store.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ensureSession авторизует сессию удаленного сервиса, если ее еще нет
func (c *Cli) ensureSession(ctx context.Context) error {
	if c.sess.IsAuthenticated() {
		return nil
	}

	phone, err := c.io.ReadInput("Phone number: ")
	if err != nil {
		return fmt.Errorf("failed to read phone number: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	if err := validation.ValidateLogin(validation.LoginInput{Phone: phone, Password: password}); err != nil {
		return err
	}

	if _, err := c.apiClient.LoginWithPassword(ctx, c.sess, phone, password); err != nil {
		return err
	}

	c.io.Println("✓ Logged in")
	return nil
}
