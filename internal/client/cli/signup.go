package cli

import (
	"context"
	"fmt"

	"github.com/ahjin-guild/dialectmap/internal/validation"
	pkgapi "github.com/ahjin-guild/dialectmap/pkg/api"
)

func (c *Cli) runSignup(ctx context.Context) error {
	c.io.Println("=== Corpus Signup ===")
	c.io.Println()

	phone, err := c.io.ReadInput("Phone number: ")
	if err != nil {
		return fmt.Errorf("failed to read phone number: %w", err)
	}

	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password (min 8 chars): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	// Проверяем до любого сетевого вызова
	if err := validation.ValidateSignup(validation.SignupInput{
		Phone:    phone,
		Name:     name,
		Email:    email,
		Password: password,
	}); err != nil {
		return err
	}

	if _, err := c.apiClient.SendSignupOTP(ctx, phone); err != nil {
		return err
	}
	c.io.Println("OTP sent.")

	otp, err := c.io.ReadInput("OTP code: ")
	if err != nil {
		return fmt.Errorf("failed to read otp: %w", err)
	}

	resp, err := c.apiClient.VerifySignupOTP(ctx, c.sess, pkgapi.VerifySignupOTPRequest{
		PhoneNumber:     phone,
		OTPCode:         otp,
		Name:            name,
		Email:           email,
		Password:        password,
		HasGivenConsent: true,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Signup successful!")
	if resp.UserID != "" {
		c.io.Printf("User ID: %s\n", resp.UserID)
	}
	return nil
}
