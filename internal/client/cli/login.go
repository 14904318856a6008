package cli

import (
	"context"
)

func (c *Cli) runLogin(ctx context.Context) error {
	// Сбрасываем старую сессию, чтобы запросить учетные данные заново
	c.sess.Clear()

	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	if expires := c.sess.ExpiresAt(); !expires.IsZero() {
		c.io.Printf("Token expires at %s\n", expires.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func (c *Cli) runLogout(_ context.Context) error {
	c.apiClient.Logout(c.sess)
	c.io.Println("✓ Logged out")
	return nil
}

func (c *Cli) runWhoami(ctx context.Context) error {
	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	info, err := c.apiClient.GetCurrentUser(ctx, c.sess)
	if err != nil {
		return err
	}

	c.io.Printf("ID:    %s\n", info.ID)
	c.io.Printf("Phone: %s\n", info.PhoneNumber)
	if info.Name != "" {
		c.io.Printf("Name:  %s\n", info.Name)
	}
	if info.Email != "" {
		c.io.Printf("Email: %s\n", info.Email)
	}
	if len(info.Roles) > 0 {
		c.io.Printf("Roles: %v\n", info.Roles)
	}
	return nil
}
