package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ahjin-guild/dialectmap/internal/store"
)

func (c *Cli) runSubmit(ctx context.Context) error {
	c.io.Println("=== New Submission ===")
	c.io.Println()

	word, err := c.io.ReadInput("Dialect word: ")
	if err != nil {
		return fmt.Errorf("failed to read word: %w", err)
	}

	locationText, err := c.io.ReadInput("Location: ")
	if err != nil {
		return fmt.Errorf("failed to read location: %w", err)
	}

	imagePath, err := c.io.ReadInput("Image file: ")
	if err != nil {
		return fmt.Errorf("failed to read image path: %w", err)
	}

	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("failed to read image file: %w", err)
	}

	// Пустой username — анонимная запись
	var ownerID *string
	username, err := c.io.ReadInput("Username (empty for anonymous): ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	if username != "" {
		password, err := c.io.ReadPassword("Password: ")
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		user, err := c.store.Authenticate(ctx, username, password)
		if err != nil {
			return err
		}
		ownerID = &user.ID
	}

	visibility, err := c.io.ReadInput("Public? (Y/n): ")
	if err != nil {
		return fmt.Errorf("failed to read visibility: %w", err)
	}
	isPublic := visibility != "n" && visibility != "N"

	id, err := c.store.AddSubmission(ctx, store.AddSubmissionParams{
		Word:         word,
		LocationText: locationText,
		ImageData:    imageData,
		OwnerID:      ownerID,
		IsPublic:     isPublic,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Submission added!")
	c.io.Printf("ID: %s\n", id)

	return nil
}
