package cli

import (
	"context"
)

func (c *Cli) runCategories(ctx context.Context) error {
	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	cats, err := c.apiClient.ListCategories(ctx, c.sess)
	if err != nil {
		return err
	}

	if len(cats) == 0 {
		c.io.Println("No categories found.")
		return nil
	}

	for _, cat := range cats {
		c.io.Printf("%s  %s", cat.ID, cat.Title)
		if !cat.Published {
			c.io.Printf("  (unpublished)")
		}
		c.io.Println()
	}
	return nil
}
