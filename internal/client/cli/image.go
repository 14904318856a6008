package cli

import (
	"context"
	"fmt"
	"os"
)

func (c *Cli) runImage(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: image <id> <path>")
	}
	id, outPath := args[0], args[1]

	data, err := c.store.GetImage(ctx, id)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, data, 0o640); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}

	c.io.Printf("✓ Image saved to %s (%d bytes)\n", outPath, len(data))
	return nil
}
