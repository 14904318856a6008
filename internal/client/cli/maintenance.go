package cli

import (
	"context"
)

func (c *Cli) runReconcile(ctx context.Context) error {
	removed, err := c.store.ReconcileOrphans(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Removed %d orphaned image file(s)\n", removed)
	return nil
}

func (c *Cli) runRandom(ctx context.Context) error {
	sub, err := c.store.RandomSubmission(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Submission of the Day ===")
	c.io.Println()
	c.printSubmission(sub)
	return nil
}

func (c *Cli) runStats(ctx context.Context) error {
	stats, err := c.store.Stats(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("Total submissions: %d\n", stats.Total)
	c.io.Printf("Unique locations:  %d\n", stats.UniqueLocations)
	return nil
}
