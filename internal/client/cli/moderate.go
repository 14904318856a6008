package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runToggle(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: toggle <id>")
	}
	id := args[0]

	user, err := c.authenticate(ctx)
	if err != nil {
		return err
	}

	if err := c.store.ToggleVisibility(ctx, id, user.ID); err != nil {
		return err
	}

	sub, err := c.store.GetSubmission(ctx, id)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Submission is now %s\n", visibilityLabel(sub.IsPublic))
	return nil
}

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: delete <id>")
	}
	id := args[0]

	user, err := c.authenticate(ctx)
	if err != nil {
		return err
	}

	if err := c.store.DeleteSubmission(ctx, id, user.ID); err != nil {
		return err
	}

	c.io.Println("✓ Submission deleted")
	return nil
}

func (c *Cli) runVerify(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: verify <id>")
	}

	if err := c.store.MarkVerified(ctx, args[0]); err != nil {
		return err
	}

	c.io.Println("✓ Submission marked as verified")
	return nil
}

func visibilityLabel(isPublic bool) string {
	if isPublic {
		return "public"
	}
	return "private"
}
