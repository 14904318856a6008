package cli

import (
	"context"

	"github.com/ahjin-guild/dialectmap/internal/models"
	"github.com/ahjin-guild/dialectmap/internal/store"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	filter := store.SubmissionFilter{PublicOnly: true}

	// "list mine" показывает и собственные приватные записи
	if len(args) > 0 && args[0] == "mine" {
		user, err := c.authenticate(ctx)
		if err != nil {
			return err
		}
		filter = store.SubmissionFilter{OwnerID: &user.ID}
	}

	subs, err := c.store.ListSubmissions(ctx, filter)
	if err != nil {
		return err
	}

	if len(subs) == 0 {
		c.io.Println("No submissions found.")
		return nil
	}

	c.io.Printf("Found %d submission(s):\n\n", len(subs))
	for _, sub := range subs {
		c.printSubmission(&sub)
	}

	return nil
}

func (c *Cli) printSubmission(sub *models.Submission) {
	c.io.Printf("ID:       %s\n", sub.ID)
	c.io.Printf("Word:     %s\n", sub.Word)
	c.io.Printf("Location: %s\n", sub.LocationText)
	if sub.Latitude != nil && sub.Longitude != nil {
		c.io.Printf("Coords:   %.4f, %.4f\n", *sub.Latitude, *sub.Longitude)
	}
	c.io.Printf("Public:   %t\n", sub.IsPublic)
	c.io.Printf("Verified: %t\n", sub.IsVerified)
	c.io.Printf("Created:  %s\n", sub.CreatedAt.Format("2006-01-02 15:04"))
	c.io.Println()
}
