package cli

import (
	"context"
	"fmt"
)

// Run выполняет одну команду CLI
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "submit":
		return c.runSubmit(ctx)
	case "list":
		return c.runList(ctx, args)
	case "image":
		return c.runImage(ctx, args)
	case "toggle":
		return c.runToggle(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "verify":
		return c.runVerify(ctx, args)
	case "reconcile":
		return c.runReconcile(ctx)
	case "random":
		return c.runRandom(ctx)
	case "stats":
		return c.runStats(ctx)
	case "login":
		return c.runLogin(ctx)
	case "signup":
		return c.runSignup(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "whoami":
		return c.runWhoami(ctx)
	case "categories":
		return c.runCategories(ctx)
	case "nearby":
		return c.runNearby(ctx, args)
	case "bbox":
		return c.runBBox(ctx, args)
	case "upload":
		return c.runUpload(ctx, args)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
