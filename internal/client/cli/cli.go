// Package cli реализует команды консольного клиента.
package cli

import (
	"fmt"

	"github.com/ahjin-guild/dialectmap/internal/client/api"
	"github.com/ahjin-guild/dialectmap/internal/client/iocli"
	"github.com/ahjin-guild/dialectmap/internal/client/session"
	"github.com/ahjin-guild/dialectmap/internal/store"
)

type Cli struct {
	io        iocli.IO
	store     *store.Service
	apiClient *api.Client
	sess      *session.Session
}

func New(io iocli.IO, storeService *store.Service, apiClient *api.Client) *Cli {
	return &Cli{
		io:        io,
		store:     storeService,
		apiClient: apiClient,
		sess:      session.New(),
	}
}

func PrintUsage() {
	fmt.Println("Dialect Map Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  dialectmap [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     Corpus API URL (default: https://api.corpus.swecha.org)")
	fmt.Println("  --db PATH        Path to local database (default: dialect_map.db)")
	fmt.Println("  --images PATH    Path to local image directory (default: uploaded_images)")
	fmt.Println()
	fmt.Println("Local commands:")
	fmt.Println("  register                Register new local user")
	fmt.Println("  submit                  Add a dialect word submission")
	fmt.Println("  list [mine]             List public submissions (or yours too)")
	fmt.Println("  image <id> <path>       Save submission image to a file")
	fmt.Println("  toggle <id>             Toggle submission visibility (owner only)")
	fmt.Println("  delete <id>             Delete submission (owner only)")
	fmt.Println("  verify <id>             Mark submission as verified")
	fmt.Println("  reconcile               Remove orphaned image files")
	fmt.Println("  random                  Show a random submission")
	fmt.Println("  stats                   Show submission statistics")
	fmt.Println()
	fmt.Println("Remote commands:")
	fmt.Println("  login                   Login to the corpus service")
	fmt.Println("  signup                  Create a corpus account (OTP flow)")
	fmt.Println("  logout                  Drop the corpus session")
	fmt.Println("  whoami                  Show current corpus user")
	fmt.Println("  categories              List corpus categories")
	fmt.Println("  nearby <lat> <lon> [radius_km]")
	fmt.Println("                          Search corpus records near a point")
	fmt.Println("  bbox <min_lat> <min_lon> <max_lat> <max_lon>")
	fmt.Println("                          Search corpus records in a bounding box")
	fmt.Println("  upload <record_id> <file>")
	fmt.Println("                          Upload a media file to a corpus record")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  dialectmap register")
	fmt.Println("  dialectmap submit")
	fmt.Println("  dialectmap list")
	fmt.Println("  dialectmap image b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 word.jpg")
	fmt.Println("  dialectmap nearby 17.385 78.4867 50")
	fmt.Println("  dialectmap --server https://api.corpus.swecha.org login")
}
