package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ahjin-guild/dialectmap/internal/client/api"
)

func (c *Cli) runUpload(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: upload <record_id> <file>")
	}
	recordID, filePath := args[0], args[1]

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	filename := filepath.Base(filePath)
	resp, err := c.apiClient.UploadFile(ctx, c.sess, recordID, filename, data)
	if err != nil {
		// Показываем, на каком chunk оборвалась загрузка
		var chunkErr *api.ChunkUploadError
		if errors.As(err, &chunkErr) {
			return fmt.Errorf("upload aborted at chunk %d of %d: %w", chunkErr.Index, chunkErr.Total, chunkErr.Err)
		}
		return err
	}

	c.io.Println("✓ Upload complete")
	if resp.FileURL != "" {
		c.io.Printf("File URL: %s\n", resp.FileURL)
	}
	return nil
}
