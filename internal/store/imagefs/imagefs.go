package imagefs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ahjin-guild/dialectmap/internal/store"
)

// Extension расширение, под которым хранятся все нормализованные изображения
const Extension = ".jpg"

// Store хранит изображения отдельными файлами в одном каталоге,
// имя файла выводится из ID записи
type Store struct {
	dir string
}

// New creates the image store, creating the directory if needed
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("images directory cannot be empty")
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}

	return &Store{dir: dir}, nil
}

// Dir returns the image directory path
func (s *Store) Dir() string {
	return s.dir
}

// Save writes image bytes and returns the reference to store in the row
func (s *Store) Save(ctx context.Context, submissionID string, data []byte) (string, error) {
	if submissionID == "" {
		return "", fmt.Errorf("submission id cannot be empty")
	}

	ref := submissionID + Extension
	path, err := s.resolve(ref)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0o640); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return ref, nil
}

// Read returns image bytes by reference
func (s *Store) Read(ctx context.Context, ref string) ([]byte, error) {
	path, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, store.ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}

	return data, nil
}

// Delete removes the image file
func (s *Store) Delete(ctx context.Context, ref string) error {
	path, err := s.resolve(ref)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return store.ErrImageNotFound
		}
		return fmt.Errorf("failed to delete image file: %w", err)
	}

	return nil
}

// List returns every file currently in the image directory
func (s *Store) List(ctx context.Context) ([]store.ImageFileInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read images directory: %w", err)
	}

	var files []store.ImageFileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// Файл мог исчезнуть между ReadDir и Info
			continue
		}

		files = append(files, store.ImageFileInfo{
			Ref:     entry.Name(),
			ModTime: info.ModTime(),
		})
	}

	return files, nil
}

// resolve строит путь к файлу и отсекает ссылки с разделителями пути
func (s *Store) resolve(ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("image ref cannot be empty")
	}
	if strings.ContainsAny(ref, `/\`) || ref != filepath.Base(ref) {
		return "", fmt.Errorf("invalid image ref: %q", ref)
	}
	return filepath.Join(s.dir, ref), nil
}
