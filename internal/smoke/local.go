package smoke

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ahjin-guild/dialectmap/internal/store"
	"github.com/ahjin-guild/dialectmap/internal/store/imagefs"
	"github.com/ahjin-guild/dialectmap/internal/store/sqlite"
)

// LocalChecks проверяет локальное хранилище на временной базе
// и временном каталоге изображений. Ничего из окружения не нужно.
func LocalChecks() []Check {
	return []Check{
		{Name: "local user roundtrip", Run: checkLocalUsers},
		{Name: "local submission roundtrip", Run: checkLocalSubmissions},
		{Name: "orphan reconciliation", Run: checkLocalReconcile},
	}
}

// localEnv собирает одноразовое хранилище во временном каталоге
func localEnv(ctx context.Context) (*store.Service, func(), error) {
	dir, err := os.MkdirTemp("", "dialectmap-smoke-*")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create temp dir: %w", err)
	}

	db, err := sqlite.New(ctx, filepath.Join(dir, "smoke.db"))
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, nil, err
	}

	images, err := imagefs.New(filepath.Join(dir, "images"))
	if err != nil {
		_ = db.Close()
		_ = os.RemoveAll(dir)
		return nil, nil, err
	}

	cleanup := func() {
		_ = db.Close()
		_ = os.RemoveAll(dir)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return store.NewService(logger, db, db, images), cleanup, nil
}

func checkLocalUsers(ctx context.Context) error {
	svc, cleanup, err := localEnv(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := svc.CreateUser(ctx, "smoketest", "smoke-pass-1", ""); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	if _, err := svc.Authenticate(ctx, "smoketest", "smoke-pass-1"); err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}

	// Неверный пароль обязан давать ошибку, не панику
	if _, err := svc.Authenticate(ctx, "smoketest", "wrong"); !errors.Is(err, store.ErrInvalidCredentials) {
		return fmt.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}

	return nil
}

func checkLocalSubmissions(ctx context.Context) error {
	svc, cleanup, err := localEnv(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	userID, err := svc.CreateUser(ctx, "smoketest", "smoke-pass-1", "")
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	id, err := svc.AddSubmission(ctx, store.AddSubmissionParams{
		Word:         "Baingan",
		LocationText: "Hyderabad",
		ImageData:    smokeJPEG(),
		OwnerID:      &userID,
		IsPublic:     true,
	})
	if err != nil {
		return fmt.Errorf("add submission: %w", err)
	}

	data, err := svc.GetImage(ctx, id)
	if err != nil {
		return fmt.Errorf("get image: %w", err)
	}
	if _, _, err := image.Decode(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("stored image does not decode: %w", err)
	}

	if err := svc.DeleteSubmission(ctx, id, userID); err != nil {
		return fmt.Errorf("delete submission: %w", err)
	}

	if _, err := svc.GetImage(ctx, id); !errors.Is(err, store.ErrSubmissionNotFound) {
		return fmt.Errorf("image after delete: expected ErrSubmissionNotFound, got %v", err)
	}

	return nil
}

func checkLocalReconcile(ctx context.Context) error {
	svc, cleanup, err := localEnv(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := svc.AddSubmission(ctx, store.AddSubmissionParams{
		Word:         "Vankaya",
		LocationText: "Guntur",
		ImageData:    smokeJPEG(),
		IsPublic:     true,
	}); err != nil {
		return fmt.Errorf("add submission: %w", err)
	}

	// Свежие файлы под защитой grace window, удаляться нечему
	removed, err := svc.ReconcileOrphans(ctx)
	if err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}
	if removed != 0 {
		return fmt.Errorf("reconcile removed %d files from a clean store", removed)
	}

	return nil
}

func smokeJPEG() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	_ = jpeg.Encode(&buf, img, nil)
	return buf.Bytes()
}
