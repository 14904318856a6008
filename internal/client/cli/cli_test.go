package cli

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahjin-guild/dialectmap/internal/client/api"
	"github.com/ahjin-guild/dialectmap/internal/store"
	"github.com/ahjin-guild/dialectmap/internal/store/imagefs"
	"github.com/ahjin-guild/dialectmap/internal/store/sqlite"
)

// fakeIO подсовывает командам заранее заготовленный ввод
type fakeIO struct {
	out       bytes.Buffer
	inputs    []string
	passwords []string
}

func (f *fakeIO) Println(a ...any) {
	fmt.Fprintln(&f.out, a...)
}

func (f *fakeIO) Printf(format string, a ...any) {
	fmt.Fprintf(&f.out, format, a...)
}

func (f *fakeIO) ReadInput(_ string) (string, error) {
	if len(f.inputs) == 0 {
		return "", fmt.Errorf("no more inputs")
	}
	input := f.inputs[0]
	f.inputs = f.inputs[1:]
	return input, nil
}

func (f *fakeIO) ReadPassword(_ string) (string, error) {
	if len(f.passwords) == 0 {
		return "", fmt.Errorf("no more passwords")
	}
	password := f.passwords[0]
	f.passwords = f.passwords[1:]
	return password, nil
}

func newTestCli(t *testing.T, fio *fakeIO) *Cli {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	images, err := imagefs.New(t.TempDir())
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := store.NewService(logger, db, db, images)

	apiClient := api.NewClient(api.Config{BaseURL: "http://localhost:0"})
	return New(fio, service, apiClient)
}

// writeTestJPEG пишет маленький jpeg файл во временный каталог
func writeTestJPEG(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))

	path := filepath.Join(t.TempDir(), "word.jpg")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o640))
	return path
}

func TestCli_RegisterAndSubmit(t *testing.T) {
	ctx := context.Background()
	imagePath := writeTestJPEG(t)

	fio := &fakeIO{
		inputs:    []string{"alice", ""},
		passwords: []string{"secret123", "secret123"},
	}
	c := newTestCli(t, fio)

	require.NoError(t, c.Run(ctx, "register", nil))
	assert.Contains(t, fio.out.String(), "Registration successful")

	// Запись от имени alice
	fio.inputs = []string{"Baingan", "Hyderabad", imagePath, "alice", "Y"}
	fio.passwords = []string{"secret123"}

	require.NoError(t, c.Run(ctx, "submit", nil))
	assert.Contains(t, fio.out.String(), "Submission added")

	// Публичный список содержит слово
	fio.out.Reset()
	require.NoError(t, c.Run(ctx, "list", nil))
	assert.Contains(t, fio.out.String(), "Baingan")
	assert.Contains(t, fio.out.String(), "Hyderabad")
}

func TestCli_Register_PasswordMismatch(t *testing.T) {
	fio := &fakeIO{
		inputs:    []string{"alice", ""},
		passwords: []string{"secret123", "different"},
	}
	c := newTestCli(t, fio)

	err := c.Run(context.Background(), "register", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "passwords do not match")
}

func TestCli_Submit_Anonymous(t *testing.T) {
	ctx := context.Background()
	imagePath := writeTestJPEG(t)

	fio := &fakeIO{
		inputs: []string{"Vankaya", "Guntur", imagePath, "", "n"},
	}
	c := newTestCli(t, fio)

	require.NoError(t, c.Run(ctx, "submit", nil))

	// Приватная анонимная запись не попадает в публичный список
	fio.out.Reset()
	require.NoError(t, c.Run(ctx, "list", nil))
	assert.Contains(t, fio.out.String(), "No submissions found")
}

func TestCli_ImageCommand(t *testing.T) {
	ctx := context.Background()
	imagePath := writeTestJPEG(t)

	fio := &fakeIO{
		inputs: []string{"Cycle", "Warangal", imagePath, "", "Y"},
	}
	c := newTestCli(t, fio)

	require.NoError(t, c.Run(ctx, "submit", nil))

	subs, err := c.store.ListSubmissions(ctx, store.SubmissionFilter{PublicOnly: true})
	require.NoError(t, err)
	require.Len(t, subs, 1)

	outPath := filepath.Join(t.TempDir(), "out.jpg")
	require.NoError(t, c.Run(ctx, "image", []string{subs[0].ID, outPath}))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	// Без аргументов — подсказка
	err = c.Run(ctx, "image", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage: image")
}

func TestCli_UnknownCommand(t *testing.T) {
	c := newTestCli(t, &fakeIO{})

	err := c.Run(context.Background(), "bogus", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command: bogus")
}

func TestCli_Reconcile(t *testing.T) {
	fio := &fakeIO{}
	c := newTestCli(t, fio)

	require.NoError(t, c.Run(context.Background(), "reconcile", nil))
	assert.Contains(t, fio.out.String(), "Removed 0 orphaned")
}
