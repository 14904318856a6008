package store_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahjin-guild/dialectmap/internal/store"
	"github.com/ahjin-guild/dialectmap/internal/store/imagefs"
	"github.com/ahjin-guild/dialectmap/internal/store/sqlite"
)

func setupTestService(t *testing.T) (*store.Service, *imagefs.Store) {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	images, err := imagefs.New(t.TempDir())
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return store.NewService(logger, db, db, images), images
}

// testJPEG кодирует маленькую тестовую картинку
func testJPEG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: 100, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestService_CreateUserAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupTestService(t)

	userID, err := svc.CreateUser(ctx, "alice", "secret123", "")
	require.NoError(t, err)
	require.NotEmpty(t, userID)

	// Верный пароль — возвращается пользователь
	user, err := svc.Authenticate(ctx, "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "alice", user.Username)

	// Неверный пароль — ErrInvalidCredentials, без паники
	_, err = svc.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)

	// Неизвестный пользователь — тот же ответ
	_, err = svc.Authenticate(ctx, "nobody", "secret123")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
}

func TestService_CreateUser_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupTestService(t)

	_, err := svc.CreateUser(ctx, "alice", "secret123", "")
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, "alice", "another_pw", "")
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestService_CreateUser_Invalid(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupTestService(t)

	_, err := svc.CreateUser(ctx, "al", "secret123", "")
	assert.Error(t, err)

	_, err = svc.CreateUser(ctx, "alice", "short", "")
	assert.Error(t, err)

	_, err = svc.CreateUser(ctx, "alice", "secret123", "not-an-email")
	assert.Error(t, err)
}

func TestService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupTestService(t)

	_, err := svc.CreateUser(ctx, "alice", "secret123", "")
	require.NoError(t, err)

	// С неверным текущим паролем ничего не меняется
	err = svc.ChangePassword(ctx, "alice", "wrong", "newsecret99")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword(ctx, "alice", "secret123", "newsecret99"))

	_, err = svc.Authenticate(ctx, "alice", "secret123")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "alice", "newsecret99")
	assert.NoError(t, err)
}

func TestService_AddSubmission_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupTestService(t)

	id, err := svc.AddSubmission(ctx, store.AddSubmissionParams{
		Word:         "Baingan",
		LocationText: "Hyderabad",
		ImageData:    testJPEG(t),
		IsPublic:     true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	// Запись видна в публичном списке
	subs, err := svc.ListSubmissions(ctx, store.SubmissionFilter{PublicOnly: true})
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "Baingan", subs[0].Word)
	assert.Equal(t, "Hyderabad", subs[0].LocationText)

	// Сохраненное изображение декодируется обратно
	data, err := svc.GetImage(ctx, id)
	require.NoError(t, err)

	decoded, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, image.Rect(0, 0, 16, 16), decoded.Bounds())
}

func TestService_AddSubmission_BadImage(t *testing.T) {
	ctx := context.Background()
	svc, images := setupTestService(t)

	_, err := svc.AddSubmission(ctx, store.AddSubmissionParams{
		Word:         "Baingan",
		LocationText: "Hyderabad",
		ImageData:    []byte("not an image"),
		IsPublic:     true,
	})
	assert.ErrorIs(t, err, store.ErrImageDecode)

	// Ни строки, ни файла
	subs, err := svc.ListSubmissions(ctx, store.SubmissionFilter{})
	require.NoError(t, err)
	assert.Empty(t, subs)

	files, err := images.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestService_AddSubmission_EmptyFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupTestService(t)

	_, err := svc.AddSubmission(ctx, store.AddSubmissionParams{
		Word:         "",
		LocationText: "Hyderabad",
		ImageData:    testJPEG(t),
	})
	assert.Error(t, err)

	_, err = svc.AddSubmission(ctx, store.AddSubmissionParams{
		Word:         "Baingan",
		LocationText: "",
		ImageData:    testJPEG(t),
	})
	assert.Error(t, err)
}

func TestService_UpdateCoordinates(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupTestService(t)

	id, err := svc.AddSubmission(ctx, store.AddSubmissionParams{
		Word:         "Cycle",
		LocationText: "Warangal",
		ImageData:    testJPEG(t),
		IsPublic:     true,
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateCoordinates(ctx, id, 17.9689, 79.5941))

	sub, err := svc.GetSubmission(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, sub.Latitude)
	assert.InDelta(t, 17.9689, *sub.Latitude, 0.0001)

	// Несуществующий ID — ошибка, не no-op
	assert.ErrorIs(t, svc.UpdateCoordinates(ctx, "nonexistent", 1, 2), store.ErrSubmissionNotFound)
}

func TestService_ToggleVisibility(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupTestService(t)

	ownerID, err := svc.CreateUser(ctx, "alice", "secret123", "")
	require.NoError(t, err)
	strangerID, err := svc.CreateUser(ctx, "mallory", "secret456", "")
	require.NoError(t, err)

	id, err := svc.AddSubmission(ctx, store.AddSubmissionParams{
		Word:         "Baingan",
		LocationText: "Hyderabad",
		ImageData:    testJPEG(t),
		OwnerID:      &ownerID,
		IsPublic:     true,
	})
	require.NoError(t, err)

	// Чужой запрос отклоняется и ничего не меняет
	err = svc.ToggleVisibility(ctx, id, strangerID)
	assert.ErrorIs(t, err, store.ErrNotOwner)

	sub, err := svc.GetSubmission(ctx, id)
	require.NoError(t, err)
	assert.True(t, sub.IsPublic)

	// Владелец переключает
	require.NoError(t, svc.ToggleVisibility(ctx, id, ownerID))

	sub, err = svc.GetSubmission(ctx, id)
	require.NoError(t, err)
	assert.False(t, sub.IsPublic)
}

func TestService_ToggleVisibility_Anonymous(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupTestService(t)

	userID, err := svc.CreateUser(ctx, "alice", "secret123", "")
	require.NoError(t, err)

	// У анонимной записи нет владельца — переключать нельзя никому
	id, err := svc.AddSubmission(ctx, store.AddSubmissionParams{
		Word:         "Vankaya",
		LocationText: "Guntur",
		ImageData:    testJPEG(t),
		IsPublic:     true,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ToggleVisibility(ctx, id, userID), store.ErrNotOwner)
}

func TestService_DeleteSubmission(t *testing.T) {
	ctx := context.Background()
	svc, images := setupTestService(t)

	ownerID, err := svc.CreateUser(ctx, "alice", "secret123", "")
	require.NoError(t, err)
	strangerID, err := svc.CreateUser(ctx, "mallory", "secret456", "")
	require.NoError(t, err)

	id, err := svc.AddSubmission(ctx, store.AddSubmissionParams{
		Word:         "Baingan",
		LocationText: "Hyderabad",
		ImageData:    testJPEG(t),
		OwnerID:      &ownerID,
		IsPublic:     true,
	})
	require.NoError(t, err)

	// Чужой запрос отклоняется, запись и файл на месте
	assert.ErrorIs(t, svc.DeleteSubmission(ctx, id, strangerID), store.ErrNotOwner)

	_, err = svc.GetImage(ctx, id)
	require.NoError(t, err)

	// Владелец удаляет строку вместе с файлом
	require.NoError(t, svc.DeleteSubmission(ctx, id, ownerID))

	_, err = svc.GetSubmission(ctx, id)
	assert.ErrorIs(t, err, store.ErrSubmissionNotFound)

	files, err := images.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestService_GetImage_DanglingRef(t *testing.T) {
	ctx := context.Background()
	svc, images := setupTestService(t)

	id, err := svc.AddSubmission(ctx, store.AddSubmissionParams{
		Word:         "Baingan",
		LocationText: "Hyderabad",
		ImageData:    testJPEG(t),
		IsPublic:     true,
	})
	require.NoError(t, err)

	// Убираем файл из-под записи
	sub, err := svc.GetSubmission(ctx, id)
	require.NoError(t, err)
	require.NoError(t, images.Delete(ctx, sub.ImageRef))

	_, err = svc.GetImage(ctx, id)
	assert.ErrorIs(t, err, store.ErrImageNotFound)
}

func TestService_MarkVerified(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupTestService(t)

	id, err := svc.AddSubmission(ctx, store.AddSubmissionParams{
		Word:         "Baingan",
		LocationText: "Hyderabad",
		ImageData:    testJPEG(t),
		IsPublic:     true,
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkVerified(ctx, id))

	sub, err := svc.GetSubmission(ctx, id)
	require.NoError(t, err)
	assert.True(t, sub.IsVerified)
}

func TestService_ReconcileOrphans(t *testing.T) {
	ctx := context.Background()
	svc, images := setupTestService(t)

	// Живая запись с файлом
	id, err := svc.AddSubmission(ctx, store.AddSubmissionParams{
		Word:         "Baingan",
		LocationText: "Hyderabad",
		ImageData:    testJPEG(t),
		IsPublic:     true,
	})
	require.NoError(t, err)

	// Старая сирота: файл без строки, mtime за пределами grace window
	_, err = images.Save(ctx, "orphan-old", []byte("stale"))
	require.NoError(t, err)
	oldPath := filepath.Join(images.Dir(), "orphan-old"+imagefs.Extension)
	staleTime := time.Now().Add(-2 * store.OrphanGracePeriod)
	require.NoError(t, os.Chtimes(oldPath, staleTime, staleTime))

	// Свежая сирота: строка могла быть еще в полете, не трогаем
	_, err = images.Save(ctx, "orphan-fresh", []byte("in flight"))
	require.NoError(t, err)

	removed, err := svc.ReconcileOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	files, err := images.List(ctx)
	require.NoError(t, err)
	require.Len(t, files, 2)

	refs := []string{files[0].Ref, files[1].Ref}
	assert.Contains(t, refs, "orphan-fresh"+imagefs.Extension)
	assert.NotContains(t, refs, "orphan-old"+imagefs.Extension)

	// Живая запись не пострадала
	_, err = svc.GetImage(ctx, id)
	assert.NoError(t, err)
}

func TestService_RandomAndStats(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupTestService(t)

	_, err := svc.RandomSubmission(ctx)
	assert.ErrorIs(t, err, store.ErrSubmissionNotFound)

	for _, word := range []string{"one", "two", "three"} {
		_, err := svc.AddSubmission(ctx, store.AddSubmissionParams{
			Word:         word,
			LocationText: "Hyderabad",
			ImageData:    testJPEG(t),
			IsPublic:     true,
		})
		require.NoError(t, err)
	}

	random, err := svc.RandomSubmission(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, random.Word)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.UniqueLocations)
}
