package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ahjin-guild/dialectmap/internal/crypto"
	"github.com/ahjin-guild/dialectmap/internal/imaging"
	"github.com/ahjin-guild/dialectmap/internal/models"
	"github.com/ahjin-guild/dialectmap/internal/validation"
)

// OrphanGracePeriod защищает свежезаписанные файлы от уборки:
// файл изображения пишется до вставки строки, и скан не должен
// принять такую пару за сироту
const OrphanGracePeriod = time.Minute

// Service объединяет таблицы SQLite и каталог изображений
// в единое локальное хранилище
type Service struct {
	logger *slog.Logger
	users  UserStorage
	subs   SubmissionStorage
	images ImageStore
}

// NewService создает новый сервис локального хранилища
func NewService(logger *slog.Logger, users UserStorage, subs SubmissionStorage, images ImageStore) *Service {
	return &Service{
		logger: logger,
		users:  users,
		subs:   subs,
		images: images,
	}
}

// CreateUser регистрирует нового локального пользователя.
// Хранится только bcrypt хеш пароля.
func (s *Service) CreateUser(ctx context.Context, username, password, email string) (string, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return "", fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return "", fmt.Errorf("invalid password: %w", err)
	}
	if email != "" {
		if err := validation.ValidateEmail(email); err != nil {
			return "", fmt.Errorf("invalid email: %w", err)
		}
	}

	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: passwordHash,
		Email:        email,
		CreatedAt:    time.Now(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return "", err
	}

	s.logger.InfoContext(ctx, "user created",
		slog.String("username", username),
		slog.String("user_id", user.ID))

	return user.ID, nil
}

// Authenticate проверяет пару username/password.
// Любое несовпадение — ErrInvalidCredentials, без уточнения причины.
// Никакого lockout и rate limiting здесь нет.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := crypto.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ChangePassword меняет пароль локального пользователя
// после проверки текущего
func (s *Service) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	user, err := s.Authenticate(ctx, username, currentPassword)
	if err != nil {
		return err
	}

	if err := validation.ValidatePassword(newPassword); err != nil {
		return fmt.Errorf("invalid new password: %w", err)
	}

	newHash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, user.ID, newHash); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "password changed", slog.String("user_id", user.ID))
	return nil
}

// AddSubmissionParams параметры новой записи
type AddSubmissionParams struct {
	Word         string
	LocationText string
	ImageData    []byte  // исходные байты изображения, обязательны
	OwnerID      *string // nil для анонимной записи
	IsPublic     bool
}

// AddSubmission добавляет новую запись.
// Изображение нормализуется в JPEG и пишется на диск ДО вставки строки:
// скан сирот тогда не может увидеть строку без файла, а файл без строки
// снимается откатом при неудачной вставке.
func (s *Service) AddSubmission(ctx context.Context, p AddSubmissionParams) (string, error) {
	if err := validation.ValidateSubmission(p.Word, p.LocationText); err != nil {
		return "", err
	}

	normalized, err := imaging.Normalize(p.ImageData)
	if err != nil {
		// Строка не пишется, файл не создается
		return "", fmt.Errorf("%w: %s", ErrImageDecode, err)
	}

	id := uuid.New().String()

	ref, err := s.images.Save(ctx, id, normalized)
	if err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	sub := &models.Submission{
		ID:           id,
		OwnerID:      p.OwnerID,
		Word:         p.Word,
		LocationText: p.LocationText,
		ImageRef:     ref,
		IsPublic:     p.IsPublic,
		CreatedAt:    time.Now(),
	}

	if err := s.subs.InsertSubmission(ctx, sub); err != nil {
		// Откатываем файл, чтобы не плодить сирот
		if delErr := s.images.Delete(ctx, ref); delErr != nil {
			s.logger.WarnContext(ctx, "failed to roll back image file",
				slog.String("ref", ref),
				slog.Any("error", delErr))
		}
		return "", err
	}

	s.logger.InfoContext(ctx, "submission added",
		slog.String("submission_id", id),
		slog.String("word", p.Word))

	return id, nil
}

// UpdateCoordinates проставляет координаты после геокодирования
func (s *Service) UpdateCoordinates(ctx context.Context, id string, lat, lon float64) error {
	return s.subs.UpdateCoordinates(ctx, id, lat, lon)
}

// ListSubmissions возвращает записи согласно фильтру, см. SubmissionFilter
func (s *Service) ListSubmissions(ctx context.Context, filter SubmissionFilter) ([]models.Submission, error) {
	return s.subs.ListSubmissions(ctx, filter)
}

// GetSubmission возвращает одну запись по ID
func (s *Service) GetSubmission(ctx context.Context, id string) (*models.Submission, error) {
	return s.subs.GetSubmission(ctx, id)
}

// GetImage возвращает байты изображения записи.
// Висячая ссылка (строка есть, файла нет) — ErrImageNotFound, не паника.
func (s *Service) GetImage(ctx context.Context, id string) ([]byte, error) {
	sub, err := s.subs.GetSubmission(ctx, id)
	if err != nil {
		return nil, err
	}

	if sub.ImageRef == "" {
		return nil, ErrImageNotFound
	}

	data, err := s.images.Read(ctx, sub.ImageRef)
	if err != nil {
		if errors.Is(err, ErrImageNotFound) {
			s.logger.WarnContext(ctx, "dangling image reference",
				slog.String("submission_id", id),
				slog.String("ref", sub.ImageRef))
		}
		return nil, err
	}

	return data, nil
}

// ToggleVisibility переключает is_public.
// Разрешено только владельцу; чужой запрос ничего не меняет.
func (s *Service) ToggleVisibility(ctx context.Context, id, requesterID string) error {
	sub, err := s.subs.GetSubmission(ctx, id)
	if err != nil {
		return err
	}

	if !sub.Owned(requesterID) {
		return ErrNotOwner
	}

	return s.subs.SetVisibility(ctx, id, !sub.IsPublic)
}

// DeleteSubmission удаляет запись вместе с файлом изображения.
// Разрешено только владельцу. Строка удаляется первой; если файл
// удалить не вышло, оставляем его скану сирот и логируем.
func (s *Service) DeleteSubmission(ctx context.Context, id, requesterID string) error {
	sub, err := s.subs.GetSubmission(ctx, id)
	if err != nil {
		return err
	}

	if !sub.Owned(requesterID) {
		return ErrNotOwner
	}

	if err := s.subs.DeleteSubmission(ctx, id); err != nil {
		return err
	}

	if sub.ImageRef != "" {
		if err := s.images.Delete(ctx, sub.ImageRef); err != nil && !errors.Is(err, ErrImageNotFound) {
			s.logger.ErrorContext(ctx, "failed to delete image file, orphan left behind",
				slog.String("submission_id", id),
				slog.String("ref", sub.ImageRef),
				slog.Any("error", err))
		}
	}

	s.logger.InfoContext(ctx, "submission deleted",
		slog.String("submission_id", id),
		slog.String("requester_id", requesterID))

	return nil
}

// MarkVerified выставляет флаг модерации.
// Вызывается только доверенным процессом, не владельцем.
func (s *Service) MarkVerified(ctx context.Context, id string) error {
	return s.subs.MarkVerified(ctx, id)
}

// RandomSubmission возвращает случайную запись для "Submission of the Day"
func (s *Service) RandomSubmission(ctx context.Context) (*models.Submission, error) {
	return s.subs.RandomSubmission(ctx)
}

// Stats возвращает счетчики для сайдбара статистики
func (s *Service) Stats(ctx context.Context) (*models.Stats, error) {
	return s.subs.Stats(ctx)
}

// ReconcileOrphans удаляет из каталога файлы, на которые не ссылается
// ни одна живая строка. Файлы моложе OrphanGracePeriod не трогаем:
// их строка может быть еще в полете.
func (s *Service) ReconcileOrphans(ctx context.Context) (int, error) {
	refs, err := s.subs.ListImageRefs(ctx)
	if err != nil {
		return 0, err
	}

	live := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		live[ref] = struct{}{}
	}

	files, err := s.images.List(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	cutoff := time.Now().Add(-OrphanGracePeriod)

	for _, f := range files {
		if _, ok := live[f.Ref]; ok {
			continue
		}
		if f.ModTime.After(cutoff) {
			continue
		}

		if err := s.images.Delete(ctx, f.Ref); err != nil {
			if errors.Is(err, ErrImageNotFound) {
				continue
			}
			s.logger.WarnContext(ctx, "failed to remove orphan image",
				slog.String("ref", f.Ref),
				slog.Any("error", err))
			continue
		}

		s.logger.InfoContext(ctx, "orphan image removed", slog.String("ref", f.Ref))
		removed++
	}

	return removed, nil
}
