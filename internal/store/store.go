package store

import (
	"context"
	"time"

	"github.com/ahjin-guild/dialectmap/internal/models"
)

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage
	// Returns ErrUserAlreadyExists if username is taken
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves user by username
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// UpdatePassword replaces the stored password hash
	// Returns ErrUserNotFound if user doesn't exist
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

// SubmissionFilter controls which rows ListSubmissions returns.
// PublicOnly=true — только публичные записи, OwnerID игнорируется.
// PublicOnly=false + OwnerID — публичные плюс все записи владельца.
// PublicOnly=false без OwnerID — все записи; доступ ограничивает вызывающий.
type SubmissionFilter struct {
	OwnerID    *string
	PublicOnly bool
}

// SubmissionStorage defines interface for submission rows persistence
type SubmissionStorage interface {
	// InsertSubmission inserts a new submission row
	InsertSubmission(ctx context.Context, sub *models.Submission) error

	// GetSubmission retrieves submission by ID
	// Returns ErrSubmissionNotFound if it doesn't exist
	GetSubmission(ctx context.Context, id string) (*models.Submission, error)

	// UpdateCoordinates sets latitude/longitude of a submission
	// Returns ErrSubmissionNotFound if it doesn't exist
	UpdateCoordinates(ctx context.Context, id string, lat, lon float64) error

	// SetVisibility sets the is_public flag
	SetVisibility(ctx context.Context, id string, isPublic bool) error

	// MarkVerified sets is_verified to true; the flag never goes back
	MarkVerified(ctx context.Context, id string) error

	// DeleteSubmission removes the row
	DeleteSubmission(ctx context.Context, id string) error

	// ListSubmissions returns rows matching the filter, newest first
	ListSubmissions(ctx context.Context, filter SubmissionFilter) ([]models.Submission, error)

	// ListImageRefs returns all non-empty image references of live rows
	ListImageRefs(ctx context.Context) ([]string, error)

	// RandomSubmission returns one random row ("submission of the day")
	// Returns ErrSubmissionNotFound if the table is empty
	RandomSubmission(ctx context.Context) (*models.Submission, error)

	// Stats returns aggregate counters over all rows
	Stats(ctx context.Context) (*models.Stats, error)
}

// ImageFileInfo описывает один файл в каталоге изображений
type ImageFileInfo struct {
	Ref     string    // имя файла, оно же image_ref в базе
	ModTime time.Time // время последней записи
}

// ImageStore defines interface for the per-submission image files
type ImageStore interface {
	// Save writes image bytes and returns the reference to store in the row
	Save(ctx context.Context, submissionID string, data []byte) (string, error)

	// Read returns image bytes by reference
	// Returns ErrImageNotFound if the file is missing
	Read(ctx context.Context, ref string) ([]byte, error)

	// Delete removes the image file
	Delete(ctx context.Context, ref string) error

	// List returns every file currently in the image directory
	List(ctx context.Context) ([]ImageFileInfo, error)
}
