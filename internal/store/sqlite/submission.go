package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ahjin-guild/dialectmap/internal/models"
	"github.com/ahjin-guild/dialectmap/internal/store"
)

const submissionColumns = `id, owner_id, word, location_text, latitude, longitude, image_ref, is_public, is_verified, created_at`

// InsertSubmission inserts a new submission row
func (s *Storage) InsertSubmission(ctx context.Context, sub *models.Submission) error {
	query := `
		INSERT INTO submissions (` + submissionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		sub.ID,
		sub.OwnerID,
		sub.Word,
		sub.LocationText,
		sub.Latitude,
		sub.Longitude,
		sub.ImageRef,
		sub.IsPublic,
		sub.IsVerified,
		sub.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	return nil
}

// scanSubmission читает одну строку submissions c nullable колонками
func scanSubmission(row interface{ Scan(...any) error }) (*models.Submission, error) {
	sub := &models.Submission{}
	var ownerID sql.NullString
	var lat, lon sql.NullFloat64

	err := row.Scan(
		&sub.ID,
		&ownerID,
		&sub.Word,
		&sub.LocationText,
		&lat,
		&lon,
		&sub.ImageRef,
		&sub.IsPublic,
		&sub.IsVerified,
		&sub.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if ownerID.Valid {
		sub.OwnerID = &ownerID.String
	}
	if lat.Valid {
		sub.Latitude = &lat.Float64
	}
	if lon.Valid {
		sub.Longitude = &lon.Float64
	}

	return sub, nil
}

// GetSubmission retrieves submission by ID
func (s *Storage) GetSubmission(ctx context.Context, id string) (*models.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE id = ?`

	sub, err := scanSubmission(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return sub, nil
}

// UpdateCoordinates sets latitude/longitude of a submission
func (s *Storage) UpdateCoordinates(ctx context.Context, id string, lat, lon float64) error {
	query := `UPDATE submissions SET latitude = ?, longitude = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, lat, lon, id)
	if err != nil {
		return fmt.Errorf("failed to update coordinates: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return store.ErrSubmissionNotFound
	}

	return nil
}

// SetVisibility sets the is_public flag
func (s *Storage) SetVisibility(ctx context.Context, id string, isPublic bool) error {
	query := `UPDATE submissions SET is_public = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, isPublic, id)
	if err != nil {
		return fmt.Errorf("failed to set visibility: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return store.ErrSubmissionNotFound
	}

	return nil
}

// MarkVerified sets is_verified to true
// Обратного перехода нет: флаг снимается только удалением записи
func (s *Storage) MarkVerified(ctx context.Context, id string) error {
	query := `UPDATE submissions SET is_verified = 1 WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark verified: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return store.ErrSubmissionNotFound
	}

	return nil
}

// DeleteSubmission removes the row
func (s *Storage) DeleteSubmission(ctx context.Context, id string) error {
	query := `DELETE FROM submissions WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return store.ErrSubmissionNotFound
	}

	return nil
}

// ListSubmissions returns rows matching the filter, newest first
func (s *Storage) ListSubmissions(ctx context.Context, filter store.SubmissionFilter) ([]models.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions`
	var args []any

	switch {
	case filter.PublicOnly:
		query += ` WHERE is_public = 1`
	case filter.OwnerID != nil:
		// Публичные записи плюс все записи владельца, включая приватные
		query += ` WHERE is_public = 1 OR owner_id = ?`
		args = append(args, *filter.OwnerID)
	default:
		// Все записи. Административный путь, доступ ограничивает вызывающий.
	}

	query += ` ORDER BY created_at DESC, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var subs []models.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		subs = append(subs, *sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate submissions: %w", err)
	}

	return subs, nil
}

// ListImageRefs returns all non-empty image references of live rows
func (s *Storage) ListImageRefs(ctx context.Context) ([]string, error) {
	query := `SELECT image_ref FROM submissions WHERE image_ref != ''`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list image refs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var refs []string
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, fmt.Errorf("failed to scan image ref: %w", err)
		}
		refs = append(refs, ref)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate image refs: %w", err)
	}

	return refs, nil
}

// RandomSubmission returns one random row
func (s *Storage) RandomSubmission(ctx context.Context) (*models.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions ORDER BY RANDOM() LIMIT 1`

	sub, err := scanSubmission(s.db.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get random submission: %w", err)
	}

	return sub, nil
}

// Stats returns aggregate counters over all rows
func (s *Storage) Stats(ctx context.Context) (*models.Stats, error) {
	query := `SELECT COUNT(*), COUNT(DISTINCT location_text) FROM submissions`

	stats := &models.Stats{}
	err := s.db.QueryRowContext(ctx, query).Scan(&stats.Total, &stats.UniqueLocations)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}
