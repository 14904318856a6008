package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ahjin-guild/dialectmap/internal/client/session"
	pkgapi "github.com/ahjin-guild/dialectmap/pkg/api"
)

// RecordFilters параметры поиска по записям корпуса
type RecordFilters struct {
	Query      string // полнотекстовый поиск
	CategoryID string
	Limit      int // 0 — лимит сервиса по умолчанию
}

// query собирает url.Values, пустые поля опускаются
func (f RecordFilters) query() url.Values {
	q := url.Values{}
	if f.Query != "" {
		q.Set("q", f.Query)
	}
	if f.CategoryID != "" {
		q.Set("category_id", f.CategoryID)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

// ListRecords возвращает записи корпуса согласно фильтрам
func (c *Client) ListRecords(ctx context.Context, sess *session.Session, filters RecordFilters) (*pkgapi.RecordList, error) {
	var resp pkgapi.RecordList
	if err := c.doRequest(ctx, http.MethodGet, "/records/", sess.Token(), filters.query(), nil, &resp); err != nil {
		return nil, fmt.Errorf("list records failed: %w", err)
	}
	return &resp, nil
}

// GetRecord возвращает одну запись по ID
func (c *Client) GetRecord(ctx context.Context, sess *session.Session, id string) (*pkgapi.Record, error) {
	var resp pkgapi.Record
	if err := c.doRequest(ctx, http.MethodGet, "/records/"+id, sess.Token(), nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("get record failed: %w", err)
	}
	return &resp, nil
}

// CreateRecord создает новую запись в корпусе
func (c *Client) CreateRecord(ctx context.Context, sess *session.Session, req pkgapi.CreateRecordRequest) (*pkgapi.CreateRecordResponse, error) {
	var resp pkgapi.CreateRecordResponse
	if err := c.doRequest(ctx, http.MethodPost, "/records/", sess.Token(), nil, req, &resp); err != nil {
		return nil, fmt.Errorf("create record failed: %w", err)
	}
	return &resp, nil
}

// UpdateRecord полностью обновляет запись (PUT)
func (c *Client) UpdateRecord(ctx context.Context, sess *session.Session, id string, req pkgapi.UpdateRecordRequest) (*pkgapi.MessageResponse, error) {
	var resp pkgapi.MessageResponse
	if err := c.doRequest(ctx, http.MethodPut, "/records/"+id, sess.Token(), nil, req, &resp); err != nil {
		return nil, fmt.Errorf("update record failed: %w", err)
	}
	return &resp, nil
}

// PatchRecord частично обновляет запись, nil поля не трогаются
func (c *Client) PatchRecord(ctx context.Context, sess *session.Session, id string, req pkgapi.PatchRecordRequest) (*pkgapi.MessageResponse, error) {
	var resp pkgapi.MessageResponse
	if err := c.doRequest(ctx, http.MethodPatch, "/records/"+id, sess.Token(), nil, req, &resp); err != nil {
		return nil, fmt.Errorf("patch record failed: %w", err)
	}
	return &resp, nil
}

// DeleteRecord удаляет запись из корпуса
func (c *Client) DeleteRecord(ctx context.Context, sess *session.Session, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/records/"+id, sess.Token(), nil, nil, nil); err != nil {
		return fmt.Errorf("delete record failed: %w", err)
	}
	return nil
}

// SearchNearby возвращает записи в радиусе radiusKm от точки
func (c *Client) SearchNearby(ctx context.Context, sess *session.Session, lat, lon, radiusKm float64) (*pkgapi.RecordList, error) {
	q := url.Values{}
	q.Set("latitude", formatFloat(lat))
	q.Set("longitude", formatFloat(lon))
	q.Set("radius_km", formatFloat(radiusKm))

	var resp pkgapi.RecordList
	if err := c.doRequest(ctx, http.MethodGet, "/records/search/nearby", sess.Token(), q, nil, &resp); err != nil {
		return nil, fmt.Errorf("search nearby failed: %w", err)
	}
	return &resp, nil
}

// SearchBBox возвращает записи внутри географического прямоугольника
func (c *Client) SearchBBox(ctx context.Context, sess *session.Session, minLat, minLon, maxLat, maxLon float64) (*pkgapi.RecordList, error) {
	q := url.Values{}
	q.Set("min_lat", formatFloat(minLat))
	q.Set("min_lon", formatFloat(minLon))
	q.Set("max_lat", formatFloat(maxLat))
	q.Set("max_lon", formatFloat(maxLon))

	var resp pkgapi.RecordList
	if err := c.doRequest(ctx, http.MethodGet, "/records/search/bbox", sess.Token(), q, nil, &resp); err != nil {
		return nil, fmt.Errorf("search bbox failed: %w", err)
	}
	return &resp, nil
}

// GetUserContributions возвращает вклад пользователя.
// userID пустой — берем ID текущего пользователя из сессии.
func (c *Client) GetUserContributions(ctx context.Context, sess *session.Session, userID string) (*pkgapi.ContributionList, error) {
	if userID == "" {
		info := sess.UserInfo()
		if info == nil {
			current, err := c.GetCurrentUser(ctx, sess)
			if err != nil {
				return nil, err
			}
			info = current
		}
		userID = info.ID
	}

	var resp pkgapi.ContributionList
	if err := c.doRequest(ctx, http.MethodGet, "/users/"+userID+"/contributions", sess.Token(), nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("get user contributions failed: %w", err)
	}
	return &resp, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
