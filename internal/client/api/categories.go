package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ahjin-guild/dialectmap/internal/client/session"
	pkgapi "github.com/ahjin-guild/dialectmap/pkg/api"
)

// ListCategories возвращает все категории корпуса
func (c *Client) ListCategories(ctx context.Context, sess *session.Session) ([]pkgapi.Category, error) {
	var resp []pkgapi.Category
	if err := c.doRequest(ctx, http.MethodGet, "/categories/", sess.Token(), nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("list categories failed: %w", err)
	}
	return resp, nil
}

// GetCategory возвращает одну категорию по ID
func (c *Client) GetCategory(ctx context.Context, sess *session.Session, id string) (*pkgapi.Category, error) {
	var resp pkgapi.Category
	if err := c.doRequest(ctx, http.MethodGet, "/categories/"+id, sess.Token(), nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("get category failed: %w", err)
	}
	return &resp, nil
}

// CreateCategory создает новую категорию (требует административных прав)
func (c *Client) CreateCategory(ctx context.Context, sess *session.Session, req pkgapi.CreateCategoryRequest) (*pkgapi.Category, error) {
	var resp pkgapi.Category
	if err := c.doRequest(ctx, http.MethodPost, "/categories/", sess.Token(), nil, req, &resp); err != nil {
		return nil, fmt.Errorf("create category failed: %w", err)
	}
	return &resp, nil
}

// UpdateCategory частично обновляет категорию
func (c *Client) UpdateCategory(ctx context.Context, sess *session.Session, id string, req pkgapi.UpdateCategoryRequest) (*pkgapi.Category, error) {
	var resp pkgapi.Category
	if err := c.doRequest(ctx, http.MethodPut, "/categories/"+id, sess.Token(), nil, req, &resp); err != nil {
		return nil, fmt.Errorf("update category failed: %w", err)
	}
	return &resp, nil
}

// DeleteCategory удаляет категорию
func (c *Client) DeleteCategory(ctx context.Context, sess *session.Session, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/categories/"+id, sess.Token(), nil, nil, nil); err != nil {
		return fmt.Errorf("delete category failed: %w", err)
	}
	return nil
}
