package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/ahjin-guild/dialectmap/internal/client/session"
	pkgapi "github.com/ahjin-guild/dialectmap/pkg/api"
)

// ChunkSize размер одного chunk при загрузке файлов
const ChunkSize = 1 << 20 // 1 MiB

// UploadFile загружает файл на сервис по частям.
//
// Файл режется на chunks по ChunkSize байт, каждый уходит отдельным
// multipart POST строго по порядку, все под одним upload_uuid. После
// последнего chunk один finalize вызов собирает файл и привязывает его
// к записи recordID. Любая ошибка chunk обрывает загрузку без finalize
// и возвращается как *ChunkUploadError с номером неудачного chunk.
func (c *Client) UploadFile(ctx context.Context, sess *session.Session, recordID, filename string, data []byte) (*pkgapi.UploadResponse, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("upload: empty file %q", filename)
	}

	totalChunks := (len(data) + ChunkSize - 1) / ChunkSize
	uploadUUID := uuid.New().String()

	for index := 0; index < totalChunks; index++ {
		start := index * ChunkSize
		end := start + ChunkSize
		if end > len(data) {
			end = len(data)
		}

		err := c.uploadChunk(ctx, sess, chunkParams{
			uploadUUID:  uploadUUID,
			filename:    filename,
			index:       index,
			totalChunks: totalChunks,
			payload:     data[start:end],
		})
		if err != nil {
			return nil, &ChunkUploadError{Err: err, Index: index, Total: totalChunks}
		}
	}

	return c.finalizeUpload(ctx, sess, uploadUUID, recordID, filename, totalChunks)
}

type chunkParams struct {
	uploadUUID  string
	filename    string
	payload     []byte
	index       int
	totalChunks int
}

// uploadChunk отправляет один chunk
func (c *Client) uploadChunk(ctx context.Context, sess *session.Session, p chunkParams) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(pkgapi.FieldChunk, p.filename)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(p.payload); err != nil {
		return fmt.Errorf("failed to write chunk payload: %w", err)
	}

	fields := map[string]string{
		pkgapi.FieldFilename:    p.filename,
		pkgapi.FieldChunkIndex:  strconv.Itoa(p.index),
		pkgapi.FieldTotalChunks: strconv.Itoa(p.totalChunks),
		pkgapi.FieldUploadUUID:  p.uploadUUID,
	}
	if err := writeFields(w, fields); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close multipart writer: %w", err)
	}

	var resp pkgapi.ChunkResponse
	return c.doMultipart(ctx, "/records/upload/chunk", sess.Token(), w.FormDataContentType(), &buf, &resp)
}

// finalizeUpload собирает загруженные chunks в файл записи
func (c *Client) finalizeUpload(ctx context.Context, sess *session.Session, uploadUUID, recordID, filename string, totalChunks int) (*pkgapi.UploadResponse, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		pkgapi.FieldFilename:    filename,
		pkgapi.FieldTotalChunks: strconv.Itoa(totalChunks),
		pkgapi.FieldUploadUUID:  uploadUUID,
		pkgapi.FieldRecordID:    recordID,
	}
	if err := writeFields(w, fields); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	var resp pkgapi.UploadResponse
	if err := c.doMultipart(ctx, "/records/upload", sess.Token(), w.FormDataContentType(), &buf, &resp); err != nil {
		return nil, fmt.Errorf("finalize upload failed: %w", err)
	}
	return &resp, nil
}

// doMultipart выполняет один multipart POST
func (c *Client) doMultipart(ctx context.Context, path, token, contentType string, body *bytes.Buffer, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiPrefix+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	c.setCommonHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	return decodeResponse(resp, result)
}

func writeFields(w *multipart.Writer, fields map[string]string) error {
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}
	return nil
}
