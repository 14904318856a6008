package api

import (
	"encoding/json"
	"fmt"

	pkgapi "github.com/ahjin-guild/dialectmap/pkg/api"
)

// serverError превращает не-2xx ответ в ошибку.
// Сервис обычно отдает JSON с message или detail; если тело не JSON,
// показываем его как есть.
func serverError(statusCode int, body []byte) error {
	var errResp pkgapi.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Text() != "" {
		return fmt.Errorf("server error (%d): %s", statusCode, errResp.Text())
	}
	return fmt.Errorf("request failed with status %d: %s", statusCode, string(body))
}

// ChunkUploadError сообщает, какой именно chunk не загрузился.
// После такой ошибки finalize не вызывается — на сервере остаются
// только уже принятые chunks с этим upload_uuid.
type ChunkUploadError struct {
	Err   error
	Index int // номер неудачного chunk, с нуля
	Total int
}

func (e *ChunkUploadError) Error() string {
	return fmt.Sprintf("chunk %d of %d failed: %v", e.Index, e.Total, e.Err)
}

func (e *ChunkUploadError) Unwrap() error {
	return e.Err
}
