package api

// Multipart form field names of the chunked upload protocol.
// Каждый chunk уходит отдельным POST с этими полями,
// finalize несет те же поля кроме самого chunk.
const (
	FieldChunk       = "chunk"
	FieldFilename    = "filename"
	FieldChunkIndex  = "chunk_index"
	FieldTotalChunks = "total_chunks"
	FieldUploadUUID  = "upload_uuid"
	FieldRecordID    = "record_id"
)

// ChunkResponse представляет ответ сервиса на загрузку одного chunk
type ChunkResponse struct {
	Message    string `json:"message,omitempty"`
	ChunkIndex int    `json:"chunk_index,omitempty"`
}

// UploadResponse представляет ответ на finalize: файл собран
// из chunks и привязан к записи
type UploadResponse struct {
	Message  string `json:"message,omitempty"`
	FileURL  string `json:"file_url,omitempty"`
	RecordID string `json:"record_id,omitempty"`
}
