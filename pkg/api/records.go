package api

// Record представляет запись диалектного слова в удаленном корпусе
type Record struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`         // диалектное слово
	Description  string   `json:"description"`   // свободное описание
	LocationText string   `json:"location_text"` // название места
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	MediaType    string   `json:"media_type"` // "text", "image" или "audio"
	FileURL      string   `json:"file_url,omitempty"`
	Language     string   `json:"language,omitempty"`
	CategoryID   string   `json:"category_id,omitempty"`
	UserID       string   `json:"user_id,omitempty"`
	Reviewed     bool     `json:"reviewed"`   // прошла ли запись модерацию
	CreatedAt    string   `json:"created_at"` // ISO8601, как отдает сервис
}

// CreateRecordRequest представляет запрос на создание записи
type CreateRecordRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	LocationText  string   `json:"location_text"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	MediaType     string   `json:"media_type"`
	Language      string   `json:"language,omitempty"`
	CategoryID    string   `json:"category_id,omitempty"`
	ReleaseRights string   `json:"release_rights,omitempty"`
}

// UpdateRecordRequest представляет полное обновление записи (PUT)
type UpdateRecordRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	LocationText string   `json:"location_text"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	CategoryID   string   `json:"category_id,omitempty"`
}

// PatchRecordRequest представляет частичное обновление записи (PATCH).
// nil поля не отправляются.
type PatchRecordRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	CategoryID  *string  `json:"category_id,omitempty"`
}

// RecordList представляет список записей, как его отдает сервис
type RecordList struct {
	Records []Record `json:"records"`
	Total   int      `json:"total,omitempty"`
}

// ContributionList представляет вклад пользователя
type ContributionList struct {
	Contributions []Record `json:"contributions"`
}

// CreateRecordResponse представляет ответ на создание записи
type CreateRecordResponse struct {
	ID      string `json:"id"`
	Message string `json:"message,omitempty"`
}
