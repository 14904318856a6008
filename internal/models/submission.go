package models

import "time"

// Submission представляет одну запись диалектного слова:
// само слово, место, где его так называют, и опционально фотография
type Submission struct {
	ID           string    `json:"id"`            // UUID записи
	OwnerID      *string   `json:"owner_id"`      // ID владельца, nil для анонимных/старых записей
	Word         string    `json:"word"`          // диалектное слово
	LocationText string    `json:"location_text"` // название места как его ввел пользователь
	Latitude     *float64  `json:"latitude"`      // координаты, nil пока геокодирование не прошло
	Longitude    *float64  `json:"longitude"`
	ImageRef     string    `json:"image_ref"`   // имя файла изображения в каталоге картинок, "" если без фото
	IsPublic     bool      `json:"is_public"`   // видимость для всех, по умолчанию true
	IsVerified   bool      `json:"is_verified"` // флаг модерации, выставляется только доверенным процессом
	CreatedAt    time.Time `json:"created_at"`  // время создания, не меняется
}

// Owned reports whether the submission belongs to the given user.
// Записи без владельца не принадлежат никому.
func (s *Submission) Owned(userID string) bool {
	return s.OwnerID != nil && *s.OwnerID == userID
}

// Stats агрегированная статистика по локальному хранилищу
// для сайдбара "Project Stats"
type Stats struct {
	Total           int `json:"total"`            // всего записей
	UniqueLocations int `json:"unique_locations"` // уникальных мест
}
