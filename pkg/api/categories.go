package api

// Category представляет категорию записей корпуса
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`        // машинное имя, например "dialect_words"
	Title       string `json:"title"`       // отображаемый заголовок
	Description string `json:"description"` // описание категории
	Published   bool   `json:"published"`   // опубликована ли категория
	Rank        int    `json:"rank"`        // порядок сортировки
}

// CreateCategoryRequest представляет запрос на создание категории
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Published   bool   `json:"published"`
	Rank        int    `json:"rank"`
}

// UpdateCategoryRequest представляет частичное обновление категории.
// nil поля не отправляются и остаются без изменений.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Published   *bool   `json:"published,omitempty"`
	Rank        *int    `json:"rank,omitempty"`
}
