package api

import "time"

// Note представляет заметку в формате обмена с сервером
type Note struct {
	UpdatedAt time.Time `json:"updatedAt"` // время последнего изменения на клиенте (LWW)
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
