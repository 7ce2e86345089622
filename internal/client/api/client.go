package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/gophnotes/internal/models"
	"github.com/iudanet/gophnotes/pkg/api"
)

// ClientAPI описывает удаленный сервис заметок.
// Каждый вызов - один HTTP запрос без повторов.
type ClientAPI interface {
	CreateNote(ctx context.Context, note *models.Note) error
	UpdateNote(ctx context.Context, note *models.Note) error
	DeleteNote(ctx context.Context, id string) error
	ListNotes(ctx context.Context) ([]api.Note, error)
	Health(ctx context.Context) error
}

const defaultTimeout = 30 * time.Second

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return NewClientWithTimeout(baseURL, defaultTimeout)
}

// NewClientWithTimeout создает API клиент с заданным таймаутом запроса
func NewClientWithTimeout(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// CreateNote создает заметку на сервере. Сервер отвечает 409, если ID уже занят.
func (c *Client) CreateNote(ctx context.Context, note *models.Note) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/notes", ToAPINote(note), nil); err != nil {
		return fmt.Errorf("create note request failed: %w", err)
	}
	return nil
}

// UpdateNote отправляет заметку на сервер (upsert по ID).
// Повторный вызов с тем же содержимым безопасен.
func (c *Client) UpdateNote(ctx context.Context, note *models.Note) error {
	path := "/api/v1/notes/" + url.PathEscape(note.ID)
	if err := c.doRequest(ctx, http.MethodPut, path, ToAPINote(note), nil); err != nil {
		return fmt.Errorf("update note request failed: %w", err)
	}
	return nil
}

// DeleteNote удаляет заметку на сервере. Отсутствие заметки (404) считается успехом.
func (c *Client) DeleteNote(ctx context.Context, id string) error {
	err := c.doRequest(ctx, http.MethodDelete, "/api/v1/notes/"+url.PathEscape(id), nil, nil)
	if err != nil && !IsRejected(err, http.StatusNotFound) {
		return fmt.Errorf("delete note request failed: %w", err)
	}
	return nil
}

// ListNotes получает все заметки сервера
func (c *Client) ListNotes(ctx context.Context) ([]api.Note, error) {
	var notes []api.Note
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/notes", nil, &notes); err != nil {
		return nil, fmt.Errorf("list notes request failed: %w", err)
	}
	return notes, nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) error {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, &resp); err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %w", ErrNetwork, err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rejected := &RejectedError{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && (errResp.Message != "" || errResp.Error != "") {
			rejected.Message = errResp.Message
			if rejected.Message == "" {
				rejected.Message = errResp.Error
			}
		} else {
			rejected.Message = strings.TrimSpace(string(respBody))
		}
		return rejected
	}

	// Декодируем успешный ответ
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// ToAPINote конвертирует заметку в формат обмена с сервером
func ToAPINote(note *models.Note) api.Note {
	return api.Note{
		ID:        note.ID,
		Title:     note.Title,
		Body:      note.Body,
		UpdatedAt: note.UpdatedAt,
	}
}
