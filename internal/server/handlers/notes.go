package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/gophnotes/internal/server/storage"
	"github.com/iudanet/gophnotes/internal/validation"
	"github.com/iudanet/gophnotes/pkg/api"
)

// maxRequestBody верхняя граница тела запроса: текст заметки плюс JSON обвязка
const maxRequestBody = validation.MaxBodyBytes + 64<<10

// NotesHandler handles note CRUD requests
type NotesHandler struct {
	logger  *slog.Logger
	storage storage.NoteStorage
}

// NewNotesHandler creates a new notes handler
func NewNotesHandler(logger *slog.Logger, storage storage.NoteStorage) *NotesHandler {
	return &NotesHandler{
		logger:  logger,
		storage: storage,
	}
}

// Register подключает маршруты заметок к mux
func (h *NotesHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/notes", h.Create)
	mux.HandleFunc("GET /api/v1/notes", h.List)
	mux.HandleFunc("GET /api/v1/notes/{id}", h.Get)
	mux.HandleFunc("PUT /api/v1/notes/{id}", h.Put)
	mux.HandleFunc("DELETE /api/v1/notes/{id}", h.Delete)
}

// Create обрабатывает POST /api/v1/notes
// 201 с сохраненной заметкой, 409 если ID уже занят
func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	note, ok := h.decodeNote(w, r)
	if !ok {
		return
	}

	if err := validation.ValidateNote(note.ID, note.Title, note.Body, note.UpdatedAt); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.storage.CreateNote(r.Context(), note); err != nil {
		if errors.Is(err, storage.ErrNoteExists) {
			sendError(h.logger, w, "note already exists", http.StatusConflict)
			return
		}
		h.logger.Error("Failed to create note", "note_id", note.ID, "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("Note created", "note_id", note.ID)
	sendJSON(h.logger, w, note, http.StatusCreated)
}

// Put обрабатывает PUT /api/v1/notes/{id}
// Upsert по last-writer-wins; в ответе всегда версия, которая хранится на сервере
func (h *NotesHandler) Put(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	note, ok := h.decodeNote(w, r)
	if !ok {
		return
	}

	// ID в теле необязателен, но если указан, должен совпадать с путем
	if note.ID == "" {
		note.ID = id
	}
	if note.ID != id {
		sendError(h.logger, w, "id in body does not match path", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateNote(note.ID, note.Title, note.Body, note.UpdatedAt); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	stored, applied, err := h.storage.UpsertNote(r.Context(), note)
	if err != nil {
		h.logger.Error("Failed to upsert note", "note_id", id, "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if applied {
		h.logger.Info("Note saved", "note_id", id)
	} else {
		h.logger.Debug("Stored note is newer, update ignored", "note_id", id)
	}
	sendJSON(h.logger, w, stored, http.StatusOK)
}

// Get обрабатывает GET /api/v1/notes/{id}
func (h *NotesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	note, err := h.storage.GetNote(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNoteNotFound) {
			sendError(h.logger, w, "note not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get note", "note_id", id, "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, note, http.StatusOK)
}

// List обрабатывает GET /api/v1/notes
// Заметки упорядочены по updatedAt, новые первыми
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.storage.ListNotes(r.Context())
	if err != nil {
		h.logger.Error("Failed to list notes", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, notes, http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/notes/{id}
// 204 при успехе, 404 если заметки нет
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.storage.DeleteNote(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNoteNotFound) {
			sendError(h.logger, w, "note not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to delete note", "note_id", id, "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("Note deleted", "note_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// decodeNote читает заметку из тела запроса; при ошибке ответ уже отправлен
func (h *NotesHandler) decodeNote(w http.ResponseWriter, r *http.Request) (*api.Note, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var note api.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendError(h.logger, w, "request body too large", http.StatusRequestEntityTooLarge)
			return nil, false
		}
		h.logger.Warn("Invalid note payload", "error", err)
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return nil, false
	}

	return &note, true
}
