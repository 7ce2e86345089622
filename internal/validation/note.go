package validation

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"
)

// NoteIDPattern определяет допустимый формат ID заметки
// Латинские буквы, цифры, дефис и подчеркивание; UUID подходит под шаблон
var NoteIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

const (
	// MaxNoteIDLen максимальная длина ID
	MaxNoteIDLen = 64
	// MaxTitleLen максимальная длина заголовка в символах
	MaxTitleLen = 512
	// MaxBodyBytes максимальный размер текста заметки
	MaxBodyBytes = 1 << 20
)

// ValidateNoteID проверяет, что ID можно использовать в пути запроса и как ключ
func ValidateNoteID(id string) error {
	if id == "" {
		return fmt.Errorf("id cannot be empty")
	}

	if len(id) > MaxNoteIDLen {
		return fmt.Errorf("id must not exceed %d characters", MaxNoteIDLen)
	}

	if !NoteIDPattern.MatchString(id) {
		return fmt.Errorf("id can only contain letters, numbers, '-' and '_'")
	}

	return nil
}

// ValidateNote проверяет содержимое заметки, пришедшей от клиента
func ValidateNote(id, title, body string, updatedAt time.Time) error {
	if err := ValidateNoteID(id); err != nil {
		return err
	}

	if utf8.RuneCountInString(title) > MaxTitleLen {
		return fmt.Errorf("title must not exceed %d characters", MaxTitleLen)
	}

	if len(body) > MaxBodyBytes {
		return fmt.Errorf("body must not exceed %d bytes", MaxBodyBytes)
	}

	if updatedAt.IsZero() {
		return fmt.Errorf("updatedAt is required")
	}

	return nil
}
