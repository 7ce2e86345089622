package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNoteID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		errMsg  string
		wantErr bool
	}{
		{
			name: "valid uuid",
			id:   "b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5",
		},
		{
			name: "valid short id with underscore",
			id:   "note_1",
		},
		{
			name:    "empty",
			id:      "",
			wantErr: true,
			errMsg:  "cannot be empty",
		},
		{
			name:    "too long",
			id:      strings.Repeat("a", MaxNoteIDLen+1),
			wantErr: true,
			errMsg:  "must not exceed",
		},
		{
			name:    "slash breaks the path",
			id:      "a/b",
			wantErr: true,
			errMsg:  "can only contain",
		},
		{
			name:    "spaces",
			id:      "my note",
			wantErr: true,
			errMsg:  "can only contain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNoteID(tt.id)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateNote(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// Пустые заголовок и текст допустимы
	assert.NoError(t, ValidateNote("n1", "", "", now))

	// Лимит заголовка считается в символах, не в байтах
	assert.NoError(t, ValidateNote("n1", strings.Repeat("я", MaxTitleLen), "", now))
	assert.Error(t, ValidateNote("n1", strings.Repeat("я", MaxTitleLen+1), "", now))

	err := ValidateNote("n1", "t", strings.Repeat("x", MaxBodyBytes+1), now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "body")

	err = ValidateNote("n1", "t", "b", time.Time{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "updatedAt is required")

	err = ValidateNote("", "t", "b", now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id")
}
