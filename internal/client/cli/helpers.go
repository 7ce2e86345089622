package cli

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iudanet/gophnotes/internal/client/notes"
	"github.com/iudanet/gophnotes/internal/models"
)

// Output format constants.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormats lists all valid output formats.
var ValidFormats = []string{FormatText, FormatJSON, FormatYAML}

func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

type noteView struct {
	UpdatedAt time.Time  `json:"updated_at" yaml:"updated_at"`
	SyncedAt  *time.Time `json:"synced_at,omitempty" yaml:"synced_at,omitempty"`
	ID        string     `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Body      string     `json:"body" yaml:"body"`
	State     string     `json:"sync_state" yaml:"sync_state"`
	Error     string     `json:"sync_error,omitempty" yaml:"sync_error,omitempty"`
}

func newNoteView(n *models.Note) noteView {
	return noteView{
		ID:        n.ID,
		Title:     n.Title,
		Body:      n.Body,
		State:     string(n.SyncState),
		Error:     n.SyncError,
		UpdatedAt: n.UpdatedAt.UTC(),
		SyncedAt:  utcPtr(n.SyncedAt),
	}
}

type statusView struct {
	LastSync *time.Time `json:"last_sync,omitempty" yaml:"last_sync,omitempty"`
	State    string     `json:"state" yaml:"state"`
	Error    string     `json:"error,omitempty" yaml:"error,omitempty"`
	Unsynced []noteView `json:"unsynced,omitempty" yaml:"unsynced,omitempty"`
	Notes    int        `json:"notes" yaml:"notes"`
	Pending  int        `json:"pending" yaml:"pending"`
	Online   bool       `json:"online" yaml:"online"`
}

func newStatusView(snap notes.Snapshot, pending int) statusView {
	v := statusView{
		State:    string(snap.Status.State),
		Error:    snap.Status.Error,
		LastSync: utcPtr(snap.Status.LastSync),
		Notes:    len(snap.Notes),
		Pending:  pending,
		Online:   snap.Online,
	}
	for _, n := range snap.Notes {
		if n.SyncState != models.SyncStateSynced {
			v.Unsynced = append(v.Unsynced, newNoteView(n))
		}
	}
	return v
}

type syncView struct {
	Attempted int  `json:"attempted" yaml:"attempted"`
	Synced    int  `json:"synced" yaml:"synced"`
	Failed    int  `json:"failed" yaml:"failed"`
	Stale     int  `json:"stale" yaml:"stale"`
	Deleted   int  `json:"deleted" yaml:"deleted"`
	Skipped   bool `json:"skipped" yaml:"skipped"`
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// formatTime печатает метку в UTC, чтобы вывод не зависел от часового пояса
func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "never"
	}
	return t.UTC().Format(time.RFC3339)
}

// preview обрезает текст до n символов для списка
func preview(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

var templateFuncs = template.FuncMap{
	"time":    func(t time.Time) string { return formatTime(&t) },
	"timePtr": formatTime,
	"preview": preview,
}

func mustTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(templateFuncs).Parse(text))
}

// render печатает v в выбранном формате; text использует шаблон tmpl
func (c *Cli) render(tmpl *template.Template, v any) error {
	switch c.format {
	case FormatJSON:
		enc := json.NewEncoder(c.io)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(c.io)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		if err := tmpl.Execute(c.io, v); err != nil {
			return fmt.Errorf("failed to render output: %w", err)
		}
		return nil
	}
}

// marshalCompact кодирует v в одну строку JSON для потокового вывода
func marshalCompact(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode json: %w", err)
	}
	return string(data), nil
}
