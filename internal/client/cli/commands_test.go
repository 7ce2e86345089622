package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophnotes/internal/client/iocli"
	syncsvc "github.com/iudanet/gophnotes/internal/client/sync"
	"github.com/iudanet/gophnotes/pkg/api"
)

// fakeServer минимальный сервер заметок для сквозных тестов команд
type fakeServer struct {
	notes   map[string]api.Note
	mu      sync.Mutex
	healthy atomic.Bool
}

func newFakeServer(t *testing.T) (*fakeServer, *httptest.Server) {
	t.Helper()

	fs := &fakeServer{notes: make(map[string]api.Note)}
	fs.healthy.Store(true)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		if !fs.healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(api.HealthResponse{Status: "ok"})
	})
	mux.HandleFunc("PUT /api/v1/notes/{id}", func(w http.ResponseWriter, r *http.Request) {
		var note api.Note
		if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fs.mu.Lock()
		fs.notes[r.PathValue("id")] = note
		fs.mu.Unlock()
		_ = json.NewEncoder(w).Encode(note)
	})
	mux.HandleFunc("DELETE /api/v1/notes/{id}", func(w http.ResponseWriter, r *http.Request) {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		if _, ok := fs.notes[r.PathValue("id")]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		delete(fs.notes, r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return fs, srv
}

func (fs *fakeServer) get(id string) (api.Note, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	n, ok := fs.notes[id]
	return n, ok
}

// execute запускает корневую команду с аргументами и возвращает stdout
func execute(t *testing.T, build Builder, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand(build)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand(nil)

	for _, name := range []string{"new", "add", "edit", "rm", "delete", "list", "ls", "show", "get", "sync", "status", "watch"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.NotEqual(t, root, cmd, "command %q not registered", name)
	}

	f := root.PersistentFlags().Lookup("format")
	require.NotNil(t, f)
	assert.Equal(t, FormatText, f.DefValue)
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	var built bool
	build := func(ctx context.Context, opts *RootOptions, stdio iocli.IO) (*Cli, func(), error) {
		built = true
		return nil, nil, nil
	}

	_, err := execute(t, build, "list", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
	assert.False(t, built, "dependencies must not be built for invalid flags")
}

func TestRootCommand_PassesOptionsAndCleansUp(t *testing.T) {
	var got RootOptions
	var cleaned bool
	build := func(ctx context.Context, opts *RootOptions, stdio iocli.IO) (*Cli, func(), error) {
		got = *opts
		c := New(stdio, storeWith(nil), &syncsvc.ServiceMock{}, nil, WithFormat(opts.Format))
		return c, func() { cleaned = true }, nil
	}

	out, err := execute(t, build, "--server", "http://example.com", "--db", "/tmp/x.db", "--log-level", "debug", "--format", "json", "list")
	require.NoError(t, err)

	assert.Equal(t, "[]\n", out)
	assert.Equal(t, RootOptions{
		ServerURL: "http://example.com",
		DBPath:    "/tmp/x.db",
		LogLevel:  "debug",
		Format:    FormatJSON,
	}, got)
	assert.True(t, cleaned)
}

func TestRootCommand_ArgsValidation(t *testing.T) {
	build := func(ctx context.Context, opts *RootOptions, stdio iocli.IO) (*Cli, func(), error) {
		t.Fatal("builder must not be called")
		return nil, nil, nil
	}

	_, err := execute(t, build, "show")
	assert.Error(t, err)

	_, err = execute(t, build, "list", "extra")
	assert.Error(t, err)
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := resolveConfig(&RootOptions{
		ConfigPath: filepath.Join(home, "missing.toml"),
		ServerURL:  " https://notes.example.com ",
		DBPath:     "~/db/notes.db",
		LogLevel:   "INFO",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://notes.example.com", cfg.ServerURL)
	assert.Equal(t, filepath.Join(home, "db/notes.db"), cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestResolveConfig_InvalidOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, err := resolveConfig(&RootOptions{
		ConfigPath: filepath.Join(home, "missing.toml"),
		ServerURL:  "ftp://example.com",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid server_url")
}

func TestBootstrap_EndToEnd(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	fs, srv := newFakeServer(t)

	build := Bootstrap(io.Discard)
	base := []string{
		"--config", filepath.Join(home, "missing.toml"),
		"--db", filepath.Join(home, "data", "notes.db"),
		"--server", srv.URL,
	}
	run := func(args ...string) string {
		t.Helper()
		out, err := execute(t, build, append(append([]string{}, base...), args...)...)
		require.NoError(t, err, "args: %v", args)
		return out
	}

	// Создание заметки работает без сервера: только локальная запись
	var created noteView
	require.NoError(t, json.Unmarshal([]byte(run("new", "--title", "Shopping", "--body", "milk", "--format", "json")), &created))
	assert.Equal(t, "Shopping", created.Title)
	assert.Equal(t, "pending", created.State)
	_, onServer := fs.get(created.ID)
	assert.False(t, onServer)

	var status statusView
	require.NoError(t, json.Unmarshal([]byte(run("status", "--format", "json")), &status))
	assert.Equal(t, 1, status.Pending)
	assert.Nil(t, status.LastSync)

	var result syncView
	require.NoError(t, json.Unmarshal([]byte(run("sync", "--format", "json")), &result))
	assert.Equal(t, syncView{Attempted: 1, Synced: 1}, result)

	remote, ok := fs.get(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Shopping", remote.Title)
	assert.Equal(t, "milk", remote.Body)

	// Состояние пережило перезапуск процесса
	var shown noteView
	require.NoError(t, json.Unmarshal([]byte(run("show", created.ID, "--format", "json")), &shown))
	assert.Equal(t, "synced", shown.State)
	require.NotNil(t, shown.SyncedAt)

	status = statusView{}
	require.NoError(t, json.Unmarshal([]byte(run("status", "--format", "json")), &status))
	assert.Equal(t, 0, status.Pending)
	assert.Equal(t, "idle", status.State)
	assert.NotNil(t, status.LastSync)

	// Удаление уходит на сервер при следующей синхронизации
	run("rm", created.ID)
	result = syncView{}
	require.NoError(t, json.Unmarshal([]byte(run("sync", "--format", "json")), &result))
	assert.Equal(t, 1, result.Deleted)
	_, onServer = fs.get(created.ID)
	assert.False(t, onServer)
}

func TestBootstrap_OfflineKeepsChanges(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	fs, srv := newFakeServer(t)
	fs.healthy.Store(false)

	build := Bootstrap(io.Discard)
	base := []string{
		"--config", filepath.Join(home, "missing.toml"),
		"--db", filepath.Join(home, "notes.db"),
		"--server", srv.URL,
	}

	_, err := execute(t, build, append(base, "new", "--title", "Draft")...)
	require.NoError(t, err)

	out, err := execute(t, build, append(base, "sync")...)
	require.NoError(t, err)
	assert.Contains(t, out, "sync skipped")

	out, err = execute(t, build, append(base, "status")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Server:    offline")
	assert.Contains(t, out, "Pending sync: 1 change(s)")

	// Сервер вернулся: следующая команда sync отправляет заметку
	fs.healthy.Store(true)
	out, err = execute(t, build, append(base, "sync")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Synced:    1")
}

func TestBootstrap_InvalidConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, err := execute(t, Bootstrap(io.Discard),
		"--config", filepath.Join(home, "missing.toml"),
		"--log-level", "loud",
		"list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log_level")
}
