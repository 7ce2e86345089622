package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/iudanet/gophnotes/internal/client/iocli"
	"github.com/iudanet/gophnotes/internal/client/notes"
	syncsvc "github.com/iudanet/gophnotes/internal/client/sync"
	"github.com/iudanet/gophnotes/internal/models"
)

//go:generate moq -out notestore_mock.go . NoteStore

// NoteStore is the record store surface the commands use.
type NoteStore interface {
	Create(ctx context.Context) (string, error)
	Update(ctx context.Context, id string, upd models.NoteUpdate) error
	Delete(ctx context.Context, id string) error
	Note(id string) (*models.Note, bool)
	Snapshot() notes.Snapshot
	Subscribe() (<-chan notes.Snapshot, func())
	RequestSync(ctx context.Context) (*syncsvc.Result, error)
}

//go:generate moq -out connectivity_mock.go . Connectivity

// Connectivity is the part of the connectivity monitor the commands use.
type Connectivity interface {
	Probe(ctx context.Context) bool
	Run(ctx context.Context)
}

// Cli executes client commands against the record store.
type Cli struct {
	io           iocli.IO
	store        NoteStore
	syncService  syncsvc.Service
	connectivity Connectivity
	logger       *slog.Logger
	format       string
	syncOnStart  bool
}

// Option configures Cli.
type Option func(*Cli)

// WithFormat sets the output format (text, json or yaml).
func WithFormat(format string) Option {
	return func(c *Cli) {
		c.format = format
	}
}

// WithSyncOnStart makes watch run a pass as soon as it starts.
func WithSyncOnStart(enabled bool) Option {
	return func(c *Cli) {
		c.syncOnStart = enabled
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cli) {
		c.logger = logger
	}
}

func New(stdio iocli.IO, store NoteStore, syncService syncsvc.Service, connectivity Connectivity, opts ...Option) *Cli {
	c := &Cli{
		io:           stdio,
		store:        store,
		syncService:  syncService,
		connectivity: connectivity,
		format:       FormatText,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
