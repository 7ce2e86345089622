package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	syncsvc "github.com/iudanet/gophnotes/internal/client/sync"
)

var syncTpl = mustTemplate("sync", syncTemplate)

func newSyncCommand(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Push local changes to the server",
		Long: `Run one synchronization pass.

Every unsynced note is sent to the server. A failure of one note does not
stop the others; failed notes keep their changes and are retried on the
next pass. Pending deletions are sent after the notes.`,
		Args: cobra.NoArgs,
		RunE: run(func(ctx context.Context, c *Cli, args []string) error {
			return c.runSync(ctx)
		}),
	}
}

func (c *Cli) runSync(ctx context.Context) error {
	// Обновляем состояние сети перед проходом
	if c.connectivity != nil {
		c.connectivity.Probe(ctx)
	}

	result, err := c.store.RequestSync(ctx)
	if errors.Is(err, syncsvc.ErrSyncSkipped) {
		c.logger.Info("Sync skipped: server unreachable")
		return c.render(syncTpl, syncView{Skipped: true})
	}
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	return c.render(syncTpl, syncView{
		Attempted: result.Attempted,
		Synced:    result.Synced,
		Failed:    result.Failed,
		Stale:     result.Stale,
		Deleted:   result.Deleted,
	})
}
