package cli

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophnotes/internal/client/notes"
	syncsvc "github.com/iudanet/gophnotes/internal/client/sync"
	"github.com/iudanet/gophnotes/internal/models"
)

func newWatchCommand(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep syncing in the background and print status changes",
		Long: `Watch the connectivity of the server and the sync status.

A sync pass runs on start (unless sync.on_start is false) and every time
the server becomes reachable again. Each status change is printed as one
line; with --format json or yaml every change is one JSON object per line.
Stop with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: run(func(ctx context.Context, c *Cli, args []string) error {
			return c.runWatch(ctx)
		}),
	}
}

func (c *Cli) runWatch(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	updates, unsubscribe := c.store.Subscribe()
	defer unsubscribe()

	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()

	if c.connectivity != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.connectivity.Run(ctx)
		}()
	}

	if c.syncOnStart {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.store.RequestSync(ctx); err != nil && !errors.Is(err, syncsvc.ErrSyncSkipped) {
				c.logger.Warn("Initial sync failed", "error", err)
			}
		}()
	}

	var last string
	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-updates:
			if !ok {
				return nil
			}
			line, err := c.statusLine(snap)
			if err != nil {
				return err
			}
			// Печатаем только изменения
			if line != last {
				c.io.Println(line)
				last = line
			}
		}
	}
}

func (c *Cli) statusLine(snap notes.Snapshot) (string, error) {
	unsynced := 0
	for _, n := range snap.Notes {
		if n.SyncState != models.SyncStateSynced {
			unsynced++
		}
	}

	if c.format != FormatText {
		view := newStatusView(snap, unsynced)
		view.Unsynced = nil
		return marshalCompact(view)
	}

	server := "online"
	if !snap.Online {
		server = "offline"
	}
	state := string(snap.Status.State)
	if snap.Status.Error != "" {
		state += ": " + snap.Status.Error
	}
	return fmt.Sprintf("[%s] %s | last sync %s | %d note(s), %d unsynced",
		server, state, formatTime(snap.Status.LastSync), len(snap.Notes), unsynced), nil
}
