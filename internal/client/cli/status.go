package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statusTpl = mustTemplate("status", statusTemplate)

func newStatusCommand(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show synchronization status",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, c *Cli, args []string) error {
			return c.runStatus(ctx)
		}),
	}
}

func (c *Cli) runStatus(ctx context.Context) error {
	if c.connectivity != nil {
		c.connectivity.Probe(ctx)
	}

	// Заметки и удаления, ожидающие отправки
	pending, err := c.syncService.GetPendingSyncCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to get pending sync count: %w", err)
	}

	return c.render(statusTpl, newStatusView(c.store.Snapshot(), pending))
}
