package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var noteListTpl = mustTemplate("notes", noteListTemplate)

func newListCommand(run runner) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes, most recently changed first",
		Args:    cobra.NoArgs,
		RunE: run(func(ctx context.Context, c *Cli, args []string) error {
			return c.runList(ctx)
		}),
	}
}

func (c *Cli) runList(_ context.Context) error {
	snap := c.store.Snapshot()

	// Пустой список в JSON должен быть [] а не null
	views := make([]noteView, 0, len(snap.Notes))
	for _, n := range snap.Notes {
		views = append(views, newNoteView(n))
	}
	return c.render(noteListTpl, views)
}
