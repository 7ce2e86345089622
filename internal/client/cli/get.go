package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var noteTpl = mustTemplate("note", noteTemplate)

func newGetCommand(run runner) *cobra.Command {
	return &cobra.Command{
		Use:     "show <id>",
		Aliases: []string{"get"},
		Short:   "Show full note details",
		Args:    cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, c *Cli, args []string) error {
			return c.runGet(ctx, args[0])
		}),
	}
}

func (c *Cli) runGet(_ context.Context, id string) error {
	note, ok := c.store.Note(id)
	if !ok {
		return fmt.Errorf("note not found with ID: %s", id)
	}
	return c.render(noteTpl, newNoteView(note))
}
