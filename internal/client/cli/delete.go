package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCommand(run runner) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a note",
		Long: `Delete a note from the local store.

The deletion is remembered and sent to the server on the next sync.`,
		Args: cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, c *Cli, args []string) error {
			return c.runDelete(ctx, args[0])
		}),
	}
}

func (c *Cli) runDelete(ctx context.Context, id string) error {
	// Сначала получаем заметку для показа информации
	note, ok := c.store.Note(id)
	if !ok {
		return fmt.Errorf("note not found with ID: %s", id)
	}

	if err := c.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if c.format != FormatText {
		return c.render(nil, map[string]string{"deleted": note.ID})
	}

	c.io.Printf("Note deleted: %s (%s)\n", note.Title, note.ID)
	c.io.Println("The deletion will be sent to the server on next sync.")
	return nil
}
