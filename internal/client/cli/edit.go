package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophnotes/internal/models"
)

func newEditCommand(run runner) *cobra.Command {
	flags := &noteFlags{}
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the title or body of a note",
		Args:  cobra.ExactArgs(1),
	}
	flags.register(cmd)
	cmd.RunE = run(func(ctx context.Context, c *Cli, args []string) error {
		upd, err := flags.update(c, cmd)
		if err != nil {
			return err
		}
		return c.runEdit(ctx, args[0], upd)
	})
	return cmd
}

func (c *Cli) runEdit(ctx context.Context, id string, upd models.NoteUpdate) error {
	if upd.Title == nil && upd.Body == nil {
		return errors.New("nothing to change: pass --title and/or --body")
	}

	// Update для неизвестного ID ничего не делает, поэтому проверяем заранее
	if _, ok := c.store.Note(id); !ok {
		return fmt.Errorf("note not found with ID: %s", id)
	}

	if err := c.store.Update(ctx, id, upd); err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}

	note, ok := c.store.Note(id)
	if !ok {
		return fmt.Errorf("note not found with ID: %s", id)
	}

	if c.format != FormatText {
		return c.render(nil, newNoteView(note))
	}

	c.io.Println("Note updated successfully!")
	c.io.Printf("ID: %s\n", note.ID)
	return nil
}
