package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophnotes/internal/models"
)

// noteFlags флаги содержимого заметки, общие для new и edit
type noteFlags struct {
	title string
	body  string
}

func (f *noteFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "note title")
	cmd.Flags().StringVarP(&f.body, "body", "b", "", "note body, '-' reads it from stdin")
}

// update собирает NoteUpdate только из явно переданных флагов
func (f *noteFlags) update(c *Cli, cmd *cobra.Command) (models.NoteUpdate, error) {
	var upd models.NoteUpdate
	if cmd.Flags().Changed("title") {
		title := f.title
		upd.Title = &title
	}
	if cmd.Flags().Changed("body") {
		body, err := c.readBody(f.body)
		if err != nil {
			return models.NoteUpdate{}, err
		}
		upd.Body = &body
	}
	return upd, nil
}

func newAddCommand(run runner) *cobra.Command {
	flags := &noteFlags{}
	cmd := &cobra.Command{
		Use:     "new",
		Aliases: []string{"add"},
		Short:   "Create a new note",
		Long: `Create a new note in the local store.

The note is saved locally and marked pending; it reaches the server on the
next sync. Without --title the note gets the default title.`,
		Args: cobra.NoArgs,
	}
	flags.register(cmd)
	cmd.RunE = run(func(ctx context.Context, c *Cli, args []string) error {
		upd, err := flags.update(c, cmd)
		if err != nil {
			return err
		}
		return c.runAdd(ctx, upd)
	})
	return cmd
}

func (c *Cli) runAdd(ctx context.Context, upd models.NoteUpdate) error {
	id, err := c.store.Create(ctx)
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	if upd.Title != nil || upd.Body != nil {
		if err := c.store.Update(ctx, id, upd); err != nil {
			return fmt.Errorf("failed to save note %s: %w", id, err)
		}
	}

	note, ok := c.store.Note(id)
	if !ok {
		return fmt.Errorf("note not found with ID: %s", id)
	}

	if c.format != FormatText {
		return c.render(nil, newNoteView(note))
	}

	c.io.Println("Note created successfully!")
	c.io.Printf("ID: %s\n", note.ID)
	return nil
}

// readBody возвращает тело заметки; "-" означает чтение из stdin
func (c *Cli) readBody(value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	body, err := c.io.ReadAll("Enter note body (Ctrl+D to finish):\n")
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}
	return body, nil
}
