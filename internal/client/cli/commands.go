package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophnotes/internal/client/iocli"
)

// RootOptions holds global flags for all commands.
// Empty values mean "take it from the config file".
type RootOptions struct {
	ConfigPath string
	ServerURL  string
	DBPath     string
	LogLevel   string
	Format     string // "text" | "json" | "yaml"
}

// Builder assembles a Cli for the resolved options. cleanup releases what
// the builder opened and is called when the command returns.
type Builder func(ctx context.Context, opts *RootOptions, stdio iocli.IO) (c *Cli, cleanup func(), err error)

type commandFunc func(ctx context.Context, c *Cli, args []string) error

// runner оборачивает команду: собирает зависимости, выполняет, освобождает
type runner func(fn commandFunc) func(cmd *cobra.Command, args []string) error

// NewRootCommand creates the root command of the gophnotes client.
func NewRootCommand(build Builder) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "gophnotes",
		Short: "gophnotes - offline-first notes",
		Long: `An offline-first notes client.

Notes are stored locally and every change is durable before the command
returns. Changes are pushed to the server by 'gophnotes sync' or in the
background by 'gophnotes watch'.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to config file (default ~/.config/gophnotes/config.toml)")
	cmd.PersistentFlags().StringVar(&opts.ServerURL, "server", "", "server URL (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "path to local database (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (text|json|yaml)")

	run := func(fn commandFunc) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			stdio := iocli.NewStdioWith(cmd.InOrStdin(), cmd.OutOrStdout())
			c, cleanup, err := build(cmd.Context(), opts, stdio)
			if err != nil {
				return err
			}
			defer cleanup()
			return fn(cmd.Context(), c, args)
		}
	}

	cmd.AddCommand(newAddCommand(run))
	cmd.AddCommand(newEditCommand(run))
	cmd.AddCommand(newDeleteCommand(run))
	cmd.AddCommand(newListCommand(run))
	cmd.AddCommand(newGetCommand(run))
	cmd.AddCommand(newSyncCommand(run))
	cmd.AddCommand(newStatusCommand(run))
	cmd.AddCommand(newWatchCommand(run))

	return cmd
}
