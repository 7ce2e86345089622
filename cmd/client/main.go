package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophnotes/internal/client/cli"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Ctrl+C останавливает watch и прерывает текущий проход синхронизации
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cli.Bootstrap(os.Stderr))
	root.Version = Version
	root.SetVersionTemplate(versionTemplate())
	root.AddCommand(newVersionCommand())

	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func versionTemplate() string {
	return fmt.Sprintf("GophNotes Client\nVersion:    %s\nBuild Date: %s\nGit Commit: %s\n", Version, BuildDate, GitCommit)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(versionTemplate())
		},
	}
}
