// Package main provides the entry point for the dex CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version     = "0.1.0-dev"
	globalFlags rootFlags
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "dex",
		Short:   "Browse a remote creature catalog from the terminal",
		Long:    browseLong,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		RunE:          runBrowse,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	globalFlags.register(rootCmd)

	rootCmd.AddCommand(
		newBrowseCmd(),
		newListCmd(),
		newShowCmd(),
		newConfigCmd(),
	)

	return rootCmd
}
