// Package main provides the entry point for the survive CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	baseDir string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "survive",
		Short:         "A turn-based terminal survival game",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&baseDir, "dir", "C", "", "Directory holding .survive (default: current directory)")

	rootCmd.AddCommand(
		newInitCmd(),
		newPlayCmd(),
		newValidateCmd(),
		newHistoryCmd(),
		newCharactersCmd(),
		newWeaponsCmd(),
	)

	return rootCmd
}
