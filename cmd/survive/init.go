package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/survive-core/internal/application/handlers"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new game directory",
		Long:  "Creates a .survive directory with a default configuration, a sample location and the game journal.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	base, err := basePath()
	if err != nil {
		return err
	}

	result, err := handlers.NewInitHandler(openJournal).Handle(cmd.Context(), base)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", result.ConfigPath)
	fmt.Fprintf(out, "Created %s\n", result.ContentPath)
	if result.JournalPath != "" {
		fmt.Fprintf(out, "Created journal: %s\n", result.JournalPath)
	}
	fmt.Fprintln(out, "Survive initialized successfully! Run 'survive play' to start.")
	return nil
}
