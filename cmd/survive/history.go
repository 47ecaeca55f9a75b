package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/survive-core/internal/application/handlers"
)

func newHistoryCmd() *cobra.Command {
	var (
		limit int
		stats bool
	)

	cmd := &cobra.Command{
		Use:   "history [game-id]",
		Short: "Show finished games",
		Long:  "Lists recent games from the journal, or shows every turn of one game.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, args, limit, stats)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultHistoryLimit, "Maximum number of games to display")
	cmd.Flags().BoolVar(&stats, "stats", false, "Show the number of games won and lost")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string, limit int, stats bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	return withHistoryHandler(ctx, func(h *handlers.HistoryHandler) error {
		switch {
		case len(args) == 1:
			detail, err := h.HandleShow(ctx, args[0])
			if err != nil {
				return err
			}
			displayGameDetail(out, detail)

		case stats:
			counts, err := h.HandleStats(ctx)
			if err != nil {
				return fmt.Errorf("counting games: %w", err)
			}
			displayStats(out, counts)

		default:
			games, err := h.HandleList(ctx, limit)
			if err != nil {
				return fmt.Errorf("listing games: %w", err)
			}
			if len(games) == 0 {
				fmt.Fprintln(out, "No games recorded yet.")
				return nil
			}
			displayGames(out, games)
		}
		return nil
	})
}
