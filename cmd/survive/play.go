package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/survive-core/internal/application/handlers"
	"github.com/ersonp/survive-core/internal/infrastructure/config"
	"github.com/ersonp/survive-core/internal/infrastructure/terminal"
)

type playFlags struct {
	seed      int64
	turns     int
	noJournal bool
	content   []string
	locations []string
	format    string
}

func newPlayCmd() *cobra.Command {
	var f playFlags

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game",
		Long: `Starts a game: pick a character and a weapon, then survive the events drawn
from the configured locations. The game is won once the turn budget is spent
and lost when every character has died.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, f)
		},
	}

	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Random seed to replay a game (default: config or random)")
	cmd.Flags().IntVarP(&f.turns, "turns", "t", 0, "Events to survive to win, 0 for no limit (default: config)")
	cmd.Flags().BoolVar(&f.noJournal, "no-journal", false, "Do not record the game in the journal")
	cmd.Flags().StringSliceVarP(&f.content, "content", "c", nil, "Content files to play instead of the configured locations")
	cmd.Flags().StringSliceVarP(&f.locations, "location", "l", nil, "Play only the named configured locations")
	cmd.Flags().StringVarP(&f.format, "format", "f", "auto", "Format of --content files: auto, json, yaml, csv, ini")
	cmd.MarkFlagsMutuallyExclusive("content", "location")

	return cmd
}

func runPlay(cmd *cobra.Command, f playFlags) error {
	ctx := cmd.Context()

	if !isValidFormat(f.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", f.format, validFormats)
	}

	return withDeps(func(d *Deps) error {
		cfg := d.Config
		if f.noJournal {
			cfg.Journal.Enabled = false
		}
		if cmd.Flags().Changed("seed") {
			cfg.Game.Seed = f.seed
		}
		if cmd.Flags().Changed("turns") {
			cfg.Game.MaxTurns = f.turns
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		return withJournal(ctx, d, false, func(id *internalDeps) error {
			catalog, err := cfg.Catalog()
			if err != nil {
				return err
			}

			sources := cfg.Content.Sources(d.BasePath)
			switch {
			case len(f.content) > 0:
				sources = make([]config.ContentSource, len(f.content))
				for i, path := range f.content {
					sources[i] = config.ContentSource{Path: path, Format: f.format}
				}
			case len(f.locations) > 0:
				if sources, err = cfg.Content.Select(d.BasePath, f.locations); err != nil {
					return err
				}
			}

			console := newConsole(cmd.InOrStdin(), cmd.OutOrStdout())
			handler := handlers.NewPlayHandler(d.ContentHandler, id.history, console, console, d.Logger)

			type outcome struct {
				result *handlers.PlayResult
				err    error
			}
			done := make(chan outcome, 1)
			go func() {
				result, err := handler.Handle(ctx, handlers.PlayOptions{
					Title:    cfg.Game.Title,
					Sources:  sources,
					Presets:  cfg.Presets(),
					Catalog:  catalog,
					MaxTurns: cfg.Game.MaxTurns,
					Seed:     cfg.Game.Seed,
				})
				done <- outcome{result, err}
			}()

			// Reading the console blocks, so an interrupt must not wait for the
			// next answer. Handle does not record a game once ctx is done, so a
			// game ending after the interrupt is not written to the closed journal.
			select {
			case <-ctx.Done():
				return ctx.Err()
			case o := <-done:
				if o.err != nil {
					return o.err
				}
				displayPlayResult(cmd.OutOrStdout(), o.result)
				return nil
			}
		})
	})
}

// newConsole creates the player's console, echoing answers when the input
// is a file or pipe rather than a terminal.
func newConsole(in io.Reader, out io.Writer) *terminal.Console {
	echo := false
	if f, ok := in.(*os.File); ok {
		echo = !terminal.IsInteractive(f)
	}
	return terminal.New(in, out, terminal.WithEcho(echo))
}
