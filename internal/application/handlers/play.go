package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ersonp/survive-core/internal/domain/entities"
	"github.com/ersonp/survive-core/internal/domain/ports"
	"github.com/ersonp/survive-core/internal/domain/services"
	"github.com/ersonp/survive-core/internal/infrastructure/config"
	"github.com/ersonp/survive-core/internal/infrastructure/random"
)

// PlayHandler runs one game from configured content to the journal.
type PlayHandler struct {
	content  *ContentHandler
	history  *services.HistoryService
	prompter ports.Prompter
	narrator ports.Narrator
	logger   *slog.Logger
	now      func() time.Time
}

// NewPlayHandler creates a new play handler. history may be nil when the
// journal is disabled.
func NewPlayHandler(
	content *ContentHandler,
	history *services.HistoryService,
	prompter ports.Prompter,
	narrator ports.Narrator,
	logger *slog.Logger,
) *PlayHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PlayHandler{
		content:  content,
		history:  history,
		prompter: prompter,
		narrator: narrator,
		logger:   logger,
		now:      time.Now,
	}
}

// PlayOptions controls a game.
type PlayOptions struct {
	Title    string
	Sources  []config.ContentSource
	Presets  []entities.CharacterConfig
	Catalog  entities.Catalog
	MaxTurns int
	// Seed fixes the random draws. Zero picks a fresh seed.
	Seed int64
}

// PlayResult contains the result of a game.
type PlayResult struct {
	Summary *services.Summary
	Seed    int64
	// GameID is the journal ID, empty when the game was not recorded.
	GameID string
}

// Handle loads the content, plays a game and records it. A game finished
// after ctx was cancelled is not recorded: the caller may already be closing
// the journal.
func (h *PlayHandler) Handle(ctx context.Context, opts PlayOptions) (*PlayResult, error) {
	if len(opts.Sources) == 0 {
		return nil, errors.New("no content configured (run 'survive init' or pass --content)")
	}

	locations, err := h.content.LoadLocations(ctx, opts.Sources)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	h.logger.Debug("content loaded", "locations", len(locations))

	seed := opts.Seed
	if seed == 0 {
		if seed, err = random.NewSeed(); err != nil {
			return nil, err
		}
	}
	h.logger.Info("starting game", "seed", seed, "max_turns", opts.MaxTurns)

	presets := opts.Presets
	if len(presets) == 0 {
		presets = entities.DefaultPresets
	}
	catalog := opts.Catalog
	if catalog.Len() == 0 {
		catalog = entities.DefaultCatalog()
	}

	game, err := services.NewGame(services.GameOptions{
		Title:     opts.Title,
		Party:     entities.NewParty(presets),
		Locations: locations,
		Catalog:   catalog,
		Prompter:  h.prompter,
		Narrator:  h.narrator,
		Random:    random.New(seed),
		MaxTurns:  opts.MaxTurns,
	})
	if err != nil {
		return nil, fmt.Errorf("creating game: %w", err)
	}

	started := h.now()
	summary, err := game.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("playing game: %w", err)
	}
	h.logger.Info("game finished", "outcome", summary.Phase, "turns", len(summary.Turns))

	result := &PlayResult{Summary: summary, Seed: seed}
	if h.history == nil {
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		h.logger.Warn("game not recorded", "error", err)
		return result, nil
	}

	record, err := h.history.Record(ctx, summary, seed, started)
	if err != nil {
		h.logger.Warn("game not recorded", "error", err)
		return result, nil
	}
	result.GameID = record.ID
	return result, nil
}
