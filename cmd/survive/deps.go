package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ersonp/survive-core/internal/application/handlers"
	"github.com/ersonp/survive-core/internal/domain/entities"
	"github.com/ersonp/survive-core/internal/domain/ports"
	"github.com/ersonp/survive-core/internal/domain/services"
	"github.com/ersonp/survive-core/internal/infrastructure/config"
	"github.com/ersonp/survive-core/internal/infrastructure/journal/sqlite"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	BasePath       string
	Config         *config.Config
	Logger         *slog.Logger
	ContentHandler *handlers.ContentHandler
}

// internalDeps holds all dependencies including the journal.
// Used by commands that record or read games.
type internalDeps struct {
	Deps
	history *services.HistoryService
}

// basePath returns --dir or the current directory.
func basePath() (string, error) {
	if baseDir != "" {
		return baseDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}

// withDeps loads config and builds dependencies, then calls the provided function.
func withDeps(fn func(*Deps) error) error {
	base, err := basePath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(base)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}

	effects, err := effectDefaults(cfg.Game.Effects)
	if err != nil {
		return err
	}
	contentService, err := services.NewContentService(effects)
	if err != nil {
		return fmt.Errorf("creating content service: %w", err)
	}

	return fn(&Deps{
		BasePath:       base,
		Config:         cfg,
		Logger:         logger,
		ContentHandler: handlers.NewContentHandler(contentService),
	})
}

// withJournal opens the journal when it is enabled (or required) and calls
// fn with it. history is nil when the journal is disabled and not required.
func withJournal(ctx context.Context, d *Deps, required bool, fn func(*internalDeps) error) error {
	deps := &internalDeps{Deps: *d}

	if !d.Config.Journal.Enabled && !required {
		return fn(deps)
	}

	path := d.Config.JournalPath(d.BasePath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating journal directory: %w", err)
	}
	repo, err := sqlite.NewRepository(config.JournalConfig{Path: path})
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer repo.Close()

	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring sqlite schema: %w", err)
	}
	d.Logger.Debug("journal opened", "path", repo.Path())

	deps.history = services.NewHistoryService(repo)
	return fn(deps)
}

// withHistoryHandler provides access to the HistoryHandler.
func withHistoryHandler(ctx context.Context, fn func(*handlers.HistoryHandler) error) error {
	return withDeps(func(d *Deps) error {
		return withJournal(ctx, d, true, func(id *internalDeps) error {
			return fn(handlers.NewHistoryHandler(id.history))
		})
	})
}

// openJournal opens the SQLite journal at path.
func openJournal(path string) (ports.Journal, error) {
	repo, err := sqlite.NewRepository(config.JournalConfig{Path: path})
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// newLogger builds the diagnostic logger writing to stderr.
func newLogger(cfg config.LogConfig) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}

// effectDefaults overlays configured effects on the built-in defaults.
func effectDefaults(cfg config.EffectsConfig) (services.EffectDefaults, error) {
	effects := services.DefaultEffects()

	for _, o := range []struct {
		name   string
		values map[string]int
		target *[]entities.Effect
	}{
		{"pass", cfg.Pass, &effects.Pass},
		{"partial_pass", cfg.PartialPass, &effects.PartialPass},
		{"fail", cfg.Fail, &effects.Fail},
	} {
		if o.values == nil {
			continue
		}
		list := make([]entities.Effect, 0, len(o.values))
		for attr, delta := range o.values {
			if _, ok := entities.CanonicalAttribute(attr); !ok {
				return services.EffectDefaults{}, fmt.Errorf("game.effects.%s: unknown attribute %q", o.name, attr)
			}
			list = append(list, entities.Effect{Attribute: attr, Delta: delta})
		}
		*o.target = list
	}
	return effects, nil
}
