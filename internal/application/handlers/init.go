// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ersonp/survive-core/internal/domain/ports"
	"github.com/ersonp/survive-core/internal/infrastructure/config"
)

// JournalOpener opens the journal stored at path.
type JournalOpener func(path string) (ports.Journal, error)

// InitHandler handles project initialization.
type InitHandler struct {
	openJournal JournalOpener
}

// NewInitHandler creates a new init handler. openJournal may be nil to skip
// creating the journal.
func NewInitHandler(openJournal JournalOpener) *InitHandler {
	return &InitHandler{
		openJournal: openJournal,
	}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath  string
	ContentPath string
	// JournalPath is empty when the journal is disabled.
	JournalPath string
}

// Handle writes the default configuration and sample content, and creates
// the journal schema.
func (h *InitHandler) Handle(ctx context.Context, basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("survive already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	result := &InitResult{
		ConfigPath:  config.ConfigFilePath(basePath),
		ContentPath: filepath.Join(config.ConfigDir(basePath), config.DefaultContentFile),
	}

	if h.openJournal != nil && cfg.Journal.Enabled {
		path := cfg.JournalPath(basePath)
		journal, err := h.openJournal(path)
		if err != nil {
			return nil, fmt.Errorf("opening journal: %w", err)
		}
		defer journal.Close()

		if err := journal.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("creating journal schema: %w", err)
		}
		result.JournalPath = path
	}

	return result, nil
}
