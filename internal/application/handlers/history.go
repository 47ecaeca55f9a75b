package handlers

import (
	"context"

	"github.com/ersonp/survive-core/internal/domain/ports"
	"github.com/ersonp/survive-core/internal/domain/services"
)

// HistoryHandler handles reading the game journal.
type HistoryHandler struct {
	service *services.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(service *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		service: service,
	}
}

// HandleList returns the most recent games.
func (h *HistoryHandler) HandleList(ctx context.Context, limit int) ([]ports.GameRecord, error) {
	return h.service.Recent(ctx, limit)
}

// HandleShow returns a game and its turns.
func (h *HistoryHandler) HandleShow(ctx context.Context, id string) (*services.GameDetail, error) {
	return h.service.Show(ctx, id)
}

// HandleStats returns the number of games per outcome.
func (h *HistoryHandler) HandleStats(ctx context.Context) (map[string]int, error) {
	return h.service.Stats(ctx)
}
