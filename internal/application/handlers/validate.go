package handlers

import (
	"context"

	"github.com/ersonp/survive-core/internal/infrastructure/config"
)

// ValidateHandler checks content files without playing them.
type ValidateHandler struct {
	content *ContentHandler
}

// NewValidateHandler creates a new validate handler.
func NewValidateHandler(content *ContentHandler) *ValidateHandler {
	return &ValidateHandler{
		content: content,
	}
}

// ValidateResult is the outcome of validating one file.
type ValidateResult struct {
	Path     string
	Location string
	Events   int
	Err      error
}

// Handle validates each file independently. The returned error is only set
// when the context is cancelled; per-file problems are in the results.
func (h *ValidateHandler) Handle(ctx context.Context, paths []string, format string) ([]ValidateResult, error) {
	results := make([]ValidateResult, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		src := config.ContentSource{Path: path, Format: format}
		result := ValidateResult{Path: path, Location: src.LocationName()}

		loc, err := h.content.Load(src)
		if err != nil {
			result.Err = err
		} else {
			result.Events = loc.Len()
		}
		results = append(results, result)
	}
	return results, nil
}

// Failed returns the number of results with an error.
func Failed(results []ValidateResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
