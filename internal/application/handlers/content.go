package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/ersonp/survive-core/internal/domain/entities"
	"github.com/ersonp/survive-core/internal/domain/services"
	"github.com/ersonp/survive-core/internal/infrastructure/config"
	"github.com/ersonp/survive-core/internal/infrastructure/parsers"
)

// ContentHandler loads content files into locations.
type ContentHandler struct {
	service *services.ContentService
}

// NewContentHandler creates a new content handler.
func NewContentHandler(service *services.ContentService) *ContentHandler {
	return &ContentHandler{
		service: service,
	}
}

// Load parses and validates one content file as a location.
func (h *ContentHandler) Load(src config.ContentSource) (*entities.Location, error) {
	records, err := readRecords(src.Path, src.Format)
	if err != nil {
		return nil, err
	}

	loc, err := h.service.BuildLocation(src.LocationName(), records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Path, err)
	}
	return loc, nil
}

// LoadLocations loads every source. The first invalid source aborts loading.
func (h *ContentHandler) LoadLocations(ctx context.Context, sources []config.ContentSource) ([]*entities.Location, error) {
	locations := make([]*entities.Location, 0, len(sources))
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		loc, err := h.Load(src)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

// readRecords picks a parser by format, or by extension when format is
// empty or "auto", and parses the file.
func readRecords(path, format string) ([]parsers.RawEvent, error) {
	var parser parsers.Parser
	if format == "" || format == "auto" {
		parser = parsers.ForFile(path)
	} else {
		parser = parsers.ForFormat(format)
	}

	if parser == nil {
		return nil, fmt.Errorf("unsupported format for file: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	records, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}
