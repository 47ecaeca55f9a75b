package parsers

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLParser parses event records from a YAML sequence.
type YAMLParser struct{}

// Parse reads YAML from the reader and returns parsed events.
func (p *YAMLParser) Parse(r io.Reader) ([]RawEvent, error) {
	var events []RawEvent

	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&events); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	numberRecords(events)
	return events, nil
}
