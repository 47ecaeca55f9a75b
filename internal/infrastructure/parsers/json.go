package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses event records from a JSON array.
type JSONParser struct{}

// Parse reads JSON from the reader and returns parsed events.
func (p *JSONParser) Parse(r io.Reader) ([]RawEvent, error) {
	var events []RawEvent

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&events); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	numberRecords(events)
	return events, nil
}
