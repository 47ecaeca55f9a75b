package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ChoiceSeparator separates choices inside the CSV choices column.
const ChoiceSeparator = "|"

// CSVParser parses event records from CSV format.
// Expected columns: prompt_text, primary_attribute, secondary_attribute,
// choices, pass_message, fail_message, partial_pass_message.
// CSV records cannot carry per-outcome effects.
type CSVParser struct{}

// Parse reads CSV from the reader and returns parsed events.
func (p *CSVParser) Parse(r io.Reader) ([]RawEvent, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	return p.readRecords(reader, colIndex)
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.TrimSpace(col)] = i
	}

	requiredCols := []string{"prompt_text", "primary_attribute", "pass_message", "fail_message"}
	for _, col := range requiredCols {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return colIndex, nil
}

// readRecords reads all data rows and converts them to RawEvents.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) ([]RawEvent, error) {
	var events []RawEvent
	lineNum := 1 // Header is line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		event := p.parseRecord(record, colIndex)
		event.Record = len(events) + 1
		events = append(events, event)
	}

	return events, nil
}

// parseRecord converts a CSV record to a RawEvent.
func (p *CSVParser) parseRecord(record []string, colIndex map[string]int) RawEvent {
	event := RawEvent{
		PromptText:         getColumn(record, colIndex, "prompt_text"),
		PrimaryAttribute:   getColumn(record, colIndex, "primary_attribute"),
		SecondaryAttribute: getColumn(record, colIndex, "secondary_attribute"),
		Pass:               &RawOutcome{Message: getColumn(record, colIndex, "pass_message")},
		Fail:               &RawOutcome{Message: getColumn(record, colIndex, "fail_message")},
	}

	if msg := getColumn(record, colIndex, "partial_pass_message"); msg != "" {
		event.PartialPass = &RawOutcome{Message: msg}
	}

	if choices := getColumn(record, colIndex, "choices"); choices != "" {
		for _, c := range strings.Split(choices, ChoiceSeparator) {
			if c = strings.TrimSpace(c); c != "" {
				event.Choices = append(event.Choices, c)
			}
		}
	}

	return event
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}
