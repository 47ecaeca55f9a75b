// Package parsers provides parsers for loading event content from various formats.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
)

// RawOutcome is one outcome branch of a raw event record.
type RawOutcome struct {
	Message string         `json:"message" yaml:"message"`
	Effects map[string]int `json:"effects,omitempty" yaml:"effects,omitempty"` // Attribute -> delta, overrides defaults
}

// RawEvent represents an event record parsed from a content source before validation.
type RawEvent struct {
	PromptText         string      `json:"prompt_text" yaml:"prompt_text"`
	PrimaryAttribute   string      `json:"primary_attribute" yaml:"primary_attribute"`
	SecondaryAttribute string      `json:"secondary_attribute,omitempty" yaml:"secondary_attribute,omitempty"`
	Choices            []string    `json:"choices,omitempty" yaml:"choices,omitempty"`
	Pass               *RawOutcome `json:"pass" yaml:"pass"`
	Fail               *RawOutcome `json:"fail" yaml:"fail"`
	PartialPass        *RawOutcome `json:"partial_pass,omitempty" yaml:"partial_pass,omitempty"`
	Record             int         `json:"-" yaml:"-"` // Position in the source (set by parser)
}

// Parser defines the interface for parsing event records from various formats.
type Parser interface {
	Parse(r io.Reader) ([]RawEvent, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "yaml", "csv", "ini".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "yaml", "yml":
		return &YAMLParser{}
	case "csv":
		return &CSVParser{}
	case "ini":
		return &INIParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return nil
	}
	return ForFormat(ext)
}

// numberRecords sets 1-indexed record positions.
func numberRecords(events []RawEvent) {
	for i := range events {
		events[i].Record = i + 1
	}
}
