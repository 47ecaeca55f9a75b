package parsers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// INIParser parses event records from INI format, one section per event in
// file order. Section names are free-form labels and must be unique.
//
//	[gate]
//	prompt_text = A heavy gate blocks the road.
//	primary_attribute = Strength
//	secondary_attribute = Agility
//	choices = Lift the gate | Squeeze underneath
//	pass = You lift the gate.
//	partial_pass = You squeeze under.
//	fail = The gate slams down.
//	fail_effects = health:-30, agility:-5
type INIParser struct{}

// Parse reads INI from the reader and returns parsed events.
func (p *INIParser) Parse(r io.Reader) ([]RawEvent, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
		KeyValueDelimiters:  "=",
	}, r)
	if err != nil {
		return nil, fmt.Errorf("parsing INI: %w", err)
	}

	var events []RawEvent
	for _, sec := range cfg.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}

		event, err := p.parseSection(sec)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", sec.Name(), err)
		}
		event.Record = len(events) + 1
		events = append(events, event)
	}

	return events, nil
}

// parseSection converts one section to a RawEvent.
func (p *INIParser) parseSection(sec *ini.Section) (RawEvent, error) {
	event := RawEvent{
		PromptText:         sec.Key("prompt_text").String(),
		PrimaryAttribute:   sec.Key("primary_attribute").String(),
		SecondaryAttribute: sec.Key("secondary_attribute").String(),
	}

	var err error
	if event.Pass, err = p.outcome(sec, "pass"); err != nil {
		return RawEvent{}, err
	}
	if event.Fail, err = p.outcome(sec, "fail"); err != nil {
		return RawEvent{}, err
	}
	if event.PartialPass, err = p.outcome(sec, "partial_pass"); err != nil {
		return RawEvent{}, err
	}

	for _, c := range strings.Split(sec.Key("choices").String(), ChoiceSeparator) {
		if c = strings.TrimSpace(c); c != "" {
			event.Choices = append(event.Choices, c)
		}
	}

	return event, nil
}

// outcome reads the <name> message key and the optional <name>_effects key.
// It returns nil when the section has neither.
func (p *INIParser) outcome(sec *ini.Section, name string) (*RawOutcome, error) {
	if !sec.HasKey(name) && !sec.HasKey(name+"_effects") {
		return nil, nil
	}

	out := &RawOutcome{Message: sec.Key(name).String()}
	for _, pair := range sec.Key(name + "_effects").Strings(",") {
		attr, value, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("%s_effects: expected attribute:delta, got %q", name, pair)
		}
		delta, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%s_effects: invalid delta for %s: %w", name, attr, err)
		}
		if out.Effects == nil {
			out.Effects = make(map[string]int)
		}
		out.Effects[strings.TrimSpace(attr)] = delta
	}

	return out, nil
}
