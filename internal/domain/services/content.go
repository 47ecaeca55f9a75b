package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ersonp/survive-core/internal/domain/entities"
	"github.com/ersonp/survive-core/internal/infrastructure/parsers"
)

// EffectDefaults are the statistic deltas applied by outcomes that don't
// carry effects of their own.
type EffectDefaults struct {
	Pass        []entities.Effect
	PartialPass []entities.Effect
	Fail        []entities.Effect
}

// DefaultEffects returns the stock outcome effects.
func DefaultEffects() EffectDefaults {
	return EffectDefaults{
		Pass: []entities.Effect{
			{Attribute: entities.AttributeStrength, Delta: 2},
			{Attribute: entities.AttributeIntelligence, Delta: 2},
			{Attribute: entities.AttributeAgility, Delta: 2},
		},
		PartialPass: []entities.Effect{
			{Attribute: entities.AttributeStrength, Delta: 1},
			{Attribute: entities.AttributeIntelligence, Delta: 1},
			{Attribute: entities.AttributeAgility, Delta: 1},
		},
		Fail: []entities.Effect{
			{Attribute: entities.AttributeHealth, Delta: -20},
		},
	}
}

// ContentService turns raw event records into locations.
type ContentService struct {
	effects EffectDefaults
}

// NewContentService creates a new content service.
func NewContentService(effects EffectDefaults) (*ContentService, error) {
	var err error
	for _, group := range []*[]entities.Effect{&effects.Pass, &effects.PartialPass, &effects.Fail} {
		if *group, err = canonicalEffects(*group); err != nil {
			return nil, fmt.Errorf("default effects: %w", err)
		}
	}
	return &ContentService{effects: effects}, nil
}

// BuildLocation validates every record and builds a location from them.
// Any invalid record rejects the whole source; all problems are reported.
func (s *ContentService) BuildLocation(name string, records []parsers.RawEvent) (*entities.Location, error) {
	events, err := s.BuildEvents(name, records)
	if err != nil {
		return nil, err
	}
	return entities.NewLocation(name, events), nil
}

// BuildEvents validates and converts records to events. A source without
// records is rejected: its location could never be played.
func (s *ContentService) BuildEvents(source string, records []parsers.RawEvent) ([]*entities.Event, error) {
	if len(records) == 0 {
		return nil, &entities.ContentError{Source: source, Field: "events", Err: entities.ErrMissingField}
	}

	events := make([]*entities.Event, 0, len(records))
	var errs []error

	for i := range records {
		raw := &records[i]
		record := raw.Record
		if record == 0 {
			record = i + 1
		}

		event, err := s.buildEvent(raw)
		if err != nil {
			var ce *entities.ContentError
			if errors.As(err, &ce) {
				ce.Source = source
				ce.Record = record
			}
			errs = append(errs, err)
			continue
		}
		events = append(events, event)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return events, nil
}

// buildEvent validates a single record and converts it.
func (s *ContentService) buildEvent(raw *parsers.RawEvent) (*entities.Event, error) {
	if raw.PromptText == "" {
		return nil, missing("prompt_text")
	}
	if raw.PrimaryAttribute == "" {
		return nil, missing("primary_attribute")
	}
	if raw.Pass == nil || raw.Pass.Message == "" {
		return nil, missing("pass.message")
	}
	if raw.Fail == nil || raw.Fail.Message == "" {
		return nil, missing("fail.message")
	}

	primary, ok := entities.CanonicalAttribute(raw.PrimaryAttribute)
	if !ok {
		return nil, invalid("primary_attribute", raw.PrimaryAttribute)
	}

	var secondary string
	if raw.SecondaryAttribute != "" {
		if secondary, ok = entities.CanonicalAttribute(raw.SecondaryAttribute); !ok {
			return nil, invalid("secondary_attribute", raw.SecondaryAttribute)
		}
		if secondary == primary {
			return nil, invalid("secondary_attribute", raw.SecondaryAttribute)
		}
	}

	pass, err := s.outcome("pass", raw.Pass, s.effects.Pass)
	if err != nil {
		return nil, err
	}
	fail, err := s.outcome("fail", raw.Fail, s.effects.Fail)
	if err != nil {
		return nil, err
	}

	var partial *entities.Outcome
	if raw.PartialPass != nil {
		if secondary == "" {
			return nil, invalid("partial_pass", "requires secondary_attribute")
		}
		o, err := s.outcome("partial_pass", raw.PartialPass, s.effects.PartialPass)
		if err != nil {
			return nil, err
		}
		if o.Message == "" {
			o.Message = entities.DefaultPartialPassMessage
		}
		partial = &o
	} else if secondary != "" {
		partial = &entities.Outcome{
			Message: entities.DefaultPartialPassMessage,
			Effects: s.effects.PartialPass,
		}
	}

	choices := raw.Choices
	if len(choices) == 0 {
		choices = entities.DefaultChoices
	}

	return &entities.Event{
		Prompt:      raw.PromptText,
		Primary:     primary,
		Secondary:   secondary,
		Choices:     append([]string(nil), choices...),
		Pass:        pass,
		PartialPass: partial,
		Fail:        fail,
	}, nil
}

// outcome converts a raw outcome, falling back to the default effects.
func (s *ContentService) outcome(field string, raw *parsers.RawOutcome, defaults []entities.Effect) (entities.Outcome, error) {
	if len(raw.Effects) == 0 {
		return entities.Outcome{Message: raw.Message, Effects: defaults}, nil
	}

	effects := make([]entities.Effect, 0, len(raw.Effects))
	for attr, delta := range raw.Effects {
		effects = append(effects, entities.Effect{Attribute: attr, Delta: delta})
	}

	effects, err := canonicalEffects(effects)
	if err != nil {
		var ce *entities.ContentError
		if errors.As(err, &ce) {
			ce.Field = field + "." + ce.Field
		}
		return entities.Outcome{}, err
	}
	return entities.Outcome{Message: raw.Message, Effects: effects}, nil
}

// canonicalEffects validates attribute names and orders effects by statistic order.
func canonicalEffects(effects []entities.Effect) ([]entities.Effect, error) {
	out := make([]entities.Effect, 0, len(effects))
	for _, e := range effects {
		attr, ok := entities.CanonicalAttribute(e.Attribute)
		if !ok {
			return nil, invalid("effects", e.Attribute)
		}
		out = append(out, entities.Effect{Attribute: attr, Delta: e.Delta})
	}

	order := make(map[string]int)
	for i, name := range entities.AttributeNames() {
		order[name] = i
	}
	sort.SliceStable(out, func(i, j int) bool {
		return order[out[i].Attribute] < order[out[j].Attribute]
	})
	return out, nil
}

func missing(field string) *entities.ContentError {
	return &entities.ContentError{Field: field, Err: entities.ErrMissingField}
}

func invalid(field, value string) *entities.ContentError {
	return &entities.ContentError{Field: field, Value: value, Err: entities.ErrInvalidField}
}
