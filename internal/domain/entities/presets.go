package entities

// DefaultPresets are the built-in playable archetypes.
var DefaultPresets = []CharacterConfig{
	{
		Name:         "Sally",
		Strength:     20,
		Health:       90,
		Agility:      15,
		Intelligence: 20,
		Descriptions: map[string]string{
			AttributeStrength:     "Sally is pretty strong.",
			AttributeHealth:       "Sally has low health.",
			AttributeAgility:      "Sally is very fast.",
			AttributeIntelligence: "Sally is very smart.",
		},
	},
	{
		Name:         "Kirk",
		Strength:     20,
		Health:       100,
		Agility:      10,
		Intelligence: 10,
		Descriptions: map[string]string{
			AttributeStrength:     "Kirk is strong.",
			AttributeHealth:       "Kirk has high health.",
			AttributeAgility:      "Kirk is slow.",
			AttributeIntelligence: "Kirk is not very smart.",
		},
	},
}

// NewParty builds one character per preset, in order.
func NewParty(presets []CharacterConfig) []*Character {
	party := make([]*Character, len(presets))
	for i := range presets {
		party[i] = NewCharacter(presets[i])
	}
	return party
}
