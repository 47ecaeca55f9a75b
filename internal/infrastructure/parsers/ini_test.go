package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestINIParser_Parse(t *testing.T) {
	input := `
; farm events
[gate]
prompt_text = A heavy gate blocks the road. #1
primary_attribute = Strength
secondary_attribute = Agility
choices = Lift the gate | Squeeze underneath
pass = You lift the gate.
partial_pass = You squeeze under.
fail = The gate slams down.
fail_effects = health:-30, agility:-5

[dog]
prompt_text = A dog growls.
primary_attribute = Agility
pass = You outrun it.
fail = It bites.
`

	parser := &INIParser{}
	result, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, RawEvent{
		PromptText:         "A heavy gate blocks the road. #1",
		PrimaryAttribute:   "Strength",
		SecondaryAttribute: "Agility",
		Choices:            []string{"Lift the gate", "Squeeze underneath"},
		Pass:               &RawOutcome{Message: "You lift the gate."},
		PartialPass:        &RawOutcome{Message: "You squeeze under."},
		Fail: &RawOutcome{
			Message: "The gate slams down.",
			Effects: map[string]int{"health": -30, "agility": -5},
		},
		Record: 1,
	}, result[0])

	assert.Equal(t, "A dog growls.", result[1].PromptText)
	assert.Nil(t, result[1].PartialPass)
	assert.Empty(t, result[1].Choices)
	assert.Equal(t, 2, result[1].Record)
}

func TestINIParser_Parse_MissingOutcomes(t *testing.T) {
	input := `
[door]
prompt_text = A door.
primary_attribute = Intelligence
`

	parser := &INIParser{}
	result, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Nil(t, result[0].Pass)
	assert.Nil(t, result[0].Fail)
}

func TestINIParser_Parse_Empty(t *testing.T) {
	parser := &INIParser{}
	result, err := parser.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestINIParser_Parse_InvalidEffects(t *testing.T) {
	tests := []struct {
		name    string
		effects string
		errMsg  string
	}{
		{name: "missing delta", effects: "health", errMsg: "expected attribute:delta"},
		{name: "non-numeric delta", effects: "health:lots", errMsg: "invalid delta for health"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "[bad]\nprompt_text = x\npass = p\npass_effects = " + tt.effects + "\n"

			parser := &INIParser{}
			_, err := parser.Parse(strings.NewReader(input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), `section "bad"`)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
