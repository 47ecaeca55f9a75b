package handlers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/survive-core/internal/domain/entities"
	"github.com/ersonp/survive-core/internal/domain/services"
	"github.com/ersonp/survive-core/internal/infrastructure/config"
)

const gateJSON = `[{
  "prompt_text": "A heavy gate blocks the way.",
  "primary_attribute": "Strength",
  "secondary_attribute": "Agility",
  "choices": ["Lift it", "Squeeze under"],
  "pass": {"message": "You lift the gate."},
  "partial_pass": {"message": "You squeeze under."},
  "fail": {"message": "The gate crushes you."}
}]`

func newContentHandler(t *testing.T) *ContentHandler {
	t.Helper()
	svc, err := services.NewContentService(services.DefaultEffects())
	require.NoError(t, err)
	return NewContentHandler(svc)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestContentHandler_Load_JSONFile(t *testing.T) {
	handler := newContentHandler(t)
	path := writeFile(t, t.TempDir(), "Court Yard.json", gateJSON)

	loc, err := handler.Load(config.ContentSource{Path: path})

	require.NoError(t, err)
	assert.Equal(t, "court_yard", loc.Name)
	assert.Equal(t, 1, loc.Len())
}

func TestContentHandler_Load_CSVFile(t *testing.T) {
	handler := newContentHandler(t)
	content := "prompt_text,primary_attribute,pass_message,fail_message\n" +
		"A locked door.,Intelligence,You pick the lock.,You are stuck.\n"
	path := writeFile(t, t.TempDir(), "door.csv", content)

	loc, err := handler.Load(config.ContentSource{Name: "cellar", Path: path})

	require.NoError(t, err)
	assert.Equal(t, "cellar", loc.Name)
	assert.Equal(t, 1, loc.Len())
}

func TestContentHandler_Load_INIFile(t *testing.T) {
	handler := newContentHandler(t)
	content := "[well]\nprompt_text = An old well.\nprimary_attribute = strength\n" +
		"pass = You draw water.\nfail = The rope snaps.\nfail_effects = health:-35\n"
	path := writeFile(t, t.TempDir(), "well.ini", content)

	loc, err := handler.Load(config.ContentSource{Path: path})

	require.NoError(t, err)
	assert.Equal(t, "well", loc.Name)
	require.Equal(t, 1, loc.Len())
}

func TestContentHandler_Load_ExplicitFormat(t *testing.T) {
	handler := newContentHandler(t)
	content := "- prompt_text: A dog growls.\n  primary_attribute: agility\n  pass: {message: You outrun it.}\n  fail: {message: It bites.}\n"
	path := writeFile(t, t.TempDir(), "dog.txt", content)

	loc, err := handler.Load(config.ContentSource{Path: path, Format: "yaml"})

	require.NoError(t, err)
	assert.Equal(t, 1, loc.Len())
}

func TestContentHandler_Load_Errors(t *testing.T) {
	dir := t.TempDir()
	handler := newContentHandler(t)

	tests := []struct {
		name   string
		src    config.ContentSource
		errMsg string
	}{
		{
			name:   "unsupported format",
			src:    config.ContentSource{Path: writeFile(t, dir, "data.txt", "x")},
			errMsg: "unsupported format",
		},
		{
			name:   "missing file",
			src:    config.ContentSource{Path: filepath.Join(dir, "nope.json")},
			errMsg: "opening file",
		},
		{
			name:   "malformed json",
			src:    config.ContentSource{Path: writeFile(t, dir, "bad.json", "{")},
			errMsg: "parsing",
		},
		{
			name:   "invalid record",
			src:    config.ContentSource{Path: writeFile(t, dir, "invalid.json", `[{"prompt_text": "x"}]`)},
			errMsg: "record 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Load(tt.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestContentHandler_Load_InvalidRecordIsContentError(t *testing.T) {
	handler := newContentHandler(t)
	path := writeFile(t, t.TempDir(), "invalid.json", `[{"prompt_text": "x", "primary_attribute": "Luck", "pass": {"message": "a"}, "fail": {"message": "b"}}]`)

	_, err := handler.Load(config.ContentSource{Path: path})

	assert.ErrorIs(t, err, entities.ErrInvalidField)
}

func TestContentHandler_Load_EmptySources(t *testing.T) {
	dir := t.TempDir()
	handler := newContentHandler(t)

	for _, name := range []string{"empty.json", "empty.yaml", "empty.ini", "header_only.csv"} {
		t.Run(name, func(t *testing.T) {
			content := ""
			switch name {
			case "empty.json":
				content = "[]"
			case "header_only.csv":
				content = "prompt_text,primary_attribute,pass_message,fail_message\n"
			}
			path := writeFile(t, dir, name, content)

			loc, err := handler.Load(config.ContentSource{Path: path})
			require.Error(t, err)
			assert.Nil(t, loc)
			assert.ErrorIs(t, err, entities.ErrMissingField)
			assert.Contains(t, err.Error(), "events")
		})
	}
}

func TestContentHandler_LoadLocations(t *testing.T) {
	dir := t.TempDir()
	handler := newContentHandler(t)
	a := writeFile(t, dir, "a.json", gateJSON)
	b := writeFile(t, dir, "b.json", gateJSON)

	locations, err := handler.LoadLocations(context.Background(), []config.ContentSource{{Path: a}, {Path: b}})
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "a", locations[0].Name)
	assert.Equal(t, "b", locations[1].Name)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = handler.LoadLocations(ctx, []config.ContentSource{{Path: a}})
	assert.ErrorIs(t, err, context.Canceled)
}
