package integration

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ersonp/survive-core/internal/application/handlers"
	"github.com/ersonp/survive-core/internal/domain/ports"
	"github.com/ersonp/survive-core/internal/domain/services"
	"github.com/ersonp/survive-core/internal/infrastructure/config"
	"github.com/ersonp/survive-core/internal/infrastructure/journal/sqlite"
)

// skipShort skips integration tests in short mode.
func skipShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
}

// openJournal opens a file journal and closes it when the test ends.
func openJournal(t *testing.T, path string) *sqlite.Repository {
	t.Helper()

	repo, err := sqlite.NewRepository(config.JournalConfig{Enabled: true, Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo
}

// initProject runs init in a fresh directory and returns its base path and
// loaded config.
func initProject(t *testing.T) (string, *config.Config) {
	t.Helper()

	base := t.TempDir()
	opener := func(path string) (ports.Journal, error) {
		repo, err := sqlite.NewRepository(config.JournalConfig{Enabled: true, Path: path})
		if err != nil {
			return nil, err
		}
		return repo, nil
	}
	_, err := handlers.NewInitHandler(opener).Handle(context.Background(), base)
	require.NoError(t, err)

	cfg, err := config.Load(base)
	require.NoError(t, err)
	return base, cfg
}

// newContentHandler builds a content handler with the stock effects.
func newContentHandler(t *testing.T) *handlers.ContentHandler {
	t.Helper()

	svc, err := services.NewContentService(services.DefaultEffects())
	require.NoError(t, err)
	return handlers.NewContentHandler(svc)
}

// answers returns n lines that all pick the first option.
func answers(n int) *strings.Reader {
	return strings.NewReader(strings.Repeat("1\n", n))
}
