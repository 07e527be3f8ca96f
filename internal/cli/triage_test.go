package cli

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nathantilsley/dep-sentry/internal/triage/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolveTriageConfig_ReposFile(t *testing.T) {
	reposFile := filepath.Join(t.TempDir(), "repos.txt")
	require.NoError(t, os.WriteFile(reposFile, []byte("acme/widgets\nbad line\n"), 0o600))

	repos, markers, err := resolveTriageConfig(triageOptions{reposFile: reposFile}, discardLogger())
	require.NoError(t, err)
	require.Equal(t, []domain.RepoRef{{Owner: "acme", Name: "widgets"}}, repos)
	require.Empty(t, markers, "no markers means the service default applies")
}

func TestResolveTriageConfig_ConfigFileWithFlagOverride(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "dep-sentry.toml")
	require.NoError(t, os.WriteFile(configFile, []byte(
		"bot_authors = [\"renovate\"]\nrepos = [\"acme/widgets\"]\n"), 0o600))

	repos, markers, err := resolveTriageConfig(triageOptions{configFile: configFile}, discardLogger())
	require.NoError(t, err)
	require.Equal(t, []domain.RepoRef{{Owner: "acme", Name: "widgets"}}, repos)
	require.Equal(t, []string{"renovate"}, markers)

	_, markers, err = resolveTriageConfig(triageOptions{
		configFile: configFile,
		botAuthors: []string{"dependabot"},
	}, discardLogger())
	require.NoError(t, err)
	require.Equal(t, []string{"dependabot"}, markers, "flags win over the config file")
}

func TestResolveTriageConfig_NothingConfigured(t *testing.T) {
	_, _, err := resolveTriageConfig(triageOptions{}, discardLogger())
	require.Error(t, err)
}

func TestGetEnvOrFlag(t *testing.T) {
	t.Setenv("DEP_SENTRY_TEST_TOKEN", "from-env")

	require.Equal(t, "from-flag", getEnvOrFlag("from-flag", "DEP_SENTRY_TEST_TOKEN"))
	require.Equal(t, "from-env", getEnvOrFlag("", "DEP_SENTRY_TEST_TOKEN"))
	require.Equal(t, "", getEnvOrFlag("", "DEP_SENTRY_TEST_ABSENT"))
}
