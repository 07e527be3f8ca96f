package repolist

import (
	"github.com/BurntSushi/toml"

	"github.com/nathantilsley/dep-sentry/internal/triage/domain"
)

// Config is the optional TOML configuration file. Repositories may be
// listed inline, pointed at via a repos file, or both; the two sets
// are concatenated in that order.
type Config struct {
	BotAuthors []string `toml:"bot_authors"`
	Repos      []string `toml:"repos"`
	ReposFile  string   `toml:"repos_file"`
}

// LoadConfig decodes the TOML config at path.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, domain.NewConfigError("loading config %s: %v", path, err)
	}
	return cfg, nil
}

// Repositories resolves the full repository set from the config:
// inline entries first, then the repos file if configured. Malformed
// inline entries are warnings, matching the file format's behavior.
func (c Config) Repositories() ([]domain.RepoRef, []string, error) {
	var (
		repos    []domain.RepoRef
		warnings []string
	)

	for _, s := range c.Repos {
		ref, err := domain.ParseRepoRef(s)
		if err != nil {
			warnings = append(warnings, err.Error())
			continue
		}
		repos = append(repos, ref)
	}

	if c.ReposFile != "" {
		fromFile, fileWarnings, err := LoadFile(c.ReposFile)
		warnings = append(warnings, fileWarnings...)
		if err != nil {
			return nil, warnings, err
		}
		repos = append(repos, fromFile...)
	}

	if len(repos) == 0 {
		return nil, warnings, domain.NewConfigError("no repositories configured")
	}
	return repos, warnings, nil
}
