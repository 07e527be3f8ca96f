package cli

import (
	"errors"
	"fmt"
	"log/slog"

	gogithub "github.com/google/go-github/v68/github"
	"github.com/spf13/cobra"

	ghauth "github.com/nathantilsley/dep-sentry/internal/triage/adapters/gh_auth"
	githubapi "github.com/nathantilsley/dep-sentry/internal/triage/adapters/github_api"
	repolist "github.com/nathantilsley/dep-sentry/internal/triage/adapters/repo_list"
	"github.com/nathantilsley/dep-sentry/internal/triage/app"
	"github.com/nathantilsley/dep-sentry/internal/triage/domain"
)

type triageOptions struct {
	reposFile  string
	configFile string
	botAuthors []string

	token          string
	appID          int64
	installationID int64
	privateKey     string

	verbose bool
}

// newTriageCmd creates the triage command.
func newTriageCmd() *cobra.Command {
	var opts triageOptions

	cmd := &cobra.Command{
		Use:   "triage",
		Short: "Run one triage pass over the configured repositories",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(opts.verbose)

			repos, botMarkers, err := resolveTriageConfig(opts, logger)
			if err != nil {
				return err
			}

			client, err := newGitHubClient(cmd, opts)
			if err != nil {
				return err
			}

			adapter := githubapi.New(client)
			service := app.NewService(app.Ports{
				Identity:     adapter,
				Orgs:         adapter,
				PullRequests: adapter,
				Branches:     adapter,
				Statuses:     adapter,
				Reviews:      adapter,
			}, logger, botMarkers)

			stats, err := service.Run(cmd.Context(), repos)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "triaged %d item(s): %s\n", stats.Total(), stats.Summary())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.reposFile, "repos", "", "path to a file with one owner/name per line")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "path to a TOML config file")
	cmd.Flags().StringSliceVar(&opts.botAuthors, "bot-author", nil,
		"author substring(s) identifying dependency-bot PRs (default dependabot)")
	cmd.Flags().StringVar(&opts.token, "token", "", "GitHub personal access token (or GITHUB_TOKEN env var)")
	cmd.Flags().Int64Var(&opts.appID, "app-id", 0, "GitHub App ID (App auth instead of a token)")
	cmd.Flags().Int64Var(&opts.installationID, "installation-id", 0, "GitHub App installation ID")
	cmd.Flags().StringVar(&opts.privateKey, "private-key", "", "path to the GitHub App private key")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log per-PR decisions")

	return cmd
}

// resolveTriageConfig merges flags and the optional config file into
// the repository set and bot markers. Flags win over the file.
func resolveTriageConfig(opts triageOptions, logger *slog.Logger) ([]domain.RepoRef, []string, error) {
	var (
		repos      []domain.RepoRef
		warnings   []string
		botMarkers = opts.botAuthors
		err        error
	)

	switch {
	case opts.configFile != "":
		var cfg repolist.Config
		cfg, err = repolist.LoadConfig(opts.configFile)
		if err != nil {
			return nil, nil, err
		}
		if len(botMarkers) == 0 {
			botMarkers = cfg.BotAuthors
		}
		repos, warnings, err = cfg.Repositories()
	case opts.reposFile != "":
		repos, warnings, err = repolist.LoadFile(opts.reposFile)
	default:
		return nil, nil, errors.New("no repositories configured\nProvide --repos FILE or --config FILE")
	}

	for _, w := range warnings {
		logger.Warn("skipping repository list entry", "warning", w)
	}
	if err != nil {
		return nil, nil, err
	}
	return repos, botMarkers, nil
}

func newGitHubClient(cmd *cobra.Command, opts triageOptions) (*gogithub.Client, error) {
	if opts.appID != 0 || opts.installationID != 0 || opts.privateKey != "" {
		if opts.appID == 0 || opts.installationID == 0 || opts.privateKey == "" {
			return nil, errors.New("app auth needs all of --app-id, --installation-id and --private-key")
		}
		return ghauth.NewAppClient(opts.appID, opts.installationID, opts.privateKey)
	}

	token := getEnvOrFlag(opts.token, "GITHUB_TOKEN")
	if token == "" {
		return nil, errors.New("github token required\nProvide via --token flag or GITHUB_TOKEN env var")
	}
	return ghauth.NewTokenClient(cmd.Context(), token), nil
}
