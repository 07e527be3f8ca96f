package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	githubapi "github.com/nathantilsley/dep-sentry/internal/triage/adapters/github_api"
	"github.com/nathantilsley/dep-sentry/internal/triage/app"
)

// newProbeCmd creates the probe command, a diagnostic that reports the
// acting identity and per-organization access without touching any
// pull request.
func newProbeCmd() *cobra.Command {
	var opts triageOptions

	cmd := &cobra.Command{
		Use:   "probe ORG [ORG...]",
		Short: "Report token identity and organization access",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(opts.verbose)

			client, err := newGitHubClient(cmd, opts)
			if err != nil {
				return err
			}

			adapter := githubapi.New(client)
			service := app.NewService(app.Ports{
				Identity: adapter,
				Orgs:     adapter,
			}, logger, nil)

			report, err := service.Probe(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "acting as: %s\n", report.Login)
			blocked := 0
			for _, d := range report.Decisions {
				if d.HasAccess {
					fmt.Fprintf(out, "  %s: accessible\n", d.Org)
					continue
				}
				blocked++
				fmt.Fprintf(out, "  %s: blocked (%s)\n", d.Org, d.Reason)
			}
			if blocked > 0 {
				return errors.New("one or more organizations are not accessible")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.token, "token", "", "GitHub personal access token (or GITHUB_TOKEN env var)")
	cmd.Flags().Int64Var(&opts.appID, "app-id", 0, "GitHub App ID (App auth instead of a token)")
	cmd.Flags().Int64Var(&opts.installationID, "installation-id", 0, "GitHub App installation ID")
	cmd.Flags().StringVar(&opts.privateKey, "private-key", "", "path to the GitHub App private key")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log probe details")

	return cmd
}
