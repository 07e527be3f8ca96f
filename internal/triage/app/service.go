// Package app wires the triage ports into the per-run orchestration:
// the organization access gate, the per-repository loop, and the
// per-pull-request decision engine.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nathantilsley/dep-sentry/internal/triage/domain"
	"github.com/nathantilsley/dep-sentry/internal/triage/ports"
)

// Ports collects the boundary interfaces the service drives. One
// adapter usually implements all of them, but tests substitute them
// independently.
type Ports struct {
	Identity     ports.IdentityReader
	Orgs         ports.OrgReader
	PullRequests ports.PullRequestReader
	Branches     ports.BranchUpdater
	Statuses     ports.StatusReader
	Reviews      ports.ReviewManager
}

// Service runs dependency-bump triage across a set of repositories.
// One Service instance is one run: the identity and the per-org access
// decisions it caches must not outlive the run.
type Service struct {
	ports      Ports
	log        *slog.Logger
	botMarkers []string

	login       string
	accessCache map[string]domain.AccessDecision
}

// DefaultBotMarkers matches the stock dependency-update identities.
var DefaultBotMarkers = []string{"dependabot"}

// NewService creates a triage service. Empty botMarkers fall back to
// DefaultBotMarkers.
func NewService(p Ports, logger *slog.Logger, botMarkers []string) *Service {
	if len(botMarkers) == 0 {
		botMarkers = DefaultBotMarkers
	}
	return &Service{
		ports:       p,
		log:         logger,
		botMarkers:  botMarkers,
		accessCache: make(map[string]domain.AccessDecision),
	}
}

// Run triages every repository in order and returns the run tally.
// Only a failure to resolve the acting identity is fatal; everything
// after that is contained per repository or per pull request and
// lands in a statistics bucket instead.
func (s *Service) Run(ctx context.Context, repos []domain.RepoRef) (domain.RunStats, error) {
	login, err := s.ports.Identity.AuthenticatedLogin(ctx)
	if err != nil {
		return domain.RunStats{}, fmt.Errorf("credential unusable: %w", err)
	}
	s.login = login
	s.log.Info("acting as", "login", login)

	var stats domain.RunStats
	for _, repo := range repos {
		s.triageRepo(ctx, repo, &stats)
	}
	return stats, nil
}

func (s *Service) triageRepo(ctx context.Context, repo domain.RepoRef, stats *domain.RunStats) {
	gate := s.checkAccess(ctx, repo.Owner)
	if !gate.HasAccess {
		s.log.Warn("repository blocked at access gate",
			"repo", repo.String(), "org", gate.Org, "reason", gate.Reason)
		stats.Add(domain.OutcomeAccessBlocked)
		return
	}

	prs, err := s.ports.PullRequests.ListOpen(ctx, repo)
	if err != nil {
		s.log.Warn("skipping repository", "repo", repo.String(), "error", err)
		stats.Add(domain.OutcomeSkippedOther)
		return
	}

	for _, pr := range prs {
		if !domain.MatchesBotAuthor(pr.AuthorLogin, s.botMarkers) {
			continue
		}
		outcome := s.triagePullRequest(ctx, repo, pr.Number)
		stats.Add(outcome)
		s.log.Info("triaged pull request",
			"repo", repo.String(), "pr", pr.Number, "outcome", outcome.String())
	}
}

// checkAccess probes organization access once per org per run. Only
// the two explicit authorization failure modes deny access; any other
// probe failure fails open so a transient error cannot silently block
// a whole organization.
func (s *Service) checkAccess(ctx context.Context, org string) domain.AccessDecision {
	if decision, ok := s.accessCache[org]; ok {
		return decision
	}

	decision := domain.AccessDecision{Org: org, HasAccess: true}
	err := s.ports.Orgs.GetOrganization(ctx, org)
	switch {
	case err == nil:
	case domain.IsForbidden(err):
		decision = domain.AccessDecision{Org: org, Reason: "requires step-up authorization"}
	case domain.IsUnauthorized(err):
		decision = domain.AccessDecision{Org: org, Reason: "credential invalid or expired"}
	default:
		s.log.Warn("organization probe failed, proceeding anyway", "org", org, "error", err)
	}

	s.accessCache[org] = decision
	return decision
}

// triagePullRequest runs the decision sequence for one pull request.
// Inputs are gathered lazily in decision order: a triggered sync ends
// the pass before any CI or review call, because the new head SHA
// invalidates whatever verdict the old one had.
func (s *Service) triagePullRequest(ctx context.Context, repo domain.RepoRef, number int) domain.Outcome {
	// The list endpoint does not populate mergeable_state; re-fetch.
	pr, err := s.ports.PullRequests.Get(ctx, repo, number)
	if err != nil {
		s.log.Warn("skipping pull request", "repo", repo.String(), "pr", number, "error", err)
		return domain.OutcomeSkippedOther
	}

	state := pr.MergeableState
	if state.Stale() {
		err := s.ports.Branches.UpdateBranch(ctx, repo, pr.Number, pr.HeadSHA)
		if err == nil {
			return domain.OutcomeSynced
		}
		rejected, ok := domain.AsBranchUpdateRejected(err)
		if !ok {
			s.log.Warn("branch update failed", "repo", repo.String(), "pr", pr.Number, "error", err)
			return domain.OutcomeSkippedOther
		}
		if !rejected.NothingToUpdate() {
			// A genuine conflict needs the author; nothing more to do this pass.
			s.log.Info("branch unmergeable, leaving for manual resolution",
				"repo", repo.String(), "pr", pr.Number, "reason", rejected.Reason)
			return domain.OutcomeSkippedOther
		}
		// Remote says the branch is already current.
		state = domain.StateClean
	}

	verdict := s.ciVerdict(ctx, repo, pr.HeadSHA)

	alreadyApproved := false
	if verdict == domain.CISuccess {
		reviews, err := s.ports.Reviews.ListReviews(ctx, repo, pr.Number)
		if err != nil {
			// The guard is an optimization; the remote treats duplicate
			// approvals from one identity as idempotent.
			s.log.Warn("review list failed, assuming not yet approved",
				"repo", repo.String(), "pr", pr.Number, "error", err)
		} else {
			alreadyApproved = domain.HasApprovalBy(reviews, s.login)
		}
	}

	switch domain.Decide(state, verdict, alreadyApproved) {
	case domain.ActionSkipNotGreen:
		return domain.OutcomeSkippedNotGreen
	case domain.ActionAlreadyApproved:
		return domain.OutcomeApproved
	case domain.ActionApprove:
		if err := s.ports.Reviews.Approve(ctx, repo, pr.Number); err != nil {
			s.log.Warn("approval failed", "repo", repo.String(), "pr", pr.Number, "error", err)
			return domain.OutcomeSkippedOther
		}
		return domain.OutcomeApproved
	default:
		// ActionSync cannot occur: the stale path returned above.
		return domain.OutcomeSkippedOther
	}
}

// ciVerdict reduces the combined status to a readiness verdict. A
// failed query fails closed: an unconfirmed state is never green.
func (s *Service) ciVerdict(ctx context.Context, repo domain.RepoRef, sha string) domain.CIVerdict {
	state, err := s.ports.Statuses.CombinedState(ctx, repo, sha)
	if err != nil {
		s.log.Warn("status query failed, treating as not ready",
			"repo", repo.String(), "sha", sha, "error", err)
		return domain.CIUnknown
	}
	if state == "success" {
		return domain.CISuccess
	}
	return domain.CINotGreen
}
