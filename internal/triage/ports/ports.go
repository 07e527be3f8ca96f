// Package ports defines the boundaries between the triage service and
// the code-hosting API. Adapters implement these; the app layer and its
// tests depend only on the interfaces.
package ports

import (
	"context"

	"github.com/nathantilsley/dep-sentry/internal/triage/domain"
)

// IdentityReader resolves the login the credential acts as.
type IdentityReader interface {
	AuthenticatedLogin(ctx context.Context) (string, error)
}

// OrgReader probes whether the credential can read organization
// metadata. Authorization failures come back wrapping
// domain.ErrForbidden or domain.ErrUnauthorized.
type OrgReader interface {
	GetOrganization(ctx context.Context, org string) error
}

// PullRequestReader lists and fetches pull requests. ListOpen does not
// populate MergeableState; Get does.
type PullRequestReader interface {
	ListOpen(ctx context.Context, repo domain.RepoRef) ([]domain.PullRequest, error)
	Get(ctx context.Context, repo domain.RepoRef, number int) (domain.PullRequest, error)
}

// BranchUpdater requests a merge-forward of the pull request's head
// branch. expectedHeadSHA guards against the head moving between the
// freshness read and the update: the request fails instead of acting on
// a stale head. An outright refusal comes back as a
// domain.BranchUpdateRejectedError.
type BranchUpdater interface {
	UpdateBranch(ctx context.Context, repo domain.RepoRef, number int, expectedHeadSHA string) error
}

// StatusReader returns the combined-status aggregate state for a
// commit: "success", "pending" or "failure". Implementations backed by
// a checks-style API can be swapped in without touching the engine.
type StatusReader interface {
	CombinedState(ctx context.Context, repo domain.RepoRef, ref string) (string, error)
}

// ReviewManager lists existing reviews and records approvals.
type ReviewManager interface {
	ListReviews(ctx context.Context, repo domain.RepoRef, number int) ([]domain.Review, error)
	Approve(ctx context.Context, repo domain.RepoRef, number int) error
}
