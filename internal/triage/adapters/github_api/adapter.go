// Package githubapi implements the triage ports against the GitHub
// REST API via go-github.
package githubapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gogithub "github.com/google/go-github/v68/github"

	"github.com/nathantilsley/dep-sentry/internal/triage/domain"
)

// Adapter implements ports.IdentityReader, ports.OrgReader,
// ports.PullRequestReader, ports.BranchUpdater, ports.StatusReader and
// ports.ReviewManager on one shared client.
type Adapter struct {
	client *gogithub.Client
}

// New creates a new GitHub API adapter.
func New(client *gogithub.Client) *Adapter {
	return &Adapter{client: client}
}

// AuthenticatedLogin returns the login of the credential's identity.
func (a *Adapter) AuthenticatedLogin(ctx context.Context) (string, error) {
	user, _, err := a.client.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("resolving authenticated identity: %w", classifyAuth(err))
	}
	return user.GetLogin(), nil
}

// GetOrganization probes read access to organization metadata.
func (a *Adapter) GetOrganization(ctx context.Context, org string) error {
	_, _, err := a.client.Organizations.Get(ctx, org)
	if err != nil {
		return fmt.Errorf("getting organization %s: %w", org, classifyAuth(err))
	}
	return nil
}

// ListOpen returns all open pull requests in the repository. The list
// endpoint does not populate mergeable_state; use Get for that.
func (a *Adapter) ListOpen(ctx context.Context, repo domain.RepoRef) ([]domain.PullRequest, error) {
	var prs []domain.PullRequest
	opts := &gogithub.PullRequestListOptions{
		State:       "open",
		ListOptions: gogithub.ListOptions{PerPage: 100},
	}

	for {
		page, resp, err := a.client.PullRequests.List(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return nil, fmt.Errorf("listing open pull requests for %s: %w", repo, classifyAuth(err))
		}

		for _, pr := range page {
			prs = append(prs, fromGitHub(pr))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return prs, nil
}

// Get fetches a single pull request, including its mergeable state.
func (a *Adapter) Get(ctx context.Context, repo domain.RepoRef, number int) (domain.PullRequest, error) {
	pr, _, err := a.client.PullRequests.Get(ctx, repo.Owner, repo.Name, number)
	if err != nil {
		return domain.PullRequest{}, fmt.Errorf("getting pull request %s#%d: %w", repo, number, err)
	}
	return fromGitHub(pr), nil
}

// UpdateBranch requests a merge-forward of the head branch. GitHub
// enqueues the update and answers 202, which go-github surfaces as an
// AcceptedError; that is the success path here. A 422 refusal maps to
// domain.BranchUpdateRejectedError.
func (a *Adapter) UpdateBranch(ctx context.Context, repo domain.RepoRef, number int, expectedHeadSHA string) error {
	opts := &gogithub.PullRequestBranchUpdateOptions{
		ExpectedHeadSHA: gogithub.String(expectedHeadSHA),
	}
	_, _, err := a.client.PullRequests.UpdateBranch(ctx, repo.Owner, repo.Name, number, opts)
	if err == nil {
		return nil
	}

	var accepted *gogithub.AcceptedError
	if errors.As(err, &accepted) {
		return nil
	}

	var ger *gogithub.ErrorResponse
	if errors.As(err, &ger) && ger.Response != nil && ger.Response.StatusCode == http.StatusUnprocessableEntity {
		return fmt.Errorf("updating branch for %s#%d: %w", repo, number,
			&domain.BranchUpdateRejectedError{Reason: ger.Message})
	}

	return fmt.Errorf("updating branch for %s#%d: %w", repo, number, err)
}

// CombinedState returns the aggregate state of the combined status for
// a commit. Individual status contexts are not inspected; the single
// aggregate verdict is authoritative.
func (a *Adapter) CombinedState(ctx context.Context, repo domain.RepoRef, ref string) (string, error) {
	status, _, err := a.client.Repositories.GetCombinedStatus(ctx, repo.Owner, repo.Name, ref, &gogithub.ListOptions{PerPage: 1})
	if err != nil {
		return "", fmt.Errorf("getting combined status for %s@%s: %w", repo, ref, err)
	}
	return status.GetState(), nil
}

// ListReviews returns all reviews recorded on the pull request.
func (a *Adapter) ListReviews(ctx context.Context, repo domain.RepoRef, number int) ([]domain.Review, error) {
	var reviews []domain.Review
	opts := &gogithub.ListOptions{PerPage: 100}

	for {
		page, resp, err := a.client.PullRequests.ListReviews(ctx, repo.Owner, repo.Name, number, opts)
		if err != nil {
			return nil, fmt.Errorf("listing reviews for %s#%d: %w", repo, number, err)
		}

		for _, review := range page {
			reviews = append(reviews, domain.Review{
				AuthorLogin: review.GetUser().GetLogin(),
				State:       review.GetState(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return reviews, nil
}

// Approve records an approving review with an empty body, keeping the
// action inert in PR history beyond the approval itself.
func (a *Adapter) Approve(ctx context.Context, repo domain.RepoRef, number int) error {
	review := &gogithub.PullRequestReviewRequest{
		Event: gogithub.String("APPROVE"),
		Body:  gogithub.String(""),
	}
	_, _, err := a.client.PullRequests.CreateReview(ctx, repo.Owner, repo.Name, number, review)
	if err != nil {
		return fmt.Errorf("creating approving review for %s#%d: %w", repo, number, err)
	}
	return nil
}

func fromGitHub(pr *gogithub.PullRequest) domain.PullRequest {
	return domain.PullRequest{
		Number:         pr.GetNumber(),
		Title:          pr.GetTitle(),
		HeadSHA:        pr.GetHead().GetSHA(),
		HeadRef:        pr.GetHead().GetRef(),
		BaseRef:        pr.GetBase().GetRef(),
		AuthorLogin:    pr.GetUser().GetLogin(),
		MergeableState: domain.MergeableState(pr.GetMergeableState()),
	}
}

// classifyAuth wraps the two authorization failure modes with their
// domain sentinels so callers can classify without seeing HTTP codes.
func classifyAuth(err error) error {
	var ger *gogithub.ErrorResponse
	if !errors.As(err, &ger) || ger.Response == nil {
		return err
	}
	switch ger.Response.StatusCode {
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrForbidden, ger.Message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, ger.Message)
	}
	return err
}
