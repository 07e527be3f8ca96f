// Package domain holds the triage decision model: the minimal views of
// repositories, pull requests and reviews the engine operates on, the
// per-pull-request decision logic, and the run-level outcome accounting.
package domain

import (
	"fmt"
	"strings"
)

// RepoRef identifies a repository by owner and name.
type RepoRef struct {
	Owner string
	Name  string
}

func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRepoRef parses an "owner/name" pair. Both segments must be
// non-empty and no further slashes are allowed.
func ParseRepoRef(s string) (RepoRef, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return RepoRef{}, fmt.Errorf("invalid repository %q, expected owner/name", s)
	}
	return RepoRef{Owner: parts[0], Name: parts[1]}, nil
}

// MergeableState is GitHub's mergeable_state field on a pull request.
// It is only populated on a single-PR fetch, not on list responses.
type MergeableState string

const (
	StateBehind  MergeableState = "behind"
	StateBlocked MergeableState = "blocked"
	StateClean   MergeableState = "clean"
	StateDirty   MergeableState = "dirty"
	StateUnknown MergeableState = "unknown"
)

// Stale reports whether the head branch has fallen behind its base and
// needs a merge-forward before CI results can be trusted.
func (s MergeableState) Stale() bool {
	return s == StateBehind || s == StateBlocked
}

// PullRequest is the minimal view of a pull request the engine needs.
type PullRequest struct {
	Number         int
	Title          string
	HeadSHA        string
	HeadRef        string
	BaseRef        string
	AuthorLogin    string
	MergeableState MergeableState
}

// ReviewApproved is the review state recorded for an approving review.
const ReviewApproved = "APPROVED"

// Review is a recorded reviewer decision on a pull request.
type Review struct {
	AuthorLogin string
	State       string
}

// HasApprovalBy reports whether any review in the list is an approval
// authored by the given login. Logins compare case-insensitively, as
// GitHub treats them.
func HasApprovalBy(reviews []Review, login string) bool {
	for _, r := range reviews {
		if r.State == ReviewApproved && strings.EqualFold(r.AuthorLogin, login) {
			return true
		}
	}
	return false
}

// MatchesBotAuthor reports whether the author login looks like one of
// the configured dependency-bot identities. The match is a
// case-insensitive substring test, so "dependabot" covers both
// "dependabot[bot]" and "dependabot-preview[bot]".
func MatchesBotAuthor(login string, markers []string) bool {
	for _, m := range markers {
		if m == "" {
			continue
		}
		if strings.Contains(strings.ToLower(login), strings.ToLower(m)) {
			return true
		}
	}
	return false
}
