package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors the adapters map transport failures onto. The domain
// never inspects HTTP status codes directly.
var (
	// ErrForbidden marks an authorization rejection: the credential is
	// valid but lacks access, typically pending SAML step-up.
	ErrForbidden = errors.New("forbidden")

	// ErrUnauthorized marks an authentication rejection: the credential
	// itself is invalid or expired.
	ErrUnauthorized = errors.New("unauthorized")
)

// IsForbidden checks if an error is or wraps ErrForbidden.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsUnauthorized checks if an error is or wraps ErrUnauthorized.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// ConfigError represents a fatal startup problem: a missing credential,
// an unreadable repository list, and the like. It aborts the run before
// any API call is made.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return e.Msg
}

// NewConfigError creates a new ConfigError.
func NewConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// BranchUpdateRejectedError represents a branch-update request the
// remote refused outright (HTTP 422): either there was nothing to
// merge forward, or the merge cannot be performed automatically.
type BranchUpdateRejectedError struct {
	Reason string
}

func (e *BranchUpdateRejectedError) Error() string {
	return "branch update rejected: " + e.Reason
}

// NothingToUpdate reports whether the rejection only says the branch is
// already current. GitHub does not give this case its own status code,
// so it is recognized by message, the same way external "not found"
// responses are pattern-matched elsewhere.
func (e *BranchUpdateRejectedError) NothingToUpdate() bool {
	msg := strings.ToLower(e.Reason)
	for _, pattern := range []string{"nothing to", "no new commits", "already up to date", "up-to-date"} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// AsBranchUpdateRejected checks if an error is or wraps a
// BranchUpdateRejectedError and returns it.
func AsBranchUpdateRejected(err error) (*BranchUpdateRejectedError, bool) {
	var rejected *BranchUpdateRejectedError
	if errors.As(err, &rejected) {
		return rejected, true
	}
	return nil, false
}
