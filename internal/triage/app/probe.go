package app

import (
	"context"
	"fmt"

	"github.com/nathantilsley/dep-sentry/internal/triage/domain"
)

// ProbeReport is the result of a diagnostic access probe: which login
// the credential acts as, and the gate decision per organization.
type ProbeReport struct {
	Login     string
	Decisions []domain.AccessDecision
}

// Probe resolves the acting identity and runs the access gate against
// each organization. It makes no repository or pull-request calls.
func (s *Service) Probe(ctx context.Context, orgs []string) (ProbeReport, error) {
	login, err := s.ports.Identity.AuthenticatedLogin(ctx)
	if err != nil {
		return ProbeReport{}, fmt.Errorf("credential unusable: %w", err)
	}

	report := ProbeReport{Login: login}
	for _, org := range orgs {
		report.Decisions = append(report.Decisions, s.checkAccess(ctx, org))
	}
	return report, nil
}
