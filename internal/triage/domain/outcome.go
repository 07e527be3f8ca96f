package domain

import "fmt"

// Outcome is the terminal result of triaging one pull request, or of
// short-circuiting a whole repository at the access gate.
type Outcome int

const (
	OutcomeSynced Outcome = iota // branch update requested, CI left to the next run
	OutcomeApproved
	OutcomeSkippedNotGreen
	OutcomeSkippedOther
	OutcomeAccessBlocked
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSynced:
		return "synced"
	case OutcomeApproved:
		return "approved"
	case OutcomeSkippedNotGreen:
		return "skipped-not-green"
	case OutcomeSkippedOther:
		return "skipped-other"
	case OutcomeAccessBlocked:
		return "access-blocked"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// CIVerdict is the reduced readiness verdict for a head commit.
type CIVerdict int

const (
	CISuccess  CIVerdict = iota // combined status reports success
	CINotGreen                  // pending, failure, error or neutral
	CIUnknown                   // the status query itself failed
)

// AccessDecision records whether the credential can operate on
// repositories under an organization. Cached for one run.
type AccessDecision struct {
	Org       string
	HasAccess bool
	Reason    string
}

// RunStats tallies per-item outcomes for one run.
type RunStats struct {
	Synced          int
	Approved        int
	SkippedNotGreen int
	SkippedOther    int
	AccessBlocked   int
}

// TallyOutcomes folds a sequence of outcomes into run statistics.
func TallyOutcomes(outcomes []Outcome) RunStats {
	var s RunStats
	for _, o := range outcomes {
		s.Add(o)
	}
	return s
}

// Add records a single outcome.
func (s *RunStats) Add(o Outcome) {
	switch o {
	case OutcomeSynced:
		s.Synced++
	case OutcomeApproved:
		s.Approved++
	case OutcomeSkippedNotGreen:
		s.SkippedNotGreen++
	case OutcomeSkippedOther:
		s.SkippedOther++
	case OutcomeAccessBlocked:
		s.AccessBlocked++
	}
}

// Total returns the number of tallied items.
func (s RunStats) Total() int {
	return s.Synced + s.Approved + s.SkippedNotGreen + s.SkippedOther + s.AccessBlocked
}

// Summary formats the human-facing end-of-run report.
func (s RunStats) Summary() string {
	return fmt.Sprintf(
		"synced: %d, approved: %d, skipped (not green): %d, skipped (other): %d, access blocked: %d",
		s.Synced, s.Approved, s.SkippedNotGreen, s.SkippedOther, s.AccessBlocked,
	)
}
