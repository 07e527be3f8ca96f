package domain

import (
	"strings"
	"testing"
)

func TestTallyOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []Outcome
		want     RunStats
	}{
		{
			name:     "empty run",
			outcomes: nil,
			want:     RunStats{},
		},
		{
			name: "one of each",
			outcomes: []Outcome{
				OutcomeSynced, OutcomeApproved, OutcomeSkippedNotGreen,
				OutcomeSkippedOther, OutcomeAccessBlocked,
			},
			want: RunStats{Synced: 1, Approved: 1, SkippedNotGreen: 1, SkippedOther: 1, AccessBlocked: 1},
		},
		{
			name: "repeats accumulate",
			outcomes: []Outcome{
				OutcomeApproved, OutcomeApproved, OutcomeApproved,
				OutcomeSkippedNotGreen, OutcomeSynced,
			},
			want: RunStats{Synced: 1, Approved: 3, SkippedNotGreen: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TallyOutcomes(tt.outcomes)
			if got != tt.want {
				t.Errorf("TallyOutcomes() = %+v, want %+v", got, tt.want)
			}
			if got.Total() != len(tt.outcomes) {
				t.Errorf("Total() = %d, want %d", got.Total(), len(tt.outcomes))
			}
		})
	}
}

func TestRunStats_Summary(t *testing.T) {
	s := RunStats{Synced: 2, Approved: 5, SkippedNotGreen: 1, SkippedOther: 3, AccessBlocked: 4}
	summary := s.Summary()

	for _, want := range []string{"synced: 2", "approved: 5", "not green): 1", "(other): 3", "access blocked: 4"} {
		if !strings.Contains(summary, want) {
			t.Errorf("Summary() = %q, missing %q", summary, want)
		}
	}
}

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeSynced, "synced"},
		{OutcomeApproved, "approved"},
		{OutcomeSkippedNotGreen, "skipped-not-green"},
		{OutcomeSkippedOther, "skipped-other"},
		{OutcomeAccessBlocked, "access-blocked"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(tt.outcome), got, tt.want)
		}
	}
}
