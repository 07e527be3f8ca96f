package domain

// Action is what the engine should do next for one pull request, given
// everything known about it. Exactly one action applies; they are
// evaluated in declaration order and the first match wins.
type Action int

const (
	ActionSync            Action = iota // head is behind base, request a branch update
	ActionSkipNotGreen                  // CI is not conclusively green, wait for the next run
	ActionAlreadyApproved               // goal state already satisfied, nothing to do
	ActionApprove                       // green and unapproved, record an approval
)

func (a Action) String() string {
	switch a {
	case ActionSync:
		return "sync"
	case ActionSkipNotGreen:
		return "skip-not-green"
	case ActionAlreadyApproved:
		return "already-approved"
	case ActionApprove:
		return "approve"
	}
	return "unknown"
}

// Decide is the pure per-pull-request decision step. The caller gathers
// the inputs lazily in this same order — a stale branch means the CI
// verdict and review state are never fetched, so CIUnknown/false are
// fine placeholders for them.
func Decide(state MergeableState, verdict CIVerdict, alreadyApproved bool) Action {
	if state.Stale() {
		return ActionSync
	}
	if verdict != CISuccess {
		return ActionSkipNotGreen
	}
	if alreadyApproved {
		return ActionAlreadyApproved
	}
	return ActionApprove
}
