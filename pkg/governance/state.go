// Package governance maps the external campaign system's raw lifecycle
// statuses onto the small canonical set of governance states shown to
// callers, and selects the single primary action a caller may offer for
// each state.
//
// Everything here is a pure function of its arguments: no I/O, no shared
// mutable state, safe for concurrent use without coordination. Transitions
// between states are never executed by this package; they happen in the
// external execution platform and are observed on the next evaluation.
package governance

import "strings"

// LegacyStatus is the raw lifecycle vocabulary of the external campaign
// system. Arbitrary strings are legal inputs; MapState resolves anything
// outside this set to the most restrictive governance state.
type LegacyStatus string

const (
	LegacyDraft         LegacyStatus = "DRAFT"
	LegacyPendingReview LegacyStatus = "PENDING_REVIEW"
	LegacyRunnable      LegacyStatus = "RUNNABLE"
	LegacyRunning       LegacyStatus = "RUNNING"
	LegacyCompleted     LegacyStatus = "COMPLETED"
	LegacyFailed        LegacyStatus = "FAILED"
	LegacyArchived      LegacyStatus = "ARCHIVED"
)

// State is the canonical governance state of a campaign. States are derived
// fresh on every evaluation and never persisted.
type State string

const (
	// StateDraft marks a campaign still being assembled.
	StateDraft State = "DRAFT"
	// StatePendingApproval marks a campaign waiting on an external reviewer.
	StatePendingApproval State = "PENDING_APPROVAL"
	// StateApprovedReady marks a campaign cleared for launch by the external
	// execution platform.
	StateApprovedReady State = "APPROVED_READY"
	// StateBlocked marks a campaign that must not proceed. Unrecognized
	// statuses resolve here.
	StateBlocked State = "BLOCKED"
	// StateExecuted is the terminal read-only state covering running and
	// finished campaigns alike: none of them permit further self-service
	// transition, so they collapse into one observability state.
	StateExecuted State = "EXECUTED_READ_ONLY"
)

// MapState resolves a raw lifecycle status into its governance state.
//
// The status is trimmed and uppercased before matching so padding or case
// drift in the external vocabulary cannot change the outcome. RUNNABLE
// splits on the runnable flag: true maps to StateApprovedReady, false to
// StateBlocked. Anything unrecognized after normalization maps to
// StateBlocked, never to a permissive state.
func MapState(status LegacyStatus, isRunnable bool) State {
	switch LegacyStatus(strings.ToUpper(strings.TrimSpace(string(status)))) {
	case LegacyDraft:
		return StateDraft
	case LegacyPendingReview:
		return StatePendingApproval
	case LegacyRunnable:
		if isRunnable {
			return StateApprovedReady
		}
		return StateBlocked
	case LegacyRunning, LegacyCompleted, LegacyFailed, LegacyArchived:
		return StateExecuted
	default:
		return StateBlocked
	}
}

// Valid reports whether s is one of the five canonical states.
func (s State) Valid() bool {
	switch s {
	case StateDraft, StatePendingApproval, StateApprovedReady, StateBlocked, StateExecuted:
		return true
	default:
		return false
	}
}

// String returns the canonical identifier for the state.
func (s State) String() string {
	return string(s)
}
