package governance

import "github.com/charmbracelet/lipgloss"

// Style is the presentation descriptor for a governance state: the
// background, foreground, and border colors a badge-style renderer should
// use. Callers that cannot render color can fall back to Label, Icon, or
// IconFallback instead.
type Style struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
}

type stateMeta struct {
	label string
	style Style
}

var stateTable = map[State]stateMeta{
	StateDraft: {
		label: "Draft",
		style: Style{Background: "#f3f4f6", Foreground: "#1f2937", Border: "#d1d5db"},
	},
	StatePendingApproval: {
		label: "Pending Approval",
		style: Style{Background: "#fef3c7", Foreground: "#92400e", Border: "#fcd34d"},
	},
	StateApprovedReady: {
		label: "Approved",
		style: Style{Background: "#d1fae5", Foreground: "#065f46", Border: "#6ee7b7"},
	},
	StateBlocked: {
		label: "Blocked",
		style: Style{Background: "#fee2e2", Foreground: "#991b1b", Border: "#fca5a5"},
	},
	StateExecuted: {
		label: "Executed",
		style: Style{Background: "#dbeafe", Foreground: "#1e40af", Border: "#93c5fd"},
	},
}

// unknownMeta keeps the presentation lookups total for State values outside
// the canonical set.
var unknownMeta = stateMeta{
	label: "Unknown",
	style: Style{Background: "#f3f4f6", Foreground: "#6b7280", Border: "#d1d5db"},
}

func (s State) meta() stateMeta {
	if m, ok := stateTable[s]; ok {
		return m
	}
	return unknownMeta
}

// Label returns the human-readable name of the state.
func (s State) Label() string {
	return s.meta().label
}

// Style returns the badge color triple for the state.
func (s State) Style() Style {
	return s.meta().style
}

// Icon returns a colored Unicode indicator for the state.
func (s State) Icon() string {
	switch s {
	case StateDraft:
		return "⚪"
	case StatePendingApproval:
		return "🟡"
	case StateApprovedReady:
		return "🟢"
	case StateBlocked:
		return "🔴"
	case StateExecuted:
		return "🔵"
	default:
		return "⚪"
	}
}

// IconFallback returns an ASCII indicator for terminals without Unicode
// support.
func (s State) IconFallback() string {
	switch s {
	case StateDraft:
		return "[--]"
	case StatePendingApproval:
		return "[..]"
	case StateApprovedReady:
		return "[OK]"
	case StateBlocked:
		return "[XX]"
	case StateExecuted:
		return "[##]"
	default:
		return "[??]"
	}
}
