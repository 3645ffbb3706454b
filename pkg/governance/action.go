package governance

// Capabilities carries the caller-resolved permission flags that influence
// action selection. Permission resolution itself happens upstream; this
// package only consumes the booleans.
type Capabilities struct {
	// CanSubmit grants submitting a draft campaign for approval.
	CanSubmit bool
}

// ActionID identifies an action a caller may request of the external
// execution platform. The empty value means nothing is requestable.
type ActionID string

// ActionSubmitForApproval asks the external platform to move a draft
// campaign into the review queue.
const ActionSubmitForApproval ActionID = "submit_for_approval"

// Action describes the single primary action surfaced for a governance
// state. A disabled action still carries a label and an explanation so
// callers can show why nothing can be done right now.
type Action struct {
	Label       string   `json:"label"`
	ID          ActionID `json:"action,omitempty"`
	Disabled    bool     `json:"disabled"`
	Explanation string   `json:"explanation"`
}

// PrimaryAction selects the action descriptor for a state. Submitting is the
// only enabled action and requires both StateDraft and the submit
// capability; every other combination yields a disabled descriptor. Unknown
// states receive the blocked descriptor.
func PrimaryAction(state State, caps Capabilities) Action {
	switch state {
	case StateDraft:
		if caps.CanSubmit {
			return Action{
				Label:       "Submit for Approval",
				ID:          ActionSubmitForApproval,
				Explanation: "Send this draft to the external reviewer queue.",
			}
		}
		return Action{
			Label:       "Not Ready to Submit",
			Disabled:    true,
			Explanation: "Submitting requires the submit capability on this campaign.",
		}
	case StatePendingApproval:
		return Action{
			Label:       "Awaiting Approval",
			Disabled:    true,
			Explanation: "An external reviewer decides the next transition.",
		}
	case StateApprovedReady:
		return Action{
			Label:       "Awaiting Launch",
			Disabled:    true,
			Explanation: "Launch is initiated by the execution platform and only observed here.",
		}
	case StateExecuted:
		return Action{
			Label:       "View Run History",
			Disabled:    true,
			Explanation: "The campaign has entered execution; results live in the run history.",
		}
	default:
		// StateBlocked and anything unrecognized.
		return Action{
			Label:       "Blocked",
			Disabled:    true,
			Explanation: "Resolve the blocking issues before this campaign can proceed.",
		}
	}
}
