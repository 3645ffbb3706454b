// Package readiness resolves the operational readiness of a campaign from
// point-in-time health payloads. Four independent checks run in a fixed
// order (mailbox health, deliverability, throughput, kill switch) and
// aggregate into a single explainable verdict.
//
// Resolution is total: nil payloads and absent fields produce defined,
// conservative outcomes instead of errors. Apart from the evaluation id and
// timestamp, identical inputs always yield an identical Resolution.
package readiness

import "time"

// Status is the operational health payload reported for one campaign.
// Pointer fields distinguish "reported false or zero" from "not reported";
// the checks treat the two differently.
type Status struct {
	// IsReady is the upstream system's own verdict. The resolver recomputes
	// readiness from the raw signals rather than trusting it.
	IsReady *bool `json:"is_ready,omitempty" yaml:"is_ready,omitempty"`
	// BlockingReasons carries upstream blocking-reason codes such as
	// "domain_blacklisted". They are humanized and merged into the
	// resolution's blocking reasons.
	BlockingReasons     []string   `json:"blocking_reasons,omitempty" yaml:"blocking_reasons,omitempty"`
	MailboxHealthy      *bool      `json:"mailbox_healthy,omitempty" yaml:"mailbox_healthy,omitempty"`
	DeliverabilityScore *float64   `json:"deliverability_score,omitempty" yaml:"deliverability_score,omitempty" validate:"omitempty,min=0,max=100"`
	KillSwitchEnabled   *bool      `json:"kill_switch_enabled,omitempty" yaml:"kill_switch_enabled,omitempty"`
	LastChecked         *time.Time `json:"last_checked,omitempty" yaml:"last_checked,omitempty"`
}

// Throughput is the sending-capacity configuration for one campaign. Hourly
// capacity is carried for display; the throughput check evaluates daily
// capacity only.
type Throughput struct {
	DailyLimit         int    `json:"daily_limit" yaml:"daily_limit"`
	CurrentDailyUsage  int    `json:"current_daily_usage" yaml:"current_daily_usage"`
	HourlyLimit        int    `json:"hourly_limit,omitempty" yaml:"hourly_limit,omitempty"`
	CurrentHourlyUsage int    `json:"current_hourly_usage,omitempty" yaml:"current_hourly_usage,omitempty"`
	IsBlocked          bool   `json:"is_blocked,omitempty" yaml:"is_blocked,omitempty"`
	BlockReason        string `json:"block_reason,omitempty" yaml:"block_reason,omitempty"`
}

// CheckID identifies one of the four readiness checks.
type CheckID string

const (
	CheckMailboxHealth  CheckID = "mailbox_health"
	CheckDeliverability CheckID = "deliverability"
	CheckThroughput     CheckID = "throughput"
	CheckKillSwitch     CheckID = "kill_switch"
)

// Severity qualifies a check outcome. Warning marks uncertainty, usually
// missing data; error marks a confirmed problem. A warning on a failed
// check still fails it.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// OverallState is the binary readiness verdict.
type OverallState string

const (
	StateReady    OverallState = "READY"
	StateNotReady OverallState = "NOT_READY"
)

// CheckResult is the outcome of a single readiness check.
type CheckResult struct {
	ID      CheckID `json:"id"`
	Passed  bool    `json:"passed"`
	Status  string  `json:"status"`
	Message string  `json:"message"`
	// Severity is set when the outcome is degraded or failed; clean passes
	// leave it empty.
	Severity Severity `json:"severity,omitempty"`
	// Value and Threshold expose the numbers behind score and percentage
	// outcomes so callers can render them without reparsing the message.
	Value     *float64 `json:"value,omitempty"`
	Threshold *float64 `json:"threshold,omitempty"`
}

// Resolution is the aggregated readiness verdict for one campaign.
type Resolution struct {
	State             OverallState  `json:"state"`
	Checks            []CheckResult `json:"checks"`
	BlockingReasons   []string      `json:"blocking_reasons"`
	Summary           string        `json:"summary"`
	EvaluationID      string        `json:"evaluation_id"`
	ResolvedAt        time.Time     `json:"resolved_at"`
	HasIncompleteData bool          `json:"has_incomplete_data"`
	MissingFields     []string      `json:"missing_fields,omitempty"`
}

// Ready reports whether every check passed.
func (r Resolution) Ready() bool {
	return r.State == StateReady
}

// FailedChecks returns the checks that did not pass, in evaluation order.
func (r Resolution) FailedChecks() []CheckResult {
	var failed []CheckResult
	for _, check := range r.Checks {
		if !check.Passed {
			failed = append(failed, check)
		}
	}
	return failed
}

// Check returns the result for the given check id, if present.
func (r Resolution) Check(id CheckID) (CheckResult, bool) {
	for _, check := range r.Checks {
		if check.ID == id {
			return check, true
		}
	}
	return CheckResult{}, false
}

// Identifiers reported in Resolution.MissingFields when an input payload or
// field was absent.
const (
	FieldReadinessStatus     = "readiness_status"
	FieldMailboxHealthy      = "mailbox_healthy"
	FieldDeliverabilityScore = "deliverability_score"
	FieldKillSwitchEnabled   = "kill_switch_enabled"
	FieldThroughputConfig    = "throughput_config"
)
