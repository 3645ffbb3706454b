package readiness

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Thresholds shared by the checks. They are part of the readiness contract
// and deliberately not configurable.
const (
	// DeliverabilityThreshold is the minimum deliverability score that
	// passes the deliverability check.
	DeliverabilityThreshold = 95.0
	// ThroughputWarningPercent is the daily usage percentage at which the
	// throughput check still passes but carries a warning.
	ThroughputWarningPercent = 80.0
	// ThroughputExhaustedPercent is the daily usage percentage at which the
	// throughput check fails.
	ThroughputExhaustedPercent = 100.0
)

// Options configures a Resolver. The zero value is usable: no global kill
// switch, wall-clock timestamps, random evaluation ids.
type Options struct {
	// GlobalKillSwitch halts sending platform-wide. It outranks every
	// campaign-level signal.
	GlobalKillSwitch bool
	// Clock supplies the resolution timestamp. Defaults to time.Now.
	Clock func() time.Time
	// IDGenerator supplies evaluation ids. Defaults to uuid.NewString.
	IDGenerator func() string
}

// Resolver evaluates the four readiness checks. A Resolver is immutable and
// safe for concurrent use.
type Resolver struct {
	globalKillSwitch bool
	now              func() time.Time
	newID            func() string
}

// NewResolver builds a Resolver from opts, filling defaults for unset
// fields.
func NewResolver(opts Options) *Resolver {
	r := &Resolver{
		globalKillSwitch: opts.GlobalKillSwitch,
		now:              opts.Clock,
		newID:            opts.IDGenerator,
	}
	if r.now == nil {
		r.now = time.Now
	}
	if r.newID == nil {
		r.newID = uuid.NewString
	}
	return r
}

// Resolve evaluates readiness with a default Resolver: no global kill
// switch.
func Resolve(status *Status, throughput *Throughput) Resolution {
	return NewResolver(Options{}).Resolve(status, throughput)
}

// Resolve runs the four checks against the supplied payloads and aggregates
// them into a Resolution. Either payload may be nil; every branch produces a
// defined result.
func (r *Resolver) Resolve(status *Status, throughput *Throughput) Resolution {
	checks := []CheckResult{
		checkMailboxHealth(status),
		checkDeliverability(status),
		checkThroughput(throughput),
		r.checkKillSwitch(status),
	}

	res := Resolution{
		State:         StateReady,
		Checks:        checks,
		EvaluationID:  r.newID(),
		ResolvedAt:    r.now().UTC(),
		MissingFields: missingFields(status, throughput),
	}
	res.HasIncompleteData = len(res.MissingFields) > 0

	failed := 0
	reasons := make([]string, 0, len(checks))
	for _, check := range checks {
		if check.Passed {
			continue
		}
		failed++
		reasons = append(reasons, check.Message)
	}
	if status != nil {
		for _, code := range status.BlockingReasons {
			reasons = append(reasons, humanizeReason(code))
		}
	}
	res.BlockingReasons = dedupeReasons(reasons)

	if failed > 0 {
		res.State = StateNotReady
		res.Summary = fmt.Sprintf("%d of %d readiness checks failed", failed, len(checks))
	} else {
		res.Summary = fmt.Sprintf("All %d readiness checks passed", len(checks))
	}
	return res
}

func checkMailboxHealth(status *Status) CheckResult {
	result := CheckResult{ID: CheckMailboxHealth}
	if status == nil || status.MailboxHealthy == nil {
		result.Status = "Unknown"
		result.Severity = SeverityWarning
		result.Message = "Mailbox health has not been reported"
		return result
	}
	if !*status.MailboxHealthy {
		result.Status = "Unhealthy"
		result.Severity = SeverityError
		result.Message = "Mailbox connection is unhealthy"
		return result
	}
	result.Passed = true
	result.Status = "Healthy"
	result.Message = "Mailbox connection is healthy"
	return result
}

func checkDeliverability(status *Status) CheckResult {
	result := CheckResult{ID: CheckDeliverability}
	if status == nil || status.DeliverabilityScore == nil {
		result.Status = "Unknown"
		result.Severity = SeverityWarning
		result.Message = "Deliverability score has not been reported"
		return result
	}

	score := *status.DeliverabilityScore
	result.Value = floatPtr(score)
	result.Threshold = floatPtr(DeliverabilityThreshold)
	if score < DeliverabilityThreshold {
		result.Status = "Low"
		result.Severity = SeverityError
		result.Message = fmt.Sprintf("Deliverability score %s is below the minimum %s",
			formatScore(score), formatScore(DeliverabilityThreshold))
		return result
	}
	result.Passed = true
	result.Status = "Good"
	result.Message = fmt.Sprintf("Deliverability score %s meets the minimum %s",
		formatScore(score), formatScore(DeliverabilityThreshold))
	return result
}

func checkThroughput(tp *Throughput) CheckResult {
	result := CheckResult{ID: CheckThroughput}
	if tp == nil {
		result.Status = "Unknown"
		result.Severity = SeverityWarning
		result.Message = "Throughput configuration has not been reported"
		return result
	}
	if tp.IsBlocked {
		result.Status = "Blocked"
		result.Severity = SeverityError
		if reason := humanizeReason(tp.BlockReason); reason != "" {
			result.Message = "Sending is blocked: " + reason
		} else {
			result.Message = "Sending is blocked"
		}
		return result
	}
	if tp.DailyLimit <= 0 {
		result.Status = "Unknown"
		result.Severity = SeverityWarning
		result.Message = "Daily send limit is not configured"
		return result
	}

	usagePercent := float64(tp.CurrentDailyUsage) / float64(tp.DailyLimit) * 100
	result.Value = floatPtr(usagePercent)

	switch {
	case usagePercent >= ThroughputExhaustedPercent:
		result.Status = "Exhausted"
		result.Severity = SeverityError
		result.Threshold = floatPtr(ThroughputExhaustedPercent)
		result.Message = fmt.Sprintf("Daily send limit exhausted (%d of %d used)",
			tp.CurrentDailyUsage, tp.DailyLimit)
	case usagePercent >= ThroughputWarningPercent:
		result.Passed = true
		result.Status = "Near Limit"
		result.Severity = SeverityWarning
		result.Threshold = floatPtr(ThroughputWarningPercent)
		result.Message = fmt.Sprintf("Approaching daily send limit (%d of %d remaining)",
			tp.DailyLimit-tp.CurrentDailyUsage, tp.DailyLimit)
	default:
		result.Passed = true
		result.Status = "Available"
		result.Message = fmt.Sprintf("Daily send capacity available (%d of %d used)",
			tp.CurrentDailyUsage, tp.DailyLimit)
	}
	return result
}

func (r *Resolver) checkKillSwitch(status *Status) CheckResult {
	result := CheckResult{ID: CheckKillSwitch}
	if r.globalKillSwitch {
		result.Status = "Active (Global)"
		result.Severity = SeverityError
		result.Message = "Global kill switch is active"
		return result
	}
	if status != nil && status.KillSwitchEnabled != nil && *status.KillSwitchEnabled {
		result.Status = "Active (Campaign)"
		result.Severity = SeverityError
		result.Message = "Campaign kill switch is active"
		return result
	}

	result.Passed = true
	result.Status = "Inactive"
	if status == nil || status.KillSwitchEnabled == nil {
		// An unreported kill switch deliberately counts as inactive; the
		// gap is still surfaced through MissingFields.
		result.Message = "Kill switch state not reported; treated as inactive"
		return result
	}
	result.Message = "Kill switch is not engaged"
	return result
}

func missingFields(status *Status, throughput *Throughput) []string {
	var missing []string
	if status == nil {
		missing = append(missing, FieldReadinessStatus, FieldMailboxHealthy, FieldDeliverabilityScore, FieldKillSwitchEnabled)
	} else {
		if status.MailboxHealthy == nil {
			missing = append(missing, FieldMailboxHealthy)
		}
		if status.DeliverabilityScore == nil {
			missing = append(missing, FieldDeliverabilityScore)
		}
		if status.KillSwitchEnabled == nil {
			missing = append(missing, FieldKillSwitchEnabled)
		}
	}
	if throughput == nil {
		missing = append(missing, FieldThroughputConfig)
	}
	return missing
}

// formatScore renders a score without trailing zeros, so 95.0 prints as 95
// and 97.5 stays 97.5.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func floatPtr(v float64) *float64 {
	return &v
}
