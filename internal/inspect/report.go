// Package inspect drives the evaluation layer for the govcheck CLI. It
// walks a snapshot, derives each campaign's governance state, primary
// action, and readiness resolution, classifies metric records, and renders
// the combined report.
package inspect

import (
	"time"

	"github.com/nsd23387/campaign-governance/pkg/governance"
	"github.com/nsd23387/campaign-governance/pkg/provenance"
	"github.com/nsd23387/campaign-governance/pkg/readiness"
)

// MetricReport is the classification outcome for one metric record. The
// rule names identify which precedence rule decided each classification.
type MetricReport struct {
	Name           string                `json:"metric"`
	Value          *float64              `json:"value,omitempty"`
	Provenance     provenance.Type       `json:"provenance"`
	ProvenanceRule string                `json:"provenance_rule"`
	Confidence     provenance.Confidence `json:"confidence"`
	ConfidenceRule string                `json:"confidence_rule"`
}

// CampaignReport is the full evaluation outcome for one campaign.
type CampaignReport struct {
	CampaignID   string               `json:"campaign_id"`
	Name         string               `json:"name,omitempty"`
	LegacyStatus string               `json:"legacy_status"`
	State        governance.State     `json:"governance_state"`
	StateLabel   string               `json:"state_label"`
	Action       governance.Action    `json:"primary_action"`
	Readiness    readiness.Resolution `json:"readiness"`
	Metrics      []MetricReport       `json:"metrics,omitempty"`
}

// Blocked reports whether governance resolved the campaign to the blocked
// state.
func (c CampaignReport) Blocked() bool {
	return c.State == governance.StateBlocked
}

// Report aggregates the evaluation outcomes for every campaign in a
// snapshot.
type Report struct {
	GeneratedAt   time.Time        `json:"generated_at"`
	Source        string           `json:"source,omitempty"`
	Campaigns     []CampaignReport `json:"campaigns"`
	ReadyCount    int              `json:"ready_count"`
	NotReadyCount int              `json:"not_ready_count"`
	BlockedCount  int              `json:"blocked_count"`
}

// ExitCode maps the report onto the CLI exit contract: 0 when every
// campaign is ready and none is blocked, 1 otherwise. Unusable input is
// reported as exit code 2 by the command layer before a report exists.
func (r *Report) ExitCode() int {
	if r == nil {
		return 1
	}
	if r.NotReadyCount == 0 && r.BlockedCount == 0 {
		return 0
	}
	return 1
}
