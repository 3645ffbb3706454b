// Package snapshot models the campaign snapshot files consumed by the
// govcheck CLI: point-in-time exports of campaign status, operational
// readiness, throughput configuration, and metric records produced by the
// upstream platform's fetch layer.
//
// Snapshots are decoded leniently. Unknown fields are ignored so older
// builds keep reading newer exports; missing fields flow through as nil and
// are handled conservatively by the evaluation packages.
package snapshot

import (
	"time"

	"github.com/nsd23387/campaign-governance/pkg/provenance"
	"github.com/nsd23387/campaign-governance/pkg/readiness"
)

// Campaign is one campaign entry in a snapshot.
type Campaign struct {
	CampaignID string `json:"campaign_id" yaml:"campaign_id" validate:"required"`
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	// Status is the raw lifecycle status reported by the external system.
	// Unrecognized values are legal; the governance mapper resolves them to
	// the blocked state.
	Status     string `json:"status" yaml:"status" validate:"required"`
	IsRunnable bool   `json:"is_runnable,omitempty" yaml:"is_runnable,omitempty"`
	// CanSubmit is the caller-resolved submit capability; absent means not
	// granted.
	CanSubmit  bool                  `json:"can_submit,omitempty" yaml:"can_submit,omitempty"`
	Readiness  *readiness.Status     `json:"readiness_status,omitempty" yaml:"readiness_status,omitempty"`
	Throughput *readiness.Throughput `json:"throughput_config,omitempty" yaml:"throughput_config,omitempty"`
	Metrics    []Metric              `json:"metrics,omitempty" yaml:"metrics,omitempty" validate:"omitempty,dive"`
}

// Metric is one reported metric together with its provenance metadata
// envelope. The embedded record flattens into the metric object on the
// wire.
type Metric struct {
	Name  string   `json:"metric" yaml:"metric" validate:"required"`
	Value *float64 `json:"value,omitempty" yaml:"value,omitempty"`

	provenance.Record `yaml:",inline"`
}

// Snapshot is the top-level document.
type Snapshot struct {
	CapturedAt *time.Time `json:"captured_at,omitempty" yaml:"captured_at,omitempty"`
	Source     string     `json:"source,omitempty" yaml:"source,omitempty"`
	Campaigns  []Campaign `json:"campaigns" yaml:"campaigns" validate:"required,min=1,dive"`
}

// RecordsFile is the bare document accepted by govcheck classify: metric
// records with no campaign context.
type RecordsFile struct {
	Records []Metric `json:"records" yaml:"records" validate:"required,min=1,dive"`
}
