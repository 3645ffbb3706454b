package inspect

import (
	"time"

	"github.com/nsd23387/campaign-governance/internal/logger"
	"github.com/nsd23387/campaign-governance/internal/snapshot"
	"github.com/nsd23387/campaign-governance/pkg/governance"
	"github.com/nsd23387/campaign-governance/pkg/provenance"
	"github.com/nsd23387/campaign-governance/pkg/readiness"
)

// Options configures a Service.
type Options struct {
	// GlobalKillSwitch halts sending platform-wide; it feeds the readiness
	// resolver.
	GlobalKillSwitch bool
	// TrustedSources overrides the provenance classifier's allowlist.
	TrustedSources []string
	// Clock supplies report and resolution timestamps. Defaults to
	// time.Now.
	Clock func() time.Time
	// IDGenerator supplies readiness evaluation ids. Defaults to random
	// uuids.
	IDGenerator func() string
}

// Service evaluates snapshots. It owns the configured readiness resolver
// and provenance classifier; the evaluation itself stays side-effect free
// apart from logging.
type Service struct {
	log        *logger.Logger
	resolver   *readiness.Resolver
	classifier *provenance.Classifier
	now        func() time.Time
}

// NewService builds a Service from opts. The logger may be nil.
func NewService(log *logger.Logger, opts Options) *Service {
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	return &Service{
		log: log.WithComponent("inspect"),
		resolver: readiness.NewResolver(readiness.Options{
			GlobalKillSwitch: opts.GlobalKillSwitch,
			Clock:            opts.Clock,
			IDGenerator:      opts.IDGenerator,
		}),
		classifier: provenance.NewClassifier(opts.TrustedSources),
		now:        now,
	}
}

// Evaluate runs every campaign in the snapshot through the evaluation
// layer.
func (s *Service) Evaluate(snap *snapshot.Snapshot) *Report {
	report := &Report{
		GeneratedAt: s.now().UTC(),
		Campaigns:   []CampaignReport{},
	}
	if snap == nil {
		return report
	}

	report.Source = snap.Source
	for _, campaign := range snap.Campaigns {
		evaluated := s.evaluateCampaign(campaign)
		if evaluated.Readiness.Ready() {
			report.ReadyCount++
		} else {
			report.NotReadyCount++
		}
		if evaluated.Blocked() {
			report.BlockedCount++
		}
		report.Campaigns = append(report.Campaigns, evaluated)
	}

	s.log.WithFields(map[string]any{
		"campaigns": len(report.Campaigns),
		"ready":     report.ReadyCount,
		"not_ready": report.NotReadyCount,
		"blocked":   report.BlockedCount,
	}).Info("snapshot evaluated")

	return report
}

func (s *Service) evaluateCampaign(campaign snapshot.Campaign) CampaignReport {
	state := governance.MapState(governance.LegacyStatus(campaign.Status), campaign.IsRunnable)
	action := governance.PrimaryAction(state, governance.Capabilities{CanSubmit: campaign.CanSubmit})
	resolution := s.resolver.Resolve(campaign.Readiness, campaign.Throughput)

	s.log.WithFields(map[string]any{
		"campaign_id": campaign.CampaignID,
		"state":       state.String(),
		"readiness":   string(resolution.State),
		"failed":      len(resolution.FailedChecks()),
	}).Debug("campaign evaluated")

	return CampaignReport{
		CampaignID:   campaign.CampaignID,
		Name:         campaign.Name,
		LegacyStatus: campaign.Status,
		State:        state,
		StateLabel:   state.Label(),
		Action:       action,
		Readiness:    resolution,
		Metrics:      s.ClassifyMetrics(campaign.Metrics),
	}
}

// ClassifyMetrics classifies metric records through both provenance rule
// lists. It also serves standalone records with no campaign context.
func (s *Service) ClassifyMetrics(metrics []snapshot.Metric) []MetricReport {
	if len(metrics) == 0 {
		return nil
	}

	reports := make([]MetricReport, 0, len(metrics))
	for _, metric := range metrics {
		provType, provRule := s.classifier.ProvenanceDecision(metric.Record)
		confidence, confRule := s.classifier.ConfidenceDecision(metric.Record)
		reports = append(reports, MetricReport{
			Name:           metric.Name,
			Value:          metric.Value,
			Provenance:     provType,
			ProvenanceRule: provRule,
			Confidence:     confidence,
			ConfidenceRule: confRule,
		})
	}
	return reports
}
