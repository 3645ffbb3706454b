package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goverrors "github.com/nsd23387/campaign-governance/pkg/errors"
)

func writeTempSnapshot(t *testing.T, name, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadYAMLSnapshot(t *testing.T) {
	t.Parallel()

	contents := `captured_at: 2026-08-01T10:00:00Z
source: campaign-exporter
campaigns:
  - campaign_id: cmp-001
    name: Spring Outreach
    status: RUNNABLE
    is_runnable: true
    can_submit: true
    readiness_status:
      mailbox_healthy: true
      deliverability_score: 97.5
      kill_switch_enabled: false
      blocking_reasons: []
    throughput_config:
      daily_limit: 250
      current_daily_usage: 100
      hourly_limit: 25
      current_hourly_usage: 3
    metrics:
      - metric: open_rate
        value: 0.42
        source_system: ods-prod
        validation_status: validated
  - campaign_id: cmp-002
    status: MYSTERY_STATE
`

	snap, err := Load(writeTempSnapshot(t, "snapshot.yaml", contents))
	require.NoError(t, err)
	require.NotNil(t, snap)

	require.NotNil(t, snap.CapturedAt)
	assert.Equal(t, "campaign-exporter", snap.Source)
	require.Len(t, snap.Campaigns, 2)

	first := snap.Campaigns[0]
	assert.Equal(t, "cmp-001", first.CampaignID)
	assert.True(t, first.IsRunnable)
	assert.True(t, first.CanSubmit)
	require.NotNil(t, first.Readiness)
	require.NotNil(t, first.Readiness.MailboxHealthy)
	assert.True(t, *first.Readiness.MailboxHealthy)
	require.NotNil(t, first.Readiness.DeliverabilityScore)
	assert.InDelta(t, 97.5, *first.Readiness.DeliverabilityScore, 0.001)
	require.NotNil(t, first.Throughput)
	assert.Equal(t, 250, first.Throughput.DailyLimit)
	require.Len(t, first.Metrics, 1)
	assert.Equal(t, "open_rate", first.Metrics[0].Name)
	assert.Equal(t, "ods-prod", first.Metrics[0].SourceSystem)
	assert.Equal(t, "validated", first.Metrics[0].ValidationStatus)

	second := snap.Campaigns[1]
	assert.Equal(t, "MYSTERY_STATE", second.Status)
	assert.Nil(t, second.Readiness)
	assert.Nil(t, second.Throughput)
}

func TestLoadJSONSnapshot(t *testing.T) {
	t.Parallel()

	contents := `{
  "campaigns": [
    {
      "campaign_id": "cmp-007",
      "status": "DRAFT",
      "can_submit": true,
      "metrics": [
        {
          "metric": "reply_rate",
          "value": 0.08,
          "provenance": "CANONICAL",
          "is_canonical": true
        }
      ]
    }
  ]
}`

	snap, err := Load(writeTempSnapshot(t, "snapshot.json", contents))
	require.NoError(t, err)
	require.Len(t, snap.Campaigns, 1)

	campaign := snap.Campaigns[0]
	assert.Equal(t, "cmp-007", campaign.CampaignID)
	require.Len(t, campaign.Metrics, 1)

	metric := campaign.Metrics[0]
	assert.Equal(t, "reply_rate", metric.Name)
	require.NotNil(t, metric.Value)
	assert.InDelta(t, 0.08, *metric.Value, 0.0001)
	assert.Equal(t, "CANONICAL", metric.Provenance)
	require.NotNil(t, metric.IsCanonical)
	assert.True(t, *metric.IsCanonical)
}

func TestLoadIgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	contents := `source: exporter
future_field: something
campaigns:
  - campaign_id: cmp-001
    status: DRAFT
    brand_new_field: 42
`

	snap, err := Load(writeTempSnapshot(t, "snapshot.yaml", contents))
	require.NoError(t, err)
	require.Len(t, snap.Campaigns, 1)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, err error)
	}{
		{
			name:     "malformed yaml returns parse error with line",
			file:     "broken.yaml",
			contents: "campaigns:\n  - campaign_id: [unclosed\n",
			assert: func(t *testing.T, err error) {
				var parseErr *goverrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Contains(t, parseErr.Path, "broken.yaml")
			},
		},
		{
			name:     "malformed json returns parse error",
			file:     "broken.json",
			contents: `{"campaigns": [`,
			assert: func(t *testing.T, err error) {
				var parseErr *goverrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "missing campaigns returns validation error",
			file:     "empty.yaml",
			contents: "source: exporter\n",
			assert: func(t *testing.T, err error) {
				var validationErr *goverrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Message, "campaigns")
			},
		},
		{
			name:     "campaign without id returns validation error",
			file:     "noid.yaml",
			contents: "campaigns:\n  - status: DRAFT\n",
			assert: func(t *testing.T, err error) {
				var validationErr *goverrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
			},
		},
		{
			name:     "deliverability score out of range returns validation error",
			file:     "score.yaml",
			contents: "campaigns:\n  - campaign_id: cmp-001\n    status: DRAFT\n    readiness_status:\n      deliverability_score: 250\n",
			assert: func(t *testing.T, err error) {
				var validationErr *goverrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Message, "max")
			},
		},
		{
			name:     "metric without name returns validation error",
			file:     "metric.yaml",
			contents: "campaigns:\n  - campaign_id: cmp-001\n    status: DRAFT\n    metrics:\n      - value: 0.5\n",
			assert: func(t *testing.T, err error) {
				var validationErr *goverrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			snap, err := Load(writeTempSnapshot(t, tc.file, tc.contents))
			require.Error(t, err)
			require.Nil(t, snap)
			assert.True(t, goverrors.IsInputError(err))
			tc.assert(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var parseErr *goverrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadRecords(t *testing.T) {
	t.Parallel()

	contents := `records:
  - metric: open_rate
    source_system: ods
  - metric: bounce_rate
    observed_via: api_poll
    validation_status: pending
`

	records, err := LoadRecords(writeTempSnapshot(t, "records.yaml", contents))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "open_rate", records[0].Name)
	assert.Equal(t, "ods", records[0].SourceSystem)
	assert.Equal(t, "api_poll", records[1].ObservedVia)
}

func TestLoadRecordsRequiresEntries(t *testing.T) {
	t.Parallel()

	_, err := LoadRecords(writeTempSnapshot(t, "records.json", `{"records": []}`))
	require.Error(t, err)

	var validationErr *goverrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}
