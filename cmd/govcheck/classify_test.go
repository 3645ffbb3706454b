package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRecords = `records:
  - metric: open_rate
    source_system: ods-prod
    validation_status: validated
  - metric: bounce_rate
    observed_via: api_poll
`

func TestClassifyCommandTable(t *testing.T) {
	out, err := execute(t, "classify", writeTempFile(t, "records.yaml", sampleRecords))
	require.NoError(t, err)

	assert.Contains(t, out, "Record Classification:")
	assert.Contains(t, out, "open_rate")
	assert.Contains(t, out, "CANONICAL")
	assert.Contains(t, out, "trusted_source_system")
	assert.Contains(t, out, "bounce_rate")
	assert.Contains(t, out, "LEGACY_OBSERVED")
	assert.Contains(t, out, "observed_via_present")
}

func TestClassifyCommandJSON(t *testing.T) {
	out, err := execute(t, "classify", "--json", writeTempFile(t, "records.yaml", sampleRecords))
	require.NoError(t, err)

	var payload []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Len(t, payload, 2)
	assert.Equal(t, "SAFE", payload[0]["confidence"])
	assert.Equal(t, "validation_passed", payload[0]["confidence_rule"])
	assert.Equal(t, "CONDITIONAL", payload[1]["confidence"])
	assert.Equal(t, "default_no_evidence", payload[1]["confidence_rule"])
}

func TestClassifyCommandUnreadableFile(t *testing.T) {
	codes := stubExit(t)

	out, err := execute(t, "classify", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, out, "Error loading records")
	assert.Equal(t, []int{2}, *codes)
}
