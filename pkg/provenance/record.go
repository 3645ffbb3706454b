// Package provenance classifies how much trust inbound records deserve:
// whether a record originates from the canonical data pathway, and how much
// confidence a metric's value warrants given its validation evidence.
//
// Both classifications are ordered rule lists evaluated top to bottom; the
// first applicable rule wins and its name is reported alongside the result
// so decisions stay auditable. Absent evidence always resolves to the
// least-trusted outcome.
package provenance

// Type classifies the origin pathway of a record.
type Type string

const (
	// TypeCanonical marks records from the trusted canonical pathway.
	TypeCanonical Type = "CANONICAL"
	// TypeLegacyObserved marks records observed via an older pathway. It is
	// also the default when origin cannot be established.
	TypeLegacyObserved Type = "LEGACY_OBSERVED"
)

// Confidence classifies how much weight a metric's value deserves.
type Confidence string

const (
	// ConfidenceSafe requires explicit validation evidence.
	ConfidenceSafe Confidence = "SAFE"
	// ConfidenceConditional marks values usable with caution. It is also
	// the default when no evidence exists either way.
	ConfidenceConditional Confidence = "CONDITIONAL"
	// ConfidenceBlocked marks values that failed validation.
	ConfidenceBlocked Confidence = "BLOCKED"
)

// Record is the metadata envelope both classifications examine. Every field
// is optional: string fields treat empty as absent, and the pointer
// booleans distinguish "explicitly false" from "not set".
type Record struct {
	// Provenance, when it names a recognized Type, is trusted as-is.
	Provenance string `json:"provenance,omitempty" yaml:"provenance,omitempty"`
	// IsCanonical is the explicit boolean origin marker.
	IsCanonical *bool `json:"is_canonical,omitempty" yaml:"is_canonical,omitempty"`
	// SourceSystem names the system the record was ingested from. It is
	// matched against the classifier's trusted-source allowlist.
	SourceSystem string `json:"source_system,omitempty" yaml:"source_system,omitempty"`
	// ObservedVia names the observation pathway for legacy records.
	ObservedVia string `json:"observed_via,omitempty" yaml:"observed_via,omitempty"`
	// Confidence, when it names a recognized Confidence, is trusted as-is.
	Confidence string `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	// ValidationStatus is the validation pipeline outcome: validated,
	// pending, or failed.
	ValidationStatus string `json:"validation_status,omitempty" yaml:"validation_status,omitempty"`
	// IsValidated is the explicit boolean validation marker.
	IsValidated *bool `json:"is_validated,omitempty" yaml:"is_validated,omitempty"`
}
