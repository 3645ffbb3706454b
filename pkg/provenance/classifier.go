package provenance

import "strings"

// DefaultTrustedSources is the substring allowlist that marks a source
// system as canonical when no explicit origin field is present.
var DefaultTrustedSources = []string{"ods", "canonical", "primary"}

// Classifier evaluates the provenance and confidence rule lists against
// records. Build one with NewClassifier; a Classifier is immutable and safe
// for concurrent use.
type Classifier struct {
	trusted []string
}

// NewClassifier returns a Classifier using the given trusted-source
// allowlist. A list with no usable entries falls back to
// DefaultTrustedSources. Entries are matched as case-insensitive substrings
// of the record's source system.
func NewClassifier(trusted []string) *Classifier {
	normalized := make([]string, 0, len(trusted))
	for _, source := range trusted {
		if source = normalizeSource(source); source != "" {
			normalized = append(normalized, source)
		}
	}
	if len(normalized) == 0 {
		normalized = append(normalized, DefaultTrustedSources...)
	}
	return &Classifier{trusted: normalized}
}

var defaultClassifier = NewClassifier(nil)

// Rule names reported by ProvenanceDecision, in precedence order.
const (
	RuleExplicitProvenance = "explicit_provenance"
	RuleExplicitCanonical  = "explicit_is_canonical"
	RuleTrustedSource      = "trusted_source_system"
	RuleObservedVia        = "observed_via_present"
	RuleProvenanceDefault  = "default_least_trusted"
)

// Rule names reported by ConfidenceDecision, in precedence order.
const (
	RuleExplicitConfidence = "explicit_confidence"
	RuleValidationPassed   = "validation_passed"
	RuleValidationPending  = "validation_pending"
	RuleValidationFailed   = "validation_failed"
	RuleLegacyProvenance   = "legacy_observed_provenance"
	RuleConfidenceDefault  = "default_no_evidence"
)

// provenanceRule is one step of the origin classification. The rule applies
// when eval's second return is true; evaluation stops there.
type provenanceRule struct {
	name string
	eval func(c *Classifier, rec Record) (Type, bool)
}

var provenanceRules = []provenanceRule{
	{
		name: RuleExplicitProvenance,
		eval: func(_ *Classifier, rec Record) (Type, bool) {
			switch normalizeEnum(rec.Provenance) {
			case string(TypeCanonical):
				return TypeCanonical, true
			case string(TypeLegacyObserved):
				return TypeLegacyObserved, true
			}
			return "", false
		},
	},
	{
		name: RuleExplicitCanonical,
		eval: func(_ *Classifier, rec Record) (Type, bool) {
			if rec.IsCanonical == nil {
				return "", false
			}
			if *rec.IsCanonical {
				return TypeCanonical, true
			}
			return TypeLegacyObserved, true
		},
	},
	{
		name: RuleTrustedSource,
		eval: func(c *Classifier, rec Record) (Type, bool) {
			source := normalizeSource(rec.SourceSystem)
			if source == "" {
				return "", false
			}
			for _, trusted := range c.trusted {
				if strings.Contains(source, trusted) {
					return TypeCanonical, true
				}
			}
			return "", false
		},
	},
	{
		name: RuleObservedVia,
		eval: func(_ *Classifier, rec Record) (Type, bool) {
			if strings.TrimSpace(rec.ObservedVia) == "" {
				return "", false
			}
			return TypeLegacyObserved, true
		},
	},
	{
		name: RuleProvenanceDefault,
		eval: func(_ *Classifier, _ Record) (Type, bool) {
			return TypeLegacyObserved, true
		},
	},
}

// confidenceRule is one step of the confidence classification.
type confidenceRule struct {
	name string
	eval func(rec Record) (Confidence, bool)
}

var confidenceRules = []confidenceRule{
	{
		name: RuleExplicitConfidence,
		eval: func(rec Record) (Confidence, bool) {
			switch normalizeEnum(rec.Confidence) {
			case string(ConfidenceSafe):
				return ConfidenceSafe, true
			case string(ConfidenceConditional):
				return ConfidenceConditional, true
			case string(ConfidenceBlocked):
				return ConfidenceBlocked, true
			}
			return "", false
		},
	},
	{
		name: RuleValidationPassed,
		eval: func(rec Record) (Confidence, bool) {
			if normalizeSource(rec.ValidationStatus) == "validated" {
				return ConfidenceSafe, true
			}
			if rec.IsValidated != nil && *rec.IsValidated {
				return ConfidenceSafe, true
			}
			return "", false
		},
	},
	{
		name: RuleValidationPending,
		eval: func(rec Record) (Confidence, bool) {
			if normalizeSource(rec.ValidationStatus) == "pending" {
				return ConfidenceConditional, true
			}
			return "", false
		},
	},
	{
		name: RuleValidationFailed,
		eval: func(rec Record) (Confidence, bool) {
			if normalizeSource(rec.ValidationStatus) == "failed" {
				return ConfidenceBlocked, true
			}
			if rec.IsValidated != nil && !*rec.IsValidated {
				return ConfidenceBlocked, true
			}
			return "", false
		},
	},
	{
		name: RuleLegacyProvenance,
		eval: func(rec Record) (Confidence, bool) {
			if normalizeEnum(rec.Provenance) == string(TypeLegacyObserved) {
				return ConfidenceConditional, true
			}
			return "", false
		},
	},
	{
		name: RuleConfidenceDefault,
		eval: func(_ Record) (Confidence, bool) {
			// Absence of evidence must never produce SAFE.
			return ConfidenceConditional, true
		},
	},
}

// DeriveProvenance classifies a record's origin pathway.
func (c *Classifier) DeriveProvenance(rec Record) Type {
	result, _ := c.ProvenanceDecision(rec)
	return result
}

// ProvenanceDecision classifies a record's origin pathway and reports the
// name of the rule that decided it.
func (c *Classifier) ProvenanceDecision(rec Record) (Type, string) {
	for _, rule := range provenanceRules {
		if result, ok := rule.eval(c, rec); ok {
			return result, rule.name
		}
	}
	// The final rule always applies, so this is unreachable.
	return TypeLegacyObserved, RuleProvenanceDefault
}

// DeriveConfidence classifies a metric's trust level.
func (c *Classifier) DeriveConfidence(rec Record) Confidence {
	result, _ := c.ConfidenceDecision(rec)
	return result
}

// ConfidenceDecision classifies a metric's trust level and reports the name
// of the rule that decided it.
func (c *Classifier) ConfidenceDecision(rec Record) (Confidence, string) {
	for _, rule := range confidenceRules {
		if result, ok := rule.eval(rec); ok {
			return result, rule.name
		}
	}
	return ConfidenceConditional, RuleConfidenceDefault
}

// DeriveProvenance classifies rec using the default trusted-source
// allowlist.
func DeriveProvenance(rec Record) Type {
	return defaultClassifier.DeriveProvenance(rec)
}

// ProvenanceDecision classifies rec using the default classifier and
// reports the deciding rule.
func ProvenanceDecision(rec Record) (Type, string) {
	return defaultClassifier.ProvenanceDecision(rec)
}

// DeriveConfidence classifies rec using the default classifier.
func DeriveConfidence(rec Record) Confidence {
	return defaultClassifier.DeriveConfidence(rec)
}

// ConfidenceDecision classifies rec using the default classifier and
// reports the deciding rule.
func ConfidenceDecision(rec Record) (Confidence, string) {
	return defaultClassifier.ConfidenceDecision(rec)
}

func normalizeEnum(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func normalizeSource(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
