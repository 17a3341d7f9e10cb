package components

import (
	"strings"

	"uilens/internal/document"
)

// Scoring constants. Reusability saturates at 10 instances; complexity
// starts at a 0.1 base and grows with child and property counts.
const (
	reusabilitySaturation = 10.0
	complexityBase        = 0.1
	complexityPerChild    = 0.1
	complexityPerProperty = 0.05

	// IndividualReusability is the fixed score for components found by
	// the individual classification pass: one instance, no grouping
	// evidence.
	IndividualReusability = 0.1
)

// ReusabilityScore maps an instance count to [0,1], saturating at 10.
func ReusabilityScore(instanceCount int) float64 {
	score := float64(instanceCount) / reusabilitySaturation
	if score > 1 {
		return 1
	}
	return score
}

// ComplexityScore maps child and property counts to [0,1].
func ComplexityScore(obj *document.DesignObject) float64 {
	score := complexityBase +
		complexityPerChild*float64(len(obj.Children)) +
		complexityPerProperty*float64(obj.PropertyCount())
	if score > 1 {
		return 1
	}
	return score
}

// UsagePattern labels an instance count.
func UsagePattern(instanceCount int) string {
	switch {
	case instanceCount > 10:
		return UsageHeavilyReused
	case instanceCount > 3:
		return UsageModeratelyReused
	case instanceCount > 1:
		return UsageLightlyReused
	default:
		return UsageSingleUse
	}
}

// AccessibilityFeatures derives accessibility hints from the
// representative object. Purely heuristic: name substrings and
// visibility, nothing verified against the actual design.
func AccessibilityFeatures(obj *document.DesignObject) []string {
	lower := strings.ToLower(obj.Name)

	features := []string{}
	if strings.Contains(lower, "alt") || strings.Contains(lower, "aria") {
		features = append(features, FeatureAriaLabels)
	}
	if strings.Contains(lower, "role") {
		features = append(features, FeatureSemanticRoles)
	}
	if strings.Contains(lower, "focus") {
		features = append(features, FeatureFocusManagement)
	}
	if !obj.Visible {
		features = append(features, FeatureScreenReader)
	}
	return features
}
