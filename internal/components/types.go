// Package components detects reusable UI components in a design-object
// corpus: signature-based grouping, multi-signal classification, and
// reusability/complexity scoring.
package components

import (
	"uilens/internal/document"
	"uilens/internal/tokens"
)

// Atomic-design tiers. Every component category is one of these five;
// CategoryMolecules doubles as the fallback for unknown component types.
const (
	CategoryAtoms     = "atoms"
	CategoryMolecules = "molecules"
	CategoryOrganisms = "organisms"
	CategoryTemplates = "templates"
	CategoryPages     = "pages"
)

// Tiers lists the atomic-design tiers in canonical order.
var Tiers = []string{CategoryAtoms, CategoryMolecules, CategoryOrganisms, CategoryTemplates, CategoryPages}

// Usage patterns, derived from instance count.
const (
	UsageHeavilyReused    = "heavily_reused"
	UsageModeratelyReused = "moderately_reused"
	UsageLightlyReused    = "lightly_reused"
	UsageSingleUse        = "single_use"
)

// Accessibility feature labels. Heuristic name-based hints, not a
// compliance statement.
const (
	FeatureAriaLabels      = "aria_labels"
	FeatureSemanticRoles   = "semantic_roles"
	FeatureFocusManagement = "focus_management"
	FeatureScreenReader    = "screen_reader_only"
)

// Properties is the snapshot of a component's representative object.
type Properties struct {
	Type       string  `json:"type"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Fill       string  `json:"fill,omitempty"`
	Stroke     string  `json:"stroke,omitempty"`
	ChildCount int     `json:"childCount"`
	Visible    bool    `json:"visible"`
	Locked     bool    `json:"locked"`
}

// DetectedComponent is one reusable component found in the corpus.
// Immutable once produced by the detector; every instance context belongs
// to exactly one component.
type DetectedComponent struct {
	ID                    string                   `json:"id"`
	Name                  string                   `json:"name"`
	ComponentType         string                   `json:"componentType"`
	Category              string                   `json:"category"`
	Instances             []document.ObjectContext `json:"instances"`
	Properties            Properties               `json:"properties"`
	UsagePattern          string                   `json:"usagePattern"`
	ReusabilityScore      float64                  `json:"reusabilityScore"`
	ComplexityScore       float64                  `json:"complexityScore"`
	DesignTokens          tokens.ObjectTokens      `json:"designTokens"`
	AccessibilityFeatures []string                 `json:"accessibilityFeatures"`
}

// InstanceCount returns the number of instances backing the component.
func (c *DetectedComponent) InstanceCount() int {
	return len(c.Instances)
}

func snapshotProperties(obj *document.DesignObject) Properties {
	return Properties{
		Type:       obj.Type,
		Width:      obj.Width,
		Height:     obj.Height,
		Fill:       obj.Fill,
		Stroke:     obj.Stroke,
		ChildCount: len(obj.Children),
		Visible:    obj.Visible,
		Locked:     obj.Locked,
	}
}
