package components

import (
	"regexp"
	"strings"

	"uilens/internal/document"
	"uilens/internal/signature"
)

// Classification signal weights: a name-pattern hit contributes 0.4, a
// type-pattern hit 0.3. An entry is selected when the combined score
// reaches its confidence threshold.
const (
	nameSignalWeight = 0.4
	typeSignalWeight = 0.3
)

// Classifier assigns component types using an injected signature
// registry.
type Classifier struct {
	registry *signature.Registry
}

// NewClassifier returns a classifier over the given registry.
func NewClassifier(registry *signature.Registry) *Classifier {
	return &Classifier{registry: registry}
}

// Classify returns the component type for a representative object.
//
// Definitions are scored in registry order and the first one whose score
// reaches its confidence threshold wins. This is deliberately
// first-over-threshold rather than best-over-threshold: the registry
// order is part of the contract, and a later entry with a higher score
// never displaces an earlier qualifying one. When no entry qualifies, a
// fixed substring cascade applies, then the raw structural type, then
// the literal "component".
func (c *Classifier) Classify(obj *document.DesignObject) string {
	lower := strings.ToLower(obj.Name)

	for _, def := range c.registry.Defs() {
		score := 0.0
		for _, pattern := range def.NamePatterns {
			if strings.Contains(lower, pattern) {
				score += nameSignalWeight
				break
			}
		}
		for _, t := range def.TypePatterns {
			if obj.Type == t {
				score += typeSignalWeight
				break
			}
		}
		if score >= def.ConfidenceThreshold {
			return def.Name
		}
	}

	switch {
	case strings.Contains(lower, "button") || strings.Contains(lower, "btn"):
		return "button"
	case strings.Contains(lower, "input") || strings.Contains(lower, "field"):
		return "input"
	case strings.Contains(lower, "card") || strings.Contains(lower, "panel"):
		return "card"
	}

	if obj.Type != "" {
		return obj.Type
	}
	return "component"
}

// categoryTable maps component types onto atomic-design tiers. Ordered:
// the first tier containing the type wins.
var categoryTable = []struct {
	tier  string
	types []string
}{
	{CategoryAtoms, []string{"button", "input", "icon", "badge", "text", "checkbox", "radio", "toggle", "avatar", "divider"}},
	{CategoryMolecules, []string{"card", "search", "dropdown", "tooltip", "chip", "form_field", "breadcrumb", "pagination"}},
	{CategoryOrganisms, []string{"navigation", "header", "footer", "form", "table", "list", "modal", "sidebar", "toolbar"}},
	{CategoryTemplates, []string{"layout", "grid", "template", "section"}},
	{CategoryPages, []string{"page", "screen", "view"}},
}

// CategoryFor returns the atomic-design tier for a component type, or
// the molecules fallback when the type appears in no tier.
func CategoryFor(componentType string) string {
	for _, entry := range categoryTable {
		for _, t := range entry.types {
			if componentType == t {
				return entry.tier
			}
		}
	}
	return CategoryMolecules
}

var (
	// Leading version markers and component/comp prefixes, e.g.
	// "v2_button", "Component/Card", "comp-nav".
	displayPrefix = regexp.MustCompile(`(?i)^(v[0-9]+[_\-/\s]*|component[_\-/\s]*|comp[_\-/\s]*)`)
	// Trailing numeric suffixes, e.g. "button_01".
	displaySuffix  = regexp.MustCompile(`[_\-\s]*[0-9]+$`)
	displaySepRuns = regexp.MustCompile(`[_\-/\s]+`)
)

// DisplayName derives a human-readable component name from the original
// object name. When stripping the version/component prefix and numeric
// suffix leaves fewer than two characters, the title-cased component
// type is used instead.
func DisplayName(originalName, componentType string) string {
	cleaned := displayPrefix.ReplaceAllString(originalName, "")
	cleaned = displaySuffix.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(displaySepRuns.ReplaceAllString(cleaned, " "))

	if len(cleaned) < 2 {
		return titleCase(strings.ReplaceAll(componentType, "_", " "))
	}
	return titleCase(cleaned)
}

// titleCase upper-cases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
