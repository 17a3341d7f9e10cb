package signature

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Def describes one named component signature. NamePatterns and
// TypePatterns drive classification; PropertyPatterns and
// StructuralPatterns are informational metadata carried through to
// reports.
type Def struct {
	Name                string   `json:"name" yaml:"name" toml:"name"`
	NamePatterns        []string `json:"namePatterns" yaml:"name_patterns" toml:"name_patterns"`
	TypePatterns        []string `json:"typePatterns" yaml:"type_patterns" toml:"type_patterns"`
	PropertyPatterns    []string `json:"propertyPatterns,omitempty" yaml:"property_patterns" toml:"property_patterns"`
	StructuralPatterns  []string `json:"structuralPatterns,omitempty" yaml:"structural_patterns" toml:"structural_patterns"`
	ConfidenceThreshold float64  `json:"confidenceThreshold" yaml:"confidence_threshold" toml:"confidence_threshold"`
}

// Registry is an immutable, ordered list of signature definitions.
// Order is significant: classification is first-over-threshold, so two
// registries with the same entries in different order can classify the
// same object differently. The registry is injected into the detector,
// never read from package state.
type Registry struct {
	defs []Def
}

// NewRegistry validates the definitions and returns a registry over them.
// Malformed definitions are a programmer (or config-file) error and fail
// here, before any object is processed.
func NewRegistry(defs []Def) (*Registry, error) {
	for i, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("signature %d: name must not be empty", i)
		}
		if len(def.NamePatterns) == 0 {
			return nil, fmt.Errorf("signature %q: name_patterns must not be empty", def.Name)
		}
		if def.ConfidenceThreshold <= 0 || def.ConfidenceThreshold > 1 {
			return nil, fmt.Errorf("signature %q: confidence_threshold %v outside (0,1]", def.Name, def.ConfidenceThreshold)
		}
	}

	copied := make([]Def, len(defs))
	copy(copied, defs)
	return &Registry{defs: copied}, nil
}

// Defs returns the definitions in registry order.
func (r *Registry) Defs() []Def {
	return r.defs
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	return len(r.defs)
}

// MatchesName reports whether the lower-cased name contains any name
// pattern from any definition.
func (r *Registry) MatchesName(name string) bool {
	lower := strings.ToLower(name)
	for _, def := range r.defs {
		for _, pattern := range def.NamePatterns {
			if strings.Contains(lower, pattern) {
				return true
			}
		}
	}
	return false
}

// MatchesType reports whether the structural type appears in any
// definition's type patterns.
func (r *Registry) MatchesType(objType string) bool {
	for _, def := range r.defs {
		for _, t := range def.TypePatterns {
			if objType == t {
				return true
			}
		}
	}
	return false
}

// FirstNameMatch returns the first definition, in registry order, with a
// name pattern contained in the lower-cased name. Used by the individual
// classification pass, which matches on name alone.
func (r *Registry) FirstNameMatch(name string) (Def, bool) {
	lower := strings.ToLower(name)
	for _, def := range r.defs {
		for _, pattern := range def.NamePatterns {
			if strings.Contains(lower, pattern) {
				return def, true
			}
		}
	}
	return Def{}, false
}

// DefaultRegistry returns the built-in signature definitions.
func DefaultRegistry() *Registry {
	reg, err := NewRegistry(defaultDefs)
	if err != nil {
		// The built-in table is static; a validation failure here is a bug.
		panic(fmt.Sprintf("default registry invalid: %v", err))
	}
	return reg
}

var defaultDefs = []Def{
	{
		Name:                "button",
		NamePatterns:        []string{"button", "btn", "cta"},
		TypePatterns:        []string{"rectangle", "frame", "group"},
		PropertyPatterns:    []string{"fill", "corner_radius"},
		StructuralPatterns:  []string{"text_child"},
		ConfidenceThreshold: 0.7,
	},
	{
		Name:                "input",
		NamePatterns:        []string{"input", "field", "textbox", "search"},
		TypePatterns:        []string{"rectangle", "frame"},
		PropertyPatterns:    []string{"stroke", "placeholder"},
		StructuralPatterns:  []string{"text_child"},
		ConfidenceThreshold: 0.7,
	},
	{
		Name:                "card",
		NamePatterns:        []string{"card", "panel", "tile"},
		TypePatterns:        []string{"frame", "group"},
		PropertyPatterns:    []string{"shadow", "corner_radius"},
		StructuralPatterns:  []string{"nested_children"},
		ConfidenceThreshold: 0.6,
	},
	{
		Name:                "navigation",
		NamePatterns:        []string{"nav", "menu", "tab", "breadcrumb"},
		TypePatterns:        []string{"frame", "group"},
		PropertyPatterns:    []string{"layout"},
		StructuralPatterns:  []string{"repeated_children"},
		ConfidenceThreshold: 0.6,
	},
	{
		Name:                "icon",
		NamePatterns:        []string{"icon", "ico", "glyph"},
		TypePatterns:        []string{"vector", "path", "svg"},
		PropertyPatterns:    []string{"fill"},
		StructuralPatterns:  []string{"leaf"},
		ConfidenceThreshold: 0.5,
	},
	{
		Name:                "modal",
		NamePatterns:        []string{"modal", "dialog", "popup", "overlay"},
		TypePatterns:        []string{"frame", "group"},
		PropertyPatterns:    []string{"shadow", "backdrop"},
		StructuralPatterns:  []string{"nested_children"},
		ConfidenceThreshold: 0.7,
	},
	{
		Name:                "list",
		NamePatterns:        []string{"list", "item", "row", "cell"},
		TypePatterns:        []string{"frame", "group"},
		PropertyPatterns:    []string{"layout"},
		StructuralPatterns:  []string{"repeated_children"},
		ConfidenceThreshold: 0.6,
	},
	{
		Name:                "badge",
		NamePatterns:        []string{"badge", "tag", "chip", "label"},
		TypePatterns:        []string{"rectangle", "ellipse"},
		PropertyPatterns:    []string{"fill", "corner_radius"},
		StructuralPatterns:  []string{"text_child"},
		ConfidenceThreshold: 0.6,
	},
}

// registryFile is the on-disk shape shared by the YAML and TOML loaders.
type registryFile struct {
	Signatures []Def `yaml:"signatures" toml:"signatures"`
}

// LoadRegistry reads signature definitions from a .yaml/.yml or .toml
// file and validates them. The file order of the entries becomes the
// registry order.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	var file registryFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse registry %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse registry %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported registry format: %s", filepath.Ext(path))
	}

	if len(file.Signatures) == 0 {
		return nil, fmt.Errorf("registry %s defines no signatures", path)
	}

	return NewRegistry(file.Signatures)
}
