package components

import (
	"testing"

	"uilens/internal/document"
	"uilens/internal/signature"
)

func TestClassifyDefaultRegistry(t *testing.T) {
	c := NewClassifier(signature.DefaultRegistry())

	tests := []struct {
		name string
		obj  document.DesignObject
		want string
	}{
		{"name and type both match", document.DesignObject{Type: "rectangle", Name: "submit-button"}, "button"},
		{"btn alias", document.DesignObject{Type: "frame", Name: "btn-primary"}, "button"},
		{"navigation", document.DesignObject{Type: "group", Name: "main-nav"}, "navigation"},
		{"icon name and vector type", document.DesignObject{Type: "vector", Name: "icon-close"}, "icon"},
		{"no match falls back to raw type", document.DesignObject{Type: "ellipse", Name: "decoration"}, "ellipse"},
		{"no match and no type", document.DesignObject{Name: "decoration"}, "component"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(&tt.obj); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyFirstOverThreshold(t *testing.T) {
	// Both entries qualify for "save-button-modal". The first entry in
	// registry order wins even though the second would score the same.
	reg, err := signature.NewRegistry([]signature.Def{
		{Name: "modal", NamePatterns: []string{"modal"}, ConfidenceThreshold: 0.4},
		{Name: "button", NamePatterns: []string{"button"}, ConfidenceThreshold: 0.4},
	})
	if err != nil {
		t.Fatal(err)
	}

	obj := document.DesignObject{Type: "frame", Name: "save-button-modal"}
	if got := NewClassifier(reg).Classify(&obj); got != "modal" {
		t.Errorf("Classify() = %q, want modal (first qualifying entry)", got)
	}
}

func TestClassifyThresholdRequiresBothSignals(t *testing.T) {
	// Threshold 0.7 needs name (0.4) plus type (0.3). With a type the
	// registry does not list for button, the entry never qualifies and
	// the cascade still recovers "button" from the name.
	reg, err := signature.NewRegistry([]signature.Def{
		{Name: "button", NamePatterns: []string{"button"}, TypePatterns: []string{"component_instance"}, ConfidenceThreshold: 0.7},
	})
	if err != nil {
		t.Fatal(err)
	}
	c := NewClassifier(reg)

	obj := document.DesignObject{Type: "rectangle", Name: "submit-button"}
	if got := c.Classify(&obj); got != "button" {
		t.Errorf("Classify() = %q, want button via cascade", got)
	}

	matching := document.DesignObject{Type: "component_instance", Name: "submit-button"}
	if got := c.Classify(&matching); got != "button" {
		t.Errorf("Classify() = %q, want button via registry", got)
	}
}

func TestClassifyCascade(t *testing.T) {
	// Empty-ish registry that nothing qualifies against, so every result
	// comes from the substring cascade.
	reg, err := signature.NewRegistry([]signature.Def{
		{Name: "never", NamePatterns: []string{"zzz-no-such-name"}, ConfidenceThreshold: 1.0},
	})
	if err != nil {
		t.Fatal(err)
	}
	c := NewClassifier(reg)

	tests := []struct {
		objName string
		objType string
		want    string
	}{
		{"primary-btn", "rectangle", "button"},
		{"email-field", "rectangle", "input"},
		{"side-panel", "frame", "card"},
		{"hero", "frame", "frame"},
		{"hero", "", "component"},
	}

	for _, tt := range tests {
		obj := document.DesignObject{Type: tt.objType, Name: tt.objName}
		if got := c.Classify(&obj); got != tt.want {
			t.Errorf("Classify(%q/%q) = %q, want %q", tt.objName, tt.objType, got, tt.want)
		}
	}
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		componentType string
		want          string
	}{
		{"button", CategoryAtoms},
		{"icon", CategoryAtoms},
		{"card", CategoryMolecules},
		{"navigation", CategoryOrganisms},
		{"modal", CategoryOrganisms},
		{"layout", CategoryTemplates},
		{"screen", CategoryPages},
		{"rectangle", CategoryMolecules}, // unknown types default to molecules
		{"", CategoryMolecules},
	}

	for _, tt := range tests {
		if got := CategoryFor(tt.componentType); got != tt.want {
			t.Errorf("CategoryFor(%q) = %q, want %q", tt.componentType, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name          string
		original      string
		componentType string
		want          string
	}{
		{"strips numeric suffix", "btn-1", "button", "Btn"},
		{"strips version prefix", "v2_submit_button", "button", "Submit Button"},
		{"strips component prefix", "Component/Card", "card", "Card"},
		{"collapses separators", "nav__item--main", "navigation", "Nav Item Main"},
		{"too short falls back to type", "a1", "button", "Button"},
		{"empty falls back to type", "", "form_field", "Form Field"},
		{"plain name title cased", "search bar", "search", "Search Bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.original, tt.componentType); got != tt.want {
				t.Errorf("DisplayName(%q, %q) = %q, want %q", tt.original, tt.componentType, got, tt.want)
			}
		})
	}
}
