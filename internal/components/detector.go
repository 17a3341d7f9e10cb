package components

import (
	"github.com/google/uuid"

	"uilens/internal/document"
	"uilens/internal/logging"
	"uilens/internal/signature"
	"uilens/internal/tokens"
)

// Detector runs the two-pass component detection: signature grouping
// over the whole corpus, then individual classification of whatever the
// grouping pass left unclaimed.
type Detector struct {
	registry   *signature.Registry
	classifier *Classifier
	logger     *logging.Logger
}

// NewDetector returns a detector over the given registry.
func NewDetector(registry *signature.Registry, logger *logging.Logger) *Detector {
	return &Detector{
		registry:   registry,
		classifier: NewClassifier(registry),
		logger:     logger,
	}
}

// group is one signature cluster in first-seen order.
type group struct {
	key     string
	members []document.CollectedObject
}

// Detect finds components in the collected corpus.
//
// Pass one clusters objects by signature; a cluster qualifies when it
// has more than one member or its representative looks like a component
// (registry name or type match). Qualifying clusters become components
// and claim their members. Pass two classifies each unclaimed object
// singly: first registry entry with a matching name pattern wins, and a
// match yields a single-instance component with the fixed individual
// reusability score.
//
// Every object ends up in at most one component.
func (d *Detector) Detect(collected []document.CollectedObject) []DetectedComponent {
	groups := groupBySignature(collected)

	claimed := make(map[document.ObjectContext]struct{})
	detected := []DetectedComponent{}

	for _, g := range groups {
		rep := g.members[0].Object
		if len(g.members) == 1 && !d.hasComponentCharacteristics(rep) {
			continue
		}

		component := d.buildGroupComponent(g)
		detected = append(detected, component)
		for _, member := range g.members {
			claimed[member.Context] = struct{}{}
		}
	}

	grouped := len(detected)

	for _, co := range collected {
		if _, ok := claimed[co.Context]; ok {
			continue
		}
		def, ok := d.registry.FirstNameMatch(co.Object.Name)
		if !ok {
			continue
		}
		detected = append(detected, d.buildIndividualComponent(co, def))
		claimed[co.Context] = struct{}{}
	}

	if d.logger != nil {
		d.logger.Debug("Component detection finished", map[string]interface{}{
			"objects":    len(collected),
			"grouped":    grouped,
			"individual": len(detected) - grouped,
		})
	}

	return detected
}

// groupBySignature clusters the corpus by signature key, preserving the
// first-seen order of both clusters and members.
func groupBySignature(collected []document.CollectedObject) []*group {
	byKey := make(map[string]*group)
	var ordered []*group

	for _, co := range collected {
		key := signature.Generate(co.Object)
		g, ok := byKey[key]
		if !ok {
			g = &group{key: key}
			byKey[key] = g
			ordered = append(ordered, g)
		}
		g.members = append(g.members, co)
	}

	return ordered
}

// hasComponentCharacteristics reports whether a lone object still looks
// like a component: any registry name pattern in its name, or its
// structural type in any registry type pattern.
func (d *Detector) hasComponentCharacteristics(obj *document.DesignObject) bool {
	return d.registry.MatchesName(obj.Name) || d.registry.MatchesType(obj.Type)
}

func (d *Detector) buildGroupComponent(g *group) DetectedComponent {
	rep := g.members[0].Object
	componentType := d.classifier.Classify(rep)

	instances := make([]document.ObjectContext, len(g.members))
	for i, member := range g.members {
		instances[i] = member.Context
	}

	return DetectedComponent{
		ID:                    uuid.NewString(),
		Name:                  DisplayName(rep.Name, componentType),
		ComponentType:         componentType,
		Category:              CategoryFor(componentType),
		Instances:             instances,
		Properties:            snapshotProperties(rep),
		UsagePattern:          UsagePattern(len(instances)),
		ReusabilityScore:      ReusabilityScore(len(instances)),
		ComplexityScore:       ComplexityScore(rep),
		DesignTokens:          tokens.Extract(rep),
		AccessibilityFeatures: AccessibilityFeatures(rep),
	}
}

func (d *Detector) buildIndividualComponent(co document.CollectedObject, def signature.Def) DetectedComponent {
	obj := co.Object

	return DetectedComponent{
		ID:                    uuid.NewString(),
		Name:                  DisplayName(obj.Name, def.Name),
		ComponentType:         def.Name,
		Category:              CategoryFor(def.Name),
		Instances:             []document.ObjectContext{co.Context},
		Properties:            snapshotProperties(obj),
		UsagePattern:          UsageSingleUse,
		ReusabilityScore:      IndividualReusability,
		ComplexityScore:       ComplexityScore(obj),
		DesignTokens:          tokens.Extract(obj),
		AccessibilityFeatures: AccessibilityFeatures(obj),
	}
}
