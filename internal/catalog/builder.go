package catalog

import (
	"uilens/internal/components"
	"uilens/internal/document"
	"uilens/internal/quality"
	"uilens/internal/tokens"
)

// Build assembles the full catalog from the collected corpus, the
// detected components, and the aggregated tokens. Every ratio guards the
// empty-corpus case: zero objects or zero components yields zero scores
// and empty collections, never a division error.
func Build(collected []document.CollectedObject, comps []components.DetectedComponent, tokenAgg tokens.Aggregate) *Catalog {
	if comps == nil {
		comps = []components.DetectedComponent{}
	}

	designSystem := AnalyzeDesignSystem(comps)
	assessment := quality.Assess(comps, designSystem.NamingConsistency, designSystem.MaturityScore)

	cat := &Catalog{
		Summary: Summary{
			TotalObjects:        len(collected),
			TotalComponents:     len(comps),
			DistinctObjectTypes: distinctTypes(collected),
			CategoryCoverage:    float64(len(designSystem.CategoriesFound)) / float64(len(components.Tiers)),
			AverageReusability:  assessment.AverageReusability,
		},
		DetectedComponents:  comps,
		ComponentPatterns:   analyzePatterns(comps),
		DesignSystem:        designSystem,
		DesignTokens:        tokenAgg,
		ReusabilityAnalysis: analyzeReusability(comps),
		ComponentCatalog:    groupByCategory(comps),
		QualityAssessment:   assessment,
		Recommendations:     quality.Recommendations(assessment, designSystem.Recommendations),
	}

	return cat
}

func distinctTypes(collected []document.CollectedObject) int {
	types := make(map[string]struct{})
	for _, co := range collected {
		types[co.Object.Type] = struct{}{}
	}
	return len(types)
}

// groupByCategory arranges components by atomic-design tier for display.
// Only tiers with components get a key.
func groupByCategory(comps []components.DetectedComponent) map[string][]Entry {
	grouped := make(map[string][]Entry)
	for _, c := range comps {
		grouped[c.Category] = append(grouped[c.Category], Entry{
			Name:          c.Name,
			ComponentType: c.ComponentType,
			Instances:     c.InstanceCount(),
		})
	}
	return grouped
}
