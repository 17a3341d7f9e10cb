package catalog

import (
	"fmt"
	"sort"

	"uilens/internal/components"
)

// Reusability cutoffs for the highly/poorly lists.
const (
	highReusabilityCutoff = 0.7
	lowReusabilityCutoff  = 0.3
)

// analyzeReusability splits components into highly and poorly reusable
// name lists and derives reuse-opportunity suggestions: duplicated
// component types that could collapse into one configurable component,
// and heavily reused components worth promoting into a shared library.
func analyzeReusability(comps []components.DetectedComponent) ReusabilityAnalysis {
	analysis := ReusabilityAnalysis{
		HighlyReusable:     []string{},
		PoorlyReusable:     []string{},
		ReuseOpportunities: []string{},
	}

	typeCounts := make(map[string]int)
	for _, c := range comps {
		typeCounts[c.ComponentType]++

		if c.ReusabilityScore >= highReusabilityCutoff {
			analysis.HighlyReusable = append(analysis.HighlyReusable, c.Name)
		} else if c.ReusabilityScore < lowReusabilityCutoff {
			analysis.PoorlyReusable = append(analysis.PoorlyReusable, c.Name)
		}
	}

	duplicated := make([]string, 0, len(typeCounts))
	for t, count := range typeCounts {
		if count > 1 {
			duplicated = append(duplicated, t)
		}
	}
	sort.Strings(duplicated)
	for _, t := range duplicated {
		analysis.ReuseOpportunities = append(analysis.ReuseOpportunities,
			fmt.Sprintf("Consolidate %d %q components into one configurable component", typeCounts[t], t))
	}

	for _, c := range comps {
		if c.UsagePattern == components.UsageHeavilyReused {
			analysis.ReuseOpportunities = append(analysis.ReuseOpportunities,
				fmt.Sprintf("Promote %q to a documented library component", c.Name))
		}
	}

	return analysis
}
