package catalog

import (
	"sort"

	"uilens/internal/components"
)

// Distribution bucket labels.
const (
	BucketHigh     = "high"
	BucketMedium   = "medium"
	BucketLow      = "low"
	BucketComplex  = "complex"
	BucketModerate = "moderate"
	BucketSimple   = "simple"
)

// mostCommonTypeLimit caps the most-common-types list.
const mostCommonTypeLimit = 5

// analyzePatterns summarizes component structure: the most common
// component types, score distributions, and naming statistics.
func analyzePatterns(comps []components.DetectedComponent) ComponentPatterns {
	patterns := ComponentPatterns{
		MostCommonTypes:         []TypeCount{},
		ReusabilityDistribution: map[string]int{BucketHigh: 0, BucketMedium: 0, BucketLow: 0},
		ComplexityDistribution:  map[string]int{BucketComplex: 0, BucketModerate: 0, BucketSimple: 0},
	}

	typeCounts := make(map[string]int)
	names := make([]string, len(comps))
	for i, c := range comps {
		typeCounts[c.ComponentType]++
		names[i] = c.Name

		switch {
		case c.ReusabilityScore >= 0.7:
			patterns.ReusabilityDistribution[BucketHigh]++
		case c.ReusabilityScore >= 0.3:
			patterns.ReusabilityDistribution[BucketMedium]++
		default:
			patterns.ReusabilityDistribution[BucketLow]++
		}

		switch {
		case c.ComplexityScore >= 0.7:
			patterns.ComplexityDistribution[BucketComplex]++
		case c.ComplexityScore >= 0.4:
			patterns.ComplexityDistribution[BucketModerate]++
		default:
			patterns.ComplexityDistribution[BucketSimple]++
		}
	}

	for t, count := range typeCounts {
		patterns.MostCommonTypes = append(patterns.MostCommonTypes, TypeCount{Type: t, Count: count})
	}
	sort.Slice(patterns.MostCommonTypes, func(i, j int) bool {
		if patterns.MostCommonTypes[i].Count != patterns.MostCommonTypes[j].Count {
			return patterns.MostCommonTypes[i].Count > patterns.MostCommonTypes[j].Count
		}
		return patterns.MostCommonTypes[i].Type < patterns.MostCommonTypes[j].Type
	})
	if len(patterns.MostCommonTypes) > mostCommonTypeLimit {
		patterns.MostCommonTypes = patterns.MostCommonTypes[:mostCommonTypeLimit]
	}

	patterns.NamingPatterns = namingStats(names)
	return patterns
}
