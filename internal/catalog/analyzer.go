package catalog

import (
	"fmt"
	"strings"
	"unicode"

	"uilens/internal/components"
)

// Naming case patterns.
const (
	PatternUpperCase = "UPPER_CASE"
	PatternLowerCase = "lower_case"
	PatternSnakeCase = "snake_case"
	PatternKebabCase = "kebab-case"
	PatternCamelCase = "camelCase"
	PatternUnknown   = "unknown"
)

// casePatternOrder is the fixed evaluation order of the case detector.
// It doubles as the tie-break order when two patterns are equally common.
var casePatternOrder = []string{
	PatternUpperCase,
	PatternLowerCase,
	PatternSnakeCase,
	PatternKebabCase,
	PatternCamelCase,
	PatternUnknown,
}

// namingFragmentationThreshold triggers the naming recommendation when
// the distinct first-word count exceeds this share of the component
// count.
const namingFragmentationThreshold = 0.7

// AnalyzeDesignSystem derives the design-system maturity report from the
// detected components: tier coverage, naming consistency, and the
// maturity score (mean of coverage, average reusability, and naming
// consistency). An empty component set yields all-zero scores.
func AnalyzeDesignSystem(comps []components.DetectedComponent) DesignSystemReport {
	report := DesignSystemReport{
		CategoriesFound:       []string{},
		MissingCategories:     []string{},
		ComponentDistribution: make(map[string]int),
		Recommendations:       []string{},
	}

	for _, c := range comps {
		report.ComponentDistribution[c.Category]++
	}

	for _, tier := range components.Tiers {
		if report.ComponentDistribution[tier] > 0 {
			report.CategoriesFound = append(report.CategoriesFound, tier)
		} else {
			report.MissingCategories = append(report.MissingCategories, tier)
		}
	}

	coverage := float64(len(report.CategoriesFound)) / float64(len(components.Tiers))

	names := make([]string, len(comps))
	for i, c := range comps {
		names[i] = c.Name
	}
	naming := namingStats(names)
	report.NamingConsistency = naming.Consistency

	if len(comps) > 0 {
		var reusabilitySum float64
		for _, c := range comps {
			reusabilitySum += c.ReusabilityScore
		}
		avgReusability := reusabilitySum / float64(len(comps))
		report.MaturityScore = (coverage + avgReusability + report.NamingConsistency) / 3
	}

	report.Recommendations = designSystemRecommendations(comps, report.MissingCategories)
	return report
}

func designSystemRecommendations(comps []components.DetectedComponent, missing []string) []string {
	recs := []string{}

	if len(missing) > 0 {
		recs = append(recs, fmt.Sprintf("Develop components for missing categories: %s", strings.Join(missing, ", ")))
	}

	for _, c := range comps {
		if c.ReusabilityScore < 0.3 {
			recs = append(recs, "Review low-reusability components for consolidation or removal")
			break
		}
	}

	if len(comps) > 0 {
		firstWords := make(map[string]struct{})
		for _, c := range comps {
			if fields := strings.Fields(c.Name); len(fields) > 0 {
				firstWords[fields[0]] = struct{}{}
			}
		}
		if float64(len(firstWords)) > namingFragmentationThreshold*float64(len(comps)) {
			recs = append(recs, "Standardize component naming conventions across the design system")
		}
	}

	return recs
}

// namingStats classifies each name into exactly one case pattern and
// returns the dominant pattern with its share. The per-name check order
// is fixed (UPPER_CASE, lower_case, snake_case, kebab-case, camelCase,
// unknown); a name stops at the first predicate it satisfies, so short
// names can settle early. Preserved as-is: consistency numbers are only
// comparable if every caller classifies the same way.
func namingStats(names []string) NamingStats {
	stats := NamingStats{
		DominantPattern: PatternUnknown,
		PatternCounts:   make(map[string]int),
	}
	if len(names) == 0 {
		return stats
	}

	for _, name := range names {
		stats.PatternCounts[casePattern(name)]++
	}

	dominant := 0
	for _, pattern := range casePatternOrder {
		if count := stats.PatternCounts[pattern]; count > dominant {
			dominant = count
			stats.DominantPattern = pattern
		}
	}

	stats.Consistency = float64(dominant) / float64(len(names))
	return stats
}

func casePattern(name string) string {
	switch {
	case isUpper(name):
		return PatternUpperCase
	case isLower(name):
		return PatternLowerCase
	case strings.Contains(name, "_"):
		return PatternSnakeCase
	case strings.Contains(name, "-"):
		return PatternKebabCase
	case hasInternalUpper(name):
		return PatternCamelCase
	default:
		return PatternUnknown
	}
}

// isUpper reports whether the name has at least one letter and no
// lower-case letters.
func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

// isLower reports whether the name has at least one letter and no
// upper-case letters.
func isLower(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func hasInternalUpper(s string) bool {
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
