// Package quality combines the catalog sub-scores into a single overall
// score, a letter grade, and the final recommendation list.
package quality

import (
	"uilens/internal/components"
)

// Assessment is the overall quality verdict for a component corpus.
type Assessment struct {
	OverallScore          float64 `json:"overallScore"`
	Grade                 string  `json:"grade"`
	AverageReusability    float64 `json:"averageReusability"`
	NamingConsistency     float64 `json:"namingConsistency"`
	MaturityScore         float64 `json:"maturityScore"`
	AccessibilityCoverage float64 `json:"accessibilityCoverage"`
}

// Quality thresholds for the recommendation rules.
const (
	lowOverallThreshold       = 0.6
	lowReusabilityThreshold   = 0.5
	lowAccessibilityThreshold = 0.5
	lowMaturityThreshold      = 0.5
)

// Assess computes the overall score as the mean of average reusability,
// naming consistency, maturity, and accessibility coverage. An empty
// corpus scores 0 across the board.
func Assess(comps []components.DetectedComponent, namingConsistency, maturityScore float64) Assessment {
	a := Assessment{
		NamingConsistency: namingConsistency,
		MaturityScore:     maturityScore,
	}

	if len(comps) == 0 {
		a.Grade = GradeFor(0)
		return a
	}

	var reusabilitySum float64
	accessible := 0
	for _, c := range comps {
		reusabilitySum += c.ReusabilityScore
		if len(c.AccessibilityFeatures) > 0 {
			accessible++
		}
	}

	a.AverageReusability = reusabilitySum / float64(len(comps))
	a.AccessibilityCoverage = float64(accessible) / float64(len(comps))
	a.OverallScore = (a.AverageReusability + a.NamingConsistency + a.MaturityScore + a.AccessibilityCoverage) / 4
	a.Grade = GradeFor(a.OverallScore)

	return a
}

// GradeFor maps an overall score to a letter grade.
func GradeFor(score float64) string {
	switch {
	case score >= 0.9:
		return "A"
	case score >= 0.8:
		return "B"
	case score >= 0.7:
		return "C"
	case score >= 0.6:
		return "D"
	default:
		return "F"
	}
}

// Recommendations builds the final recommendation list: the quality
// threshold rules fire in fixed order (overall, reusability,
// accessibility, maturity), followed by the design-system analyzer's own
// recommendations.
func Recommendations(a Assessment, designSystemRecs []string) []string {
	recs := []string{}

	if a.OverallScore < lowOverallThreshold {
		recs = append(recs, "Overall component quality is low; invest in design system foundations before scaling the library")
	}
	if a.AverageReusability < lowReusabilityThreshold {
		recs = append(recs, "Increase component reuse by consolidating near-duplicate objects into shared components")
	}
	if a.AccessibilityCoverage < lowAccessibilityThreshold {
		recs = append(recs, "Annotate components with accessibility hints (aria labels, roles, focus states)")
	}
	if a.MaturityScore < lowMaturityThreshold {
		recs = append(recs, "Grow design system maturity: broaden category coverage and standardize naming")
	}

	recs = append(recs, designSystemRecs...)
	return recs
}
