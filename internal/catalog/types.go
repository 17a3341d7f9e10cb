// Package catalog assembles detected components, aggregated tokens, and
// design-system analysis into the catalog structure consumed by report
// generators.
package catalog

import (
	"uilens/internal/components"
	"uilens/internal/quality"
	"uilens/internal/tokens"
)

// Summary holds the headline counts and averages for a run.
type Summary struct {
	TotalObjects        int     `json:"totalObjects"`
	TotalComponents     int     `json:"totalComponents"`
	DistinctObjectTypes int     `json:"distinctObjectTypes"`
	CategoryCoverage    float64 `json:"categoryCoverage"`
	AverageReusability  float64 `json:"averageReusability"`
}

// TypeCount is a component type with its occurrence count.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// NamingStats describes the case patterns of component display names.
type NamingStats struct {
	DominantPattern string         `json:"dominantPattern"`
	PatternCounts   map[string]int `json:"patternCounts"`
	Consistency     float64        `json:"consistency"`
}

// ComponentPatterns summarizes recurring structure across the detected
// components.
type ComponentPatterns struct {
	MostCommonTypes         []TypeCount    `json:"mostCommonTypes"`
	ReusabilityDistribution map[string]int `json:"reusabilityDistribution"`
	ComplexityDistribution  map[string]int `json:"complexityDistribution"`
	NamingPatterns          NamingStats    `json:"namingPatterns"`
}

// DesignSystemReport is the design-system maturity analysis.
type DesignSystemReport struct {
	CategoriesFound       []string       `json:"categoriesFound"`
	MissingCategories     []string       `json:"missingCategories"`
	MaturityScore         float64        `json:"maturityScore"`
	ComponentDistribution map[string]int `json:"componentDistribution"`
	NamingConsistency     float64        `json:"namingConsistency"`
	Recommendations       []string       `json:"recommendations"`
}

// ReusabilityAnalysis lists the best and worst reuse candidates.
type ReusabilityAnalysis struct {
	HighlyReusable     []string `json:"highlyReusable"`
	PoorlyReusable     []string `json:"poorlyReusable"`
	ReuseOpportunities []string `json:"reuseOpportunities"`
}

// Entry is the per-category display form of a component.
type Entry struct {
	Name          string `json:"name"`
	ComponentType string `json:"componentType"`
	Instances     int    `json:"instances"`
}

// Catalog is the full analysis result for one document.
type Catalog struct {
	Summary             Summary                        `json:"summary"`
	DetectedComponents  []components.DetectedComponent `json:"detectedComponents"`
	ComponentPatterns   ComponentPatterns              `json:"componentPatterns"`
	DesignSystem        DesignSystemReport             `json:"designSystem"`
	DesignTokens        tokens.Aggregate               `json:"designTokens"`
	ReusabilityAnalysis ReusabilityAnalysis            `json:"reusabilityAnalysis"`
	ComponentCatalog    map[string][]Entry             `json:"componentCatalog"`
	QualityAssessment   quality.Assessment             `json:"qualityAssessment"`
	Recommendations     []string                       `json:"recommendations"`
}
