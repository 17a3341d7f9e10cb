package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"uilens/internal/catalog"
	"uilens/internal/components"
	"uilens/internal/quality"
	"uilens/internal/storage"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *catalog.Catalog:
		return formatCatalogHuman(v), nil
	case []components.DetectedComponent:
		return formatComponentsHuman(v), nil
	case quality.Assessment:
		return formatQualityHuman(v, nil), nil
	case []storage.Run:
		return formatRunsHuman(v), nil
	default:
		// For unknown types, fall back to JSON
		return formatJSON(resp)
	}
}

func formatCatalogHuman(cat *catalog.Catalog) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Objects: %d   Components: %d   Object types: %d\n",
		cat.Summary.TotalObjects, cat.Summary.TotalComponents, cat.Summary.DistinctObjectTypes)
	fmt.Fprintf(&b, "Category coverage: %.0f%%   Average reusability: %.2f\n\n",
		cat.Summary.CategoryCoverage*100, cat.Summary.AverageReusability)

	categories := make([]string, 0, len(cat.ComponentCatalog))
	for category := range cat.ComponentCatalog {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		fmt.Fprintf(&b, "%s:\n", category)
		for _, entry := range cat.ComponentCatalog[category] {
			fmt.Fprintf(&b, "  %-30s %-12s x%d\n", entry.Name, entry.ComponentType, entry.Instances)
		}
	}

	b.WriteString("\n")
	b.WriteString(formatQualityHuman(cat.QualityAssessment, cat.Recommendations))
	return b.String()
}

func formatComponentsHuman(comps []components.DetectedComponent) string {
	if len(comps) == 0 {
		return "No components detected."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-30s %-12s %-10s %5s %7s %7s\n",
		"NAME", "TYPE", "CATEGORY", "USES", "REUSE", "CMPLX")
	for _, c := range comps {
		fmt.Fprintf(&b, "%-30s %-12s %-10s %5d %7.2f %7.2f\n",
			c.Name, c.ComponentType, c.Category, c.InstanceCount(),
			c.ReusabilityScore, c.ComplexityScore)
	}
	return b.String()
}

func formatQualityHuman(a quality.Assessment, recs []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Quality: %s (%.2f)\n", a.Grade, a.OverallScore)
	fmt.Fprintf(&b, "  reusability:   %.2f\n", a.AverageReusability)
	fmt.Fprintf(&b, "  naming:        %.2f\n", a.NamingConsistency)
	fmt.Fprintf(&b, "  maturity:      %.2f\n", a.MaturityScore)
	fmt.Fprintf(&b, "  accessibility: %.2f\n", a.AccessibilityCoverage)

	if len(recs) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, rec := range recs {
			fmt.Fprintf(&b, "  - %s\n", rec)
		}
	}
	return b.String()
}

func formatRunsHuman(runs []storage.Run) string {
	if len(runs) == 0 {
		return "No stored runs."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-36s %-20s %8s %6s %6s\n", "ID", "ANALYZED", "OBJECTS", "COMPS", "GRADE")
	for _, run := range runs {
		fmt.Fprintf(&b, "%-36s %-20s %8d %6d %6s\n",
			run.ID, run.AnalyzedAt.Format("2006-01-02 15:04:05"),
			run.ObjectCount, run.ComponentCount, run.Grade)
	}
	return b.String()
}
