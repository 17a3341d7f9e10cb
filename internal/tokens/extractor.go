// Package tokens extracts design tokens (colors, typography, spacing,
// effects) from design objects and aggregates them across a corpus.
package tokens

import (
	"sort"
	"strconv"

	"uilens/internal/document"
)

// Token categories.
const (
	CategoryColors     = "colors"
	CategoryTypography = "typography"
	CategorySpacing    = "spacing"
	CategoryEffects    = "effects"
)

// topTokenCount is how many tokens each category keeps after aggregation.
const topTokenCount = 10

// ObjectTokens is the token snapshot of a single object.
type ObjectTokens struct {
	Colors     map[string]string `json:"colors,omitempty"`
	Typography map[string]string `json:"typography,omitempty"`
	Spacing    map[string]string `json:"spacing,omitempty"`
	Effects    map[string]string `json:"effects,omitempty"`
}

// Extract derives the token snapshot for one object:
//   - colors: fill and stroke, when present
//   - typography: font fields, only for text objects
//   - spacing: width and height, always
//   - effects: shadow and blur, when either is present
func Extract(obj *document.DesignObject) ObjectTokens {
	var t ObjectTokens

	if obj.Fill != "" || obj.Stroke != "" {
		t.Colors = make(map[string]string, 2)
		if obj.Fill != "" {
			t.Colors["fill"] = obj.Fill
		}
		if obj.Stroke != "" {
			t.Colors["stroke"] = obj.Stroke
		}
	}

	if obj.Type == "text" {
		t.Typography = map[string]string{
			"font_family": obj.FontFamily,
			"font_size":   obj.FontSize,
			"font_weight": obj.FontWeight,
			"line_height": obj.LineHeight,
		}
	}

	t.Spacing = map[string]string{
		"width":  formatDimension(obj.Width),
		"height": formatDimension(obj.Height),
	}

	if obj.Shadow != "" || obj.Blur != "" {
		t.Effects = make(map[string]string, 2)
		if obj.Shadow != "" {
			t.Effects["shadow"] = obj.Shadow
		}
		if obj.Blur != "" {
			t.Effects["blur"] = obj.Blur
		}
	}

	return t
}

func formatDimension(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// TokenCount is one aggregated token with its occurrence count.
type TokenCount struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// Aggregate holds the top tokens per category across a corpus, ordered by
// count descending with ties broken by first-seen order.
type Aggregate struct {
	Colors     []TokenCount `json:"colors"`
	Typography []TokenCount `json:"typography"`
	Spacing    []TokenCount `json:"spacing"`
	Effects    []TokenCount `json:"effects"`
}

// Aggregator accumulates token occurrences across objects. Tokens are
// keyed as "{field}_{value}" within each category; first-seen order is
// tracked so that ranking ties resolve deterministically.
type Aggregator struct {
	categories map[string]*categoryCounts
}

type categoryCounts struct {
	counts map[string]int
	order  []string
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		categories: map[string]*categoryCounts{
			CategoryColors:     {counts: make(map[string]int)},
			CategoryTypography: {counts: make(map[string]int)},
			CategorySpacing:    {counts: make(map[string]int)},
			CategoryEffects:    {counts: make(map[string]int)},
		},
	}
}

// Add records one object's token snapshot. Fields within a snapshot are
// recorded in a fixed field order so that first-seen tracking does not
// depend on map iteration.
func (a *Aggregator) Add(t ObjectTokens) {
	a.add(CategoryColors, t.Colors, []string{"fill", "stroke"})
	a.add(CategoryTypography, t.Typography, []string{"font_family", "font_size", "font_weight", "line_height"})
	a.add(CategorySpacing, t.Spacing, []string{"width", "height"})
	a.add(CategoryEffects, t.Effects, []string{"shadow", "blur"})
}

func (a *Aggregator) add(category string, fields map[string]string, fieldOrder []string) {
	if len(fields) == 0 {
		return
	}
	cc := a.categories[category]
	for _, field := range fieldOrder {
		value, ok := fields[field]
		if !ok {
			continue
		}
		token := field + "_" + value
		if _, seen := cc.counts[token]; !seen {
			cc.order = append(cc.order, token)
		}
		cc.counts[token]++
	}
}

// Result ranks each category's tokens and truncates to the top 10.
func (a *Aggregator) Result() Aggregate {
	return Aggregate{
		Colors:     a.top(CategoryColors),
		Typography: a.top(CategoryTypography),
		Spacing:    a.top(CategorySpacing),
		Effects:    a.top(CategoryEffects),
	}
}

func (a *Aggregator) top(category string) []TokenCount {
	cc := a.categories[category]

	ranked := make([]TokenCount, 0, len(cc.order))
	for _, token := range cc.order {
		ranked = append(ranked, TokenCount{Token: token, Count: cc.counts[token]})
	}

	// Stable sort keeps first-seen order for equal counts.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > topTokenCount {
		ranked = ranked[:topTokenCount]
	}
	return ranked
}
