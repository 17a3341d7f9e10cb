// Package signature derives fuzzy grouping keys for design objects and
// holds the ordered registry of component signature definitions.
package signature

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"uilens/internal/document"
)

var (
	digitRuns     = regexp.MustCompile(`[0-9]+`)
	separatorRuns = regexp.MustCompile(`[_-]+`)
)

// Generate returns the grouping key for an object. The key is
// intentionally fuzzy: the name is lower-cased, digit runs collapse to
// the literal "N", separator runs collapse to a single "_", and width and
// height are quantized to 10px buckets. Objects that differ only by an
// incrementing suffix or by a few pixels share a key.
func Generate(obj *document.DesignObject) string {
	name := strings.ToLower(obj.Name)
	name = digitRuns.ReplaceAllString(name, "N")
	name = separatorRuns.ReplaceAllString(name, "_")

	return strings.Join([]string{
		obj.Type,
		name,
		strconv.Itoa(int(math.Floor(obj.Width / 10))),
		strconv.Itoa(int(math.Floor(obj.Height / 10))),
	}, "_")
}
