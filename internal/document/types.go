// Package document models a hierarchical design-document export
// (files -> pages -> objects) and flattens it for analysis.
package document

// DesignObject is a single object in a design export: a shape, a text
// layer, a group, or anything else the design tool emits. Absent numeric
// fields are zero, absent string fields are empty. Objects are never
// mutated after parsing.
type DesignObject struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`

	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`

	Fill       string `json:"fill,omitempty"`
	Stroke     string `json:"stroke,omitempty"`
	FontFamily string `json:"fontFamily,omitempty"`
	FontSize   string `json:"fontSize,omitempty"`
	FontWeight string `json:"fontWeight,omitempty"`
	LineHeight string `json:"lineHeight,omitempty"`
	Shadow     string `json:"shadow,omitempty"`
	Blur       string `json:"blur,omitempty"`

	Children []string `json:"children,omitempty"`
	Visible  bool     `json:"visible"`
	Locked   bool     `json:"locked"`

	// Properties holds any extra fields the export carries beyond the
	// ones modeled above, normalized to strings.
	Properties map[string]string `json:"properties,omitempty"`
}

// PropertyCount returns the number of style fields set on the object plus
// its extra properties. Used by the complexity score.
func (o *DesignObject) PropertyCount() int {
	count := len(o.Properties)
	for _, v := range []string{o.Fill, o.Stroke, o.FontFamily, o.FontSize, o.FontWeight, o.LineHeight, o.Shadow, o.Blur} {
		if v != "" {
			count++
		}
	}
	return count
}

// ObjectContext is the provenance of an object within the export.
type ObjectContext struct {
	FileID   string `json:"fileId"`
	PageID   string `json:"pageId"`
	ObjectID string `json:"objectId"`
}

// Page is an ordered list of objects within a file.
type Page struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Objects []DesignObject `json:"objects"`
}

// File is an ordered list of pages within an export.
type File struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Pages []Page `json:"pages"`
}

// Document is a parsed design export. Files, pages, and objects are kept
// as slices so the source iteration order survives parsing; exports that
// key their containers by id are materialized in key order.
type Document struct {
	Files []File `json:"files"`
}

// ObjectCount returns the total number of objects across all files and pages.
func (d *Document) ObjectCount() int {
	total := 0
	for _, f := range d.Files {
		for _, p := range f.Pages {
			total += len(p.Objects)
		}
	}
	return total
}

// CollectedObject pairs an object with its provenance.
type CollectedObject struct {
	Object  *DesignObject
	Context ObjectContext
}

// Collect flattens the document into a single ordered stream of
// (object, context) pairs: file order x page order x object order.
// No filtering, no deduplication.
func Collect(doc *Document) []CollectedObject {
	if doc == nil {
		return nil
	}

	collected := make([]CollectedObject, 0, doc.ObjectCount())
	for fi := range doc.Files {
		file := &doc.Files[fi]
		for pi := range file.Pages {
			page := &file.Pages[pi]
			for oi := range page.Objects {
				obj := &page.Objects[oi]
				collected = append(collected, CollectedObject{
					Object: obj,
					Context: ObjectContext{
						FileID:   file.ID,
						PageID:   page.ID,
						ObjectID: obj.ID,
					},
				})
			}
		}
	}

	return collected
}
