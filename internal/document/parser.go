package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Parse reads a JSON design export into a Document.
//
// The files/pages/objects containers may each be either an array or an
// object keyed by id; keyed containers are walked token by token so the
// key order of the source is preserved. Missing containers are treated
// as empty, never as errors.
func Parse(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("export root must be an object, got %v", tok)
	}

	doc := &Document{}
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read export: %w", err)
		}
		if key == "files" {
			files, err := parseFiles(dec)
			if err != nil {
				return nil, err
			}
			doc.Files = files
		} else {
			if err := skipValue(dec); err != nil {
				return nil, err
			}
		}
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, fmt.Errorf("failed to read export: %w", err)
	}

	return doc, nil
}

// ParseBytes parses an in-memory JSON design export.
func ParseBytes(data []byte) (*Document, error) {
	return Parse(bytes.NewReader(data))
}

func parseFiles(dec *json.Decoder) ([]File, error) {
	var files []File
	err := walkContainer(dec, "files", func(id string, index int) error {
		if id == "" {
			id = "file_" + strconv.Itoa(index+1)
		}
		file, err := parseFile(dec, id)
		if err != nil {
			return err
		}
		files = append(files, *file)
		return nil
	})
	return files, err
}

func parseFile(dec *json.Decoder, id string) (*File, error) {
	file := &File{ID: id}
	err := walkObject(dec, "file", func(key string) error {
		switch key {
		case "id":
			return readString(dec, &file.ID)
		case "name":
			return readString(dec, &file.Name)
		case "pages":
			pages, err := parsePages(dec)
			if err != nil {
				return err
			}
			file.Pages = pages
			return nil
		default:
			return skipValue(dec)
		}
	})
	return file, err
}

func parsePages(dec *json.Decoder) ([]Page, error) {
	var pages []Page
	err := walkContainer(dec, "pages", func(id string, index int) error {
		if id == "" {
			id = "page_" + strconv.Itoa(index+1)
		}
		page, err := parsePage(dec, id)
		if err != nil {
			return err
		}
		pages = append(pages, *page)
		return nil
	})
	return pages, err
}

func parsePage(dec *json.Decoder, id string) (*Page, error) {
	page := &Page{ID: id}
	err := walkObject(dec, "page", func(key string) error {
		switch key {
		case "id":
			return readString(dec, &page.ID)
		case "name":
			return readString(dec, &page.Name)
		case "objects":
			objects, err := parseObjects(dec)
			if err != nil {
				return err
			}
			page.Objects = objects
			return nil
		default:
			return skipValue(dec)
		}
	})
	return page, err
}

func parseObjects(dec *json.Decoder) ([]DesignObject, error) {
	var objects []DesignObject
	err := walkContainer(dec, "objects", func(id string, index int) error {
		if id == "" {
			id = "object_" + strconv.Itoa(index+1)
		}
		var raw map[string]interface{}
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("failed to parse object %s: %w", id, err)
		}
		objects = append(objects, materializeObject(raw, id))
		return nil
	})
	return objects, err
}

// walkContainer iterates an array container (elements get empty ids) or a
// keyed container (elements get their key as id) in source order. A null
// container is treated as empty.
func walkContainer(dec *json.Decoder, what string, elem func(id string, index int) error) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", what, err)
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		if tok == nil {
			return nil
		}
		return fmt.Errorf("%s must be an array or object, got %v", what, tok)
	}

	index := 0
	switch delim {
	case '[':
		for dec.More() {
			if err := elem("", index); err != nil {
				return err
			}
			index++
		}
	case '{':
		for dec.More() {
			key, err := dec.Token()
			if err != nil {
				return fmt.Errorf("failed to read %s key: %w", what, err)
			}
			id, _ := key.(string)
			if err := elem(id, index); err != nil {
				return err
			}
			index++
		}
	default:
		return fmt.Errorf("%s must be an array or object", what)
	}

	if _, err := dec.Token(); err != nil { // closing delimiter
		return fmt.Errorf("failed to read %s: %w", what, err)
	}
	return nil
}

// walkObject iterates the keys of a JSON object, delegating each value to
// the field callback. A null value is treated as an empty object.
func walkObject(dec *json.Decoder, what string, field func(key string) error) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", what, err)
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%s must be an object, got %v", what, tok)
	}

	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read %s key: %w", what, err)
		}
		name, _ := key.(string)
		if err := field(name); err != nil {
			return err
		}
	}
	_, err = dec.Token() // closing brace
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", what, err)
	}
	return nil
}

func readString(dec *json.Decoder, dst *string) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if s, ok := tok.(string); ok {
		*dst = s
	}
	return nil
}

func skipValue(dec *json.Decoder) error {
	var raw json.RawMessage
	return dec.Decode(&raw)
}

// materializeObject converts a raw decoded object into a DesignObject,
// applying the default rules: absent numbers are 0, absent strings are
// empty, visible defaults to true, locked to false. Unmodeled fields land
// in Properties as normalized strings.
func materializeObject(raw map[string]interface{}, defaultID string) DesignObject {
	obj := DesignObject{
		ID:      defaultID,
		Visible: true,
	}

	for key, value := range raw {
		switch key {
		case "id":
			if s := scalarString(value); s != "" {
				obj.ID = s
			}
		case "type":
			obj.Type = scalarString(value)
		case "name":
			obj.Name = scalarString(value)
		case "width":
			obj.Width = numberValue(value)
		case "height":
			obj.Height = numberValue(value)
		case "x":
			obj.X = numberValue(value)
		case "y":
			obj.Y = numberValue(value)
		case "fill":
			obj.Fill = scalarString(value)
		case "stroke":
			obj.Stroke = scalarString(value)
		case "font_family":
			obj.FontFamily = scalarString(value)
		case "font_size":
			obj.FontSize = scalarString(value)
		case "font_weight":
			obj.FontWeight = scalarString(value)
		case "line_height":
			obj.LineHeight = scalarString(value)
		case "shadow":
			obj.Shadow = scalarString(value)
		case "blur":
			obj.Blur = scalarString(value)
		case "children":
			obj.Children = stringSlice(value)
		case "visible":
			if b, ok := value.(bool); ok {
				obj.Visible = b
			}
		case "locked":
			if b, ok := value.(bool); ok {
				obj.Locked = b
			}
		default:
			if obj.Properties == nil {
				obj.Properties = make(map[string]string)
			}
			obj.Properties[key] = scalarString(value)
		}
	}

	return obj
}

// scalarString normalizes a decoded JSON value to its string form.
// Composite values are re-encoded as compact JSON.
func scalarString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

func numberValue(value interface{}) float64 {
	switch v := value.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case float64:
		return v
	default:
		return 0
	}
}

func stringSlice(value interface{}) []string {
	items, ok := value.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, scalarString(item))
	}
	return out
}
