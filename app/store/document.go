package store

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// IDField is the primary key of every document.
const IDField = "_id"

// Document is the decoded form of a stored JSON object.
type Document map[string]any

// Filter matches documents whose fields equal the given values. Keys may be
// dotted paths into embedded objects.
type Filter map[string]any

// ByID is a filter on the primary key.
func ByID(id fmt.Stringer) Filter {
	return Filter{IDField: id.String()}
}

// Projection restricts which fields of a document are returned.
type Projection struct {
	fields  []string
	exclude bool
}

// Include keeps only the named fields. IDField is always kept.
func Include(fields ...string) Projection {
	return Projection{fields: fields}
}

// Exclude drops the named fields and keeps everything else.
func Exclude(fields ...string) Projection {
	return Projection{fields: fields, exclude: true}
}

func (p Projection) apply(doc Document) Document {
	if len(p.fields) == 0 {
		return doc
	}
	if p.exclude {
		for _, f := range p.fields {
			removePath(doc, f)
		}
		return doc
	}

	out := Document{}
	if id, ok := doc[IDField]; ok {
		out[IDField] = id
	}
	for _, f := range p.fields {
		if v, ok := lookupPath(doc, f); ok {
			setPath(out, f, v)
		}
	}
	return out
}

// normalize round-trips the filter values through JSON so they compare equal
// to values decoded from stored documents.
func (f Filter) normalize() (Filter, error) {
	if len(f) == 0 {
		return f, nil
	}
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to encode filter: %w", err)
	}
	var out Filter
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode filter: %w", err)
	}
	return out, nil
}

// idOnly returns the primary key when the filter selects by _id alone.
func (f Filter) idOnly() (string, bool) {
	if len(f) != 1 {
		return "", false
	}
	id, ok := f[IDField].(string)
	return id, ok
}

func (f Filter) matches(doc Document) bool {
	for path, want := range f {
		got, ok := lookupPath(doc, path)
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func lookupPath(doc Document, path string) (any, bool) {
	parts := strings.Split(path, ".")
	var cur any = map[string]any(doc)
	for _, part := range parts {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func setPath(doc Document, path string, value any) {
	parts := strings.Split(path, ".")
	m := map[string]any(doc)
	for _, part := range parts[:len(parts)-1] {
		next, ok := asMap(m[part])
		if !ok {
			next = map[string]any{}
			m[part] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = value
}

func removePath(doc Document, path string) {
	parts := strings.Split(path, ".")
	m := map[string]any(doc)
	for _, part := range parts[:len(parts)-1] {
		next, ok := asMap(m[part])
		if !ok {
			return
		}
		m = next
	}
	delete(m, parts[len(parts)-1])
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Document:
		return m, true
	}
	return nil, false
}

func encodeDocument(v any) (Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("document must be a JSON object: %w", err)
	}
	return doc, nil
}

func decodeDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return doc, nil
}

// Decode converts a projected document into dest.
func (d Document) Decode(dest any) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}
