// Package lexicon decodes lexicon schema documents and collects them in a
// Registry that checks their structure and cross references.
package lexicon

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Version is the only lexicon language version the registry accepts.
const Version = 1

const FileExt = ".json"

// Document is a decoded lexicon file.
type Document struct {
	Lexicon     int
	ID          string
	Revision    *int
	Description string
	Defs        map[string]Def

	generic map[string]any
	source  []byte
}

// Def is a single named definition inside a document, kept in its decoded
// JSON form.
type Def map[string]any

// ExpectedID returns the id a lexicon stored in file must declare.
func ExpectedID(file string) string {
	return strings.TrimSuffix(filepath.Base(file), FileExt)
}

// Decode parses data read from file and checks the version and the
// filename binding, in that order. Structural checks are left to the
// Registry.
func Decode(file string, data []byte) (*Document, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, &ParseError{File: file, Err: err}
	}
	generic, ok := v.(map[string]any)
	if !ok {
		return nil, &ParseError{File: file, Err: errors.New("top-level value is not an object")}
	}

	version, ok := generic["lexicon"].(float64)
	if !ok || version != Version {
		return nil, &VersionMismatchError{File: file, Found: generic["lexicon"]}
	}

	expected := ExpectedID(file)
	id, ok := generic["id"].(string)
	if !ok || id != expected {
		found := id
		if !ok && generic["id"] != nil {
			found = fmt.Sprint(generic["id"])
		}
		return nil, &IdentifierMismatchError{File: file, Found: found, Expected: expected}
	}

	doc := &Document{
		Lexicon: Version,
		ID:      id,
		Defs:    make(map[string]Def),
		generic: generic,
		source:  data,
	}
	if rev, ok := generic["revision"].(float64); ok {
		r := int(rev)
		doc.Revision = &r
	}
	doc.Description, _ = generic["description"].(string)
	if defs, ok := generic["defs"].(map[string]any); ok {
		for name, raw := range defs {
			if def, ok := raw.(map[string]any); ok {
				doc.Defs[name] = Def(def)
			}
		}
	}
	return doc, nil
}

// Generic returns the document as decoded JSON. Documents built by hand are
// converted through a JSON round trip.
func (d *Document) Generic() (map[string]any, error) {
	if d.generic != nil {
		return d.generic, nil
	}
	out := map[string]any{
		"lexicon": d.Lexicon,
		"id":      d.ID,
		"defs":    d.Defs,
	}
	if d.Revision != nil {
		out["revision"] = *d.Revision
	}
	if d.Description != "" {
		out["description"] = d.Description
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, err
	}
	d.generic = generic
	d.source = data
	return generic, nil
}
