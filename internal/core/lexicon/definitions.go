package lexicon

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	atlexicon "github.com/bluesky-social/indigo/atproto/lexicon"
)

const mainDef = "main"

// checkDefinition runs the catalog's schema checks on a single definition so
// a failure can be attributed to it, then checks the syntax of its refs,
// which the catalog leaves unchecked.
func checkDefinition(id, name string, def Def) error {
	parsed, err := parseDef(def)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	sf := atlexicon.SchemaFile{
		Lexicon: Version,
		ID:      id,
		Defs:    map[string]atlexicon.SchemaDef{name: parsed},
	}
	if err := sf.FinishParse(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	if err := sf.CheckSchema(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return refsOf(sf.Defs[name].Inner, checkRefSyntax)
}

// parseDef decodes a definition into a fresh typed value. FinishParse
// rewrites nested maps in place, so typed definitions are never shared.
func parseDef(def Def) (atlexicon.SchemaDef, error) {
	var parsed atlexicon.SchemaDef
	data, err := json.Marshal(def)
	if err != nil {
		return parsed, err
	}
	err = json.Unmarshal(data, &parsed)
	return parsed, err
}

// schemaFile decodes the whole document for the catalog.
func schemaFile(generic map[string]any) (*atlexicon.SchemaFile, error) {
	data, err := json.Marshal(generic)
	if err != nil {
		return nil, err
	}
	var sf atlexicon.SchemaFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, err
	}
	return &sf, nil
}

// refsOf calls visit for every ref and union member reachable from def, with
// object properties in name order. Params can only hold primitives and are
// not visited.
func refsOf(def any, visit func(ref string) error) error {
	switch v := def.(type) {
	case atlexicon.SchemaRecord:
		return refsOf(v.Record, visit)
	case atlexicon.SchemaQuery:
		return bodyRefs(v.Output, visit)
	case atlexicon.SchemaProcedure:
		if err := bodyRefs(v.Input, visit); err != nil {
			return err
		}
		return bodyRefs(v.Output, visit)
	case atlexicon.SchemaSubscription:
		return refsOf(v.Message.Schema, visit)
	case atlexicon.SchemaObject:
		for _, key := range sortedKeys(v.Properties) {
			if err := refsOf(v.Properties[key].Inner, visit); err != nil {
				return err
			}
		}
	case atlexicon.SchemaArray:
		return refsOf(v.Items.Inner, visit)
	case atlexicon.SchemaRef:
		return visit(v.Ref)
	case atlexicon.SchemaUnion:
		for _, ref := range v.Refs {
			if err := visit(ref); err != nil {
				return err
			}
		}
	}
	return nil
}

func bodyRefs(body *atlexicon.SchemaBody, visit func(ref string) error) error {
	if body == nil || body.Schema == nil {
		return nil
	}
	return refsOf(body.Schema.Inner, visit)
}

// qualify turns a local reference ("#name") into a full one.
func qualify(ref, from string) string {
	if strings.HasPrefix(ref, "#") {
		return from + ref
	}
	return ref
}

func checkRefSyntax(ref string) error {
	if ref == "" {
		return fmt.Errorf("%w: empty reference", ErrInvalidDefinition)
	}
	id, def, found := strings.Cut(ref, "#")
	if found && def == "" {
		return fmt.Errorf("%w: reference %q has an empty fragment", ErrInvalidDefinition, ref)
	}
	if id == "" {
		return nil
	}
	if _, err := ParseNSID(id); err != nil {
		return fmt.Errorf("%w: reference %q: %v", ErrInvalidDefinition, ref, err)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
