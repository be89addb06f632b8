package lexicon

import (
	"errors"
	"fmt"

	atlexicon "github.com/bluesky-social/indigo/atproto/lexicon"
	"github.com/cespare/xxhash/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Registry collects validated lexicon documents keyed by id. Definitions are
// registered in an atproto lexicon catalog, which also resolves references.
// It is not safe for concurrent use; a validation run owns one instance.
type Registry struct {
	meta    *jsonschema.Schema
	catalog *atlexicon.BaseCatalog
	docs    map[string]*Document
	files   map[string]*atlexicon.SchemaFile
}

func NewRegistry() (*Registry, error) {
	meta, err := compileMetaSchema()
	if err != nil {
		return nil, err
	}
	return &Registry{
		meta:    meta,
		catalog: atlexicon.NewBaseCatalog(),
		docs:    make(map[string]*Document),
		files:   make(map[string]*atlexicon.SchemaFile),
	}, nil
}

// Add validates doc and registers it. The registry is unchanged when an
// error is returned.
func (r *Registry) Add(doc *Document) error {
	if doc == nil {
		return &RegistryError{Err: fmt.Errorf("%w: nil document", ErrInvalidSchema)}
	}

	generic, err := doc.Generic()
	if err != nil {
		return &RegistryError{ID: doc.ID, Err: fmt.Errorf("%w: %w", ErrInvalidSchema, err)}
	}
	if err := r.meta.Validate(generic); err != nil {
		return &RegistryError{ID: doc.ID, Err: fmt.Errorf("%w: %w", ErrInvalidSchema, err)}
	}
	if _, err := ParseNSID(doc.ID); err != nil {
		return &RegistryError{ID: doc.ID, Err: fmt.Errorf("%w: %w", ErrInvalidSchema, err)}
	}
	if _, ok := r.docs[doc.ID]; ok {
		return &RegistryError{ID: doc.ID, Err: ErrDuplicateID}
	}

	for _, name := range sortedKeys(doc.Defs) {
		if err := checkDefinition(doc.ID, name, doc.Defs[name]); err != nil {
			return &RegistryError{ID: doc.ID, Def: name, Err: err}
		}
	}

	sf, err := schemaFile(generic)
	if err != nil {
		return &RegistryError{ID: doc.ID, Err: fmt.Errorf("%w: %w", ErrInvalidDefinition, err)}
	}
	if err := r.catalog.AddSchemaFile(*sf); err != nil {
		return &RegistryError{ID: doc.ID, Err: fmt.Errorf("%w: %w", ErrInvalidDefinition, err)}
	}

	r.docs[doc.ID] = doc
	r.files[doc.ID] = sf
	return nil
}

func (r *Registry) Get(id string) (*Document, bool) {
	doc, ok := r.docs[id]
	return doc, ok
}

// IDs returns the registered ids in lexicographic order.
func (r *Registry) IDs() []string {
	return sortedKeys(r.docs)
}

func (r *Registry) Len() int {
	return len(r.docs)
}

// Resolve looks up the definition ref points to. Local references ("#name")
// are resolved against the document from; a bare NSID names its main
// definition.
func (r *Registry) Resolve(ref, from string) (*atlexicon.Schema, error) {
	schema, err := r.catalog.Resolve(qualify(ref, from))
	if err != nil {
		return nil, &RegistryError{ID: from, Err: fmt.Errorf("%w: %s: %w", ErrUnresolvedRef, ref, err)}
	}
	return schema, nil
}

// CheckReferences resolves every ref and union member of every registered
// document and returns the first failure, in id then definition order.
func (r *Registry) CheckReferences() error {
	for _, id := range r.IDs() {
		sf := r.files[id]
		for _, name := range sortedKeys(sf.Defs) {
			err := refsOf(sf.Defs[name].Inner, func(ref string) error {
				_, err := r.Resolve(ref, id)
				return err
			})
			if err != nil {
				var rerr *RegistryError
				if errors.As(err, &rerr) {
					rerr.Def = name
				}
				return err
			}
		}
	}
	return nil
}

// Digest hashes the ids and source bytes of every registered document in id
// order. Two registries loaded from identical files have the same digest.
func (r *Registry) Digest() uint64 {
	h := xxhash.New()
	for _, id := range r.IDs() {
		_, _ = h.WriteString(id)
		_, _ = h.Write([]byte{0})
		_, _ = h.Write(r.docs[id].source)
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
