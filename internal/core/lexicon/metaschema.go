package lexicon

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/RegistryAccord/registryaccord-specs/schemas"
)

const metaSchemaURL = "https://registryaccord.com/schemas/meta/lexicon-v1.json"

// The compiled meta-schema is immutable, so every Registry shares one copy.
var compileMetaSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	data, err := schemas.FS.ReadFile(schemas.LexiconV1)
	if err != nil {
		return nil, fmt.Errorf("read meta-schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(metaSchemaURL, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("load meta-schema: %w", err)
	}
	schema, err := compiler.Compile(metaSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile meta-schema: %w", err)
	}
	return schema, nil
})
