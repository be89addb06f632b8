// Package schemas provides embedded JSON schema files for validation.
package schemas

import "embed"

// FS contains the meta-schemas embedded at compile time.
// Access them via FS.ReadFile("meta/lexicon-v1.json").
//
//go:embed meta/*.json
var FS embed.FS

// LexiconV1 is the path of the lexicon v1 meta-schema inside FS.
const LexiconV1 = "meta/lexicon-v1.json"
