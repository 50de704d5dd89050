package param

import _ "embed"

// Schema is the JSON Schema (draft 2020-12) describing a param.json document.
//
//go:embed param.schema.json
var Schema []byte
