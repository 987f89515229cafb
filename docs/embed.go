// Package docs embeds the Agrix OpenAPI document.
package docs

import (
	_ "embed"
)

// OpenAPISpec contains the embedded OpenAPI specification in YAML format.
//
//go:embed openapi.yaml
var OpenAPISpec []byte
