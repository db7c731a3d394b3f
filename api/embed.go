// Package api holds the OpenAPI contract of the order desk HTTP interface.
package api

import _ "embed"

// Spec is the raw openapi.yml document.
//
//go:embed openapi.yml
var Spec []byte
