// Package schemas holds the JSON Schemas for persisted record collections.
package schemas

import "embed"

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
