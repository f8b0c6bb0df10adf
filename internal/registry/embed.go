// Package registry provides the compiled-in catalog of flat-file databases.
package registry

import "embed"

// catalogFS embeds the catalog definition at build time.
//
//go:embed *.yaml
var catalogFS embed.FS
