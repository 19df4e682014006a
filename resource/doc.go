/*
Package resource provides processors for local image resources.

A document previewed in a browser refers to images relative to its own
location. The browser does not know this location, so image sources have
to be rewritten. The processors in this package implement
incdom.ResourceProcessor:

	FileURL   resolves to an absolute file-scheme URL
	Served    resolves to an URL below a resource server prefix
	Chain     asks a list of processors, first answer wins

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package resource

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'incdom.resource'.
func tracer() tracing.Trace {
	return tracing.Select("incdom.resource")
}
