/*
Package config reads the configuration of the incdom command.

Configuration is kept in a YAML file:

	base_path: ./docs
	container_tag: div
	renderer: IncrementalDOM
	skip_attribute: data-ignore-path-processing
	image_selector: img
	markdown:
	  raw_html: false
	  hard_wraps: false
	resources:
	  strategy: file    # none | file | served | chain
	  require_existing: true
	  prefix: http://localhost:63342/preview/

Every key is optional. A relative base path is interpreted relative to
the folder of the configuration file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package config

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'incdom.config'.
func tracer() tracing.Trace {
	return tracing.Select("incdom.config")
}
