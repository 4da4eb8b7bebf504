// Package source provides the settings source adapters (JSON file, embedded
// resource, environment variables) and the [Builder] that applies them in a
// declared order.
//
// Each source decodes its raw input into a candidate with the settings
// descriptor and merges it onto the value produced by the previous source.
// A missing file or resource is not an error: the source is skipped. Coercion
// and shaping errors fail the whole build, so misconfiguration surfaces at
// startup.
package source
