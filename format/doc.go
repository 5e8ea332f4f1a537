// Package format names the output formats of a deck: INP text, and JSON
// or YAML views of its builder form.
package format
