// Package template defines the template engine seam used by document
// renderers. The gotemplate subpackage provides the go-template engine.
package template
