// Package registry provides a generic, type-safe, name-keyed registry.
// The renderer uses it to look up formatters by their specifier so new
// named formatters can be added without touching the dispatch code.
package registry
