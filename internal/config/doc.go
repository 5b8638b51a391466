// Package config loads and writes the switch configuration: the list of
// packages to toggle between local paths and published versions.
// JSON and YAML documents share the same shape.
package config
