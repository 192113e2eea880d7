// Package assetsrc contains read-only asset source implementations for
// various different local and remote back-ends, along with a registry that
// allows for looking up sources by their configured identifiers.
package assetsrc
