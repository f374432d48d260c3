// Package format renders mixed points and System-N values as text and as
// ordered JSON or YAML documents.
//
// Text output writes digits most significant first. Documents keep their
// keys in the order they were built and never escape HTML characters.
package format
