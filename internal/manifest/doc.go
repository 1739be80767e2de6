// Package manifest reads, patches and validates a project's package.json.
// The file is handled as an ordered JSON syntax tree so that fields the
// scaffolder does not own keep their values and their position; only "name"
// and "packageManager" are rewritten. Validation against an embedded JSON
// Schema reports problems as issues rather than failing the write.
package manifest
