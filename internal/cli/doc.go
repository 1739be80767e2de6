// Package cli defines the Cobra command tree for the docubook CLI. The root
// command creates a project; check, config and version are subcommands.
// Commands collect input and format output; project creation itself lives
// in internal/scaffold.
package cli
