// Package scaffold materializes a new documentation project on disk. It
// copies the bundled template tree into the target directory, applies the
// chosen package manager's fixups, binds the manager in package.json and
// optionally installs dependencies. A project is either fully created or not
// created at all: any failure before the install step removes everything
// that was written. A failed install keeps the project so the user can
// finish setup by hand.
package scaffold
