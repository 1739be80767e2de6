// Package pkgmanager adapts the JavaScript package managers a project can be
// created with (npm, pnpm, yarn, bun). It detects the ambient default from the
// invocation environment, probes whether a manager is installed by running its
// version command, applies the repository fixups each manager needs and runs
// the install command. All subprocesses go through the CommandRunner interface
// so callers and tests can substitute their own.
package pkgmanager
