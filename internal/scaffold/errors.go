package scaffold

import (
	"errors"

	"github.com/DocuBook/cli/internal/pkgmanager"
)

// Errors returned by CreateProject. Match them with errors.Is.
var (
	// ErrDirectoryExists means the target path is already taken. Nothing
	// was written.
	ErrDirectoryExists = errors.New("directory already exists")

	// ErrTargetInsideTemplate means the target lies within the template
	// directory being copied. Nothing was written.
	ErrTargetInsideTemplate = errors.New("project directory is inside the template directory")

	// ErrManagerNotInstalled means the chosen package manager did not answer
	// its version probe.
	ErrManagerNotInstalled = pkgmanager.ErrNotInstalled

	ErrCopyFailed           = errors.New("copying template failed")
	ErrConfigureFailed      = errors.New("configuring package manager failed")
	ErrManifestUpdateFailed = errors.New("updating package.json failed")

	// ErrInstallFailed means the project was created but installing
	// dependencies did not succeed. The project directory is kept.
	ErrInstallFailed = pkgmanager.ErrInstallFailed
)
