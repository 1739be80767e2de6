package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/DocuBook/cli/internal/manifest"
	"github.com/DocuBook/cli/internal/pkgmanager"
)

// Options describes the project to create. Build it with NewOptions;
// CreateProject does not validate it again.
type Options struct {
	DirectoryName         string
	PackageManager        pkgmanager.ID
	PackageManagerVersion string
	InstallNow            bool
}

// NewOptions trims and checks the collected answers.
func NewOptions(dir, pm, version string, installNow bool) (Options, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return Options{}, errors.New("project name is required")
	}
	id, err := pkgmanager.Parse(pm)
	if err != nil {
		return Options{}, err
	}
	version = strings.TrimSpace(version)
	if version == "" {
		return Options{}, fmt.Errorf("%w: %s", ErrManagerNotInstalled, id)
	}
	return Options{
		DirectoryName:         dir,
		PackageManager:        id,
		PackageManagerVersion: version,
		InstallNow:            installNow,
	}, nil
}

// Result holds the outcome of CreateProject.
type Result struct {
	ProjectDir string
	// Location is the directory name as given in Options, used in the
	// printed instructions.
	Location       string
	Name           string
	PackageManager pkgmanager.ID
	Files          []string
	// TemplateVersion is the "version" field of the generated package.json.
	TemplateVersion string
	Installed       bool
	// ManualSteps is set when the user still has to install dependencies.
	ManualSteps bool
	Warnings    []string
}

// Steps returns the commands left for the user to run: change into the
// project, install dependencies unless that already happened, and start the
// dev server.
func (r *Result) Steps() []string {
	steps := []string{"cd " + r.Location}
	if !r.Installed {
		steps = append(steps, r.PackageManager.InstallCommand())
	}
	return append(steps, r.PackageManager.RunCommand("dev"))
}

// Materializer creates projects from a template tree.
type Materializer struct {
	Template fs.FS
	Runner   pkgmanager.CommandRunner
	// WorkDir resolves relative directory names. Empty means the process
	// working directory.
	WorkDir string
	// TemplateDir is the directory Template was read from, if any. Targets
	// inside it are rejected.
	TemplateDir string
}

// New returns a Materializer copying from template and running package
// manager commands with runner.
func New(template fs.FS, runner pkgmanager.CommandRunner) *Materializer {
	return &Materializer{Template: template, Runner: runner}
}

// CreateProject materializes a project described by opts.
//
// The target must not exist. Template copy, package manager configuration
// and the package.json update either all succeed or the target (and any
// parent directories created for it) is removed before the error is
// returned. When opts.InstallNow is set and the install fails, the project
// is kept and both a Result with ManualSteps and an error matching
// ErrInstallFailed are returned.
func (m *Materializer) CreateProject(ctx context.Context, opts Options) (*Result, error) {
	projectDir, err := m.resolve(opts.DirectoryName)
	if err != nil {
		return nil, err
	}
	if err := m.checkOutsideTemplate(projectDir); err != nil {
		return nil, err
	}

	if _, err := os.Lstat(projectDir); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryExists, projectDir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking %s: %w", projectDir, err)
	}

	result := &Result{
		ProjectDir:     projectDir,
		Location:       opts.DirectoryName,
		Name:           filepath.Base(projectDir),
		PackageManager: opts.PackageManager,
	}

	rollbackRoot := firstMissingAncestor(projectDir)
	if err := m.materialize(ctx, opts, result); err != nil {
		if rmErr := os.RemoveAll(rollbackRoot); rmErr != nil {
			return nil, errors.Join(err, fmt.Errorf("removing %s: %w", rollbackRoot, rmErr))
		}
		return nil, err
	}

	if !opts.InstallNow {
		result.ManualSteps = true
		return result, nil
	}

	if err := pkgmanager.Install(ctx, m.Runner, opts.PackageManager, projectDir); err != nil {
		result.ManualSteps = true
		return result, err
	}
	result.Installed = true
	return result, nil
}

func (m *Materializer) materialize(ctx context.Context, opts Options, result *Result) error {
	files, err := copyTree(ctx, m.Template, result.ProjectDir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCopyFailed, err)
	}
	result.Files = files

	if err := pkgmanager.Configure(opts.PackageManager, result.ProjectDir); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigureFailed, err)
	}

	manifestPath := filepath.Join(result.ProjectDir, manifest.FileName)
	if _, err := os.Stat(manifestPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrManifestUpdateFailed, err)
	}

	update := manifest.Update{
		Name:           result.Name,
		PackageManager: opts.PackageManager.PackageManagerField(opts.PackageManagerVersion),
	}
	data, err := manifest.PatchFile(manifestPath, update)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrManifestUpdateFailed, err)
	}
	result.TemplateVersion = manifest.StringField(data, "version")
	result.Warnings = append(result.Warnings, validateManifest(data)...)
	return nil
}

// validateManifest reports schema issues in the written package.json as
// warnings; they never fail project creation.
func validateManifest(data []byte) []string {
	valResult, err := manifest.Validate(data)
	if err != nil {
		return []string{fmt.Sprintf("Could not validate %s: %v", manifest.FileName, err)}
	}
	var warnings []string
	for _, issue := range valResult.Issues {
		warnings = append(warnings, manifest.FileName+" "+issue.String())
	}
	return warnings
}

func (m *Materializer) resolve(name string) (string, error) {
	if filepath.IsAbs(name) {
		return filepath.Clean(name), nil
	}
	base := m.WorkDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		base = wd
	}
	return filepath.Join(base, name), nil
}

// checkOutsideTemplate fails when projectDir lies within TemplateDir, where
// copying would walk into the directory being filled.
func (m *Materializer) checkOutsideTemplate(projectDir string) error {
	if m.TemplateDir == "" {
		return nil
	}
	templateDir, err := m.resolve(m.TemplateDir)
	if err != nil {
		return err
	}
	rel, err := filepath.Rel(templateDir, projectDir)
	if err != nil {
		return nil
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}
	return fmt.Errorf("%w: %s is inside %s", ErrTargetInsideTemplate, projectDir, templateDir)
}

// firstMissingAncestor returns the outermost directory on the way to path
// that does not exist yet, which is what creating path will add.
func firstMissingAncestor(path string) string {
	missing := path
	for dir := filepath.Dir(path); dir != missing; dir = filepath.Dir(dir) {
		if _, err := os.Lstat(dir); !os.IsNotExist(err) {
			break
		}
		missing = dir
	}
	return missing
}
