package pkgmanager

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sync/errgroup"
)

// ErrNotInstalled is returned when a manager's version probe fails.
var ErrNotInstalled = errors.New("package manager is not installed")

// ErrInstallFailed is returned when the install command exits non-zero.
var ErrInstallFailed = errors.New("dependency installation failed")

// minimumVersions are the oldest releases known to understand the
// "packageManager" field and the project template.
var minimumVersions = map[ID]*semver.Version{
	NPM:  semver.MustParse("7.0.0"),
	PNPM: semver.MustParse("7.0.0"),
	Yarn: semver.MustParse("1.22.0"),
	Bun:  semver.MustParse("1.0.0"),
}

// VerifyInstalled runs "<pm> --version" and returns its trimmed output.
// It returns ErrNotInstalled if the command cannot be started, exits
// non-zero, or prints nothing.
func VerifyInstalled(ctx context.Context, runner CommandRunner, id ID) (string, error) {
	var out bytes.Buffer
	cmd := Command{Name: id.Executable(), Args: []string{"--version"}, Stdout: &out}

	code, err := runner.Run(ctx, cmd)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrNotInstalled, id, err)
	}
	if code != 0 {
		return "", fmt.Errorf("%w: %q exited with status %d", ErrNotInstalled, cmd, code)
	}

	version := strings.TrimSpace(out.String())
	if version == "" {
		return "", fmt.Errorf("%w: %q printed no version", ErrNotInstalled, cmd)
	}
	return version, nil
}

// Install runs "<pm> install" in dir with its output suppressed.
func Install(ctx context.Context, runner CommandRunner, id ID, dir string) error {
	cmd := Command{Name: id.Executable(), Args: []string{"install"}, Dir: dir}

	code, err := runner.Run(ctx, cmd)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInstallFailed, err)
	}
	if code != 0 {
		return fmt.Errorf("%w: %q exited with status %d", ErrInstallFailed, cmd, code)
	}
	return nil
}

// CheckVersion inspects a probed version string and returns a warning when it
// cannot be parsed as semver or is older than the known minimum for id.
// An empty string means the version is acceptable.
func CheckVersion(id ID, version string) string {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Sprintf("could not parse %s version %q; writing it to package.json as-is", id, version)
	}
	if floor, ok := minimumVersions[id]; ok && v.LessThan(floor) {
		return fmt.Sprintf("%s %s is older than %s; consider upgrading", id, v, floor)
	}
	return ""
}

// NormalizeVersion strips a leading "v" and returns the canonical semver
// form, or the input unchanged if it is not valid semver.
func NormalizeVersion(version string) string {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return version
	}
	return v.String()
}

// Probe is the outcome of checking one package manager.
type Probe struct {
	ID      ID
	Version string
	Err     error
}

// Installed reports whether the probe found the manager.
func (p Probe) Installed() bool { return p.Err == nil }

// ProbeAll checks every supported manager concurrently. Results are returned
// in the order of All; a missing manager is recorded in its Probe, not
// returned as an error.
func ProbeAll(ctx context.Context, runner CommandRunner) []Probe {
	results := make([]Probe, len(All))

	var g errgroup.Group
	for i, id := range All {
		g.Go(func() error {
			version, err := VerifyInstalled(ctx, runner, id)
			results[i] = Probe{ID: id, Version: version, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
