package pkgmanager

import (
	"fmt"
	"strings"
)

// ID identifies a supported package manager.
type ID string

// Supported package managers.
const (
	NPM  ID = "npm"
	PNPM ID = "pnpm"
	Yarn ID = "yarn"
	Bun  ID = "bun"
)

// All lists the supported package managers in prompt order.
var All = []ID{NPM, PNPM, Yarn, Bun}

// UserAgentVar is the variable package managers set when they run a script
// or a dlx/create command, e.g. "pnpm/8.1.0 npm/? node/v20.3.0 darwin arm64".
const UserAgentVar = "npm_config_user_agent"

// Parse converts a string into an ID.
func Parse(s string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range All {
		if id == known {
			return id, nil
		}
	}
	return "", fmt.Errorf("unknown package manager %q: supported are npm, pnpm, yarn and bun", s)
}

// String implements fmt.Stringer.
func (id ID) String() string { return string(id) }

// Executable returns the binary name invoked for this manager.
func (id ID) Executable() string { return string(id) }

// PackageManagerField returns the value written to package.json's
// "packageManager" field, e.g. "pnpm@8.1.0".
func (id ID) PackageManagerField(version string) string {
	return fmt.Sprintf("%s@%s", id, version)
}

// CreateCommand returns the one-liner that bootstraps pkg through this
// manager without a global install.
func (id ID) CreateCommand(pkg string) string {
	switch id {
	case PNPM:
		return "pnpm dlx " + pkg + "@latest"
	case Yarn:
		return "yarn dlx " + pkg + "@latest"
	case Bun:
		return "bunx " + pkg + "@latest"
	default:
		return "npx " + pkg + "@latest"
	}
}

// RunCommand returns the command line that runs a package.json script.
func (id ID) RunCommand(script string) string {
	return fmt.Sprintf("%s run %s", id, script)
}

// InstallCommand returns the command line that installs dependencies.
func (id ID) InstallCommand() string {
	return fmt.Sprintf("%s install", id)
}

// EnvironmentContext carries the ambient signals used to guess a default
// package manager. It is passed explicitly so detection never reads process
// state on its own.
type EnvironmentContext struct {
	UserAgent string
}

// EnvironmentFrom builds an EnvironmentContext from a getenv-style lookup.
func EnvironmentFrom(getenv func(string) string) EnvironmentContext {
	return EnvironmentContext{UserAgent: getenv(UserAgentVar)}
}

// DetectDefault guesses the manager the user invoked the tool through.
// The user agent is checked for pnpm, yarn and bun in that order; npm is the
// fallback.
func DetectDefault(env EnvironmentContext) ID {
	ua := env.UserAgent
	switch {
	case strings.Contains(ua, "pnpm"):
		return PNPM
	case strings.Contains(ua, "yarn"):
		return Yarn
	case strings.Contains(ua, "bun"):
		return Bun
	}
	return NPM
}
