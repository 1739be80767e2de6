// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	GoModule      string `yaml:"go_module"`
	GitHubRepo    string `yaml:"github_repo"`
	CreatePackage string `yaml:"create_package"`
	Website       string `yaml:"website"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:       "docubook",
			DisplayName:   "DocuBook",
			Description:   "Create beautiful documentation sites",
			HomeDir:       ".docubook",
			EnvPrefix:     "DOCUBOOK",
			GoModule:      "github.com/DocuBook/cli",
			GitHubRepo:    "DocuBook/cli",
			CreatePackage: "@docubook/create",
			Website:       "https://docubook.pro",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "docubook").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "DocuBook").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".docubook").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "DOCUBOOK").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// CreatePackage returns the npm package that bootstraps a project
// through a package manager's dlx command.
func CreatePackage() string { load(); return defaults.CreatePackage }

// Website returns the product homepage.
func Website() string { load(); return defaults.Website }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "DOCUBOOK_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
