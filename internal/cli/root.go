package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/DocuBook/cli/internal/branding"
	"github.com/DocuBook/cli/internal/config"
	"github.com/DocuBook/cli/internal/pkgmanager"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// debugOutput tees package manager output to stderr.
var debugOutput bool

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [directory]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates documentation sites from a bundled template.

Run it without arguments to be asked for a project name, a package manager
and whether to install dependencies right away. Pass a directory and flags
to skip the questions.

Find more information at ` + branding.Website() + `
Report issues at https://github.com/` + branding.GitHubRepo() + `/issues`,
	Example: `  ` + branding.CLIName() + `
  ` + branding.CLIName() + ` docs -p pnpm --install
  ` + branding.CLIName() + ` handbook -D ~/sites -y`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runCreate,
}

func init() {
	addCreateFlags(rootCmd)
	rootCmd.PersistentFlags().BoolVar(&debugOutput, "debug", false, "Show package manager output")
}

// newRunner returns the subprocess runner for cmd, honouring --debug.
func newRunner(cmd *cobra.Command) pkgmanager.CommandRunner {
	if debugOutput {
		return pkgmanager.ExecRunner{Debug: cmd.ErrOrStderr()}
	}
	return pkgmanager.ExecRunner{}
}

// Execute runs the root command with build info injected via ldflags.
// An interrupt cancels the running command, including a package manager
// install.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("%s CLI\nVersion: {{.Version}}\n", branding.DisplayName()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
