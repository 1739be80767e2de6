package cli

import (
	"github.com/DocuBook/cli/internal/branding"
	"github.com/DocuBook/cli/internal/pkgmanager"
	"github.com/DocuBook/cli/internal/ui"
	"github.com/spf13/cobra"
)

const (
	nodeDownloadURL = "https://nodejs.org/"
	bunDownloadURL  = "https://bun.sh/"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:     "check",
	Aliases: []string{"init"},
	Short:   "Check which package managers are available",
	Long: `Probe npm, pnpm, yarn and bun and print the command to create a
` + branding.DisplayName() + ` project with each one that is installed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		probes := pkgmanager.ProbeAll(cmd.Context(), newRunner(cmd))
		printCheck(ui.New(cmd.OutOrStdout()), probes)
		return nil
	},
}

func printCheck(p *ui.Printer, probes []pkgmanager.Probe) {
	p.Header(branding.DisplayName() + " Environment Check")

	var found []pkgmanager.ID
	for _, probe := range probes {
		if !probe.Installed() {
			p.Errorf("%s not found", probe.ID)
			continue
		}
		p.Successf("Found %s %s", probe.ID, probe.Version)
		if warning := pkgmanager.CheckVersion(probe.ID, probe.Version); warning != "" {
			p.Warnf("%s", warning)
		}
		found = append(found, probe.ID)
	}
	p.Blank()

	if len(found) == 0 {
		p.Errorf("No package manager found.")
		p.Blank()
		p.Item("Please install Node.js or Bun to continue:")
		p.Item("  - Node.js (includes npm): " + p.Link(nodeDownloadURL))
		p.Item("  - Bun: " + p.Link(bunDownloadURL))
		return
	}

	p.Successf("Good to go! Create a project with one of these commands:")
	p.Blank()
	for _, id := range found {
		p.Item(p.Command(id.CreateCommand(branding.CreatePackage())))
	}
	p.Item(p.Command(branding.CLIName() + " [directory]"))
}
