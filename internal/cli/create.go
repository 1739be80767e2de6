package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DocuBook/cli/internal/branding"
	"github.com/DocuBook/cli/internal/config"
	"github.com/DocuBook/cli/internal/pkgmanager"
	"github.com/DocuBook/cli/internal/prompt"
	"github.com/DocuBook/cli/internal/scaffold"
	"github.com/DocuBook/cli/internal/ui"
	"github.com/spf13/cobra"
)

var (
	createManager string
	createInstall bool
	createYes     bool
	createParent  string
)

var createCmd = &cobra.Command{
	Use:   "create [directory]",
	Short: "Create a new " + branding.DisplayName() + " project",
	Long: `Create a new ` + branding.DisplayName() + ` project in [directory].

This is what running ` + branding.CLIName() + ` without a subcommand does.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func init() {
	addCreateFlags(createCmd)
	rootCmd.AddCommand(createCmd)
}

func addCreateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&createManager, "package-manager", "p", "", "Package manager to use: npm, pnpm, yarn or bun")
	cmd.Flags().BoolVar(&createInstall, "install", false, "Install dependencies after creating the project")
	cmd.Flags().BoolVarP(&createYes, "yes", "y", false, "Use defaults for every question not answered by a flag")
	cmd.Flags().StringVarP(&createParent, "dir", "D", ".", "Directory to create the project in")
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := ui.New(cmd.OutOrStdout())
	errOut := ui.New(cmd.ErrOrStderr())
	runner := newRunner(cmd)

	req, err := createRequest(cmd, args, errOut)
	if err != nil {
		return err
	}

	answers, err := prompt.NewPrompter().Collect(req)
	if errors.Is(err, prompt.ErrAborted) {
		errOut.Infof("Aborted. Nothing was created.")
		return nil
	}
	if err != nil {
		return err
	}
	pm := answers.PackageManager

	version, err := pkgmanager.VerifyInstalled(ctx, runner, pm)
	if err != nil {
		return fmt.Errorf("%w (run '%s check' to see what is available)", err, branding.CLIName())
	}
	if warning := pkgmanager.CheckVersion(pm, version); warning != "" {
		errOut.Warnf("%s", warning)
	}
	version = pkgmanager.NormalizeVersion(version)

	opts, err := scaffold.NewOptions(projectLocation(createParent, answers.Name), pm.String(), version, answers.InstallNow)
	if err != nil {
		return err
	}

	templateDir := config.Get(config.KeyTemplateDir)
	template, err := scaffold.TemplateFrom(templateDir)
	if err != nil {
		return fmt.Errorf("loading template: %w", err)
	}

	out.Infof("Creating project in %s", opts.DirectoryName)
	if opts.InstallNow {
		out.Infof("Installing dependencies with %s. This might take a moment.", pm)
	}

	materializer := scaffold.New(template, runner)
	materializer.TemplateDir = templateDir
	result, err := materializer.CreateProject(ctx, opts)
	if result == nil {
		return err
	}
	for _, w := range result.Warnings {
		errOut.Warnf("%s", w)
	}
	if err != nil {
		errOut.Errorf("Installing dependencies failed. The project was kept at %s.", result.ProjectDir)
		printSteps(out, result)
		return err
	}

	printCreated(out, result)
	return nil
}

// createRequest gathers the answers given on the command line and the
// defaults offered for the rest.
func createRequest(cmd *cobra.Command, args []string, errOut *ui.Printer) (prompt.Request, error) {
	req := prompt.Request{
		DefaultName:    config.Get(config.KeyProjectName),
		DefaultManager: defaultManager(errOut),
		AssumeYes:      createYes,
	}
	if len(args) > 0 {
		req.Name = args[0]
	}
	if createManager != "" {
		id, err := pkgmanager.Parse(createManager)
		if err != nil {
			return prompt.Request{}, err
		}
		req.PackageManager = id
	}
	if cmd.Flags().Changed("install") {
		install := createInstall
		req.Install = &install
	}
	return req, nil
}

// defaultManager prefers the configured package manager and otherwise
// guesses from the environment the CLI was launched through.
func defaultManager(errOut *ui.Printer) pkgmanager.ID {
	if configured := config.Get(config.KeyPackageManager); configured != "" {
		id, err := pkgmanager.Parse(configured)
		if err == nil {
			return id
		}
		errOut.Warnf("Ignoring %s: %v", config.KeyPackageManager, err)
	}
	return pkgmanager.DetectDefault(pkgmanager.EnvironmentFrom(os.Getenv))
}

// projectLocation places name inside parent unless name is absolute.
func projectLocation(parent, name string) string {
	if parent == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(parent, name)
}

func printCreated(out *ui.Printer, result *scaffold.Result) {
	out.Blank()
	if result.TemplateVersion != "" {
		out.Successf("%s v%s using %s", branding.DisplayName(), result.TemplateVersion, result.PackageManager)
	} else {
		out.Successf("%s using %s", branding.DisplayName(), result.PackageManager)
	}
	if len(result.Files) > 0 {
		out.Infof("Copied %d template files into %s", len(result.Files), result.Location)
	}
	out.Blank()
	printSteps(out, result)
}

// printSteps boxes the remaining commands as manual setup while
// dependencies still have to be installed.
func printSteps(out *ui.Printer, result *scaffold.Result) {
	if result.ManualSteps {
		out.Box("Manual setup required", result.Steps())
		return
	}
	out.Box("Next steps", result.Steps())
}
