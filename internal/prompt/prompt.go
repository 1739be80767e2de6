// Package prompt collects the answers needed to create a project. Answers
// given on the command line are used as-is; the rest are asked with huh
// forms, or filled from defaults when the user passed --yes.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/DocuBook/cli/internal/pkgmanager"
)

// ErrAborted is returned when the user cancels a form.
var ErrAborted = huh.ErrUserAborted

// ErrNotInteractive is returned when a question is left open and there is
// no terminal to ask it on.
var ErrNotInteractive = errors.New("input required but no terminal is attached")

// Request holds what is known before prompting.
type Request struct {
	// Name and PackageManager are answers given on the command line.
	Name           string
	PackageManager pkgmanager.ID
	// Install is nil when the install question is still open.
	Install *bool

	DefaultName    string
	DefaultManager pkgmanager.ID
	// AssumeYes answers every open question with its default.
	AssumeYes bool
}

// Answers are the collected choices.
type Answers struct {
	Name           string
	PackageManager pkgmanager.ID
	InstallNow     bool
}

type pending struct {
	name    bool
	manager bool
	install bool
}

// resolve fills in everything that can be answered without asking.
func resolve(req Request) (Answers, pending) {
	var ans Answers
	var open pending

	ans.Name = strings.TrimSpace(req.Name)
	if ans.Name == "" {
		if req.AssumeYes {
			ans.Name = strings.TrimSpace(req.DefaultName)
		} else {
			open.name = true
		}
	}

	ans.PackageManager = req.PackageManager
	if ans.PackageManager == "" {
		if req.AssumeYes {
			ans.PackageManager = req.DefaultManager
		} else {
			open.manager = true
		}
	}

	switch {
	case req.Install != nil:
		ans.InstallNow = *req.Install
	case req.AssumeYes:
		ans.InstallNow = true
	default:
		open.install = true
	}

	if ans.PackageManager == pkgmanager.Yarn {
		ans.InstallNow = false
		open.install = false
	}
	return ans, open
}

// ValidateName rejects blank project names.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("project name cannot be empty")
	}
	return nil
}

// ManagerOptions lists the supported package managers as select options.
func ManagerOptions() []huh.Option[pkgmanager.ID] {
	opts := make([]huh.Option[pkgmanager.ID], 0, len(pkgmanager.All))
	for _, id := range pkgmanager.All {
		opts = append(opts, huh.NewOption(id.String(), id))
	}
	return opts
}

// Prompter asks the open questions of a Request.
type Prompter struct {
	In  io.Reader
	Out io.Writer
	// Interactive reports whether In is a terminal. Forms are only shown
	// when it is set.
	Interactive bool
}

// NewPrompter returns a Prompter reading from stdin and drawing on stderr,
// so stdout stays free for results.
func NewPrompter() *Prompter {
	return &Prompter{
		In:          os.Stdin,
		Out:         os.Stderr,
		Interactive: IsTerminal(os.Stdin),
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Collect returns the answers for req, prompting for the ones still open.
// yarn projects are never installed immediately.
func (p *Prompter) Collect(req Request) (Answers, error) {
	ans, open := resolve(req)

	if open.name || open.manager {
		if !p.Interactive {
			return Answers{}, fmt.Errorf("%w: pass a directory and --package-manager, or --yes", ErrNotInteractive)
		}
		if err := p.askProject(req, open, &ans); err != nil {
			return Answers{}, err
		}
		ans.Name = strings.TrimSpace(ans.Name)
	}

	if ans.PackageManager == pkgmanager.Yarn {
		ans.InstallNow = false
		open.install = false
	}

	if open.install {
		if !p.Interactive {
			return Answers{}, fmt.Errorf("%w: pass --install or --install=false, or --yes", ErrNotInteractive)
		}
		if err := p.askInstall(&ans); err != nil {
			return Answers{}, err
		}
	}

	if err := ValidateName(ans.Name); err != nil {
		return Answers{}, err
	}
	if _, err := pkgmanager.Parse(ans.PackageManager.String()); err != nil {
		return Answers{}, err
	}
	return ans, nil
}

func (p *Prompter) askProject(req Request, open pending, ans *Answers) error {
	var fields []huh.Field
	if open.name {
		ans.Name = req.DefaultName
		fields = append(fields, huh.NewInput().
			Title("What is your project name?").
			Placeholder(req.DefaultName).
			Value(&ans.Name).
			Validate(ValidateName))
	}
	if open.manager {
		ans.PackageManager = req.DefaultManager
		fields = append(fields, huh.NewSelect[pkgmanager.ID]().
			Title("Which package manager do you want to use?").
			Options(ManagerOptions()...).
			Value(&ans.PackageManager))
	}
	return p.run(huh.NewGroup(fields...))
}

func (p *Prompter) askInstall(ans *Answers) error {
	ans.InstallNow = true
	return p.run(huh.NewGroup(
		huh.NewConfirm().
			Title("Install dependencies now?").
			Affirmative("Yes").
			Negative("No").
			Value(&ans.InstallNow),
	))
}

func (p *Prompter) run(group *huh.Group) error {
	form := huh.NewForm(group).
		WithTheme(huh.ThemeCharm()).
		WithShowHelp(true).
		WithProgramOptions(tea.WithInput(p.In), tea.WithOutput(p.Out))
	return form.Run()
}
