// Package launch renders command templates against a selected host and
// runs the result as a child process with inherited stdio.
package launch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"text/template"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/hostpick/hostpick/internal/hosts"
	"github.com/hostpick/hostpick/internal/logging"
)

// DefaultCommandTemplate is the command run for a selected host when no
// template is configured.
const DefaultCommandTemplate = `ssh "{{.Name}}"`

// Render expands a command template with the host's fields. Available
// fields: {{.Name}}, {{.Aliases}}, {{.User}}, {{.Destination}},
// {{.Port}}, {{.ProxyCommand}}. Referencing any other field is an error.
func Render(tmpl string, host hosts.Host) (string, error) {
	t, err := template.New("command").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var sb strings.Builder
	if err := t.Execute(&sb, host); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return sb.String(), nil
}

// Run renders the template, splits it shell-style and runs it with the
// caller's terminal. The child's exit status is returned as the error
// from exec.
func Run(tmpl string, host hosts.Host) error {
	rendered, err := Render(tmpl, host)
	if err != nil {
		return err
	}

	words, err := shellquote.Split(rendered)
	if err != nil {
		return fmt.Errorf("parse command %q: %w", rendered, err)
	}
	if len(words) == 0 {
		return fmt.Errorf("empty command from template %q", tmpl)
	}

	logging.Debug("running command", "command", rendered)

	cmd := exec.Command(words[0], words[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// RunHook runs a session hook template. Empty templates are a no-op, and
// hook failures are reported but never abort the session flow.
func RunHook(tmpl string, host hosts.Host) {
	if tmpl == "" {
		return
	}
	if err := Run(tmpl, host); err != nil {
		logging.UserWarning("session hook failed: %v", err)
	}
}

// ExitCode extracts the child process exit code from a Run error.
// Returns -1 for errors that carry no exit status, such as a command
// that could not be started at all.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return exitErr.ExitCode()
	}
	return -1
}
