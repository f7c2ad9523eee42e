package launch

import (
	"strings"
	"testing"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/hostpick/hostpick/internal/hosts"
)

var testHost = hosts.Host{
	Name:        "web",
	Aliases:     "frontend",
	User:        "deploy",
	Destination: "web.example.com",
	Port:        "2222",
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{"default", DefaultCommandTemplate, `ssh "web"`},
		{"name", "ssh {{.Name}}", "ssh web"},
		{"full target", "ssh -p {{.Port}} {{.User}}@{{.Destination}}", "ssh -p 2222 deploy@web.example.com"},
		{"no placeholders", "tmux new-session ssh", "tmux new-session ssh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, testHost)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.tmpl, got, tt.want)
			}
		})
	}
}

func TestRender_UnknownField(t *testing.T) {
	_, err := Render("ssh {{.Nope}}", testHost)
	if err == nil {
		t.Fatal("expected error for unknown template field")
	}
}

func TestRender_BadSyntax(t *testing.T) {
	_, err := Render("ssh {{.Name", testHost)
	if err == nil {
		t.Fatal("expected error for unterminated template action")
	}
}

func TestRenderedCommandSplitsShellStyle(t *testing.T) {
	host := testHost
	host.Name = "my host"

	rendered, err := Render(DefaultCommandTemplate, host)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	words, err := shellquote.Split(rendered)
	if err != nil {
		t.Fatalf("Split(%q): %v", rendered, err)
	}
	if len(words) != 2 {
		t.Fatalf("words = %v, want quoted name kept as one argument", words)
	}
	if words[1] != "my host" {
		t.Errorf("argument = %q, want %q", words[1], "my host")
	}
}

func TestRun_EmptyTemplate(t *testing.T) {
	if err := Run("{{.ProxyCommand}}", hosts.Host{Name: "x"}); err == nil {
		t.Fatal("expected error for template rendering to an empty command")
	} else if !strings.Contains(err.Error(), "empty command") {
		t.Errorf("error = %v, want empty command error", err)
	}
}

func TestRun_ExecutesCommand(t *testing.T) {
	if err := Run("true", testHost); err != nil {
		t.Fatalf("Run(true): %v", err)
	}

	err := Run("false", testHost)
	if err == nil {
		t.Fatal("Run(false) should report the nonzero exit")
	}
	if code := ExitCode(err); code != 1 {
		t.Errorf("ExitCode = %d, want 1", code)
	}
}

func TestExitCode_NoExitStatus(t *testing.T) {
	err := Run("/nonexistent-command-for-test", testHost)
	if err == nil {
		t.Fatal("expected start failure")
	}
	if code := ExitCode(err); code != -1 {
		t.Errorf("ExitCode = %d, want -1 for a command that never ran", code)
	}
}

func TestRunHook_EmptyIsNoop(t *testing.T) {
	// Must not panic or execute anything.
	RunHook("", testHost)
}
