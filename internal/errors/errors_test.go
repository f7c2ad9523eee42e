package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestHostpickError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := New(ExitHostNotFound, "host not found: web")
		if err.Error() != "host not found: web" {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := Wrap(ExitConfigParse, "failed to parse config", cause)
		want := "failed to parse config: boom"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})
}

func TestHostpickError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(ExitGeneralError, "wrapped", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil-style plain error", errors.New("plain"), ExitGeneralError},
		{"host not found", HostNotFound("web"), ExitHostNotFound},
		{"config parse", ConfigParseFailed("/tmp/config", errors.New("bad")), ExitConfigParse},
		{"launch failed", LaunchFailed(errors.New("exec")), ExitLaunchFailed},
		{"options", OptionsError("bad options", nil), ExitOptions},
		{"wrapped deeper", fmt.Errorf("context: %w", HostNotFound("db")), ExitHostNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
