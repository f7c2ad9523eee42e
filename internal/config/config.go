package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultSystemConfigPath is the well-known system-wide ssh config.
	// It is optional: a missing file here is skipped, not an error.
	DefaultSystemConfigPath = "/etc/ssh/ssh_config"

	// DefaultUserConfigPath is the user's ssh config, tilde-expanded at
	// load time.
	DefaultUserConfigPath = "~/.ssh/config"

	optionsDirName  = "hostpick"
	optionsFileName = "config.toml"
)

// Options holds hostpick's own settings, loaded from the options file and
// overridden by command-line flags.
type Options struct {
	ConfigPaths            []string `toml:"config_paths"`
	Template               string   `toml:"template"`
	OnSessionStartTemplate string   `toml:"on_session_start_template"`
	OnSessionEndTemplate   string   `toml:"on_session_end_template"`
	Sort                   bool     `toml:"sort"`
	ShowProxyCommand       bool     `toml:"show_proxy_command"`
	ExitAfterSession       bool     `toml:"exit_after_session"`
	Strict                 bool     `toml:"strict"`
}

// DefaultOptions returns the built-in defaults: system and user ssh
// configs, hosts sorted by name, and no templates (the launcher supplies
// the default ssh command).
func DefaultOptions() Options {
	return Options{
		ConfigPaths: []string{DefaultSystemConfigPath, DefaultUserConfigPath},
		Sort:        true,
	}
}

// DefaultOptionsPath returns the location of the options file,
// ~/.config/hostpick/config.toml.
func DefaultOptionsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", optionsDirName, optionsFileName), nil
}

// Load reads the options file at path on top of the built-in defaults.
// A missing file is not an error; the defaults are returned unchanged.
func Load(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("failed to read options file: %w", err)
	}

	if err := toml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("invalid options in %s: %w", path, err)
	}

	return opts, nil
}

// Validate checks that the Options are usable.
func (o *Options) Validate() error {
	if len(o.ConfigPaths) == 0 {
		return fmt.Errorf("config_paths must not be empty")
	}
	for _, p := range o.ConfigPaths {
		if p == "" {
			return fmt.Errorf("config_paths must not contain empty entries")
		}
	}
	return nil
}

// IsOptionalPath reports whether a missing file at path should be
// tolerated. Only the built-in well-known system path qualifies;
// explicitly configured paths must exist.
func IsOptionalPath(path string) bool {
	return path == DefaultSystemConfigPath
}
