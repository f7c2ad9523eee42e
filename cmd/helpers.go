package cmd

import (
	stderrors "errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/hostpick/hostpick/internal/config"
	"github.com/hostpick/hostpick/internal/errors"
	"github.com/hostpick/hostpick/internal/hosts"
	"github.com/hostpick/hostpick/internal/launch"
	"github.com/hostpick/hostpick/internal/logging"
)

// loadOptions reads the options file and overlays any flags the user set
// explicitly. Flags always win over the file.
func loadOptions(cmd *cobra.Command) (config.Options, error) {
	path, err := config.DefaultOptionsPath()
	if err != nil {
		return config.Options{}, errors.OptionsError("could not locate options file", err)
	}
	opts, err := config.Load(path)
	if err != nil {
		return config.Options{}, errors.OptionsError("failed to load options", err)
	}

	flags := cmd.Flags()
	if flags.Changed("config") {
		opts.ConfigPaths = flagConfigPaths
	}
	if flags.Changed("sort") {
		opts.Sort = flagSort
	}
	if flags.Changed("template") {
		opts.Template = flagTemplate
	}
	if flags.Changed("on-session-start-template") {
		opts.OnSessionStartTemplate = flagOnSessionStart
	}
	if flags.Changed("on-session-end-template") {
		opts.OnSessionEndTemplate = flagOnSessionEnd
	}
	if flags.Changed("show-proxy-command") {
		opts.ShowProxyCommand = flagShowProxy
	}
	if flags.Changed("exit") {
		opts.ExitAfterSession = flagExitAfter
	}
	if flags.Changed("strict") {
		opts.Strict = flagStrict
	}

	if err := opts.Validate(); err != nil {
		return config.Options{}, errors.OptionsError("invalid options", err)
	}
	return opts, nil
}

// loadHosts parses every configured ssh_config file and concatenates the
// resolved hosts. A missing system config (/etc/ssh/ssh_config) is normal
// and skipped; a missing user-specified file is an error.
func loadHosts(opts config.Options) ([]hosts.Host, error) {
	var all []hosts.Host
	for _, path := range opts.ConfigPaths {
		list, err := hosts.ParseConfig(path, opts.Strict)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) && config.IsOptionalPath(path) {
				logging.Debug("skipping missing config", "path", path)
				continue
			}
			return nil, errors.ConfigParseFailed(path, err)
		}
		all = append(all, list...)
	}
	return all, nil
}

// runSession runs the session-start hook, the SSH session itself, and the
// session-end hook for one host.
func runSession(opts config.Options, host hosts.Host) error {
	launch.RunHook(opts.OnSessionStartTemplate, host)

	tmpl := opts.Template
	if tmpl == "" {
		tmpl = launch.DefaultCommandTemplate
	}
	err := launch.Run(tmpl, host)

	launch.RunHook(opts.OnSessionEndTemplate, host)

	if err != nil {
		// A remote command's nonzero exit is not a launch failure; the
		// session ran. Only surface errors where nothing was executed.
		if launch.ExitCode(err) >= 0 {
			logging.Debug("session exited nonzero", "host", host.Name, "code", launch.ExitCode(err))
			return nil
		}
		return errors.LaunchFailed(err)
	}
	return nil
}
