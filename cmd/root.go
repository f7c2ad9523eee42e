package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hostpick/hostpick/internal/errors"
	"github.com/hostpick/hostpick/internal/hosts"
	"github.com/hostpick/hostpick/internal/logging"
	"github.com/hostpick/hostpick/internal/tui"
)

var (
	verbose    bool
	jsonOutput bool

	flagConfigPaths    []string
	flagSearch         string
	flagSort           bool
	flagTemplate       string
	flagOnSessionStart string
	flagOnSessionEnd   string
	flagShowProxy      bool
	flagExitAfter      bool
	flagStrict         bool
)

var rootCmd = &cobra.Command{
	Use:   "hostpick",
	Short: "Browse and connect to hosts from your SSH config",
	Long: `hostpick reads your ssh_config files, resolves Host blocks the way
ssh itself would (includes, wildcard patterns, merging), and presents
the result in an interactive picker.

Select a host to open an SSH session; when the session ends you are
returned to the picker.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
	RunE: runPicker,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringArrayVarP(&flagConfigPaths, "config", "c", nil, "SSH config file to read (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&flagSort, "sort", true, "Sort hosts by name")
	rootCmd.PersistentFlags().StringVarP(&flagTemplate, "template", "t", "", "Command template used to start a session")
	rootCmd.PersistentFlags().StringVar(&flagOnSessionStart, "on-session-start-template", "", "Command template run before each session")
	rootCmd.PersistentFlags().StringVar(&flagOnSessionEnd, "on-session-end-template", "", "Command template run after each session")
	rootCmd.PersistentFlags().BoolVar(&flagShowProxy, "show-proxy-command", false, "Show the ProxyCommand column in host listings")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Fail on unknown ssh_config keywords")

	rootCmd.Flags().StringVarP(&flagSearch, "search", "s", "", "Initial filter text for the picker")
	rootCmd.Flags().BoolVarP(&flagExitAfter, "exit", "e", false, "Exit after the first session instead of returning to the picker")
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logWarning = logging.UserWarning
	_          = logging.UserSuccess // reserved for future use
	_          = logging.UserError
)

func runPicker(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	for {
		list, err := loadHosts(opts)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			logInfo("No hosts found in %v", opts.ConfigPaths)
			return nil
		}
		if opts.Sort {
			hosts.SortByName(list)
		}

		result, err := tui.RunPicker(list, tui.PickerOptions{
			InitialFilter:    flagSearch,
			ShowProxyCommand: opts.ShowProxyCommand,
		})
		if err != nil {
			return errors.Wrap(errors.ExitGeneralError, "picker failed", err)
		}
		if result.Action != tui.ActionConnect || result.Host == nil {
			return nil
		}

		if err := runSession(opts, *result.Host); err != nil {
			return err
		}
		if opts.ExitAfterSession {
			return nil
		}
		// Only apply the initial search once; after a session the user
		// gets the full list back.
		flagSearch = ""
	}
}
