package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hostpick/hostpick/internal/errors"
	"github.com/hostpick/hostpick/internal/hosts"
)

var connectCmd = &cobra.Command{
	Use:   "connect <host>",
	Short: "Connect to a host by name without the picker",
	Args:  cobra.ExactArgs(1),
	RunE:  runConnect,
}

func init() {
	rootCmd.AddCommand(connectCmd)
}

func runConnect(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	list, err := loadHosts(opts)
	if err != nil {
		return err
	}

	host, ok := hosts.FindByName(list, args[0])
	if !ok {
		return errors.HostNotFound(args[0])
	}

	return runSession(opts, host)
}
