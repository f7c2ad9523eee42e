package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hostpick/hostpick/internal/hosts"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print resolved hosts as a table",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

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

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if opts.ShowProxyCommand {
		fmt.Fprintln(w, "NAME\tALIASES\tUSER\tDESTINATION\tPORT\tPROXY")
		fmt.Fprintln(w, "----\t-------\t----\t-----------\t----\t-----")
		for _, h := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				h.Name, h.Aliases, h.User, h.Destination, h.Port, h.ProxyCommand)
		}
	} else {
		fmt.Fprintln(w, "NAME\tALIASES\tUSER\tDESTINATION\tPORT")
		fmt.Fprintln(w, "----\t-------\t----\t-----------\t----")
		for _, h := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				h.Name, h.Aliases, h.User, h.Destination, h.Port)
		}
	}

	return w.Flush()
}
