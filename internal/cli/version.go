package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	appver "logsurrogate/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print logsurrogate version",
		Run: func(cmd *cobra.Command, args []string) {
			// keep output simple for scripting
			fmt.Fprintln(cmd.OutOrStdout(), appver.AppVersion)
		},
	}
}
