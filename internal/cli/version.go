package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/resultpro/internal/tui"
)

func GetVersionString() string {
	return tui.AppVersion + " (" + tui.GitCommit + " " + tui.BuildTime + ")"
}

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cc *cobra.Command, _ []string) {
			fmt.Fprintln(cc.OutOrStdout(), GetVersionString())
		},
	}
}
