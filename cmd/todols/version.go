// Version command for the todols CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the release of the todols binary.
const version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the todols version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "todols", version)
		},
	}
}
