package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockpile/pkg/stockpile"
)

const modulePath = "github.com/mesh-intelligence/stockpile"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the stockpile version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "stockpile v%s\nmodule: %s\n", stockpile.Version, modulePath)
			return nil
		},
	}
}
