package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockpile/internal/inventory"
	"github.com/mesh-intelligence/stockpile/pkg/types"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the demonstration scenario",
		Long: `Demo starts from an empty inventory, runs a fixed sequence of operations
(two of which are rejected by validation), prints quantities, low items and
the report, then saves to the data file. Reported errors never change the
exit status.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			s, err := a.newStore()
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "Inventory Management System")
			fmt.Fprintln(out, strings.Repeat("=", 30))

			var log types.Log
			a.reportResults(s.Apply(inventory.DemoScript, &log))
			a.logEntries(log)

			fmt.Fprintf(out, "\nApple stock: %d\n", s.Quantity("apple"))
			fmt.Fprintf(out, "Banana stock: %d\n", s.Quantity("banana"))
			fmt.Fprintf(out, "Low items (below %d): %s\n", inventory.DefaultLowThreshold,
				formatList(s.LowItems(inventory.DefaultLowThreshold)))
			fmt.Fprint(out, "\n\n")

			if err := s.Report(out); err != nil {
				a.reportError("report failed", err)
			}

			if err := s.Save(a.cfg.DataFile); err != nil {
				a.reportError("save failed", err)
			} else {
				fmt.Fprintln(out, "\nData saved successfully")
			}

			fmt.Fprintln(out, "Demo completed")
			return nil
		},
	}
}

// formatList renders names as ["a", "b"].
func formatList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
