package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/stockpile/internal/inventory"
	"github.com/mesh-intelligence/stockpile/pkg/types"
)

func newApplyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <script>",
		Short: "Apply a JSON or YAML script of add/remove operations",
		Long: `Apply runs a list of operations against the inventory and saves it.

Each operation is an object with "op" (add or remove), "item" and
"quantity". Rejected operations are reported and skipped; the rest still run.
Files ending in .yaml or .yml are read as YAML, anything else as JSON.

Example script:
  [
    {"op": "add", "item": "apple", "quantity": 10},
    {"op": "remove", "item": "apple", "quantity": 3}
  ]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := inventory.ReadScript(args[0])
			if err != nil {
				return userError(err)
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}

			var log types.Log
			results := s.Apply(ops, &log)
			failed := a.reportResults(results)

			if err := a.saveStore(s); err != nil {
				return err
			}
			a.logEntries(log)

			a.logger.Debug("script applied",
				zap.String("script", args[0]),
				zap.Int("operations", len(results)),
				zap.Int("failed", failed))
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d operations (%d rejected)\n", len(results)-failed, failed)
			return nil
		},
	}
}
