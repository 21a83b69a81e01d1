package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockpile/pkg/types"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <item> <quantity>",
		Short: "Add stock for an item",
		Long: `Add increases the quantity of an item and saves the inventory.

The quantity must be a non-negative integer. An empty item name is ignored.

Example:
  stockpile add apple 10
  stockpile add "green tea" 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item := args[0]
			qty, err := parseQuantity("add", item, args[1])
			if err != nil {
				return userError(err)
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}

			var log types.Log
			if err := s.Add(item, qty, &log); err != nil {
				return userError(err)
			}
			if err := a.saveStore(s); err != nil {
				return err
			}
			a.logEntries(log)

			return a.printItem(cmd, types.Item{Name: item, Quantity: s.Quantity(item)})
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item> <quantity>",
		Short: "Remove stock for an item",
		Long: `Remove decreases the quantity of an item and saves the inventory.

Once the quantity reaches zero or below the item is deleted.

Example:
  stockpile remove apple 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item := args[0]
			s, err := a.openStore()
			if err != nil {
				return err
			}

			// A non-integer argument goes through RemoveValue so that an
			// absent item is still reported as not found first.
			if qty, perr := strconv.Atoi(args[1]); perr == nil {
				err = s.Remove(item, qty)
			} else {
				err = s.RemoveValue(item, args[1])
			}
			if err != nil {
				return userError(err)
			}
			if err := a.saveStore(s); err != nil {
				return err
			}

			return a.printItem(cmd, types.Item{Name: item, Quantity: s.Quantity(item)})
		},
	}
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <item>",
		Short: "Print the quantity of an item (0 when absent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}

			item := types.Item{Name: args[0], Quantity: s.Quantity(args[0])}
			if a.jsonMode {
				return printJSON(cmd.OutOrStdout(), item)
			}
			fmt.Fprintln(cmd.OutOrStdout(), item.Quantity)
			return nil
		},
	}
}

// printItem prints "item: quantity", or the item as JSON.
func (a *app) printItem(cmd *cobra.Command, it types.Item) error {
	if a.jsonMode {
		return printJSON(cmd.OutOrStdout(), it)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", it.Name, it.Quantity)
	return nil
}
