package cli

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockpile/pkg/types"
)

func newLowCmd(a *app) *cobra.Command {
	var threshold int

	cmd := &cobra.Command{
		Use:   "low",
		Short: "List items whose quantity is below a threshold",
		Long: `Low prints every item whose quantity is strictly below the threshold,
one per line, in insertion order. The threshold defaults to low_threshold
from config.yaml (5 when unset).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("threshold") {
				threshold = a.cfg.LowThreshold
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}

			low := s.LowItems(threshold)
			if a.jsonMode {
				if low == nil {
					low = []string{}
				}
				return printJSON(cmd.OutOrStdout(), low)
			}
			for _, item := range low {
				fmt.Fprintln(cmd.OutOrStdout(), item)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&threshold, "threshold", "t", types.DefaultLowThreshold, "quantity below which an item is low")
	return cmd
}

func newReportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the inventory report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			if err := s.Report(cmd.OutOrStdout()); err != nil {
				return sysError(fmt.Errorf("write report: %w", err))
			}
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List items as a table",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}

			items := s.Items()
			if a.jsonMode {
				return printJSON(cmd.OutOrStdout(), items)
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Inventory is empty")
				return nil
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Item", "Quantity", "Low"})
			table.SetAutoWrapText(false)
			table.SetAutoFormatHeaders(true)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetCenterSeparator("")
			table.SetColumnSeparator("")
			table.SetRowSeparator("")
			table.SetHeaderLine(false)
			table.SetBorder(false)
			table.SetTablePadding("\t")
			table.SetNoWhiteSpace(true)

			table.AppendBulk(tableFormatItems(items, a.cfg.LowThreshold))
			table.Render()
			return nil
		},
	}
}

func tableFormatItems(items []types.Item, threshold int) [][]string {
	data := make([][]string, 0, len(items))
	for _, it := range items {
		low := ""
		if it.Quantity < threshold {
			low = "yes"
		}
		data = append(data, []string{it.Name, strconv.Itoa(it.Quantity), low})
	}
	return data
}
