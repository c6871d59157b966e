package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/TotoroFxx/claudia-backup/internal/commands"
	"github.com/TotoroFxx/claudia-backup/internal/slash"
	"github.com/TotoroFxx/claudia-backup/internal/ui"
)

var namespacesCmd = &cobra.Command{
	Use:   "namespaces",
	Short: commands.Registry["namespaces"].Description,
	Long:  commands.Registry["namespaces"].LongDesc,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		cmds, warnings := slash.List(getProjectPath())
		counts := slash.CountNamespaces(cmds)
		elapsed := time.Since(start).Milliseconds()

		if isJSONOutput() {
			outputSuccessWithWarnings(map[string]interface{}{
				"namespaces": counts,
			}, envelopeWarnings(warnings), &Meta{Count: len(counts), QueryTimeMs: elapsed})
			return nil
		}

		printWarnings(warnings)

		if len(counts) == 0 {
			fmt.Println(ui.Info("No project or user commands found"))
			fmt.Println(ui.Hint("Create one with 'claudia save user <name>'"))
			return nil
		}

		fmt.Printf("%s %s\n\n", ui.Header("Namespaces"), ui.Hint(ui.Count(len(counts), "namespace", "namespaces")))
		table := ui.NewTable("Namespace", "Commands")
		for _, nc := range counts {
			ns := nc.Namespace
			if ns == "" {
				ns = "(root)"
			}
			table.AddRow(ns, strconv.Itoa(nc.Count))
		}
		fmt.Println(table.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(namespacesCmd)
}
