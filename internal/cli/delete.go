package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/TotoroFxx/claudia-backup/internal/commands"
	"github.com/TotoroFxx/claudia-backup/internal/slash"
	"github.com/TotoroFxx/claudia-backup/internal/ui"
)

var deleteYesFlag bool

var deleteCmd = &cobra.Command{
	Use:   "delete <ref>",
	Short: commands.Registry["delete"].Description,
	Long:  commands.Registry["delete"].LongDesc,
	Args:  cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return completeCommandRefs(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		ref, err := refArgOrPicker(args, "delete", "Delete command > ")
		if err != nil {
			return err
		}

		target, warnings, err := resolveCommandRef(ref)
		if err != nil {
			return handleResolveError(err, ref)
		}
		if err := requireBackingFile(target, "deleted"); err != nil {
			return err
		}

		// JSON mode and --yes skip the interactive confirmation.
		if !isJSONOutput() && !deleteYesFlag {
			if !promptForConfirm(fmt.Sprintf("Delete %s?", target.FullCommand)) {
				fmt.Fprintln(os.Stderr, "Cancelled.")
				return nil
			}
		}

		message, err := slash.Delete(target.ID, getProjectPath())
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		elapsed := time.Since(start).Milliseconds()

		if isJSONOutput() {
			outputSuccessWithWarnings(map[string]interface{}{
				"deleted": true,
				"id":      target.ID,
				"file":    target.FilePath,
				"message": message,
			}, envelopeWarnings(warnings), &Meta{QueryTimeMs: elapsed})
			return nil
		}

		printWarnings(warnings)
		fmt.Println(ui.Success(message))
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYesFlag, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
