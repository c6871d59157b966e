package cli

import (
	"github.com/spf13/cobra"

	"github.com/TotoroFxx/claudia-backup/internal/commands"
)

var editEditorFlag string

var editCmd = &cobra.Command{
	Use:   "edit <ref>",
	Short: commands.Registry["edit"].Description,
	Long:  commands.Registry["edit"].LongDesc,
	Args:  cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return completeCommandRefs(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := refArgOrPicker(args, "edit", "Edit command > ")
		if err != nil {
			return err
		}

		target, warnings, err := resolveCommandRef(ref)
		if err != nil {
			return handleResolveError(err, ref)
		}
		if err := requireBackingFile(target, "edited"); err != nil {
			return err
		}

		editor := resolveEditor(editEditorFlag)

		if isJSONOutput() {
			opened := launchEditor(editor, target.FilePath)
			outputSuccess(map[string]interface{}{
				"file":   target.FilePath,
				"opened": opened,
				"editor": editor,
			}, nil)
			return nil
		}

		printWarnings(warnings)
		openFileInEditor(editor, target.FilePath)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editEditorFlag, "editor", "", "Editor command to use for this invocation")
	rootCmd.AddCommand(editCmd)
}
