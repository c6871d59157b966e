package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/TotoroFxx/claudia-backup/internal/commands"
	"github.com/TotoroFxx/claudia-backup/internal/slash"
	"github.com/TotoroFxx/claudia-backup/internal/ui"
)

var (
	saveNamespaceFlag   string
	saveDescriptionFlag string
	saveToolFlags       []string
	saveContentFlag     string
)

var saveCmd = &cobra.Command{
	Use:   "save <scope> <name>",
	Short: commands.Registry["save"].Description,
	Long:  commands.Registry["save"].LongDesc,
	Args:  cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return []string{"project", "user"}, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		scope, err := slash.ParseScope(args[0])
		if err != nil {
			return handleErrorMsg(ErrInvalidScope, err.Error(),
				"Usage: claudia save <project|user> <name>")
		}

		name := strings.TrimSpace(args[1])
		if name == "" {
			return handleErrorMsg(ErrInvalidInput, "Command name cannot be empty", "")
		}

		if scope == slash.ScopeProject && getProjectPath() == "" {
			return handleErrorMsg(ErrProjectRequired, "Project path required for project scope",
				"Pass --project or set 'project_path' in the config")
		}

		content := saveContentFlag
		if !cmd.Flags().Changed("content") && !isatty.IsTerminal(os.Stdin.Fd()) {
			// Piped input becomes the command body.
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return handleError(ErrInternal, fmt.Errorf("read stdin: %w", err), "")
			}
			content = string(b)
		}

		saved, err := slash.Save(slash.SaveOptions{
			Scope:        scope,
			Name:         name,
			Namespace:    strings.TrimSpace(saveNamespaceFlag),
			Content:      content,
			Description:  saveDescriptionFlag,
			AllowedTools: saveToolFlags,
			ProjectPath:  getProjectPath(),
		})
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		elapsed := time.Since(start).Milliseconds()

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"command": saved,
			}, &Meta{QueryTimeMs: elapsed})
			return nil
		}

		fmt.Println(ui.Successf("Saved %s", saved.FullCommand))
		fmt.Printf("  %s\n", formatPathLinkStyled(saved.FilePath, saved.FilePath, ui.Accent.Render))
		fmt.Println(ui.Hint(fmt.Sprintf("Run 'claudia show %s' to inspect it", saved.FullCommand)))
		return nil
	},
}

func init() {
	saveCmd.Flags().StringVarP(&saveNamespaceFlag, "namespace", "n", "", "Namespace path, colon separated (e.g. git:hooks)")
	saveCmd.Flags().StringVarP(&saveDescriptionFlag, "description", "d", "", "Description stored in frontmatter")
	saveCmd.Flags().StringArrayVar(&saveToolFlags, "tool", nil, "Allowed tool, repeatable (stored as allowed-tools)")
	saveCmd.Flags().StringVar(&saveContentFlag, "content", "", "Markdown body (reads stdin when omitted and piped)")
	rootCmd.AddCommand(saveCmd)
}
