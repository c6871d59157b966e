package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/TotoroFxx/claudia-backup/internal/commands"
	"github.com/TotoroFxx/claudia-backup/internal/parser"
	"github.com/TotoroFxx/claudia-backup/internal/slash"
	"github.com/TotoroFxx/claudia-backup/internal/ui"
)

var (
	showRawFlag     bool
	showNoLinksFlag bool
)

var showCmd = &cobra.Command{
	Use:   "show <ref>",
	Short: commands.Registry["show"].Description,
	Long:  commands.Registry["show"].LongDesc,
	Args:  cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return completeCommandRefs(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		// Apply hyperlink preference for this run.
		setHyperlinksDisabled(showNoLinksFlag)

		ref, err := refArgOrPicker(args, "show", "Show command > ")
		if err != nil {
			return err
		}

		target, warnings, err := resolveCommandRef(ref)
		if err != nil {
			return handleResolveError(err, ref)
		}

		elapsed := time.Since(start).Milliseconds()

		if isJSONOutput() {
			markers := parser.ExtractMarkers(target.Content)
			outputSuccessWithWarnings(map[string]interface{}{
				"command": target,
				"markers": map[string]interface{}{
					"bash_commands":   markers.BashCommands,
					"file_references": markers.FileReferences,
				},
			}, envelopeWarnings(warnings), &Meta{QueryTimeMs: elapsed})
			return nil
		}

		printWarnings(warnings)

		if showRawFlag {
			fmt.Print(target.Content)
			if target.Content != "" && !strings.HasSuffix(target.Content, "\n") {
				fmt.Println()
			}
			return nil
		}

		printCommandDetail(target)
		return nil
	},
}

// refArgOrPicker returns the reference argument, falling back to an fzf
// selection when the argument is absent and an interactive picker can run.
func refArgOrPicker(args []string, commandName, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if canUseFZFInteractive() {
		id, selected, err := pickCommandWithFZF(getProjectPath(), prompt, "")
		if err != nil {
			return "", handleError(ErrInternal, err, "")
		}
		if !selected {
			return "", handleErrorMsg(ErrMissingArgument, "no command selected", "")
		}
		return id, nil
	}

	usage := fmt.Sprintf("claudia %s <ref>", commandName)
	return "", handleErrorMsg(ErrMissingArgument,
		"requires a command reference",
		interactivePickerMissingArgSuggestion(commandName, usage))
}

// completeCommandRefs returns invocation completions for a partial ref.
func completeCommandRefs(toComplete string) []string {
	cmds, _ := slash.List(getProjectPath())
	var out []string
	for _, c := range cmds {
		if strings.HasPrefix(c.FullCommand, toComplete) || strings.HasPrefix(c.Name, toComplete) {
			out = append(out, c.Name)
		}
	}
	return out
}

// printCommandDetail renders one command for a human reader.
func printCommandDetail(c *slash.Command) {
	display := ui.NewDisplayContext()
	width := display.TermWidth
	if width <= 0 {
		width = ui.DefaultTermWidth
	}

	fmt.Println(ui.DividerWithAccentLabel(c.FullCommand, width))
	fmt.Println()

	row := func(label, value string) {
		fmt.Printf("  %s  %s\n", ui.Hint(fmt.Sprintf("%-13s", label)), value)
	}
	row("id", c.ID)
	row("scope", string(c.Scope))
	if c.Namespace != nil {
		row("namespace", *c.Namespace)
	}
	if c.FilePath != "" {
		row("file", formatPathLinkStyled(c.FilePath, c.FilePath, ui.Accent.Render))
	}
	if c.Description != nil && *c.Description != "" {
		row("description", *c.Description)
	}
	if len(c.AllowedTools) > 0 {
		row("allowed tools", strings.Join(c.AllowedTools, ", "))
	}
	markers := parser.ExtractMarkers(c.Content)
	if len(markers.BashCommands) > 0 {
		spans := make([]string, len(markers.BashCommands))
		for i, b := range markers.BashCommands {
			spans[i] = "!`" + b + "`"
		}
		row("shell spans", strings.Join(spans, "  "))
	}
	if len(markers.FileReferences) > 0 {
		refs := make([]string, len(markers.FileReferences))
		for i, r := range markers.FileReferences {
			refs[i] = "@" + r
		}
		row("file refs", strings.Join(refs, "  "))
	}
	if c.AcceptsArguments {
		row("arguments", "accepts $ARGUMENTS")
	}
	fmt.Println()

	if c.FilePath == "" {
		fmt.Println(ui.Hint("Built-in command; the body above is handled natively."))
		if c.Content != "" {
			fmt.Println()
			fmt.Println("  " + c.Content)
		}
		return
	}

	if c.Content == "" {
		fmt.Println(ui.Hint("(empty body)"))
		return
	}

	body := c.Content
	if display.IsTTY {
		if rendered, err := ui.RenderMarkdown(body, width); err == nil {
			body = rendered
		}
	}
	fmt.Print(body)
	if !strings.HasSuffix(body, "\n") {
		fmt.Println()
	}
}

func init() {
	showCmd.Flags().BoolVar(&showRawFlag, "raw", false, "Print the raw markdown body without rendering")
	showCmd.Flags().BoolVar(&showNoLinksFlag, "no-links", false, "Disable clickable hyperlinks in terminal output")
	rootCmd.AddCommand(showCmd)
}
