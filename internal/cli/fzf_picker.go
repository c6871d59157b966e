package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/TotoroFxx/claudia-backup/internal/slash"
)

var (
	fzfLookPath         = exec.LookPath
	fzfStdinIsTerminal  = func() bool { return isatty.IsTerminal(os.Stdin.Fd()) }
	fzfStdoutIsTerminal = func() bool { return isatty.IsTerminal(os.Stdout.Fd()) }
)

type fzfPickerOptions struct {
	Prompt    string
	Header    string
	Delimiter string
	WithNth   string
}

func hasFZFInstalled() bool {
	_, err := fzfLookPath("fzf")
	return err == nil
}

func canUseFZFInteractive() bool {
	if isJSONOutput() {
		return false
	}
	if !fzfStdinIsTerminal() || !fzfStdoutIsTerminal() {
		return false
	}
	return hasFZFInstalled()
}

func runFZFPicker(lines []string, opts fzfPickerOptions) (string, bool, error) {
	if len(lines) == 0 {
		return "", false, nil
	}

	args := []string{
		"--layout=reverse",
		"--height=80%",
		"--border",
		"--select-1",
		"--exit-0",
	}
	if strings.TrimSpace(opts.Prompt) != "" {
		args = append(args, "--prompt", opts.Prompt)
	}
	if strings.TrimSpace(opts.Header) != "" {
		args = append(args, "--header", opts.Header)
	}
	if strings.TrimSpace(opts.Delimiter) != "" {
		args = append(args, "--delimiter", opts.Delimiter)
	}
	if strings.TrimSpace(opts.WithNth) != "" {
		args = append(args, "--with-nth", opts.WithNth)
	}

	cmd := exec.Command("fzf", args...)
	cmd.Stdin = strings.NewReader(strings.Join(lines, "\n") + "\n")

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if code := exitErr.ExitCode(); code == 1 || code == 130 {
				return "", false, nil
			}
		}
		return "", false, fmt.Errorf("run fzf selector: %w", err)
	}

	selection := strings.TrimSpace(stdout.String())
	if selection == "" {
		return "", false, nil
	}
	return selection, true, nil
}

// pickCommandWithFZF lets the user choose one file-backed slash command.
// Lines carry the id in a hidden first column so the visible part stays
// the invocation plus description.
func pickCommandWithFZF(projectPath, prompt, header string) (string, bool, error) {
	cmds, warnings := slash.List(projectPath)
	printWarnings(warnings)

	lines := make([]string, 0, len(cmds))
	for _, c := range cmds {
		if c.FilePath == "" {
			// Built-ins have no file to show or edit.
			continue
		}
		desc := ""
		if c.Description != nil {
			desc = *c.Description
		}
		lines = append(lines, fmt.Sprintf("%s\t%s\t[%s]\t%s", c.ID, c.FullCommand, c.Scope, desc))
	}
	if len(lines) == 0 {
		return "", false, fmt.Errorf("no project or user commands found")
	}
	sort.Strings(lines)

	selectedLine, selected, err := runFZFPicker(lines, fzfPickerOptions{
		Prompt:    prompt,
		Header:    header,
		Delimiter: "\t",
		WithNth:   "2..",
	})
	if err != nil || !selected {
		return "", selected, err
	}
	id, _, _ := strings.Cut(selectedLine, "\t")
	return strings.TrimSpace(id), true, nil
}

func interactivePickerMissingArgSuggestion(commandName, usage string) string {
	if hasFZFInstalled() {
		return fmt.Sprintf("Run '%s'", usage)
	}
	return fmt.Sprintf("Install fzf to enable interactive selection for bare 'claudia %s', or run '%s'", commandName, usage)
}
