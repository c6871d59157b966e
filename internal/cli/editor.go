package cli

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/TotoroFxx/claudia-backup/internal/shellquote"
	"github.com/TotoroFxx/claudia-backup/internal/ui"
)

// resolveEditor returns the editor command to use: the per-invocation
// override when given, otherwise config 'editor', then $EDITOR.
func resolveEditor(override string) string {
	if trimmed := strings.TrimSpace(override); trimmed != "" {
		return trimmed
	}
	if cfg := getConfig(); cfg != nil {
		return cfg.GetEditor()
	}
	return ""
}

// launchEditor opens filePath with the given editor command.
// Returns true if the editor was launched, false otherwise.
// The process is started in the background (non-blocking).
//
// If the editor contains spaces (e.g., "open -a Cursor" or "code --wait"),
// it is executed via shell to handle the arguments correctly.
func launchEditor(editor, filePath string) bool {
	if editor == "" {
		return false
	}

	var cmd *exec.Cmd
	if strings.Contains(editor, " ") {
		cmd = exec.Command("sh", "-c", editor+" "+shellquote.Quote(filePath))
	} else {
		cmd = exec.Command(editor, filePath)
	}

	if err := cmd.Start(); err != nil {
		fmt.Println(ui.Warningf("failed to open editor '%s': %v", editor, err))
		return false
	}
	return true
}

// openFileInEditor opens filePath in the editor and prints appropriate
// output. When no editor is configured it prints the path and a hint.
func openFileInEditor(editor, filePath string) {
	if launchEditor(editor, filePath) {
		fmt.Printf("Opening %s\n", formatPathLinkStyled(filePath, filePath, ui.Accent.Render))
		return
	}
	fmt.Printf("File: %s\n", ui.FilePath(filePath))
	fmt.Println(ui.Hint("(Set 'editor' in ~/.config/claudia/config.toml or $EDITOR to open automatically)"))
}
