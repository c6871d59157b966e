package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/TotoroFxx/claudia-backup/internal/config"
)

// hyperlinkEnabled caches whether we should emit hyperlinks.
// Hyperlinks are only emitted to TTY terminals, not JSON output or pipes.
var hyperlinkEnabled *bool

// hyperlinksDisabled forces hyperlinks off for the current run (e.g. --no-links).
var hyperlinksDisabled bool

func setHyperlinksDisabled(disabled bool) {
	hyperlinksDisabled = disabled
	// Reset cached decision so changes take effect immediately.
	hyperlinkEnabled = nil
}

// shouldEmitHyperlinks returns true if we should emit OSC 8 hyperlinks.
func shouldEmitHyperlinks() bool {
	if hyperlinkEnabled != nil {
		return *hyperlinkEnabled
	}

	// Don't emit hyperlinks for JSON output or non-TTY
	enabled := !jsonOutput && isatty.IsTerminal(os.Stdout.Fd()) && !hyperlinksDisabled
	hyperlinkEnabled = &enabled
	return enabled
}

// buildEditorURL builds the appropriate URL for the configured editor.
// Slash command files are opened whole, so URLs carry no line component
// beyond what a scheme requires.
func buildEditorURL(cfg *config.Config, absPath string) string {
	editor := ""
	if cfg != nil {
		editor = cfg.GetEditor()
	}

	// Normalize editor name (handle "open -a Cursor" style commands)
	editorLower := strings.ToLower(editor)

	switch {
	case strings.Contains(editorLower, "cursor"):
		// Cursor: cursor://file/path
		return fmt.Sprintf("cursor://file%s", absPath)

	case strings.Contains(editorLower, "code") || strings.Contains(editorLower, "vscode"):
		// VS Code: vscode://file/path
		return fmt.Sprintf("vscode://file%s", absPath)

	case strings.Contains(editorLower, "subl") || strings.Contains(editorLower, "sublime"):
		// Sublime Text: subl://open?url=file:///path
		return fmt.Sprintf("subl://open?url=file://%s", absPath)

	case strings.Contains(editorLower, "idea") ||
		strings.Contains(editorLower, "goland") ||
		strings.Contains(editorLower, "webstorm") ||
		strings.Contains(editorLower, "pycharm") ||
		strings.Contains(editorLower, "phpstorm") ||
		strings.Contains(editorLower, "rider") ||
		strings.Contains(editorLower, "rubymine") ||
		strings.Contains(editorLower, "clion"):
		// JetBrains IDEs: idea://open?file=/path
		return fmt.Sprintf("idea://open?file=%s", absPath)

	case strings.Contains(editorLower, "zed"):
		// Zed: zed://file/path
		return fmt.Sprintf("zed://file%s", absPath)

	default:
		// Default: file:// URL (most terminals will open with default app)
		return fmt.Sprintf("file://%s", absPath)
	}
}

// formatPathLinkStyled renders absPath as display text wrapped in an OSC 8
// hyperlink when the terminal supports it, falling back to the styled text
// alone otherwise.
func formatPathLinkStyled(absPath, display string, render func(...string) string) string {
	if render == nil {
		render = func(strs ...string) string {
			if len(strs) == 0 {
				return ""
			}
			return strs[0]
		}
	}

	if !shouldEmitHyperlinks() || absPath == "" {
		return render(display)
	}

	url := buildEditorURL(getConfig(), absPath)

	return render(fmt.Sprintf("\x1b]8;;%s\x07%s\x1b]8;;\x07", url, display))
}
