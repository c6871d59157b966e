package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/TotoroFxx/claudia-backup/internal/ui"
)

// canPromptForConfirm reports whether an interactive confirmation is
// possible: never in JSON mode, and only with a terminal on both ends.
// When prompting is impossible the answer counts as no, so scripted
// callers must pass --yes.
func canPromptForConfirm() bool {
	if isJSONOutput() {
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// promptForConfirm asks message and reads a y/yes answer from stdin.
func promptForConfirm(message string) bool {
	if !canPromptForConfirm() {
		return false
	}
	if message == "" {
		message = "Proceed?"
	}

	fmt.Printf("%s %s ", message, ui.Hint("[y/N]"))
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
