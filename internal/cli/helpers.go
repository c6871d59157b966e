package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/TotoroFxx/claudia-backup/internal/shellquote"
	"github.com/TotoroFxx/claudia-backup/internal/slash"
	"github.com/TotoroFxx/claudia-backup/internal/ui"
)

// resolveCommandRef resolves a user-supplied reference against the current
// project context.
func resolveCommandRef(ref string) (*slash.Command, []slash.LoadWarning, error) {
	return slash.Resolve(ref, getProjectPath())
}

// handleResolveError maps resolver errors onto structured CLI errors.
func handleResolveError(err error, ref string) error {
	var notFound *slash.NotFoundError
	if errors.As(err, &notFound) {
		return handleErrorMsg(ErrCommandNotFound, err.Error(), "Run 'claudia list' to see available commands")
	}

	var ambiguous *slash.AmbiguousError
	if errors.As(err, &ambiguous) {
		suggestion := "Use the full command id to disambiguate"
		if len(ambiguous.Matches) > 0 {
			suggestion = fmt.Sprintf("Use a full command id, e.g. claudia show %s",
				shellquote.QuoteIfNeeded(ambiguous.Matches[0]))
		}
		return handleErrorWithDetails(ErrCommandAmbiguous, err.Error(), suggestion,
			map[string]interface{}{"matches": ambiguous.Matches})
	}

	return handleError(ErrInternal, err, "")
}

// envelopeWarnings converts scan warnings for the JSON envelope.
func envelopeWarnings(warnings []slash.LoadWarning) []Warning {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]Warning, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, Warning{
			Code:    WarnLoadFailed,
			Message: w.Err.Error(),
			Path:    w.Path,
		})
	}
	return out
}

// printWarnings writes scan warnings to stderr in text mode.
func printWarnings(warnings []slash.LoadWarning) {
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, ui.Warningf("Warning: failed to load %s: %v", w.Path, w.Err))
	}
}

// requireBackingFile rejects commands without a file on disk (built-ins).
func requireBackingFile(cmd *slash.Command, action string) error {
	if cmd.FilePath != "" {
		return nil
	}
	return handleErrorMsg(ErrCommandBuiltin,
		fmt.Sprintf("%s is a built-in command and cannot be %s", cmd.FullCommand, action),
		"Only project and user commands have files on disk")
}
