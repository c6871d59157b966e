// Package cli implements the claudia command-line interface.
// This file provides pipe-friendly output helpers for list commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// PipeableItem is one row of tab-separated list output, the format fzf and
// cut-based pipelines consume.
type PipeableItem struct {
	Num      int    // 1-indexed result number for reference
	ID       string // Unique identifier (what downstream commands accept)
	Content  string // Human-readable description
	Location string // Short location hint (scope or file path)
}

// pipeFormatOverride stores explicit --pipe/--no-pipe flag values.
// nil means auto-detect from the terminal.
var pipeFormatOverride *bool

// SetPipeFormat sets an explicit pipe format override. Pass nil to return
// to auto-detection.
func SetPipeFormat(usePipe *bool) {
	pipeFormatOverride = usePipe
}

// IsPipedOutput reports whether stdout is being piped (not a TTY).
func IsPipedOutput() bool {
	return !isatty.IsTerminal(os.Stdout.Fd())
}

// ShouldUsePipeFormat decides between table and tab-separated output.
// An explicit --pipe/--no-pipe wins over TTY detection; JSON mode always
// declines since it has its own format.
func ShouldUsePipeFormat() bool {
	if isJSONOutput() {
		return false
	}
	if pipeFormatOverride != nil {
		return *pipeFormatOverride
	}
	return IsPipedOutput()
}

// fieldSanitizer collapses the characters that would break one-row-per-line
// tab-separated output.
var fieldSanitizer = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

// WritePipeableList writes items as Num<tab>ID<tab>Content<tab>Location
// rows, one per line.
func WritePipeableList(w io.Writer, items []PipeableItem) {
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			item.Num,
			item.ID,
			fieldSanitizer.Replace(item.Content),
			fieldSanitizer.Replace(item.Location))
	}
}

// WritePipeableIDs writes just the ids, one per line, for pipelines that
// do not need the description columns.
func WritePipeableIDs(w io.Writer, items []PipeableItem) {
	for _, item := range items {
		fmt.Fprintln(w, item.ID)
	}
}

// TruncateContent shortens content to maxLen, appending "..." and breaking
// at a word boundary when one falls in the back half.
func TruncateContent(content string, maxLen int) string {
	if len(content) <= maxLen {
		return content
	}

	truncated := content[:maxLen-3]
	lastSpace := strings.LastIndex(truncated, " ")
	if lastSpace > maxLen/2 {
		truncated = truncated[:lastSpace]
	}
	return truncated + "..."
}
