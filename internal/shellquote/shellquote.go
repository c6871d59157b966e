package shellquote

import "strings"

// Quote wraps s in single quotes so a POSIX shell passes it through
// verbatim. Embedded single quotes close the string, emit a quoted
// quote, and reopen it.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// QuoteIfNeeded quotes s only when a shell would interpret it, keeping
// suggested commands readable in the common case. Command ids derived
// from filenames can carry spaces, so whitespace counts.
func QuoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t#[]()|!\"'$&;<>`*?") {
		return Quote(s)
	}
	return s
}
