// Package slugs provides the slug normalization used for loose command
// reference matching.
package slugs

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

// Name normalizes a single command name for case- and
// punctuation-insensitive comparison.
func Name(s string) string {
	s = strings.TrimSuffix(s, ".md")
	out := goslug.Make(s)
	if out == "" {
		out = strings.ToLower(strings.ReplaceAll(s, " ", "-"))
	}
	return out
}

// Invocation normalizes a full or partial invocation: the leading slash
// is dropped and each colon-separated segment is slugged independently,
// so "/Frontend:New Component" compares equal to "/frontend:new-component".
func Invocation(s string) string {
	s = strings.TrimPrefix(s, "/")
	parts := strings.Split(s, ":")
	for i, part := range parts {
		parts[i] = Name(part)
	}
	return strings.Join(parts, ":")
}
