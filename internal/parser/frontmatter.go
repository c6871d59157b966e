// Package parser handles the slash command file format: an optional YAML
// frontmatter header delimited by --- lines, followed by the markdown
// body the assistant receives when the command runs.
package parser

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter holds the metadata a command file may carry in its header.
type Frontmatter struct {
	Description  *string  `yaml:"description"`
	AllowedTools []string `yaml:"allowed-tools"`
}

// FrontmatterBounds returns the line index of the closing delimiter.
// ok reports whether the first line opens a header at all; end is -1
// when the header is never closed.
func FrontmatterBounds(lines []string) (end int, ok bool) {
	if len(lines) == 0 || !isDelimiter(lines[0]) {
		return -1, false
	}

	for i := 1; i < len(lines); i++ {
		if isDelimiter(lines[i]) {
			return i, true
		}
	}

	return -1, true
}

// A delimiter line is exactly three hyphens; a trailing CR from CRLF
// files is tolerated.
func isDelimiter(line string) bool {
	return strings.TrimSuffix(line, "\r") == "---"
}

// Split separates content into header metadata and body.
//
// Content without an opening delimiter, without a closing delimiter, or
// with a header that is not valid YAML degrades to "the whole file is
// body" with nil metadata. The YAML failure case additionally reports
// the parse error through warn so bulk scanners can surface it; the
// returned body is still usable.
func Split(content string) (meta *Frontmatter, body string, warn error) {
	lines := strings.Split(content, "\n")

	end, ok := FrontmatterBounds(lines)
	if !ok || end == -1 {
		return nil, content, nil
	}

	var fm Frontmatter
	header := strings.Join(lines[1:end], "\n")
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return nil, content, fmt.Errorf("parse frontmatter: %w", err)
	}

	body = strings.Join(lines[end+1:], "\n")
	// Saving writes one blank separator line after the header; it is not
	// part of the body.
	switch {
	case strings.HasPrefix(body, "\r\n"):
		body = body[2:]
	case strings.HasPrefix(body, "\n"):
		body = body[1:]
	}

	return &fm, body, nil
}
