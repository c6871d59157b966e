package slash

import (
	"strconv"
	"strings"
)

// serialize renders the on-disk command file: a frontmatter header when
// any metadata is present, one blank separator line, then the body.
func serialize(description string, tools []string, content string) string {
	var b strings.Builder

	if description != "" || len(tools) > 0 {
		b.WriteString("---\n")
		if description != "" {
			b.WriteString("description: " + yamlScalar(description) + "\n")
		}
		if len(tools) > 0 {
			b.WriteString("allowed-tools:\n")
			for _, tool := range tools {
				b.WriteString("  - " + yamlScalar(tool) + "\n")
			}
		}
		b.WriteString("---\n\n")
	}

	b.WriteString(content)
	return b.String()
}

// yamlScalar renders a metadata value, quoting only when the plain form
// would read back as something other than the written string.
func yamlScalar(value string) string {
	if !needsQuoting(value) {
		return value
	}
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	escaped = strings.ReplaceAll(escaped, "\n", `\n`)
	return `"` + escaped + `"`
}

func needsQuoting(value string) bool {
	if value == "" {
		return false
	}
	if strings.ContainsAny(value, ":\n\"'#") {
		return true
	}
	if strings.TrimSpace(value) != value {
		return true
	}
	// Leading indicator characters would change the YAML parse.
	if strings.ContainsAny(value[:1], "[]{}&*!|>%@`?,-") {
		return true
	}
	// Plain booleans, nulls, and numbers read back as non-strings.
	switch strings.ToLower(value) {
	case "true", "false", "yes", "no", "on", "off", "null", "~":
		return true
	}
	if _, err := strconv.ParseFloat(value, 64); err == nil {
		return true
	}
	return false
}
