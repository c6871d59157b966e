package parser

import (
	"strings"
	"testing"
)

func TestFrontmatterBounds(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantEnd int
		wantOK  bool
	}{
		{
			name:    "no header",
			content: "Just a body.",
			wantEnd: -1,
			wantOK:  false,
		},
		{
			name:    "closed header",
			content: "---\ndescription: x\n---\nbody",
			wantEnd: 2,
			wantOK:  true,
		},
		{
			name:    "unclosed header",
			content: "---\ndescription: x\nbody",
			wantEnd: -1,
			wantOK:  true,
		},
		{
			name:    "delimiter must be the first line",
			content: "\n---\ndescription: x\n---\n",
			wantEnd: -1,
			wantOK:  false,
		},
		{
			name:    "crlf delimiters",
			content: "---\r\ndescription: x\r\n---\r\nbody",
			wantEnd: 2,
			wantOK:  true,
		},
		{
			name:    "four hyphens is not a delimiter",
			content: "----\ndescription: x\n----\n",
			wantEnd: -1,
			wantOK:  false,
		},
		{
			name:    "empty header",
			content: "---\n---\nbody",
			wantEnd: 1,
			wantOK:  true,
		},
		{
			name:    "empty content",
			content: "",
			wantEnd: -1,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, ok := FrontmatterBounds(strings.Split(tt.content, "\n"))
			if end != tt.wantEnd || ok != tt.wantOK {
				t.Errorf("FrontmatterBounds() = (%d, %v), want (%d, %v)", end, ok, tt.wantEnd, tt.wantOK)
			}
		})
	}
}

func TestSplitParsesHeader(t *testing.T) {
	content := `---
description: Create a commit
allowed-tools:
  - Bash(git add:*)
  - Bash(git commit:*)
---

Commit the staged changes.
`
	meta, body, warn := Split(content)
	if warn != nil {
		t.Fatalf("warn = %v, want nil", warn)
	}
	if meta == nil {
		t.Fatal("meta = nil, want parsed frontmatter")
	}
	if meta.Description == nil || *meta.Description != "Create a commit" {
		t.Errorf("Description = %v, want Create a commit", meta.Description)
	}
	if len(meta.AllowedTools) != 2 || meta.AllowedTools[0] != "Bash(git add:*)" {
		t.Errorf("AllowedTools = %v, want both Bash entries", meta.AllowedTools)
	}
	if body != "Commit the staged changes.\n" {
		t.Errorf("body = %q, want the content after exactly one separator line", body)
	}
}

func TestSplitKeepsExtraBlankLines(t *testing.T) {
	// Only the single separator line the writer emits is dropped; any
	// further leading blank lines belong to the body.
	content := "---\ndescription: x\n---\n\n\nBody.\n"
	_, body, warn := Split(content)
	if warn != nil {
		t.Fatalf("warn = %v, want nil", warn)
	}
	if body != "\nBody.\n" {
		t.Errorf("body = %q, want one leading blank line preserved", body)
	}
}

func TestSplitNoSeparatorLine(t *testing.T) {
	content := "---\ndescription: x\n---\nBody starts immediately.\n"
	_, body, warn := Split(content)
	if warn != nil {
		t.Fatalf("warn = %v, want nil", warn)
	}
	if body != "Body starts immediately.\n" {
		t.Errorf("body = %q, want body without separator handling", body)
	}
}

func TestSplitDegradesWithoutHeader(t *testing.T) {
	content := "No header at all.\n"
	meta, body, warn := Split(content)
	if warn != nil {
		t.Fatalf("warn = %v, want nil", warn)
	}
	if meta != nil {
		t.Errorf("meta = %+v, want nil", meta)
	}
	if body != content {
		t.Errorf("body = %q, want the input unchanged", body)
	}
}

func TestSplitDegradesOnUnclosedHeader(t *testing.T) {
	content := "---\ndescription: x\nNever closed.\n"
	meta, body, warn := Split(content)
	if warn != nil {
		t.Fatalf("warn = %v, want nil", warn)
	}
	if meta != nil {
		t.Errorf("meta = %+v, want nil for unclosed header", meta)
	}
	if body != content {
		t.Errorf("body = %q, want the input unchanged", body)
	}
}

func TestSplitDegradesOnInvalidYAML(t *testing.T) {
	content := "---\ndescription: [unclosed\n---\n\nStill a body.\n"
	meta, body, warn := Split(content)
	if warn == nil {
		t.Fatal("warn = nil, want the YAML parse error")
	}
	if meta != nil {
		t.Errorf("meta = %+v, want nil for invalid YAML", meta)
	}
	if body != content {
		t.Errorf("body = %q, want the whole input as body", body)
	}
}

func TestSplitCRLFBody(t *testing.T) {
	content := "---\r\ndescription: x\r\n---\r\n\r\nBody.\r\n"
	meta, body, warn := Split(content)
	if warn != nil {
		t.Fatalf("warn = %v, want nil", warn)
	}
	if meta == nil || meta.Description == nil || *meta.Description != "x" {
		t.Errorf("meta = %+v, want description x", meta)
	}
	if body != "Body.\r\n" {
		t.Errorf("body = %q, want CRLF separator dropped", body)
	}
}

func TestSplitHeaderOnlyFile(t *testing.T) {
	meta, body, warn := Split("---\ndescription: x\n---")
	if warn != nil {
		t.Fatalf("warn = %v, want nil", warn)
	}
	if meta == nil {
		t.Fatal("meta = nil, want parsed frontmatter")
	}
	if body != "" {
		t.Errorf("body = %q, want empty", body)
	}
}
