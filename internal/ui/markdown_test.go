package ui

import (
	"strings"
	"testing"
)

func TestRenderMarkdownNormalizesTrailingNewline(t *testing.T) {
	t.Parallel()

	out, err := RenderMarkdown("# Heading", 80)
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("expected rendered markdown to end with newline, got %q", out)
	}
	if strings.HasSuffix(out, "\n\n") {
		t.Fatalf("expected single trailing newline, got %q", out)
	}
}

func TestRenderMarkdownDefaultsWidthWhenNonPositive(t *testing.T) {
	t.Parallel()

	out, err := RenderMarkdown("hello", 0)
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Fatalf("expected non-empty rendered output")
	}
}

func TestMarkdownStyleKeepsPlainHeadingPrefixes(t *testing.T) {
	style := markdownStyle()

	if style.H1.Prefix != "# " {
		t.Fatalf("expected H1 prefix '# ', got %q", style.H1.Prefix)
	}
	if style.H2.Prefix != "## " {
		t.Fatalf("expected H2 prefix '## ', got %q", style.H2.Prefix)
	}
	if style.Heading.Bold == nil || !*style.Heading.Bold {
		t.Fatalf("expected headings to be bold")
	}
	if style.Document.Margin == nil || *style.Document.Margin != MarkdownRenderMargin {
		t.Fatalf("expected document margin %d, got %v", MarkdownRenderMargin, style.Document.Margin)
	}
}

func TestMarkdownStyleFollowsAccentConfiguration(t *testing.T) {
	origAccent := Accent
	origAccentBold := AccentBold
	origAccentColor := accentColor
	t.Cleanup(func() {
		Accent = origAccent
		AccentBold = origAccentBold
		accentColor = origAccentColor
	})

	ConfigureTheme("#7aa2f7")
	style := markdownStyle()
	if style.Heading.Color == nil || *style.Heading.Color != "#7aa2f7" {
		t.Fatalf("expected heading color '#7aa2f7', got %v", style.Heading.Color)
	}

	ConfigureTheme("none")
	style = markdownStyle()
	if style.Heading.Color != nil {
		t.Fatalf("expected uncolored headings when accent is disabled, got %q", *style.Heading.Color)
	}
}
