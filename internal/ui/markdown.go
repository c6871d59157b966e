package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
)

// MarkdownRenderMargin is the left margin used for terminal markdown rendering.
const MarkdownRenderMargin = 2

// RenderMarkdown renders markdown for terminal display. Command bodies are
// shown close to the raw file: headings keep their # marks and inline code
// keeps its backticks, so rendered output stays mappable to what is on disk.
func RenderMarkdown(content string, width int) (string, error) {
	if width <= 0 {
		width = DefaultTermWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(markdownStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	rendered, err := r.Render(content)
	if err != nil {
		return "", err
	}

	// glamour adds trailing newlines; normalize to a single trailing newline.
	rendered = strings.TrimRight(rendered, "\n") + "\n"
	return rendered, nil
}

func markdownStyle() ansi.StyleConfig {
	muted := ptr("8")
	var accent *string
	if color, ok := AccentColor(); ok {
		accent = ptr(color)
	}

	linkText := muted
	if accent != nil {
		linkText = accent
	}

	cfg := ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockPrefix: "\n",
				BlockSuffix: "\n",
			},
			Margin: ptr(uint(MarkdownRenderMargin)),
		},
		BlockQuote: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: muted},
			Indent:         ptr(uint(1)),
			IndentToken:    ptr("│ "),
		},
		List: ansi.StyleList{
			LevelIndent: 2,
		},
		Item: ansi.StylePrimitive{
			BlockPrefix: "• ",
		},
		Enumeration: ansi.StylePrimitive{
			BlockPrefix: ". ",
		},
		Task: ansi.StyleTask{
			Ticked:   "[x] ",
			Unticked: "[ ] ",
		},
		HorizontalRule: ansi.StylePrimitive{
			Color:  muted,
			Format: "\n────────\n",
		},
		Emph: ansi.StylePrimitive{
			Italic: ptr(true),
		},
		Strong: ansi.StylePrimitive{
			Bold: ptr(true),
		},
		Strikethrough: ansi.StylePrimitive{
			CrossedOut: ptr(true),
		},
		Link: ansi.StylePrimitive{
			Color:     muted,
			Underline: ptr(true),
		},
		LinkText: ansi.StylePrimitive{
			Color: linkText,
			Bold:  ptr(true),
		},
		Table: ansi.StyleTable{
			CenterSeparator: ptr("│"),
			ColumnSeparator: ptr("│"),
			RowSeparator:    ptr("─"),
		},
	}

	applyHeadingStyle(&cfg, accent)
	applyCodeStyle(&cfg, accent)
	return cfg
}

// applyHeadingStyle keeps the literal # prefixes so rendered headings line
// up with the raw markdown.
func applyHeadingStyle(cfg *ansi.StyleConfig, accent *string) {
	cfg.Heading = ansi.StyleBlock{
		StylePrimitive: ansi.StylePrimitive{
			BlockSuffix: "\n",
			Color:       accent,
			Bold:        ptr(true),
		},
	}

	levels := []*ansi.StyleBlock{&cfg.H1, &cfg.H2, &cfg.H3, &cfg.H4, &cfg.H5, &cfg.H6}
	for i, h := range levels {
		h.Prefix = strings.Repeat("#", i+1) + " "
	}
	cfg.H6.Bold = ptr(false)
}

// applyCodeStyle accents inline code, where command files carry their
// executable !`…` spans.
func applyCodeStyle(cfg *ansi.StyleConfig, accent *string) {
	cfg.Code = ansi.StyleBlock{
		StylePrimitive: ansi.StylePrimitive{
			Prefix: "`",
			Suffix: "`",
			Color:  accent,
		},
	}
	cfg.CodeBlock = ansi.StyleCodeBlock{
		StyleBlock: ansi.StyleBlock{
			Margin: ptr(uint(MarkdownRenderMargin)),
		},
	}
}

func ptr[T any](v T) *T { return &v }
