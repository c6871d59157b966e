package parser

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Markers lists the dynamic-content spans in a command body: inline bash
// executions (!`...`) and @file references. Both are collected from
// prose only, so fenced or inline code examples never count as live
// markers.
type Markers struct {
	BashCommands   []string
	FileReferences []string
}

// fileRefRegex matches @path tokens. The boundary group keeps email
// addresses and mid-word @s from matching.
var fileRefRegex = regexp.MustCompile(`(?:^|[\s\-*(])@([\w~][\w./~-]*)`)

// ExtractMarkers parses body as markdown and collects marker spans in
// document order, deduplicated.
func ExtractMarkers(body string) Markers {
	var m Markers

	source := []byte(body)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	seenBash := make(map[string]struct{})
	seenRef := make(map[string]struct{})

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			return ast.WalkSkipChildren, nil
		case *ast.CodeSpan:
			if precededByBang(node, source) {
				cmd := codeSpanText(node, source)
				if _, dup := seenBash[cmd]; cmd != "" && !dup {
					seenBash[cmd] = struct{}{}
					m.BashCommands = append(m.BashCommands, cmd)
				}
			}
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			for _, match := range fileRefRegex.FindAllStringSubmatch(string(node.Segment.Value(source)), -1) {
				ref := match[1]
				if _, dup := seenRef[ref]; !dup {
					seenRef[ref] = struct{}{}
					m.FileReferences = append(m.FileReferences, ref)
				}
			}
		}

		return ast.WalkContinue, nil
	})

	return m
}

// precededByBang reports whether the text immediately before a code span
// ends with '!', which marks the span as an inline bash execution.
func precededByBang(span *ast.CodeSpan, source []byte) bool {
	prev, ok := span.PreviousSibling().(*ast.Text)
	if !ok {
		return false
	}
	seg := prev.Segment.Value(source)
	return len(seg) > 0 && seg[len(seg)-1] == '!'
}

func codeSpanText(span *ast.CodeSpan, source []byte) string {
	var b strings.Builder
	for child := span.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
		}
	}
	return strings.TrimSpace(b.String())
}
