package cli

import (
	"bufio"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	builtindocs "github.com/TotoroFxx/claudia-backup/docs"
	"github.com/TotoroFxx/claudia-backup/internal/commands"
	"github.com/TotoroFxx/claudia-backup/internal/ui"
)

// Seams for tests; rendering goes through these so non-TTY test runs
// stay deterministic.
var (
	docsDisplayContext = ui.NewDisplayContext
	docsMarkdownRender = ui.RenderMarkdown
)

type docsTopic struct {
	ID     string `json:"id"`    // e.g. "guide/getting-started"
	Title  string `json:"title"` // first heading, or the slug
	Path   string `json:"path"`  // e.g. "docs/guide/getting-started.md"
	fsPath string
}

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: commands.Registry["docs"].Description,
	Long:  commands.Registry["docs"].LongDesc,
	Args:  cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		topics, err := listDocsTopics(builtindocs.FS)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		out := make([]string, 0, len(topics))
		for _, t := range topics {
			out = append(out, t.ID)
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		topics, err := listDocsTopics(builtindocs.FS)
		if err != nil {
			return handleError(ErrInternal, err, "Rebuild claudia so bundled docs are available")
		}

		if len(args) == 0 {
			if canUseFZFInteractive() {
				topic, ok, err := pickDocsTopicWithFZF(topics)
				if err != nil {
					return handleError(ErrInternal, err, "Run 'claudia docs' without a terminal for a plain list")
				}
				if !ok {
					return nil
				}
				return outputDocsTopicContent(topic)
			}
			return outputDocsTopicList(topics)
		}

		topic, ok := findDocsTopic(topics, args[0])
		if !ok {
			available := make([]string, 0, len(topics))
			for _, t := range topics {
				available = append(available, t.ID)
			}
			return handleErrorMsg(ErrInvalidInput,
				fmt.Sprintf("unknown docs topic: %s", args[0]),
				fmt.Sprintf("Run 'claudia docs' to list topics (available: %s)", strings.Join(available, ", ")))
		}
		return outputDocsTopicContent(topic)
	},
}

// listDocsTopics walks the bundled docs tree for markdown pages.
func listDocsTopics(docsFS fs.FS) ([]docsTopic, error) {
	var out []docsTopic
	err := fs.WalkDir(docsFS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if p != "." && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return fs.SkipDir
			}
			return nil
		}
		if path.Ext(p) != ".md" {
			return nil
		}
		id := strings.TrimSuffix(p, ".md")
		out = append(out, docsTopic{
			ID:     id,
			Title:  extractDocsTitle(docsFS, p, path.Base(id)),
			Path:   path.Join("docs", p),
			fsPath: p,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no documentation topics bundled")
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// findDocsTopic matches a topic by full id or bare page name. A
// trailing .md is tolerated.
func findDocsTopic(topics []docsTopic, raw string) (docsTopic, bool) {
	needle := strings.Trim(strings.TrimSuffix(strings.TrimSpace(raw), ".md"), "/")
	for _, t := range topics {
		if t.ID == needle {
			return t, true
		}
	}
	for _, t := range topics {
		if path.Base(t.ID) == needle {
			return t, true
		}
	}
	return docsTopic{}, false
}

func outputDocsTopicList(topics []docsTopic) error {
	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"topics": topics,
		}, &Meta{Count: len(topics)})
		return nil
	}

	fmt.Println("Documentation topics:")
	for _, t := range topics {
		topicCommand := fmt.Sprintf("claudia docs %s", t.ID)
		fmt.Printf("  %-40s %s\n", topicCommand, t.Title)
	}
	fmt.Println()
	fmt.Println("For command docs, use: claudia help <command>")
	return nil
}

func outputDocsTopicContent(topic docsTopic) error {
	content, err := fs.ReadFile(builtindocs.FS, topic.fsPath)
	if err != nil {
		return handleError(ErrFileReadError, err, "")
	}

	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"topic":   topic.ID,
			"title":   topic.Title,
			"path":    topic.Path,
			"content": string(content),
		}, nil)
		return nil
	}

	rendered := string(content)
	display := docsDisplayContext()
	if display.IsTTY {
		if r, renderErr := docsMarkdownRender(string(content), display.TermWidth); renderErr == nil {
			rendered = r
		}
	}

	fmt.Printf("Path: %s\n\n", topic.Path)
	fmt.Print(rendered)
	if !strings.HasSuffix(rendered, "\n") {
		fmt.Println()
	}
	return nil
}

func pickDocsTopicWithFZF(topics []docsTopic) (docsTopic, bool, error) {
	lines := make([]string, 0, len(topics))
	for _, t := range topics {
		lines = append(lines, fmt.Sprintf("%s\t%s\t%s", t.ID, t.ID, t.Title))
	}

	selectedLine, selected, err := runFZFPicker(lines, fzfPickerOptions{
		Prompt:    "docs> ",
		Header:    "Select a docs topic (Esc to cancel)",
		Delimiter: "\t",
		WithNth:   "2..",
	})
	if err != nil || !selected {
		return docsTopic{}, false, err
	}

	id := strings.TrimSpace(strings.SplitN(selectedLine, "\t", 2)[0])
	topic, ok := findDocsTopic(topics, id)
	if !ok {
		return docsTopic{}, false, fmt.Errorf("selected unknown docs topic %q", id)
	}
	return topic, true, nil
}

// extractDocsTitle reads the first "# " heading, falling back to a
// title-cased slug.
func extractDocsTitle(docsFS fs.FS, docsPath, fallbackSlug string) string {
	f, err := docsFS.Open(docsPath)
	if err != nil {
		return titleFromSlug(fallbackSlug)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "# ") {
			if title := strings.TrimSpace(strings.TrimPrefix(line, "# ")); title != "" {
				return title
			}
		}
	}
	return titleFromSlug(fallbackSlug)
}

func titleFromSlug(slug string) string {
	parts := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(parts) == 0 {
		return slug
	}
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
