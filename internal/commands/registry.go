// Package commands provides a central registry of claudia CLI commands.
// This registry is the single source of truth for command metadata,
// used for help text, docs, and CLI/registry parity checks.
package commands

// Meta defines metadata for a CLI command.
type Meta struct {
	Name        string     // Command name (e.g., "list", "save")
	Description string     // Short description
	LongDesc    string     // Long description (for --help)
	Args        []ArgMeta  // Positional arguments
	Flags       []FlagMeta // Command flags
	Examples    []string   // Usage examples
}

// ArgMeta defines a positional argument.
type ArgMeta struct {
	Name        string   // Argument name
	Description string   // Description
	Required    bool     // Is this argument required?
	Completions []string // Static completions (if any)
}

// FlagMeta defines a command flag.
type FlagMeta struct {
	Name        string   // Flag name (e.g., "scope", "tool")
	Short       string   // Short flag (e.g., "y" for -y)
	Description string   // Description
	Type        FlagType // Type of flag
	Default     string   // Default value
	Examples    []string // Example values
}

// FlagType represents the type of a flag.
type FlagType string

const (
	FlagTypeString      FlagType = "string"
	FlagTypeBool        FlagType = "bool"
	FlagTypeInt         FlagType = "int"
	FlagTypeStringSlice FlagType = "stringSlice" // For repeatable string flags
)

// Registry holds all registered commands.
var Registry = map[string]Meta{
	"list": {
		Name:        "list",
		Description: "List all slash commands",
		LongDesc: `List every slash command visible from the current context.

Three sources merge into one listing, in order: the built-in command set,
project commands (<project>/.claude/commands, only when a project is set),
and user commands (~/.claude/commands, honoring CLAUDE_CONFIG_DIR).

Files that fail to load are reported as warnings and never abort the
listing.`,
		Flags: []FlagMeta{
			{Name: "scope", Description: "Filter by scope (project, user, default)", Type: FlagTypeString, Examples: []string{"user", "project"}},
			{Name: "pipe", Description: "Force pipe-friendly tab-separated output", Type: FlagTypeBool},
			{Name: "no-pipe", Description: "Force human-readable table output", Type: FlagTypeBool},
		},
		Examples: []string{
			"claudia list",
			"claudia list --scope user",
			"claudia list --project ~/work/myapp --json",
		},
	},
	"show": {
		Name:        "show",
		Description: "Show a slash command in detail",
		LongDesc: `Show one slash command: metadata, allowed tools, detected markers
(@file references and ` + "!`cmd`" + ` shell spans), and the markdown body.

The reference can be a full command id, an invocation like /git:commit,
or a plain name. The body renders as markdown on a terminal; use --raw
or pipe the output to get the exact file content.`,
		Args: []ArgMeta{
			{Name: "ref", Description: "Command id, invocation, or name", Required: true},
		},
		Flags: []FlagMeta{
			{Name: "raw", Description: "Print the raw markdown body without rendering", Type: FlagTypeBool},
			{Name: "no-links", Description: "Disable clickable hyperlinks in terminal output", Type: FlagTypeBool},
		},
		Examples: []string{
			"claudia show /git:commit",
			"claudia show review-pr --raw",
			"claudia show user-commands-opt.md --json",
		},
	},
	"save": {
		Name:        "save",
		Description: "Create or update a slash command",
		LongDesc: `Write a slash command file under the project or user commands
directory. Namespace segments (colon separated) become nested
directories; the file is written atomically and reloaded so the
response reflects exactly what landed on disk.

The body comes from --content, or from stdin when --content is not
given and input is piped.`,
		Args: []ArgMeta{
			{Name: "scope", Description: "Where to store the command (project or user)", Required: true, Completions: []string{"project", "user"}},
			{Name: "name", Description: "Command name (filename without .md)", Required: true},
		},
		Flags: []FlagMeta{
			{Name: "namespace", Short: "n", Description: "Namespace path, colon separated (e.g. git:hooks)", Type: FlagTypeString, Examples: []string{"git", "git:hooks"}},
			{Name: "description", Short: "d", Description: "Description stored in frontmatter", Type: FlagTypeString},
			{Name: "tool", Description: "Allowed tool, repeatable (stored as allowed-tools)", Type: FlagTypeStringSlice, Examples: []string{"Bash(git add:*)", "Read"}},
			{Name: "content", Description: "Markdown body (reads stdin when omitted and piped)", Type: FlagTypeString},
		},
		Examples: []string{
			`claudia save user optimize --description "Tighten a function" --content "Optimize: $ARGUMENTS"`,
			`claudia save project commit --namespace git --tool "Bash(git commit:*)" --content "Commit staged changes"`,
			`echo "Review $ARGUMENTS" | claudia save user review`,
		},
	},
	"delete": {
		Name:        "delete",
		Description: "Delete a slash command file",
		LongDesc: `Delete the file backing a project or user slash command, then prune
any directories the removal left empty, stopping at the commands root.
Built-in commands have no backing file and cannot be deleted.

Prompts for confirmation on a terminal; pass --yes to skip.`,
		Args: []ArgMeta{
			{Name: "ref", Description: "Command id, invocation, or name", Required: true},
		},
		Flags: []FlagMeta{
			{Name: "yes", Short: "y", Description: "Skip confirmation prompt", Type: FlagTypeBool},
		},
		Examples: []string{
			"claudia delete /git:commit --yes",
			"claudia delete user-commands-opt.md --json",
		},
	},
	"edit": {
		Name:        "edit",
		Description: "Open a slash command in your editor",
		LongDesc: `Open the file backing a slash command in the configured editor
(config 'editor', then $EDITOR). Built-in commands have no backing
file and cannot be edited.`,
		Args: []ArgMeta{
			{Name: "ref", Description: "Command id, invocation, or name", Required: true},
		},
		Flags: []FlagMeta{
			{Name: "editor", Description: "Editor command to use for this invocation", Type: FlagTypeString, Examples: []string{"nvim", "code --wait"}},
		},
		Examples: []string{
			"claudia edit /git:commit",
			"claudia edit optimize --editor nvim",
		},
	},
	"namespaces": {
		Name:        "namespaces",
		Description: "List command namespaces with counts",
		LongDesc: `List the distinct namespaces of project and user commands with the
number of commands in each. Commands directly in a commands root count
under the empty namespace; built-ins are excluded.`,
		Examples: []string{
			"claudia namespaces",
			"claudia namespaces --json",
		},
	},
	"config": {
		Name:        "config",
		Description: "Manage global claudia config.toml settings",
		LongDesc: `Show, initialize, and edit the machine-level configuration at
~/.config/claudia/config.toml.`,
		Examples: []string{
			"claudia config",
			"claudia config init",
			"claudia config set --project-path ~/work/myapp",
		},
	},
	"config_init": {
		Name:        "init",
		Description: "Create default global config.toml if missing",
		Examples: []string{
			"claudia config init",
		},
	},
	"config_set": {
		Name:        "set",
		Description: "Set one or more global config.toml fields",
		Flags: []FlagMeta{
			{Name: "project-path", Description: "Set default project directory", Type: FlagTypeString, Examples: []string{"~/work/myapp"}},
			{Name: "editor", Description: "Set editor command", Type: FlagTypeString, Examples: []string{"nvim"}},
			{Name: "accent", Description: "Set UI accent color (ANSI 0-255 or #RRGGBB)", Type: FlagTypeString, Examples: []string{"39", "#7aa2f7"}},
		},
		Examples: []string{
			"claudia config set --project-path ~/work/myapp",
			"claudia config set --editor nvim --accent 39",
		},
	},
	"config_unset": {
		Name:        "unset",
		Description: "Clear one or more global config.toml fields",
		Flags: []FlagMeta{
			{Name: "project-path", Description: "Clear project_path", Type: FlagTypeBool},
			{Name: "editor", Description: "Clear editor", Type: FlagTypeBool},
			{Name: "accent", Description: "Clear ui.accent", Type: FlagTypeBool},
		},
		Examples: []string{
			"claudia config unset --project-path",
		},
	},
	"docs": {
		Name:        "docs",
		Description: "Browse bundled documentation",
		LongDesc: `Browse the reference pages bundled with the claudia binary.

Without a topic, lists available pages (or opens an interactive picker
when fzf is installed). With a topic, renders that page.`,
		Args: []ArgMeta{
			{Name: "topic", Description: "Documentation topic to show", Required: false},
		},
		Examples: []string{
			"claudia docs",
			"claudia docs file-format",
		},
	},
	"version": {
		Name:        "version",
		Description: "Show claudia version and build information",
		Examples: []string{
			"claudia version",
			"claudia version --json",
		},
	},
}
