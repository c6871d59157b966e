package slash

// defaultDef is one row of the built-in command table. Columns: id,
// name, invocation, content, description, accepts arguments.
type defaultDef struct {
	id          string
	name        string
	invocation  string
	content     string
	description string
	acceptsArgs bool
}

// The built-in commands the assistant understands natively. Existing
// callers key off these exact ids and invocations; edit with care and
// keep the order stable.
var defaultDefs = []defaultDef{
	{"default-add-dir", "add-dir", "/add-dir", "Add additional working directories", "Add additional working directories to the current session", false},
	{"default-init", "init", "/init", "Initialize project with CLAUDE.md guide", "Initialize project with CLAUDE.md guide and setup files", false},
	{"default-review", "review", "/review", "Request code review", "Request a comprehensive code review of recent changes", false},
	{"default-commit", "commit", "/commit", "Create a git commit", "Create a git commit with staged changes and a descriptive message", false},
	{"default-review-pr", "review-pr", "/review-pr", "Review a pull request", "Review a GitHub pull request and provide feedback", true},
	{"default-pr", "pr", "/pr", "Create a pull request", "Create a GitHub pull request from the current branch", false},
	{"default-test", "test", "/test", "Run tests", "Run the project's test suite and analyze results", false},
	{"default-fix", "fix", "/fix", "Fix errors or issues", "Analyze and fix errors, bugs, or issues in the code", false},
	{"default-debug", "debug", "/debug", "Debug an issue", "Help debug and diagnose issues in the code", false},
	{"default-explain", "explain", "/explain", "Explain code or concepts", "Explain how code works or clarify technical concepts", false},
	{"default-refactor", "refactor", "/refactor", "Refactor code", "Refactor code to improve structure, readability, or performance", false},
	{"default-optimize", "optimize", "/optimize", "Optimize code performance", "Optimize code for better performance and efficiency", false},
	{"default-docs", "docs", "/docs", "Generate documentation", "Generate or update code documentation and comments", false},
	{"default-security", "security", "/security", "Security audit", "Perform a security audit and identify vulnerabilities", false},
	{"default-remember", "remember", "/remember", "Remember information", "Store information for future reference in the session", true},
	{"default-model", "model", "/model", "Switch AI model", "Switch between different Claude AI models", false},
	{"default-clear", "clear", "/clear", "Clear conversation", "Clear the current conversation history", false},
	{"default-help", "help", "/help", "Show help information", "Display help information and available commands", false},
	{"default-usage", "usage", "/usage", "Show usage statistics", "Display API usage statistics and costs", false},
	{"default-settings", "settings", "/settings", "Open settings", "Open and manage Claude Code settings", false},
	{"default-agents", "agents", "/agents", "Manage custom AI subagents", "Manage custom AI subagents for specialized tasks", false},
	{"default-bashes", "bashes", "/bashes", "List and manage background tasks", "List and manage background bash tasks", false},
	{"default-bug", "bug", "/bug", "Report bugs", "Report bugs (sends conversation to Anthropic)", false},
	{"default-compact", "compact", "/compact", "Compact conversation", "Compact conversation with optional focus instructions", true},
	{"default-config", "config", "/config", "Open settings interface", "Open the Settings interface (Config tab). Type to search and filter settings", false},
	{"default-context", "context", "/context", "Visualize context usage", "Visualize current context usage as a colored grid", false},
	{"default-cost", "cost", "/cost", "Show token usage statistics", "Show token usage statistics and cost tracking", false},
	{"default-doctor", "doctor", "/doctor", "Check installation health", "Checks installation health and shows update information", false},
	{"default-exit", "exit", "/exit", "Exit the REPL", "Exit the Claude Code REPL interface", false},
	{"default-export", "export", "/export", "Export conversation", "Export the current conversation to a file or clipboard", true},
	{"default-hooks", "hooks", "/hooks", "Manage hook configurations", "Manage hook configurations for tool events", false},
	{"default-ide", "ide", "/ide", "Manage IDE integrations", "Manage IDE integrations and show status", false},
	{"default-install-github-app", "install-github-app", "/install-github-app", "Set up Claude GitHub Actions", "Set up Claude GitHub Actions for a repository", false},
	{"default-login", "login", "/login", "Switch Anthropic accounts", "Switch between different Anthropic accounts", false},
	{"default-logout", "logout", "/logout", "Sign out from account", "Sign out from your Anthropic account", false},
	{"default-mcp", "mcp", "/mcp", "Manage MCP server connections", "Manage MCP server connections and OAuth authentication", false},
	{"default-memory", "memory", "/memory", "Edit CLAUDE.md memory files", "Edit CLAUDE.md memory files for project context", false},
	{"default-output-style", "output-style", "/output-style", "Set output style", "Set the output style directly or from a selection menu", true},
	{"default-permissions", "permissions", "/permissions", "View or update permissions", "View or update tool and command permissions", false},
	{"default-plan", "plan", "/plan", "Enter plan mode", "Enter plan mode directly from the prompt", false},
	{"default-plugin", "plugin", "/plugin", "Manage Claude Code plugins", "Manage and configure Claude Code plugins", false},
	{"default-pr-comments", "pr-comments", "/pr-comments", "View pull request comments", "View and manage pull request comments", false},
	{"default-privacy-settings", "privacy-settings", "/privacy-settings", "View and update privacy settings", "View and update your privacy settings", false},
	{"default-release-notes", "release-notes", "/release-notes", "View release notes", "View Claude Code release notes and changelog", false},
	{"default-rename", "rename", "/rename", "Rename current session", "Rename the current session for easier identification", true},
	{"default-remote-env", "remote-env", "/remote-env", "Configure remote session environment", "Configure remote session environment (claude.ai subscribers)", false},
	{"default-resume", "resume", "/resume", "Resume a conversation", "Resume a conversation by ID or name, or open the session picker", true},
	{"default-rewind", "rewind", "/rewind", "Rewind the conversation", "Rewind the conversation and/or code to a previous state", false},
	{"default-sandbox", "sandbox", "/sandbox", "Enable sandboxed bash tool", "Enable sandboxed bash tool with filesystem and network isolation", false},
	{"default-security-review", "security-review", "/security-review", "Complete security review", "Complete a security review of pending changes on the current branch", false},
	{"default-stats", "stats", "/stats", "Visualize usage statistics", "Visualize daily usage, session history, streaks, and model preferences", false},
	{"default-status", "status", "/status", "Open status interface", "Open the Settings interface (Status tab) showing version, model, account, and connectivity", false},
	{"default-statusline", "statusline", "/statusline", "Set up status line UI", "Set up Claude Code's status line UI configuration", false},
	{"default-teleport", "teleport", "/teleport", "Resume remote session", "Resume a remote session from claude.ai by session ID, or open a picker (claude.ai subscribers)", true},
	{"default-terminal-setup", "terminal-setup", "/terminal-setup", "Install terminal key bindings", "Install Shift+Enter key binding for newlines (VS Code, Alacritty, Zed, Warp)", false},
	{"default-theme", "theme", "/theme", "Change color theme", "Change the Claude Code color theme", false},
	{"default-todos", "todos", "/todos", "List current TODO items", "List and manage current TODO items in the session", false},
	{"default-vim", "vim", "/vim", "Enter vim mode", "Enter vim mode for alternating insert and command modes", false},
}

// DefaultCommands returns the built-in command set in table order.
// Callers receive fresh records; built-ins have no backing file.
func DefaultCommands() []Command {
	out := make([]Command, 0, len(defaultDefs))
	for _, d := range defaultDefs {
		desc := d.description
		out = append(out, Command{
			ID:               d.id,
			Name:             d.name,
			FullCommand:      d.invocation,
			Scope:            ScopeDefault,
			Content:          d.content,
			Description:      &desc,
			AllowedTools:     []string{},
			AcceptsArguments: d.acceptsArgs,
		})
	}
	return out
}
