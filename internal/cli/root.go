// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TotoroFxx/claudia-backup/internal/config"
	"github.com/TotoroFxx/claudia-backup/internal/paths"
	"github.com/TotoroFxx/claudia-backup/internal/ui"
)

var (
	// Global flags
	projectFlag string
	configPath  string

	// Resolved values
	resolvedProjectPath string
	resolvedConfigPath  string
	cfg                 *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "claudia",
	Short: "Claudia - slash command manager",
	Long: `Claudia manages the slash commands of an interactive assistant:
markdown files with optional YAML frontmatter, discovered from a
built-in set, a per-project directory (<project>/.claude/commands),
and a per-user directory (~/.claude/commands).

Use it to inspect, create, update, and remove commands from the shell.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config/project resolution for commands that don't need it.
		// The config group manages the config file itself and must work
		// when that file is missing or broken.
		switch cmd.Name() {
		case "version", "completion", "help", "config":
			return nil
		}
		if cmd.Parent() != nil {
			switch cmd.Parent().Name() {
			case "completion", "config":
				return nil
			}
		}

		// Load config
		var err error
		cfg, resolvedConfigPath, err = loadGlobalConfigWithPath()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg == nil {
			cfg = &config.Config{}
		}
		ui.ConfigureTheme(cfg.UI.Accent)

		// Resolve project path: explicit flag > config project_path.
		// No project at all is fine: commands then come from the
		// built-in set and the user directory only.
		project := projectFlag
		if project == "" {
			project = cfg.ProjectPath
		}
		if project != "" {
			project = paths.ExpandHome(project)
			if _, err := os.Stat(project); os.IsNotExist(err) {
				return fmt.Errorf("project not found: %s", project)
			}
			resolvedProjectPath = project
		}

		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	syncRegistryMetadata(rootCmd)
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectFlag, "project", "p", "", "Project directory for project-scoped commands")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

// getProjectPath returns the resolved project path, empty when none is set.
func getProjectPath() string {
	return resolvedProjectPath
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	return cfg
}

// getConfigPath returns the resolved global config path.
func getConfigPath() string {
	return resolvedConfigPath
}

func loadGlobalConfigWithPath() (*config.Config, string, error) {
	resolvedPath := config.ResolveConfigPath(configPath)

	var loadedCfg *config.Config
	var err error
	if strings.TrimSpace(configPath) != "" {
		loadedCfg, err = config.LoadFrom(configPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, "", err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}

	return loadedCfg, resolvedPath, nil
}
