package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TotoroFxx/claudia-backup/internal/commands"
	"github.com/TotoroFxx/claudia-backup/internal/config"
)

type globalConfigContext struct {
	cfg          *config.Config
	configPath   string
	configExists bool
}

var (
	configSetProjectPath string
	configSetEditor      string
	configSetAccent      string

	configUnsetProjectPath bool
	configUnsetEditor      bool
	configUnsetAccent      bool
)

func loadGlobalConfigContextAllowMissing() (*globalConfigContext, error) {
	resolvedPath := config.ResolveConfigPath(configPath)

	_, statErr := os.Stat(resolvedPath)
	exists := statErr == nil
	if statErr != nil && !os.IsNotExist(statErr) {
		return nil, statErr
	}

	loadedCfg := &config.Config{}
	if exists {
		var err error
		loadedCfg, err = config.LoadFrom(resolvedPath)
		if err != nil {
			return nil, err
		}
	}

	return &globalConfigContext{
		cfg:          loadedCfg,
		configPath:   resolvedPath,
		configExists: exists,
	}, nil
}

func configData(ctx *globalConfigContext) map[string]interface{} {
	return map[string]interface{}{
		"config_path":  ctx.configPath,
		"exists":       ctx.configExists,
		"project_path": strings.TrimSpace(ctx.cfg.ProjectPath),
		"editor":       strings.TrimSpace(ctx.cfg.Editor),
		"ui": map[string]interface{}{
			"accent": strings.TrimSpace(ctx.cfg.UI.Accent),
		},
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	ctx, err := loadGlobalConfigContextAllowMissing()
	if err != nil {
		return handleError(ErrConfigInvalid, err, "")
	}

	if isJSONOutput() {
		outputSuccess(configData(ctx), nil)
		return nil
	}

	if !ctx.configExists {
		fmt.Printf("Config file does not exist: %s\n", ctx.configPath)
		fmt.Println("Run 'claudia config init' to create it.")
		return nil
	}

	fmt.Printf("config: %s\n", ctx.configPath)
	if v := strings.TrimSpace(ctx.cfg.ProjectPath); v != "" {
		fmt.Printf("project_path: %s\n", v)
	}
	if v := strings.TrimSpace(ctx.cfg.Editor); v != "" {
		fmt.Printf("editor: %s\n", v)
	}
	if v := strings.TrimSpace(ctx.cfg.UI.Accent); v != "" {
		fmt.Printf("ui.accent: %s\n", v)
	}
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: commands.Registry["config"].Description,
	Long:  commands.Registry["config"].LongDesc,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: commands.Registry["config_init"].Description,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		targetPath := config.ResolveConfigPath(configPath)
		_, statErr := os.Stat(targetPath)
		existed := statErr == nil
		if statErr != nil && !os.IsNotExist(statErr) {
			return handleError(ErrFileReadError, statErr, "")
		}

		createdPath, err := config.CreateDefaultAt(targetPath)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config_path": createdPath,
				"created":     !existed,
			}, nil)
			return nil
		}

		if existed {
			fmt.Printf("Config already exists: %s\n", createdPath)
		} else {
			fmt.Printf("Created config: %s\n", createdPath)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: commands.Registry["config_set"].Description,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadGlobalConfigContextAllowMissing()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		changed := make([]string, 0, 3)

		if cmd.Flags().Changed("project-path") {
			value := strings.TrimSpace(configSetProjectPath)
			if value == "" {
				return handleErrorMsg(ErrInvalidInput, "project-path cannot be empty; use 'claudia config unset --project-path' to clear it", "")
			}
			ctx.cfg.ProjectPath = value
			changed = append(changed, "project_path")
		}

		if cmd.Flags().Changed("editor") {
			value := strings.TrimSpace(configSetEditor)
			if value == "" {
				return handleErrorMsg(ErrInvalidInput, "editor cannot be empty; use 'claudia config unset --editor' to clear it", "")
			}
			ctx.cfg.Editor = value
			changed = append(changed, "editor")
		}

		if cmd.Flags().Changed("accent") {
			value := strings.TrimSpace(configSetAccent)
			if value == "" {
				return handleErrorMsg(ErrInvalidInput, "accent cannot be empty; use 'claudia config unset --accent' to clear it", "")
			}
			ctx.cfg.UI.Accent = value
			changed = append(changed, "ui.accent")
		}

		if len(changed) == 0 {
			return handleErrorMsg(ErrMissingArgument, "no fields provided; set at least one of --project-path/--editor/--accent", "")
		}

		if err := config.SaveTo(ctx.configPath, ctx.cfg); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		ctx.configExists = true
		if isJSONOutput() {
			data := configData(ctx)
			data["changed"] = changed
			outputSuccess(data, nil)
			return nil
		}

		fmt.Printf("Updated config: %s\n", ctx.configPath)
		fmt.Printf("changed: %s\n", strings.Join(changed, ", "))
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset",
	Short: commands.Registry["config_unset"].Description,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadGlobalConfigContextAllowMissing()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		if !ctx.configExists {
			return handleErrorMsg(ErrFileReadError, fmt.Sprintf("config file not found: %s", ctx.configPath), "Run 'claudia config init' first")
		}

		changed := make([]string, 0, 3)
		if configUnsetProjectPath {
			ctx.cfg.ProjectPath = ""
			changed = append(changed, "project_path")
		}
		if configUnsetEditor {
			ctx.cfg.Editor = ""
			changed = append(changed, "editor")
		}
		if configUnsetAccent {
			ctx.cfg.UI.Accent = ""
			changed = append(changed, "ui.accent")
		}

		if len(changed) == 0 {
			return handleErrorMsg(ErrMissingArgument, "no fields selected; pass one or more unset flags", "")
		}

		if err := config.SaveTo(ctx.configPath, ctx.cfg); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			data := configData(ctx)
			data["changed"] = changed
			outputSuccess(data, nil)
			return nil
		}

		fmt.Printf("Updated config: %s\n", ctx.configPath)
		fmt.Printf("cleared: %s\n", strings.Join(changed, ", "))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current global config.toml values",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	})

	configSetCmd.Flags().StringVar(&configSetProjectPath, "project-path", "", "Set default project directory")
	configSetCmd.Flags().StringVar(&configSetEditor, "editor", "", "Set editor command")
	configSetCmd.Flags().StringVar(&configSetAccent, "accent", "", "Set UI accent color (ANSI 0-255 or #RRGGBB)")

	configUnsetCmd.Flags().BoolVar(&configUnsetProjectPath, "project-path", false, "Clear project_path")
	configUnsetCmd.Flags().BoolVar(&configUnsetEditor, "editor", false, "Clear editor")
	configUnsetCmd.Flags().BoolVar(&configUnsetAccent, "accent", false, "Clear ui.accent")

	rootCmd.AddCommand(configCmd)
}
