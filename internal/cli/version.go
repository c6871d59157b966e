package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TotoroFxx/claudia-backup/internal/buildinfo"
	"github.com/TotoroFxx/claudia-backup/internal/commands"
)

const defaultModulePath = "github.com/TotoroFxx/claudia-backup"

type versionInfo struct {
	Version    string `json:"version"`
	ModulePath string `json:"module_path"`
	Commit     string `json:"commit,omitempty"`
	CommitTime string `json:"commit_time,omitempty"`
	Modified   bool   `json:"modified"`
	GoVersion  string `json:"go_version"`
	GOOS       string `json:"goos"`
	GOARCH     string `json:"goarch"`
}

var readBuildInfo = debug.ReadBuildInfo

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: commands.Registry["version"].Description,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := currentVersionInfo()

		if isJSONOutput() {
			outputSuccess(info, nil)
			return nil
		}

		fmt.Printf("claudia %s\n", info.Version)
		fmt.Printf("  module  %s\n", info.ModulePath)
		if info.Commit != "" {
			commit := info.Commit
			if info.Modified {
				commit += " (modified)"
			}
			fmt.Printf("  commit  %s\n", commit)
		}
		if info.CommitTime != "" {
			fmt.Printf("  date    %s\n", info.CommitTime)
		}
		fmt.Printf("  go      %s %s/%s\n", info.GoVersion, info.GOOS, info.GOARCH)

		return nil
	},
}

func currentVersionInfo() versionInfo {
	info := versionInfo{
		Version:    "devel",
		ModulePath: defaultModulePath,
		GoVersion:  runtime.Version(),
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
	}

	if bi, ok := readBuildInfo(); ok && bi != nil {
		applyBuildInfo(&info, bi)
	}
	applyLdflags(&info)

	return info
}

func applyBuildInfo(info *versionInfo, bi *debug.BuildInfo) {
	if bi.Main.Path != "" {
		info.ModulePath = bi.Main.Path
	}
	info.Version = normalizeVersion(bi.Main.Version)
	if bi.GoVersion != "" {
		info.GoVersion = bi.GoVersion
	}

	settings := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}

	if v := settings["GOOS"]; v != "" {
		info.GOOS = v
	}
	if v := settings["GOARCH"]; v != "" {
		info.GOARCH = v
	}
	info.Commit = settings["vcs.revision"]
	info.CommitTime = settings["vcs.time"]
	info.Modified = strings.EqualFold(settings["vcs.modified"], "true")
}

// applyLdflags fills gaps from -ldflags values, for release builds made
// outside a VCS checkout.
func applyLdflags(info *versionInfo) {
	if info.Version == "devel" && buildinfo.Version != "" {
		info.Version = normalizeVersion(buildinfo.Version)
	}
	if info.Commit == "" {
		info.Commit = buildinfo.Commit
	}
	if info.CommitTime == "" {
		info.CommitTime = buildinfo.Date
	}
}

func normalizeVersion(version string) string {
	if version == "" || version == "(devel)" {
		return "devel"
	}
	return version
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
