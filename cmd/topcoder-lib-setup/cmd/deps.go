package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/narekcat/topcoder-lib-setup/internal/core"
	"github.com/spf13/cobra"
)

// deps holds shared dependencies for the setup run.
type deps struct {
	dir       string
	config    *core.Config
	installer core.Installer
}

// newDeps resolves the project directory, loads the rc config, and builds
// the installer. Called lazily when the root command actually runs.
func newDeps(cmd *cobra.Command) (*deps, error) {
	dir, err := resolveProjectDir(cmd)
	if err != nil {
		return nil, err
	}

	cfg, err := core.LoadConfig(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	command := cfg.NPM
	if flag, _ := cmd.Flags().GetString("npm"); flag != "" {
		command = strings.Fields(flag)
	}

	return &deps{
		dir:       dir,
		config:    cfg,
		installer: core.NewNPM(dir, command...),
	}, nil
}

// resolveProjectDir resolves the --dir flag or falls back to cwd.
func resolveProjectDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if dir != "" {
		return dir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}
