package cmd

import (
	"fmt"
	"os"

	"github.com/narekcat/topcoder-lib-setup/internal/core"
	"github.com/narekcat/topcoder-lib-setup/internal/ui"
	"github.com/spf13/cobra"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "topcoder-lib-setup [flags] [library...]",
	Short: "Install libraries and align the project's dependencies with them",
	Long: `topcoder-lib-setup installs one or more libraries into the current
project and aligns the project's dependencies with what each library
declares:

  - every devDependency of the library is installed at the library's
    version, so the project builds and tests with the same toolchain;
  - dependencies the project already shares with the library are
    re-installed at the library's version;
  - dependencies the project never declared are left alone.

A final ` + "`npm install`" + ` settles the dependency tree. Without arguments the
default library (` + core.DefaultLibrary + `) is set up.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSetup,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("topcoder-lib-setup %s (commit: %s, built: %s)\n", Version, Commit, Date)
	},
}

func init() {
	rootCmd.Flags().Bool("just-fix-deps", false, "Skip installing the libraries themselves, only fix dependencies")
	rootCmd.Flags().StringP("dir", "d", "", "Project directory (default: current directory)")
	rootCmd.Flags().String("npm", "", "Installer command to run (default: npm, or the rc file's setting)")
	rootCmd.AddCommand(versionCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	d, err := newDeps(cmd)
	if err != nil {
		return err
	}

	justFixDeps, _ := cmd.Flags().GetBool("just-fix-deps")

	setup := core.NewSetup(d.dir, d.installer, ui.StepWriter{W: os.Stdout})
	result, err := setup.Run(core.RunOptions{
		Libraries:      args,
		DefaultLibrary: d.config.DefaultLibrary,
		JustFixDeps:    justFixDeps,
	})
	if err != nil {
		return err
	}

	for _, lr := range result.Libraries {
		fmt.Fprintln(os.Stdout, ui.Success("Done: "+lr.Library))
		fmt.Fprintln(os.Stdout, ui.Detail(fmt.Sprintf("  manifest: %s", lr.Manifest)))
		fmt.Fprintln(os.Stdout, ui.Detail(fmt.Sprintf("  dev refs: %d, aligned refs: %d", len(lr.DevRefs), len(lr.ProdRefs))))
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
