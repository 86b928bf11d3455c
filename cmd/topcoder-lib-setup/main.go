package main

import (
	"fmt"
	"os"

	"github.com/narekcat/topcoder-lib-setup/cmd/topcoder-lib-setup/cmd"
	"github.com/narekcat/topcoder-lib-setup/internal/core"
	"github.com/narekcat/topcoder-lib-setup/internal/ui"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error("Error: "+err.Error()))
		os.Exit(exitCode(err))
	}
}

// exitCode propagates the installer's exit status when the run died on a
// failed npm invocation, and is 1 otherwise.
func exitCode(err error) int {
	if ie, ok := core.IsInstallError(err); ok && ie.ExitCode > 0 {
		return ie.ExitCode
	}
	return 1
}
