package core

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Installer is the external package-manager surface the setup run drives.
// NPM is the real implementation; tests substitute a recording fake.
type Installer interface {
	// InstallPackage installs a single library as a production dependency,
	// defaulting to the latest version when the request pins none.
	InstallPackage(request string) error
	// InstallDev installs refs as development dependencies. Empty refs is a no-op.
	InstallDev(refs []string) error
	// InstallProd installs refs as production dependencies. Empty refs is a no-op.
	InstallProd(refs []string) error
	// InstallAll reconciles the dependency tree against the manifest.
	InstallAll() error
}

// NPM invokes the npm CLI. Invocations are synchronous and inherit the
// process's standard streams so npm's progress and errors reach the
// operator in real time.
type NPM struct {
	Command []string // binary plus leading args; e.g. ["npm"] or ["pnpm"]
	Dir     string   // working directory for invocations
}

// NewNPM creates an NPM invoker running command (default "npm") in dir.
func NewNPM(dir string, command ...string) *NPM {
	if len(command) == 0 {
		command = []string{"npm"}
	}
	return &NPM{Command: command, Dir: dir}
}

// InstallError is a structured error for a failed installer invocation.
type InstallError struct {
	Command  string // the full command line that was run (for display)
	ExitCode int    // installer exit code, or -1 if it failed to start
	Err      error  // underlying exec error
}

// Error implements the error interface.
func (e *InstallError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%s: exit status %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

// Unwrap returns the underlying exec error.
func (e *InstallError) Unwrap() error { return e.Err }

// IsInstallError checks whether an error is (or wraps) an *InstallError.
func IsInstallError(err error) (*InstallError, bool) {
	for err != nil {
		if ie, ok := err.(*InstallError); ok {
			return ie, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return nil, false
}

// InstallPackage runs `npm install --save <request>`, appending @latest
// when the request carries no explicit version.
func (n *NPM) InstallPackage(request string) error {
	if !HasExplicitVersion(request) {
		request += "@latest"
	}
	return n.run("install", "--save", request)
}

// InstallDev runs `npm install --save-dev <refs...>`. An invocation with
// zero targets is skipped entirely.
func (n *NPM) InstallDev(refs []string) error {
	if len(refs) == 0 {
		return nil
	}
	return n.run(append([]string{"install", "--save-dev"}, refs...)...)
}

// InstallProd runs `npm install --save <refs...>`. An invocation with
// zero targets is skipped entirely.
func (n *NPM) InstallProd(refs []string) error {
	if len(refs) == 0 {
		return nil
	}
	return n.run(append([]string{"install", "--save"}, refs...)...)
}

// InstallAll runs a bare `npm install`.
func (n *NPM) InstallAll() error {
	return n.run("install")
}

func (n *NPM) run(args ...string) error {
	argv := append(append([]string{}, n.Command[1:]...), args...)
	cmd := exec.Command(n.Command[0], argv...)
	cmd.Dir = n.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if ee, ok := err.(*exec.ExitError); ok {
			exitCode = ee.ExitCode()
		}
		return &InstallError{
			Command:  strings.Join(append([]string{n.Command[0]}, argv...), " "),
			ExitCode: exitCode,
			Err:      err,
		}
	}
	return nil
}
