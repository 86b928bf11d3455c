// Package core implements the dependency-alignment logic for topcoder-lib-setup.
// It has zero UI dependencies and is independently testable.
package core

// Manifest is the subset of a package.json this tool cares about.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// RunOptions configures a setup run.
type RunOptions struct {
	Libraries      []string // libraries to install/align; empty = DefaultLibrary
	DefaultLibrary string   // used when Libraries is empty
	JustFixDeps    bool     // skip the initial install of each library
}

// RunResult summarizes what a run asked the installer to do.
type RunResult struct {
	Libraries []LibraryResult
}

// LibraryResult is the outcome for one requested library.
type LibraryResult struct {
	Library  string   // the request string as given (possibly without version)
	Manifest string   // path of the library manifest that was used
	DevRefs  []string // dev-dependency targets passed to the installer
	ProdRefs []string // prod-dependency targets passed to the installer
}
