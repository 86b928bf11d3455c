package core

import (
	"fmt"
	"io"
)

// Setup sequences the work for a run: install each requested library, adopt
// its devDependencies, align its already-shared dependencies, then a final
// bare install to settle the tree.
type Setup struct {
	Installer Installer
	Resolve   Resolver
	HostDir   string
	Out       io.Writer // progress lines; npm output bypasses this entirely
}

// NewSetup creates a Setup driving npm in hostDir with the default resolver.
func NewSetup(hostDir string, installer Installer, out io.Writer) *Setup {
	return &Setup{
		Installer: installer,
		Resolve:   NodeModulesResolver(hostDir),
		HostDir:   hostDir,
		Out:       out,
	}
}

// Run processes each requested library in order:
// 1. Install the library itself (skipped with JustFixDeps).
// 2. Locate the library's own manifest.
// 3. Adopt its devDependencies wholesale.
// 4. Re-align dependencies the host already declares.
// A final bare install then reconciles the on-disk tree. The host manifest
// is read once up front and used as a constant snapshot for the whole run,
// even though the installs rewrite the file on disk.
func (s *Setup) Run(opts RunOptions) (*RunResult, error) {
	host, _, err := FindManifest(s.HostDir)
	if err != nil {
		return nil, fmt.Errorf("loading host manifest: %w", err)
	}

	libraries := opts.Libraries
	if len(libraries) == 0 {
		libraries = []string{opts.DefaultLibrary}
	}

	result := &RunResult{}
	for _, library := range libraries {
		lr, err := s.setupLibrary(library, host, opts.JustFixDeps)
		if err != nil {
			return nil, err
		}
		result.Libraries = append(result.Libraries, *lr)
	}

	s.printf("Running final npm install")
	if err := s.Installer.InstallAll(); err != nil {
		return nil, err
	}
	return result, nil
}

// setupLibrary handles one requested library against the host snapshot.
func (s *Setup) setupLibrary(library string, host *Manifest, justFixDeps bool) (*LibraryResult, error) {
	if !justFixDeps {
		s.printf("Installing %s", library)
		if err := s.Installer.InstallPackage(library); err != nil {
			return nil, err
		}
	}

	name := LibraryName(library)
	entryDir, err := s.Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", name, err)
	}
	manifest, path, err := FindManifest(entryDir)
	if err != nil {
		return nil, fmt.Errorf("locating manifest for %s: %w", name, err)
	}

	devRefs := AdoptDevDependencies(manifest)
	if len(devRefs) > 0 {
		s.printf("Adopting %d dev dependencies from %s", len(devRefs), name)
		if err := s.Installer.InstallDev(devRefs); err != nil {
			return nil, err
		}
	}

	prodRefs := AlignProdDependencies(manifest, host)
	if len(prodRefs) > 0 {
		s.printf("Aligning %d shared dependencies from %s", len(prodRefs), name)
		if err := s.Installer.InstallProd(prodRefs); err != nil {
			return nil, err
		}
	}

	return &LibraryResult{
		Library:  library,
		Manifest: path,
		DevRefs:  devRefs,
		ProdRefs: prodRefs,
	}, nil
}

func (s *Setup) printf(format string, args ...any) {
	if s.Out != nil {
		fmt.Fprintf(s.Out, format+"\n", args...)
	}
}
