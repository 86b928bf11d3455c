package core

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolver maps a package name to the directory it is installed in.
// It is injectable so the core stays testable without a real node_modules tree.
type Resolver func(name string) (string, error)

// NodeModulesResolver returns a Resolver that probes node_modules/<name>
// in hostDir and each of its ancestors, mirroring where the module system
// would find the package.
func NodeModulesResolver(hostDir string) Resolver {
	return func(name string) (string, error) {
		dir, err := filepath.Abs(hostDir)
		if err != nil {
			return "", fmt.Errorf("resolving host directory: %w", err)
		}

		for i := 0; i < maxSearchDepth; i++ {
			candidate := filepath.Join(dir, "node_modules", name)
			if info, err := os.Stat(candidate); err == nil && info.IsDir() {
				return candidate, nil
			}

			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}

		return "", fmt.Errorf("package %q not found in any node_modules from %s", name, hostDir)
	}
}
