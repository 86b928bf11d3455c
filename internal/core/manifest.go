package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

const (
	manifestFileName = "package.json"

	// maxSearchDepth bounds the upward manifest search. The parent-equals-self
	// check already terminates at the filesystem root; the bound guards
	// against unusual layouts (bind-mount loops, very deep synthetic trees).
	maxSearchDepth = 64
)

// ErrManifestNotFound means the upward search exhausted the filesystem
// without finding a package.json.
var ErrManifestNotFound = errors.New("package.json not found")

// ReadManifest reads and parses the package.json at path.
// Parsing is tolerant of BOMs, comments, and trailing commas.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(std, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// FindManifest walks upward from startDir looking for a package.json.
// Module resolution can land inside a subpackage directory that has no
// manifest of its own; the upward walk recovers the owning package root.
// Returns the parsed manifest and the path it was read from.
func FindManifest(startDir string) (*Manifest, string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, "", fmt.Errorf("resolving search root: %w", err)
	}

	for i := 0; i < maxSearchDepth; i++ {
		path := filepath.Join(dir, manifestFileName)
		if _, err := os.Stat(path); err == nil {
			m, err := ReadManifest(path)
			if err != nil {
				return nil, "", err
			}
			return m, path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // filesystem root
		}
		dir = parent
	}

	return nil, "", fmt.Errorf("searching upward from %s: %w", startDir, ErrManifestNotFound)
}
