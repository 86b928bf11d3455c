package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNodeModulesResolver_InHostDir(t *testing.T) {
	host := t.TempDir()
	pkgDir := filepath.Join(host, "node_modules", "foo")
	if err := os.MkdirAll(pkgDir, 0o755); err != nil {
		t.Fatal(err)
	}

	resolve := NodeModulesResolver(host)
	got, err := resolve("foo")
	if err != nil {
		t.Fatalf("resolve(foo) error: %v", err)
	}
	if got != pkgDir {
		t.Errorf("resolve(foo) = %q, want %q", got, pkgDir)
	}
}

func TestNodeModulesResolver_WalksAncestors(t *testing.T) {
	root := t.TempDir()
	pkgDir := filepath.Join(root, "node_modules", "@scope", "bar")
	if err := os.MkdirAll(pkgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	host := filepath.Join(root, "apps", "web")
	if err := os.MkdirAll(host, 0o755); err != nil {
		t.Fatal(err)
	}

	resolve := NodeModulesResolver(host)
	got, err := resolve("@scope/bar")
	if err != nil {
		t.Fatalf("resolve(@scope/bar) error: %v", err)
	}
	if got != pkgDir {
		t.Errorf("resolve(@scope/bar) = %q, want %q", got, pkgDir)
	}
}

func TestNodeModulesResolver_NotInstalled(t *testing.T) {
	resolve := NodeModulesResolver(t.TempDir())
	if _, err := resolve("missing"); err == nil {
		t.Error("resolve(missing): expected error")
	}
}
