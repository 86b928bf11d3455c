package core

import (
	"sort"
	"strings"
)

// uriPrefixes are version specs that are already fetchable references.
// An optional "git+" prefix is allowed before the scheme.
var uriPrefixes = []string{"file://", "https://"}

// TargetRef translates a manifest dependency entry into an installable
// package reference. URI specs pass through unchanged; caret/tilde ranges
// are downgraded to an exact install of the range floor.
func TargetRef(name, spec string) string {
	if isURISpec(spec) {
		return spec
	}
	if strings.HasPrefix(spec, "^") || strings.HasPrefix(spec, "~") {
		return name + "@" + spec[1:]
	}
	return name + "@" + spec
}

func isURISpec(spec string) bool {
	spec = strings.TrimPrefix(spec, "git+")
	for _, p := range uriPrefixes {
		if strings.HasPrefix(spec, p) {
			return true
		}
	}
	return false
}

// AdoptDevDependencies returns install targets for every devDependency the
// library declares, independent of what the host currently has. A consumer
// that builds or tests with the library's tooling needs the same toolchain
// versions.
func AdoptDevDependencies(library *Manifest) []string {
	return targetRefs(library.DevDependencies, nil, false)
}

// AlignProdDependencies returns install targets for the library's
// dependencies that the host already declares as dependencies. Dependencies
// the host never opted into are not introduced; a host that has the package
// only as a devDependency is left alone.
func AlignProdDependencies(library, host *Manifest) []string {
	return targetRefs(library.Dependencies, host.Dependencies, true)
}

// targetRefs translates deps into install targets. With filtered set, only
// names present in filter are kept; a nil filter map then excludes
// everything, which is what a host without the category declared means.
// Output is sorted by package name so repeated runs issue identical
// installer commands.
func targetRefs(deps map[string]string, filter map[string]string, filtered bool) []string {
	names := make([]string, 0, len(deps))
	for name := range deps {
		if filtered {
			if _, ok := filter[name]; !ok {
				continue
			}
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var refs []string
	for _, name := range names {
		refs = append(refs, TargetRef(name, deps[name]))
	}
	return refs
}

// LibraryName strips an explicit @version suffix from a library request,
// leaving the bare package name. Scoped names keep their leading @.
func LibraryName(request string) string {
	if request == "" {
		return ""
	}
	if i := strings.Index(request[1:], "@"); i >= 0 {
		return request[:i+1]
	}
	return request
}

// HasExplicitVersion reports whether a library request already pins a
// version. The leading @ of a scoped name is not a version marker.
func HasExplicitVersion(request string) bool {
	return request != "" && strings.Contains(request[1:], "@")
}
