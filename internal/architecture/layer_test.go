package architecture_test

import (
	"sort"
	"testing"
)

// allowedImports lists, per package, the module packages it may import.
// Packages absent from the map may import anything.
var allowedImports = map[string][]string{
	modulePkg("pkg/jsonvalue"):        nil,
	modulePkg("internal/jsonpointer"): nil,
	modulePkg("errors"):               {modulePkg("internal/jsonpointer")},
	modulePkg("internal/keyword"): {
		modulePkg("errors"),
		modulePkg("internal/jsonpointer"),
		modulePkg("pkg/jsonvalue"),
	},
	modulePkg("internal/compiler"): {
		modulePkg("errors"),
		modulePkg("internal/jsonpointer"),
		modulePkg("internal/keyword"),
		modulePkg("pkg/jsonvalue"),
	},
	modulePath: {
		modulePkg("errors"),
		modulePkg("internal/compiler"),
		modulePkg("internal/jsonpointer"),
		modulePkg("internal/keyword"),
		modulePkg("pkg/jsonvalue"),
	},
	modulePkg("cmd/jsonlint"): {
		modulePath,
		modulePkg("errors"),
	},
}

func TestPackageLayering(t *testing.T) {
	graph := collectPackageImports(t)
	if len(graph) == 0 {
		t.Fatal("no packages found")
	}

	for pkg, imports := range graph {
		allowed, constrained := allowedImports[pkg]
		if !constrained {
			t.Errorf("package %s has no layering rule", pkg)
			continue
		}
		allowedSet := make(map[string]struct{}, len(allowed))
		for _, a := range allowed {
			allowedSet[a] = struct{}{}
		}

		var violations []string
		for imp := range imports {
			if _, ok := allowedSet[imp]; !ok {
				violations = append(violations, imp)
			}
		}
		sort.Strings(violations)
		for _, imp := range violations {
			t.Errorf("%s must not import %s", pkg, imp)
		}
	}
}

func TestPublicPackagesDoNotImportInternal(t *testing.T) {
	graph := collectPackageImports(t)
	for _, pkg := range []string{modulePkg("pkg/jsonvalue")} {
		for imp := range graph[pkg] {
			if hasPkgPrefix(imp, modulePkg("internal")) {
				t.Errorf("public package %s imports internal package %s", pkg, imp)
			}
		}
	}
}
