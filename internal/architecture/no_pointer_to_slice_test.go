package architecture_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"
)

func TestNoPointerToSliceTypes(t *testing.T) {
	fset := token.NewFileSet()

	walkGoFiles(t, func(root, path string) error {
		if strings.HasSuffix(path, "_test.go") {
			return nil
		}
		file, err := parser.ParseFile(fset, path, nil, 0)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		found := false
		ast.Inspect(file, func(n ast.Node) bool {
			star, ok := n.(*ast.StarExpr)
			if !ok {
				return true
			}
			arrayType, ok := star.X.(*ast.ArrayType)
			if !ok || arrayType.Len != nil {
				return true
			}
			found = true
			return false
		})
		if found {
			t.Errorf("pointer-to-slice type is forbidden: %s", rel)
		}
		return nil
	})
}

// Keyword nodes run on the validation hot path and must not log.
func TestKeywordNodesDoNotLog(t *testing.T) {
	fset := token.NewFileSet()

	walkGoFiles(t, func(root, path string) error {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if filepath.ToSlash(filepath.Dir(rel)) != "internal/keyword" {
			return nil
		}
		node, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		for _, imp := range node.Imports {
			switch strings.Trim(imp.Path.Value, `"`) {
			case "log", "log/slog", "github.com/jensneuse/abstractlogger", "go.uber.org/zap":
				t.Errorf("%s imports logger %s", rel, imp.Path.Value)
			}
		}
		return nil
	})
}
