package domain_test

import (
	"bufio"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// packageImports returns the module-internal imports of every non-test package
// under internal/ and cmd/, keyed by import path
func packageImports(t *testing.T) (string, map[string][]string) {
	t.Helper()
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	module := modulePath(t, filepath.Join(root, "go.mod"))
	graph := make(map[string][]string)

	for _, dir := range []string{"internal", "cmd"} {
		err := filepath.WalkDir(filepath.Join(root, dir), func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
				return nil
			}

			file, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.ImportsOnly)
			if err != nil {
				return err
			}

			rel, err := filepath.Rel(root, filepath.Dir(path))
			if err != nil {
				return err
			}
			pkg := module + "/" + filepath.ToSlash(rel)
			if _, ok := graph[pkg]; !ok {
				graph[pkg] = nil
			}

			for _, spec := range file.Imports {
				imported, err := strconv.Unquote(spec.Path.Value)
				if err != nil {
					return err
				}
				if strings.HasPrefix(imported, module+"/") {
					graph[pkg] = append(graph[pkg], imported)
				}
			}
			return nil
		})
		require.NoError(t, err)
	}

	return module, graph
}

func modulePath(t *testing.T, goMod string) string {
	t.Helper()
	file, err := os.Open(goMod)
	require.NoError(t, err)
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); strings.HasPrefix(line, "module ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "module "))
		}
	}
	t.Fatalf("module directive not found in %s", goMod)
	return ""
}

func TestInternalPackages_NoImportCycles(t *testing.T) {
	_, graph := packageImports(t)
	require.NotEmpty(t, graph)

	const (
		unvisited = iota
		inProgress
		done
	)
	state := make(map[string]int, len(graph))
	var stack []string

	var visit func(pkg string)
	visit = func(pkg string) {
		state[pkg] = inProgress
		stack = append(stack, pkg)
		for _, dep := range graph[pkg] {
			switch state[dep] {
			case inProgress:
				start := 0
				for i, p := range stack {
					if p == dep {
						start = i
						break
					}
				}
				cycle := append(append([]string{}, stack[start:]...), dep)
				t.Fatalf("import cycle: %s", strings.Join(cycle, " -> "))
			case unvisited:
				visit(dep)
			}
		}
		stack = stack[:len(stack)-1]
		state[pkg] = done
	}

	for pkg := range graph {
		if state[pkg] == unvisited {
			visit(pkg)
		}
	}
}

func TestDomain_ImportsOnlyLeafPackages(t *testing.T) {
	module, graph := packageImports(t)

	allowed := map[string]bool{module + "/internal/pkg/geo": true}
	for _, imported := range graph[module+"/internal/domain"] {
		require.True(t, allowed[imported], "domain must not import %s", imported)
	}
	require.Empty(t, graph[module+"/internal/pkg/geo"], "geo must not import internal packages")
}
