package codegen

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"

	"github.com/abyssparanoia/blender-go/internal/ir"
)

// DefaultModule is the import path generated code depends on.
const DefaultModule = "github.com/abyssparanoia/blender-go"

// Package directories under the output root.
const (
	TypesPackage = "types"
	OpsPackage   = "ops"
)

// File is one generated source file. Path is slash-separated and relative
// to the output root, e.g. "types/node.go".
type File struct {
	Path    string
	Content []byte
}

// Generator renders proxies for compiled classes.
type Generator struct {
	module string
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithModule sets the import path of the interop and collection packages.
func WithModule(module string) Option {
	return func(g *Generator) {
		g.module = module
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{module: DefaultModule, logger: slog.Default()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type job struct {
	path string
	tmpl string
	data any
}

// Generate renders one file per class, plus doc.go and enums.go per
// package. Classes should already pass schema.Validate. Files render
// concurrently and come back sorted by path.
func (g *Generator) Generate(ctx context.Context, classes []ir.ClassSpec) ([]File, error) {
	var types, ops []ir.ClassSpec
	for _, c := range classes {
		if c.IsOperator() {
			ops = append(ops, c)
		} else {
			types = append(types, c)
		}
	}

	var jobs []job
	for _, pkg := range []struct {
		name    string
		classes []ir.ClassSpec
	}{
		{TypesPackage, types},
		{OpsPackage, ops},
	} {
		if len(pkg.classes) == 0 {
			continue
		}
		pj, err := g.plan(pkg.name, pkg.classes)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, pj...)
	}

	files := make([]File, len(jobs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, j := range jobs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := render(j)
			if err != nil {
				return err
			}
			files[i] = File{Path: j.path, Content: src}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(files, func(a, b File) int { return strings.Compare(a.Path, b.Path) })
	g.logger.Debug("generated", "files", len(files), "classes", len(classes))
	return files, nil
}

// plan assigns names for one package and lists its files.
func (g *Generator) plan(pkg string, classes []ir.ClassSpec) ([]job, error) {
	p := newPlanner(g.module, pkg, classes)

	jobs := []job{{
		path: path.Join(pkg, "doc.go"),
		tmpl: "doc.go",
		data: packageView{Module: g.module, Package: pkg, Count: len(classes), Version: ir.GeneratorVersion},
	}}
	if len(p.views) > 0 {
		jobs = append(jobs, job{
			path: path.Join(pkg, "enums.go"),
			tmpl: "enums",
			data: packageView{Module: g.module, Package: pkg, Enums: p.views},
		})
	}

	seen := map[string]string{"doc.go": "", "enums.go": ""}
	for _, c := range classes {
		cv, err := p.classView(c)
		if err != nil {
			return nil, err
		}
		file := FileName(cv.Name)
		for {
			if _, taken := seen[file]; !taken {
				break
			}
			file = strings.TrimSuffix(file, ".go") + "_.go"
		}
		seen[file] = c.Name
		jobs = append(jobs, job{path: path.Join(pkg, file), tmpl: "class", data: cv})
	}
	return jobs, nil
}

// render executes a template and formats the result with goimports, which
// also drops imports the file does not use.
func render(j job) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, j.tmpl, j.data); err != nil {
		return nil, fmt.Errorf("render %s: %w", j.path, err)
	}
	src, err := imports.Process(j.path, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w\n%s", j.path, err, buf.Bytes())
	}
	return src, nil
}

// Write stores files under dir in path order. Generated files left in the
// package directories by an earlier run that are not part of files are
// removed first; hand-written files and tests are kept.
func Write(dir string, files []File) error {
	keep := make(map[string]bool, len(files))
	for _, f := range files {
		keep[filepath.Join(dir, filepath.FromSlash(f.Path))] = true
	}
	for _, pkg := range []string{TypesPackage, OpsPackage} {
		if err := removeStale(filepath.Join(dir, pkg), keep); err != nil {
			return err
		}
	}

	for _, f := range files {
		target := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(target), err)
		}
		if err := os.WriteFile(target, f.Content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
	}
	return nil
}

// removeStale deletes generated Go files in pkgDir that keep does not list.
func removeStale(pkgDir string, keep map[string]bool) error {
	entries, err := os.ReadDir(pkgDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", pkgDir, err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".go" || strings.HasSuffix(name, "_test.go") {
			continue
		}
		target := filepath.Join(pkgDir, name)
		if keep[target] {
			continue
		}
		generated, err := isGenerated(target)
		if err != nil {
			return err
		}
		if !generated {
			continue
		}
		if err := os.Remove(target); err != nil {
			return fmt.Errorf("remove stale %s: %w", target, err)
		}
	}
	return nil
}

// isGenerated reports whether the file at path starts with Header.
func isGenerated(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	return strings.TrimRight(line, "\r\n") == Header, nil
}
