// Package loader builds the program model of an Angular project from its
// tsconfig-style project file.
package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/kevinphelps/nglint/internal/base"
	"github.com/kevinphelps/nglint/pkg/fs"
	"github.com/kevinphelps/nglint/pkg/logger"
	"github.com/kevinphelps/nglint/pkg/program"
	"github.com/kevinphelps/nglint/pkg/template"
	"github.com/kevinphelps/nglint/pkg/tsscan"
	"golang.org/x/sync/errgroup"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=loader.go -destination=mockloader.gen.go -package=loader

// Loader builds programs.
type Loader interface {
	// Load reads the project file at projectPath and returns the components
	// of every selected source, sorted by file then source position.
	Load(ctx context.Context, projectPath string) (*program.Program, error)
}

// NewLoaderParams contains parameters for creating a new Loader.
type NewLoaderParams struct {
	FS     fs.FS
	Logger logger.Logger
	// Exclude is added to the exclude list of the project file.
	Exclude []string
	// Concurrency bounds parallel source parsing. Zero leaves it unbounded.
	Concurrency int
	Verbose     bool
}

type realLoader struct {
	*base.Base
	exclude     []string
	concurrency int
}

// New creates a new Loader.
func New(params NewLoaderParams) Loader {
	return &realLoader{
		Base: base.NewBase(base.NewBaseParams{
			FS:      params.FS,
			Logger:  params.Logger,
			Verbose: params.Verbose,
		}),
		exclude:     params.Exclude,
		concurrency: params.Concurrency,
	}
}

// Load implements Loader.
func (l *realLoader) Load(ctx context.Context, projectPath string) (*program.Program, error) {
	l.VerbosePrint("Loading project %s", projectPath)

	sources, err := l.sources(projectPath)
	if err != nil {
		return nil, err
	}
	l.VerbosePrint("Selected %d source files", len(sources))

	perFile := make([][]*program.Component, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	if l.concurrency > 0 {
		g.SetLimit(l.concurrency)
	}

	for i, path := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			components, err := l.loadSource(path)
			if err != nil {
				return err
			}
			perFile[i] = components
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	prog := &program.Program{}
	for _, components := range perFile {
		prog.Components = append(prog.Components, components...)
	}
	l.VerbosePrint("Found %d components", len(prog.Components))

	return prog, nil
}

// sources returns the sorted, de-duplicated sources selected by the project file.
func (l *realLoader) sources(projectPath string) ([]string, error) {
	data, err := l.FS.ReadFile(projectPath)
	if err != nil {
		if l.FS.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrProjectFileNotFound, projectPath)
		}
		return nil, fmt.Errorf("%w: %w", ErrProjectFileParse, err)
	}

	project, err := parseProjectFile(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrProjectFileParse, projectPath, err)
	}

	dir := filepath.Dir(projectPath)
	seen := make(map[string]bool)
	var candidates []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			candidates = append(candidates, path)
		}
	}

	for _, f := range project.Files {
		add(filepath.Join(dir, f))
	}
	for _, entry := range project.Include {
		matches, err := l.FS.Glob(includePattern(dir, entry))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrProjectFileParse, projectPath, err)
		}
		for _, m := range matches {
			add(m)
		}
	}

	exclude := append(append([]string{}, project.Exclude...), l.exclude...)
	var sources []string
	for _, path := range candidates {
		if !isSource(path) {
			continue
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil, err
		}
		skip, err := excluded(exclude, filepath.ToSlash(rel))
		if err != nil {
			return nil, err
		}
		if skip {
			l.VerbosePrint("Excluding %s", path)
			continue
		}
		sources = append(sources, path)
	}
	sort.Strings(sources)

	return sources, nil
}

// loadSource scans one source file and resolves the templates of its components.
func (l *realLoader) loadSource(path string) ([]*program.Component, error) {
	src, err := l.FS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceRead, path, err)
	}

	file := program.NewFile(path, src)
	decls, err := tsscan.Scan(file, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceParse, path, err)
	}

	components := make([]*program.Component, 0, len(decls))
	for _, decl := range decls {
		tmpl, err := l.template(file, decl)
		if err != nil {
			return nil, err
		}

		if decl.UnresolvedTemplate {
			l.VerbosePrint("Component %s in %s has a template that is not a string literal, treating it as empty", decl.Class.Name, path)
		}
		if decl.Selector == "" {
			l.VerbosePrint("Component %s in %s has no literal selector", decl.Class.Name, path)
		}
		components = append(components, &program.Component{
			Selector: decl.Selector,
			Class:    decl.Class,
			Template: tmpl,
		})
	}

	return components, nil
}

// template parses the inline template of decl, or the file its templateUrl
// points to, relative to the component source. It returns nil when the
// component declares neither.
func (l *realLoader) template(file *program.File, decl *tsscan.ComponentDecl) (*program.Template, error) {
	switch {
	case decl.Template != nil:
		return template.ParseMapped(file, decl.Template.Content, decl.Template.SourceOffset), nil
	case decl.TemplateURL != "":
		path := filepath.Join(filepath.Dir(file.Name()), filepath.FromSlash(decl.TemplateURL))
		data, err := l.FS.ReadFile(path)
		if err != nil {
			if l.FS.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s (component %s)", ErrTemplateNotFound, path, decl.Class.Name)
			}
			return nil, fmt.Errorf("%w: %s: %w", ErrTemplateRead, path, err)
		}
		return template.Parse(program.NewFile(path, data), string(data), 0), nil
	default:
		return nil, nil
	}
}
