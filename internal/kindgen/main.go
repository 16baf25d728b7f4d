package kindgeninternal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/kindgen/internal/kindgen/parse"
)

var Version string

// Options are the options of [Main].
type Options struct {
	// Tags are the build tags to use when loading packages in addition to
	// "kindgen".
	Tags string

	// Tests indicates whether to load test variants of the packages too.
	// Kinds declared in _test.go files are generated into a _test.go file
	// next to Output.
	Tests bool

	// Output is the name of the output file to generate in each package.
	Output string

	// Derive are capability names added to every kind.
	Derive []string

	// Logger logs the progress. The default logger discards everything.
	Logger *zap.Logger
}

// Main is the main entry point for Kindgen. It is used by the command-line tool
// directly.
//
// ctx is the context for loading and building packages. wd is the path of the
// working directory. env is the environment variables to use when running the
// tool. And patterns are the package patterns to process.
//
// Packages are built concurrently. An error in a package does not stop the
// others. It returns a map of output file paths to their contents. If any error
// occurs, it returns a non-nil error.
func Main(ctx context.Context, wd string, env []string, opts Options, patterns []string) (map[string][]byte, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Output == "" {
		opts.Output = "kindgen_gen.go"
	}

	var derives []parse.Capability
	for _, name := range opts.Derive {
		c, ok := parse.ParseCapability(name)
		if !ok {
			return nil, fmt.Errorf("unknown capability %q to derive", name)
		}
		derives = append(derives, c)
	}

	pkgs, err := load(ctx, log, wd, env, opts.Tags, opts.Tests, patterns)
	if err != nil {
		return nil, err
	}

	var (
		mu   sync.Mutex
		outs = make(map[string][]byte)
		errs error
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, pkg := range pkgs {
		if strings.HasSuffix(pkg.PkgPath, ".test") || len(pkg.GoFiles) == 0 {
			// The synthesized main package of a test binary
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			code, err := build(pkg, log, derives)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				errs = errors.Join(errs, err)
				return nil
			}
			if len(code) == 0 {
				return nil
			}

			outDir := filepath.Dir(pkg.GoFiles[0])
			if rel, err := filepath.Rel(wd, outDir); err == nil {
				outDir = rel
			}
			out := outputName(pkg, opts.Output)
			outs[filepath.Join(outDir, out)] = code
			log.Info("generated", zap.String("pkg", pkg.ID), zap.String("file", out))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if errs != nil {
		// errs already contains comprehensive error messages. So we don't need
		// to attach another error message.
		return nil, reorderErrors(errs)
	}
	return outs, nil
}

// outputName returns the name of the file generated for the package. A test
// variant gets a _test.go file, so that the package itself never depends on
// types in its tests. An external test package gets a distinct _x_test.go
// file in the same directory.
//
//	outputName(p, "kindgen_gen.go")               => "kindgen_gen.go"
//	outputName(p [p.test], "kindgen_gen.go")      => "kindgen_gen_test.go"
//	outputName(p_test [p.test], "kindgen_gen.go") => "kindgen_gen_x_test.go"
func outputName(pkg *packages.Package, output string) string {
	if !slices.ContainsFunc(pkg.GoFiles, parse.IsTestFile) {
		return output
	}

	stem := strings.TrimSuffix(output, ".go")
	if strings.HasSuffix(pkg.Name, "_test") {
		return stem + "_x_test.go"
	}
	return stem + "_test.go"
}

// generateMu serializes [Kindgen.Generate]. Loaded packages share the
// [types.Package] of their common imports, and the writer renames them to
// resolve import conflicts.
var generateMu sync.Mutex

// build generates the code for a package.
func build(pkg *packages.Package, log *zap.Logger, derives []parse.Capability) ([]byte, error) {
	kg, err := New(pkg, WithLogger(log), WithDerives(derives...))
	if err != nil {
		return nil, err
	}
	if err := kg.Build(); err != nil {
		return nil, err
	}

	generateMu.Lock()
	defer generateMu.Unlock()
	return kg.Generate(), nil
}

// load loads packages. Type errors are tolerated because the code using kind
// types does not type-check until they are generated.
func load(ctx context.Context, log *zap.Logger, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:       packages.NeedDeps | packages.NeedFiles | packages.NeedImports | packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context:    ctx,
		Dir:        wd,
		Env:        env,
		BuildFlags: []string{"-tags=kindgen"},
		Tests:      tests,
	}
	if tags != "" {
		cfg.BuildFlags[0] += "," + tags
	}

	// Load the packages based on the provided patterns.
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	// Check for errors in the loaded packages.
	var errs error
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			if err.Kind == packages.TypeError {
				log.Debug("tolerated type error", zap.String("pkg", pkg.PkgPath), zap.String("err", err.Error()))
				continue
			}

			if err.Pos == "" {
				errs = errors.Join(errs, errors.New(err.Msg))
				continue
			}

			path, rowcol, _ := strings.Cut(err.Pos, ":")
			if rel, relErr := filepath.Rel(wd, path); relErr == nil {
				err.Pos = rel + ":" + rowcol
			}
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}

	log.Debug("packages loaded", zap.Int("count", len(pkgs)))
	return pkgs, nil
}

func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}

	// Flatten nested errors
	list := []error{errs}
	for i := 0; i < len(list); i++ {
		if u, ok := list[i].(interface{ Unwrap() []error }); ok {
			// errors.Join collapses errors with a single error having Unwrap()
			// []error method. The underlying errors could be retrieved using
			// the Unwrap() method.
			list = append(list, u.Unwrap()...)

			// The underlying errors are appended to the list. So the original
			// error can be removed.
			list[i] = nil
			continue
		}
	}
	list = slices.DeleteFunc(list, func(err error) bool {
		return err == nil
	})

	// Sort errors by message
	sort.Slice(list, func(i, j int) bool {
		return list[i].Error() < list[j].Error()
	})
	return errors.Join(list...)
}
