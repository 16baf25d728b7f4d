// Package kindgenanalysis reports errors in kindgen directives as analysis
// diagnostics, so that go vet and golangci-lint catch them without running the
// generator.
package kindgenanalysis

import (
	"fmt"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/kindgen/internal/codefmt"
	kindgeninternal "github.com/sublee/kindgen/internal/kindgen"
	"github.com/sublee/kindgen/internal/kindgen/parse"
)

// Analyzer validates kindgen directives in the package.
var Analyzer = newAnalyzer(nil)

// NewAnalyzer creates an [Analyzer] which validates as if the capabilities were
// derived for every kind, like the derive option of kindgen.yaml.
func NewAnalyzer(derive []string) (*analysis.Analyzer, error) {
	var caps []parse.Capability
	for _, name := range derive {
		c, ok := parse.ParseCapability(name)
		if !ok {
			return nil, fmt.Errorf("unknown capability %q to derive", name)
		}
		caps = append(caps, c)
	}
	return newAnalyzer(caps), nil
}

func newAnalyzer(caps []parse.Capability) *analysis.Analyzer {
	return &analysis.Analyzer{
		Name: "kindgen",
		Doc:  "linter for kindgen directives",
		Run: func(pass *analysis.Pass) (any, error) {
			return run(pass, caps)
		},

		// Code using kind types does not type-check until they are generated.
		RunDespiteErrors: true,
	}
}

func run(pass *analysis.Pass, caps []parse.Capability) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	kg, err := kindgeninternal.New(pkg, kindgeninternal.WithDerives(caps...))
	if err != nil {
		return nil, err
	}

	if err := kg.Build(); err != nil {
		// Unroll all errors and report them
		errs := []error{err}
		for len(errs) != 0 {
			err := errs[0]
			errs = errs[1:]

			if codeErr, ok := err.(*codefmt.CodeError); ok {
				pass.Report(analysis.Diagnostic{
					Pos:     codeErr.Pos(),
					End:     codeErr.End(),
					Message: codeErr.Unwrap().Error(),
				})
				continue
			}

			if u, ok := err.(interface{ Unwrap() []error }); ok {
				errs = append(errs, u.Unwrap()...)
			}
		}
	}

	return nil, nil
}
