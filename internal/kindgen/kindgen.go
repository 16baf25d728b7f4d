package kindgeninternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"maps"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/kindgen/internal/codefmt"
	"github.com/sublee/kindgen/internal/kindgen/gen"
	"github.com/sublee/kindgen/internal/kindgen/parse"
)

// Kindgen generates kind types for the target package. Call [Build] and then
// [Generate] to get the generated code. All potential errors are returned by
// [Build]. Once [Build] succeeds, [Generate] never fails.
type Kindgen struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer
	log *zap.Logger

	derives []parse.Capability
	kinds   []*gen.Kind
}

// Option configures [Kindgen].
type Option func(*Kindgen)

// WithLogger sets the logger. The default logger discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(kg *Kindgen) { kg.log = log }
}

// WithDerives adds capabilities to every kind in the package as if they were
// given by derive(...) of each kindgen:kind directive.
func WithDerives(caps ...parse.Capability) Option {
	return func(kg *Kindgen) { kg.derives = append(kg.derives, caps...) }
}

// New creates a new [Kindgen] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have its
// Syntax, Types and TypesInfo.
func New(pkg *packages.Package, opts ...Option) (*Kindgen, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	kg := &Kindgen{
		p:   parser,
		ns:  codefmt.NewNS(pkg.Types.Scope(), parser.IsGeneratedObj),
		buf: &buf,
		w:   codefmt.NewWriter(&buf, pkg),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(kg)
	}
	kg.log = kg.log.With(zap.String("pkg", pkg.PkgPath))
	return kg, nil
}

// Build prepares code generation by parsing directives and planning the names
// of generated code. All potential errors are returned by this method. It must
// be called before [Generate].
func (kg *Kindgen) Build() error {
	decls, errs := kg.p.ParseDecls()
	for _, decl := range decls {
		if len(kg.derives) != 0 {
			decl.Config = decl.Config.WithDerives(kg.derives...)
		}

		if !decl.Sealed {
			kg.log.Warn("interface has only exported methods; implementations in other packages fall into the default case",
				zap.String("interface", decl.Name()),
				zap.String("pos", codefmt.FormatPos(kg.p, decl.Pos())),
			)
		}

		kind, err := gen.NewKind(kg.p, kg.ns, decl)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		kg.kinds = append(kg.kinds, kind)

		kg.log.Debug("kind planned",
			zap.String("kind", kind.TypeName),
			zap.String("interface", decl.Name()),
			zap.Int("variants", len(decl.Variants)),
		)
	}
	return errs
}

// Kinds returns the kinds planned by [Build].
func (kg *Kindgen) Kinds() []*gen.Kind {
	return kg.kinds
}

// Generate generates the code for the package. It must be called after [Build]
// succeeds. It returns nil if the package has no kindgen:kind directives.
func (kg *Kindgen) Generate() []byte {
	if len(kg.kinds) == 0 {
		return nil
	}

	for _, kind := range kg.kinds {
		w := kg.w.WithNS(maps.Clone(kg.ns))
		fmt.Fprintf(kg.buf, "// kindgen: %s\n\n", kind.Decl().Name())
		kind.WriteTypeCode(w)
		kind.WriteConvCode(w)
	}
	return kg.frameCode()
}

func (kg *Kindgen) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !kindgen\n\n")
	fmt.Fprintf(&buf, "%s%s. DO NOT EDIT.\n\n", parse.GeneratedBy, versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", kg.p.Pkg().Name)

	if len(kg.w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for alias, imp := range kg.w.Imports() {
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, kg.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
