package codefmt

import (
	"go/ast"
	"go/types"
	"io"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"
)

// Writer is a writer for generated code.
type Writer struct {
	w       io.Writer
	pkg     *packages.Package
	fmt     Formatter
	imports map[string]Import
	ns      NS
}

// NewWriter creates a new [Writer]. It does not initialize the
// namespace. To specify a namespace, use [WithNS].
func NewWriter(w io.Writer, pkg *packages.Package) *Writer {
	return &Writer{
		w:       w,
		pkg:     pkg,
		fmt:     New(pkg),
		imports: make(map[string]Import),
		ns:      nil,
	}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// Printf writes a formatted string to the underlying writer using
// [Formatter.Fprintf].
func (w *Writer) Printf(format string, args ...any) (int, error) {
	w.importArgs(args...)
	return w.fmt.Fprintf(w.w, format, args...)
}

// TypeParams formats the type parameter list like [Formatter.TypeParams] and
// records packages referenced by the constraints to import.
func (w *Writer) TypeParams(tparams *types.TypeParamList) string {
	for i := 0; i < tparams.Len(); i++ {
		w.importType(tparams.At(i).Constraint())
	}
	return w.fmt.TypeParams(tparams)
}

// Pkg returns the package the code is generated for.
func (w *Writer) Pkg() *packages.Package {
	return w.pkg
}

// WithNS copies the writer and sets a new namespace.
func (w *Writer) WithNS(ns NS) *Writer {
	return &Writer{
		w:       w.w,
		pkg:     w.pkg,
		fmt:     w.fmt,
		imports: w.imports,
		ns:      ns,
	}
}

type Import struct {
	// The package to import.
	*types.Package

	// HasAlias indicates that the import has an alias.
	HasAlias bool
}

// Imports returns the collected imports. Imports are collected by [Ref] and
// [Type].
func (w *Writer) Imports() map[string]Import {
	return w.imports
}

// importAST records packages used in the given AST node to import later.
func (w *Writer) importAST(node ast.Node) {
	astutil.Apply(node, func(c *astutil.Cursor) bool {
		if id, ok := c.Node().(*ast.Ident); ok {
			w.importType(w.pkg.TypesInfo.TypeOf(id))
			w.importObj(w.pkg.TypesInfo.ObjectOf(id))
		}
		return true
	}, nil)
}

// importType records packages where the type and its components are defined
// to import later. Type parameter constraints are walked too, so that a
// reproduced type parameter list like [T fmt.Stringer] imports "fmt".
func (w *Writer) importType(typ types.Type) {
	w.importTypeSeen(typ, make(map[types.Type]bool))
}

func (w *Writer) importTypeSeen(typ types.Type, seen map[types.Type]bool) {
	if typ == nil || seen[typ] {
		return
	}
	seen[typ] = true

	switch typ := typ.(type) {
	case *types.Alias:
		w.importObj(typ.Obj())
	case *types.Named:
		w.importObj(typ.Obj())
		for targ := range typ.TypeArgs().Types() {
			w.importTypeSeen(targ, seen)
		}
	case *types.Pointer:
		w.importTypeSeen(typ.Elem(), seen)
	case *types.Slice:
		w.importTypeSeen(typ.Elem(), seen)
	case *types.Array:
		w.importTypeSeen(typ.Elem(), seen)
	case *types.Chan:
		w.importTypeSeen(typ.Elem(), seen)
	case *types.Map:
		w.importTypeSeen(typ.Key(), seen)
		w.importTypeSeen(typ.Elem(), seen)
	case *types.Signature:
		for v := range typ.Params().Variables() {
			w.importTypeSeen(v.Type(), seen)
		}
		for v := range typ.Results().Variables() {
			w.importTypeSeen(v.Type(), seen)
		}
	case *types.Struct:
		for f := range typ.Fields() {
			w.importTypeSeen(f.Type(), seen)
		}
	case *types.Interface:
		for t := range typ.EmbeddedTypes() {
			w.importTypeSeen(t, seen)
		}
		for m := range typ.ExplicitMethods() {
			w.importTypeSeen(m.Type(), seen)
		}
	case *types.Union:
		for term := range typ.Terms() {
			w.importTypeSeen(term.Type(), seen)
		}
	case *types.TypeParam:
		w.importTypeSeen(typ.Constraint(), seen)
	}
}

// importObj records a package where the object is defined to import later.
func (w *Writer) importObj(obj types.Object) {
	if obj == nil {
		return
	}

	pkg := obj.Pkg()
	if pkg == nil {
		// Skip built-in objects
		return
	}

	if w.pkg.PkgPath == pkg.Path() {
		// Do not import the same package
		return
	}

	for name := range DisambiguateName(pkg.Name()) {
		prev, ok := w.imports[name]
		if ok && prev.Path() == pkg.Path() {
			// Already imported with the same name, maybe by [Writer.Import].
			pkg.SetName(name)
			return
		}
		if !ok && w.pkg.Types.Scope().Lookup(name) == nil && !w.ns.Has(name) {
			// There's no conflict. Import the package with its original name.
			w.imports[name] = Import{Package: pkg, HasAlias: name != pkg.Name()}
			pkg.SetName(name)
			return
		}
	}
}

// Import adds an import for the package with the given path and alias. It
// returns the name of the imported package. The name might be different if it
// has tried to resolve name conflicts.
//
//	// fmtName can be used to refer to the "fmt" package without any name conflict.
//	fmtName := w.Import("fmt", "fmt")
//	w.Printf("%s.Println(\"Hello, World!\")", fmtName)
//
// When calling it, the package to import is recorded. Call [Imports] to
// retrieve them.
func (w *Writer) Import(path, name string) string {
	var pkgName string
	for _, imp := range w.pkg.Types.Imports() {
		if imp.Path() == path {
			pkgName = imp.Name()
			break
		}
	}

	if name == "" {
		name = pkgName
	}
	if name == "" {
		name = path[strings.LastIndex(path, "/")+1:]
	}
	if pkgName == "" {
		// Not imported by the package itself. The given name is the package
		// name then.
		pkgName = name
	}
	pkg := types.NewPackage(path, name)

	for name := range DisambiguateName(name) {
		prev, ok := w.imports[name]
		if ok && prev.Path() == path {
			// Already imported with the same name.
			return name
		}
		if !ok && w.pkg.Types.Scope().Lookup(name) == nil && !w.ns.Has(name) {
			w.imports[name] = Import{Package: pkg, HasAlias: name != pkgName}
			pkg.SetName(name)
			return name
		}
	}

	panic("unreachable")
}

func (w *Writer) importArgs(args ...any) {
	for _, arg := range args {
		switch arg := arg.(type) {
		case ast.Expr:
			w.importAST(arg)
		case types.Object:
			w.importObj(arg)
		case types.Type:
			w.importType(arg)

		case Exprer:
			w.importAST(arg.Expr())
		case Objecter:
			w.importObj(arg.Object())
		case Typer:
			w.importType(arg.Type())
		}
	}
}
