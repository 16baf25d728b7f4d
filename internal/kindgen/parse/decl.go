package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"github.com/sublee/kindgen/internal/codefmt"
	"github.com/sublee/kindgen/internal/typeinfo"
)

// Decl is a sealed interface annotated by a kindgen:kind directive.
type Decl struct {
	// Obj is the type name of the interface.
	Obj *types.TypeName

	// Spec is the type spec declaring the interface.
	Spec *ast.TypeSpec

	// Type is the interface type. A generic interface is instantiated with its
	// own type parameters, e.g., Expr[T] for Expr[T any].
	Type typeinfo.Type

	// Config is the configuration given by the directive.
	Config Config

	// Variants are the types implementing the interface in declaration
	// order.
	Variants []Variant

	// Sealed is false if all methods of the interface are exported, so that
	// other packages can implement it.
	Sealed bool

	directive Directive
}

func (d Decl) Pos() token.Pos { return d.Spec.Name.Pos() }
func (d Decl) End() token.Pos { return d.Spec.Name.End() }

// Name returns the name of the interface.
func (d Decl) Name() string { return d.Obj.Name() }

// Exported reports whether the interface is exported.
func (d Decl) Exported() bool { return d.Obj.Exported() }

// TypeParams returns the type parameters of the interface.
func (d Decl) TypeParams() *types.TypeParamList { return d.Type.TypeParams() }


// annotated is a type spec with kindgen directives in its doc comment.
type annotated struct {
	spec  *ast.TypeSpec
	kinds []Directive
	value []Directive
}

// ParseDecls finds all kindgen:kind directives in the package and parses the
// annotated interfaces with their variants. It collects all errors instead of
// stopping at the first error. The returned declarations are the ones parsed
// without errors, even if other declarations have errors.
func (p *Parser) ParseDecls() ([]*Decl, error) {
	anns, errs := p.collectDirectives()

	var decls []*Decl
	values := make(map[*types.TypeName]Directive)

	for _, ann := range anns {
		obj, _ := p.pkg.TypesInfo.Defs[ann.spec.Name].(*types.TypeName)
		if obj == nil {
			continue
		}

		if len(ann.value) != 0 {
			for _, dup := range ann.value[1:] {
				err := codefmt.ConfigErrorf(p, dup, `duplicate kindgen:value directive
	previous directive at %b`, ann.value[0].Pos())
				errs = errors.Join(errs, err)
			}
			values[obj] = ann.value[0]
		}

		if len(ann.kinds) == 0 {
			continue
		}
		for _, dup := range ann.kinds[1:] {
			err := codefmt.ConfigErrorf(p, dup, `duplicate kindgen:kind directive
	previous directive at %b`, ann.kinds[0].Pos())
			errs = errors.Join(errs, err)
		}

		decl, err := p.parseDecl(ann.spec, obj, ann.kinds[0])
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		decls = append(decls, decl)
	}

	// Discover variants and attach kindgen:value expressions to them.
	used := make(map[*types.TypeName]bool)
	for _, decl := range decls {
		decl.Variants = p.discoverVariants(decl.Type)

		for i, v := range decl.Variants {
			d, ok := values[v.Obj]
			if !ok {
				continue
			}
			used[v.Obj] = true

			expr, err := p.ParseValue(d)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			decl.Variants[i].Value = expr
		}
	}

	for obj, d := range values {
		if !used[obj] {
			err := codefmt.ConfigErrorf(p, d, "kindgen:value on %s without kindgen:kind on any interface it implements", obj.Name())
			errs = errors.Join(errs, err)
		}
	}

	return decls, errs
}

// collectDirectives finds type specs with kindgen directives in their doc
// comments. Directives anywhere else are reported as misplaced.
func (p *Parser) collectDirectives() ([]annotated, error) {
	var anns []annotated
	var errs error
	placed := make(map[*ast.Comment]bool)

	for _, file := range p.SourceFiles() {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				spec := spec.(*ast.TypeSpec)

				// The doc comment of "type X ..." without parentheses belongs
				// to the GenDecl.
				groups := []*ast.CommentGroup{spec.Doc}
				if !gen.Lparen.IsValid() {
					groups = append(groups, gen.Doc)
				}

				ann := annotated{spec: spec}
				for _, d := range directives(groups...) {
					placed[d.comment] = true

					switch d.Verb {
					case VerbKind:
						ann.kinds = append(ann.kinds, d)
					case VerbValue:
						ann.value = append(ann.value, d)
					default:
						errs = errors.Join(errs, codefmt.ConfigErrorf(p, d, "unknown directive kindgen:%s", d.Verb))
					}
				}
				if len(ann.kinds) != 0 || len(ann.value) != 0 {
					anns = append(anns, ann)
				}
			}
		}

		for _, group := range file.Comments {
			for _, d := range directives(group) {
				if placed[d.comment] {
					continue
				}
				err := codefmt.ConfigErrorf(p, d, "misplaced kindgen:%s directive; it must be in the doc comment of a type declaration", d.Verb)
				errs = errors.Join(errs, err)
			}
		}
	}
	return anns, errs
}

// parseDecl parses the configuration of a kindgen:kind directive and checks the
// shape of the annotated type.
func (p *Parser) parseDecl(spec *ast.TypeSpec, obj *types.TypeName, d Directive) (*Decl, error) {
	cfg, cfgErr := p.ParseConfig(d)

	if err := p.validateShape(spec, obj); err != nil {
		return nil, errors.Join(cfgErr, err)
	}
	if cfgErr != nil {
		return nil, cfgErr
	}

	if ast.IsExported(cfg.Name) != obj.Exported() {
		want := "unexported"
		if obj.Exported() {
			want = "exported"
		}
		return nil, codefmt.ConfigErrorf(p, cfg, "kind name %s must be %s like %s", cfg.Name, want, obj.Name())
	}

	t := typeinfo.TypeOf(obj.Type()).SelfInstance()

	sealed := false
	for m := range t.Interface.Methods() {
		if !m.Exported() {
			sealed = true
			break
		}
	}

	return &Decl{
		Obj:       obj,
		Spec:      spec,
		Type:      t,
		Config:    cfg,
		Sealed:    sealed,
		directive: d,
	}, nil
}

// validateShape checks that the annotated type is an interface which can hold
// values of its variants.
func (p *Parser) validateShape(spec *ast.TypeSpec, obj *types.TypeName) error {
	if spec.Assign.IsValid() {
		return codefmt.ShapeErrorf(p, spec.Name, "kindgen:kind requires an interface type; %s is an alias", obj.Name())
	}

	t := typeinfo.TypeOf(obj.Type())
	if !t.IsInterface() {
		return codefmt.ShapeErrorf(p, spec.Name, "kindgen:kind requires an interface type; %s is %s", obj.Name(), article(t.Describe()))
	}
	if !t.Interface.IsMethodSet() {
		return codefmt.ShapeErrorf(p, spec.Name, "%s is a constraint interface; kindgen:kind requires an interface which can hold values", obj.Name())
	}
	if t.Interface.NumMethods() == 0 {
		return codefmt.ShapeErrorf(p, spec.Name, "%s has no methods; kindgen:kind requires at least one", obj.Name())
	}
	return nil
}

func article(word string) string {
	if word != "" && strings.ContainsRune("aeiou", rune(word[0])) {
		return "an " + word
	}
	return "a " + word
}
