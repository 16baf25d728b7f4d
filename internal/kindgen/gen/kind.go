// Package gen writes the kind type of a sealed interface and the conversion
// from the interface to it.
package gen

import (
	"errors"
	"go/token"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/kindgen/internal/codefmt"
	"github.com/sublee/kindgen/internal/kindgen/parse"
	"github.com/sublee/kindgen/internal/lcs"
)

// Kind is the plan of the code generated for a [parse.Decl]. Every name is
// reserved in the package namespace by [NewKind].
type Kind struct {
	p    *parse.Parser
	decl *parse.Decl

	// TypeName is the name of the kind type.
	TypeName string

	// Consts are the names of the kind constants in variant order.
	Consts []string

	// Values are the expressions of the kind constants in variant order. See
	// [planValues].
	Values []string

	OfName    string
	OfPtrName string

	// ValuesName and ParseName are empty unless the capabilities are
	// derived.
	ValuesName string
	ParseName  string

	// Param is the parameter name of the conversion functions.
	Param string

	// Recv is the receiver name of the methods of the kind type.
	Recv string
}

func (k *Kind) Pkg() *packages.Package { return k.p.Pkg() }

// Decl returns the declaration the kind is generated for.
func (k *Kind) Decl() *parse.Decl { return k.decl }

// Config returns the configuration of the kind.
func (k *Kind) Config() parse.Config { return k.decl.Config }

// NewKind plans the names of generated code and reserves them in ns. Names
// colliding with declarations in the package or names of other kinds are
// reported.
func NewKind(p *parse.Parser, ns codefmt.NS, decl *parse.Decl) (*Kind, error) {
	cfg := decl.Config
	k := &Kind{
		p:         p,
		decl:      decl,
		TypeName:  cfg.Name,
		OfName:    cfg.Name + "Of",
		OfPtrName: cfg.Name + "OfPtr",
	}

	if cfg.Has(parse.CapValues) {
		k.ValuesName = cfg.Name + "Values"
	}
	if cfg.Has(parse.CapParse) {
		if decl.Exported() {
			k.ParseName = "Parse" + cfg.Name
		} else {
			k.ParseName = codefmt.JoinName("parse", cfg.Name)
		}
	}

	k.Consts = constNames(cfg, decl.Variants)
	k.Values = planValues(k.Consts, decl.Variants)

	var errs error
	reserve := func(name string) {
		if name == "" {
			return
		}
		if ns.Reserve(name) {
			return
		}

		obj := p.Pkg().Types.Scope().Lookup(name)
		if obj != nil && !p.IsGeneratedObj(obj) {
			err := codefmt.ShapeErrorf(p, cfg, `%s generated for %s collides with an existing declaration
	previous declaration at %b`, name, decl.Name(), obj.Pos())
			errs = errors.Join(errs, err)
			return
		}
		err := codefmt.ShapeErrorf(p, cfg, "%s generated for %s collides with a name generated for another kind", name, decl.Name())
		errs = errors.Join(errs, err)
	}

	reserve(k.TypeName)
	for _, name := range k.Consts {
		reserve(name)
	}
	reserve(k.OfName)
	reserve(k.OfPtrName)
	reserve(k.ValuesName)
	reserve(k.ParseName)

	if cfg.Has(parse.CapMethod) {
		errs = errors.Join(errs, k.checkKindMethods())
	}

	if errs != nil {
		return nil, errs
	}

	k.Param = FreshName("v", usedBy(ns.Has, decl.TypeParams()))
	k.Recv = "k"
	if ns.Has(k.Recv) {
		k.Recv = FreshName(k.Recv, ns.Has)
	}
	return k, nil
}

// checkKindMethods checks that no variant has a Kind field or method already.
// A Kind method in a kindgen-generated file is the one to be regenerated.
func (k *Kind) checkKindMethods() error {
	var errs error
	for _, v := range k.decl.Variants {
		obj, _, _ := types.LookupFieldOrMethod(v.Type.T, true, k.p.Pkg().Types, "Kind")
		if obj == nil || k.p.IsGeneratedObj(obj) {
			continue
		}
		err := codefmt.ShapeErrorf(k.p, codefmt.Pos(v.Pos()), `%s already has Kind; derive(method) cannot add a Kind method
	Kind declared at %b`, v.Name, obj.Pos())
		errs = errors.Join(errs, err)
	}
	return errs
}

// constNames returns the names of the kind constants. With trim, the common
// word prefix and suffix of the variant names are trimmed unless it empties a
// name.
func constNames(cfg parse.Config, variants []parse.Variant) []string {
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.Name
	}

	if cfg.Trim && len(names) > 1 {
		prefix := lcs.CommonWordPrefix(names)
		suffix := lcs.CommonWordSuffix(names)

		trimmed := make([]string, len(names))
		for i, name := range names {
			name = strings.TrimPrefix(name, prefix)
			trimmed[i] = strings.TrimSuffix(name, suffix)
		}
		if !slices.Contains(trimmed, "") {
			names = trimmed
		}
	}

	for i, name := range names {
		names[i] = codefmt.JoinName(cfg.Prefix, name)
	}
	return names
}

// planValues returns the constant expressions of the kind constants. Without
// kindgen:value, the first constant is "iota" and the others are empty to
// repeat it. Otherwise, every constant is explicit: a kindgen:value
// expression, "0" for the first one, or the previous constant plus one.
func planValues(consts []string, variants []parse.Variant) []string {
	values := make([]string, len(variants))

	if !parse.HasValues(variants) {
		if len(values) != 0 {
			values[0] = "iota"
		}
		return values
	}

	for i, v := range variants {
		switch {
		case v.Value != "":
			values[i] = v.Value
		case i == 0:
			values[i] = "0"
		default:
			values[i] = consts[i-1] + " + 1"
		}
	}
	return values
}

// Pos returns the position of the kind name in the directive.
func (k *Kind) Pos() token.Pos { return k.decl.Config.Pos() }
