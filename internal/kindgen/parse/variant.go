package parse

import (
	"cmp"
	"go/token"
	"go/types"
	"slices"

	"github.com/sublee/kindgen/internal/typeinfo"
)

// Payload is the shape of the data a variant carries. It is erased in the kind
// type.
type Payload int

const (
	// NoPayload is an empty struct, e.g., struct{}.
	NoPayload Payload = iota
	// PositionalPayload is any non-struct type, e.g., int or []byte.
	PositionalPayload
	// NamedPayload is a struct with fields.
	NamedPayload
)

func (p Payload) String() string {
	switch p {
	case NoPayload:
		return "none"
	case PositionalPayload:
		return "positional"
	case NamedPayload:
		return "named"
	}
	return "Payload(?)"
}

// Variant is a type implementing a sealed interface.
type Variant struct {
	// Name is the name of the variant type.
	Name string

	// Obj is the type name of the variant.
	Obj *types.TypeName

	// Type is the variant type. A generic variant is instantiated with the
	// type parameters of the interface.
	Type typeinfo.Type

	// Pointer is true if only the pointer type implements the interface.
	Pointer bool

	// Payload is the shape of the data the variant carries.
	Payload Payload

	// Value is the expression given by kindgen:value. It is empty if not
	// given.
	Value string
}

func (v Variant) Pos() token.Pos { return v.Obj.Pos() }

// HasValues reports whether any of the variants has a kindgen:value
// directive.
func HasValues(variants []Variant) bool {
	return slices.ContainsFunc(variants, func(v Variant) bool { return v.Value != "" })
}

// Classify returns the payload shape of a type.
func Classify(t typeinfo.Type) Payload {
	if !t.IsStruct() {
		return PositionalPayload
	}
	if t.Struct.NumFields() == 0 {
		return NoPayload
	}
	return NamedPayload
}

// discoverVariants finds named non-interface types in the package scope which
// implement the interface by their value or pointer method sets. Types in
// kindgen-generated files are ignored.
func (p *Parser) discoverVariants(iface typeinfo.Type) []Variant {
	tparams := iface.TypeParams()
	targs := make([]types.Type, tparams.Len())
	for i := range targs {
		targs[i] = tparams.At(i)
	}

	scope := p.pkg.Types.Scope()
	var variants []Variant
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || obj.IsAlias() || p.IsGeneratedObj(obj) {
			continue
		}

		t := typeinfo.TypeOf(obj.Type())
		if !t.IsNamed() || t.IsInterface() {
			continue
		}

		if n := t.TypeParams().Len(); n != 0 {
			if n != len(targs) {
				// A generic type cannot be a variant unless it shares the type
				// parameters of the interface.
				continue
			}
			inst, err := t.Instantiate(targs)
			if err != nil {
				continue
			}
			t = inst
		}

		value, pointer := t.Implements(iface)
		if !value && !pointer {
			continue
		}

		variants = append(variants, Variant{
			Name:    obj.Name(),
			Obj:     obj,
			Type:    t,
			Pointer: pointer,
			Payload: Classify(t),
		})
	}

	fset := p.pkg.Fset
	slices.SortFunc(variants, func(a, b Variant) int {
		pa, pb := fset.Position(a.Pos()), fset.Position(b.Pos())
		if c := cmp.Compare(pa.Filename, pb.Filename); c != 0 {
			return c
		}
		return cmp.Compare(pa.Offset, pb.Offset)
	})
	return variants
}
