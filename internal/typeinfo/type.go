package typeinfo

import (
	"go/types"
)

// Type describes a type information. It holds information of [types.Type] that
// is necessary to find the variants of a sealed interface and to classify
// their payloads.
type Type struct {
	T types.Type

	Basic     *types.Basic
	Array     *types.Array
	Slice     *types.Slice
	Map       *types.Map
	Chan      *types.Chan
	Signature *types.Signature
	Struct    *types.Struct
	Interface *types.Interface
	Pointer   *types.Pointer
	Named     *types.Named
	TypeParam *types.TypeParam

	Elem *Type
	Key  *Type
	Len  int64
}

func (t Type) Type() types.Type { return t.T }
func (t Type) String() string   { return t.T.String() }

func (t Type) IsBasic() bool     { return t.Basic != nil }
func (t Type) IsArray() bool     { return t.Array != nil }
func (t Type) IsSlice() bool     { return t.Slice != nil }
func (t Type) IsMap() bool       { return t.Map != nil }
func (t Type) IsChan() bool      { return t.Chan != nil }
func (t Type) IsFunc() bool      { return t.Signature != nil }
func (t Type) IsStruct() bool    { return t.Struct != nil }
func (t Type) IsInterface() bool { return t.Interface != nil }
func (t Type) IsPointer() bool   { return t.Pointer != nil }
func (t Type) IsNamed() bool     { return t.Named != nil }

// TypeOf inspects the given type and returns a new [Type].
func TypeOf(t types.Type) Type {
	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		return Type{T: t, Basic: tt}
	case *types.Array:
		elem := TypeOf(tt.Elem())
		return Type{T: t, Array: tt, Elem: &elem, Len: tt.Len()}
	case *types.Slice:
		elem := TypeOf(tt.Elem())
		return Type{T: t, Slice: tt, Elem: &elem}
	case *types.Map:
		elem := TypeOf(tt.Elem())
		key := TypeOf(tt.Key())
		return Type{T: t, Map: tt, Elem: &elem, Key: &key}
	case *types.Chan:
		elem := TypeOf(tt.Elem())
		return Type{T: t, Chan: tt, Elem: &elem}
	case *types.Signature:
		return Type{T: t, Signature: tt}
	case *types.Struct:
		return Type{T: t, Struct: tt}
	case *types.Interface:
		return Type{T: t, Interface: tt}
	case *types.Pointer:
		elem := TypeOf(tt.Elem())
		return Type{T: t, Pointer: tt, Elem: &elem}
	case *types.Named:
		info := TypeOf(tt.Underlying())
		info.T = t
		info.Named = tt
		return info
	case *types.TypeParam:
		return Type{T: t, TypeParam: tt}
	}
	// Tuples, unions and invalid types carry nothing kindgen looks at.
	return Type{T: t}
}

// Ref returns the pointer type of the type. For type of X, it returns type of
// *X.
func (t Type) Ref() Type {
	return TypeOf(types.NewPointer(t.T))
}

// TypeParams returns the type parameters of a named type. It returns nil for
// other types.
func (t Type) TypeParams() *types.TypeParamList {
	if !t.IsNamed() {
		return nil
	}
	return t.Named.TypeParams()
}

// Instantiate instantiates a generic named type with the given type arguments.
// It fails if a type argument does not satisfy its constraint.
func (t Type) Instantiate(targs []types.Type) (Type, error) {
	if !t.IsNamed() {
		panic("not named")
	}
	inst, err := types.Instantiate(nil, t.Named.Origin(), targs, true)
	if err != nil {
		return Type{}, err
	}
	return TypeOf(inst), nil
}

// SelfInstance instantiates a generic named type with its own type parameters.
// For the origin of Foo[T any], it returns Foo[T]. Non-generic types are
// returned as is.
func (t Type) SelfInstance() Type {
	tparams := t.TypeParams()
	if tparams.Len() == 0 {
		return t
	}

	targs := make([]types.Type, tparams.Len())
	for i := range targs {
		targs[i] = tparams.At(i)
	}

	inst, err := t.Instantiate(targs)
	if err != nil {
		panic(err) // a type always accepts its own type parameters
	}
	return inst
}

// Implements reports which method set of the type implements the interface.
// value is true if T implements it, so *T does too. pointer is true if only *T
// implements it.
func (t Type) Implements(iface Type) (value, pointer bool) {
	if !iface.IsInterface() {
		panic("not interface")
	}
	if t.IsInterface() {
		return false, false
	}

	if types.Implements(t.T, iface.Interface) {
		return true, false
	}
	if types.Implements(types.NewPointer(t.T), iface.Interface) {
		return false, true
	}
	return false, false
}

// Describe returns a short word describing the shape of the type, e.g.,
// "struct", "interface", or "int".
func (t Type) Describe() string {
	switch {
	case t.IsInterface():
		return "interface"
	case t.IsStruct():
		return "struct"
	case t.IsPointer():
		return "pointer"
	case t.IsSlice():
		return "slice"
	case t.IsArray():
		return "array"
	case t.IsMap():
		return "map"
	case t.IsChan():
		return "channel"
	case t.IsFunc():
		return "func"
	case t.IsBasic():
		return t.Basic.Name()
	}
	return "type"
}

