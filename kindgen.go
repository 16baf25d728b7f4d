// Package kindgen derives payload-free kind types from sealed interfaces.
//
// Go expresses a sum type as a sealed interface: an interface with an
// unexported method, implemented by a closed set of variant types in the same
// package. Code often needs to talk about which variant a value is without
// carrying its data, for example to count, log, or dispatch on it. Kindgen
// generates that kind type and the conversion into it.
//
// Annotate the interface with a kindgen:kind directive naming the kind type:
//
//	//kindgen:kind ShapeKind
//	type Shape interface{ isShape() }
//
//	type Circle struct{ Radius float64 }
//	type Square struct{ Side float64 }
//	type Empty struct{}
//
//	func (Circle) isShape()  {}
//	func (*Square) isShape() {}
//	func (Empty) isShape()   {}
//
// Then run the kindgen command. It generates kindgen_gen.go for your package:
//
//	go run github.com/sublee/kindgen/cmd/kindgen
//
//	// generated: (simplified)
//	type ShapeKind int
//
//	const (
//		ShapeKindCircle ShapeKind = iota
//		ShapeKindSquare
//		ShapeKindEmpty
//	)
//
//	func (k ShapeKind) String() string { ... }
//
//	func ShapeKindOfPtr(v1 *Shape) ShapeKind {
//		switch (*v1).(type) {
//		case Circle, *Circle:
//			return ShapeKindCircle
//		case *Square:
//			return ShapeKindSquare
//		case Empty, *Empty:
//			return ShapeKindEmpty
//		default:
//			panic(...)
//		}
//	}
//
//	func ShapeKindOf(v1 Shape) ShapeKind { return ShapeKindOfPtr(&v1) }
//
// The variants are the named types declared in the same package whose value or
// pointer implements the interface, in declaration order. Their payloads are
// never copied into the kind.
//
// # Specifiers
//
// The kind name may be followed by specifiers:
//
//	//kindgen:kind ShapeKind derive(values, json) doc = "ShapeKind is a shape." type = uint8
//
//   - derive(CAPABILITY, ...) generates more code. The capabilities are
//     values, parse, text, json, yaml, sql, and method. See below.
//   - doc = "text" sets the doc comment of the kind type. It may be repeated
//     for multiple lines.
//   - type = INTEGER_TYPE sets the underlying type. It is int by default.
//   - prefix = "Prefix" sets the prefix of the constant names. It is the kind
//     name by default.
//   - trim trims the common words of the variant names in the constant names.
//
// A variant may force the value of its constant with a kindgen:value
// directive. The following constants without one count up from it:
//
//	//kindgen:value 10
//	type Circle struct{ Radius float64 }
//
// # Capabilities
//
//   - values: XValues() []X and (X).IsValid() bool.
//   - parse: ParseX(string) (X, error) by variant name.
//   - text: encoding.TextMarshaler and encoding.TextUnmarshaler.
//   - json: json.Marshaler and json.Unmarshaler as JSON strings.
//   - yaml: the marshaler interfaces of gopkg.in/yaml.v3.
//   - sql: driver.Valuer and sql.Scanner.
//   - method: a Kind method on every variant, so that each variant implements
//     [ToKind].
//
// The text, json, yaml, and sql capabilities imply parse. A JSON null leaves
// the kind unchanged.
//
// # Tests
//
// With -t, kinds declared in _test.go files are generated into
// kindgen_gen_test.go, or kindgen_gen_x_test.go for an external test package.
// Types in _test.go files never become variants of a kind declared in the
// package itself.
//
// # Build tags
//
// The generated file is constrained by "//go:build !kindgen" and the command
// loads packages with the "kindgen" tag. So a stale generated file never
// hides the declarations it is regenerated from.
package kindgen

// ToKind is implemented by variants of a sealed interface whose kind type is
// derived with the method capability.
type ToKind[K comparable] interface {
	Kind() K
}

// KindOf returns the kind of v if v implements [ToKind] of K.
func KindOf[K comparable](v any) (K, bool) {
	if v, ok := v.(ToKind[K]); ok {
		return v.Kind(), true
	}
	var zero K
	return zero, false
}
