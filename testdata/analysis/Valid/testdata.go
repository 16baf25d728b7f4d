package testdata

import (
	"fmt"
	"io"
)

// Shape is a shape.
//
//go:generate go run github.com/sublee/kindgen/cmd/kindgen
//kindgen:kind ShapeKind derive(values, parse, text, json, yaml, sql, method)
type Shape interface {
	fmt.Stringer
	isShape()
}

type (
	Circle struct{ Radius float64 }

	//kindgen:value 10
	Square struct{ Side float64 }

	Path []Point

	Point struct{}
)

func (Circle) isShape() {}
func (Circle) String() string { return "circle" }

func (*Square) isShape()       {}
func (*Square) String() string { return "square" }

func (Path) isShape()       {}
func (Path) String() string { return "path" }

func (Point) isShape()       {}
func (Point) String() string { return "point" }

//kindgen:kind nodeKind type = uint8 trim
type node[T io.Reader, U any] interface {
	read(T) U
}

type nodeFile[T io.Reader, U any] struct{}

type nodeBuffer[R io.Reader, V any] struct{ v V }

type nodeOther[T any] struct{}

func (nodeFile[T, U]) read(T) U      { var u U; return u }
func (b *nodeBuffer[R, V]) read(R) V { return b.v }
func (nodeOther[T]) read(T) T        { var t T; return t }

// Exported methods only, so other packages may implement it.
//
//kindgen:kind PublicKind prefix = "Public"
type Public interface{ Public() }

type Impl struct{}

func (Impl) Public() {}

var v1 = 0
