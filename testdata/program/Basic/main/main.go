package main

import "fmt"

//kindgen:kind ShapeKind
type Shape interface{ isShape() }

type Circle struct{ Radius float64 }

type Square struct{ Side float64 }

type Point struct{}

type Label string

func (Circle) isShape()  {}
func (*Square) isShape() {}
func (Point) isShape()   {}
func (Label) isShape()   {}

func main() {
	shapes := []Shape{
		Circle{Radius: 1},
		&Circle{Radius: 2},
		&Square{Side: 3},
		Point{},
		Label("x"),
	}
	for _, s := range shapes {
		k := ShapeKindOf(s)
		fmt.Println(k, int(k))
	}

	var s Shape = &Square{Side: 4}
	fmt.Println(ShapeKindOfPtr(&s))
	fmt.Println(ShapeKind(42))

	defer func() {
		fmt.Println("recovered:", recover())
	}()
	ShapeKindOf(nil)
}
