package main

//kindgen:kind ShapeKind
type Shape interface{ isShape() }

type Circle struct{}

func (Circle) isShape() {}

const ShapeKindCircle = "taken"

//kindgen:kind ColorKind derive(hash)
type Color interface{ isColor() }

func main() {}
