package testdata

//kindgen:kind ShapeKind // want `ShapeKindCircle generated for Shape collides with an existing declaration`
type Shape interface{ isShape() }

type Circle struct{}

func (Circle) isShape() {}

var ShapeKindCircle = 1

//kindgen:kind ShapeKind // want `ShapeKind generated for Other collides with a name generated for another kind` `ShapeKindOf generated for Other collides` `ShapeKindOfPtr generated for Other collides`
type Other interface{ isOther() }

//kindgen:kind ColorKind derive(method)
type Color interface{ isColor() }

type Red struct{ Kind string } // want `Red already has Kind; derive\(method\) cannot add a Kind method`

type Blue struct{}

func (Red) isColor()  {}
func (Blue) isColor() {}

//kindgen:kind SizeKind derive(parse) // want `ParseSizeKind generated for Size collides with an existing declaration`
type Size interface{ isSize() }

type Small struct{}

func (Small) isSize() {}

func ParseSizeKind() {}

//kindgen:kind TagKind prefix = "", derive(method) // want `Bold generated for Tag collides with an existing declaration`
type Tag interface{ isTag() }

type Bold struct{}

func (Bold) isTag() {}
