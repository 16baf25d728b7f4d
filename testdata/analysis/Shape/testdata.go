package testdata

//kindgen:kind AKind
type A struct{} // want `kindgen:kind requires an interface type; A is a struct`

//kindgen:kind BKind
type B = interface{ b() } // want `kindgen:kind requires an interface type; B is an alias`

//kindgen:kind CKind
type C interface{} // want `C has no methods; kindgen:kind requires at least one`

//kindgen:kind DKind
type D interface{ ~int | ~string } // want `D is a constraint interface; kindgen:kind requires an interface which can hold values`

//kindgen:kind EKind
type E int // want `kindgen:kind requires an interface type; E is an int`

//kindgen:kind FKind
type F []string // want `kindgen:kind requires an interface type; F is a slice`

//kindgen:kind GKind
type G func() // want `kindgen:kind requires an interface type; G is a func`

//kindgen:kind HKind sorted // want `unknown kindgen:kind specifier sorted`
type H map[string]int // want `kindgen:kind requires an interface type; H is a map`
