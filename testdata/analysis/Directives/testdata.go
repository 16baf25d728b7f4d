package testdata

//kindgen:kind AKind
//kindgen:kind AKind2 // want `duplicate kindgen:kind directive`
type A interface{ a() }

//kindgen:kinds BKind // want `unknown directive kindgen:kinds`
type B interface{ b() }

//kindgen:kind CKind // want `misplaced kindgen:kind directive; it must be in the doc comment of a type declaration`
func c() {}

//kindgen:value 3 // want `kindgen:value on D without kindgen:kind on any interface it implements`
type D struct{}

func e() {
	//kindgen:kind EKind // want `misplaced kindgen:kind directive`
	type E interface{ e() }
	_ = E(nil)
}

//kindgen:kind FKind
type F interface{ f() }

//kindgen:value 1 + // want `invalid kindgen:value expression`
type G struct{}

func (G) f() {}

//kindgen:value 1
//kindgen:value 2 // want `duplicate kindgen:value directive`
type H struct{}

func (H) f() {}

//kindgen:value // want `kindgen:value requires an expression`
type I struct{}

func (I) f() {}

//kindgen:kind VKind // want `misplaced kindgen:kind directive`
var v interface{ v() }

//kindgen:kind GroupKind // want `misplaced kindgen:kind directive`
type (
	//kindgen:kind JKind
	J interface{ j() }

	//kindgen:value 2
	K struct{}
)

func (K) j() {}

/*
//kindgen:kind NotDirective
*/
type L interface{ l() }

// Prose mentioning //kindgen:kind is not a directive.
type M interface{ m() }
