package testdata

//kindgen:kind // want `kindgen:kind requires NAME as the first argument`
type A interface{ a() }

//kindgen:kind derive(json) // want `kindgen:kind requires NAME as the first argument; derive is a specifier`
type B interface{ b() }

//kindgen:kind "CKind" // want `kindgen:kind requires NAME as the first argument; got "CKind"`
type C interface{ c() }

//kindgen:kind fmt.Stringer // want `kind name must be a bare identifier; got qualified name`
type D interface{ d() }

//kindgen:kind doc = "E" // want `kindgen:kind requires NAME as the first argument; doc is a specifier`
type E interface{ e() }

//kindgen:kind FKind doc = "unterminated // want `invalid kindgen:kind directive: string literal not terminated`
type F interface{ f() }

//kindgen:kind gKind // want `kind name gKind must be exported like G`
type G interface{ g() }

//kindgen:kind HKind // want `kind name HKind must be unexported like h`
type h interface{ h() }

//kindgen:kind _ // want `kindgen:kind requires NAME as the first argument; got _`
type i interface{ i() }

//kindgen:kind string // want `kind name string is a predeclared identifier`
type j interface{ j() }
