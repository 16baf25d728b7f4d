package testdata

//kindgen:kind AKind derive(hash) // want `unknown capability hash; want one of values, parse, text, json, yaml, sql, method`
type A interface{ a() }

//kindgen:kind BKind sorted // want `unknown kindgen:kind specifier sorted`
type B interface{ b() }

//kindgen:kind CKind type = float64 // want `kind type must be based on an integer type; got float64`
type C interface{ c() }

//kindgen:kind DKind derive // want `derive must be written as derive\(CAPABILITY, \.\.\.\)`
type D interface{ d() }

//kindgen:kind EKind doc = EKind // want `doc must be written as doc = "text"`
type E interface{ e() }

//kindgen:kind FKind type = int8 type = int16 // want `duplicate type specifier`
type F interface{ f() }

//kindgen:kind GKind prefix = "1x" // want `prefix must be an identifier; got "1x"`
type G interface{ g() }

//kindgen:kind HKind derive(json // want `missing \) in derive\(\.\.\.\)`
type H interface{ h() }

//kindgen:kind IKind trim(true) // want `trim takes no arguments`
type I interface{ i() }

//kindgen:kind JKind derive(values, json) doc = "J." doc = "" doc = "Kinds of J." type = uint16, prefix = "J", trim
type J interface{ j() }

//kindgen:kind KKind derive(values) derive(hash, parse) // want `unknown capability hash`
type K interface{ k() }

//kindgen:kind LKind, ; // want `unexpected ; in kindgen:kind directive`
type L interface{ l() }
