package main

import "fmt"

//kindgen:kind ExprKind derive(values)
type Expr[v1 fmt.Stringer] interface {
	eval() v1
}

type Lit[T fmt.Stringer] struct{ Value T }

type Neg[U fmt.Stringer] struct{ X Expr[U] }

type Pair[A, B any] struct{}

func (l Lit[T]) eval() T  { return l.Value }
func (n *Neg[U]) eval() U { return n.X.eval() }

func v2() string { return "v2" }

type name string

func (n name) String() string { return string(n) }

func main() {
	var e Expr[name] = Lit[name]{Value: "x"}
	fmt.Println(ExprKindOf(e))

	e = &Neg[name]{X: e}
	fmt.Println(ExprKindOf(e), e.eval())

	fmt.Println(ExprKindValues())
	fmt.Println(ExprKind(5).IsValid(), ExprKindNeg.IsValid())
}
