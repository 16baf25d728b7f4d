package main

import "fmt"

//kindgen:kind NeverKind derive(values, parse)
type Never interface{ never() }

func main() {
	fmt.Println(len(NeverKindValues()))
	fmt.Println(NeverKind(0), NeverKind(0).IsValid())

	_, err := ParseNeverKind("X")
	fmt.Println(err)

	defer func() {
		fmt.Println("recovered:", recover())
	}()
	var n Never
	NeverKindOf(n)
}
