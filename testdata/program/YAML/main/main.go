package main

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sublee/kindgen/pkg/kindgenerrors"
)

//kindgen:kind OpKind derive(yaml)
//go:generate go run github.com/sublee/kindgen/cmd/kindgen
type Op interface{ isOp() }

type Add struct{ X, Y int }

type Neg struct{ X int }

func (Add) isOp() {}
func (Neg) isOp() {}

type Doc struct {
	Kind  OpKind   `yaml:"kind"`
	Kinds []OpKind `yaml:"kinds,flow"`
}

func main() {
	b, err := yaml.Marshal(Doc{Kind: OpKindOf(Neg{1}), Kinds: []OpKind{OpKindAdd, OpKindNeg}})
	fmt.Printf("%q %v\n", b, err)

	var d Doc
	err = yaml.Unmarshal(b, &d)
	fmt.Println(d.Kind, d.Kinds, err)

	err = yaml.Unmarshal([]byte("kind: Mul\n"), &d)
	fmt.Println(err, errors.Is(err, kindgenerrors.ErrInvalidKind))
	fmt.Println(d.Kind)

	_, err = yaml.Marshal(Doc{Kind: OpKind(7)})
	fmt.Println(err)
}
