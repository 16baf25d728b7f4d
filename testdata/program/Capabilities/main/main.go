package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sublee/kindgen/pkg/kindgenerrors"
)

//kindgen:kind OpKind derive(json, sql) derive(text, json)
//go:generate go run github.com/sublee/kindgen/cmd/kindgen
type Op interface{ isOp() }

type Add struct{ X, Y int }

type Neg struct{ X int }

func (Add) isOp() {}
func (Neg) isOp() {}

type Record struct {
	Kind  OpKind   `json:"kind"`
	Kinds []OpKind `json:"kinds"`
}

func main() {
	b, err := json.Marshal(Record{Kind: OpKindOf(Add{1, 2}), Kinds: []OpKind{OpKindNeg, OpKindAdd}})
	fmt.Println(string(b), err)

	var r Record
	err = json.Unmarshal(b, &r)
	fmt.Println(r.Kind, r.Kinds, err)

	err = json.Unmarshal([]byte(`{"kind":"Mul"}`), &r)
	fmt.Println(err, errors.Is(err, kindgenerrors.ErrInvalidKind))

	_, err = json.Marshal(OpKind(9))
	fmt.Println(err)

	v, err := OpKindNeg.Value()
	fmt.Println(v, err)

	var k OpKind
	err = k.Scan([]byte("Neg"))
	fmt.Println(k, err)
	err = k.Scan(3)
	fmt.Println(k, err)

	text, err := OpKindAdd.MarshalText()
	fmt.Println(string(text), err)
	err = k.UnmarshalText([]byte("Add"))
	fmt.Println(k, err)

	k = OpKindNeg
	err = json.Unmarshal([]byte("null"), &k)
	fmt.Println(k, err)
	err = json.Unmarshal([]byte(`{"kind":null}`), &r)
	fmt.Println(r.Kind, err)
}
