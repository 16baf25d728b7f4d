package main

import "fmt"

// Opcode is an instruction.
//
//kindgen:kind OpcodeKind type = uint8, prefix = "Op", trim
type Opcode interface{ opcode() }

//kindgen:value 1
type OpcodePush struct{ N int }

type OpcodePop struct{}

// OpcodeJump jumps to an address.
//
//kindgen:value 0x10 - 6
type OpcodeJump struct{ To int }

type OpcodeHalt struct{}

func (OpcodePush) opcode() {}
func (OpcodePop) opcode()  {}
func (OpcodeJump) opcode() {}
func (OpcodeHalt) opcode() {}

func main() {
	for _, op := range []Opcode{OpcodePush{1}, OpcodePop{}, OpcodeJump{3}, OpcodeHalt{}} {
		k := OpcodeKindOf(op)
		fmt.Println(k, uint8(k))
	}
	fmt.Println(OpPush, OpHalt)
	fmt.Println(OpcodeKind(3))
}
