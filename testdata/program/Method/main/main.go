package main

import (
	"fmt"

	"github.com/sublee/kindgen"
)

//kindgen:kind eventKind derive(method, parse) doc = "eventKind tells events apart." doc = "" doc = "It is never exported."
type event interface {
	isEvent()
}

type (
	started struct{ at int }
	stopped struct {
		at     int
		reason string
	}
)

type tick int

func (started) isEvent()  {}
func (*stopped) isEvent() {}
func (tick) isEvent()     {}

func describe(v any) string {
	if k, ok := kindgen.KindOf[eventKind](v); ok {
		return k.String()
	}
	return "not an event"
}

func main() {
	fmt.Println(started{}.Kind(), (&stopped{}).Kind(), tick(3).Kind())
	fmt.Println(describe(started{}), describe(&stopped{}), describe(stopped{}), describe(42))

	var _ kindgen.ToKind[eventKind] = tick(0)

	k, err := parseEventKind("stopped")
	fmt.Println(k == eventKindStopped, err)
}
