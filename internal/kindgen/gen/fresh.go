package gen

import (
	"fmt"
	"go/types"
)

// FreshName returns the first of base1, base2, ... which is not used. It never
// returns base itself, so the result does not look like a user-chosen name.
func FreshName(base string, used func(string) bool) string {
	for i := 1; ; i++ {
		name := fmt.Sprintf("%s%d", base, i)
		if !used(name) {
			return name
		}
	}
}

// usedBy returns a predicate reporting whether a name is in the namespace or
// is one of the type parameters.
func usedBy(has func(string) bool, tparams *types.TypeParamList) func(string) bool {
	return func(name string) bool {
		if has(name) {
			return true
		}
		for i := 0; i < tparams.Len(); i++ {
			if tparams.At(i).Obj().Name() == name {
				return true
			}
		}
		return false
	}
}
