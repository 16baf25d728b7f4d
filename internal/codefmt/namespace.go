package codefmt

import (
	"fmt"
	"go/types"
	"iter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NS manages unique names in a namespace.
type NS map[string]struct{}

// NewNS creates a new namespace which reserves all names in the given scope
// except objects for which skip returns true. A nil skip reserves every name.
func NewNS(scope *types.Scope, skip func(types.Object) bool) NS {
	ns := make(NS)
	for _, name := range scope.Names() {
		if skip != nil && skip(scope.Lookup(name)) {
			continue
		}
		ns.Reserve(name)
	}
	return ns
}

// Reserve marks a name as used in the namespace. If the name is already used,
// it returns false.
func (ns NS) Reserve(name string) bool {
	if _, ok := ns[name]; ok {
		return false
	}
	ns[name] = struct{}{}
	return true
}

// Has reports whether the name is used in the namespace.
func (ns NS) Has(name string) bool {
	_, ok := ns[name]
	return ok
}

// JoinName joins a prefix and a name into a Go identifier. The first letter of
// name is upper-cased when prefix is not empty so that the word boundary stays
// visible.
//
//	JoinName("ShapeKind", "Circle") => "ShapeKindCircle"
//	JoinName("opKind", "add")       => "opKindAdd"
//	JoinName("", "add")             => "add"
func JoinName(prefix, name string) string {
	if prefix == "" || name == "" {
		return prefix + name
	}
	if name[0] == '_' {
		return prefix + name
	}
	// A Caser is stateful, so it is not shared between goroutines.
	upper := cases.Title(language.Und, cases.NoLower)
	return prefix + upper.String(name[:1]) + name[1:]
}

// DisambiguateName offers an alternative unique names.
func DisambiguateName(name string) iter.Seq[string] {
	if name == "" {
		panic("empty name")
	}

	return func(yield func(string) bool) {
		if !yield(name) {
			return
		}

		// Postfix "_" to the name if it already ends with a number.
		// "answer42_2" is better than "answer422".
		sep := ""
		if name[len(name)-1] != '_' && name[len(name)-1] >= '0' && name[len(name)-1] <= '9' {
			sep = "_"
		}

		for i := 2; ; i++ {
			if !yield(fmt.Sprintf("%s%s%d", name, sep, i)) {
				return
			}
		}
	}
}
