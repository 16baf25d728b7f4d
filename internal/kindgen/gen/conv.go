package gen

import (
	"github.com/sublee/kindgen/internal/codefmt"
)

// WriteConvCode writes the conversion functions from the interface to the kind
// type. XOfPtr holds a type switch over the variants and XOf delegates to it.
// Type parameters of the interface are declared on both functions.
func (k *Kind) WriteConvCode(w *codefmt.Writer) {
	decl := k.decl
	tparams := w.TypeParams(decl.TypeParams())
	iface := decl.Type.T
	v := k.Param

	w.Printf("// %s returns the %s of the variant *%s holds. It panics if *%s is nil or\n", k.OfPtrName, k.TypeName, v, v)
	w.Printf("// not a variant of %s.\n", decl.Name())
	w.Printf("func %s%s(%s *%t) %s {\n", k.OfPtrName, tparams, v, iface, k.TypeName)
	if len(decl.Variants) == 0 {
		w.Printf("panic(%q)\n", "unreachable: "+decl.Name()+" has no variants")
	} else {
		fmtPkg := w.Import("fmt", "")

		w.Printf("switch (*%s).(type) {\n", v)
		for i, variant := range decl.Variants {
			if variant.Pointer {
				w.Printf("case %t:\n", variant.Type.Ref().T)
			} else {
				w.Printf("case %t, %t:\n", variant.Type.T, variant.Type.Ref().T)
			}
			w.Printf("return %s\n", k.Consts[i])
		}
		w.Printf("default:\n")
		w.Printf("panic(%s.Sprintf(%q, *%s))\n", fmtPkg, "kindgen: %T is not a variant of "+decl.Name(), v)
		w.Printf("}\n")
	}
	w.Printf("}\n\n")

	w.Printf("// %s returns the %s of the variant %s holds. It panics if %s is nil or not\n", k.OfName, k.TypeName, v, v)
	w.Printf("// a variant of %s.\n", decl.Name())
	w.Printf("func %s%s(%s %t) %s {\n", k.OfName, tparams, v, iface, k.TypeName)
	w.Printf("return %s(&%s)\n", k.OfPtrName, v)
	w.Printf("}\n\n")
}
