package gen

import (
	"strings"

	"github.com/sublee/kindgen/internal/codefmt"
)

// WriteTypeCode writes the kind type, its constants, its String method, and
// the code of derived capabilities.
func (k *Kind) WriteTypeCode(w *codefmt.Writer) {
	cfg := k.Config()

	if cfg.HasDoc {
		for _, line := range strings.Split(cfg.Doc, "\n") {
			if line == "" {
				w.Printf("//\n")
			} else {
				w.Printf("// %s\n", line)
			}
		}
	} else {
		w.Printf("// %s enumerates the variants of %s.\n", k.TypeName, k.decl.Name())
	}
	w.Printf("type %s %s\n\n", k.TypeName, cfg.Underlying)

	if len(k.Consts) != 0 {
		w.Printf("const (\n")
		for i, name := range k.Consts {
			if k.Values[i] == "" {
				w.Printf("%s\n", name)
			} else {
				w.Printf("%s %s = %s\n", name, k.TypeName, k.Values[i])
			}
		}
		w.Printf(")\n\n")
	}

	k.writeString(w)
	k.writeCapabilities(w)
}

// writeString writes the String method. It returns the variant name, or the
// numeric value like "ShapeKind(42)" for a value out of the constants.
func (k *Kind) writeString(w *codefmt.Writer) {
	strconvPkg := w.Import("strconv", "")

	w.Printf("// String returns the name of the variant of %s.\n", k.decl.Name())
	w.Printf("func (%s %s) String() string {\n", k.Recv, k.TypeName)
	if len(k.Consts) != 0 {
		w.Printf("switch %s {\n", k.Recv)
		for i, name := range k.Consts {
			w.Printf("case %s:\n", name)
			w.Printf("return %q\n", k.decl.Variants[i].Name)
		}
		w.Printf("}\n")
	}
	w.Printf("return %q + %s + \")\"\n", k.TypeName+"(", k.formatInt(strconvPkg))
	w.Printf("}\n\n")
}

// formatInt returns an expression formatting the receiver in decimal.
func (k *Kind) formatInt(strconvPkg string) string {
	if k.unsigned() {
		return strconvPkg + ".FormatUint(uint64(" + k.Recv + "), 10)"
	}
	return strconvPkg + ".FormatInt(int64(" + k.Recv + "), 10)"
}

func (k *Kind) unsigned() bool {
	return strings.HasPrefix(k.Config().Underlying, "uint")
}
