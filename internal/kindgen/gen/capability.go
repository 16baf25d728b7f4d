package gen

import (
	"slices"
	"strings"

	"github.com/sublee/kindgen/internal/codefmt"
	"github.com/sublee/kindgen/internal/kindgen/parse"
)

// ErrorsPkgPath is the package path of the runtime errors returned by
// generated code.
const ErrorsPkgPath = "github.com/sublee/kindgen/pkg/kindgenerrors"

func (k *Kind) writeCapabilities(w *codefmt.Writer) {
	cfg := k.Config()
	for _, c := range parse.Capabilities {
		if !cfg.Has(c) {
			continue
		}

		switch c {
		case parse.CapValues:
			k.writeValues(w)
		case parse.CapParse:
			k.writeParse(w)
		case parse.CapText:
			k.writeText(w)
		case parse.CapJSON:
			k.writeJSON(w)
		case parse.CapYAML:
			k.writeYAML(w)
		case parse.CapSQL:
			k.writeSQL(w)
		case parse.CapMethod:
			k.writeKindMethods(w)
		}
	}
}

func (k *Kind) writeValues(w *codefmt.Writer) {
	w.Printf("// %s returns all values of %s in declaration order.\n", k.ValuesName, k.TypeName)
	w.Printf("func %s() []%s {\n", k.ValuesName, k.TypeName)
	w.Printf("return []%s{%s}\n", k.TypeName, strings.Join(k.Consts, ", "))
	w.Printf("}\n\n")

	w.Printf("// IsValid reports whether %s is one of %s.\n", k.Recv, k.ValuesName)
	w.Printf("func (%s %s) IsValid() bool {\n", k.Recv, k.TypeName)
	if len(k.Consts) == 0 {
		w.Printf("return false\n")
	} else {
		w.Printf("switch %s {\n", k.Recv)
		w.Printf("case %s:\n", strings.Join(k.Consts, ", "))
		w.Printf("return true\n")
		w.Printf("}\n")
		w.Printf("return false\n")
	}
	w.Printf("}\n\n")
}

func (k *Kind) writeParse(w *codefmt.Writer) {
	errorsPkg := w.Import(ErrorsPkgPath, "kindgenerrors")

	param := "s"
	if slices.Contains(k.Consts, param) {
		param = FreshName(param, func(name string) bool { return slices.Contains(k.Consts, name) })
	}

	w.Printf("// %s returns the %s of the variant named %s.\n", k.ParseName, k.TypeName, param)
	w.Printf("func %s(%s string) (%s, error) {\n", k.ParseName, param, k.TypeName)
	if len(k.Consts) != 0 {
		w.Printf("switch %s {\n", param)
		for i, name := range k.Consts {
			w.Printf("case %q:\n", k.decl.Variants[i].Name)
			w.Printf("return %s, nil\n", name)
		}
		w.Printf("}\n")
	}
	w.Printf("return 0, &%s.InvalidKindError{Kind: %q, Text: %s}\n", errorsPkg, k.TypeName, param)
	w.Printf("}\n\n")
}

// writeValidName writes statements which let s be the name of the receiver
// or return the error of the parse function.
func (k *Kind) writeValidName(w *codefmt.Writer, zero string) {
	w.Printf("s := %s.String()\n", k.Recv)
	w.Printf("if _, err := %s(s); err != nil {\n", k.ParseName)
	w.Printf("return %s, err\n", zero)
	w.Printf("}\n")
}

// writeSetParsed writes statements which parse s into the receiver.
func (k *Kind) writeSetParsed(w *codefmt.Writer) {
	w.Printf("parsed, err := %s(s)\n", k.ParseName)
	w.Printf("if err != nil {\n")
	w.Printf("return err\n")
	w.Printf("}\n")
	w.Printf("*%s = parsed\n", k.Recv)
	w.Printf("return nil\n")
}

func (k *Kind) writeText(w *codefmt.Writer) {
	w.Printf("// MarshalText implements encoding.TextMarshaler.\n")
	w.Printf("func (%s %s) MarshalText() ([]byte, error) {\n", k.Recv, k.TypeName)
	k.writeValidName(w, "nil")
	w.Printf("return []byte(s), nil\n")
	w.Printf("}\n\n")

	w.Printf("// UnmarshalText implements encoding.TextUnmarshaler.\n")
	w.Printf("func (%s *%s) UnmarshalText(text []byte) error {\n", k.Recv, k.TypeName)
	w.Printf("s := string(text)\n")
	k.writeSetParsed(w)
	w.Printf("}\n\n")
}

func (k *Kind) writeJSON(w *codefmt.Writer) {
	jsonPkg := w.Import("encoding/json", "")

	w.Printf("// MarshalJSON implements json.Marshaler. %s is encoded as the name of\n", k.TypeName)
	w.Printf("// the variant.\n")
	w.Printf("func (%s %s) MarshalJSON() ([]byte, error) {\n", k.Recv, k.TypeName)
	k.writeValidName(w, "nil")
	w.Printf("return %s.Marshal(s)\n", jsonPkg)
	w.Printf("}\n\n")

	w.Printf("// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves %s\n", k.Recv)
	w.Printf("// unchanged.\n")
	w.Printf("func (%s *%s) UnmarshalJSON(data []byte) error {\n", k.Recv, k.TypeName)
	w.Printf("if string(data) == \"null\" {\n")
	w.Printf("return nil\n")
	w.Printf("}\n")
	w.Printf("var s string\n")
	w.Printf("if err := %s.Unmarshal(data, &s); err != nil {\n", jsonPkg)
	w.Printf("return err\n")
	w.Printf("}\n")
	k.writeSetParsed(w)
	w.Printf("}\n\n")
}

func (k *Kind) writeYAML(w *codefmt.Writer) {
	w.Printf("// MarshalYAML implements yaml.Marshaler of gopkg.in/yaml.v3.\n")
	w.Printf("func (%s %s) MarshalYAML() (any, error) {\n", k.Recv, k.TypeName)
	k.writeValidName(w, "nil")
	w.Printf("return s, nil\n")
	w.Printf("}\n\n")

	w.Printf("// UnmarshalYAML implements yaml.Unmarshaler of gopkg.in/yaml.v2 and the\n")
	w.Printf("// obsolete unmarshaler of gopkg.in/yaml.v3.\n")
	w.Printf("func (%s *%s) UnmarshalYAML(unmarshal func(any) error) error {\n", k.Recv, k.TypeName)
	w.Printf("var s string\n")
	w.Printf("if err := unmarshal(&s); err != nil {\n")
	w.Printf("return err\n")
	w.Printf("}\n")
	k.writeSetParsed(w)
	w.Printf("}\n\n")
}

func (k *Kind) writeSQL(w *codefmt.Writer) {
	driverPkg := w.Import("database/sql/driver", "")
	fmtPkg := w.Import("fmt", "")

	w.Printf("// Value implements driver.Valuer. %s is stored as the name of the\n", k.TypeName)
	w.Printf("// variant.\n")
	w.Printf("func (%s %s) Value() (%s.Value, error) {\n", k.Recv, k.TypeName, driverPkg)
	k.writeValidName(w, "nil")
	w.Printf("return s, nil\n")
	w.Printf("}\n\n")

	w.Printf("// Scan implements sql.Scanner.\n")
	w.Printf("func (%s *%s) Scan(src any) error {\n", k.Recv, k.TypeName)
	w.Printf("var s string\n")
	w.Printf("switch src := src.(type) {\n")
	w.Printf("case string:\n")
	w.Printf("s = src\n")
	w.Printf("case []byte:\n")
	w.Printf("s = string(src)\n")
	w.Printf("default:\n")
	w.Printf("return %s.Errorf(\"kindgen: cannot scan %%T into %s\", src)\n", fmtPkg, k.TypeName)
	w.Printf("}\n")
	k.writeSetParsed(w)
	w.Printf("}\n\n")
}

// writeKindMethods writes a Kind method on every variant type, so that the
// variants implement kindgen.ToKind.
func (k *Kind) writeKindMethods(w *codefmt.Writer) {
	for i, v := range k.decl.Variants {
		recv := v.Type.T
		if v.Pointer {
			recv = v.Type.Ref().T
		}
		w.Printf("// Kind returns %s.\n", k.Consts[i])
		w.Printf("func (%t) Kind() %s {\n", recv, k.TypeName)
		w.Printf("return %s\n", k.Consts[i])
		w.Printf("}\n\n")
	}
}
