package parse

import (
	"errors"
	"go/ast"
	"go/format"
	"go/parser"
	"go/scanner"
	"go/token"
	"strings"

	"github.com/sublee/kindgen/internal/codefmt"
)

const directivePrefix = "//kindgen:"

// Directive verbs.
const (
	// VerbKind annotates a sealed interface to derive its kind type:
	//
	//	//kindgen:kind ShapeKind derive(json) doc = "ShapeKind is the kind of Shape."
	VerbKind = "kind"

	// VerbValue annotates a variant to force the value of its kind constant:
	//
	//	//kindgen:value 10
	VerbValue = "value"
)

// Directive is a "//kindgen:VERB ARGS" comment line.
type Directive struct {
	Verb string
	Args string

	comment *ast.Comment
	argsPos token.Pos
}

func (d Directive) Pos() token.Pos { return d.comment.Slash }
func (d Directive) End() token.Pos { return d.comment.End() }

// parseDirective recognizes a kindgen directive comment. Like "//go:"
// directives, there must be no space between "//" and "kindgen:".
func parseDirective(c *ast.Comment) (Directive, bool) {
	if !strings.HasPrefix(c.Text, directivePrefix) {
		return Directive{}, false
	}

	rest := c.Text[len(directivePrefix):]
	d := Directive{Verb: rest, comment: c, argsPos: c.End()}
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		// Leading spaces of Args are kept to keep offsets aligned.
		d.Verb = rest[:i]
		d.Args = rest[i:]
		d.argsPos = c.Slash + token.Pos(len(directivePrefix)+i)
	}
	return d, true
}

// directives collects kindgen directives in the comment groups. Other comments
// including directives of other tools are ignored.
func directives(groups ...*ast.CommentGroup) []Directive {
	var ds []Directive
	for _, group := range groups {
		if group == nil {
			continue
		}
		for _, c := range group.List {
			if d, ok := parseDirective(c); ok {
				ds = append(ds, d)
			}
		}
	}
	return ds
}

// item is a token in the arguments of a directive.
type item struct {
	tok      token.Token
	lit      string
	pos      token.Pos
	off, end int // byte offsets in Directive.Args
}

func (it item) Pos() token.Pos { return it.pos }
func (it item) End() token.Pos { return it.pos + token.Pos(it.end-it.off) }

// isWord reports whether the item can be a specifier key or a capability name.
// Keywords are words too, so that "type = uint8" is a valid specifier.
func (it item) isWord() bool {
	return it.tok == token.IDENT || it.tok.IsKeyword()
}

func (it item) String() string {
	if it.lit != "" {
		return it.lit
	}
	return it.tok.String()
}

// scan tokenizes the arguments of the directive with the Go scanner. The
// positions of the tokens are mapped back to the comment in the package file
// set, so errors point at the offending token.
func (p *Parser) scan(d Directive) ([]item, error) {
	src := []byte(d.Args)
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var err error
	var s scanner.Scanner
	s.Init(file, src, func(pos token.Position, msg string) {
		if err == nil {
			err = codefmt.ConfigErrorf(p, codefmt.Pos(d.argsPos+token.Pos(pos.Offset)), "invalid kindgen:%s directive: %s", d.Verb, msg)
		}
	}, 0)

	var items []item
	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.SEMICOLON && lit == "\n" {
			// Automatically inserted
			continue
		}

		off := file.Offset(pos)
		width := len(lit)
		if width == 0 {
			width = len(tok.String())
		}
		items = append(items, item{
			tok: tok,
			lit: lit,
			pos: d.argsPos + token.Pos(off),
			off: off,
			end: off + width,
		})
	}
	return items, err
}

// ParseValue parses the expression of a kindgen:value directive. The
// expression is checked only for syntax. Whether it is a valid constant of the
// kind type is left to the Go compiler.
func (p *Parser) ParseValue(d Directive) (string, error) {
	if items, err := p.scan(d); err == nil && len(items) == 0 {
		// Nothing but spaces and comments
		return "", codefmt.ConfigErrorf(p, d, "kindgen:value requires an expression")
	}

	fset := token.NewFileSet()
	expr, err := parser.ParseExprFrom(fset, "", d.Args, 0)
	if err != nil {
		var list scanner.ErrorList
		if errors.As(err, &list) && len(list) != 0 {
			pos := d.argsPos + token.Pos(list[0].Pos.Offset)
			return "", codefmt.ConfigErrorf(p, codefmt.Pos(pos), "invalid kindgen:value expression: %s", list[0].Msg)
		}
		return "", codefmt.ConfigErrorf(p, d, "invalid kindgen:value expression: %s", err.Error())
	}

	var b strings.Builder
	if err := format.Node(&b, fset, expr); err != nil {
		panic(err) // should never happen because a parsed expression is printable
	}
	return b.String(), nil
}
