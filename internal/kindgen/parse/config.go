package parse

import (
	"errors"
	"go/token"
	"go/types"
	"slices"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/sublee/kindgen/internal/codefmt"
)

// SpecForm is the syntactic form of a [Spec].
type SpecForm int

const (
	// SpecFlag is a bare word, e.g., "trim".
	SpecFlag SpecForm = iota
	// SpecCall is a word with arguments, e.g., "derive(json, text)".
	SpecCall
	// SpecAssign is a word with a value, e.g., `doc = "..."`.
	SpecAssign
)

// Arg is a single token argument or value of a [Spec].
type Arg struct {
	Tok token.Token
	Lit string

	pos, end token.Pos
}

func (a Arg) Pos() token.Pos { return a.pos }
func (a Arg) End() token.Pos { return a.end }

// Spec is a specifier following the kind name in a kindgen:kind directive.
// Specs are kept verbatim in [Config.Specs] and interpreted into the other
// fields of [Config].
type Spec struct {
	Key   string
	Form  SpecForm
	Args  []Arg // for SpecCall
	Value Arg   // for SpecAssign
	Text  string

	pos, end token.Pos
}

func (s Spec) Pos() token.Pos { return s.pos }
func (s Spec) End() token.Pos { return s.end }

// Config is the configuration of a kind type given by a kindgen:kind
// directive. It never changes after parsing except for [Config.WithDerives].
type Config struct {
	// Name is the name of the kind type.
	Name string

	// Specs are the specifiers following the name in order.
	Specs []Spec

	// Derives are requested capabilities in order without duplicates.
	Derives []Capability

	// Doc is the doc comment text of the kind type. HasDoc is true if it was
	// given by "doc".
	Doc    string
	HasDoc bool

	// Underlying is the underlying integer type of the kind type. "int" by
	// default.
	Underlying string

	// Prefix prefixes the names of kind constants. HasPrefix is false when
	// the default, the kind name, is used.
	Prefix    string
	HasPrefix bool

	// Trim trims the common word prefix and suffix of variant names in the
	// names of kind constants.
	Trim bool

	namePos, nameEnd token.Pos
}

func (cfg Config) Pos() token.Pos { return cfg.namePos }
func (cfg Config) End() token.Pos { return cfg.nameEnd }

// Has reports whether the capability is requested directly or required by
// another requested capability.
func (cfg Config) Has(c Capability) bool {
	for _, d := range cfg.Derives {
		if d == c || slices.Contains(d.Requires(), c) {
			return true
		}
	}
	return false
}

// WithDerives returns a copy of the config with more capabilities appended.
// Duplicates are removed while the first occurrence keeps its order.
func (cfg Config) WithDerives(caps ...Capability) Config {
	set := linkedhashset.New()
	for _, c := range cfg.Derives {
		set.Add(c)
	}
	for _, c := range caps {
		set.Add(c)
	}

	cfg.Derives = make([]Capability, 0, set.Size())
	for _, v := range set.Values() {
		cfg.Derives = append(cfg.Derives, v.(Capability))
	}
	return cfg
}

var underlyingTypes = []string{
	"int", "int8", "int16", "int32", "int64",
	"uint", "uint8", "uint16", "uint32", "uint64",
}

// ParseConfig parses a kindgen:kind directive:
//
//	//kindgen:kind NAME [SPEC [,] ...]
//
// NAME must be a bare identifier. A SPEC is one of:
//
//	derive(CAPABILITY, ...)
//	doc = "text"
//	type = INTEGER_TYPE
//	prefix = "Prefix"
//	trim
func (p *Parser) ParseConfig(d Directive) (Config, error) {
	if d.Verb != VerbKind {
		panic("not kindgen:kind")
	}

	items, err := p.scan(d)
	if err != nil {
		return Config{}, err
	}

	cfg, items, err := p.parseName(d, items)
	if err != nil {
		return Config{}, err
	}

	specs, err := p.parseSpecs(d, items)
	if err != nil {
		return Config{}, err
	}
	cfg.Specs = specs

	var errs error
	seen := make(map[string]Spec)
	var derives []Capability
	var docs []string

	for _, spec := range specs {
		if prev, ok := seen[spec.Key]; ok && spec.Key != "derive" && spec.Key != "doc" {
			err := codefmt.ConfigErrorf(p, spec, `duplicate %s specifier
	previous specifier at %b`, spec.Key, prev.Pos())
			errs = errors.Join(errs, err)
			continue
		}
		seen[spec.Key] = spec

		switch spec.Key {
		case "derive":
			caps, err := p.interpretDerive(spec)
			errs = errors.Join(errs, err)
			derives = append(derives, caps...)

		case "doc":
			s, err := p.interpretString(spec, `doc = "text"`)
			errs = errors.Join(errs, err)
			docs = append(docs, s)

		case "type":
			if spec.Form != SpecAssign || spec.Value.Tok != token.IDENT {
				errs = errors.Join(errs, codefmt.ConfigErrorf(p, spec, "type must be written as type = INTEGER_TYPE"))
				continue
			}
			if !slices.Contains(underlyingTypes, spec.Value.Lit) {
				err := codefmt.ConfigErrorf(p, spec.Value, "kind type must be based on an integer type; got %s", spec.Value.Lit)
				errs = errors.Join(errs, err)
				continue
			}
			cfg.Underlying = spec.Value.Lit

		case "prefix":
			s, err := p.interpretString(spec, `prefix = "Prefix"`)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			if s != "" && !token.IsIdentifier(s) {
				errs = errors.Join(errs, codefmt.ConfigErrorf(p, spec.Value, "prefix must be an identifier; got %q", s))
				continue
			}
			cfg.Prefix = s
			cfg.HasPrefix = true

		case "trim":
			if spec.Form != SpecFlag {
				errs = errors.Join(errs, codefmt.ConfigErrorf(p, spec, "trim takes no arguments"))
				continue
			}
			cfg.Trim = true

		default:
			errs = errors.Join(errs, codefmt.ConfigErrorf(p, spec, "unknown kindgen:kind specifier %s", spec.Key))
		}
	}
	if errs != nil {
		return Config{}, errs
	}

	cfg = cfg.WithDerives(derives...)
	if len(docs) != 0 {
		cfg.Doc = strings.Join(docs, "\n")
		cfg.HasDoc = true
	}
	if cfg.Underlying == "" {
		cfg.Underlying = "int"
	}
	if !cfg.HasPrefix {
		cfg.Prefix = cfg.Name
	}
	return cfg, nil
}

// parseName parses the mandatory NAME argument. It never falls back to a
// default name.
func (p *Parser) parseName(d Directive, items []item) (Config, []item, error) {
	if len(items) == 0 {
		return Config{}, nil, codefmt.ConfigErrorf(p, d, "kindgen:kind requires NAME as the first argument")
	}

	first := items[0]
	if len(items) > 1 && first.isWord() {
		switch items[1].tok {
		case token.LPAREN, token.ASSIGN:
			return Config{}, nil, codefmt.ConfigErrorf(p, first, "kindgen:kind requires NAME as the first argument; %s is a specifier", first)
		case token.PERIOD:
			return Config{}, nil, codefmt.ConfigErrorf(p, first, "kind name must be a bare identifier; got qualified name")
		}
	}
	if first.tok != token.IDENT || first.lit == "_" {
		return Config{}, nil, codefmt.ConfigErrorf(p, first, "kindgen:kind requires NAME as the first argument; got %s", first)
	}
	if types.Universe.Lookup(first.lit) != nil {
		return Config{}, nil, codefmt.ConfigErrorf(p, first, "kind name %s is a predeclared identifier", first.lit)
	}

	cfg := Config{
		Name:    first.lit,
		namePos: first.Pos(),
		nameEnd: first.End(),
	}
	return cfg, items[1:], nil
}

// parseSpecs splits the items following NAME into specifiers. Specifiers may
// be separated by commas.
func (p *Parser) parseSpecs(d Directive, items []item) ([]Spec, error) {
	var specs []Spec

	i := 0
	next := func() (item, bool) {
		if i >= len(items) {
			return item{}, false
		}
		it := items[i]
		i++
		return it, true
	}
	peek := func() token.Token {
		if i >= len(items) {
			return token.EOF
		}
		return items[i].tok
	}

	for {
		key, ok := next()
		if !ok {
			break
		}
		if key.tok == token.COMMA {
			continue
		}
		if !key.isWord() {
			return nil, codefmt.ConfigErrorf(p, key, "unexpected %s in kindgen:kind directive", key)
		}

		spec := Spec{Key: key.lit, Form: SpecFlag, pos: key.Pos(), end: key.End()}
		endOff := key.end

		switch peek() {
		case token.LPAREN:
			spec.Form = SpecCall
			next()
			closed := false
			for !closed {
				arg, ok := next()
				if !ok {
					return nil, codefmt.ConfigErrorf(p, key, "missing ) in %s(...)", key)
				}
				switch {
				case arg.tok == token.RPAREN:
					closed = true
					spec.end = arg.End()
					endOff = arg.end
				case arg.tok == token.COMMA:
				case arg.isWord() || arg.tok.IsLiteral():
					spec.Args = append(spec.Args, Arg{Tok: arg.tok, Lit: arg.lit, pos: arg.Pos(), end: arg.End()})
				default:
					return nil, codefmt.ConfigErrorf(p, arg, "unexpected %s in %s(...)", arg, key)
				}
			}

		case token.ASSIGN:
			spec.Form = SpecAssign
			next()
			value, ok := next()
			if !ok || !(value.isWord() || value.tok.IsLiteral()) {
				return nil, codefmt.ConfigErrorf(p, key, "missing value after %s =", key)
			}
			spec.Value = Arg{Tok: value.tok, Lit: value.lit, pos: value.Pos(), end: value.End()}
			spec.end = value.End()
			endOff = value.end
		}

		spec.Text = d.Args[key.off:endOff]
		specs = append(specs, spec)
	}
	return specs, nil
}

func (p *Parser) interpretDerive(spec Spec) ([]Capability, error) {
	if spec.Form != SpecCall || len(spec.Args) == 0 {
		return nil, codefmt.ConfigErrorf(p, spec, "derive must be written as derive(CAPABILITY, ...)")
	}

	var caps []Capability
	var errs error
	for _, arg := range spec.Args {
		c, ok := ParseCapability(arg.Lit)
		if arg.Tok != token.IDENT || !ok {
			err := codefmt.ConfigErrorf(p, arg, "unknown capability %s; want one of %s", arg.Lit, capabilityNames())
			errs = errors.Join(errs, err)
			continue
		}
		caps = append(caps, c)
	}
	return caps, errs
}

func (p *Parser) interpretString(spec Spec, syntax string) (string, error) {
	if spec.Form != SpecAssign || spec.Value.Tok != token.STRING {
		return "", codefmt.ConfigErrorf(p, spec, "%s must be written as %s", spec.Key, syntax)
	}
	s, err := strconv.Unquote(spec.Value.Lit)
	if err != nil {
		return "", codefmt.ConfigErrorf(p, spec.Value, "invalid string %s", spec.Value.Lit)
	}
	return s, nil
}
