package parse

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"
)

// GeneratedBy is the header line prefix of files generated by kindgen.
const GeneratedBy = "// Code generated by github.com/sublee/kindgen"

// Parser parses kindgen directives and the declarations annotated by them in
// the underlying package.
type Parser struct {
	pkg       *packages.Package
	generated []*token.File

	// tests is true for the test variant of a package. Only directives in
	// _test.go files belong to it, since the rest is generated for the
	// package itself.
	tests bool
}

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}

	p := &Parser{pkg: pkg}
	for _, file := range pkg.Syntax {
		if isKindgenGenerated(file) {
			p.generated = append(p.generated, pkg.Fset.File(file.Pos()))
		}
		if p.isTestFile(file) {
			p.tests = true
		}
	}
	return p, nil
}

// IsTestFile reports whether the file name is of a Go test file.
func IsTestFile(filename string) bool {
	return strings.HasSuffix(filename, "_test.go")
}

// Tests reports whether the package is a test variant, i.e., it has _test.go
// files.
func (p *Parser) Tests() bool { return p.tests }

func (p *Parser) isTestFile(file *ast.File) bool {
	return IsTestFile(p.pkg.Fset.File(file.Pos()).Name())
}

// SourceFiles returns the files of the package to find directives in. Files
// generated by kindgen are excluded. A generated file exists when the package
// is analyzed after generation, e.g., by go vet. For a test variant, only
// _test.go files are returned.
func (p *Parser) SourceFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.pkg.Syntax {
		if isKindgenGenerated(file) {
			continue
		}
		if p.tests && !p.isTestFile(file) {
			continue
		}
		files = append(files, file)
	}
	return files
}

// IsGenerated reports whether the position is in a file generated by kindgen.
func (p *Parser) IsGenerated(pos token.Pos) bool {
	for _, file := range p.generated {
		if file.Base() <= int(pos) && int(pos) <= file.Base()+file.Size() {
			return true
		}
	}
	return false
}

// IsGeneratedObj reports whether the object is declared in a file generated by
// kindgen.
func (p *Parser) IsGeneratedObj(obj types.Object) bool {
	return obj != nil && p.IsGenerated(obj.Pos())
}

// isKindgenGenerated checks if the file has the header of kindgen.
func isKindgenGenerated(file *ast.File) bool {
	if !ast.IsGenerated(file) {
		return false
	}
	for _, group := range file.Comments {
		if group.Pos() > file.Package {
			break
		}
		for _, comment := range group.List {
			if strings.HasPrefix(comment.Text, GeneratedBy) {
				return true
			}
		}
	}
	return false
}
