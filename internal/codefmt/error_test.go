package codefmt_test

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/kindgen/internal/codefmt"
)

type pkger struct{}

func (pkger) Pkg() *packages.Package {
	var pkg packages.Package
	pkg.Fset = token.NewFileSet()
	pkg.Fset.AddFile("test.go", -1, 100).AddLine(10)
	return &pkg
}

type poser struct{ pos int }

func (p poser) Pos() token.Pos { return token.Pos(p.pos) }

func TestErrorfNilNil(t *testing.T) {
	err := codefmt.Errorf(nil, nil, "simple error")
	assert.Equal(t, "simple error", err.Error())
}

func TestErrorfPos(t *testing.T) {
	err := codefmt.Errorf(pkger{}, poser{1}, "error")
	assert.Equal(t, "test.go:1:1: error", err.Error())
}

func TestErrorfW(t *testing.T) {
	assert.Panics(t, func() {
		_ = codefmt.Errorf(pkger{}, poser{1}, "error: %w", assert.AnError)
	})
}

func TestErrorfClass(t *testing.T) {
	err := codefmt.ConfigErrorf(pkger{}, poser{1}, "name required")
	assert.Equal(t, "test.go:1:1: name required", err.Error())
	assert.ErrorIs(t, err, codefmt.ErrConfig)
	assert.NotErrorIs(t, err, codefmt.ErrShape)

	err = codefmt.ShapeErrorf(pkger{}, poser{1}, "not an interface")
	assert.ErrorIs(t, err, codefmt.ErrShape)
	assert.NotErrorIs(t, err, codefmt.ErrConfig)

	err = codefmt.Errorf(pkger{}, poser{1}, "unclassified")
	assert.NotErrorIs(t, err, codefmt.ErrConfig)
	assert.NotErrorIs(t, err, codefmt.ErrShape)
}

func TestErrorfEnd(t *testing.T) {
	err := codefmt.Errorf(pkger{}, span{1, 5}, "spanning error")
	var codeErr *codefmt.CodeError
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, token.Pos(1), codeErr.Pos())
	assert.Equal(t, token.Pos(5), codeErr.End())
}

type span struct{ pos, end int }

func (s span) Pos() token.Pos { return token.Pos(s.pos) }
func (s span) End() token.Pos { return token.Pos(s.end) }
