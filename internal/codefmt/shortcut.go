package codefmt

import (
	"go/token"
)

// FormatPos is a shorthand for [Formatter.Pos].
func FormatPos(pkger Pkger, pos token.Pos) string {
	return newByPkger(pkger).Pos(pos)
}

func Errorf(pkger Pkger, poser Poser, format string, args ...any) error {
	return newByPkger(pkger).Errorf(poser, format, args...)
}

func ConfigErrorf(pkger Pkger, poser Poser, format string, args ...any) error {
	return newByPkger(pkger).ConfigErrorf(poser, format, args...)
}

func ShapeErrorf(pkger Pkger, poser Poser, format string, args ...any) error {
	return newByPkger(pkger).ShapeErrorf(poser, format, args...)
}

type poser struct{ pos token.Pos }

func (p poser) Pos() token.Pos { return p.pos }
func Pos(pos token.Pos) Poser  { return poser{pos} }
