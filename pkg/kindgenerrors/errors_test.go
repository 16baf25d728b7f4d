package kindgenerrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sublee/kindgen/pkg/kindgenerrors"
)

func TestInvalidKindError(t *testing.T) {
	err := &kindgenerrors.InvalidKindError{Kind: "ShapeKind", Text: "Hexagon"}
	assert.Equal(t, `invalid ShapeKind: "Hexagon"`, err.Error())
}

func TestInvalidKindErrorQuotes(t *testing.T) {
	err := &kindgenerrors.InvalidKindError{Kind: "ShapeKind", Text: "\"\n"}
	assert.Equal(t, `invalid ShapeKind: "\"\n"`, err.Error())
}

func TestErrorIs(t *testing.T) {
	var err error = &kindgenerrors.InvalidKindError{Kind: "ShapeKind", Text: ""}
	assert.ErrorIs(t, err, kindgenerrors.ErrInvalidKind)

	err = fmt.Errorf("decoding: %w", err)
	assert.ErrorIs(t, err, kindgenerrors.ErrInvalidKind)

	assert.NotErrorIs(t, errors.New("invalid kind"), kindgenerrors.ErrInvalidKind)
}

func TestErrorAs(t *testing.T) {
	err := fmt.Errorf("decoding: %w", &kindgenerrors.InvalidKindError{Kind: "OpKind", Text: "mul"})

	var invalid *kindgenerrors.InvalidKindError
	if assert.ErrorAs(t, err, &invalid) {
		assert.Equal(t, "OpKind", invalid.Kind)
		assert.Equal(t, "mul", invalid.Text)
	}
}
