package gen

import (
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreshName(t *testing.T) {
	used := map[string]bool{"v": true, "v1": true, "v2": true}
	got := FreshName("v", func(name string) bool { return used[name] })
	assert.Equal(t, "v3", got)
}

func TestFreshNameNeverBase(t *testing.T) {
	got := FreshName("v", func(string) bool { return false })
	assert.Equal(t, "v1", got)
}

func TestUsedByTypeParams(t *testing.T) {
	tparam := func(name string) *types.TypeParam {
		obj := types.NewTypeName(token.NoPos, nil, name, nil)
		return types.NewTypeParam(obj, types.NewInterfaceType(nil, nil))
	}
	sig := types.NewSignatureType(nil, nil, []*types.TypeParam{tparam("v1"), tparam("T")}, nil, nil, false)

	has := func(name string) bool { return name == "x" }
	used := usedBy(has, sig.TypeParams())

	assert.True(t, used("x"))
	assert.True(t, used("v1"))
	assert.True(t, used("T"))
	assert.False(t, used("v2"))

	assert.Equal(t, "v2", FreshName("v", used))
}

func TestUsedByNoTypeParams(t *testing.T) {
	used := usedBy(func(string) bool { return false }, nil)
	assert.False(t, used("v1"))
}
