package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sublee/kindgen/internal/kindgen/parse"
)

func variants(names ...string) []parse.Variant {
	vs := make([]parse.Variant, len(names))
	for i, name := range names {
		vs[i] = parse.Variant{Name: name}
	}
	return vs
}

func TestConstNames(t *testing.T) {
	tests := []struct {
		name     string
		cfg      parse.Config
		variants []string
		want     []string
	}{
		{
			name:     "Prefix",
			cfg:      parse.Config{Prefix: "ShapeKind"},
			variants: []string{"Circle", "Square"},
			want:     []string{"ShapeKindCircle", "ShapeKindSquare"},
		},
		{
			name:     "EmptyPrefix",
			cfg:      parse.Config{},
			variants: []string{"lit", "neg"},
			want:     []string{"lit", "neg"},
		},
		{
			name:     "UnexportedPrefix",
			cfg:      parse.Config{Prefix: "eventKind"},
			variants: []string{"click", "Scroll"},
			want:     []string{"eventKindClick", "eventKindScroll"},
		},
		{
			name:     "TrimPrefix",
			cfg:      parse.Config{Prefix: "Op", Trim: true},
			variants: []string{"OpAdd", "OpSub", "OpMul"},
			want:     []string{"OpAdd", "OpSub", "OpMul"},
		},
		{
			name:     "TrimSuffix",
			cfg:      parse.Config{Trim: true},
			variants: []string{"AddExpr", "SubExpr"},
			want:     []string{"Add", "Sub"},
		},
		{
			name:     "TrimBoth",
			cfg:      parse.Config{Prefix: "K", Trim: true},
			variants: []string{"BinAddExpr", "BinSubExpr"},
			want:     []string{"KAdd", "KSub"},
		},
		{
			name:     "TrimWouldEmpty",
			cfg:      parse.Config{Prefix: "K", Trim: true},
			variants: []string{"Op", "OpAdd"},
			want:     []string{"KOp", "KOpAdd"},
		},
		{
			name:     "TrimSingle",
			cfg:      parse.Config{Prefix: "K", Trim: true},
			variants: []string{"OpAdd"},
			want:     []string{"KOpAdd"},
		},
		{
			name:     "NoVariants",
			cfg:      parse.Config{Prefix: "K", Trim: true},
			variants: nil,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := constNames(tt.cfg, variants(tt.variants...))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlanValuesIota(t *testing.T) {
	got := planValues([]string{"KA", "KB", "KC"}, variants("A", "B", "C"))
	assert.Equal(t, []string{"iota", "", ""}, got)
}

func TestPlanValuesEmpty(t *testing.T) {
	got := planValues(nil, nil)
	assert.Empty(t, got)
}

func TestPlanValuesExplicit(t *testing.T) {
	vs := variants("A", "B", "C", "D")
	vs[1].Value = "10"
	vs[3].Value = "KA - 1"

	got := planValues([]string{"KA", "KB", "KC", "KD"}, vs)
	assert.Equal(t, []string{"0", "10", "KB + 1", "KA - 1"}, got)
}

func TestPlanValuesFirstExplicit(t *testing.T) {
	vs := variants("A", "B")
	vs[0].Value = "1"

	got := planValues([]string{"KA", "KB"}, vs)
	assert.Equal(t, []string{"1", "KA + 1"}, got)
}
