package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wlrefine/builder"
)

func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"Default_zero", builder.DefaultIDFn, 0, "0", false},
		{"Default_multi", builder.DefaultIDFn, 123, "123", false},

		{"Symbol_min", builder.SymbolIDFn, 0, "A", false},
		{"Symbol_max", builder.SymbolIDFn, 25, "Z", false},
		{"Symbol_neg", builder.SymbolIDFn, -1, "", true},
		{"Symbol_tooHigh", builder.SymbolIDFn, 26, "", true},

		{"Base36_low", builder.AlphanumericIDFn, 10, "a", false},
		{"Base36_wrap", builder.AlphanumericIDFn, 36, "10", false},
		{"Base36_neg", builder.AlphanumericIDFn, -5, "", true},

		{"Excel_zero", builder.ExcelColumnIDFn, 0, "A", false},
		{"Excel_Z", builder.ExcelColumnIDFn, 25, "Z", false},
		{"Excel_AA", builder.ExcelColumnIDFn, 26, "AA", false},
		{"Excel_AZ", builder.ExcelColumnIDFn, 51, "AZ", false},
		{"Excel_ZZ", builder.ExcelColumnIDFn, 701, "ZZ", false},
		{"Excel_AAA", builder.ExcelColumnIDFn, 702, "AAA", false},
		{"Excel_neg", builder.ExcelColumnIDFn, -1, "", true},

		{"Hex_ff", builder.HexIDFn, 255, "ff", false},
		{"Hex_neg", builder.HexIDFn, -2, "", true},

		{"Prefixed_v3", builder.PrefixedIDFn("v"), 3, "v3", false},
		{"Prefixed_neg", builder.PrefixedIDFn("v"), -3, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

func TestIDScheme(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"base36", "decimal", "excel", "hex"}, builder.IDSchemes())
	for _, name := range builder.IDSchemes() {
		fn, err := builder.IDScheme(name)
		require.NoError(t, err, name)
		// Named schemes are total on non-negative indices.
		assert.NotPanics(t, func() { fn(100000) }, name)
	}

	fn, err := builder.IDScheme(builder.IDSchemeExcel)
	require.NoError(t, err)
	g, err := builder.Build(builder.Cycle(3), builder.WithIDScheme(fn))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.NodeIDs())

	_, err = builder.IDScheme("roman")
	assert.ErrorIs(t, err, builder.ErrUnknownIDScheme)
}
