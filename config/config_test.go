package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupPreset(t *testing.T) {
	o := DefaultOptions()
	o.Group = true

	p, err := Resolve(o)
	require.NoError(t, err)

	assert.Equal(t, 100, p.ShiftAmount)
	assert.Equal(t, 0.85, p.Squish)
	assert.Equal(t, SquishAll, p.SquishScope)
	assert.Equal(t, DecorationNone, p.Decoration)
	assert.Equal(t, "NGroup", p.Suffix())
}

func TestDefaultsResolveToUnderline(t *testing.T) {
	p, err := Resolve(DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, DecorationUnderscore, p.Decoration)
	assert.Equal(t, DecimalGrouped, p.DecimalMode)
	assert.True(t, p.Rename)
	assert.Equal(t, "Numderline", p.Suffix())
}

func TestNoOpConfigurationIsLegal(t *testing.T) {
	o := DefaultOptions()
	o.Underline = false

	p, err := Resolve(o)
	require.NoError(t, err)
	assert.Equal(t, DecorationNone, p.Decoration)
	assert.Equal(t, 0, p.ShiftAmount)
	assert.Equal(t, "N", p.Suffix())
}

func TestSuffixDerivation(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Options)
		want string
	}{
		{"commas", func(o *Options) { o.Underline = false; o.AddCommas = true }, "Nommas"},
		{"spaceless commas", func(o *Options) {
			o.Underline = false
			o.AddCommas = true
			o.SpacelessCommas = true
		}, "NonoCommas"},
		{"shift", func(o *Options) { o.Underline = false; o.ShiftAmount = 100 }, "NShift100"},
		{"squish", func(o *Options) { o.Underline = false; o.Squish = 0.85 }, "NSquish0p85"},
		{"squish all", func(o *Options) {
			o.Underline = false
			o.Squish = 0.9
			o.SquishAll = true
		}, "NSquish0p9All"},
		{"underline shift", func(o *Options) { o.ShiftAmount = 50 }, "NumderlineShift50"},
		{"sub font", func(o *Options) { o.SubFontPath = "other.sfd" }, "NumderlineSub"},
		{"debug no decimals", func(o *Options) {
			o.Underline = false
			o.DebugAnnotate = true
			o.Decimals = false
		}, "NDebugNoDecimals"},
		{"group with commas", func(o *Options) {
			o.Group = true
			o.AddCommas = true
		}, "NommasGroup"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := DefaultOptions()
			tc.mod(&o)
			p, err := Resolve(o)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Suffix())
		})
	}
}

func TestSuffixRoundTrip(t *testing.T) {
	o := DefaultOptions()
	o.ShiftAmount = 75
	o.Squish = 0.95

	p1, err := Resolve(o)
	require.NoError(t, err)
	p2, err := Resolve(o)
	require.NoError(t, err)
	assert.Equal(t, p1.Suffix(), p2.Suffix())
	assert.Equal(t, p1, p2)
}

func TestConflictingOptions(t *testing.T) {
	var cfgErr *Error

	o := DefaultOptions()
	o.SpacelessCommas = true
	_, err := Resolve(o)
	require.ErrorAs(t, err, &cfgErr)

	o = DefaultOptions()
	o.AddCommas = true // underline still on
	_, err = Resolve(o)
	require.ErrorAs(t, err, &cfgErr)

	o = DefaultOptions()
	o.Squish = -0.5
	_, err = Resolve(o)
	require.ErrorAs(t, err, &cfgErr)
}

func TestClassesConstant(t *testing.T) {
	p, err := Resolve(DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 7, p.Classes())
}
