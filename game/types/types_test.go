package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionToPoint(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Point
	}{
		{Up, Point{0, -1}},
		{Right, Point{1, 0}},
		{Down, Point{0, 1}},
		{Left, Point{-1, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.dir.ToPoint())
			back := tc.dir.Opposite().ToPoint()
			assert.Equal(t, Point{}, tc.want.Add(back))
		})
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: 25, Height: 25}

	assert.True(t, g.Contains(Point{0, 0}))
	assert.True(t, g.Contains(Point{24, 24}))
	assert.False(t, g.Contains(Point{-1, 0}))
	assert.False(t, g.Contains(Point{0, 25}))
	assert.False(t, g.Contains(Point{25, 3}))
	assert.Equal(t, Point{12, 12}, g.Center())
	assert.Equal(t, 625, g.Cells())
}

func TestParseVariant(t *testing.T) {
	for _, name := range []string{"classic", "plain", "quick"} {
		v, err := ParseVariant(name)
		require.NoError(t, err)
		assert.Equal(t, name, v.String())
	}

	v, err := ParseVariant("  QUICK ")
	require.NoError(t, err)
	assert.Equal(t, Quick, v)

	_, err = ParseVariant("tron")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestVariantRules(t *testing.T) {
	assert.Equal(t, Rules{Food: true, GrowBy: 5, Tally: true}, Classic.Rules())
	assert.False(t, Plain.Rules().Food)
	assert.True(t, Plain.Rules().Moves)
	assert.Equal(t, 1, Quick.Rules().GrowBy)
	assert.False(t, Quick.Rules().Tally)
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())
	assert.Equal(t, 400, c.ScreenWidth())
	assert.Equal(t, 400, c.ScreenHeight())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty grid", func(c *Config) { c.Grid = Grid{} }},
		{"no snake", func(c *Config) { c.InitialLength = 0 }},
		{"snake too long", func(c *Config) { c.InitialLength = 14 }},
		{"tile larger than cell", func(c *Config) { c.TileSize = 17 }},
		{"zero move interval", func(c *Config) { c.MoveInterval = 0 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := DefaultConfig()
			tc.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}

	c := DefaultConfig()
	c.Variant = Variant(42)
	assert.ErrorIs(t, c.Validate(), ErrUnknownVariant)
}
