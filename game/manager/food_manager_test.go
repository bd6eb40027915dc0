package manager

import (
	"testing"

	"snake-classic/game/entity"
	"snake-classic/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnAvoidsSnake(t *testing.T) {
	fm := NewFoodManager(field, 1)
	s := entity.NewSnake(field, 10)

	for range 500 {
		food, err := fm.Spawn(s)
		require.NoError(t, err)
		assert.True(t, field.Contains(food))
		assert.False(t, s.Contains(food), "food spawned on snake at %v", food)
	}
}

func TestSpawnIsDeterministicPerSeed(t *testing.T) {
	s := entity.NewSnake(field, 10)
	a := NewFoodManager(field, 7)
	b := NewFoodManager(field, 7)

	for range 20 {
		fa, err := a.Spawn(s)
		require.NoError(t, err)
		fb, err := b.Spawn(s)
		require.NoError(t, err)
		assert.Equal(t, fa, fb)
	}
}

func TestSpawnCrowdedField(t *testing.T) {
	// a 3x1 field with a snake covering two cells has one free cell left
	grid := types.Grid{Width: 3, Height: 1}
	s := entity.NewSnake(grid, 2)
	fm := NewFoodManager(grid, 3)

	food, err := fm.Spawn(s)
	require.NoError(t, err)
	assert.Equal(t, types.Point{X: 0, Y: 0}, food)
}

func TestSpawnFullField(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 1}
	s := entity.NewSnake(grid, 1)
	s.SetDirection(types.Left)
	s.Grow(1)
	s.Step(s.Next())
	require.True(t, s.Contains(types.Point{X: 0, Y: 0}))
	require.True(t, s.Contains(types.Point{X: 1, Y: 0}))

	_, err := NewFoodManager(grid, 3).Spawn(s)
	assert.ErrorIs(t, err, ErrNoFreeCell)
}
