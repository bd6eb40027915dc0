package manager

import (
	"testing"

	"snake-classic/game/entity"
	"snake-classic/game/types"

	"github.com/stretchr/testify/assert"
)

var field = types.Grid{Width: 25, Height: 25}

func TestCheckOpenField(t *testing.T) {
	cm := NewCollisionManager(field)
	s := entity.NewSnake(field, 10)

	assert.Equal(t, types.NoCollision, cm.Check(s, types.Left))
	assert.Equal(t, types.NoCollision, cm.Check(s, types.Up))
	assert.Equal(t, types.NoCollision, cm.Check(s, types.Down))
}

func TestCheckWalls(t *testing.T) {
	cm := NewCollisionManager(field)
	tests := []struct {
		name string
		pos  types.Point
	}{
		{"left", types.Point{X: -1, Y: 5}},
		{"right", types.Point{X: 25, Y: 5}},
		{"top", types.Point{X: 5, Y: -1}},
		{"bottom", types.Point{X: 5, Y: 25}},
	}
	s := entity.NewSnake(field, 1)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, types.WallCollision, cm.CheckPosition(tc.pos, s))
		})
	}
}

func TestCheckSelf(t *testing.T) {
	cm := NewCollisionManager(field)
	s := entity.NewSnake(field, 10)

	// turning straight back runs into the neck
	assert.Equal(t, types.SelfCollision, cm.Check(s, types.Right))

	// the tail cell counts even though it would move away this step
	assert.Equal(t, types.SelfCollision, cm.CheckPosition(s.Tail(), s))
}

func TestFoodCollision(t *testing.T) {
	cm := NewCollisionManager(field)
	s := entity.NewSnake(field, 3)

	assert.True(t, cm.IsFoodCollision(s, types.Point{X: 12, Y: 12}))
	assert.False(t, cm.IsFoodCollision(s, types.Point{X: 13, Y: 12}))
}
