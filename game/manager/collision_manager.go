package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check reports what the snake would hit by moving one cell in dir.
func (cm *CollisionManager) Check(snake *entity.Snake, dir types.Direction) types.CollisionType {
	return cm.CheckPosition(snake.Head().Add(dir.ToPoint()), snake)
}

// CheckPosition checks a would-be head position against the walls and the
// body. The tail still counts: it has not moved out of the way yet.
func (cm *CollisionManager) CheckPosition(pos types.Point, snake *entity.Snake) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if snake.BodyContains(pos) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsFoodCollision checks if the snake's head is on the food
func (cm *CollisionManager) IsFoodCollision(snake *entity.Snake, food types.Point) bool {
	return snake.Head() == food
}
