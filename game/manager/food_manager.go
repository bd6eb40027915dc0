package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Random draws before falling back to scanning for free cells.
const maxSpawnAttempts = 64

var ErrNoFreeCell = errors.New("no free cell for food")

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Spawn picks a random cell the snake does not cover.
func (fm *FoodManager) Spawn(snake *entity.Snake) (types.Point, error) {
	for i := 0; i < maxSpawnAttempts; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if !snake.Contains(food) {
			return food, nil
		}
	}

	// Crowded field: choose among the cells that are actually free
	free := make([]types.Point, 0, fm.grid.Cells())
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !snake.Contains(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, errors.Wrapf(ErrNoFreeCell, "%dx%d grid", fm.grid.Width, fm.grid.Height)
	}
	return free[fm.rng.Intn(len(free))], nil
}
