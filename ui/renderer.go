package ui

import (
	"fmt"

	"snake-classic/game"
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const fontSize = 20

var (
	bodyColor = rl.Green
	headColor = rl.DarkGreen
	foodColor = rl.Orange
	titleText = rl.Gold
	hintText  = rl.White
	statsText = rl.Gray
)

type Renderer struct {
	cellSize     int32
	tileSize     int32
	screenWidth  int32
	screenHeight int32
}

func NewRenderer(cfg types.Config) *Renderer {
	return &Renderer{
		cellSize: int32(cfg.CellSize),
		tileSize: int32(cfg.TileSize),
	}
}

// Draw renders one frame. It must run every frame, also on the frame the
// game ends, because raylib polls input events in EndDrawing.
func (r *Renderer) Draw(g *game.Game) {
	grid := g.Grid()
	r.screenWidth = int32(grid.Width) * r.cellSize
	r.screenHeight = int32(grid.Height) * r.cellSize

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	switch g.Scene() {
	case types.SceneTitle:
		r.drawTitle()
	case types.ScenePlay:
		r.drawSnake(g)
		if g.Rules().Food {
			r.drawFood(g)
		}
	case types.SceneScore:
		r.drawScore(g)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawTitle() {
	r.centerText("SNAKE GAME", r.screenHeight/2-40, titleText)
	r.centerText("Press SPACE to play.", r.screenHeight/2+20, hintText)
}

func (r *Renderer) drawScore(g *game.Game) {
	if g.Snake().Len() > 1 {
		r.drawSnake(g)
	}

	r.centerText("Oh Dear . . !", r.screenHeight/2-40, titleText)
	r.centerText(fmt.Sprintf("Score: %d", g.Score()), r.screenHeight/2, titleText)

	if !g.TallyDone() {
		return
	}
	r.centerText("Press SPACE to Play again.", r.screenHeight/2+40, hintText)

	best := fmt.Sprintf("Best: %d", g.Best())
	if g.NewBest() {
		best += " (new!)"
	}
	r.centerText(best, r.screenHeight/2+80, statsText)
	if sum := g.Summary(); sum.Games > 1 {
		r.centerText(fmt.Sprintf("Avg: %.1f  Median: %.0f  Games: %d", sum.Mean, sum.Median, sum.Games), r.screenHeight/2+110, statsText)
	}
}

// drawSnake paints the body first so the head stays visible when segments
// are stacked on it.
func (r *Renderer) drawSnake(g *game.Game) {
	s := g.Snake()
	head := true
	for p := range s.All() {
		if head {
			head = false
			continue
		}
		r.drawTile(p, bodyColor)
	}
	r.drawTile(s.Head(), headColor)
}

func (r *Renderer) drawFood(g *game.Game) {
	if food, ok := g.Food(); ok {
		r.drawTile(food, foodColor)
	}
}

func (r *Renderer) drawTile(p types.Point, color rl.Color) {
	rl.DrawRectangle(int32(p.X)*r.cellSize, int32(p.Y)*r.cellSize, r.tileSize, r.tileSize, color)
}

func (r *Renderer) centerText(text string, y int32, color rl.Color) {
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (r.screenWidth-w)/2, y, fontSize, color)
}
