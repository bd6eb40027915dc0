package game

import (
	"log"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"
)

// Input reports keys pressed since the previous frame.
type Input interface {
	IsKeyPressed(key types.Key) bool
}

// Option customises a Game at construction.
type Option func(*Game)

// WithStateManager replaces the score store NewGame would otherwise open in
// cfg.DataDir. The caller is responsible for loading it.
func WithStateManager(sm *manager.StateManager) Option {
	return func(g *Game) {
		g.state = sm
	}
}

type Game struct {
	cfg   types.Config
	rules types.Rules

	scene         types.Scene
	snake         *entity.Snake
	food          types.Point
	hasFood       bool
	timer         float64 // seconds since the last move or tally pop
	score         int
	finalScore    int
	moves         int
	gameOver      bool
	lastCollision types.CollisionType
	newBest       bool

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	state        *manager.StateManager
}

func NewGame(cfg types.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:          cfg,
		rules:        cfg.Variant.Rules(),
		scene:        types.SceneTitle,
		collisionMgr: manager.NewCollisionManager(cfg.Grid),
		foodMgr:      manager.NewFoodManager(cfg.Grid, cfg.Seed),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.state == nil {
		g.state = manager.NewStateManager(cfg.DataDir, cfg.Variant.String())
		if err := g.state.Load(); err != nil {
			log.Printf("load stats: %v", err)
		}
	}

	g.reset()
	return g, nil
}

// reset builds a fresh snake and puts food on the field.
func (g *Game) reset() {
	g.snake = entity.NewSnake(g.cfg.Grid, g.cfg.InitialLength)
	g.timer = 0
	g.moves = 0
	g.score = g.startScore()
	g.newBest = false
	g.lastCollision = types.NoCollision
	g.spawnFood()
}

func (g *Game) startScore() int {
	if g.rules.Moves {
		return 0
	}
	return 1
}

func (g *Game) spawnFood() {
	if !g.rules.Food {
		g.hasFood = false
		return
	}
	food, err := g.foodMgr.Spawn(g.snake)
	if err != nil {
		log.Printf("food: %v", err)
		g.hasFood = false
		return
	}
	g.food = food
	g.hasFood = true
}

// Update advances the game by dt seconds.
func (g *Game) Update(dt float64, in Input) {
	if g.gameOver {
		g.endGame()
	}

	switch g.scene {
	case types.SceneTitle:
		g.updateTitle(in)
	case types.ScenePlay:
		g.updatePlay(dt, in)
	case types.SceneScore:
		g.updateScore(dt, in)
	}
}

func (g *Game) updateTitle(in Input) {
	if in.IsKeyPressed(types.KeySpace) {
		g.timer = 0
		g.scene = types.ScenePlay
	}
}

func (g *Game) updatePlay(dt float64, in Input) {
	g.timer += dt

	// Later keys win when several arrive in the same frame
	if in.IsKeyPressed(types.KeyLeft) {
		g.snake.SetDirection(types.Left)
	}
	if in.IsKeyPressed(types.KeyUp) {
		g.snake.SetDirection(types.Up)
	}
	if in.IsKeyPressed(types.KeyRight) {
		g.snake.SetDirection(types.Right)
	}
	if in.IsKeyPressed(types.KeyDown) {
		g.snake.SetDirection(types.Down)
	}

	if g.timer >= g.cfg.MoveInterval.Seconds() {
		if c := g.collisionMgr.Check(g.snake, g.snake.Direction); c != types.NoCollision {
			// The scene switches on the next frame so this one still renders
			g.gameOver = true
			g.lastCollision = c
		} else {
			g.timer = 0
			g.snake.Step(g.snake.Next())
			g.moves++
		}
	}

	if g.hasFood && g.collisionMgr.IsFoodCollision(g.snake, g.food) {
		g.snake.Grow(g.rules.GrowBy)
		g.spawnFood()
	}
}

// endGame switches to the score scene and records the result.
func (g *Game) endGame() {
	g.gameOver = false
	g.timer = 0
	g.scene = types.SceneScore
	g.snake.Reset()

	g.finalScore = g.snake.Len()
	if g.rules.Moves {
		g.finalScore = g.moves
	}
	if g.rules.Tally {
		g.score = 1
	} else {
		g.score = g.finalScore
	}

	g.newBest = g.state.Record(g.finalScore)
	log.Printf("game over: %s collision, score %d", g.lastCollision, g.finalScore)
	if err := g.state.Save(); err != nil {
		log.Printf("save stats: %v", err)
	}
}

func (g *Game) updateScore(dt float64, in Input) {
	g.timer += dt

	if in.IsKeyPressed(types.KeySpace) {
		g.reset()
		g.scene = types.ScenePlay
		return
	}

	if g.rules.Tally && g.timer >= g.cfg.TallyInterval.Seconds() && g.snake.Shrink() {
		g.score++
		g.timer = 0
	}
}

func (g *Game) Scene() types.Scene {
	return g.scene
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

// Food returns the food cell and whether there is food on the field.
func (g *Game) Food() (types.Point, bool) {
	return g.food, g.hasFood
}

// Score is the number shown on screen; during the tally it counts up to
// FinalScore.
func (g *Game) Score() int {
	return g.score
}

func (g *Game) FinalScore() int {
	return g.finalScore
}

func (g *Game) Best() int {
	return g.state.Best()
}

// NewBest reports whether the last finished game beat the saved best.
func (g *Game) NewBest() bool {
	return g.newBest
}

func (g *Game) Summary() manager.Summary {
	return g.state.Summary()
}

// TallyDone reports whether the score screen has finished counting.
func (g *Game) TallyDone() bool {
	return !g.rules.Tally || g.snake.Len() <= 1
}

func (g *Game) LastCollision() types.CollisionType {
	return g.lastCollision
}

func (g *Game) Grid() types.Grid {
	return g.cfg.Grid
}

func (g *Game) Config() types.Config {
	return g.cfg
}

func (g *Game) Rules() types.Rules {
	return g.rules
}

// Save flushes the score history.
func (g *Game) Save() error {
	return g.state.Save()
}
