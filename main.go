package main

import (
	"flag"
	"log"
	"time"

	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	cfg := types.DefaultConfig()

	variant := flag.String("variant", cfg.Variant.String(), "Rule set: classic, plain or quick")
	flag.IntVar(&cfg.Grid.Width, "width", cfg.Grid.Width, "Field width in cells")
	flag.IntVar(&cfg.Grid.Height, "height", cfg.Grid.Height, "Field height in cells")
	flag.DurationVar(&cfg.MoveInterval, "speed", cfg.MoveInterval, "Time between moves (lower = faster)")
	flag.IntVar(&cfg.FPS, "fps", cfg.FPS, "Target frames per second")
	flag.StringVar(&cfg.DataDir, "data", cfg.DataDir, "Directory for the score file")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = time based)")
	flag.Parse()

	log.SetPrefix("snake: ")

	v, err := types.ParseVariant(*variant)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Variant = v
	cfg.Seed = *seed
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	g, err := game.NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	rl.InitWindow(int32(cfg.ScreenWidth()), int32(cfg.ScreenHeight()), "Snake")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.FPS))

	renderer := ui.NewRenderer(cfg)
	var input ui.KeyboardInput

	log.Printf("%s variant on a %dx%d field", cfg.Variant, cfg.Grid.Width, cfg.Grid.Height)
	for !rl.WindowShouldClose() {
		g.Update(float64(rl.GetFrameTime()), input)
		renderer.Draw(g)
	}

	if err := g.Save(); err != nil {
		log.Printf("save stats: %v", err)
	}
}
