package types

import (
	"time"

	"github.com/pkg/errors"
)

// Game constants
const (
	FieldWidth    = 25 // Field width in cells
	FieldHeight   = 25 // Field height in cells
	CellSize      = 16 // Cell size in pixels
	TileSize      = 15 // Drawn tile size, leaves a one pixel gap between cells
	InitialLength = 10
	TargetFPS     = 60
	DataDir       = "data"

	MoveInterval  = 200 * time.Millisecond
	TallyInterval = 50 * time.Millisecond
)

// Config is the start-up configuration of a game.
type Config struct {
	Grid          Grid
	CellSize      int
	TileSize      int
	InitialLength int
	MoveInterval  time.Duration
	TallyInterval time.Duration
	FPS           int
	Variant       Variant
	DataDir       string
	Seed          uint64
}

func DefaultConfig() Config {
	return Config{
		Grid:          Grid{Width: FieldWidth, Height: FieldHeight},
		CellSize:      CellSize,
		TileSize:      TileSize,
		InitialLength: InitialLength,
		MoveInterval:  MoveInterval,
		TallyInterval: TallyInterval,
		FPS:           TargetFPS,
		Variant:       Classic,
		DataDir:       DataDir,
	}
}

var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the snake fits on the field and every interval is
// positive.
func (c Config) Validate() error {
	switch {
	case c.Grid.Width <= 0 || c.Grid.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid %dx%d", c.Grid.Width, c.Grid.Height)
	case c.InitialLength < 1:
		return errors.Wrapf(ErrInvalidConfig, "initial length %d", c.InitialLength)
	case c.Grid.Center().X+c.InitialLength > c.Grid.Width:
		return errors.Wrapf(ErrInvalidConfig, "snake of length %d does not fit a %d wide grid", c.InitialLength, c.Grid.Width)
	case c.TileSize <= 0 || c.TileSize > c.CellSize:
		return errors.Wrapf(ErrInvalidConfig, "tile size %d with cell size %d", c.TileSize, c.CellSize)
	case c.MoveInterval <= 0 || c.TallyInterval <= 0:
		return errors.Wrap(ErrInvalidConfig, "intervals must be positive")
	case c.FPS <= 0:
		return errors.Wrapf(ErrInvalidConfig, "fps %d", c.FPS)
	}
	if _, ok := variantNames[c.Variant]; !ok {
		return errors.Wrapf(ErrUnknownVariant, "%d", int(c.Variant))
	}
	return nil
}

// ScreenWidth is the window width in pixels.
func (c Config) ScreenWidth() int {
	return c.Grid.Width * c.CellSize
}

func (c Config) ScreenHeight() int {
	return c.Grid.Height * c.CellSize
}
