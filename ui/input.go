package ui

import (
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyCodes = map[types.Key]int32{
	types.KeySpace: rl.KeySpace,
	types.KeyUp:    rl.KeyUp,
	types.KeyDown:  rl.KeyDown,
	types.KeyLeft:  rl.KeyLeft,
	types.KeyRight: rl.KeyRight,
}

// KeyboardInput polls raylib for key presses.
type KeyboardInput struct{}

func (KeyboardInput) IsKeyPressed(key types.Key) bool {
	code, ok := keyCodes[key]
	return ok && rl.IsKeyPressed(code)
}
