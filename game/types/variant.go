package types

import (
	"strings"

	"github.com/pkg/errors"
)

// Variant selects one of the three rule sets the game ships with.
type Variant int

const (
	// Classic spawns food, grows by five segments per meal and tallies the
	// score by eating the body away on the game over screen.
	Classic Variant = iota
	// Plain has no food; the snake roams until it crashes and scores one
	// point per move survived.
	Plain
	// Quick spawns food, grows by one and shows the score at once.
	Quick
)

var variantNames = map[Variant]string{
	Classic: "classic",
	Plain:   "plain",
	Quick:   "quick",
}

var ErrUnknownVariant = errors.New("unknown variant")

func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}
	return Classic, errors.Wrapf(ErrUnknownVariant, "%q", s)
}

func (v Variant) String() string {
	if n, ok := variantNames[v]; ok {
		return n
	}
	return "unknown"
}

// Rules are the knobs that differ between variants.
type Rules struct {
	Food   bool // spawn and consume food
	GrowBy int  // segments added per food item
	Tally  bool // animate the score by popping the tail on game over
	Moves  bool // score counts moves instead of segments
}

func (v Variant) Rules() Rules {
	switch v {
	case Plain:
		return Rules{Food: false, GrowBy: 0, Tally: false, Moves: true}
	case Quick:
		return Rules{Food: true, GrowBy: 1, Tally: false}
	default:
		return Rules{Food: true, GrowBy: 5, Tally: true}
	}
}
