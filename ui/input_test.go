package ui

import (
	"testing"

	"snake-classic/game/types"

	"github.com/stretchr/testify/assert"
)

func TestEveryKeyIsMapped(t *testing.T) {
	seen := map[int32]types.Key{}
	for _, k := range types.Keys {
		code, ok := keyCodes[k]
		assert.True(t, ok, "key %d has no raylib code", k)
		if prev, dup := seen[code]; dup {
			t.Errorf("keys %d and %d share raylib code %d", prev, k, code)
		}
		seen[code] = k
	}
}
