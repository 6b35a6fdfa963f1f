package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tile2048/internal/core"
)

// keyBindings maps window keys to game actions. It mirrors the terminal
// bindings: arrows, WASD and vim keys move.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyH, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyL, core.ActionRight},
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyK, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyJ, core.ActionDown},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyQ, core.ActionQuit},
}

// readInput fills frame with the actions whose key went down this tick.
func readInput(frame *core.InputFrame) {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			frame.Set(b.action)
		}
	}
}
