//go:build ebitentest

// Linking ebiten needs cgo and the X11 headers on Linux, so these tests only
// build with -tags ebitentest. They never open a window.
package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tile2048/internal/core"
)

func TestKeyBindingsCoverActions(t *testing.T) {
	bound := make(map[core.Action]int)
	for _, b := range keyBindings {
		bound[b.action]++
	}

	for a := core.ActionLeft; a <= core.ActionQuit; a++ {
		if bound[a] == 0 {
			t.Errorf("no key bound to %v", a)
		}
	}
	if bound[core.ActionNone] != 0 {
		t.Error("a key is bound to ActionNone")
	}
}

func TestKeyBindingsUnique(t *testing.T) {
	seen := make(map[ebiten.Key]core.Action)
	for _, b := range keyBindings {
		if prev, ok := seen[b.key]; ok {
			t.Errorf("key %v bound to both %v and %v", b.key, prev, b.action)
		}
		seen[b.key] = b.action
	}
}

func TestKeyBindingsMatchTerminal(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want core.Action
	}{
		{ebiten.KeyArrowLeft, core.ActionLeft},
		{ebiten.KeyL, core.ActionRight},
		{ebiten.KeyW, core.ActionUp},
		{ebiten.KeyJ, core.ActionDown},
		{ebiten.KeyR, core.ActionRestart},
		{ebiten.KeyEscape, core.ActionPause},
		{ebiten.KeyQ, core.ActionQuit},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			for _, b := range keyBindings {
				if b.key == tt.key {
					if b.action != tt.want {
						t.Errorf("%v -> %v, want %v", tt.key, b.action, tt.want)
					}
					return
				}
			}
			t.Errorf("%v is not bound", tt.key)
		})
	}
}
