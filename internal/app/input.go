package app

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/couchcontrols/internal/config"
	"github.com/depeter/couchcontrols/internal/controls"
)

// keyMap maps config key names to ebiten keys.
var keyMap = map[string]ebiten.Key{
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"return":    ebiten.KeyEnter,
	"escape":    ebiten.KeyEscape,
	"esc":       ebiten.KeyEscape,
	"backspace": ebiten.KeyBackspace,
	"tab":       ebiten.KeyTab,
	"pause":     ebiten.KeyPause,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"minus":     ebiten.KeyMinus,
	"equal":     ebiten.KeyEqual,
	"f11":       ebiten.KeyF11,
	"a":         ebiten.KeyA,
	"b":         ebiten.KeyB,
	"c":         ebiten.KeyC,
	"d":         ebiten.KeyD,
	"e":         ebiten.KeyE,
	"f":         ebiten.KeyF,
	"g":         ebiten.KeyG,
	"h":         ebiten.KeyH,
	"i":         ebiten.KeyI,
	"j":         ebiten.KeyJ,
	"k":         ebiten.KeyK,
	"l":         ebiten.KeyL,
	"m":         ebiten.KeyM,
	"n":         ebiten.KeyN,
	"o":         ebiten.KeyO,
	"p":         ebiten.KeyP,
	"q":         ebiten.KeyQ,
	"r":         ebiten.KeyR,
	"s":         ebiten.KeyS,
	"t":         ebiten.KeyT,
	"u":         ebiten.KeyU,
	"v":         ebiten.KeyV,
	"w":         ebiten.KeyW,
	"x":         ebiten.KeyX,
	"y":         ebiten.KeyY,
	"z":         ebiten.KeyZ,
	"0":         ebiten.KeyDigit0,
	"1":         ebiten.KeyDigit1,
	"2":         ebiten.KeyDigit2,
	"3":         ebiten.KeyDigit3,
	"4":         ebiten.KeyDigit4,
	"5":         ebiten.KeyDigit5,
	"6":         ebiten.KeyDigit6,
	"7":         ebiten.KeyDigit7,
	"8":         ebiten.KeyDigit8,
	"9":         ebiten.KeyDigit9,
}

// parseKey converts a config key name to an ebiten.Key.
func parseKey(name string) (ebiten.Key, bool) {
	k, ok := keyMap[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// HostAction is what the host does with a key the controller does not
// consume.
type HostAction int

const (
	ActionNone HostAction = iota
	ActionFullscreen
	ActionVolumeUp
	ActionVolumeDown
	ActionMute
	ActionQuit
)

// Binding is what a bound key means: an intent for the controller and,
// optionally, something for the host to do.
type Binding struct {
	Intent controls.Intent
	Action HostAction
}

// Keymap maps keys to bindings.
type Keymap map[ebiten.Key]Binding

// NewKeymap builds the keymap from config. Empty names leave an entry
// unbound; unknown names and keys bound twice are errors.
func NewKeymap(kb config.KeybindConfig) (Keymap, error) {
	entries := []struct {
		field string
		name  string
		b     Binding
	}{
		{"play_pause", kb.PlayPause, Binding{Intent: controls.IntentPlayPauseToggle}},
		{"play", kb.Play, Binding{Intent: controls.IntentPlay}},
		{"pause", kb.Pause, Binding{Intent: controls.IntentPauseOrStop}},
		{"dismiss", kb.Dismiss, Binding{Intent: controls.IntentDismiss}},
		{"fullscreen", kb.Fullscreen, Binding{Intent: controls.IntentOther, Action: ActionFullscreen}},
		{"volume_up", kb.VolumeUp, Binding{Intent: controls.IntentPassThrough, Action: ActionVolumeUp}},
		{"volume_down", kb.VolumeDown, Binding{Intent: controls.IntentPassThrough, Action: ActionVolumeDown}},
		{"mute", kb.Mute, Binding{Intent: controls.IntentPassThrough, Action: ActionMute}},
		{"quit", kb.Quit, Binding{Intent: controls.IntentPassThrough, Action: ActionQuit}},
	}

	km := make(Keymap, len(entries))
	owner := make(map[ebiten.Key]string, len(entries))
	for _, e := range entries {
		if e.name == "" {
			continue
		}
		k, ok := parseKey(e.name)
		if !ok {
			return nil, fmt.Errorf("keybinds.%s: unknown key %q", e.field, e.name)
		}
		if prev, dup := owner[k]; dup {
			return nil, fmt.Errorf("keybinds.%s: %q is already bound to %s", e.field, e.name, prev)
		}
		owner[k] = e.field
		km[k] = e.b
	}
	return km, nil
}

// Key repeat timing in ticks, at ebiten's default 60 TPS.
const (
	repeatDelay    = 30
	repeatInterval = 4
)

// repeatAt reports whether a key held for ticks ticks produces a down event
// this tick and, if so, its repeat count. ticks is 1 on the initial press.
func repeatAt(ticks int) (int, bool) {
	if ticks == 1 {
		return 0, true
	}
	if ticks <= repeatDelay {
		return 0, false
	}
	if (ticks-repeatDelay)%repeatInterval != 0 {
		return 0, false
	}
	return (ticks - repeatDelay) / repeatInterval, true
}
