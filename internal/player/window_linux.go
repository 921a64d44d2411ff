//go:build linux

package player

import (
	"errors"
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// X11 reserves these focus values; neither names a real window.
const (
	focusNone        xproto.Window = 0
	focusPointerRoot xproto.Window = 1
)

var errNoFocus = errors.New("no focused X11 window")

// FocusedWindow asks the X server which window holds input focus. Called
// right after the host window opens, that is the window mpv embeds into.
func FocusedWindow() (int64, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return 0, fmt.Errorf("connect to X server: %w", err)
	}
	defer conn.Close()

	reply, err := xproto.GetInputFocus(conn).Reply()
	if err != nil {
		return 0, fmt.Errorf("get input focus: %w", err)
	}
	return windowID(reply.Focus)
}

func windowID(w xproto.Window) (int64, error) {
	if w == focusNone || w == focusPointerRoot {
		return 0, errNoFocus
	}
	return int64(w), nil
}
