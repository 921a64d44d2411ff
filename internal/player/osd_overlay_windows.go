//go:build windows

package player

import (
	"strconv"

	"github.com/gen2brain/go-mpv"
)

// osdOverlaySet falls back to the positional osd-overlay form, which cannot
// carry res_x/res_y, so mpv lays the events out on its default 720p canvas.
func osdOverlaySet(m *mpv.Mpv, id int, data string, resX, resY int) error {
	return m.Command([]string{"osd-overlay", strconv.Itoa(id), "ass-events", data})
}

func osdOverlayRemove(m *mpv.Mpv, id int) error {
	return m.Command([]string{"osd-overlay", strconv.Itoa(id), "none", ""})
}
