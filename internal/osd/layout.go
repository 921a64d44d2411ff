package osd

import (
	"github.com/samber/lo"

	"github.com/depeter/couchcontrols/internal/controls"
)

// ASS PlayRes: every overlay is laid out in a 1920x1080 coordinate space
// and mpv scales it to the window.
const (
	ResX = 1920
	ResY = 1080
)

// osd-overlay slot IDs.
const (
	SlotBar    = 1
	SlotCenter = 2
)

const (
	topH    = 120
	bottomH = 140

	barX = 300
	barW = 1320
	barY = 1010
	barH = 6
	barR = 3
	dotR = 10

	// barSlop widens the seek bar's hit area vertically.
	barSlop = 24

	centerPlayR = 90
)

type rect struct {
	X, Y, W, H int
}

func (r rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r rect) cx() int { return r.X + r.W/2 }
func (r rect) cy() int { return r.Y + r.H/2 }

var (
	backRect  = rect{X: 20, Y: 20, W: 80, H: 80}
	playRect  = rect{X: 30, Y: barY - 40, W: 80, H: 80}
	scaleRect = rect{X: ResX - 110, Y: barY - 40, W: 80, H: 80}
	barRect   = rect{X: barX - dotR, Y: barY - barSlop, W: barW + 2*dotR, H: 2 * barSlop}
	errorRect = rect{X: ResX/2 - 330, Y: ResY/2 - 110, W: 660, H: 220}
)

// Region is the part of the overlay under a pointer.
type Region int

const (
	RegionNone Region = iota
	RegionSeekBar
	RegionPlayPause
	RegionScale
	RegionBack
	RegionCenterPlay
	RegionError
)

func (r Region) String() string {
	switch r {
	case RegionSeekBar:
		return "seek-bar"
	case RegionPlayPause:
		return "play-pause"
	case RegionScale:
		return "scale"
	case RegionBack:
		return "back"
	case RegionCenterPlay:
		return "center-play"
	case RegionError:
		return "error"
	default:
		return "none"
	}
}

// toRes maps window pixel coordinates of a w x h window into PlayRes space.
func toRes(x, y, w, h int) (int, int) {
	if w <= 0 || h <= 0 {
		return -1, -1
	}
	return x * ResX / w, y * ResY / h
}

// hitTest reports which region of m is at (x, y) in a w x h window. Bar
// controls only count while the bars are shown and the control is enabled;
// the center overlay counts whenever it is drawn.
func hitTest(m Model, x, y, w, h int) Region {
	rx, ry := toRes(x, y, w, h)
	if !m.Visible {
		return RegionNone
	}
	switch m.Center {
	case controls.OverlayComplete:
		dx, dy := rx-ResX/2, ry-ResY/2
		if dx*dx+dy*dy <= centerPlayR*centerPlayR {
			return RegionCenterPlay
		}
	case controls.OverlayError:
		if errorRect.contains(rx, ry) {
			return RegionError
		}
	}
	if !m.ControlsVisible {
		return RegionNone
	}
	switch {
	case barRect.contains(rx, ry):
		if m.enabled(controls.ControlSeek) {
			return RegionSeekBar
		}
	case playRect.contains(rx, ry):
		if m.enabled(controls.ControlPlayPause) {
			return RegionPlayPause
		}
	case m.ScaleVisible && scaleRect.contains(rx, ry):
		if m.enabled(controls.ControlScale) {
			return RegionScale
		}
	case m.BackVisible && backRect.contains(rx, ry):
		return RegionBack
	}
	return RegionNone
}

// SliderValueAt converts a window x coordinate into a seek bar value in
// 0..controls.SliderMax. Positions past either end of the bar clamp.
func SliderValueAt(x, w int) int {
	rx, _ := toRes(x, 0, w, 1)
	return lo.Clamp((rx-barX)*controls.SliderMax/barW, 0, controls.SliderMax)
}
