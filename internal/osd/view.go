package osd

import (
	"errors"
	"fmt"
	"maps"

	"github.com/depeter/couchcontrols/internal/controls"
)

// Sink receives rendered ASS events. player.Player implements it on top of
// mpv's osd-overlay command.
type Sink interface {
	SetOSDOverlay(id int, ass string, resX, resY int) error
	RemoveOSDOverlay(id int) error
}

// Model is everything the overlay displays.
type Model struct {
	Visible         bool
	ControlsVisible bool

	Progress          int
	SecondaryProgress int
	CurrentTime       string
	EndTime           string

	Icon         controls.PlayIcon
	Fullscreen   bool
	ScaleVisible bool
	BackVisible  bool
	Disabled     map[controls.Control]bool

	Center   controls.CenterOverlay
	Contents map[controls.CenterOverlay]string
	Title    string
}

func (m Model) enabled(c controls.Control) bool {
	return !m.Disabled[c]
}

// View implements controls.View by keeping a Model and rendering it to a
// Sink. Setters only mark what changed; nothing reaches the sink until
// Flush.
type View struct {
	sink Sink
	m    Model

	barDirty    bool
	centerDirty bool
	barUp       bool
	centerUp    bool
}

var _ controls.View = (*View)(nil)

func NewView(sink Sink) *View {
	return &View{
		sink: sink,
		m: Model{
			CurrentTime: controls.StringForTime(0),
			EndTime:     controls.StringForTime(0),
			Disabled:    make(map[controls.Control]bool),
			Contents:    make(map[controls.CenterOverlay]string),
		},
		barDirty:    true,
		centerDirty: true,
	}
}

// Model returns a copy of the current display state.
func (v *View) Model() Model {
	m := v.m
	m.Disabled = maps.Clone(v.m.Disabled)
	m.Contents = maps.Clone(v.m.Contents)
	return m
}

// HitTest reports which overlay region is at window position (x, y) of a
// w x h window.
func (v *View) HitTest(x, y, w, h int) Region {
	return hitTest(v.m, x, y, w, h)
}

// Flush sends every changed overlay slot to the sink.
func (v *View) Flush() error {
	var errs []error
	if v.barDirty {
		show := v.m.Visible && v.m.ControlsVisible
		if err := v.flushSlot(SlotBar, show, &v.barUp, func() string { return FormatBar(v.m) }); err != nil {
			errs = append(errs, err)
		} else {
			v.barDirty = false
		}
	}
	if v.centerDirty {
		show := v.m.Visible && v.m.Center != controls.OverlayNone
		if err := v.flushSlot(SlotCenter, show, &v.centerUp, func() string { return FormatCenter(v.m) }); err != nil {
			errs = append(errs, err)
		} else {
			v.centerDirty = false
		}
	}
	return errors.Join(errs...)
}

func (v *View) flushSlot(id int, show bool, up *bool, render func() string) error {
	if show {
		if err := v.sink.SetOSDOverlay(id, render(), ResX, ResY); err != nil {
			return fmt.Errorf("osd slot %d: %w", id, err)
		}
		*up = true
		return nil
	}
	if !*up {
		return nil
	}
	if err := v.sink.RemoveOSDOverlay(id); err != nil {
		return fmt.Errorf("osd slot %d remove: %w", id, err)
	}
	*up = false
	return nil
}

// Clear removes both slots from the sink.
func (v *View) Clear() error {
	var errs []error
	for _, id := range []int{SlotBar, SlotCenter} {
		if err := v.sink.RemoveOSDOverlay(id); err != nil {
			errs = append(errs, fmt.Errorf("osd slot %d remove: %w", id, err))
		}
	}
	v.barUp, v.centerUp = false, false
	v.barDirty, v.centerDirty = true, true
	return errors.Join(errs...)
}

func setBar[T comparable](v *View, field *T, val T) {
	if *field != val {
		*field = val
		v.barDirty = true
	}
}

func (v *View) SetVisible(visible bool) {
	if v.m.Visible != visible {
		v.m.Visible = visible
		v.barDirty = true
		v.centerDirty = true
	}
}

func (v *View) SetControlsVisible(visible bool)    { setBar(v, &v.m.ControlsVisible, visible) }
func (v *View) SetProgress(value int)              { setBar(v, &v.m.Progress, value) }
func (v *View) SetSecondaryProgress(value int)     { setBar(v, &v.m.SecondaryProgress, value) }
func (v *View) SetCurrentTime(text string)         { setBar(v, &v.m.CurrentTime, text) }
func (v *View) SetEndTime(text string)             { setBar(v, &v.m.EndTime, text) }
func (v *View) SetPlayIcon(icon controls.PlayIcon) { setBar(v, &v.m.Icon, icon) }
func (v *View) SetScaleIcon(fullscreen bool)       { setBar(v, &v.m.Fullscreen, fullscreen) }
func (v *View) SetScaleVisible(visible bool)       { setBar(v, &v.m.ScaleVisible, visible) }
func (v *View) SetBackVisible(visible bool)        { setBar(v, &v.m.BackVisible, visible) }
func (v *View) SetTitle(title string)              { setBar(v, &v.m.Title, title) }

func (v *View) SetControlEnabled(c controls.Control, enabled bool) {
	if v.m.Disabled[c] == !enabled {
		return
	}
	if enabled {
		delete(v.m.Disabled, c)
	} else {
		v.m.Disabled[c] = true
	}
	v.barDirty = true
}

func (v *View) SetCenterOverlay(o controls.CenterOverlay) {
	if v.m.Center != o {
		v.m.Center = o
		v.centerDirty = true
	}
}

func (v *View) SetOverlayContent(o controls.CenterOverlay, content string) {
	if v.m.Contents[o] == content {
		return
	}
	v.m.Contents[o] = content
	if v.m.Center == o {
		v.centerDirty = true
	}
}
