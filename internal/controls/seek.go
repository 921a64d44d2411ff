package controls

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// SliderMax is the top of the seek bar range. Slider values run 0..SliderMax.
const SliderMax = 1000

// DragState tracks a seek bar drag. While Dragging is set the progress poll
// and auto-hide are suspended.
type DragState struct {
	Dragging      bool
	PendingSeekMs mo.Option[int]
}

// SeekTarget converts a slider value into a position for media of the
// given duration.
func SeekTarget(durationMs, value int) int {
	return int(int64(durationMs) * int64(value) / SliderMax)
}

// Drag returns the current drag state.
func (c *Controller) Drag() DragState {
	return c.s.drag
}

// StartDrag begins a seek bar drag. The controls stay up and stop tracking
// the player until EndDrag.
func (c *Controller) StartDrag() {
	if c.s.player == nil || !c.s.enabled {
		return
	}
	c.vis.Show(0)
	c.s.drag = DragState{Dragging: true, PendingSeekMs: mo.None[int]()}
	c.vis.cancelPoll()
	c.log.Debug("drag started")
}

// DragTo records where the slider is. Only user-initiated moves count; the
// seek itself waits for EndDrag.
func (c *Controller) DragTo(value int, fromUser bool) {
	if c.s.player == nil || !fromUser {
		return
	}
	value = lo.Clamp(value, 0, SliderMax)
	c.s.drag.PendingSeekMs = mo.Some(SeekTarget(c.s.player.Duration(), value))
}

// EndDrag seeks to the released position and resumes normal behavior. The
// current-time text jumps to the target right away; the next poll replaces
// it with whatever the player reports.
func (c *Controller) EndDrag() {
	p := c.s.player
	if p == nil {
		return
	}
	if target, ok := c.s.drag.PendingSeekMs.Get(); ok {
		p.SeekTo(target)
		c.s.view.SetCurrentTime(StringForTime(target))
		c.log.Debug("drag seek", "target_ms", target)
	}
	c.s.drag = DragState{}
	c.s.updatePausePlay()
	c.vis.Show(c.timeout)
}
