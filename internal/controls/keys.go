package controls

// Intent is what a key press means to the controller, independent of the
// platform key code that produced it.
type Intent int

const (
	// IntentOther is any key without a mapping. It counts as activity.
	IntentOther Intent = iota
	IntentPlayPauseToggle
	IntentPlay
	IntentPauseOrStop
	// IntentDismiss is back or menu.
	IntentDismiss
	// IntentPassThrough covers volume, mute and camera keys, which the
	// controller leaves to the host.
	IntentPassThrough
)

func (i Intent) String() string {
	switch i {
	case IntentPlayPauseToggle:
		return "play-pause"
	case IntentPlay:
		return "play"
	case IntentPauseOrStop:
		return "pause"
	case IntentDismiss:
		return "dismiss"
	case IntentPassThrough:
		return "pass-through"
	default:
		return "other"
	}
}

type KeyAction int

const (
	KeyDown KeyAction = iota
	KeyUp
)

// KeyEvent is a key transition. RepeatCount is zero for the initial press
// and counts up while the key is held.
type KeyEvent struct {
	Intent      Intent
	Action      KeyAction
	RepeatCount int
}

func (e KeyEvent) uniqueDown() bool {
	return e.Action == KeyDown && e.RepeatCount == 0
}

// DispatchKey handles a key event and reports whether it was consumed.
// Mapped keys are always consumed but only act on the first down event of a
// press, so holding a key does not toggle playback repeatedly.
func (c *Controller) DispatchKey(ev KeyEvent) bool {
	unique := ev.uniqueDown()
	p := c.s.player

	switch ev.Intent {
	case IntentPlayPauseToggle:
		if unique && p != nil {
			c.DoPauseResume()
			c.vis.Show(c.timeout)
		}
		return true

	case IntentPlay:
		if unique && p != nil && !p.IsPlaying() {
			p.Start()
			c.s.updatePausePlay()
			c.vis.Show(c.timeout)
		}
		return true

	case IntentPauseOrStop:
		if unique && p != nil && p.IsPlaying() {
			p.Pause()
			c.s.updatePausePlay()
			c.vis.Show(c.timeout)
		}
		return true

	case IntentPassThrough:
		return false

	case IntentDismiss:
		if unique {
			c.vis.Hide()
		}
		return true
	}

	c.vis.Show(c.timeout)
	return false
}
