package controls

type TouchAction int

const (
	TouchDown TouchAction = iota
	TouchUp
	TouchCancel
)

// Touch handles a pointer gesture on the overlay surface outside any
// control. A tap while the controls are up dismisses them; a tap while
// they are down brings them up, held for as long as the finger stays down.
func (c *Controller) Touch(a TouchAction) bool {
	switch a {
	case TouchDown:
		if c.vis.IsShowing() {
			c.vis.Hide()
			c.tapConsumed = true
			return true
		}
		c.tapConsumed = false
		c.vis.Show(0)
	case TouchUp:
		if !c.tapConsumed {
			c.vis.Show(c.timeout)
		}
		c.tapConsumed = false
	case TouchCancel:
		c.vis.Hide()
	}
	return true
}

// Trackball counts trackball or scroll movement as activity.
func (c *Controller) Trackball() {
	c.vis.Show(c.timeout)
}
