package controls

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/depeter/couchcontrols/internal/schedule"
)

func TestTapWhileHiddenShows(t *testing.T) {
	c, q, _ := newTestController(t)
	c.Hide()

	assert.True(t, c.Touch(TouchDown))
	assert.True(t, c.IsShowing())
	assert.False(t, q.Pending(schedule.TaskAutoHide))

	assert.True(t, c.Touch(TouchUp))
	left, ok := q.Due(schedule.TaskAutoHide)
	assert.True(t, ok)
	assert.Equal(t, DefaultTimeout, left)
}

func TestTapWhileShownHides(t *testing.T) {
	c, q, v := newTestController(t)
	c.Show()

	c.Touch(TouchDown)
	assert.False(t, c.IsShowing())
	c.Touch(TouchUp)
	assert.False(t, c.IsShowing())
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 1, v.hides)
}

func TestTouchCancelHides(t *testing.T) {
	c, _, _ := newTestController(t)
	c.Hide()

	c.Touch(TouchDown)
	c.Touch(TouchCancel)
	assert.False(t, c.IsShowing())
}

func TestTrackballShows(t *testing.T) {
	c, q, v := newTestController(t)
	c.Hide()

	c.Trackball()
	assert.True(t, c.IsShowing())
	q.Advance(DefaultTimeout + time.Millisecond)
	assert.Equal(t, 2, v.hides)
}
