package controls

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/couchcontrols/internal/schedule"
)

func TestSeekTarget(t *testing.T) {
	tests := []struct {
		duration, value, want int
	}{
		{120000, 500, 60000},
		{120000, 0, 0},
		{120000, SliderMax, 120000},
		{0, 700, 0},
		{7200000, 1, 7200},
		{3 * 3600 * 1000, 999, 10789200},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SeekTarget(tt.duration, tt.value), "duration %d value %d", tt.duration, tt.value)
	}
}

func TestDragProtocol(t *testing.T) {
	c, q, v := newTestController(t)
	p := &fakePlayer{playing: true, position: 10000, duration: 120000}
	c.Attach(p)

	c.StartDrag()
	assert.True(t, c.Drag().Dragging)
	assert.True(t, c.Drag().PendingSeekMs.IsAbsent())
	assert.False(t, q.Pending(schedule.TaskAutoHide))
	assert.False(t, q.Pending(schedule.TaskPollProgress))

	c.DragTo(500, true)
	target, ok := c.Drag().PendingSeekMs.Get()
	require.True(t, ok)
	assert.Equal(t, 60000, target)
	assert.Empty(t, p.seeks)

	c.EndDrag()
	assert.Equal(t, []int{60000}, p.seeks)
	assert.Equal(t, "01:00", v.current)
	assert.False(t, c.Drag().Dragging)

	left, ok := q.Due(schedule.TaskAutoHide)
	require.True(t, ok)
	assert.Equal(t, DefaultTimeout, left)
	left, ok = q.Due(schedule.TaskPollProgress)
	require.True(t, ok)
	assert.Equal(t, time.Duration(0), left)
}

func TestDragIgnoresProgrammaticMoves(t *testing.T) {
	c, _, _ := newTestController(t)
	p := &fakePlayer{duration: 120000}
	c.Attach(p)

	c.StartDrag()
	c.DragTo(250, false)
	assert.True(t, c.Drag().PendingSeekMs.IsAbsent())

	c.EndDrag()
	assert.Empty(t, p.seeks)
}

func TestDragSuspendsPolling(t *testing.T) {
	c, q, v := newTestController(t)
	p := &fakePlayer{playing: true, position: 1000, duration: 120000}
	c.Attach(p)

	c.ShowFor(0)
	q.Advance(0)
	require.Equal(t, "00:01", v.current)

	c.StartDrag()
	p.position = 9000
	q.Advance(5 * time.Second)
	assert.Equal(t, "00:01", v.current)
	assert.True(t, c.IsShowing())

	c.Show()
	assert.False(t, q.Pending(schedule.TaskPollProgress))
	assert.Equal(t, 0, c.Visibility().SetProgress())
}

func TestDragKeepsControlsUp(t *testing.T) {
	c, q, v := newTestController(t)
	c.Attach(&fakePlayer{duration: 60000})

	c.Show()
	q.Advance(time.Second)
	c.StartDrag()
	q.Advance(time.Hour)
	assert.Equal(t, 0, v.hides)

	c.EndDrag()
	q.Advance(DefaultTimeout)
	assert.Equal(t, 1, v.hides)
}

func TestDragWithoutPlayer(t *testing.T) {
	c, q, _ := newTestController(t)

	c.StartDrag()
	c.DragTo(300, true)
	c.EndDrag()
	assert.False(t, c.Drag().Dragging)
	assert.Equal(t, 0, q.Len())
}

func TestDragDisabled(t *testing.T) {
	c, _, _ := newTestController(t)
	c.Attach(&fakePlayer{duration: 60000})
	c.SetEnabled(false)

	c.StartDrag()
	assert.False(t, c.Drag().Dragging)
}

func TestDragToClampsValue(t *testing.T) {
	c, _, _ := newTestController(t)
	c.Attach(&fakePlayer{duration: 60000})
	c.StartDrag()

	c.DragTo(1500, true)
	assert.Equal(t, 60000, c.Drag().PendingSeekMs.OrEmpty())

	c.DragTo(-20, true)
	assert.Equal(t, 0, c.Drag().PendingSeekMs.OrElse(-1))
}

func TestStartDragClearsStalePendingSeek(t *testing.T) {
	c, _, _ := newTestController(t)
	p := &fakePlayer{duration: 60000}
	c.Attach(p)

	c.StartDrag()
	c.DragTo(100, true)
	c.StartDrag()
	c.EndDrag()
	assert.Empty(t, p.seeks)
}

func TestEndDragRefreshesIcon(t *testing.T) {
	c, _, v := newTestController(t)
	p := &fakePlayer{duration: 60000}
	c.Attach(p)

	c.StartDrag()
	p.playing = true
	c.EndDrag()
	assert.Equal(t, IconPause, v.icon)
}

func TestActivityDuringDragKeepsControlsUp(t *testing.T) {
	c, q, v := newTestController(t)
	c.Attach(&fakePlayer{playing: true, duration: 120000})

	c.StartDrag()
	c.Trackball()
	c.DispatchKey(KeyEvent{Intent: IntentOther, Action: KeyDown})
	c.ClickPlayPause()
	assert.False(t, q.Pending(schedule.TaskAutoHide))

	q.Advance(DefaultTimeout)
	assert.True(t, c.Drag().Dragging)
	assert.True(t, c.IsShowing())
	assert.Equal(t, 0, v.hides)

	c.EndDrag()
	left, ok := q.Due(schedule.TaskAutoHide)
	require.True(t, ok)
	assert.Equal(t, DefaultTimeout, left)
}
