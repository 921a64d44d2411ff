package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/depeter/couchcontrols/internal/schedule"
)

func press(c *Controller, in Intent, repeats int) []bool {
	var consumed []bool
	for i := 0; i <= repeats; i++ {
		consumed = append(consumed, c.DispatchKey(KeyEvent{Intent: in, Action: KeyDown, RepeatCount: i}))
	}
	consumed = append(consumed, c.DispatchKey(KeyEvent{Intent: in, Action: KeyUp}))
	return consumed
}

func TestPlayPauseKeyFiltersRepeats(t *testing.T) {
	c, q, _ := newTestController(t)
	p := &fakePlayer{playing: true}
	c.Attach(p)
	c.Hide()

	consumed := press(c, IntentPlayPauseToggle, 2)
	assert.Equal(t, []bool{true, true, true, true}, consumed)
	assert.Equal(t, []string{"pause"}, p.calls)
	assert.True(t, c.IsShowing())
	assert.True(t, q.Pending(schedule.TaskAutoHide))
}

func TestPlayAndPauseKeys(t *testing.T) {
	tests := []struct {
		name    string
		intent  Intent
		playing bool
		want    []string
		icon    PlayIcon
	}{
		{"play while paused", IntentPlay, false, []string{"start"}, IconPause},
		{"play while playing", IntentPlay, true, nil, IconPause},
		{"pause while playing", IntentPauseOrStop, true, []string{"pause"}, IconPlay},
		{"pause while paused", IntentPauseOrStop, false, nil, IconPlay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, v := newTestController(t)
			p := &fakePlayer{playing: tt.playing}
			c.Attach(p)

			assert.True(t, c.DispatchKey(KeyEvent{Intent: tt.intent, Action: KeyDown}))
			assert.Equal(t, tt.want, p.calls)
			assert.Equal(t, tt.icon, v.icon)
		})
	}
}

func TestDismissKeyHides(t *testing.T) {
	c, _, v := newTestController(t)
	c.Show()

	consumed := press(c, IntentDismiss, 1)
	assert.Equal(t, []bool{true, true, true}, consumed)
	assert.False(t, c.IsShowing())
	assert.Equal(t, 1, v.hides)
}

func TestPassThroughKeyIsIgnored(t *testing.T) {
	c, q, _ := newTestController(t)
	p := &fakePlayer{}
	c.Attach(p)
	c.Hide()

	assert.False(t, c.DispatchKey(KeyEvent{Intent: IntentPassThrough, Action: KeyDown}))
	assert.False(t, c.IsShowing())
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, p.calls)
}

func TestOtherKeyShowsControls(t *testing.T) {
	c, q, _ := newTestController(t)
	c.Hide()

	assert.False(t, c.DispatchKey(KeyEvent{Intent: IntentOther, Action: KeyDown}))
	assert.True(t, c.IsShowing())
	assert.True(t, q.Pending(schedule.TaskAutoHide))
}

func TestMediaKeysWithoutPlayer(t *testing.T) {
	c, _, _ := newTestController(t)
	for _, in := range []Intent{IntentPlayPauseToggle, IntentPlay, IntentPauseOrStop} {
		assert.NotPanics(t, func() {
			assert.True(t, c.DispatchKey(KeyEvent{Intent: in, Action: KeyDown}))
		}, in.String())
	}
}
