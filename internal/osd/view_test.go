package osd

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/couchcontrols/internal/controls"
)

type sinkCall struct {
	id     int
	remove bool
	ass    string
}

type recordSink struct {
	calls []sinkCall
	err   error
}

func (s *recordSink) SetOSDOverlay(id int, ass string, resX, resY int) error {
	if s.err != nil {
		return s.err
	}
	s.calls = append(s.calls, sinkCall{id: id, ass: ass})
	return nil
}

func (s *recordSink) RemoveOSDOverlay(id int) error {
	if s.err != nil {
		return s.err
	}
	s.calls = append(s.calls, sinkCall{id: id, remove: true})
	return nil
}

func (s *recordSink) reset() { s.calls = nil }

func TestFlushRendersOnlyWhenChanged(t *testing.T) {
	sink := &recordSink{}
	v := NewView(sink)
	v.SetVisible(true)
	v.SetControlsVisible(true)

	require.NoError(t, v.Flush())
	require.Len(t, sink.calls, 1)
	assert.Equal(t, SlotBar, sink.calls[0].id)
	assert.False(t, sink.calls[0].remove)

	sink.reset()
	require.NoError(t, v.Flush())
	assert.Empty(t, sink.calls)

	v.SetCurrentTime("00:00")
	require.NoError(t, v.Flush())
	assert.Empty(t, sink.calls, "unchanged value")

	v.SetCurrentTime("00:01")
	require.NoError(t, v.Flush())
	require.Len(t, sink.calls, 1)
	assert.Contains(t, sink.calls[0].ass, "00:01")
}

func TestFlushRemovesHiddenBar(t *testing.T) {
	sink := &recordSink{}
	v := NewView(sink)
	v.SetVisible(true)
	v.SetControlsVisible(true)
	require.NoError(t, v.Flush())

	sink.reset()
	v.SetControlsVisible(false)
	require.NoError(t, v.Flush())
	assert.Equal(t, []sinkCall{{id: SlotBar, remove: true}}, sink.calls)

	sink.reset()
	v.SetProgress(300)
	require.NoError(t, v.Flush())
	assert.Empty(t, sink.calls, "nothing to remove twice")
}

func TestFlushCenterOverlay(t *testing.T) {
	sink := &recordSink{}
	v := NewView(sink)
	v.SetVisible(true)
	require.NoError(t, v.Flush())
	assert.Empty(t, sink.calls)

	v.SetCenterOverlay(controls.OverlayLoading)
	require.NoError(t, v.Flush())
	require.Len(t, sink.calls, 1)
	assert.Equal(t, SlotCenter, sink.calls[0].id)
	assert.Contains(t, sink.calls[0].ass, "Loading")

	sink.reset()
	v.SetOverlayContent(controls.OverlayLoading, "Buffering 40%")
	require.NoError(t, v.Flush())
	require.Len(t, sink.calls, 1)
	assert.Contains(t, sink.calls[0].ass, "Buffering 40%")

	sink.reset()
	v.SetOverlayContent(controls.OverlayError, "Unsupported codec")
	require.NoError(t, v.Flush())
	assert.Empty(t, sink.calls, "error overlay is not up")

	v.SetCenterOverlay(controls.OverlayNone)
	require.NoError(t, v.Flush())
	assert.Equal(t, []sinkCall{{id: SlotCenter, remove: true}}, sink.calls)
}

func TestFlushKeepsDirtyOnError(t *testing.T) {
	sink := &recordSink{err: errors.New("mpv gone")}
	v := NewView(sink)
	v.SetVisible(true)
	v.SetControlsVisible(true)

	err := v.Flush()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mpv gone")

	sink.err = nil
	require.NoError(t, v.Flush())
	assert.Len(t, sink.calls, 1)
}

func TestClear(t *testing.T) {
	sink := &recordSink{}
	v := NewView(sink)
	v.SetVisible(true)
	v.SetControlsVisible(true)
	require.NoError(t, v.Flush())

	sink.reset()
	require.NoError(t, v.Clear())
	assert.Equal(t, []sinkCall{{id: SlotBar, remove: true}, {id: SlotCenter, remove: true}}, sink.calls)

	sink.reset()
	require.NoError(t, v.Flush())
	assert.Len(t, sink.calls, 1, "bar is drawn again")
}

func TestControlEnabled(t *testing.T) {
	v := NewView(&recordSink{})

	v.SetControlEnabled(controls.ControlPlayPause, false)
	assert.False(t, v.Model().enabled(controls.ControlPlayPause))
	assert.True(t, v.Model().enabled(controls.ControlSeek))

	v.SetControlEnabled(controls.ControlPlayPause, true)
	assert.True(t, v.Model().enabled(controls.ControlPlayPause))
	assert.Empty(t, v.Model().Disabled)
}

func TestModelIsACopy(t *testing.T) {
	v := NewView(&recordSink{})
	m := v.Model()
	m.Disabled[controls.ControlSeek] = true
	m.Contents[controls.OverlayError] = "x"

	assert.True(t, v.Model().enabled(controls.ControlSeek))
	assert.Empty(t, v.Model().Contents)
}

func TestFormatBar(t *testing.T) {
	m := Model{
		Visible:         true,
		ControlsVisible: true,
		Progress:        500,
		CurrentTime:     "01:00",
		EndTime:         "02:00",
		Icon:            controls.IconPause,
		Title:           "Sintel {director's cut}",
	}

	out := FormatBar(m)
	assert.Contains(t, out, "01:00")
	assert.Contains(t, out, "02:00")
	assert.Contains(t, out, "❚❚")
	assert.Contains(t, out, `Sintel \{director's cut\}`)
	assert.NotContains(t, out, "←", "no back button outside fullscreen")
	assert.NotContains(t, out, "⛶", "no scale button unless scalable")

	m.BackVisible = true
	m.ScaleVisible = true
	m.Icon = controls.IconPlay
	out = FormatBar(m)
	assert.Contains(t, out, "←")
	assert.Contains(t, out, "⛶")
	assert.Contains(t, out, "▶")

	m.Fullscreen = true
	assert.Contains(t, FormatBar(m), "✖")
}

func TestFormatBarDisabledSeek(t *testing.T) {
	m := Model{Progress: 400, Disabled: map[controls.Control]bool{controls.ControlSeek: true}}
	out := FormatBar(m)
	assert.Contains(t, out, assGrey)
	assert.NotContains(t, out, assPrimary+"}")
}

func TestFormatCenter(t *testing.T) {
	tests := []struct {
		name    string
		overlay controls.CenterOverlay
		content string
		want    string
	}{
		{"none", controls.OverlayNone, "", ""},
		{"loading default", controls.OverlayLoading, "", "Loading…"},
		{"loading custom", controls.OverlayLoading, "Opening stream", "Opening stream"},
		{"error default", controls.OverlayError, "", "Playback failed"},
		{"error custom", controls.OverlayError, "File not found", "File not found"},
		{"complete", controls.OverlayComplete, "", "▶"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Model{Center: tt.overlay, Contents: map[controls.CenterOverlay]string{tt.overlay: tt.content}}
			out := FormatCenter(m)
			if tt.want == "" {
				assert.Empty(t, out)
				return
			}
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestEscape(t *testing.T) {
	assert.Equal(t, `a\{b\}c`, escape("a{b}c"))
	assert.Equal(t, `x\Ny`, escape("x\ny"))
	assert.True(t, strings.HasPrefix(escape(`\N`), "\\\u2060"))
}

func TestSliderWidth(t *testing.T) {
	assert.Equal(t, 0, sliderWidth(-10))
	assert.Equal(t, barW/2, sliderWidth(500))
	assert.Equal(t, barW, sliderWidth(5000))
}
