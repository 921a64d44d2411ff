package controls

import (
	"testing"

	"github.com/depeter/couchcontrols/internal/schedule"
)

// fakePlayer reports whatever the test sets and records the commands it
// receives. It does not implement CapabilityReporter.
type fakePlayer struct {
	playing  bool
	position int
	duration int
	buffered int

	calls        []string
	seeks        []int
	fullscreen   []bool
	orientations []Orientation
	closed       bool
}

func (p *fakePlayer) Start() {
	p.calls = append(p.calls, "start")
	p.playing = true
}

func (p *fakePlayer) Pause() {
	p.calls = append(p.calls, "pause")
	p.playing = false
}

func (p *fakePlayer) SeekTo(ms int)         { p.seeks = append(p.seeks, ms) }
func (p *fakePlayer) IsPlaying() bool       { return p.playing }
func (p *fakePlayer) Duration() int         { return p.duration }
func (p *fakePlayer) CurrentPosition() int  { return p.position }
func (p *fakePlayer) BufferPercentage() int { return p.buffered }
func (p *fakePlayer) ClosePlayer()          { p.closed = true }

func (p *fakePlayer) SetFullscreen(fs bool) {
	p.fullscreen = append(p.fullscreen, fs)
}

func (p *fakePlayer) SetFullscreenOrientation(fs bool, o Orientation) {
	p.fullscreen = append(p.fullscreen, fs)
	p.orientations = append(p.orientations, o)
}

type capablePlayer struct {
	*fakePlayer
	pausable bool
}

func (p *capablePlayer) CanPause() bool        { return p.pausable }
func (p *capablePlayer) CanSeekBackward() bool { return true }
func (p *capablePlayer) CanSeekForward() bool  { return true }

// recordView keeps the last value of every display property.
type recordView struct {
	visible      bool
	controls     bool
	progress     int
	secondary    int
	current      string
	end          string
	icon         PlayIcon
	scaleIcon    bool
	scaleVisible bool
	back         bool
	enabled      map[Control]bool
	center       CenterOverlay
	contents     map[CenterOverlay]string
	title        string

	hides       int
	currentSets int
}

func newRecordView() *recordView {
	return &recordView{
		progress: -1,
		enabled:  make(map[Control]bool),
		contents: make(map[CenterOverlay]string),
	}
}

func (v *recordView) SetVisible(visible bool) { v.visible = visible }

func (v *recordView) SetControlsVisible(visible bool) {
	if !visible {
		v.hides++
	}
	v.controls = visible
}

func (v *recordView) SetProgress(value int)          { v.progress = value }
func (v *recordView) SetSecondaryProgress(value int) { v.secondary = value }

func (v *recordView) SetCurrentTime(text string) {
	v.currentSets++
	v.current = text
}

func (v *recordView) SetEndTime(text string)                      { v.end = text }
func (v *recordView) SetPlayIcon(icon PlayIcon)                   { v.icon = icon }
func (v *recordView) SetScaleIcon(fullscreen bool)                { v.scaleIcon = fullscreen }
func (v *recordView) SetScaleVisible(visible bool)                { v.scaleVisible = visible }
func (v *recordView) SetBackVisible(visible bool)                 { v.back = visible }
func (v *recordView) SetControlEnabled(c Control, on bool)        { v.enabled[c] = on }
func (v *recordView) SetCenterOverlay(o CenterOverlay)            { v.center = o }
func (v *recordView) SetOverlayContent(o CenterOverlay, s string) { v.contents[o] = s }
func (v *recordView) SetTitle(title string)                       { v.title = title }

func newTestController(t *testing.T, opts ...Option) (*Controller, *schedule.Queue, *recordView) {
	t.Helper()
	q := schedule.NewQueue()
	v := newRecordView()
	return New(v, q, opts...), q, v
}
