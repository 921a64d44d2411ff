package controls

import (
	"io"
	"log/slog"
	"time"

	"github.com/depeter/couchcontrols/internal/schedule"
)

// DefaultTimeout is how long the controls stay up after the last activity.
const DefaultTimeout = 3 * time.Second

// Controller is the overlay state machine. It layers the center overlays
// and the mirrored playback status on top of a VisibilityScheduler and
// turns user intents into player commands.
//
// A Controller is not safe for concurrent use; every call must come from
// the goroutine that advances its scheduler.
type Controller struct {
	s     *session
	vis   *VisibilityScheduler
	sched schedule.Scheduler
	log   *slog.Logger

	overlay CenterOverlay
	status  Status

	timeout  time.Duration
	scalable bool

	onErrorClick func()
	tapConsumed  bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithDefaultTimeout overrides DefaultTimeout.
func WithDefaultTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithScalable enables the scale control that toggles fullscreen.
func WithScalable(scalable bool) Option {
	return func(c *Controller) {
		c.scalable = scalable
	}
}

// New creates a controller rendering into view and timing on sched. Attach
// a player before playback starts.
func New(view View, sched schedule.Scheduler, opts ...Option) *Controller {
	c := &Controller{
		s:       &session{view: view, enabled: true},
		sched:   sched,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		overlay: OverlayNone,
		status:  StatusLoading,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "controls")
	c.vis = newVisibilityScheduler(c.s, sched, c.log)

	view.SetScaleVisible(c.scalable)
	view.SetCenterOverlay(OverlayNone)
	c.s.updateBackButton()
	return c
}

// Attach sets the player the controller drives.
func (c *Controller) Attach(p MediaPlayer) {
	c.s.player = p
	c.s.noPause = false
	c.s.updatePausePlay()
}

// Detach cancels outstanding tasks and drops the player. The controller can
// be attached again afterwards.
func (c *Controller) Detach() {
	c.vis.cancelAll()
	c.s.player = nil
	c.s.drag = DragState{}
	c.log.Debug("detached")
}

// Show shows the controls with the default timeout.
func (c *Controller) Show() { c.vis.Show(c.timeout) }

// ShowFor shows the controls for timeout; zero keeps them up.
func (c *Controller) ShowFor(timeout time.Duration) { c.vis.Show(timeout) }

func (c *Controller) Hide() { c.vis.Hide() }

func (c *Controller) IsShowing() bool { return c.vis.IsShowing() }

// Visibility exposes the underlying scheduler.
func (c *Controller) Visibility() *VisibilityScheduler { return c.vis }

func (c *Controller) Overlay() CenterOverlay { return c.overlay }

func (c *Controller) Status() Status { return c.status }

func (c *Controller) IsFullscreen() bool { return c.s.fullscreen }

// SetStatus records a status the host learned from the player and refreshes
// the play/pause icon to match.
func (c *Controller) SetStatus(st Status) {
	c.setStatus(st)
	c.s.updatePausePlay()
}

func (c *Controller) ShowLoading() {
	c.setStatus(StatusLoading)
	c.vis.Show(c.timeout)
	c.setOverlay(OverlayLoading)
}

func (c *Controller) HideLoading() {
	c.vis.Hide()
	c.clearOverlay()
}

func (c *Controller) ShowError() {
	c.setStatus(StatusError)
	c.vis.Show(c.timeout)
	c.setOverlay(OverlayError)
}

func (c *Controller) HideError() {
	c.vis.Hide()
	c.clearOverlay()
}

func (c *Controller) ShowComplete() {
	c.setStatus(StatusComplete)
	c.setOverlay(OverlayComplete)
}

func (c *Controller) HideComplete() {
	c.vis.Hide()
	c.clearOverlay()
}

// PauseChanged reflects a pause flip reported by the player and brings the
// controls up. While a center overlay is active the status stays what the
// overlay set.
func (c *Controller) PauseChanged(paused bool) {
	if c.overlay == OverlayNone {
		st := StatusPlaying
		if paused {
			st = StatusPaused
		}
		c.SetStatus(st)
	}
	c.vis.Show(c.timeout)
}

// ClickCenterPlay handles a tap on the center play button.
func (c *Controller) ClickCenterPlay() {
	if c.overlay != OverlayComplete {
		return
	}
	c.setOverlay(OverlayNone)
	if c.s.player == nil {
		return
	}
	c.s.player.Start()
	c.setStatus(StatusPlaying)
	c.s.updatePausePlay()
}

// ClickPlayPause handles a tap on the play/pause control. It does nothing
// while the control is disabled.
func (c *Controller) ClickPlayPause() {
	if c.s.player == nil || !c.s.enabled || c.s.noPause {
		return
	}
	c.DoPauseResume()
	c.vis.Show(c.timeout)
}

// DoPauseResume pauses a playing player and starts a paused one. It asks
// the player every time instead of tracking the state itself.
func (c *Controller) DoPauseResume() {
	p := c.s.player
	if p == nil {
		return
	}
	if p.IsPlaying() {
		p.Pause()
	} else {
		p.Start()
	}
	c.s.updatePausePlay()
}

// ToggleFullscreen handles a tap on the scale control.
func (c *Controller) ToggleFullscreen() {
	if !c.scalable || !c.s.enabled {
		return
	}
	c.s.fullscreen = !c.s.fullscreen
	c.refreshFullscreen()
	if c.s.player != nil {
		c.s.player.SetFullscreen(c.s.fullscreen)
	}
}

// SetFullscreen changes fullscreen programmatically, passing an optional
// orientation hint to the player.
func (c *Controller) SetFullscreen(fullscreen bool, o Orientation) {
	c.s.fullscreen = fullscreen
	c.refreshFullscreen()
	if c.s.player == nil {
		return
	}
	if o == OrientationUnspecified {
		c.s.player.SetFullscreen(fullscreen)
		return
	}
	c.s.player.SetFullscreenOrientation(fullscreen, o)
}

// ClickBack leaves fullscreen. The back control is only shown in fullscreen,
// so a click outside it does nothing.
func (c *Controller) ClickBack() {
	if !c.s.fullscreen {
		return
	}
	c.s.fullscreen = false
	c.refreshFullscreen()
	if c.s.player != nil {
		c.s.player.SetFullscreen(false)
	}
}

// Reset zeroes the displayed progress and shows the overlay without the
// loading indicator.
func (c *Controller) Reset() {
	v := c.s.view
	v.SetCurrentTime(StringForTime(0))
	v.SetEndTime(StringForTime(0))
	v.SetProgress(0)
	v.SetPlayIcon(IconPlay)
	v.SetVisible(true)
	c.HideLoading()
}

// SetEnabled enables or disables the interactive controls. The back control
// always stays enabled so the user can leave fullscreen.
func (c *Controller) SetEnabled(enabled bool) {
	c.s.enabled = enabled
	v := c.s.view
	v.SetControlEnabled(ControlPlayPause, enabled && !c.s.noPause)
	v.SetControlEnabled(ControlSeek, enabled)
	if c.scalable {
		v.SetControlEnabled(ControlScale, enabled)
	}
	v.SetControlEnabled(ControlBack, true)
}

func (c *Controller) SetTitle(title string) {
	c.s.view.SetTitle(title)
}

// SetErrorView replaces what the error overlay shows.
func (c *Controller) SetErrorView(content string) {
	c.s.view.SetOverlayContent(OverlayError, content)
}

// SetLoadingView replaces what the loading overlay shows.
func (c *Controller) SetLoadingView(content string) {
	c.s.view.SetOverlayContent(OverlayLoading, content)
}

// SetOnErrorViewClick registers the handler run when the error overlay is
// clicked, typically a retry.
func (c *Controller) SetOnErrorViewClick(fn func()) {
	c.onErrorClick = fn
}

// ClickErrorView runs the error click handler while the error overlay is up.
func (c *Controller) ClickErrorView() {
	if c.overlay != OverlayError || c.onErrorClick == nil {
		return
	}
	c.onErrorClick()
}

// setOverlay is the only place the center overlay changes. The view gets a
// single value, so switching to one overlay takes down the others.
func (c *Controller) setOverlay(o CenterOverlay) {
	if c.overlay == o {
		return
	}
	c.log.Debug("center overlay", "from", c.overlay, "to", o)
	c.overlay = o
	c.s.view.SetCenterOverlay(o)
}

func (c *Controller) clearOverlay() {
	c.setOverlay(OverlayNone)
	if c.s.player == nil {
		return
	}
	if c.s.player.IsPlaying() {
		c.setStatus(StatusPlaying)
	} else {
		c.setStatus(StatusPaused)
	}
}

func (c *Controller) setStatus(st Status) {
	if c.status == st {
		return
	}
	c.log.Debug("status", "from", c.status, "to", st)
	c.status = st
}

func (c *Controller) refreshFullscreen() {
	c.s.view.SetScaleIcon(c.s.fullscreen)
	c.s.updateBackButton()
}
