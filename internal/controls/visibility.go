package controls

import (
	"log/slog"
	"time"

	"github.com/depeter/couchcontrols/internal/schedule"
)

// session is the state shared by the visibility scheduler and the overlay
// state machine.
type session struct {
	player     MediaPlayer
	view       View
	drag       DragState
	fullscreen bool
	enabled    bool
	// noPause is set once the player reported it cannot pause.
	noPause bool
}

func (s *session) updatePausePlay() {
	icon := IconPlay
	if s.player != nil && s.player.IsPlaying() {
		icon = IconPause
	}
	s.view.SetPlayIcon(icon)
}

func (s *session) updateBackButton() {
	s.view.SetBackVisible(s.fullscreen)
}

// VisibilityScheduler owns whether the control bars are shown and the
// progress poll that runs while they are.
type VisibilityScheduler struct {
	s          *session
	sched      schedule.Scheduler
	log        *slog.Logger
	visibility Visibility
}

func newVisibilityScheduler(s *session, sched schedule.Scheduler, log *slog.Logger) *VisibilityScheduler {
	return &VisibilityScheduler{s: s, sched: sched, log: log, visibility: Shown}
}

// Show makes the controls visible and hides them again after timeout. A
// zero timeout keeps them up until Hide is called. During a drag the
// timeout is ignored; EndDrag re-arms it.
func (v *VisibilityScheduler) Show(timeout time.Duration) {
	if v.visibility == Hidden {
		v.SetProgress()
		v.applyCapabilities()
		v.visibility = Shown
		v.log.Debug("controls shown", "timeout", timeout)
	}
	v.s.updatePausePlay()
	v.s.updateBackButton()
	v.s.view.SetVisible(true)
	v.s.view.SetControlsVisible(true)

	if !v.s.drag.Dragging {
		v.sched.ScheduleOnce(0, schedule.TaskPollProgress, v.pollTick)
	}
	v.sched.Cancel(schedule.TaskAutoHide)
	if timeout != 0 && !v.s.drag.Dragging {
		v.sched.ScheduleOnce(timeout, schedule.TaskAutoHide, v.Hide)
	}
}

// Hide takes the controls down and stops polling. Calling it while hidden
// does nothing.
func (v *VisibilityScheduler) Hide() {
	if v.visibility != Shown {
		return
	}
	v.sched.Cancel(schedule.TaskPollProgress)
	v.sched.Cancel(schedule.TaskAutoHide)
	v.s.view.SetControlsVisible(false)
	v.visibility = Hidden
	v.log.Debug("controls hidden")
}

func (v *VisibilityScheduler) IsShowing() bool {
	return v.visibility == Shown
}

// SetProgress copies the player's progress onto the view and returns the
// position it read. Without a player, or while the user drags the seek bar,
// it leaves the view alone and returns 0.
func (v *VisibilityScheduler) SetProgress() int {
	p := v.s.player
	if p == nil || v.s.drag.Dragging {
		return 0
	}
	snap := readSnapshot(p)
	if snap.DurationMs > 0 {
		v.s.view.SetProgress(int(int64(SliderMax) * int64(snap.PositionMs) / int64(snap.DurationMs)))
	}
	// Buffered percent is stretched onto the same 0..1000 range as progress.
	v.s.view.SetSecondaryProgress(snap.BufferedPercent * 10)
	v.s.view.SetEndTime(StringForTime(snap.DurationMs))
	v.s.view.SetCurrentTime(StringForTime(snap.PositionMs))
	return snap.PositionMs
}

// pollTick refreshes progress and re-arms itself on the next whole second
// of playback, so the displayed seconds roll over when the real ones do.
func (v *VisibilityScheduler) pollTick() {
	pos := v.SetProgress()
	p := v.s.player
	if v.s.drag.Dragging || v.visibility != Shown || p == nil || !p.IsPlaying() {
		return
	}
	next := time.Duration(1000-pos%1000) * time.Millisecond
	v.sched.ScheduleOnce(next, schedule.TaskPollProgress, v.pollTick)
}

func (v *VisibilityScheduler) applyCapabilities() {
	if v.s.player == nil {
		return
	}
	v.s.noPause = !canPause(v.s.player)
	v.s.view.SetControlEnabled(ControlPlayPause, v.s.enabled && !v.s.noPause)
}

func (v *VisibilityScheduler) cancelPoll() {
	v.sched.Cancel(schedule.TaskPollProgress)
}

func (v *VisibilityScheduler) cancelAll() {
	v.sched.Cancel(schedule.TaskAutoHide)
	v.sched.Cancel(schedule.TaskPollProgress)
}
