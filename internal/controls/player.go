package controls

import "github.com/samber/lo"

// Orientation is an optional screen orientation hint passed along with a
// programmatic fullscreen change.
type Orientation int

const (
	OrientationUnspecified Orientation = iota
	OrientationLandscape
	OrientationPortrait
)

// MediaPlayer is the playback engine the controller drives. Positions and
// durations are in milliseconds.
type MediaPlayer interface {
	Start()
	Pause()
	SeekTo(positionMs int)
	IsPlaying() bool

	Duration() int
	CurrentPosition() int
	// BufferPercentage returns how much of the media is buffered, 0..100.
	BufferPercentage() int

	SetFullscreen(fullscreen bool)
	SetFullscreenOrientation(fullscreen bool, o Orientation)
	ClosePlayer()
}

// CapabilityReporter is implemented by players that can tell which
// commands they support. Players without it get their pause control
// disabled.
type CapabilityReporter interface {
	CanPause() bool
	CanSeekBackward() bool
	CanSeekForward() bool
}

// PlaybackSnapshot is a single read of the player's progress.
type PlaybackSnapshot struct {
	PositionMs      int
	DurationMs      int
	BufferedPercent int
}

func readSnapshot(p MediaPlayer) PlaybackSnapshot {
	return PlaybackSnapshot{
		PositionMs:      max(p.CurrentPosition(), 0),
		DurationMs:      max(p.Duration(), 0),
		BufferedPercent: lo.Clamp(p.BufferPercentage(), 0, 100),
	}
}

func canPause(p MediaPlayer) bool {
	caps, ok := p.(CapabilityReporter)
	return ok && caps.CanPause()
}
