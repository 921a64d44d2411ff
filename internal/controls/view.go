package controls

// CenterOverlay is the element shown in the middle of the video surface.
// Exactly one value is active at a time.
type CenterOverlay int

const (
	OverlayNone CenterOverlay = iota
	OverlayLoading
	OverlayError
	// OverlayComplete is the center play button shown after playback ends.
	OverlayComplete
)

func (o CenterOverlay) String() string {
	switch o {
	case OverlayNone:
		return "none"
	case OverlayLoading:
		return "loading"
	case OverlayError:
		return "error"
	case OverlayComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// PlayIcon is the glyph on the play/pause control.
type PlayIcon int

const (
	IconPlay PlayIcon = iota
	IconPause
)

// Control identifies an interactive element that can be enabled or disabled.
type Control int

const (
	ControlPlayPause Control = iota
	ControlSeek
	ControlScale
	ControlBack
	controlCount
)

// View receives display updates from the controller. Implementations only
// render; they never call back into the controller.
type View interface {
	// SetVisible shows or hides the whole overlay surface.
	SetVisible(visible bool)
	// SetControlsVisible shows or hides the title and control bars.
	SetControlsVisible(visible bool)

	// SetProgress and SetSecondaryProgress take values in 0..SliderMax.
	SetProgress(value int)
	SetSecondaryProgress(value int)
	SetCurrentTime(text string)
	SetEndTime(text string)

	SetPlayIcon(icon PlayIcon)
	SetScaleIcon(fullscreen bool)
	SetScaleVisible(visible bool)
	SetBackVisible(visible bool)
	SetControlEnabled(c Control, enabled bool)

	SetCenterOverlay(o CenterOverlay)
	// SetOverlayContent replaces what the loading or error overlay displays.
	SetOverlayContent(o CenterOverlay, content string)
	SetTitle(title string)
}
