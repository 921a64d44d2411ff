package controls

// Status mirrors what the player last reported. It is set by explicit
// signals, never polled.
type Status int

const (
	StatusLoading Status = iota
	StatusPlaying
	StatusPaused
	StatusError
	StatusComplete
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusError:
		return "error"
	case StatusComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Visibility is the state of the control bars.
type Visibility int

const (
	Shown Visibility = iota
	Hidden
)

func (v Visibility) String() string {
	if v == Shown {
		return "shown"
	}
	return "hidden"
}
