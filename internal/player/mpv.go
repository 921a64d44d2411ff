package player

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/gen2brain/go-mpv"

	"github.com/depeter/couchcontrols/internal/controls"
	"github.com/depeter/couchcontrols/internal/osd"
)

// Options configures a Player.
type Options struct {
	HWDec  string
	Volume int
	// WindowID is the native window mpv renders into. Zero lets mpv open
	// its own window.
	WindowID int64
	Logger   *slog.Logger
}

// Events are called from the mpv event goroutine. Hosts that drive a
// single-threaded controller must marshal them onto their own thread.
type Events struct {
	OnLoading    func()
	OnLoaded     func()
	OnComplete   func()
	OnError      func(err error)
	OnPause      func(paused bool)
	OnFullscreen func(fullscreen bool)
	OnClose      func()
}

// Player wraps libmpv for video playback.
type Player struct {
	m      *mpv.Mpv
	mu     sync.Mutex
	log    *slog.Logger
	events Events

	loaded     bool
	ended      bool
	paused     bool
	buffering  bool
	seekable   bool
	position   float64
	duration   float64
	cacheAhead float64
}

var (
	_ controls.MediaPlayer        = (*Player)(nil)
	_ controls.CapabilityReporter = (*Player)(nil)
	_ osd.Sink                    = (*Player)(nil)
)

// New creates and initializes a new mpv player instance.
func New(opts Options, events Events) (*Player, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p := &Player{m: mpv.New(), log: log.With("component", "player"), events: events}

	p.must(p.m.SetOptionString("hwdec", opts.HWDec))
	p.must(p.m.SetOptionString("vo", "gpu"))
	// The overlay is ours; mpv's own OSC and key bindings stay off.
	p.must(p.m.SetOptionString("osc", "no"))
	p.must(p.m.SetOptionString("input-default-bindings", "no"))
	p.must(p.m.SetOptionString("keep-open", "yes"))
	p.must(p.m.SetOptionString("idle", "yes"))
	p.must(p.m.SetOptionString("cache", "yes"))
	p.must(p.m.SetOptionString("volume", fmt.Sprintf("%d", opts.Volume)))
	p.must(p.m.SetOptionString("ytdl", "yes"))
	if opts.WindowID != 0 {
		p.must(p.m.SetOptionString("wid", fmt.Sprintf("%d", opts.WindowID)))
	}

	if err := p.m.Initialize(); err != nil {
		p.m.TerminateDestroy()
		return nil, fmt.Errorf("mpv init: %w", err)
	}

	for name, format := range observed {
		if err := p.m.ObserveProperty(0, name, format); err != nil {
			p.log.Warn("observe property", "name", name, "err", err)
		}
	}

	go p.eventLoop()

	return p, nil
}

func (p *Player) must(err error) {
	if err != nil {
		p.log.Warn("mpv option", "err", err)
	}
}

// do runs fn against the mpv handle under the player lock.
func (p *Player) do(fn func(m *mpv.Mpv) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fn(p.m)
}

// command runs an mpv command whose failure the caller cannot act on.
func (p *Player) command(args ...string) {
	if err := p.do(func(m *mpv.Mpv) error { return m.Command(args) }); err != nil {
		p.log.Warn("mpv command", "cmd", args[0], "err", err)
	}
}

// Load starts playback of a file path or URL.
func (p *Player) Load(url string) error {
	return p.do(func(m *mpv.Mpv) error {
		p.loaded, p.ended = false, false
		p.position, p.duration, p.cacheAhead = 0, 0, 0
		if err := m.Command([]string{"loadfile", url}); err != nil {
			return fmt.Errorf("loadfile: %w", err)
		}
		return nil
	})
}

// Start resumes playback. At the end of the media it starts over.
func (p *Player) Start() {
	err := p.do(func(m *mpv.Mpv) error {
		if p.ended {
			if err := m.Command([]string{"seek", "0", "absolute"}); err != nil {
				return err
			}
			p.ended = false
			p.position = 0
		}
		p.paused = false
		return m.SetPropertyString("pause", "no")
	})
	if err != nil {
		p.log.Warn("start", "err", err)
	}
}

func (p *Player) Pause() {
	err := p.do(func(m *mpv.Mpv) error {
		p.paused = true
		return m.SetPropertyString("pause", "yes")
	})
	if err != nil {
		p.log.Warn("pause", "err", err)
	}
}

// SeekTo seeks to an absolute position. The reported position moves right
// away so a poll before mpv catches up does not snap the bar back.
func (p *Player) SeekTo(positionMs int) {
	sec := secondsFromMs(positionMs)
	err := p.do(func(m *mpv.Mpv) error {
		p.position = sec
		p.ended = false
		return m.Command([]string{"seek", fmt.Sprintf("%.3f", sec), "absolute"})
	})
	if err != nil {
		p.log.Warn("seek", "target_ms", positionMs, "err", err)
	}
}

// AdjustVolume changes the volume by delta percent.
func (p *Player) AdjustVolume(delta int) {
	p.command("add", "volume", fmt.Sprintf("%d", delta))
}

func (p *Player) ToggleMute() {
	p.command("cycle", "mute")
}

func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded && !p.paused && !p.ended
}

// Duration returns the media length in ms, 0 while unknown.
func (p *Player) Duration() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return msFromSeconds(p.duration)
}

func (p *Player) CurrentPosition() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return msFromSeconds(p.position)
}

func (p *Player) BufferPercentage() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return bufferPercent(p.position, p.cacheAhead, p.duration)
}

// SetFullscreen forwards the request to the host window; embedded mpv has
// no window of its own to resize.
func (p *Player) SetFullscreen(fullscreen bool) {
	if p.events.OnFullscreen != nil {
		p.events.OnFullscreen(fullscreen)
	}
}

// SetFullscreenOrientation ignores the orientation hint on desktop.
func (p *Player) SetFullscreenOrientation(fullscreen bool, o controls.Orientation) {
	p.log.Debug("orientation hint ignored", "orientation", int(o))
	p.SetFullscreen(fullscreen)
}

// ClosePlayer stops playback. The mpv instance stays alive until Destroy.
func (p *Player) ClosePlayer() {
	p.mu.Lock()
	p.loaded = false
	p.mu.Unlock()
	p.command("stop")
}

func (p *Player) CanPause() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded
}

func (p *Player) CanSeekBackward() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seekable
}

func (p *Player) CanSeekForward() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seekable
}

// SetOSDOverlay draws ASS events into an osd-overlay slot.
func (p *Player) SetOSDOverlay(id int, ass string, resX, resY int) error {
	return p.do(func(m *mpv.Mpv) error {
		return osdOverlaySet(m, id, ass, resX, resY)
	})
}

// RemoveOSDOverlay clears an osd-overlay slot.
func (p *Player) RemoveOSDOverlay(id int) error {
	return p.do(func(m *mpv.Mpv) error {
		return osdOverlayRemove(m, id)
	})
}

// Destroy cleans up the mpv instance.
func (p *Player) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.m.TerminateDestroy()
}
