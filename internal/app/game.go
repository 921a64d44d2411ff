package app

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/couchcontrols/internal/config"
	"github.com/depeter/couchcontrols/internal/controls"
	"github.com/depeter/couchcontrols/internal/osd"
	"github.com/depeter/couchcontrols/internal/player"
	"github.com/depeter/couchcontrols/internal/schedule"
)

const volumeStep = 5

// Game implements ebiten.Game. It owns the event thread: every controller
// call happens inside Update, and player events are posted onto the queue
// that Update advances.
type Game struct {
	cfg    *config.Config
	log    *slog.Logger
	source string

	queue  *schedule.Queue
	ctrl   *controls.Controller
	view   *osd.View
	player *player.Player
	keys   Keymap

	last          time.Time
	width, height int
	dragging      bool
	touching      bool
	quit          bool
}

// NewGame prepares a game that plays source once the window is up. An
// empty title falls back to the file name.
func NewGame(cfg *config.Config, log *slog.Logger, source, title string) (*Game, error) {
	keys, err := NewKeymap(cfg.Keybinds)
	if err != nil {
		return nil, err
	}
	if title == "" {
		title = filepath.Base(source)
	}

	g := &Game{
		cfg:    cfg,
		log:    log.With("component", "app"),
		source: source,
		queue:  schedule.NewQueue(),
		keys:   keys,
		width:  cfg.UI.Width,
		height: cfg.UI.Height,
	}
	g.view = osd.NewView(sinkFunc(g.sink))
	g.ctrl = controls.New(g.view, g.queue,
		controls.WithLogger(log),
		controls.WithDefaultTimeout(cfg.DefaultTimeout()),
		controls.WithScalable(cfg.Controls.Scalable),
	)
	g.ctrl.SetTitle(title)
	g.ctrl.SetOnErrorViewClick(g.retry)
	return g, nil
}

// Title is the window title.
func (g *Game) Title() string {
	return "couchcontrols - " + filepath.Base(g.source)
}

func (g *Game) Update() error {
	now := time.Now()
	var delta time.Duration
	if !g.last.IsZero() {
		delta = now.Sub(g.last)
	}
	g.last = now

	if g.player == nil {
		if err := g.startPlayer(); err != nil {
			return err
		}
	}

	g.handleKeys()
	g.handleMouse()
	g.queue.Advance(delta)

	if err := g.view.Flush(); err != nil {
		g.log.Warn("osd flush", "err", err)
	}
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// mpv owns the window surface via --wid; this only shows before it
	// attaches or when it could not.
	screen.Fill(color.Black)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Close tears down the player. Call after ebiten.RunGame returns.
func (g *Game) Close() {
	g.ctrl.Detach()
	// Drop callbacks mpv posted during shutdown; nothing will run them.
	g.queue.Reset()
	g.log.Debug("closing", "elapsed", g.queue.Now())
	if g.player == nil {
		return
	}
	if err := g.view.Clear(); err != nil {
		g.log.Debug("osd clear", "err", err)
	}
	g.player.Destroy()
	g.player = nil
}

// startPlayer runs on the first Update, when the host window exists and
// mpv can embed into it.
func (g *Game) startPlayer() error {
	wid, err := player.FocusedWindow()
	if err != nil {
		g.log.Warn("no window to embed into, mpv opens its own", "err", err)
		wid = 0
	}

	p, err := player.New(player.Options{
		HWDec:    g.cfg.Playback.HWAccel,
		Volume:   g.cfg.Playback.Volume,
		WindowID: wid,
		Logger:   g.log,
	}, g.playerEvents())
	if err != nil {
		return fmt.Errorf("start player: %w", err)
	}
	g.player = p
	g.ctrl.Attach(p)
	g.load()
	return nil
}

func (g *Game) load() {
	g.ctrl.ShowLoading()
	if err := g.player.Load(g.source); err != nil {
		g.log.Error("load", "source", g.source, "err", err)
		g.ctrl.SetErrorView(err.Error())
		g.ctrl.ShowError()
	}
}

func (g *Game) retry() {
	g.log.Info("retrying", "source", g.source)
	g.ctrl.HideError()
	g.load()
}

// playerEvents marshals mpv callbacks onto the event thread.
func (g *Game) playerEvents() player.Events {
	post := g.queue.Post
	return player.Events{
		OnLoading: func() { post(g.ctrl.ShowLoading) },
		OnLoaded: func() {
			post(func() {
				g.ctrl.HideLoading()
				g.ctrl.Show()
			})
		},
		OnComplete: func() { post(g.ctrl.ShowComplete) },
		OnError: func(err error) {
			post(func() {
				g.log.Error("playback", "source", g.source, "err", err)
				g.ctrl.SetErrorView(err.Error())
				g.ctrl.ShowError()
			})
		},
		OnPause: func(paused bool) {
			post(func() { g.ctrl.PauseChanged(paused) })
		},
		// Called from the controller, already on the event thread.
		OnFullscreen: ebiten.SetFullscreen,
		OnClose:      func() { post(func() { g.quit = true }) },
	}
}

func (g *Game) handleKeys() {
	for k, b := range g.keys {
		for _, ev := range keyEvents(k, b.Intent) {
			if g.ctrl.DispatchKey(ev) || ev.Action != controls.KeyDown || ev.RepeatCount != 0 {
				continue
			}
			g.hostAction(b.Action)
		}
	}

	// Unbound keys still count as activity.
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if _, bound := g.keys[k]; !bound {
			g.ctrl.DispatchKey(controls.KeyEvent{Intent: controls.IntentOther, Action: controls.KeyDown})
		}
	}
}

// keyEvents reports this tick's transitions of k, with synthetic repeats
// while it is held.
func keyEvents(k ebiten.Key, in controls.Intent) []controls.KeyEvent {
	var evs []controls.KeyEvent
	if d := inpututil.KeyPressDuration(k); d > 0 {
		if rc, ok := repeatAt(d); ok {
			evs = append(evs, controls.KeyEvent{Intent: in, Action: controls.KeyDown, RepeatCount: rc})
		}
	}
	if inpututil.IsKeyJustReleased(k) {
		evs = append(evs, controls.KeyEvent{Intent: in, Action: controls.KeyUp})
	}
	return evs
}

func (g *Game) hostAction(a HostAction) {
	switch a {
	case ActionFullscreen:
		g.ctrl.ToggleFullscreen()
	case ActionVolumeUp:
		g.player.AdjustVolume(volumeStep)
	case ActionVolumeDown:
		g.player.AdjustVolume(-volumeStep)
	case ActionMute:
		g.player.ToggleMute()
	case ActionQuit:
		g.quit = true
	}
}

func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.press(x, y)
	} else if g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.ctrl.DragTo(osd.SliderValueAt(x, g.width), true)
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		switch {
		case g.dragging:
			g.ctrl.EndDrag()
			g.dragging = false
		case g.touching:
			g.ctrl.Touch(controls.TouchUp)
			g.touching = false
		}
	}

	if g.touching && !ebiten.IsFocused() {
		g.ctrl.Touch(controls.TouchCancel)
		g.touching = false
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.ctrl.Trackball()
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		step := volumeStep
		if dy < 0 {
			step = -volumeStep
		}
		g.player.AdjustVolume(step)
		g.ctrl.Trackball()
	}
}

func (g *Game) press(x, y int) {
	region := g.view.HitTest(x, y, g.width, g.height)
	g.log.Debug("press", "x", x, "y", y, "region", region)

	switch region {
	case osd.RegionSeekBar:
		g.ctrl.StartDrag()
		g.dragging = g.ctrl.Drag().Dragging
		if g.dragging {
			g.ctrl.DragTo(osd.SliderValueAt(x, g.width), true)
		}
	case osd.RegionPlayPause:
		g.ctrl.ClickPlayPause()
	case osd.RegionScale:
		g.ctrl.ToggleFullscreen()
	case osd.RegionBack:
		g.ctrl.ClickBack()
	case osd.RegionCenterPlay:
		g.ctrl.ClickCenterPlay()
	case osd.RegionError:
		g.ctrl.ClickErrorView()
	default:
		g.ctrl.Touch(controls.TouchDown)
		g.touching = true
	}
}

var errNoPlayer = errors.New("player not started")

// sink forwards osd-overlay commands once the player exists.
func (g *Game) sink() (osd.Sink, error) {
	if g.player == nil {
		return nil, errNoPlayer
	}
	return g.player, nil
}
