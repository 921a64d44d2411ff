package player

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gen2brain/go-mpv"
)

var observed = map[string]mpv.Format{
	"time-pos":               mpv.FormatDouble,
	"duration":               mpv.FormatDouble,
	"demuxer-cache-duration": mpv.FormatDouble,
	"pause":                  mpv.FormatFlag,
	"seekable":               mpv.FormatFlag,
	"paused-for-cache":       mpv.FormatFlag,
	"eof-reached":            mpv.FormatFlag,
}

var errPlayback = errors.New("playback failed")

func (p *Player) eventLoop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	for {
		ev := p.m.WaitEvent(1.0)
		if ev == nil {
			continue
		}

		switch ev.EventID {
		case mpv.EventStart:
			p.mu.Lock()
			p.loaded, p.ended = false, false
			p.mu.Unlock()
			fire(p.events.OnLoading)

		case mpv.EventFileLoaded:
			p.mu.Lock()
			p.loaded = true
			p.mu.Unlock()
			fire(p.events.OnLoaded)

		case mpv.EventPropertyChange:
			if ev.Data == nil {
				continue
			}
			p.propertyChanged(ev.Property())

		case mpv.EventEnd:
			if ev.Data == nil {
				continue
			}
			p.endFile(ev.EndFile())

		case mpv.EventShutdown:
			fire(p.events.OnClose)
			return
		}
	}
}

func (p *Player) propertyChanged(prop mpv.EventProperty) {
	var after func()

	p.mu.Lock()
	switch prop.Name {
	case "time-pos":
		if v, ok := prop.Data.(float64); ok {
			p.position = v
		}
	case "duration":
		if v, ok := prop.Data.(float64); ok {
			p.duration = v
		}
	case "demuxer-cache-duration":
		if v, ok := prop.Data.(float64); ok {
			p.cacheAhead = v
		}
	case "seekable":
		if v, ok := prop.Data.(int); ok {
			p.seekable = v == 1
		}
	case "pause":
		if v, ok := prop.Data.(int); ok && p.paused != (v == 1) {
			p.paused = v == 1
			if fn := p.events.OnPause; fn != nil {
				paused := p.paused
				after = func() { fn(paused) }
			}
		}
	case "paused-for-cache":
		if v, ok := prop.Data.(int); ok && p.buffering != (v == 1) {
			p.buffering = v == 1
			if p.buffering {
				after = p.events.OnLoading
			} else {
				after = p.events.OnLoaded
			}
		}
	case "eof-reached":
		if v, ok := prop.Data.(int); ok && v == 1 && !p.ended {
			p.ended = true
			after = p.events.OnComplete
		}
	}
	p.mu.Unlock()

	fire(after)
}

func (p *Player) endFile(ef mpv.EventEndFile) {
	p.log.Debug("mpv end-file", "reason", ef.Reason)
	switch ef.Reason {
	case mpv.EndFileError:
		p.mu.Lock()
		p.loaded = false
		p.mu.Unlock()
		err := errPlayback
		if ef.Error != nil {
			err = fmt.Errorf("%w: %w", errPlayback, ef.Error)
		}
		if p.events.OnError != nil {
			p.events.OnError(err)
		}
	case mpv.EndFileEOF:
		p.mu.Lock()
		already := p.ended
		p.ended = true
		p.mu.Unlock()
		if !already {
			fire(p.events.OnComplete)
		}
	}
}

func fire(fn func()) {
	if fn != nil {
		fn()
	}
}
