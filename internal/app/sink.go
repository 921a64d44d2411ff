package app

import (
	"errors"

	"github.com/depeter/couchcontrols/internal/osd"
)

// sinkFunc resolves the real sink lazily, since the view exists before the
// player does.
type sinkFunc func() (osd.Sink, error)

func (f sinkFunc) SetOSDOverlay(id int, ass string, resX, resY int) error {
	s, err := f()
	if err != nil {
		return err
	}
	return s.SetOSDOverlay(id, ass, resX, resY)
}

func (f sinkFunc) RemoveOSDOverlay(id int) error {
	s, err := f()
	if errors.Is(err, errNoPlayer) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.RemoveOSDOverlay(id)
}
