//go:build windows

package player

import (
	"errors"

	"golang.org/x/sys/windows"
)

// FocusedWindow returns the HWND of the foreground window, which right
// after startup is the host window mpv embeds into.
func FocusedWindow() (int64, error) {
	hwnd := windows.GetForegroundWindow()
	if hwnd == 0 {
		return 0, errors.New("no foreground window")
	}
	return int64(hwnd), nil
}
