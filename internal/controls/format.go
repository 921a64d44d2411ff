package controls

import "fmt"

// StringForTime formats a position in milliseconds as "H:MM:SS" when it has
// an hour component and "MM:SS" otherwise. Partial seconds are dropped.
func StringForTime(ms int) string {
	if ms < 0 {
		ms = 0
	}
	total := ms / 1000
	h := total / 3600
	m := (total / 60) % 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
