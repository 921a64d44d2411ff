package player

import (
	"math"

	"github.com/samber/lo"
)

func msFromSeconds(sec float64) int {
	if sec <= 0 || math.IsNaN(sec) || math.IsInf(sec, 0) {
		return 0
	}
	return int(sec * 1000)
}

func secondsFromMs(ms int) float64 {
	return float64(max(ms, 0)) / 1000
}

// bufferPercent is how far into the media the demuxer has cached, as a
// percentage of the duration. cacheAhead is demuxer-cache-duration, the
// seconds cached past position.
func bufferPercent(position, cacheAhead, duration float64) int {
	if duration <= 0 {
		return 0
	}
	pct := int((position + max(cacheAhead, 0)) * 100 / duration)
	return lo.Clamp(pct, 0, 100)
}
