package osd

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/depeter/couchcontrols/internal/controls"
)

// ASS color format: &HAABBGGRR (alpha, blue, green, red; reversed from RGB)
const (
	assWhite      = "&H00FFFFFF"
	assWhiteDim   = "&H60FFFFFF"
	assGrey       = "&H00808080"
	assBlack      = "&H00000000"
	assPrimary    = "&H00DCA400" // #00A4DC in BGR
	assPrimaryDim = "&H80DCA400"
	assErrorRed   = "&H003C3CE0"
	assShadow     = "&H80000000"
)

const (
	fontText   = "Segoe UI,Liberation Sans,sans-serif"
	fontSymbol = "Segoe UI Symbol,Noto Sans Symbols2,sans-serif"
)

// FormatBar renders the control bars: title and back button at the top,
// play/pause, times, seek bar and scale button at the bottom.
func FormatBar(m Model) string {
	var b strings.Builder

	// Top strip
	b.WriteString(fmt.Sprintf(
		"{\\an7\\pos(0,0)\\p1\\bord0\\shad0\\1c%s\\1a&H60&}m 0 0 l %d 0 l %d %d l 0 %d{\\p0}\n",
		assBlack, ResX, ResX, topH, topH,
	))
	titleX := 60
	if m.BackVisible {
		b.WriteString(fmt.Sprintf(
			"{\\an5\\pos(%d,%d)\\bord0\\shad1\\3c%s\\fs44\\1c%s\\fn%s}%s{\\r}\n",
			backRect.cx(), backRect.cy(), assShadow, buttonColor(m.enabled(controls.ControlBack)), fontSymbol, "\u2190",
		))
		titleX = backRect.X + backRect.W + 20
	}
	if m.Title != "" {
		b.WriteString(fmt.Sprintf(
			"{\\an4\\pos(%d,%d)\\bord0\\shad1\\3c%s\\fs34\\1c%s\\fn%s\\b1}%s{\\r}\n",
			titleX, backRect.cy(), assShadow, assWhite, fontText, escape(m.Title),
		))
	}

	// Bottom panel
	b.WriteString(fmt.Sprintf(
		"{\\an7\\pos(0,%d)\\p1\\bord0\\shad0\\1c%s\\1a&H40&}m 0 0 l %d 0 l %d %d l 0 %d{\\p0}\n",
		ResY-bottomH, assBlack, ResX, ResX, bottomH, bottomH,
	))

	icon := "\u25B6"
	if m.Icon == controls.IconPause {
		icon = "\u275A\u275A"
	}
	b.WriteString(fmt.Sprintf(
		"{\\an5\\pos(%d,%d)\\bord0\\shad1\\3c%s\\fs42\\1c%s\\fn%s}%s{\\r}\n",
		playRect.cx(), playRect.cy(), assShadow, buttonColor(m.enabled(controls.ControlPlayPause)), fontSymbol, icon,
	))

	b.WriteString(fmt.Sprintf(
		"{\\an6\\pos(%d,%d)\\bord0\\shad1\\3c%s\\fs28\\1c%s\\fn%s\\b1}%s{\\r}\n",
		barX-24, barY, assShadow, assWhite, fontText, escape(m.CurrentTime),
	))
	b.WriteString(fmt.Sprintf(
		"{\\an4\\pos(%d,%d)\\bord0\\shad1\\3c%s\\fs28\\1c%s\\fn%s}%s{\\r}\n",
		barX+barW+24, barY, assShadow, assWhiteDim, fontText, escape(m.EndTime),
	))

	writeTrack(&b, m)

	if m.ScaleVisible {
		glyph := "\u26F6"
		if m.Fullscreen {
			glyph = "\u2716"
		}
		b.WriteString(fmt.Sprintf(
			"{\\an5\\pos(%d,%d)\\bord0\\shad1\\3c%s\\fs40\\1c%s\\fn%s}%s{\\r}\n",
			scaleRect.cx(), scaleRect.cy(), assShadow, buttonColor(m.enabled(controls.ControlScale)), fontSymbol, glyph,
		))
	}

	return b.String()
}

func writeTrack(b *strings.Builder, m Model) {
	top := barY - barH/2

	b.WriteString(fmt.Sprintf(
		"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s\\1a&H80&}%s{\\p0}\n",
		barX, top, assWhite, assRoundRect(0, 0, barW, barH, barR),
	))

	if w := sliderWidth(m.SecondaryProgress); w > 0 {
		b.WriteString(fmt.Sprintf(
			"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s}%s{\\p0}\n",
			barX, top, assPrimaryDim, assRoundRect(0, 0, max(w, barR*2), barH, barR),
		))
	}

	fill := assPrimary
	if !m.enabled(controls.ControlSeek) {
		fill = assGrey
	}
	w := sliderWidth(m.Progress)
	if w > 0 {
		b.WriteString(fmt.Sprintf(
			"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s}%s{\\p0}\n",
			barX, top, fill, assRoundRect(0, 0, max(w, barR*2), barH, barR),
		))
	}

	b.WriteString(fmt.Sprintf(
		"{\\an5\\pos(%d,%d)\\p1\\bord0\\shad2\\3c%s\\1c%s}%s{\\p0}\n",
		barX+w, barY, assShadow, assWhite, assCircle(0, 0, dotR),
	))
}

// FormatCenter renders the center overlay, or "" when there is none.
func FormatCenter(m Model) string {
	var b strings.Builder
	switch m.Center {
	case controls.OverlayLoading:
		text := lo.CoalesceOrEmpty(m.Contents[controls.OverlayLoading], "Loading\u2026")
		b.WriteString(fmt.Sprintf(
			"{\\an5\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s\\1a&H40&}%s{\\p0}\n",
			ResX/2, ResY/2, assBlack, assRoundRect(0, 0, 420, 120, 20),
		))
		b.WriteString(fmt.Sprintf(
			"{\\an5\\pos(%d,%d)\\bord0\\shad1\\3c%s\\fs36\\1c%s\\fn%s}%s{\\r}\n",
			ResX/2, ResY/2, assShadow, assWhite, fontText, escape(text),
		))

	case controls.OverlayError:
		text := lo.CoalesceOrEmpty(m.Contents[controls.OverlayError], "Playback failed")
		b.WriteString(fmt.Sprintf(
			"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s\\1a&H30&}%s{\\p0}\n",
			errorRect.X, errorRect.Y, assBlack, assRoundRect(0, 0, errorRect.W, errorRect.H, 20),
		))
		b.WriteString(fmt.Sprintf(
			"{\\an5\\pos(%d,%d)\\bord0\\shad1\\3c%s\\fs36\\1c%s\\fn%s\\b1}%s{\\r}\n",
			errorRect.cx(), errorRect.cy()-30, assShadow, assErrorRed, fontText, escape(text),
		))
		b.WriteString(fmt.Sprintf(
			"{\\an5\\pos(%d,%d)\\bord0\\shad1\\3c%s\\fs26\\1c%s\\fn%s}%s{\\r}\n",
			errorRect.cx(), errorRect.cy()+40, assShadow, assWhiteDim, fontText, "Click to retry",
		))

	case controls.OverlayComplete:
		b.WriteString(fmt.Sprintf(
			"{\\an5\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s\\1a&H40&}%s{\\p0}\n",
			ResX/2, ResY/2, assBlack, assCircle(0, 0, centerPlayR),
		))
		b.WriteString(fmt.Sprintf(
			"{\\an5\\pos(%d,%d)\\bord0\\shad1\\3c%s\\fs96\\1c%s\\fn%s}%s{\\r}\n",
			ResX/2+8, ResY/2, assShadow, assWhite, fontSymbol, "\u25B6",
		))
	}
	return b.String()
}

func buttonColor(enabled bool) string {
	if enabled {
		return assWhite
	}
	return assGrey
}

func sliderWidth(value int) int {
	return barW * lo.Clamp(value, 0, controls.SliderMax) / controls.SliderMax
}

var assEscaper = strings.NewReplacer(
	"\\", "\\\u2060",
	"{", "\\{",
	"}", "\\}",
	"\n", "\\N",
)

// escape makes text safe inside ASS events: braces would open override
// blocks and a backslash would start an escape sequence.
func escape(s string) string {
	return assEscaper.Replace(s)
}

// assRoundRect generates an ASS vector drawing for a rounded rectangle.
// Coordinates are relative to the \pos anchor.
func assRoundRect(x, y, w, h, r int) string {
	r = min(r, h/2, w/2)
	return fmt.Sprintf(
		"m %d %d l %d %d b %d %d %d %d %d %d l %d %d b %d %d %d %d %d %d l %d %d b %d %d %d %d %d %d l %d %d b %d %d %d %d %d %d",
		x+r, y,
		x+w-r, y,
		x+w, y, x+w, y, x+w, y+r,
		x+w, y+h-r,
		x+w, y+h, x+w, y+h, x+w-r, y+h,
		x+r, y+h,
		x, y+h, x, y+h, x, y+h-r,
		x, y+r,
		x, y, x, y, x+r, y,
	)
}

// assCircle approximates a circle with four cubic bezier segments.
func assCircle(cx, cy, r int) string {
	k := r * 55 / 100
	return fmt.Sprintf(
		"m %d %d b %d %d %d %d %d %d b %d %d %d %d %d %d b %d %d %d %d %d %d b %d %d %d %d %d %d",
		cx, cy-r,
		cx+k, cy-r, cx+r, cy-k, cx+r, cy,
		cx+r, cy+k, cx+k, cy+r, cx, cy+r,
		cx-k, cy+r, cx-r, cy+k, cx-r, cy,
		cx-r, cy-k, cx-k, cy-r, cx, cy-r,
	)
}
