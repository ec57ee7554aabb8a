//go:build cgo

package theme

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	cardRadius   = float32(0.08)
	cardSegments = int32(8)
	cardRim      = float32(1.6)
	cardInset    = float32(16)
)

// DrawCatchCard paints the catch popup: a dark card with a gold rim and a
// shallow-water window centred on windowY, where the caught fish is drawn.
func DrawCatchCard(rect rl.Rectangle, windowY float32) {
	rl.DrawRectangleRounded(rect, cardRadius, cardSegments, Card)
	if w := catchWindow(rect, windowY); w.Width > 0 && w.Height > 0 {
		rl.DrawRectangleRounded(w, cardRadius, cardSegments, Mix(Water, Card, 0.35))
	}
	rl.DrawRectangleRoundedLinesEx(rect, cardRadius, cardSegments, cardRim, Mix(Border, AccentPerch, 0.45))
}

// catchWindow is the band behind the popup fish. It is inset from the card
// edges and never starts above the card's top inset.
func catchWindow(rect rl.Rectangle, centreY float32) rl.Rectangle {
	h := rect.Height * 0.34
	top := centreY - h/2
	if top < rect.Y+cardInset {
		top = rect.Y + cardInset
	}
	w := rect.Width - cardInset*2
	if w < 0 {
		w = 0
	}
	return rl.NewRectangle(rect.X+cardInset, top, w, h)
}

// DrawHeader draws a title with a short gold rule under it.
func DrawHeader(text string, x, y int32) {
	if text == "" {
		return
	}
	rl.DrawText(text, x, y, Type.Header, TextPrimary)
	ruleY := float32(y + Type.Header + 6)
	lineW := headerRuleWidth(rl.MeasureText(text, Type.Header))
	rl.DrawLineEx(rl.NewVector2(float32(x), ruleY), rl.NewVector2(float32(x+lineW), ruleY), 2.0, AccentPerch)
}

func headerRuleWidth(textWidth int32) int32 {
	w := int32(float32(textWidth) * 0.6)
	if w < 44 {
		w = 44
	}
	return w
}

func DrawBodyText(text string, x, y int32) {
	rl.DrawText(text, x, y, Type.Body, TextSecondary)
}

func DrawHintText(text string, x, y int32) {
	if text == "" {
		return
	}
	rl.DrawText(text, x, y, Type.Small, TextMuted)
}

// Mix blends a towards b by t in [0,1].
func Mix(a, b rl.Color, t float32) rl.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	inv := 1.0 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}
