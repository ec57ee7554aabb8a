//go:build cgo

package gui

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	popupMaxWidth  = 520
	popupMaxHeight = 420
	popupMargin    = 32
)

type layout struct {
	Field        rl.Rectangle
	FishX, FishY float32
	Popup        rl.Rectangle
	PopupFishX   float32
	PopupFishY   float32
}

// previewLayout centres the fish in the window and the popup over it. The
// popup fish sits in the upper half of the panel, above the stat lines.
func previewLayout(width, height int32) layout {
	w, h := float32(width), float32(height)
	field := rl.NewRectangle(0, 0, w, h)

	pw := minf(popupMaxWidth, w-popupMargin*2)
	ph := minf(popupMaxHeight, h-popupMargin*2)
	if pw < 0 {
		pw = 0
	}
	if ph < 0 {
		ph = 0
	}
	popup := rl.NewRectangle((w-pw)/2, (h-ph)/2, pw, ph)

	return layout{
		Field:      field,
		FishX:      w / 2,
		FishY:      h / 2,
		Popup:      popup,
		PopupFishX: popup.X + popup.Width/2,
		PopupFishY: popup.Y + popup.Height*0.38,
	}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
